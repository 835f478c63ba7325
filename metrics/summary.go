package metrics

import (
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// Summary holds descriptive statistics of a value slice.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev"`
}

// Summarize computes descriptive statistics over the values. An empty slice
// yields a zero Summary without error.
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, nil
	}
	data := stats.Float64Data(values)

	mean, err := data.Mean()
	if err != nil {
		return Summary{}, errors.Wrap(err, "mean")
	}
	median, err := data.Median()
	if err != nil {
		return Summary{}, errors.Wrap(err, "median")
	}
	min, err := data.Min()
	if err != nil {
		return Summary{}, errors.Wrap(err, "min")
	}
	max, err := data.Max()
	if err != nil {
		return Summary{}, errors.Wrap(err, "max")
	}
	stdDev, err := data.StandardDeviation()
	if err != nil {
		return Summary{}, errors.Wrap(err, "standard deviation")
	}

	return Summary{
		Count:  len(values),
		Mean:   mean,
		Median: median,
		Min:    min,
		Max:    max,
		StdDev: stdDev,
	}, nil
}
