// Package pointio reads and writes point sets, per-point values, and cluster
// labels as CSV files.
package pointio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/utils"

	"github.com/scatterkit/scatter/point"
)

// WritePointsToCSV writes one point per row with a generated x0,x1,... header.
func WritePointsToCSV(fn string, pts []point.Point) (err error) {
	dim, err := point.Dimension(pts)
	if err != nil {
		return err
	}

	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer func() {
		cerr := f.Close()
		err = multierr.Combine(err, cerr)
	}()

	w := csv.NewWriter(f)
	header := make([]string, dim)
	for d := range header {
		header[d] = fmt.Sprintf("x%d", d)
	}
	if err := w.Write(header); err != nil {
		return err
	}
	record := make([]string, dim)
	for _, p := range pts {
		for d, v := range p {
			record[d] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ReadPointsFromCSV reads a point set written by WritePointsToCSV. A header
// row is optional: the first row whose fields all parse as numbers is treated
// as data. All rows must share one dimension.
func ReadPointsFromCSV(fn string, logger golog.Logger) ([]point.Point, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer utils.UncheckedErrorFunc(f.Close)

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return []point.Point{}, nil
	}

	start := 0
	if _, err := parseRow(records[0]); err != nil {
		logger.Debugw("skipping header row", "row", records[0])
		start = 1
	}

	pts := make([]point.Point, 0, len(records)-start)
	for i := start; i < len(records); i++ {
		p, err := parseRow(records[i])
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i+1)
		}
		pts = append(pts, p)
	}
	if _, err := point.Dimension(pts); err != nil {
		return nil, err
	}
	logger.Debugw("read points", "file", fn, "count", len(pts))
	return pts, nil
}

func parseRow(record []string) (point.Point, error) {
	p := make(point.Point, len(record))
	for i, field := range record {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "field %q", field)
		}
		p[i] = v
	}
	return p, nil
}

// ReadLabelsFromCSV reads a label column written by WriteLabelsToCSV. The
// header row is optional.
func ReadLabelsFromCSV(fn string, logger golog.Logger) ([]int, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer utils.UncheckedErrorFunc(f.Close)

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return []int{}, nil
	}

	start := 0
	if _, err := strconv.Atoi(records[0][0]); err != nil {
		logger.Debugw("skipping header row", "row", records[0])
		start = 1
	}

	labels := make([]int, 0, len(records)-start)
	for i := start; i < len(records); i++ {
		if len(records[i]) != 1 {
			return nil, errors.Errorf("row %d has %d fields, want 1", i+1, len(records[i]))
		}
		l, err := strconv.Atoi(records[i][0])
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i+1)
		}
		labels = append(labels, l)
	}
	return labels, nil
}

// WriteCurveToCSV writes paired x,y columns, one sample per row.
func WriteCurveToCSV(fn, xName, yName string, xs, ys []float64) (err error) {
	if len(xs) != len(ys) {
		return errors.Errorf("have %d x values for %d y values", len(xs), len(ys))
	}
	rows := make([][]string, 0, len(xs)+1)
	rows = append(rows, []string{xName, yName})
	for i := range xs {
		rows = append(rows, []string{
			strconv.FormatFloat(xs[i], 'g', -1, 64),
			strconv.FormatFloat(ys[i], 'g', -1, 64),
		})
	}
	return writeRows(fn, rows)
}

// WriteValuesToCSV writes a single named column of float values.
func WriteValuesToCSV(fn, name string, values []float64) (err error) {
	rows := make([][]string, 0, len(values)+1)
	rows = append(rows, []string{name})
	for _, v := range values {
		rows = append(rows, []string{strconv.FormatFloat(v, 'g', -1, 64)})
	}
	return writeRows(fn, rows)
}

// WriteLabelsToCSV writes a single named column of integer labels.
func WriteLabelsToCSV(fn, name string, labels []int) (err error) {
	rows := make([][]string, 0, len(labels)+1)
	rows = append(rows, []string{name})
	for _, l := range labels {
		rows = append(rows, []string{strconv.Itoa(l)})
	}
	return writeRows(fn, rows)
}

func writeRows(fn string, rows [][]string) (err error) {
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer func() {
		cerr := f.Close()
		err = multierr.Combine(err, cerr)
	}()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return w.Error()
}
