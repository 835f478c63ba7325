package main

import (
	"math/rand/v2"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"github.com/scatterkit/scatter/config"
	"github.com/scatterkit/scatter/filter"
	"github.com/scatterkit/scatter/point"
	"github.com/scatterkit/scatter/pointio"
	"github.com/scatterkit/scatter/poisson"
	"github.com/scatterkit/scatter/relax"
	"github.com/scatterkit/scatter/sample"
	"github.com/scatterkit/scatter/utils"
)

// generateOptions covers every generation step type; the fields a given type
// ignores simply keep their defaults.
type generateOptions struct {
	Count        int     `json:"count"`
	Dim          int     `json:"dim"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	Shift        int     `json:"shift"`
	Jitter       float64 `json:"jitter"`
	Stagger      float64 `json:"stagger"`
	Clusters     int     `json:"clusters"`
	Spread       float64 `json:"spread"`
	MinDist      float64 `json:"min_dist"`
	Attempts     int     `json:"attempts"`
	Filaments    int     `json:"filaments"`
	Steps        int     `json:"steps"`
	StepSize     float64 `json:"step_size"`
	Persistence  float64 `json:"persistence"`
	Sigma        float64 `json:"sigma"`
	ThickSamples int     `json:"thick_samples"`
}

func defaultGenerateOptions() generateOptions {
	return generateOptions{
		Count:        100,
		Dim:          2,
		Min:          0,
		Max:          1,
		Jitter:       1,
		Clusters:     5,
		Spread:       0.05,
		MinDist:      0.05,
		Filaments:    4,
		Steps:        50,
		StepSize:     0.02,
		Persistence:  0.9,
		Sigma:        0.01,
		ThickSamples: 3,
	}
}

type filterOptions struct {
	Method   string  `json:"method"`
	MinDist  float64 `json:"min_dist"`
	Fraction float64 `json:"fraction"`
	Dim      int     `json:"dim"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

type relaxOptions struct {
	KNeighbors int     `json:"k"`
	StepSize   float64 `json:"step_size"`
	Iterations int     `json:"iterations"`
}

// runPipeline executes the steps in order, threading the point set through,
// and writes the final set to the pipeline's output file. A pipeline without
// a seed draws one from entropy and logs it so the run can be reproduced.
func runPipeline(p *config.Pipeline, logger golog.Logger) error {
	if p.Output == "" {
		return errors.New("pipeline has no output file")
	}
	seed := rand.Int64()
	if p.Seed != nil {
		seed = *p.Seed
	} else {
		logger.Infow("pipeline has no seed, drew one", "seed", seed)
	}
	rng := utils.NewRand(seed)

	var pts []point.Point
	for i, step := range p.Steps {
		out, err := runStep(step, pts, rng)
		if err != nil {
			return errors.Wrapf(err, "step %d (%s)", i, step.Type)
		}
		logger.Debugw("ran pipeline step", "step", i, "type", step.Type, "points", len(out))
		pts = out
	}
	logger.Infow("pipeline finished", "points", len(pts), "output", p.Output)
	return pointio.WritePointsToCSV(p.Output, pts)
}

func runStep(step config.Step, pts []point.Point, rng *rand.Rand) ([]point.Point, error) {
	switch step.Type {
	case "uniform", "halton", "hammersley", "jittered", "lhs", "clusters",
		"filaments", "poisson", "poisson-variable":
		return runGenerateStep(step, rng)
	case "filter":
		return runFilterStep(step, pts, rng)
	case "relax":
		return runRelaxStep(step, pts)
	default:
		return nil, errors.Errorf("unknown step type %q", step.Type)
	}
}

func runGenerateStep(step config.Step, rng *rand.Rand) ([]point.Point, error) {
	opts := defaultGenerateOptions()
	if _, err := config.TransformAttributeMapToStruct(&opts, step.Attributes); err != nil {
		return nil, err
	}
	domain := point.Box(opts.Dim, opts.Min, opts.Max)

	switch step.Type {
	case "uniform":
		return sample.Uniform(opts.Count, domain, rng)
	case "halton":
		return sample.Halton(opts.Count, domain, opts.Shift)
	case "hammersley":
		return sample.Hammersley(opts.Count, domain, opts.Shift)
	case "jittered":
		jitter := make([]float64, opts.Dim)
		stagger := make([]float64, opts.Dim)
		for d := range jitter {
			jitter[d] = opts.Jitter
			stagger[d] = opts.Stagger
		}
		return sample.JitteredGrid(opts.Count, domain, jitter, stagger, rng)
	case "lhs":
		return sample.LatinHypercube(opts.Count, domain, rng)
	case "clusters":
		perCluster := opts.Count / opts.Clusters
		if perCluster < 1 {
			perCluster = 1
		}
		return sample.RandomGaussianClusters(opts.Clusters, perCluster, domain, opts.Spread, rng)
	case "filaments":
		pts, _, err := sample.Filaments(sample.FilamentConfig{
			Filaments:    opts.Filaments,
			Steps:        opts.Steps,
			StepSize:     opts.StepSize,
			Persistence:  opts.Persistence,
			Sigma:        opts.Sigma,
			ThickSamples: opts.ThickSamples,
		}, domain, rng)
		return pts, err
	case "poisson":
		return poisson.Sample(poisson.Config{
			Count:    opts.Count,
			MinDist:  opts.MinDist,
			Attempts: opts.Attempts,
			Domain:   domain,
		}, rng)
	case "poisson-variable":
		radius, err := poisson.NewLogNormalRadius(-3, 0.5, rng)
		if err != nil {
			return nil, err
		}
		pts, _, err := poisson.SampleVariableRadius(poisson.VariableConfig{
			Count:       opts.Count,
			MaxAttempts: opts.Attempts,
			Radius:      radius,
			Domain:      domain,
		}, rng)
		return pts, err
	default:
		return nil, errors.Errorf("unknown generation step %q", step.Type)
	}
}

func runFilterStep(step config.Step, pts []point.Point, rng *rand.Rand) ([]point.Point, error) {
	opts := filterOptions{MinDist: 0.05, Fraction: 0.5, Dim: 2, Min: 0, Max: 1}
	if _, err := config.TransformAttributeMapToStruct(&opts, step.Attributes); err != nil {
		return nil, err
	}
	switch opts.Method {
	case "min-distance":
		return filter.MinDistance(pts, opts.MinDist)
	case "random":
		return filter.RandomFraction(pts, opts.Fraction, rng)
	case "in-domain":
		return filter.InDomain(pts, point.Box(opts.Dim, opts.Min, opts.Max))
	default:
		return nil, errors.Errorf("unknown filter method %q", opts.Method)
	}
}

func runRelaxStep(step config.Step, pts []point.Point) ([]point.Point, error) {
	opts := relaxOptions{KNeighbors: 5, StepSize: 0.005, Iterations: 10}
	if _, err := config.TransformAttributeMapToStruct(&opts, step.Attributes); err != nil {
		return nil, err
	}
	return relax.Run(pts, relax.Config{
		KNeighbors: opts.KNeighbors,
		StepSize:   opts.StepSize,
		Iterations: opts.Iterations,
	})
}
