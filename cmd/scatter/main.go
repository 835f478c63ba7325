// Package main is the scatter CLI: generate, refine, cluster, measure, and
// render point sets from the command line or a pipeline file.
package main

import (
	"log"
	"math"
	"math/rand/v2"
	"os"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/scatterkit/scatter/cluster"
	"github.com/scatterkit/scatter/config"
	"github.com/scatterkit/scatter/filter"
	"github.com/scatterkit/scatter/metrics"
	"github.com/scatterkit/scatter/point"
	"github.com/scatterkit/scatter/pointio"
	"github.com/scatterkit/scatter/poisson"
	"github.com/scatterkit/scatter/relax"
	"github.com/scatterkit/scatter/render"
	"github.com/scatterkit/scatter/sample"
	"github.com/scatterkit/scatter/utils"
)

const (
	// Flags.
	flagInput  = "input"
	flagOutput = "output"
	flagMethod = "method"
	flagSeed   = "seed"
	flagCount  = "count"
	flagDim    = "dim"
	flagMin    = "min"
	flagMax    = "max"

	flagShift        = "shift"
	flagJitter       = "jitter"
	flagStagger      = "stagger"
	flagClusters     = "clusters"
	flagSpread       = "spread"
	flagMinDist      = "min-dist"
	flagAttempts     = "attempts"
	flagFilaments    = "filaments"
	flagSteps        = "steps"
	flagStepSize     = "step-size"
	flagPersistence  = "persistence"
	flagSigma        = "sigma"
	flagThickSamples = "thick-samples"

	flagRadiusDist  = "radius-dist"
	flagRadiusMu    = "radius-mu"
	flagRadiusSigma = "radius-sigma"
	flagRadiusXMin  = "radius-xmin"
	flagRadiusAlpha = "radius-alpha"
	flagRadiusShape = "radius-shape"
	flagRadiusScale = "radius-scale"
	flagRadiusFloor = "radius-floor"

	flagFraction   = "fraction"
	flagKNeighbors = "k"
	flagIterations = "iterations"
	flagEps        = "eps"
	flagMinPts     = "min-pts"
	flagRadius     = "radius"
	flagNormalize  = "normalize"
	flagBinWidth   = "bin-width"
	flagMaxDist    = "max-dist"
	flagLabels     = "labels"
	flagWidth      = "width"
	flagHeight     = "height"
	flagPointSize  = "point-size"
)

func main() {
	var logger golog.Logger

	domainFlags := []cli.Flag{
		&cli.IntFlag{Name: flagDim, Value: 2, Usage: "dimension of the domain"},
		&cli.Float64Flag{Name: flagMin, Value: 0, Usage: "lower bound of every axis"},
		&cli.Float64Flag{Name: flagMax, Value: 1, Usage: "upper bound of every axis"},
	}
	seedFlag := &cli.Int64Flag{Name: flagSeed, Usage: "RNG seed; drawn from entropy when unset"}
	inputFlag := &cli.StringFlag{Name: flagInput, Aliases: []string{"i"}, Required: true, Usage: "points CSV to read"}
	outputFlag := &cli.StringFlag{Name: flagOutput, Aliases: []string{"o"}, Required: true, Usage: "file to write"}

	seededRand := func(c *cli.Context) *rand.Rand {
		if c.IsSet(flagSeed) {
			return utils.NewRand(c.Int64(flagSeed))
		}
		seed := rand.Int64()
		logger.Infow("no seed given, drew one", "seed", seed)
		return utils.NewRand(seed)
	}
	domainFromFlags := func(c *cli.Context) point.Domain {
		return point.Box(c.Int(flagDim), c.Float64(flagMin), c.Float64(flagMax))
	}

	app := &cli.App{
		Name:  "scatter",
		Usage: "generate, refine, cluster, measure, and render point sets",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("debug") {
				logger = golog.NewDebugLogger("scatter")
			} else {
				logger = zap.NewNop().Sugar()
			}

			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "generate a point set and write it as CSV",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: flagMethod, Aliases: []string{"m"}, Required: true,
						Usage: "uniform | halton | hammersley | jittered | lhs | clusters | filaments | poisson | poisson-variable"},
					&cli.IntFlag{Name: flagCount, Aliases: []string{"n"}, Value: 100, Usage: "number of points"},
					&cli.IntFlag{Name: flagShift, Usage: "low-discrepancy sequence offset"},
					&cli.Float64Flag{Name: flagJitter, Value: 1, Usage: "jittered: per-cell jitter fraction"},
					&cli.Float64Flag{Name: flagStagger, Usage: "jittered: brick stagger fraction"},
					&cli.IntFlag{Name: flagClusters, Value: 5, Usage: "clusters: number of blobs"},
					&cli.Float64Flag{Name: flagSpread, Value: 0.05, Usage: "clusters: blob standard deviation"},
					&cli.Float64Flag{Name: flagMinDist, Value: 0.05, Usage: "poisson: minimum spacing"},
					&cli.IntFlag{Name: flagAttempts, Usage: "poisson: candidate attempts"},
					&cli.IntFlag{Name: flagFilaments, Value: 4, Usage: "filaments: number of walks"},
					&cli.IntFlag{Name: flagSteps, Value: 50, Usage: "filaments: core points per walk"},
					&cli.Float64Flag{Name: flagStepSize, Value: 0.02, Usage: "filaments: distance per step"},
					&cli.Float64Flag{Name: flagPersistence, Value: 0.9, Usage: "filaments: direction persistence"},
					&cli.Float64Flag{Name: flagSigma, Value: 0.01, Usage: "filaments: thickness scatter"},
					&cli.IntFlag{Name: flagThickSamples, Value: 3, Usage: "filaments: scatter points per core point"},
					&cli.StringFlag{Name: flagRadiusDist, Value: "lognormal",
						Usage: "poisson-variable: lognormal | powerlaw | weibull | truncated-weibull"},
					&cli.Float64Flag{Name: flagRadiusMu, Value: -3, Usage: "lognormal mu"},
					&cli.Float64Flag{Name: flagRadiusSigma, Value: 0.5, Usage: "lognormal sigma"},
					&cli.Float64Flag{Name: flagRadiusXMin, Value: 0.01, Usage: "powerlaw lower support"},
					&cli.Float64Flag{Name: flagRadiusAlpha, Value: 2.5, Usage: "powerlaw exponent"},
					&cli.Float64Flag{Name: flagRadiusShape, Value: 1.5, Usage: "weibull shape"},
					&cli.Float64Flag{Name: flagRadiusScale, Value: 0.05, Usage: "weibull scale"},
					&cli.Float64Flag{Name: flagRadiusFloor, Value: 0.01, Usage: "truncated-weibull radius floor"},
					seedFlag,
					outputFlag,
				}, domainFlags...),
				Action: func(c *cli.Context) error {
					domain := domainFromFlags(c)
					rng := seededRand(c)
					count := c.Int(flagCount)
					method := c.String(flagMethod)

					var pts []point.Point
					var err error
					switch method {
					case "uniform":
						pts, err = sample.Uniform(count, domain, rng)
					case "halton":
						pts, err = sample.Halton(count, domain, c.Int(flagShift))
					case "hammersley":
						pts, err = sample.Hammersley(count, domain, c.Int(flagShift))
					case "jittered":
						dim := domain.Dim()
						jitter := make([]float64, dim)
						stagger := make([]float64, dim)
						for d := range jitter {
							jitter[d] = c.Float64(flagJitter)
							stagger[d] = c.Float64(flagStagger)
						}
						pts, err = sample.JitteredGrid(count, domain, jitter, stagger, rng)
					case "lhs":
						pts, err = sample.LatinHypercube(count, domain, rng)
					case "clusters":
						perCluster := count / c.Int(flagClusters)
						if perCluster < 1 {
							perCluster = 1
						}
						pts, err = sample.RandomGaussianClusters(
							c.Int(flagClusters), perCluster, domain, c.Float64(flagSpread), rng)
					case "filaments":
						cfg := sample.FilamentConfig{
							Filaments:    c.Int(flagFilaments),
							Steps:        c.Int(flagSteps),
							StepSize:     c.Float64(flagStepSize),
							Persistence:  c.Float64(flagPersistence),
							Sigma:        c.Float64(flagSigma),
							ThickSamples: c.Int(flagThickSamples),
						}
						pts, _, err = sample.Filaments(cfg, domain, rng)
					case "poisson":
						pts, err = poisson.Sample(poisson.Config{
							Count:    count,
							MinDist:  c.Float64(flagMinDist),
							Attempts: c.Int(flagAttempts),
							Domain:   domain,
						}, rng)
					case "poisson-variable":
						sampler, serr := radiusSamplerFromFlags(c, rng)
						if serr != nil {
							return serr
						}
						pts, _, err = poisson.SampleVariableRadius(poisson.VariableConfig{
							Count:       count,
							MaxAttempts: c.Int(flagAttempts),
							Radius:      sampler,
							Domain:      domain,
						}, rng)
					default:
						return errors.Errorf("unknown generation method %q", method)
					}
					if err != nil {
						return err
					}
					logger.Infow("generated points", "method", method, "count", len(pts))
					return pointio.WritePointsToCSV(c.String(flagOutput), pts)
				},
			},
			{
				Name:  "filter",
				Usage: "thin a point set and write the survivors as CSV",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: flagMethod, Aliases: []string{"m"}, Required: true,
						Usage: "min-distance | density | random | in-domain"},
					&cli.Float64Flag{Name: flagMinDist, Value: 0.05, Usage: "min-distance: spacing to enforce"},
					&cli.Float64Flag{Name: flagSigma, Value: 0.25, Usage: "density: falloff from the domain center"},
					&cli.Float64Flag{Name: flagFraction, Value: 0.5, Usage: "random: fraction to keep"},
					seedFlag,
					inputFlag,
					outputFlag,
				}, domainFlags...),
				Action: func(c *cli.Context) error {
					pts, err := pointio.ReadPointsFromCSV(c.String(flagInput), logger)
					if err != nil {
						return err
					}

					var out []point.Point
					switch method := c.String(flagMethod); method {
					case "min-distance":
						out, err = filter.MinDistance(pts, c.Float64(flagMinDist))
					case "density":
						domain := domainFromFlags(c)
						center := domain.Center()
						sigma := c.Float64(flagSigma)
						density := func(p point.Point) float64 {
							return math.Exp(-p.DistanceSquared(center) / (2 * sigma * sigma))
						}
						out, err = filter.ByDensity(pts, density, seededRand(c))
					case "random":
						out, err = filter.RandomFraction(pts, c.Float64(flagFraction), seededRand(c))
					case "in-domain":
						out, err = filter.InDomain(pts, domainFromFlags(c))
					default:
						return errors.Errorf("unknown filter method %q", method)
					}
					if err != nil {
						return err
					}
					logger.Infow("filtered points", "in", len(pts), "out", len(out))
					return pointio.WritePointsToCSV(c.String(flagOutput), out)
				},
			},
			{
				Name:  "relax",
				Usage: "spread points apart by iterative neighbor repulsion",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: flagKNeighbors, Value: 5, Usage: "repelling neighbors per point"},
					&cli.Float64Flag{Name: flagStepSize, Value: 0.005, Usage: "distance moved per iteration"},
					&cli.IntFlag{Name: flagIterations, Value: 10, Usage: "number of passes"},
					inputFlag,
					outputFlag,
				},
				Action: func(c *cli.Context) error {
					pts, err := pointio.ReadPointsFromCSV(c.String(flagInput), logger)
					if err != nil {
						return err
					}
					out, err := relax.Run(pts, relax.Config{
						KNeighbors: c.Int(flagKNeighbors),
						StepSize:   c.Float64(flagStepSize),
						Iterations: c.Int(flagIterations),
					})
					if err != nil {
						return err
					}
					logger.Infow("relaxed points", "count", len(out), "iterations", c.Int(flagIterations))
					return pointio.WritePointsToCSV(c.String(flagOutput), out)
				},
			},
			{
				Name:  "cluster",
				Usage: "label points by cluster and write the labels as CSV",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagMethod, Aliases: []string{"m"}, Required: true,
						Usage: "dbscan | percolation | kmeans"},
					&cli.Float64Flag{Name: flagEps, Value: 0.05, Usage: "dbscan: neighborhood radius"},
					&cli.IntFlag{Name: flagMinPts, Value: 4, Usage: "dbscan: core point threshold"},
					&cli.Float64Flag{Name: flagRadius, Value: 0.05, Usage: "percolation: connection radius"},
					&cli.IntFlag{Name: flagKNeighbors, Value: 3, Usage: "kmeans: cluster count"},
					&cli.BoolFlag{Name: flagNormalize, Usage: "kmeans: refit to the unit cube first"},
					inputFlag,
					outputFlag,
				},
				Action: func(c *cli.Context) error {
					pts, err := pointio.ReadPointsFromCSV(c.String(flagInput), logger)
					if err != nil {
						return err
					}

					var labels []int
					var n int
					switch method := c.String(flagMethod); method {
					case "dbscan":
						labels, n, err = cluster.DBSCAN(pts, c.Float64(flagEps), c.Int(flagMinPts))
					case "percolation":
						labels, n, err = cluster.Percolation(pts, c.Float64(flagRadius))
					case "kmeans":
						_, labels, err = cluster.KMeans(pts, c.Int(flagKNeighbors), c.Bool(flagNormalize))
						n = c.Int(flagKNeighbors)
					default:
						return errors.Errorf("unknown clustering method %q", method)
					}
					if err != nil {
						return err
					}
					logger.Infow("clustered points", "points", len(pts), "clusters", n)
					return pointio.WriteLabelsToCSV(c.String(flagOutput), "cluster", labels)
				},
			},
			{
				Name:  "metrics",
				Usage: "measure a point set and write the curve or values as CSV",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: flagMethod, Aliases: []string{"m"}, Required: true,
						Usage: "rdf | adf | density | nn | boundary"},
					&cli.Float64Flag{Name: flagBinWidth, Value: 0.01, Usage: "rdf/adf: histogram bin width"},
					&cli.Float64Flag{Name: flagMaxDist, Value: 0.5, Usage: "rdf: largest separation measured"},
					&cli.IntFlag{Name: flagKNeighbors, Value: 5, Usage: "adf/density: neighbors per point"},
					inputFlag,
					outputFlag,
				}, domainFlags...),
				Action: func(c *cli.Context) error {
					pts, err := pointio.ReadPointsFromCSV(c.String(flagInput), logger)
					if err != nil {
						return err
					}
					output := c.String(flagOutput)

					var values []float64
					switch method := c.String(flagMethod); method {
					case "rdf":
						radii, g, err := metrics.RadialDistribution(
							pts, domainFromFlags(c), c.Float64(flagBinWidth), c.Float64(flagMaxDist))
						if err != nil {
							return err
						}
						values = g
						if err := pointio.WriteCurveToCSV(output, "r", "g", radii, g); err != nil {
							return err
						}
					case "adf":
						angles, g, err := metrics.AngleDistribution(
							pts, c.Float64(flagBinWidth), c.Int(flagKNeighbors))
						if err != nil {
							return err
						}
						values = g
						if err := pointio.WriteCurveToCSV(output, "angle", "g", angles, g); err != nil {
							return err
						}
					case "density":
						values, err = metrics.LocalDensity(pts, c.Int(flagKNeighbors))
						if err != nil {
							return err
						}
						if err := pointio.WriteValuesToCSV(output, "density", values); err != nil {
							return err
						}
					case "nn":
						values, err = metrics.NearestNeighborDistancesSquared(pts)
						if err != nil {
							return err
						}
						if err := pointio.WriteValuesToCSV(output, "nn_dist_sq", values); err != nil {
							return err
						}
					case "boundary":
						values, err = metrics.BoundaryDistances(pts, domainFromFlags(c))
						if err != nil {
							return err
						}
						if err := pointio.WriteValuesToCSV(output, "boundary", values); err != nil {
							return err
						}
					default:
						return errors.Errorf("unknown metric %q", method)
					}

					s, err := metrics.Summarize(values)
					if err != nil {
						return err
					}
					logger.Infow("metric summary",
						"metric", c.String(flagMethod),
						"count", s.Count,
						"mean", s.Mean,
						"median", s.Median,
						"min", s.Min,
						"max", s.Max,
						"stddev", s.StdDev,
					)
					return nil
				},
			},
			{
				Name:  "render",
				Usage: "draw a point set (optionally colored by labels) to a PNG",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagLabels, Usage: "labels CSV to color by"},
					&cli.IntFlag{Name: flagWidth, Usage: "image width in pixels"},
					&cli.IntFlag{Name: flagHeight, Usage: "image height in pixels"},
					&cli.Float64Flag{Name: flagPointSize, Usage: "point radius in pixels"},
					inputFlag,
					outputFlag,
				},
				Action: func(c *cli.Context) error {
					pts, err := pointio.ReadPointsFromCSV(c.String(flagInput), logger)
					if err != nil {
						return err
					}
					cfg := render.Config{
						Width:       c.Int(flagWidth),
						Height:      c.Int(flagHeight),
						PointRadius: c.Float64(flagPointSize),
					}
					if labelsFile := c.String(flagLabels); labelsFile != "" {
						labels, err := pointio.ReadLabelsFromCSV(labelsFile, logger)
						if err != nil {
							return err
						}
						return render.SaveLabeledPNG(c.String(flagOutput), pts, labels, cfg)
					}
					return render.SavePointsPNG(c.String(flagOutput), pts, cfg)
				},
			},
			{
				Name:      "run",
				Usage:     "execute a pipeline JSON file",
				ArgsUsage: "<pipeline.json>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return errors.New("expected exactly one pipeline file argument")
					}
					p, err := config.ReadPipeline(c.Args().First(), logger)
					if err != nil {
						return err
					}
					return runPipeline(p, logger)
				},
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
