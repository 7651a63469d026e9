package experiment

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/clusterlab/shiftlab/internal/boundary"
	"github.com/clusterlab/shiftlab/internal/classifier"
	"github.com/clusterlab/shiftlab/internal/cluster"
	"github.com/clusterlab/shiftlab/internal/config"
	"github.com/clusterlab/shiftlab/internal/model"
)

// fieldPadding widens the probability grid beyond the data bounds so
// the high-confidence contours have room to close around the clusters.
const fieldPadding = 1.0

// Runner executes one experiment sweep.
type Runner struct {
	cfg    *config.Config
	gen    *cluster.Generator
	fitter *classifier.Logistic
	logger *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets a custom logger for the runner.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithFitter replaces the default logistic solver.
func WithFitter(fitter *classifier.Logistic) Option {
	return func(r *Runner) {
		if fitter != nil {
			r.fitter = fitter
		}
	}
}

// NewRunner creates a Runner for the given, already validated,
// configuration.
func NewRunner(cfg *config.Config, opts ...Option) (*Runner, error) {
	gen, err := cluster.NewGenerator(cfg.Samples, cfg.ClusterStd, cfg.Seed)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		cfg:    cfg,
		gen:    gen,
		fitter: classifier.NewLogistic(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r, nil
}

// Run executes the sweep and returns the ordered result, one record per
// requested distance. The first stage failure aborts the whole run.
func (r *Runner) Run(ctx context.Context) (*model.Result, error) {
	distances := model.Linspace(r.cfg.Start, r.cfg.End, r.cfg.Steps)
	records := make([]*model.Record, len(distances))

	if r.cfg.Parallelism > 1 {
		if err := r.runParallel(ctx, distances, records); err != nil {
			return nil, err
		}
	} else {
		for i, d := range distances {
			// Check for cancellation between iterations; each
			// iteration itself runs to completion.
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}

			rec, err := r.runOne(d)
			if err != nil {
				return nil, err
			}
			records[i] = rec
		}
	}

	return &model.Result{
		Records:    records,
		Samples:    r.cfg.Samples,
		ClusterStd: r.cfg.ClusterStd,
		Seed:       r.cfg.Seed,
	}, nil
}

// runParallel executes iterations concurrently, bounded by the
// configured parallelism. Each record lands in its own index slot, so
// the merged result keeps distance order rather than completion order.
func (r *Runner) runParallel(ctx context.Context, distances []float64, records []*model.Record) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Parallelism)

	for i, d := range distances {
		i, d := i, d
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			rec, err := r.runOne(d)
			if err != nil {
				return err
			}
			records[i] = rec
			return nil
		})
	}

	return g.Wait()
}

// runOne performs the full generate/fit/analyze chain for a single
// shift distance.
func (r *Runner) runOne(distance float64) (*model.Record, error) {
	logger := r.logger.With(slog.Float64("distance", distance))
	logger.Debug("generating clusters")

	ds, err := r.gen.Generate(distance)
	if err != nil {
		return nil, fmt.Errorf("distance %g: generate: %w", distance, err)
	}

	fitted, err := r.fitter.Fit(ds)
	if err != nil {
		return nil, fmt.Errorf("distance %g: fit: %w", distance, err)
	}
	fit := fitted.Params()

	slope, intercept, err := boundary.Line(fit)
	if err != nil {
		return nil, fmt.Errorf("distance %g: %w", distance, err)
	}

	loss, err := boundary.LogLoss(ds.Labels, fitted.PredictProbability(ds.Points))
	if err != nil {
		return nil, fmt.Errorf("distance %g: log-loss: %w", distance, err)
	}

	field := r.sampleField(ds, fitted)

	bands := make([]model.ContourBand, 0, len(config.ShadingLevels))
	for _, level := range config.ShadingLevels {
		bands = append(bands, model.ContourBand{
			Level:  level,
			Class1: boundary.ContourAt(field, level),
			Class0: boundary.ContourAt(field, 1-level),
		})
	}

	margin, err := r.marginAt(bands, field)
	if err != nil {
		return nil, fmt.Errorf("distance %g: %w", distance, err)
	}

	logger.Info("experiment record complete",
		slog.Float64("slope", slope),
		slog.Float64("log_loss", loss),
		slog.Float64("margin_width", margin),
	)

	return &model.Record{
		Distance:    distance,
		Fit:         fit,
		Slope:       slope,
		Intercept:   intercept,
		LogLoss:     loss,
		MarginWidth: margin,
		Dataset:     ds,
		Field:       field,
		Bands:       bands,
	}, nil
}

// sampleField predicts the class-1 probability over a square grid
// covering the dataset bounds padded by one unit on every side.
func (r *Runner) sampleField(ds *model.Dataset, fitted *classifier.Model) *model.Field {
	min, max := ds.Bounds()
	min.X1 -= fieldPadding
	min.X2 -= fieldPadding
	max.X1 += fieldPadding
	max.X2 += fieldPadding

	field := model.NewField(min, max, r.cfg.GridSize)
	copy(field.Probs, fitted.PredictProbability(field.GridPoints()))
	return field
}

// marginAt computes the margin width from the shading band at the
// configured margin level, reusing its contours when present. Levels
// other than the margin level are extracted for shading only and never
// feed the metric.
func (r *Runner) marginAt(bands []model.ContourBand, field *model.Field) (float64, error) {
	for _, band := range bands {
		if band.Level == r.cfg.MarginLevel {
			return boundary.MarginBetween(band.Class1, band.Class0)
		}
	}
	return boundary.MarginWidth(field, r.cfg.MarginLevel)
}
