package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/clusterlab/shiftlab/internal/config"
	"github.com/clusterlab/shiftlab/internal/experiment"
	applog "github.com/clusterlab/shiftlab/internal/log"
	"github.com/clusterlab/shiftlab/internal/render"
)

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the shift-distance sweep and render its artifacts",
		Long: `Run sweeps linearly spaced shift distances between two synthetic
clusters. For each distance it synthesizes a labeled dataset, fits a
logistic classifier, derives the decision boundary and the margin width
between the high-confidence probability contours, and records the
training log-loss.

Artifacts written to the output directory:
  dataset.png                        per-distance scatter and boundaries
  parameters_vs_shift_distance.png   parameter and metric trends
  summary.md                         Markdown metrics table (with --markdown)

Examples:
  # Default sweep: 8 distances from 0.25 to 2.0
  shiftlab run

  # Denser sweep with a Markdown summary
  shiftlab run --start 0.1 --end 3.0 --steps 16 --markdown

  # Reproduce a sweep under a different seed, four iterations at a time
  shiftlab run --seed 7 --parallel 4

Configuration file (.shiftlab) example:
  start: 0.25
  end: 2.0
  steps: 8
  samples: 100
  std: 0.5
  output: results`,
		Args: cobra.NoArgs,
		RunE: runRunCmd,
	}

	// Sweep flags
	cmd.Flags().Float64("start", config.DefaultStart, "First shift distance")
	cmd.Flags().Float64("end", config.DefaultEnd, "Last shift distance (inclusive)")
	cmd.Flags().Int("steps", config.DefaultSteps, "Number of linearly spaced distances")

	// Dataset flags
	cmd.Flags().Int("samples", config.DefaultSamples, "Samples per cluster")
	cmd.Flags().Float64("std", config.DefaultClusterStd, "Cluster standard deviation")
	cmd.Flags().Uint64("seed", config.DefaultSeed, "RNG seed for dataset generation")

	// Analysis flags
	cmd.Flags().Int("grid", config.DefaultGridSize, "Probability field samples per axis")
	cmd.Flags().Float64("margin-level", config.DefaultMarginLevel, "Confidence level for the margin metric")

	// Execution flags
	cmd.Flags().IntP("parallel", "p", config.DefaultParallelism, "Concurrent experiment iterations")

	// Output flags
	cmd.Flags().StringP("output", "o", config.DefaultOutputDir, "Output directory for artifacts")
	cmd.Flags().BoolP("markdown", "m", false, "Also write a Markdown summary")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .shiftlab in current or home directory)")

	return cmd
}

// runRunCmd executes the run command.
func runRunCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(getVerboseFlag(cmd))
	slog.SetDefault(logger)

	// Cancel the sweep on interrupt so a long run exits cleanly.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runSweep(ctx, cfg, logger)
}

// runSweep executes the experiments and renders the artifacts.
func runSweep(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	runner, err := experiment.NewRunner(cfg, experiment.WithLogger(logger))
	if err != nil {
		return err
	}

	logger.Info("starting sweep",
		slog.Float64("start", cfg.Start),
		slog.Float64("end", cfg.End),
		slog.Int("steps", cfg.Steps),
		slog.Int("samples", cfg.Samples),
	)

	result, err := runner.Run(ctx)
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}

	renderers := []render.Renderer{
		render.NewScatterRenderer(cfg.OutputDir),
		render.NewTrendRenderer(cfg.OutputDir),
	}
	if cfg.Markdown {
		renderers = append(renderers, render.NewMarkdownRenderer(cfg.OutputDir))
	}

	if err := render.NewMultiRenderer(renderers...).Render(result); err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}

	logger.Info("sweep complete",
		slog.Int("records", len(result.Records)),
		slog.String("output", cfg.OutputDir),
	)
	return nil
}

// buildConfig creates a Config from the configuration file and the
// command flags. File values override defaults; explicitly set flags
// override the file.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg.ConfigFilePath = configPath

	if found := config.FindConfigFile(configPath); found != "" {
		cf, err := config.LoadConfigFile(found)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", found, err)
		}
		cf.Apply(cfg)
	} else if configPath != "" {
		// An explicitly requested file that cannot be found is an
		// error; a missing default-location file is not.
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, configPath)
	}

	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags copies every flag the user set explicitly onto cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	var firstErr error
	setFloat := func(name string, dst *float64) {
		if flags.Changed(name) && firstErr == nil {
			v, err := flags.GetFloat64(name)
			if err != nil {
				firstErr = err
				return
			}
			*dst = v
		}
	}
	setInt := func(name string, dst *int) {
		if flags.Changed(name) && firstErr == nil {
			v, err := flags.GetInt(name)
			if err != nil {
				firstErr = err
				return
			}
			*dst = v
		}
	}

	setFloat("start", &cfg.Start)
	setFloat("end", &cfg.End)
	setFloat("std", &cfg.ClusterStd)
	setFloat("margin-level", &cfg.MarginLevel)
	setInt("steps", &cfg.Steps)
	setInt("samples", &cfg.Samples)
	setInt("grid", &cfg.GridSize)
	setInt("parallel", &cfg.Parallelism)
	if firstErr != nil {
		return firstErr
	}

	if flags.Changed("seed") {
		seed, err := flags.GetUint64("seed")
		if err != nil {
			return err
		}
		cfg.Seed = seed
	}
	if flags.Changed("output") {
		out, err := flags.GetString("output")
		if err != nil {
			return err
		}
		cfg.OutputDir = out
	}

	markdown, err := flags.GetBool("markdown")
	if err != nil {
		return err
	}
	cfg.Markdown = markdown

	cfg.Verbose = getVerboseFlag(cmd)
	return nil
}

// getVerboseFlag retrieves the verbose flag from the command or its
// parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger builds the application logger: a text handler wrapped so
// float attributes render compactly.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	inner := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(applog.NewRunHandler(inner))
}
