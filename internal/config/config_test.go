package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	if cfg.Start != 0.25 {
		t.Errorf("Start = %v, want 0.25", cfg.Start)
	}
	if cfg.End != 2.0 {
		t.Errorf("End = %v, want 2.0", cfg.End)
	}
	if cfg.Steps != 8 {
		t.Errorf("Steps = %d, want 8", cfg.Steps)
	}
	if cfg.Samples != 100 {
		t.Errorf("Samples = %d, want 100", cfg.Samples)
	}
	if cfg.ClusterStd != 0.5 {
		t.Errorf("ClusterStd = %v, want 0.5", cfg.ClusterStd)
	}
	if cfg.OutputDir != "results" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "results")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "zero samples",
			mutate:  func(c *Config) { c.Samples = 0 },
			wantErr: ErrInvalidSampleCount,
		},
		{
			name:    "negative samples",
			mutate:  func(c *Config) { c.Samples = -5 },
			wantErr: ErrInvalidSampleCount,
		},
		{
			name:    "zero steps",
			mutate:  func(c *Config) { c.Steps = 0 },
			wantErr: ErrInvalidStepCount,
		},
		{
			name:    "start exceeds end with multiple steps",
			mutate:  func(c *Config) { c.Start = 3.0 },
			wantErr: ErrInvalidRange,
		},
		{
			name: "start exceeds end with single step is valid",
			mutate: func(c *Config) {
				c.Start = 3.0
				c.Steps = 1
			},
			wantErr: nil,
		},
		{
			name:    "non-positive std",
			mutate:  func(c *Config) { c.ClusterStd = 0 },
			wantErr: ErrInvalidClusterStd,
		},
		{
			name:    "grid too small",
			mutate:  func(c *Config) { c.GridSize = 1 },
			wantErr: ErrInvalidGridSize,
		},
		{
			name:    "margin level at half",
			mutate:  func(c *Config) { c.MarginLevel = 0.5 },
			wantErr: ErrInvalidMarginLevel,
		},
		{
			name:    "margin level at one",
			mutate:  func(c *Config) { c.MarginLevel = 1.0 },
			wantErr: ErrInvalidMarginLevel,
		},
		{
			name:    "zero parallelism",
			mutate:  func(c *Config) { c.Parallelism = 0 },
			wantErr: ErrInvalidParallelism,
		},
		{
			name:    "empty output dir",
			mutate:  func(c *Config) { c.OutputDir = "" },
			wantErr: ErrNoOutputDir,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("applies set fields and keeps defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".shiftlab")
		content := "start: 0.5\nsteps: 4\nseed: 42\noutput: out\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cfg := NewConfig()
		cf.Apply(cfg)

		if cfg.Start != 0.5 {
			t.Errorf("Start = %v, want 0.5", cfg.Start)
		}
		if cfg.Steps != 4 {
			t.Errorf("Steps = %d, want 4", cfg.Steps)
		}
		if cfg.Seed != 42 {
			t.Errorf("Seed = %d, want 42", cfg.Seed)
		}
		if cfg.OutputDir != "out" {
			t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "out")
		}
		// Unset keys keep their defaults.
		if cfg.End != DefaultEnd {
			t.Errorf("End = %v, want default %v", cfg.End, DefaultEnd)
		}
		if cfg.Samples != DefaultSamples {
			t.Errorf("Samples = %d, want default %d", cfg.Samples, DefaultSamples)
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("err = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("malformed yaml returns error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".shiftlab")
		if err := os.WriteFile(path, []byte("steps: [not a number"), 0o600); err != nil {
			t.Fatal(err)
		}

		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected error for malformed yaml")
		}
	})
}

func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit existing path wins", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "sweep.yaml")
		if err := os.WriteFile(path, []byte("steps: 2\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		if got := FindConfigFile(path); got != path {
			t.Errorf("FindConfigFile = %q, want %q", got, path)
		}
	})

	t.Run("explicit missing path returns empty", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile(filepath.Join(t.TempDir(), "absent.yaml")); got != "" {
			t.Errorf("FindConfigFile = %q, want empty", got)
		}
	})
}
