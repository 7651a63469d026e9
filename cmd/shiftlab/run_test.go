package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/clusterlab/shiftlab/internal/config"
)

// executeRun runs the root command with the given run arguments.
func executeRun(t *testing.T, args ...string) error {
	t.Helper()

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"run"}, args...))
	return cmd.Execute()
}

func TestRunCmdRejectsInvalidParameters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			name:    "zero samples",
			args:    []string{"--samples", "0"},
			wantErr: config.ErrInvalidSampleCount,
		},
		{
			name:    "zero steps",
			args:    []string{"--steps", "0"},
			wantErr: config.ErrInvalidStepCount,
		},
		{
			name:    "start beyond end",
			args:    []string{"--start", "5.0", "--end", "1.0"},
			wantErr: config.ErrInvalidRange,
		},
		{
			name:    "negative std",
			args:    []string{"--std", "-0.5"},
			wantErr: config.ErrInvalidClusterStd,
		},
		{
			name:    "margin level too low",
			args:    []string{"--margin-level", "0.4"},
			wantErr: config.ErrInvalidMarginLevel,
		},
		{
			name:    "empty output",
			args:    []string{"--output", ""},
			wantErr: config.ErrNoOutputDir,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := executeRun(t, tt.args...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRunCmdRejectsPositionalArgs(t *testing.T) {
	t.Parallel()

	if err := executeRun(t, "extra"); err == nil {
		t.Error("expected error for positional arguments")
	}
}

func TestRunCmdExplicitMissingConfigFile(t *testing.T) {
	t.Parallel()

	err := executeRun(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Errorf("err = %v, want ErrConfigNotFound", err)
	}
}

func TestBuildConfigFlagOverridesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".shiftlab")
	if err := os.WriteFile(path, []byte("steps: 4\nsamples: 50\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cmd := NewRunCmd()
	if err := cmd.Flags().Set("config", path); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("steps", "12"); err != nil {
		t.Fatal(err)
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The explicitly set flag wins over the file; the file wins over
	// the default.
	if cfg.Steps != 12 {
		t.Errorf("Steps = %d, want flag value 12", cfg.Steps)
	}
	if cfg.Samples != 50 {
		t.Errorf("Samples = %d, want file value 50", cfg.Samples)
	}
	if cfg.End != config.DefaultEnd {
		t.Errorf("End = %v, want default %v", cfg.End, config.DefaultEnd)
	}
}
