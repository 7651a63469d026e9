package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default sweep configuration file name.
const DefaultConfigFile = ".shiftlab"

// ErrConfigNotFound is returned when the configuration file does not
// exist. Callers should treat this as fatal only when the path was
// given explicitly by the user.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the YAML shape of a sweep configuration file. All fields are
// optional pointers so that absent keys leave the corresponding Config
// defaults untouched.
type File struct {
	Start       *float64 `yaml:"start"`
	End         *float64 `yaml:"end"`
	Steps       *int     `yaml:"steps"`
	Samples     *int     `yaml:"samples"`
	ClusterStd  *float64 `yaml:"std"`
	Seed        *uint64  `yaml:"seed"`
	OutputDir   *string  `yaml:"output"`
	GridSize    *int     `yaml:"grid"`
	MarginLevel *float64 `yaml:"margin_level"`
	Parallelism *int     `yaml:"parallel"`
}

// LoadConfigFile reads a sweep configuration from a YAML file.
// If the file does not exist it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// Apply copies every set field of the file onto cfg. Flag values that
// the user set explicitly should be re-applied by the caller afterwards
// so flags win over the file.
func (f *File) Apply(cfg *Config) {
	if f.Start != nil {
		cfg.Start = *f.Start
	}
	if f.End != nil {
		cfg.End = *f.End
	}
	if f.Steps != nil {
		cfg.Steps = *f.Steps
	}
	if f.Samples != nil {
		cfg.Samples = *f.Samples
	}
	if f.ClusterStd != nil {
		cfg.ClusterStd = *f.ClusterStd
	}
	if f.Seed != nil {
		cfg.Seed = *f.Seed
	}
	if f.OutputDir != nil {
		cfg.OutputDir = *f.OutputDir
	}
	if f.GridSize != nil {
		cfg.GridSize = *f.GridSize
	}
	if f.MarginLevel != nil {
		cfg.MarginLevel = *f.MarginLevel
	}
	if f.Parallelism != nil {
		cfg.Parallelism = *f.Parallelism
	}
}

// FindConfigFile searches for the sweep configuration file:
//  1. the explicit path, if given
//  2. .shiftlab in the current directory
//  3. config.yaml in the XDG config directory for shiftlab
//  4. .shiftlab in the user's home directory
//
// Returns the path if found, or empty string if not.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		p := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	xdgConfig := filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
