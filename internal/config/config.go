// Package config loads mdalint project settings from .mdalint.yaml or the
// [tool.mdalint] table of pyproject.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the dedicated project configuration file.
	FileName = ".mdalint.yaml"
	// PyProjectName is the Python project manifest searched as a fallback.
	PyProjectName = "pyproject.toml"

	DefaultReportsDir = ".mdalint-reports"
	DefaultWorkers    = 0

	maxParentWalk = 10
)

// Config holds the settings shared by the mdalint commands. A zero Workers
// means one worker per CPU.
type Config struct {
	Workers        int      `yaml:"workers,omitempty" toml:"workers"`
	Exclude        []string `yaml:"exclude,omitempty" toml:"exclude"`
	Reports        string   `yaml:"reports,omitempty" toml:"reports"`
	CacheDir       string   `yaml:"cache_dir,omitempty" toml:"cache_dir"`
	UseCache       *bool    `yaml:"use_cache,omitempty" toml:"use_cache"`
	FailOnPossible *bool    `yaml:"fail_on_possible,omitempty" toml:"fail_on_possible"`

	// Source is the file the settings were read from, empty for defaults.
	Source string `yaml:"-" toml:"-"`
}

type pyProject struct {
	Tool struct {
		Mdalint Config `toml:"mdalint"`
	} `toml:"tool"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Workers:        DefaultWorkers,
		Exclude:        []string{},
		Reports:        DefaultReportsDir,
		UseCache:       boolPtr(true),
		FailOnPossible: boolPtr(false),
	}
}

// Load walks up from startDir looking for .mdalint.yaml, or a pyproject.toml
// that declares [tool.mdalint]. Missing files yield the defaults.
func Load(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", startDir, err)
	}

	for range maxParentWalk {
		cfg, err := loadDir(dir)
		if err == nil {
			return cfg, nil
		}

		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return New(), nil
}

// LoadFile reads an explicit configuration file. Files named pyproject.toml
// or ending in .toml are read as TOML, everything else as YAML.
func LoadFile(path string) (*Config, error) {
	var (
		fileCfg *Config
		err     error
	)

	switch {
	case filepath.Base(path) == PyProjectName:
		fileCfg, err = readPyProject(path)
	case filepath.Ext(path) == ".toml":
		fileCfg, err = readTOML(path)
	default:
		fileCfg, err = readYAML(path)
	}

	if err != nil {
		return nil, err
	}

	cfg := New()
	merge(cfg, fileCfg)
	cfg.Source = path

	return cfg, nil
}

func loadDir(dir string) (*Config, error) {
	candidates := []struct {
		name string
		read func(string) (*Config, error)
	}{
		{FileName, readYAML},
		{PyProjectName, readPyProject},
	}

	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate.name)

		fileCfg, err := candidate.read(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}

		if err != nil {
			return nil, err
		}

		cfg := New()
		merge(cfg, fileCfg)
		cfg.Source = path

		return cfg, nil
	}

	return nil, os.ErrNotExist
}

func readYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, err
		}

		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &cfg, nil
}

func readTOML(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, err
		}

		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// readPyProject reports os.ErrNotExist when the manifest has no
// [tool.mdalint] table, so the search keeps walking up.
func readPyProject(path string) (*Config, error) {
	var project pyProject

	meta, err := toml.DecodeFile(path, &project)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, err
		}

		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if !meta.IsDefined("tool", "mdalint") {
		return nil, fmt.Errorf("%s has no [tool.mdalint] table: %w", path, os.ErrNotExist)
	}

	return &project.Tool.Mdalint, nil
}

// merge overlays non-zero values from src onto dst.
func merge(dst, src *Config) {
	if src.Workers != 0 {
		dst.Workers = src.Workers
	}

	if len(src.Exclude) > 0 {
		dst.Exclude = append([]string(nil), src.Exclude...)
	}

	if src.Reports != "" {
		dst.Reports = src.Reports
	}

	if src.CacheDir != "" {
		dst.CacheDir = src.CacheDir
	}

	if src.UseCache != nil {
		dst.UseCache = src.UseCache
	}

	if src.FailOnPossible != nil {
		dst.FailOnPossible = src.FailOnPossible
	}
}

// CacheEnabled reports whether the result cache should be consulted.
func (c *Config) CacheEnabled() bool {
	return c.UseCache == nil || *c.UseCache
}

// FailsOnPossible reports whether possible badges fail the run.
func (c *Config) FailsOnPossible() bool {
	return c.FailOnPossible != nil && *c.FailOnPossible
}

func boolPtr(b bool) *bool {
	return &b
}
