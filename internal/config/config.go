// Package config loads trk settings from YAML files: a global file under
// the user config directory and an optional per-project override inside
// .trk. Project values win over global values over defaults.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configurable trk settings.
type Config struct {
	Author      string `yaml:"author"`       // overrides git identity at init
	ShowCommits *bool  `yaml:"show_commits"` // default commit visibility for new sheets
	OutputDir   string `yaml:"output_dir"`   // where reports are written
	TidyPath    string `yaml:"tidy_path"`    // html post-processor binary
	Viewer      string `yaml:"viewer"`       // report opener override
}

// Defaults returns sensible default configuration values.
func Defaults() Config {
	return Config{
		OutputDir: ".",
		TidyPath:  "tidy",
	}
}

// globalPath returns the global config location, honoring XDG_CONFIG_HOME.
func globalPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "trk", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "trk", "config.yaml"), nil
}

// LoadGlobal reads the global config file.
// Returns defaults if the file is absent.
func LoadGlobal() (*Config, error) {
	path, err := globalPath()
	if err != nil {
		return nil, err
	}
	return loadFile(path, true)
}

// LoadProject reads .trk/config.yaml under root.
// Returns nil (no error) if the file is absent.
func LoadProject(root string) (*Config, error) {
	return loadFile(filepath.Join(root, ".trk", "config.yaml"), false)
}

// loadFile reads and parses a YAML config file at path.
// If returnDefaults is true, returns defaults when the file is absent.
// If returnDefaults is false, returns nil when the file is absent.
func loadFile(path string, returnDefaults bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if returnDefaults {
				d := Defaults()
				return &d, nil
			}
			return nil, nil
		}
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &cfg, nil
}

// Merge combines global and project configs, with project taking precedence.
// Missing keys fall back to global, then defaults.
func Merge(global, project *Config) Config {
	result := Defaults()

	apply := func(c *Config) {
		if c == nil {
			return
		}
		if c.Author != "" {
			result.Author = c.Author
		}
		if c.ShowCommits != nil {
			result.ShowCommits = c.ShowCommits
		}
		if c.OutputDir != "" {
			result.OutputDir = c.OutputDir
		}
		if c.TidyPath != "" {
			result.TidyPath = c.TidyPath
		}
		if c.Viewer != "" {
			result.Viewer = c.Viewer
		}
	}

	apply(global)
	apply(project)
	return result
}

// ParseError is returned when a config file exists but cannot be parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return "failed to parse config file " + e.Path + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
