// Package config handles adoc CLI configuration file loading and
// validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-asciidoc/asciidoc/internal/adocerrs"
	"github.com/go-asciidoc/asciidoc/internal/theme"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the adoc configuration file.
const ConfigFileName = ".adoc.yaml"

// Config holds adoc's CLI configuration.
type Config struct {
	// ProjectRoot is the absolute path to the directory .adoc.yaml was
	// found in, or the starting directory if none was found.
	ProjectRoot string `yaml:"-"`

	// Theme is the name of a color theme; Validate checks that it exists.
	// No command applies it to its output.
	Theme string `yaml:"theme"`

	// DefaultFormat names an output format, "tree" or "json", and is
	// checked by Validate. `adoc parse` does not read it: without
	// `--format` it prints the tree format.
	DefaultFormat string `yaml:"default_format"`

	// InitialAttributes seeds the document-attribute state before
	// parsing, as if each entry appeared in the header with the lowest
	// precedence.
	InitialAttributes map[string]string `yaml:"attributes"`

	// LockedAttributes names attributes that cannot be overridden by
	// attribute entries found in parsed sources.
	LockedAttributes []string `yaml:"locked_attributes"`

	// WatchDebounceMillis is the quiet period `adoc watch` waits after
	// the last filesystem event before re-parsing.
	WatchDebounceMillis int `yaml:"watch_debounce_ms"`
}

const (
	defaultTheme           = "default"
	defaultFormat          = "tree"
	defaultWatchDebounceMs = 200
)

// Load searches for .adoc.yaml starting from the current working
// directory, walking up the directory tree. If found, it parses the
// configuration. If not found, it returns default configuration.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	return LoadFromPath(cwd)
}

// LoadFromPath searches for .adoc.yaml starting from the given path,
// walking up the directory tree.
func LoadFromPath(startPath string) (*Config, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path for %q: %w", startPath, err)
	}

	currentPath := absPath
	for {
		configPath := filepath.Join(currentPath, ConfigFileName)

		if _, err := os.Stat(configPath); err == nil {
			cfg, err := parseConfigFile(configPath)
			if err != nil {
				return nil, err
			}

			cfg.ProjectRoot = currentPath

			if err := cfg.validate(); err != nil {
				return nil, fmt.Errorf("invalid configuration in %s: %w", configPath, err)
			}

			return cfg, nil
		}

		parentPath := filepath.Dir(currentPath)
		if parentPath == currentPath {
			break
		}

		currentPath = parentPath
	}

	return &Config{
		ProjectRoot:         absPath,
		Theme:               defaultTheme,
		DefaultFormat:       defaultFormat,
		WatchDebounceMillis: defaultWatchDebounceMs,
	}, nil
}

func parseConfigFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &adocerrs.ConfigParseError{Path: configPath, Err: err}
	}

	if cfg.Theme == "" {
		cfg.Theme = defaultTheme
	}

	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = defaultFormat
	}

	if cfg.WatchDebounceMillis == 0 {
		cfg.WatchDebounceMillis = defaultWatchDebounceMs
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.DefaultFormat != "tree" && c.DefaultFormat != "json" {
		return fmt.Errorf("default_format must be \"tree\" or \"json\", got %q", c.DefaultFormat)
	}

	if _, err := theme.Get(c.Theme); err != nil {
		available := theme.Available()

		return fmt.Errorf("invalid theme '%s', available themes: %s", c.Theme, strings.Join(available, ", "))
	}

	return nil
}
