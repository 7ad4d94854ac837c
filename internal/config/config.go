package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/naoina/toml"
	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration.
type Config struct {
	TypeMappings map[string]string `yaml:"typeMappings" json:"typeMappings" toml:"typeMappings"`
	Options      Options           `yaml:"options" json:"options" toml:"options"`
}

// Options represents generation options.
type Options struct {
	BaseName       string   `yaml:"baseName" json:"baseName" toml:"baseName"`
	OutputDir      string   `yaml:"outputDir" json:"outputDir" toml:"outputDir"`
	Guard          string   `yaml:"guard" json:"guard" toml:"guard"`
	UniqueGuard    bool     `yaml:"uniqueGuard" json:"uniqueGuard" toml:"uniqueGuard"`
	GuardNamespace string   `yaml:"guardNamespace" json:"guardNamespace" toml:"guardNamespace"`
	Prefix         string   `yaml:"prefix" json:"prefix" toml:"prefix"`
	SnakeCase      bool     `yaml:"snakeCase" json:"snakeCase" toml:"snakeCase"`
	StaticHelpers  bool     `yaml:"staticHelpers" json:"staticHelpers" toml:"staticHelpers"`
	Typedefs       bool     `yaml:"typedefs" json:"typedefs" toml:"typedefs"`
	BlankLines     int      `yaml:"blankLines" json:"blankLines" toml:"blankLines"`
	Includes       []string `yaml:"includes" json:"includes" toml:"includes"`
	ExportedOnly   bool     `yaml:"exportedOnly" json:"exportedOnly" toml:"exportedOnly"`
	IncludeTypes   []string `yaml:"includeTypes" json:"includeTypes" toml:"includeTypes"`
	ExcludeTypes   []string `yaml:"excludeTypes" json:"excludeTypes" toml:"excludeTypes"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		TypeMappings: DefaultTypeMappings(),
		Options:      DefaultOptions(),
	}
}

// LoadFile loads configuration from a YAML, JSON or TOML file, chosen by
// extension. Keys absent from the file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	// Options are decoded over the current values; mappings are merged.
	loaded := Config{Options: c.Options}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return fmt.Errorf("parsing YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &loaded); err != nil {
			return fmt.Errorf("parsing JSON config: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &loaded); err != nil {
			return fmt.Errorf("parsing TOML config: %w", err)
		}
	default:
		// Try YAML first, then JSON
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			loaded = Config{Options: c.Options}
			if err := json.Unmarshal(data, &loaded); err != nil {
				return fmt.Errorf("unable to parse config as YAML or JSON")
			}
		}
	}

	c.merge(&loaded)

	return c.Validate()
}

// merge merges the loaded config into the current config.
func (c *Config) merge(loaded *Config) {
	for k, v := range loaded.TypeMappings {
		c.TypeMappings[k] = v
	}
	c.Options = loaded.Options
}

// Validate checks option values that cannot be rejected while decoding.
func (c *Config) Validate() error {
	if c.Options.BlankLines < 0 {
		return fmt.Errorf("blankLines must not be negative, got %d", c.Options.BlankLines)
	}
	if c.Options.GuardNamespace != "" {
		if _, err := uuid.Parse(c.Options.GuardNamespace); err != nil {
			return fmt.Errorf("guardNamespace: %w", err)
		}
	}
	return nil
}

// MapType maps a Go type to its C spelling. ok is false when no mapping
// exists.
func (c *Config) MapType(goType string) (string, bool) {
	mapped, ok := c.TypeMappings[goType]
	return mapped, ok
}

// ShouldIncludeType checks if a type should be included based on config.
func (c *Config) ShouldIncludeType(name string, isExported bool) bool {
	if c.Options.ExportedOnly && !isExported {
		return false
	}

	// If an include list is given, the type must be in it
	if len(c.Options.IncludeTypes) > 0 && !slices.Contains(c.Options.IncludeTypes, name) {
		return false
	}

	return !slices.Contains(c.Options.ExcludeTypes, name)
}
