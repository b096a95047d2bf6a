// Package config provides YAML configuration parsing for Gradebook.
//
// This package enables running Gradebook as a standalone binary with a
// configuration file, as an alternative to the programmatic SDK approach.
//
// Example configuration:
//
//	title: Sistema de Gestión de Notas
//	modification_limit: 3
//	grading: five-point
//
//	export:
//	  filename: reporte_estudiantes.csv
//
// The grading section accepts either a named preset ("percent",
// "five-point") or a structured range:
//
//	grading:
//	  min: 1.0
//	  max: 5.0
//	  pass_threshold: 3.0
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults applied by [Parse] when the corresponding field is absent.
const (
	defaultLimit    = 3
	defaultFilename = "reporte_estudiantes.csv"
)

// Config is the root configuration structure for Gradebook.
//
// It maps directly to the YAML configuration file structure.
// Use [Load] or [Parse] to create a Config from YAML.
type Config struct {
	// Title is the display title. Supports environment variable
	// substitution: ${VAR} or ${VAR:-default}.
	Title string `yaml:"title"`

	// ModificationLimit is the per-student grade modification budget.
	// Defaults to 3.
	ModificationLimit int `yaml:"modification_limit"`

	// Grading selects the grade range and pass threshold. Can be a named
	// preset ("percent", "five-point") or a structured range.
	// Defaults to the percent preset.
	Grading Grading `yaml:"grading"`

	// Export configures the CSV report.
	Export ExportConfig `yaml:"export"`
}

// ExportConfig configures the downloadable CSV report.
type ExportConfig struct {
	// Filename is the conventional download name for the report.
	// Supports environment variable substitution.
	// Defaults to "reporte_estudiantes.csv".
	Filename string `yaml:"filename"`
}

// Grading specifies the grade range and pass threshold.
//
// It supports two formats in YAML:
//
// Preset string:
//
//	grading: percent      # 0–100, pass at 60
//	grading: five-point   # 1–5, pass at 3
//
// Structured object (all three fields required):
//
//	grading:
//	  min: 1.0
//	  max: 5.0
//	  pass_threshold: 3.0
type Grading struct {
	// Min is the lowest acceptable grade (inclusive).
	Min float64

	// Max is the highest acceptable grade (inclusive).
	Max float64

	// PassThreshold is the grade at or above which a student passes.
	PassThreshold float64

	// set records whether the YAML document specified grading at all,
	// so Parse can apply the default preset.
	set bool
}

// Named grading presets.
var presets = map[string]Grading{
	"percent":    {Min: 0, Max: 100, PassThreshold: 60, set: true},
	"five-point": {Min: 1, Max: 5, PassThreshold: 3, set: true},
	"five_point": {Min: 1, Max: 5, PassThreshold: 3, set: true},
}

// UnmarshalYAML implements yaml.Unmarshaler for Grading.
func (g *Grading) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		preset, ok := presets[strings.TrimSpace(strings.ToLower(s))]
		if !ok {
			return fmt.Errorf("unknown grading preset %q (expected 'percent' or 'five-point')", s)
		}
		*g = preset
		return nil
	}

	if node.Kind == yaml.MappingNode {
		// temporary struct to avoid infinite recursion; pointers to
		// distinguish absent fields from legitimate zeros
		var raw struct {
			Min           *float64 `yaml:"min"`
			Max           *float64 `yaml:"max"`
			PassThreshold *float64 `yaml:"pass_threshold"`
		}
		if err := node.Decode(&raw); err != nil {
			return err
		}
		if raw.Min == nil || raw.Max == nil || raw.PassThreshold == nil {
			return fmt.Errorf("structured grading requires min, max, and pass_threshold")
		}
		g.Min = *raw.Min
		g.Max = *raw.Max
		g.PassThreshold = *raw.PassThreshold
		g.set = true
		return nil
	}

	return fmt.Errorf("grading must be a preset string or object, got %v", node.Kind)
}

// envVarPattern matches ${VAR} and ${VAR:-default} patterns.
// Group 1: variable name
// Group 2: the ":-default" part (if present, indicates a default was specified)
// Group 3: the default value (may be empty for ${VAR:-})
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} patterns with environment values.
func expandEnvVars(s string) (string, error) {
	var firstErr error

	result := envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if firstErr != nil {
			return match
		}

		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		hasDefault := len(submatches) > 2 && submatches[2] != ""
		defaultVal := ""
		if hasDefault && len(submatches) > 3 {
			defaultVal = submatches[3]
		}

		value, exists := os.LookupEnv(varName)
		if !exists {
			if hasDefault {
				return defaultVal
			}
			firstErr = fmt.Errorf("environment variable %q is not set", varName)
			return match
		}
		return value
	})

	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

// Load reads and parses a YAML configuration file.
//
// Environment variables in the file are expanded before parsing.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML configuration data.
//
// Environment variables are expanded in Title and Export.Filename.
// Defaults are applied for ModificationLimit (3), Grading (percent preset),
// and Export.Filename ("reporte_estudiantes.csv").
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.ModificationLimit == 0 {
		cfg.ModificationLimit = defaultLimit
	}
	if !cfg.Grading.set {
		cfg.Grading = presets["percent"]
	}
	if cfg.Export.Filename == "" {
		cfg.Export.Filename = defaultFilename
	}

	if err := cfg.expandAndValidate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// expandAndValidate expands environment variables and validates the config.
func (c *Config) expandAndValidate() error {
	expanded, err := expandEnvVars(c.Title)
	if err != nil {
		return fmt.Errorf("title: %w", err)
	}
	c.Title = expanded

	expanded, err = expandEnvVars(c.Export.Filename)
	if err != nil {
		return fmt.Errorf("export.filename: %w", err)
	}
	c.Export.Filename = expanded

	if c.ModificationLimit < 1 {
		return fmt.Errorf("modification_limit must be at least 1, got %d", c.ModificationLimit)
	}

	if c.Grading.Min >= c.Grading.Max {
		return fmt.Errorf("grading: min must be below max, got [%v, %v]", c.Grading.Min, c.Grading.Max)
	}
	if c.Grading.PassThreshold < c.Grading.Min || c.Grading.PassThreshold > c.Grading.Max {
		return fmt.Errorf("grading: pass_threshold %v outside range [%v, %v]",
			c.Grading.PassThreshold, c.Grading.Min, c.Grading.Max)
	}

	if strings.TrimSpace(c.Export.Filename) == "" {
		return fmt.Errorf("export.filename cannot be blank")
	}

	return nil
}
