// Package config loads .remod.toml project configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/dhamidi/remod/lint"
)

// FileName is the configuration file remod looks for.
const FileName = ".remod.toml"

// Config is the on-disk configuration.
type Config struct {
	// Path of the file the configuration was loaded from, empty for
	// the defaults.
	Path string `toml:"-"`

	Rules  RulesConfig  `toml:"rules"`
	Output OutputConfig `toml:"output"`
	Fix    FixConfig    `toml:"fix"`
}

// RulesConfig tunes individual rules by id.
type RulesConfig struct {
	// Disabled lists rule ids that never report.
	Disabled []string `toml:"disabled"`
	// Severity maps rule ids to "info", "warning" or "error".
	Severity map[string]string `toml:"severity"`
}

// OutputConfig tunes diagnostic output.
type OutputConfig struct {
	// Format is "text" or "json".
	Format string `toml:"format"`
	// Color is "auto", "always" or "never".
	Color string `toml:"color"`
}

// FixConfig tunes the fix command.
type FixConfig struct {
	// DryRun prints rewritten files instead of writing them.
	DryRun bool `toml:"dry_run"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Output: OutputConfig{Format: "text", Color: "auto"},
	}
}

// Load reads and validates the configuration at path. Unknown keys are
// an error so typos do not silently disable rules.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// FindUpward searches dir and its parents for a configuration file and
// loads the first one found, falling back to the defaults.
func FindUpward(dir string) (Config, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return Config{}, err
	}
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}

func (c Config) validate() error {
	for rule, sev := range c.Rules.Severity {
		if _, err := lint.ParseSeverity(sev); err != nil {
			return fmt.Errorf("rules.severity.%s: %w", rule, err)
		}
	}
	switch c.Output.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("output.format: unknown format %q", c.Output.Format)
	}
	switch c.Output.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("output.color: unknown mode %q", c.Output.Color)
	}
	return nil
}

// LintOptions converts the configuration into analyzer options.
func (c Config) LintOptions() lint.Options {
	opts := lint.Options{}
	if len(c.Rules.Disabled) > 0 {
		opts.DisabledRules = make(map[string]bool, len(c.Rules.Disabled))
		for _, rule := range c.Rules.Disabled {
			opts.DisabledRules[rule] = true
		}
	}
	if len(c.Rules.Severity) > 0 {
		opts.SeverityOverride = make(map[string]lint.Severity, len(c.Rules.Severity))
		for rule, name := range c.Rules.Severity {
			sev, err := lint.ParseSeverity(name)
			if err != nil {
				continue
			}
			opts.SeverityOverride[rule] = sev
		}
	}
	return opts
}
