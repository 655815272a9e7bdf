// Package ruleset loads rule configurations and converts them to analysis
// rules.
//
// Rule sets are keyed one file per language. A rule entry never carries its
// own language field; a user-supplied config file replaces the builtin set
// for the resolved language wholesale.
package ruleset

import (
	"errors"
	"fmt"
	"os"

	"github.com/dshills/codecritic/internal/analysis"
	"gopkg.in/yaml.v3"
)

// ErrNoRules reports a config with no enabled rules.
var ErrNoRules = errors.New("no enabled rules")

// RuleConfig is one rule entry as persisted in YAML.
type RuleConfig struct {
	Name       string   `yaml:"name"`
	Query      string   `yaml:"query"`
	Severity   string   `yaml:"severity"`
	Message    string   `yaml:"message"`
	Suggestion string   `yaml:"suggestion,omitempty"`
	Weight     *float64 `yaml:"weight,omitempty"`
	Enabled    bool     `yaml:"enabled"`
}

// Config is an ordered collection of rule descriptors for one language.
type Config struct {
	Entries []RuleConfig `yaml:"rules"`
}

// ParseError reports malformed rule-set input.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse rule config %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse decodes a YAML rule-set document. The source name is used only for
// diagnostics.
func Parse(source string, data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}
	return &c, nil
}

// Load reads and parses a rule-set file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ruleset.Load: %w", err)
	}
	return Parse(path, data)
}

// Rules converts the enabled entries, in file order, to analysis rules.
// Unrecognized severities fall back to info; a missing weight defaults
// to 1.0.
func (c *Config) Rules() []analysis.Rule {
	var rules []analysis.Rule
	for _, rc := range c.Entries {
		if !rc.Enabled {
			continue
		}
		r := analysis.NewRule(rc.Name, rc.Query, analysis.ParseSeverity(rc.Severity), rc.Message, rc.Suggestion)
		if rc.Weight != nil {
			r = r.WithWeight(*rc.Weight)
		}
		rules = append(rules, r)
	}
	return rules
}
