// Package config defines the configuration types and defaults for doccompress.
package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Newline modes accepted by CompressorConfig.Newline.
const (
	NewlineAuto = "auto"
	NewlineLF   = "lf"
	NewlineCRLF = "crlf"
)

// ErrInvalid is wrapped by every validation failure returned from Validate.
var ErrInvalid = errors.New("invalid config")

var tagNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.:-]*$`)

// Config is the top-level configuration.
type Config struct {
	Compressor CompressorConfig `yaml:"compressor"`
	Runner     RunnerConfig     `yaml:"runner"`
}

// CompressorConfig holds the options that shape the rewrite pipeline.
type CompressorConfig struct {
	RemoveRegions             bool          `yaml:"remove_regions"`
	RemoveTags                []string      `yaml:"remove_tags"`
	RemoveParamNameUptoNWords int           `yaml:"remove_param_upto_n_words"`
	RemoveSummaryUptoNWords   int           `yaml:"remove_summary_upto_n_words"`
	Newline                   string        `yaml:"newline"`
	MatchTimeout              time.Duration `yaml:"match_timeout"`
}

// RunnerConfig holds file discovery and scheduling settings.
type RunnerConfig struct {
	Extensions []string `yaml:"extensions"`
	SkipDirs   []string `yaml:"skip_dirs"`
	Jobs       int      `yaml:"jobs"`
}

// DefaultConfig returns a Config with all default values.
func DefaultConfig() *Config {
	return &Config{
		Compressor: CompressorConfig{
			RemoveRegions:             true,
			RemoveTags:                []string{},
			RemoveParamNameUptoNWords: 0,
			RemoveSummaryUptoNWords:   0,
			Newline:                   NewlineAuto,
			MatchTimeout:              10 * time.Second,
		},
		Runner: RunnerConfig{
			Extensions: []string{".cs"},
			SkipDirs:   []string{".git", "bin", "obj"},
			Jobs:       0,
		},
	}
}

// Validate reports every invalid value in c. The returned error wraps
// ErrInvalid.
func (c *Config) Validate() error {
	var errs []error
	errs = append(errs, c.Compressor.validate()...)
	errs = append(errs, c.Runner.validate()...)
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

func (c *CompressorConfig) validate() []error {
	var errs []error
	if c.RemoveParamNameUptoNWords < 0 {
		errs = append(errs, fmt.Errorf("remove_param_upto_n_words must be >= 0, got %d", c.RemoveParamNameUptoNWords))
	}
	if c.RemoveSummaryUptoNWords < 0 {
		errs = append(errs, fmt.Errorf("remove_summary_upto_n_words must be >= 0, got %d", c.RemoveSummaryUptoNWords))
	}
	for _, tag := range c.RemoveTags {
		if !tagNameRe.MatchString(tag) {
			errs = append(errs, fmt.Errorf("remove_tags: %q is not a valid tag name", tag))
		}
	}
	switch c.Newline {
	case NewlineAuto, NewlineLF, NewlineCRLF:
	default:
		errs = append(errs, fmt.Errorf("newline must be %q, %q or %q, got %q", NewlineAuto, NewlineLF, NewlineCRLF, c.Newline))
	}
	if c.MatchTimeout < 0 {
		errs = append(errs, fmt.Errorf("match_timeout must be >= 0, got %s", c.MatchTimeout))
	}
	return errs
}

func (c *RunnerConfig) validate() []error {
	var errs []error
	if c.Jobs < 0 {
		errs = append(errs, fmt.Errorf("jobs must be >= 0, got %d", c.Jobs))
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			errs = append(errs, fmt.Errorf("extensions: %q must start with a dot", ext))
		}
	}
	return errs
}
