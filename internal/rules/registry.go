// Package rules manages registration of the rewrite pipeline.
package rules

import (
	"github.com/donaldgifford/doccompress/internal/config"
	"github.com/donaldgifford/doccompress/internal/formatter"
)

// Stage is one step of the pipeline. Build returns the step's rules for a
// given configuration, or nil when the step is disabled.
type Stage struct {
	Name  string
	Build func(cfg *config.CompressorConfig) []*formatter.RegexRule
}

var stages []Stage

// RegisterStage adds a pipeline step to the registry.
// Stages are applied in the order they are registered.
func RegisterStage(s Stage) {
	stages = append(stages, s)
}

// Stages returns all registered stages in execution order.
func Stages() []Stage {
	return stages
}

// Build expands every registered stage against cfg and returns the
// resulting rules in execution order, each bounded by cfg.MatchTimeout.
func Build(cfg *config.CompressorConfig) []formatter.Rule {
	var out []formatter.Rule
	for _, s := range stages {
		for _, r := range s.Build(cfg) {
			r.SetMatchTimeout(cfg.MatchTimeout)
			out = append(out, r)
		}
	}
	return out
}
