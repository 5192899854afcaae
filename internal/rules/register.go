package rules

import (
	"github.com/donaldgifford/doccompress/internal/config"
	"github.com/donaldgifford/doccompress/internal/formatter"
	"github.com/donaldgifford/doccompress/internal/rules/doc"
)

func init() {
	// Order is load-bearing: separators are anchored on region lines, and
	// summaries are inlined before the short-summary threshold applies.
	RegisterStage(Stage{Name: "separators", Build: func(*config.CompressorConfig) []*formatter.RegexRule {
		return doc.SeparatorRules()
	}})
	RegisterStage(Stage{Name: "regions", Build: func(cfg *config.CompressorConfig) []*formatter.RegexRule {
		if !cfg.RemoveRegions {
			return nil
		}
		return []*formatter.RegexRule{doc.RegionRule()}
	}})
	RegisterStage(Stage{Name: "properties", Build: func(*config.CompressorConfig) []*formatter.RegexRule {
		return doc.PropertyRules()
	}})
	RegisterStage(Stage{Name: "version_history", Build: func(*config.CompressorConfig) []*formatter.RegexRule {
		return []*formatter.RegexRule{doc.VersionHistoryRule()}
	}})
	RegisterStage(Stage{Name: "params", Build: func(cfg *config.CompressorConfig) []*formatter.RegexRule {
		return []*formatter.RegexRule{doc.ParamRule(cfg.RemoveParamNameUptoNWords), doc.TypeParamRule()}
	}})
	RegisterStage(Stage{Name: "returns", Build: func(*config.CompressorConfig) []*formatter.RegexRule {
		return []*formatter.RegexRule{doc.ReturnsRule()}
	}})
	RegisterStage(Stage{Name: "summary", Build: func(cfg *config.CompressorConfig) []*formatter.RegexRule {
		return doc.SummaryRules(cfg.RemoveSummaryUptoNWords)
	}})
	RegisterStage(Stage{Name: "tags", Build: func(cfg *config.CompressorConfig) []*formatter.RegexRule {
		return doc.TagRules(cfg.RemoveTags)
	}})
	RegisterStage(Stage{Name: "braces", Build: func(*config.CompressorConfig) []*formatter.RegexRule {
		return doc.BraceRules()
	}})
}
