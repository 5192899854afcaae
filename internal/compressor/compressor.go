// Package compressor rewrites C#-style source text so that documentation
// comments, region markers, auto-property bodies, decorative separators
// and blank lines around braces take up less room. Executable code is
// never altered.
//
// A Compressor is built once from a configuration and may then be used
// from any number of goroutines:
//
//	c := compressor.New(cfg.Compressor)
//	out := c.Compress(src)
package compressor

import (
	"slices"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/donaldgifford/doccompress/internal/config"
	"github.com/donaldgifford/doccompress/internal/formatter"
	"github.com/donaldgifford/doccompress/internal/rules"
)

// Compressor applies the rewrite pipeline to whole documents.
type Compressor struct {
	cfg   config.CompressorConfig
	rules []formatter.Rule
}

// New builds every rule for cfg up front. cfg is copied; later changes to
// the caller's value do not affect the Compressor.
func New(cfg config.CompressorConfig) *Compressor {
	cfg.RemoveTags = slices.Clone(cfg.RemoveTags)
	return &Compressor{
		cfg:   cfg,
		rules: rules.Build(&cfg),
	}
}

// maxPasses bounds how often the pipeline is repeated on one document.
// Real input settles in two or three passes.
const maxPasses = 8

// Compress returns text with all rules applied in order, repeated until
// the output no longer changes. It accepts any input; markup that does
// not match a rule is left as is.
//
// Text that is not valid UTF-8 is treated as ISO-8859-1 so that every
// byte outside a rewritten span comes back unchanged.
func (c *Compressor) Compress(text string) string {
	out, _ := c.CompressChecked(text)
	return out
}

// CompressChecked is Compress that also reports the rules that gave up
// on text because a match exceeded the configured timeout. The returned
// text is usable either way; it wraps formatter.ErrTimeout.
func (c *Compressor) CompressChecked(text string) (string, error) {
	if utf8.ValidString(text) {
		return c.compress(text)
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().String(text)
	if err != nil {
		return text, nil
	}
	compressed, cerr := c.compress(decoded)
	out, err := charmap.ISO8859_1.NewEncoder().String(compressed)
	if err != nil {
		return text, nil
	}
	return out, cerr
}

func (c *Compressor) compress(text string) (string, error) {
	return formatter.RunUntilStable(text, formatter.ResolveNewline(c.cfg.Newline), c.rules, maxPasses)
}

// RuleNames lists the active rules in execution order.
func (c *Compressor) RuleNames() []string {
	names := make([]string, len(c.rules))
	for i, r := range c.rules {
		names[i] = r.Name()
	}
	return names
}
