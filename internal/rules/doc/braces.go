package doc

import (
	"github.com/dlclark/regexp2"

	"github.com/donaldgifford/doccompress/internal/formatter"
)

const (
	blankAfterOpen = `(?<curly>\{[ \t]*\r?\n)([ \t]*\r?\n)+`

	// Only a line holding nothing but "}" pulls the blank lines above it.
	blankBeforeClose = `\n([ \t]*\r?\n)+(?<curly>[ \t]*\}[ \t]*)(?=\r?\n|\z)`
)

// BraceRules removes blank lines directly after a line ending in "{" and
// directly before a line that is only "}".
func BraceRules() []*formatter.RegexRule {
	return []*formatter.RegexRule{
		formatter.NewRewriteRule("blank_lines_after_open_brace", compile(blankAfterOpen), func(m regexp2.Match, _ string) string {
			return formatter.Group(m, "curly")
		}),
		formatter.NewRewriteRule("blank_lines_before_close_brace", compile(blankBeforeClose), func(m regexp2.Match, _ string) string {
			return "\n" + formatter.Group(m, "curly")
		}),
	}
}
