package doc

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/donaldgifford/doccompress/internal/formatter"
)

// A separator is a line of seven or more slashes. Lines holding only
// spaces do not count as blank around it. Runs of separators split by
// blank lines collapse in a single match.
const (
	separatorBetweenBlanks = `(?<lead>\r?\n)(\r?\n)+(?:[ \t]*///////+[ \t]*(?<nl>\r?\n)(\r?\n)+)+`

	separatorAfterDirective = `(?<=(#if|#region) \w*[ \t]*(\r?\n))[ \t]*///////+[ \t]*(?<nl>\r?\n)(\r?\n)+`

	separatorBeforeDirectiveEnd = `(?<lead>\r?\n)(\r?\n)+[ \t]*///////+[ \t]*(?<nl>\r?\n)[ \t]*(?=(#endif|#endregion))`
)

// SeparatorRules collapses decorative separator lines. They must run
// before region markers are stripped, since two of them are anchored on
// the directive lines.
func SeparatorRules() []*formatter.RegexRule {
	return []*formatter.RegexRule{
		formatter.NewRewriteRule("separator_between_blank_lines", compile(separatorBetweenBlanks), blankLine),
		formatter.NewRewriteRule("separator_after_directive", compile(separatorAfterDirective), func(m regexp2.Match, newline string) string {
			return formatter.Newline(newline, formatter.Group(m, "nl"))
		}),
		formatter.NewRewriteRule("separator_before_directive_end", compile(separatorBeforeDirectiveEnd), blankLine),
	}
}

// blankLine keeps the terminator of the line before the separator and
// leaves one blank line ending like the separator did.
func blankLine(m regexp2.Match, newline string) string {
	var b strings.Builder
	b.WriteString(formatter.Newline(newline, formatter.Group(m, "lead")))
	b.WriteString(formatter.Newline(newline, formatter.Group(m, "nl")))
	return b.String()
}
