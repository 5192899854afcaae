package doc

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/donaldgifford/doccompress/internal/formatter"
)

const (
	threeLineSummary = `^(?<indent>[ \t]*)/// <summary>[ \t]*\r?\n[ \t]*///[ \t]*(?<comment>[^\r\n]*)\r?\n[ \t]*/// </summary>[^\n]*?(?<nl>\r?\n)`

	blankSummary = `^[ \t]*/// <summary>[ \t]*\r?\n([ \t]*///[ \t]*\r?\n)*[ \t]*/// </summary>[^\n]*\n`
)

// SummaryRules returns, in order: inlining of three-line summaries,
// deletion of one-line summaries of at most maxWords words, and deletion
// of summaries whose lines are all blank. Summaries with more than one
// non-blank line never match any of them.
func SummaryRules(maxWords int) []*formatter.RegexRule {
	short := compile(fmt.Sprintf(`^[ \t]*/// <summary>%s</summary>[^\n]*\n`, shortBody(maxWords)))

	return []*formatter.RegexRule{
		formatter.NewRewriteRule("inline_summary", compile(threeLineSummary), inlineSummary),
		formatter.NewDeleteRule("short_summary", short),
		formatter.NewDeleteRule("blank_summary", compile(blankSummary)),
	}
}

func inlineSummary(m regexp2.Match, newline string) string {
	comment := strings.TrimRight(formatter.Group(m, "comment"), " \t")
	return formatter.Group(m, "indent") + "/// <summary> " + comment + " </summary>" + formatter.Newline(newline, formatter.Group(m, "nl"))
}
