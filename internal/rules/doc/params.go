package doc

import (
	"fmt"

	"github.com/donaldgifford/doccompress/internal/formatter"
)

const (
	emptyTypeParam = `^[ \t]*/// <typeparam name\s*=\s*"[^"]*">\s*</typeparam>[^\n]*\n`
	emptyReturns   = `^[ \t]*/// <returns>\s*</returns>[^\n]*\n`
)

// ParamRule deletes <param> lines whose description is at most maxWords
// words. A single trailing period is not counted as a word.
func ParamRule(maxWords int) *formatter.RegexRule {
	re := compile(fmt.Sprintf(`^[ \t]*/// <param name\s*=\s*"[^"]*">%s</param>[^\n]*\n`, shortBody(maxWords)))
	return formatter.NewDeleteRule("short_param", re)
}

// TypeParamRule deletes <typeparam> lines with an empty description.
func TypeParamRule() *formatter.RegexRule {
	return formatter.NewDeleteRule("empty_typeparam", compile(emptyTypeParam))
}

// ReturnsRule deletes <returns> lines with an empty description.
func ReturnsRule() *formatter.RegexRule {
	return formatter.NewDeleteRule("empty_returns", compile(emptyReturns))
}

// shortBody matches a tag body of at most maxWords words and an optional
// trailing period, surrounded by any whitespace. Words and whitespace runs
// are atomic so a body that is too long fails in linear time.
func shortBody(maxWords int) string {
	return fmt.Sprintf(`(?>\s*)(?:(?>\w+)(?>\s*)){0,%d}\.?(?>\s*)`, max(maxWords, 0))
}
