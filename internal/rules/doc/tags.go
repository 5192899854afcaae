package doc

import (
	"slices"

	"github.com/dlclark/regexp2"

	"github.com/donaldgifford/doccompress/internal/formatter"
)

// TagRule deletes every doc-comment block opened by <name ...> up to the
// first </name> and the rest of that line. The opening tag must start a
// /// line and the block may only span /// lines, so a tag that is never
// closed inside its comment is left alone.
func TagRule(name string) *formatter.RegexRule {
	tag := regexp2.Escape(name)
	re := compile(`^[ \t]*///[ \t]*<[ \t]*` + tag + `(?=[\s/>])` +
		`(?:[^\r\n]*?</` + tag + `>` +
		`|[^\r\n]*\r?\n(?:[ \t]*///[^\r\n]*\r?\n)*?[ \t]*///[^\r\n]*?</` + tag + `>)` +
		`[^\r\n]*\r?\n`)
	return formatter.NewDeleteRule("remove_tag_"+name, re)
}

// TagRules builds one TagRule per distinct name, in the given order.
func TagRules(names []string) []*formatter.RegexRule {
	seen := make([]string, 0, len(names))
	rules := make([]*formatter.RegexRule, 0, len(names))
	for _, name := range names {
		if name == "" || slices.Contains(seen, name) {
			continue
		}
		seen = append(seen, name)
		rules = append(rules, TagRule(name))
	}
	return rules
}
