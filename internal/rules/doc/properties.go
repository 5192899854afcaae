package doc

import (
	"github.com/dlclark/regexp2"

	"github.com/donaldgifford/doccompress/internal/formatter"
)

const (
	propertyGetSet = `\s*\{\s+get;\s+(?<modifier>protected |private )?set;\s+\}`
	propertySetGet = `\s*\{\s+(?<modifier>protected |private )?set;\s+get;\s+\}`
)

// PropertyRules folds multi-line auto-property bodies onto the declaring
// line as { get; set; }, keeping a protected or private setter modifier.
func PropertyRules() []*formatter.RegexRule {
	return []*formatter.RegexRule{
		formatter.NewRewriteRule("auto_property_get_set", compile(propertyGetSet), canonicalProperty),
		formatter.NewRewriteRule("auto_property_set_get", compile(propertySetGet), canonicalProperty),
	}
}

func canonicalProperty(m regexp2.Match, _ string) string {
	return " { get; " + formatter.Group(m, "modifier") + "set; }"
}
