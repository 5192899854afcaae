// Package doc contains the rewrite rules for documentation comments,
// region markers and brace spacing. Every constructor returns rules in the
// order they must run within their step.
package doc

import (
	"github.com/dlclark/regexp2"
)

// options applies to every pattern: "." spans lines, and "^" anchors at
// the start of any line.
const options = regexp2.Singleline | regexp2.Multiline

// compile returns a fresh expression on every call so that each rule owns
// its Regexp and may set a match timeout on it.
func compile(expr string) *regexp2.Regexp {
	return regexp2.MustCompile(expr, options)
}
