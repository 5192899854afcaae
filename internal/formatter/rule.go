package formatter

import (
	"errors"
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
)

// ErrTimeout is returned when a rule gives up on a document because a
// match ran past its timeout.
var ErrTimeout = errors.New("match timeout")

// Rule rewrites a whole document. Rules are applied in registered order.
type Rule interface {
	// Name returns a short identifier for this rule (e.g., "empty_returns").
	Name() string

	// Apply receives the full document and the newline sequence rewrites
	// should emit ("" to follow the matched text), and returns the
	// rewritten document. Apply never fails:
	// text the rule does not recognize passes through unchanged.
	Apply(text, newline string) string
}

// RewriteFunc builds the replacement for one match. newline is the
// configured line terminator, or "" when rewrites should reuse the one in
// the match (see Newline).
type RewriteFunc func(m regexp2.Match, newline string) string

// RegexRule is a Rule backed by a single pattern. A nil rewrite deletes
// every match.
type RegexRule struct {
	name    string
	re      *regexp2.Regexp
	rewrite RewriteFunc
}

// NewDeleteRule returns a rule that deletes every match of re.
func NewDeleteRule(name string, re *regexp2.Regexp) *RegexRule {
	return &RegexRule{name: name, re: re}
}

// NewRewriteRule returns a rule that replaces every match of re with the
// output of rewrite.
func NewRewriteRule(name string, re *regexp2.Regexp, rewrite RewriteFunc) *RegexRule {
	return &RegexRule{name: name, re: re, rewrite: rewrite}
}

// Name returns the rule identifier.
func (r *RegexRule) Name() string {
	return r.name
}

// Pattern returns the source of the underlying expression.
func (r *RegexRule) Pattern() string {
	return r.re.String()
}

// SetMatchTimeout bounds each match of r to d. A rule that times out
// leaves the document untouched and Rewrite reports ErrTimeout. d <= 0
// means no limit. It must be called before r is used, since the rule owns
// its expression.
func (r *RegexRule) SetMatchTimeout(d time.Duration) {
	if d > 0 {
		r.re.MatchTimeout = d
	} else {
		r.re.MatchTimeout = regexp2.DefaultMatchTimeout
	}
}

// Apply rewrites every match in text.
func (r *RegexRule) Apply(text, newline string) string {
	out, _ := r.Rewrite(text, newline)
	return out
}

// Rewrite is Apply with the failure reported. On error the returned text
// is the input unchanged.
func (r *RegexRule) Rewrite(text, newline string) (string, error) {
	var (
		out string
		err error
	)
	if r.rewrite == nil {
		out, err = r.re.Replace(text, "", -1, -1)
	} else {
		out, err = r.re.ReplaceFunc(text, func(m regexp2.Match) string {
			return r.rewrite(m, newline)
		}, -1, -1)
	}
	if err != nil {
		// Only a match timeout can fail here.
		return text, fmt.Errorf("%s: %w", r.name, ErrTimeout)
	}
	return out, nil
}

// Group returns the text captured by the named group, or "" when the
// group did not participate in the match.
func Group(m regexp2.Match, name string) string {
	g := m.GroupByName(name)
	if g == nil || len(g.Captures) == 0 {
		return ""
	}
	return g.String()
}
