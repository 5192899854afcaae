// Package formatter provides the rewrite engine and the rule interface.
package formatter

import (
	"errors"
	"slices"

	"github.com/donaldgifford/doccompress/internal/config"
)

// Run applies each rule in order, piping the output of one as input to
// the next.
func Run(text, newline string, rules []Rule) string {
	result := text
	for _, rule := range rules {
		result = rule.Apply(result, newline)
	}
	return result
}

// checkedRule is implemented by rules that can say why they left a
// document unchanged.
type checkedRule interface {
	Rewrite(text, newline string) (string, error)
}

// RunChecked is Run for callers that need to know which rules failed. A
// failing rule leaves the text as it was and the next rule carries on.
// The returned error joins every failure.
func RunChecked(text, newline string, rules []Rule) (string, error) {
	var errs []error
	result := text
	for _, rule := range rules {
		cr, ok := rule.(checkedRule)
		if !ok {
			result = rule.Apply(result, newline)
			continue
		}
		out, err := cr.Rewrite(result, newline)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		result = out
	}
	return result, errors.Join(errs...)
}

// RunUntilStable repeats RunChecked until a pass leaves the text
// unchanged or maxPasses passes have run. A later rule can expose text an
// earlier one would have rewritten, so one pass is not always enough.
// A rule that fails on several passes is reported once.
func RunUntilStable(text, newline string, rules []Rule, maxPasses int) (string, error) {
	var failed []error
	result := text
	for range max(maxPasses, 1) {
		out, err := RunChecked(result, newline, rules)
		failed = appendFailed(failed, err)
		if out == result {
			break
		}
		result = out
	}
	return result, errors.Join(failed...)
}

func appendFailed(failed []error, err error) []error {
	if err == nil {
		return failed
	}
	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}
	for _, e := range errs {
		dup := slices.ContainsFunc(failed, func(f error) bool {
			return f.Error() == e.Error()
		})
		if !dup {
			failed = append(failed, e)
		}
	}
	return failed
}

// ResolveNewline returns the line terminator rules should emit under the
// given mode. Auto mode returns "", which tells each rewrite to reuse the
// terminator of the text it matched.
func ResolveNewline(mode string) string {
	switch mode {
	case config.NewlineCRLF:
		return "\r\n"
	case config.NewlineLF:
		return "\n"
	}
	return ""
}

// Newline picks the terminator for one rewrite: newline when a mode forces
// it, otherwise matched, falling back to "\n" when the match ended at the
// end of the text.
func Newline(newline, matched string) string {
	switch {
	case newline != "":
		return newline
	case matched != "":
		return matched
	}
	return "\n"
}
