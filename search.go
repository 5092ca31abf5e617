package spendtrack

import (
	"regexp"
	"strings"
)

// CompilePattern compiles a user-supplied search pattern into a matcher.
//
// The pattern is first tried as a regular expression. If it does not compile
// (an unbalanced "[abc" for instance) it is retried as a literal string with
// every metacharacter escaped, which is guaranteed to compile. A nil return
// means the pattern is blank, or that the search must degrade to no results
// rather than an error.
func CompilePattern(pattern string, caseInsensitive bool) *regexp.Regexp {
	if strings.TrimSpace(pattern) == "" {
		return nil
	}
	expr := pattern
	if caseInsensitive {
		expr = "(?i)" + expr
	}
	if re, err := regexp.Compile(expr); err == nil {
		return re
	}
	expr = regexp.QuoteMeta(pattern)
	if caseInsensitive {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil
	}
	return re
}

// Filter returns the records matching the pattern, in their original order.
//
// A record matches when the pattern matches any of its description, category,
// date (as stored) or amount (as its decimal string). A blank pattern keeps
// every record. A malformed pattern falls back to a literal match and never
// surfaces as an error; the input slice is never modified.
func Filter(records []Record, pattern string, caseInsensitive bool) []Record {
	out := make([]Record, 0, len(records))
	if strings.TrimSpace(pattern) == "" {
		return append(out, records...)
	}
	re := CompilePattern(pattern, caseInsensitive)
	if re == nil {
		// Unbuildable even as a literal: no results, not a crash.
		return out
	}
	for _, r := range records {
		if re.MatchString(r.Description) ||
			re.MatchString(r.Category) ||
			re.MatchString(r.Date.String()) ||
			re.MatchString(r.Amount.String()) {
			out = append(out, r)
		}
	}
	return out
}
