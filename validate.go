package spendtrack

import (
	"regexp"
	"strings"
)

// The validation engine is a set of pure per-field checks. Each returns a
// Check: whether the value is acceptable, a user-facing message when it is
// not, and the normalized value to store when it is.
//
// Two additional findings (repeated words, missing cents) are advisory only:
// they are reported as warnings and never block persistence.

// Check is the outcome of a single-field validation.
type Check struct {
	OK         bool
	Message    string
	Normalized string
}

var (
	// no leading or trailing whitespace, at least one non-space character.
	descriptionPattern = regexp.MustCompile(`^\S(?:.*\S)?$`)
	spaceRunPattern    = regexp.MustCompile(`\s+`)
	// letter runs separated by single spaces or hyphens.
	categoryPattern = regexp.MustCompile(`^[A-Za-z]+(?:[ -][A-Za-z]+)*$`)
	// a fraction of exactly two digits somewhere in the input.
	centsPattern = regexp.MustCompile(`\.\d{2}\b`)
)

// CheckDescription validates a description: non-empty, no leading or trailing
// whitespace. Normalization collapses runs of internal whitespace to one
// space; an already-normalized description passes through unchanged.
func CheckDescription(text string) Check {
	if !descriptionPattern.MatchString(text) {
		return Check{Message: "description cannot be empty or have spaces at start or end", Normalized: text}
	}
	return Check{OK: true, Normalized: spaceRunPattern.ReplaceAllString(text, " ")}
}

// CheckAmount validates an amount string and normalizes it to exactly two
// decimal places ("12.5" becomes "12.50").
func CheckAmount(s string) Check {
	a, err := ParseAmount(s)
	if err != nil {
		return Check{Message: "amount must be a positive number with up to 2 decimal places", Normalized: s}
	}
	return Check{OK: true, Normalized: a.String()}
}

// CheckDate validates a strict YYYY-MM-DD calendar date that is not in the
// future. The two failure modes carry distinct messages.
func CheckDate(s string, today Date) Check {
	d, err := ParseDate(s)
	if err != nil {
		return Check{Message: "date must be in YYYY-MM-DD format", Normalized: s}
	}
	// The boundary is end of day: today itself is fine.
	if d.After(today) {
		return Check{Message: "date cannot be in the future", Normalized: s}
	}
	return Check{OK: true, Normalized: d.String()}
}

// CheckCategory validates a category: one or more letter runs separated by
// single spaces or hyphens. No digits, no leading or trailing separator.
func CheckCategory(category string) Check {
	if !categoryPattern.MatchString(category) {
		return Check{Message: "category can only contain letters, spaces, and hyphens", Normalized: category}
	}
	return Check{OK: true, Normalized: category}
}

// hasRepeatedWord reports whether text contains the same word twice in a row,
// case-insensitively ("coffee Coffee").
func hasRepeatedWord(text string) bool {
	words := strings.Fields(text)
	for i := 1; i < len(words); i++ {
		if strings.EqualFold(trimWordPunct(words[i-1]), trimWordPunct(words[i])) {
			return true
		}
	}
	return false
}

func trimWordPunct(w string) string {
	return strings.TrimFunc(w, func(r rune) bool {
		return !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9')
	})
}

// AdvisoryFindings returns the non-blocking findings for the given fields:
// a repeated word in the description, or an amount written without cents.
func AdvisoryFindings(f Fields) map[string]string {
	warnings := make(map[string]string)
	if hasRepeatedWord(f.Description) {
		warnings["duplicateWords"] = "description contains repeated words"
	}
	if !centsPattern.MatchString(f.Amount) {
		warnings["missingCents"] = "consider adding cents for better tracking"
	}
	if len(warnings) == 0 {
		return nil
	}
	return warnings
}

// ValidateRecord runs all four field checks. It returns the normalized fields
// and, when any blocking check fails, a *ValidationError keyed by field name.
// Advisory findings are attached as warnings but never make the result an
// error on their own.
func ValidateRecord(f Fields, today Date) (Fields, *ValidationError) {
	verr := &ValidationError{Fields: make(map[string]string)}
	// Findings look at the input as typed, before normalization rewrites it.
	verr.Warnings = AdvisoryFindings(f)

	if c := CheckDescription(f.Description); c.OK {
		f.Description = c.Normalized
	} else {
		verr.Fields["description"] = c.Message
	}
	if c := CheckAmount(f.Amount); c.OK {
		f.Amount = c.Normalized
	} else {
		verr.Fields["amount"] = c.Message
	}
	if c := CheckCategory(f.Category); c.OK {
		f.Category = c.Normalized
	} else {
		verr.Fields["category"] = c.Message
	}
	if c := CheckDate(f.Date, today); c.OK {
		f.Date = c.Normalized
	} else {
		verr.Fields["date"] = c.Message
	}

	if len(verr.Fields) == 0 {
		return f, nil
	}
	return f, verr
}
