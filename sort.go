package spendtrack

import (
	"sort"
	"strings"
)

// SortField selects the record field a sort is keyed on.
type SortField int

const (
	SortByDate SortField = iota
	SortByDescription
	SortByAmount
	SortByCategory
)

func (f SortField) String() string {
	switch f {
	case SortByDate:
		return "date"
	case SortByDescription:
		return "description"
	case SortByAmount:
		return "amount"
	case SortByCategory:
		return "category"
	default:
		return "date"
	}
}

// ParseSortKey parses a sort selector like "amount-asc" or plain "date".
// The direction suffix is optional; without it, date sorts descending (the
// default view) and every other field ascending. Unknown selectors fall back
// to descending date order.
func ParseSortKey(key string) (SortField, bool) {
	field, dir, hasDir := strings.Cut(strings.TrimSpace(strings.ToLower(key)), "-")
	var f SortField
	switch field {
	case "date":
		f = SortByDate
	case "description", "desc":
		f = SortByDescription
	case "amount":
		f = SortByAmount
	case "category":
		f = SortByCategory
	default:
		return SortByDate, false
	}
	if hasDir {
		return f, dir != "desc"
	}
	return f, f != SortByDate
}

// SortRecords returns a new slice ordered by the given field and direction;
// the input is left unmodified. The sort is stable: records with equal keys
// keep their relative input order. Amounts compare numerically, text fields
// case-insensitively, dates chronologically.
func SortRecords(records []Record, field SortField, ascending bool) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		c := compareBy(out[i], out[j], field)
		if !ascending {
			c = -c
		}
		return c < 0
	})
	return out
}

func compareBy(a, b Record, field SortField) int {
	switch field {
	case SortByAmount:
		return a.Amount.Cmp(b.Amount)
	case SortByDescription:
		return strings.Compare(strings.ToLower(a.Description), strings.ToLower(b.Description))
	case SortByCategory:
		return strings.Compare(strings.ToLower(a.Category), strings.ToLower(b.Category))
	default:
		// Chronological; the fixed ISO form makes this equal to the string compare.
		return strings.Compare(a.Date.String(), b.Date.String())
	}
}
