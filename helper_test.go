package spendtrack

import "time"

// rec builds a well-formed record for tests.
func rec(id, description, amount, category, date string) Record {
	on := MustParseDate(date)
	return Record{
		ID:          id,
		Description: description,
		Amount:      MustParseAmount(amount),
		Category:    category,
		Date:        on,
		CreatedAt:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

// fixedClock returns a clock stuck at noon UTC of the given day.
func fixedClock(d Date) func() time.Time {
	return func() time.Time {
		return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.UTC)
	}
}
