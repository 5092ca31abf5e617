package spendtrack

// The statistics engine derives every dashboard aggregate from the current
// record list. It is recomputed from scratch on demand: with a few thousand
// records at most there is nothing to cache.

// TrendDays is the width of the trailing daily-spending window.
const TrendDays = 7

// TrendBucket is one day of the trailing spending window.
type TrendBucket struct {
	Day   Date   `json:"day"`
	Total Amount `json:"total"`
}

// BudgetStatus is the position of total spending against the budget cap.
type BudgetStatus struct {
	Remaining Amount `json:"remaining"`
	IsOver    bool   `json:"isOver"`
}

// NoCategory is the TopCategory placeholder when no records exist.
const NoCategory = "None"

// Stats are the derived aggregates of a record list.
type Stats struct {
	TotalCount     int
	TotalAmount    Amount
	CategoryTotals map[string]Amount
	// TopCategory is the category with the highest summed amount; ties go to
	// the category encountered first in record order.
	TopCategory string
	// Budget is nil when no cap is set.
	Budget *BudgetStatus
	// Trend holds TrendDays buckets, oldest first, today last.
	Trend []TrendBucket
}

// ComputeStats derives the aggregates of records against the given settings,
// with today as the reference day for the trend window.
func ComputeStats(records []Record, settings Settings, today Date) Stats {
	stats := Stats{
		TotalCount:     len(records),
		CategoryTotals: make(map[string]Amount),
		TopCategory:    NoCategory,
		Trend:          make([]TrendBucket, TrendDays),
	}

	bucketIndex := make(map[Date]int, TrendDays)
	for i := 0; i < TrendDays; i++ {
		day := today.Add(i - TrendDays + 1)
		stats.Trend[i] = TrendBucket{Day: day}
		bucketIndex[day] = i
	}

	var seen []string // category first-appearance order, for tie-breaking
	for _, r := range records {
		stats.TotalAmount = stats.TotalAmount.Add(r.Amount)
		if _, ok := stats.CategoryTotals[r.Category]; !ok {
			seen = append(seen, r.Category)
		}
		stats.CategoryTotals[r.Category] = stats.CategoryTotals[r.Category].Add(r.Amount)
		if i, ok := bucketIndex[r.Date]; ok {
			stats.Trend[i].Total = stats.Trend[i].Total.Add(r.Amount)
		}
	}

	var best Amount
	for _, cat := range seen {
		if total := stats.CategoryTotals[cat]; total.GreaterThan(best) {
			best = total
			stats.TopCategory = cat
		}
	}

	if !settings.BudgetCap.IsZero() {
		stats.Budget = &BudgetStatus{
			Remaining: settings.BudgetCap.Sub(stats.TotalAmount),
			IsOver:    stats.TotalAmount.GreaterThan(settings.BudgetCap),
		}
	}
	return stats
}
