// Package spendtrack implements a personal expense tracker: a validated
// record store with regex search, stable multi-field sorting, budget-aware
// statistics and JSON import/export.
//
// Records and settings persist as one JSON document behind the [Store]
// interface; [Repository] is the entry point holding them in memory and
// writing every mutation through. Monetary values use the fixed two-decimal
// [Amount] and calendar days the timezone-free [Date].
package spendtrack
