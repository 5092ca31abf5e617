package renderer

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/etnz/spendtrack"
)

func fixtureStats(t *testing.T) (spendtrack.Stats, spendtrack.Settings) {
	t.Helper()
	today := spendtrack.NewDate(2026, time.August, 27)
	records := []spendtrack.Record{
		{ID: "1", Description: "Morning coffee", Amount: spendtrack.MustParseAmount("3.50"), Category: "Food", Date: today},
		{ID: "2", Description: "Train", Amount: spendtrack.MustParseAmount("12.00"), Category: "Transport", Date: today.Add(-1)},
	}
	settings := spendtrack.DefaultSettings()
	settings.BudgetCap = spendtrack.MustParseAmount("10.00")
	return spendtrack.ComputeStats(records, settings, today), settings
}

func TestDashboard(t *testing.T) {
	stats, settings := fixtureStats(t)
	out := Dashboard(stats, settings)

	for _, want := range []string{
		"Spending Dashboard",
		"$15.50",       // total in USD
		"Transport",    // top category
		"over budget",  // cap is 10.00
		"Last 7 Days",
		"2026-08-27",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Dashboard() missing %q in:\n%s", want, out)
		}
	}
}

func TestDashboardEmpty(t *testing.T) {
	today := spendtrack.NewDate(2026, time.August, 27)
	stats := spendtrack.ComputeStats(nil, spendtrack.DefaultSettings(), today)
	out := Dashboard(stats, spendtrack.DefaultSettings())
	if !strings.Contains(out, "None") {
		t.Errorf("Dashboard() of an empty tracker should show the None placeholder:\n%s", out)
	}
	if strings.Contains(out, "Budget") {
		t.Errorf("Dashboard() should omit the budget section when no cap is set:\n%s", out)
	}
}

func TestRecords(t *testing.T) {
	today := spendtrack.NewDate(2026, time.August, 27)
	records := []spendtrack.Record{
		{ID: "1", Description: "Morning coffee", Amount: spendtrack.MustParseAmount("3.50"), Category: "Food", Date: today},
	}
	out := Records(records, spendtrack.DefaultSettings())
	for _, want := range []string{"Morning coffee", "Food", "$3.50", "1 entries."} {
		if !strings.Contains(out, want) {
			t.Errorf("Records() missing %q in:\n%s", want, out)
		}
	}

	if out := Records(nil, spendtrack.DefaultSettings()); !strings.Contains(out, "No entries.") {
		t.Errorf("Records(nil) = %q, want the empty notice", out)
	}
}

func TestTrendChartPNG(t *testing.T) {
	stats, settings := fixtureStats(t)
	png, err := TrendChart(stats, settings)
	if err != nil {
		t.Fatalf("TrendChart() error = %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("TrendChart() did not produce a PNG")
	}
}
