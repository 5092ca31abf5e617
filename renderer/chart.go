package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/spendtrack"
	"github.com/wcharczuk/go-chart/v2"
)

// TrendChart renders the trailing daily-spending window as a PNG bar chart.
func TrendChart(s spendtrack.Stats, settings spendtrack.Settings) ([]byte, error) {
	bars := make([]chart.Value, 0, len(s.Trend))
	for _, b := range s.Trend {
		bars = append(bars, chart.Value{
			Label: b.Day.Format("01-02"),
			Value: b.Total.AsFloat(),
			Style: chart.Style{
				StrokeColor: chart.ColorBlue,
				FillColor:   chart.ColorBlue.WithAlpha(180),
			},
		})
	}

	graph := chart.BarChart{
		Title:    fmt.Sprintf("Spending, last %d days", len(s.Trend)),
		Width:    800,
		Height:   400,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return spendtrack.A(v.(float64)).FormatIn(settings.Currency)
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render trend chart: %w", err)
	}
	return buf.Bytes(), nil
}
