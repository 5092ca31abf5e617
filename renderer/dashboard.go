// Package renderer turns tracker data into markdown reports for the CLI.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/spendtrack"
	md "github.com/nao1215/markdown"
)

// Dashboard renders the statistics overview to a markdown string.
func Dashboard(s spendtrack.Stats, settings spendtrack.Settings) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Spending Dashboard")

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Total Spent"),
			md.Bold(s.TotalAmount.FormatIn(settings.Currency)),
		},
		Rows: [][]string{
			{"Entries", fmt.Sprintf("%d", s.TotalCount)},
			{"Top Category", s.TopCategory},
		},
	})

	if s.Budget != nil {
		doc.H2("Budget")
		status := "within budget"
		if s.Budget.IsOver {
			status = md.Bold("over budget")
		}
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Cap", settings.BudgetCap.FormatIn(settings.Currency)},
			Rows: [][]string{
				{"Remaining", s.Budget.Remaining.SignedString()},
				{"Status", status},
			},
		})
	}

	if len(s.CategoryTotals) > 0 {
		doc.H2("By Category")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Category", "Total"},
		}
		for _, cat := range categoriesByTotal(s) {
			table.Rows = append(table.Rows, []string{
				cat,
				s.CategoryTotals[cat].FormatIn(settings.Currency),
			})
		}
		doc.Table(table)
	}

	doc.H2("Last 7 Days")
	trend := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Day", "Spent"},
	}
	for _, b := range s.Trend {
		total := ""
		if !b.Total.IsZero() {
			total = b.Total.FormatIn(settings.Currency)
		}
		trend.Rows = append(trend.Rows, []string{b.Day.String(), total})
	}
	doc.Table(trend)

	return doc.String()
}
