package renderer

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/etnz/spendtrack"
	md "github.com/nao1215/markdown"
)

// Records renders a record list as a markdown table, in the given order.
func Records(records []spendtrack.Record, settings spendtrack.Settings) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Entries")
	if len(records) == 0 {
		doc.PlainText("No entries.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Description", "Category", "Amount"},
	}
	for _, r := range records {
		table.Rows = append(table.Rows, []string{
			r.Date.String(),
			r.Description,
			r.Category,
			r.Amount.FormatIn(settings.Currency),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("%d entries.", len(records)))
	return doc.String()
}

// Entry renders one record as a single line, for confirmations and hints.
func Entry(r spendtrack.Record) string {
	return fmt.Sprintf("%s %s (%s) %s", r.Date, r.Description, r.Category, r.Amount)
}

// categoriesByTotal orders categories by descending total, name as tiebreak.
func categoriesByTotal(s spendtrack.Stats) []string {
	cats := make([]string, 0, len(s.CategoryTotals))
	for cat := range s.CategoryTotals {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool {
		a, b := s.CategoryTotals[cats[i]], s.CategoryTotals[cats[j]]
		if c := a.Cmp(b); c != 0 {
			return c > 0
		}
		return cats[i] < cats[j]
	})
	return cats
}
