// Package aggregate computes summary statistics over a dataset: row count,
// per-column totals, and per-column averages.
package aggregate

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tsawler/folio/model"
)

// Computer computes summary statistics. The zero value is not usable; use
// NewComputer.
type Computer struct {
	printer *message.Printer
}

// NewComputer creates a Computer that formats values with English-style
// thousands separators.
func NewComputer() *Computer {
	return &Computer{printer: message.NewPrinter(language.English)}
}

// Compute derives the ordered summary for a dataset under the given content
// selection. The order is fixed: row count first, then totals for each
// numeric column in dataset column order, then averages for each numeric
// column in dataset column order.
//
// A column is numeric when every non-null cell in it is a number; columns
// with no numeric cells contribute nothing. Non-numeric columns are
// silently excluded. Null cells are ignored by sums and means.
func (c *Computer) Compute(ds *model.Dataset, sel model.ContentSelection) model.Summary {
	var summary model.Summary

	if sel.IncludeRowCount {
		summary = append(summary, model.SummaryEntry{
			Label: "Total Rows",
			Value: c.printer.Sprintf("%d", ds.RowCount()),
		})
	}

	if !sel.IncludeTotals && !sel.IncludeAverages {
		return summary
	}

	type colStats struct {
		name  string
		sum   float64
		count int
	}
	var numeric []colStats
	for _, name := range ds.Columns {
		if !ds.IsNumericColumn(name) {
			continue
		}
		cells, _ := ds.Column(name)
		st := colStats{name: name}
		for _, v := range cells {
			if f, ok := v.Float(); ok {
				st.sum += f
				st.count++
			}
		}
		numeric = append(numeric, st)
	}

	if sel.IncludeTotals {
		for _, st := range numeric {
			summary = append(summary, model.SummaryEntry{
				Label: "Total " + st.name,
				Value: c.printer.Sprintf("%.2f", st.sum),
			})
		}
	}
	if sel.IncludeAverages {
		for _, st := range numeric {
			summary = append(summary, model.SummaryEntry{
				Label: "Average " + st.name,
				Value: c.printer.Sprintf("%.2f", st.sum/float64(st.count)),
			})
		}
	}

	return summary
}
