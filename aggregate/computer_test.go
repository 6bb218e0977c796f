package aggregate

import (
	"fmt"
	"testing"

	"github.com/tsawler/folio/model"
)

func allFlags(title string) model.ContentSelection {
	return model.ContentSelection{
		ReportTitle:     title,
		IncludeRowCount: true,
		IncludeTotals:   true,
		IncludeAverages: true,
	}
}

func TestComputeOrder(t *testing.T) {
	// 100 rows, 3 numeric columns and 1 text column: expect exactly
	// 1 + 3 + 3 = 7 entries in fixed order.
	ds := model.NewDataset("name", "a", "b", "c")
	for i := 0; i < 100; i++ {
		ds.AddRow(
			model.Text(fmt.Sprintf("row %d", i)),
			model.Number(1),
			model.Number(2),
			model.Number(3),
		)
	}

	summary := NewComputer().Compute(ds, allFlags("t"))
	if len(summary) != 7 {
		t.Fatalf("expected 7 entries, got %d: %+v", len(summary), summary)
	}

	wantLabels := []string{
		"Total Rows",
		"Total a", "Total b", "Total c",
		"Average a", "Average b", "Average c",
	}
	for i, want := range wantLabels {
		if summary[i].Label != want {
			t.Errorf("entry %d label = %q, want %q", i, summary[i].Label, want)
		}
	}
}

func TestComputeFormatting(t *testing.T) {
	ds := model.NewDataset("sales")
	for i := 0; i < 1000; i++ {
		ds.AddRow(model.Number(1234.5))
	}

	summary := NewComputer().Compute(ds, allFlags("t"))
	if len(summary) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(summary))
	}
	if summary[0].Value != "1,000" {
		t.Errorf("row count = %q, want \"1,000\"", summary[0].Value)
	}
	if summary[1].Value != "1,234,500.00" {
		t.Errorf("total = %q, want \"1,234,500.00\"", summary[1].Value)
	}
	if summary[2].Value != "1,234.50" {
		t.Errorf("average = %q, want \"1,234.50\"", summary[2].Value)
	}
}

func TestComputeIgnoresNulls(t *testing.T) {
	ds := model.NewDataset("v")
	ds.AddRow(model.Number(10))
	ds.AddRow(model.Null())
	ds.AddRow(model.Number(20))

	summary := NewComputer().Compute(ds, model.ContentSelection{IncludeAverages: true})
	if len(summary) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(summary))
	}
	// Mean over the two non-null cells, not three.
	if summary[0].Value != "15.00" {
		t.Errorf("average = %q, want \"15.00\"", summary[0].Value)
	}
}

func TestComputeExcludesNonNumeric(t *testing.T) {
	ds := model.NewDataset("name", "mixed", "n")
	ds.AddRow(model.Text("x"), model.Number(1), model.Number(5))
	ds.AddRow(model.Text("y"), model.Text("not a number"), model.Number(7))

	summary := NewComputer().Compute(ds, allFlags("t"))
	for _, e := range summary {
		if e.Label == "Total name" || e.Label == "Total mixed" ||
			e.Label == "Average name" || e.Label == "Average mixed" {
			t.Errorf("non-numeric column leaked into summary: %q", e.Label)
		}
	}
	if len(summary) != 3 {
		t.Errorf("expected 3 entries (count, total n, average n), got %d", len(summary))
	}
}

func TestComputeFlagsOff(t *testing.T) {
	ds := model.NewDataset("n")
	ds.AddRow(model.Number(1))

	summary := NewComputer().Compute(ds, model.ContentSelection{})
	if len(summary) != 0 {
		t.Errorf("expected empty summary, got %+v", summary)
	}

	summary = NewComputer().Compute(ds, model.ContentSelection{IncludeTotals: true})
	if len(summary) != 1 || summary[0].Label != "Total n" {
		t.Errorf("unexpected summary: %+v", summary)
	}
}

func TestComputeAllNullColumn(t *testing.T) {
	ds := model.NewDataset("empty", "n")
	ds.AddRow(model.Null(), model.Number(1))
	ds.AddRow(model.Null(), model.Number(2))

	summary := NewComputer().Compute(ds, model.ContentSelection{IncludeTotals: true, IncludeAverages: true})
	if len(summary) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(summary), summary)
	}
	if summary[0].Label != "Total n" || summary[1].Label != "Average n" {
		t.Errorf("unexpected labels: %+v", summary)
	}
}
