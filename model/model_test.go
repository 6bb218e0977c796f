package model

import (
	"testing"
	"time"
)

func TestValueKinds(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		kind ValueKind
		str  string
	}{
		{"null", Null(), KindNull, ""},
		{"number", Number(42.5), KindNumber, "42.5"},
		{"integer number", Number(1000), KindNumber, "1000"},
		{"text", Text("hello"), KindText, "hello"},
		{"bool", Bool(true), KindBool, "true"},
		{"date", Date(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)), KindDate, "2024-03-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.v.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", tt.v.Kind(), tt.kind)
			}
			if tt.v.String() != tt.str {
				t.Errorf("String() = %q, want %q", tt.v.String(), tt.str)
			}
		})
	}
}

func TestValueFloat(t *testing.T) {
	if f, ok := Number(3.5).Float(); !ok || f != 3.5 {
		t.Errorf("Number(3.5).Float() = %f, %v", f, ok)
	}
	if _, ok := Text("3.5").Float(); ok {
		t.Error("Text should not report a float value")
	}
	if _, ok := Null().Float(); ok {
		t.Error("Null should not report a float value")
	}
}

func TestDatasetAddRow(t *testing.T) {
	ds := NewDataset("a", "b")
	if err := ds.AddRow(Number(1), Text("x")); err != nil {
		t.Fatalf("AddRow failed: %v", err)
	}
	if err := ds.AddRow(Number(1)); err == nil {
		t.Error("expected error for short row")
	}
	if ds.RowCount() != 1 {
		t.Errorf("RowCount() = %d, want 1", ds.RowCount())
	}
}

func TestDatasetColumn(t *testing.T) {
	ds := NewDataset("a", "b")
	ds.AddRow(Number(1), Text("x"))
	ds.AddRow(Number(2), Text("y"))

	cells, ok := ds.Column("b")
	if !ok {
		t.Fatal("Column(b) not found")
	}
	if len(cells) != 2 || cells[0].String() != "x" || cells[1].String() != "y" {
		t.Errorf("unexpected column cells: %v", cells)
	}

	if _, ok := ds.Column("missing"); ok {
		t.Error("Column(missing) should not be found")
	}
}

func TestDatasetProject(t *testing.T) {
	ds := NewDataset("a", "b", "c")
	ds.AddRow(Number(1), Text("x"), Bool(true))
	ds.AddRow(Number(2), Text("y"), Bool(false))

	header, body := ds.Project([]string{"c", "a", "nope"})
	if len(header) != 2 || header[0] != "c" || header[1] != "a" {
		t.Errorf("unexpected header: %v", header)
	}
	if len(body) != 2 {
		t.Fatalf("expected 2 body rows, got %d", len(body))
	}
	if body[0][0] != "true" || body[0][1] != "1" {
		t.Errorf("unexpected first row: %v", body[0])
	}
}

func TestDatasetProjectEmpty(t *testing.T) {
	ds := NewDataset("a")
	ds.AddRow(Number(1))
	ds.AddRow(Number(2))

	// No columns selected: a header-only projection with no body rows,
	// never one empty row per dataset row.
	header, body := ds.Project(nil)
	if len(header) != 0 {
		t.Errorf("expected empty header, got %v", header)
	}
	if len(body) != 0 {
		t.Errorf("expected no body rows, got %d", len(body))
	}

	// Same when every selected column is absent.
	header, body = ds.Project([]string{"nope", "missing"})
	if len(header) != 0 || len(body) != 0 {
		t.Errorf("absent columns: header=%v body rows=%d, want both empty", header, len(body))
	}
}

func TestIsNumericColumn(t *testing.T) {
	ds := NewDataset("nums", "mixed", "nulls", "texts")
	ds.AddRow(Number(1), Number(1), Null(), Text("a"))
	ds.AddRow(Number(2), Text("oops"), Null(), Text("b"))
	ds.AddRow(Null(), Number(3), Null(), Text("c"))

	if !ds.IsNumericColumn("nums") {
		t.Error("nums should be numeric (nulls ignored)")
	}
	if ds.IsNumericColumn("mixed") {
		t.Error("mixed should not be numeric")
	}
	if ds.IsNumericColumn("nulls") {
		t.Error("all-null column should not be numeric")
	}
	if ds.IsNumericColumn("texts") {
		t.Error("text column should not be numeric")
	}
	if ds.IsNumericColumn("missing") {
		t.Error("missing column should not be numeric")
	}
}

func TestPageSizeByName(t *testing.T) {
	tests := []struct {
		name   string
		width  float64
		height float64
		ok     bool
	}{
		{"A4", 595.28, 841.89, true},
		{"Letter", 612, 792, true},
		{"Legal", 612, 1008, true},
		{"Tabloid", 0, 0, false},
	}

	for _, tt := range tests {
		g, ok := PageSizeByName(tt.name)
		if ok != tt.ok {
			t.Errorf("PageSizeByName(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			continue
		}
		if ok && (g.Width != tt.width || g.Height != tt.height) {
			t.Errorf("PageSizeByName(%q) = %+v", tt.name, g)
		}
	}
}

func TestOriented(t *testing.T) {
	g := Letter.Oriented(Landscape)
	if g.Width != 792 || g.Height != 612 {
		t.Errorf("landscape Letter = %+v", g)
	}
	g = Letter.Oriented(Portrait)
	if g.Width != 612 || g.Height != 792 {
		t.Errorf("portrait Letter = %+v", g)
	}
}

func TestDrawable(t *testing.T) {
	g := Geometry{Width: 612, Height: 792}
	d := g.Drawable(Margins{Left: 36, Right: 36, Top: 50, Bottom: 42})
	if d.Width != 540 {
		t.Errorf("drawable width = %f, want 540", d.Width)
	}
	if d.Height != 700 {
		t.Errorf("drawable height = %f, want 700", d.Height)
	}
}

func TestHexColor(t *testing.T) {
	c, err := HexColor("#2d5d7b")
	if err != nil {
		t.Fatalf("HexColor failed: %v", err)
	}
	if c.R != 0x2d || c.G != 0x5d || c.B != 0x7b {
		t.Errorf("HexColor = %+v", c)
	}
	if c.Hex() != "#2d5d7b" {
		t.Errorf("Hex() = %q", c.Hex())
	}

	for _, bad := range []string{"", "2d5d7b", "#2d5d7", "#gggggg"} {
		if _, err := HexColor(bad); err == nil {
			t.Errorf("HexColor(%q) should fail", bad)
		}
	}
}

func TestConfigurationGeometry(t *testing.T) {
	cfg := ReportConfiguration{PageSize: "Letter", Orientation: Landscape}
	g := cfg.Geometry()
	if g.Width != 792 || g.Height != 612 {
		t.Errorf("Geometry() = %+v", g)
	}

	// Unknown names fall back to A4 rather than failing; validation
	// happens at the caller.
	cfg = ReportConfiguration{PageSize: "nope"}
	if g := cfg.Geometry(); g != A4 {
		t.Errorf("fallback geometry = %+v", g)
	}
}

func TestBlockTypes(t *testing.T) {
	blocks := []Block{
		&ImageBlock{},
		&TitleBlock{},
		&TextBlock{},
		&TableBlock{},
		&SpacerBlock{},
	}
	want := []BlockType{BlockTypeImage, BlockTypeTitle, BlockTypeText, BlockTypeTable, BlockTypeSpacer}
	for i, b := range blocks {
		if b.Type() != want[i] {
			t.Errorf("block %d Type() = %v, want %v", i, b.Type(), want[i])
		}
	}
	if BlockTypeTable.String() != "Table" {
		t.Errorf("BlockTypeTable.String() = %q", BlockTypeTable.String())
	}
}

func TestTableBlockColCount(t *testing.T) {
	tb := &TableBlock{Header: []string{"a", "b", "c"}}
	if tb.ColCount() != 3 {
		t.Errorf("ColCount() = %d, want 3", tb.ColCount())
	}
}
