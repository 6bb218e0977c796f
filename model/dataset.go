package model

import "fmt"

// Dataset holds tabular data: an ordered list of uniquely named columns and
// rows of typed cells. Every row has exactly one cell per column, in column
// order.
type Dataset struct {
	Columns []string
	Rows    [][]Value
}

// NewDataset creates an empty dataset with the given column order.
func NewDataset(columns ...string) *Dataset {
	return &Dataset{
		Columns: columns,
		Rows:    make([][]Value, 0),
	}
}

// AddRow appends a row. The number of cells must match the column count.
func (d *Dataset) AddRow(cells ...Value) error {
	if len(cells) != len(d.Columns) {
		return fmt.Errorf("row has %d cells, dataset has %d columns", len(cells), len(d.Columns))
	}
	d.Rows = append(d.Rows, cells)
	return nil
}

// RowCount returns the number of data rows.
func (d *Dataset) RowCount() int {
	return len(d.Rows)
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (d *Dataset) ColumnIndex(name string) int {
	for i, c := range d.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns all cells of the named column in row order.
// The second return is false if the column does not exist.
func (d *Dataset) Column(name string) ([]Value, bool) {
	idx := d.ColumnIndex(name)
	if idx < 0 {
		return nil, false
	}
	cells := make([]Value, len(d.Rows))
	for i, row := range d.Rows {
		cells[i] = row[idx]
	}
	return cells, true
}

// Project returns the dataset's rows restricted to the given columns, in the
// given order, as display strings. Columns not present in the dataset are
// skipped. Row order is preserved. Selecting no columns (or only absent
// ones) yields an empty header and no body rows, not one empty row per
// dataset row.
func (d *Dataset) Project(columns []string) (header []string, body [][]string) {
	indexes := make([]int, 0, len(columns))
	for _, name := range columns {
		if idx := d.ColumnIndex(name); idx >= 0 {
			indexes = append(indexes, idx)
			header = append(header, name)
		}
	}
	if len(indexes) == 0 {
		return nil, nil
	}
	body = make([][]string, len(d.Rows))
	for i, row := range d.Rows {
		cells := make([]string, len(indexes))
		for j, idx := range indexes {
			cells[j] = row[idx].String()
		}
		body[i] = cells
	}
	return header, body
}

// IsNumericColumn reports whether every non-null cell in the column is a
// number. A column with no numeric cells at all (empty, or all nulls) is not
// numeric.
func (d *Dataset) IsNumericColumn(name string) bool {
	idx := d.ColumnIndex(name)
	if idx < 0 {
		return false
	}
	seen := 0
	for _, row := range d.Rows {
		v := row[idx]
		if v.IsNull() {
			continue
		}
		if v.Kind() != KindNumber {
			return false
		}
		seen++
	}
	return seen > 0
}
