// Package dataset reads tabular data files into the report data model. CSV
// and XLSX inputs are supported; cell types are inferred from the raw text.
package dataset

import (
	"strconv"
	"strings"
	"time"

	"github.com/tsawler/folio/model"
)

// Date layouts accepted by inference, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
}

// InferValue converts a raw text cell to a typed value. Empty text becomes
// null; "true"/"false" (any case) become booleans; parseable numbers become
// numbers; recognized date layouts become dates; everything else stays text.
func InferValue(raw string) model.Value {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return model.Null()
	}

	switch strings.ToLower(trimmed) {
	case "true":
		return model.Bool(true)
	case "false":
		return model.Bool(false)
	}

	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return model.Number(f)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return model.Date(t)
		}
	}

	return model.Text(trimmed)
}

// buildDataset assembles a dataset from a header record and raw rows,
// enforcing unique column names. Short rows are padded with nulls and long
// rows truncated, matching spreadsheet semantics where trailing blanks are
// often omitted.
func buildDataset(header []string, rows [][]string) (*model.Dataset, error) {
	seen := make(map[string]bool, len(header))
	columns := make([]string, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, errEmptyColumn(i)
		}
		if seen[name] {
			return nil, errDuplicateColumn(name)
		}
		seen[name] = true
		columns[i] = name
	}

	ds := model.NewDataset(columns...)
	for _, raw := range rows {
		cells := make([]model.Value, len(columns))
		for i := range columns {
			if i < len(raw) {
				cells[i] = InferValue(raw[i])
			} else {
				cells[i] = model.Null()
			}
		}
		ds.Rows = append(ds.Rows, cells)
	}
	return ds, nil
}
