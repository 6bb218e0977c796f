package dataset

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/folio/model"
)

// FromXLSX reads a dataset from the first sheet of an XLSX workbook. The
// first row is the header.
func FromXLSX(path string) (*model.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()
	return fromWorkbook(f)
}

// FromXLSXReader reads a dataset from XLSX content.
func FromXLSXReader(r io.Reader) (*model.Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()
	return fromWorkbook(f)
}

func fromWorkbook(f *excelize.File) (*model.Dataset, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	return buildDataset(rows[0], rows[1:])
}
