package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/folio/model"
)

func errEmptyColumn(i int) error {
	return fmt.Errorf("column %d has an empty name", i)
}

func errDuplicateColumn(name string) error {
	return fmt.Errorf("duplicate column name %q", name)
}

// FromCSV reads a dataset from CSV content. The first record is the header
// row; column names must be unique and non-empty.
func FromCSV(r io.Reader) (*model.Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // rows may omit trailing blanks

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("CSV input is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	var rows [][]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row %d: %w", len(rows)+2, err)
		}
		rows = append(rows, record)
	}

	return buildDataset(header, rows)
}

// OpenCSV reads a dataset from a CSV file.
func OpenCSV(path string) (*model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return FromCSV(f)
}
