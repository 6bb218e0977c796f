// Package format provides input format detection for dataset files.
package format

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported dataset input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// CSV indicates a comma-separated values file.
	CSV
	// XLSX indicates a Microsoft Excel (.xlsx) workbook.
	XLSX
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case CSV:
		return "CSV"
	case XLSX:
		return "XLSX"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case CSV:
		return ".csv"
	case XLSX:
		return ".xlsx"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return CSV
	case ".xlsx":
		return XLSX
	default:
		return Unknown
	}
}

// DetectFromReader inspects the content to determine format. A ZIP archive
// containing an xl/ directory is an XLSX workbook; anything that looks like
// delimited text is treated as CSV.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 4)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	// ZIP magic: PK\x03\x04
	if len(magic) >= 4 && magic[0] == 0x50 && magic[1] == 0x4B && magic[2] == 0x03 && magic[3] == 0x04 {
		return detectZIPFormat(r, size)
	}

	if looksLikeCSV(r, size) {
		return CSV, nil
	}
	return Unknown, nil
}

// detectZIPFormat inspects a ZIP archive for the xl/ worksheet directory
// that marks an XLSX workbook.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "xl/") {
			return XLSX, nil
		}
	}
	return Unknown, nil
}

// looksLikeCSV reports whether the leading content is plausible delimited
// text: printable, with at least one comma or tab before the first line
// break.
func looksLikeCSV(r io.ReaderAt, size int64) bool {
	buf := make([]byte, 512)
	n, err := r.ReadAt(buf, 0)
	if err != nil && err != io.EOF {
		return false
	}
	buf = buf[:n]
	if len(buf) == 0 {
		return false
	}

	sawDelim := false
	for _, b := range buf {
		if b == '\n' || b == '\r' {
			break
		}
		if b == ',' || b == '\t' {
			sawDelim = true
			continue
		}
		if b < 0x20 && b != '\t' {
			return false
		}
	}
	return sawDelim
}
