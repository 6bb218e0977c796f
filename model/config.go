package model

// ContentSelection chooses what appears in the report body.
type ContentSelection struct {
	ReportTitle     string
	SelectedColumns []string
	IncludeRowCount bool
	IncludeTotals   bool
	IncludeAverages bool
}

// HeaderImage is an optional image placed at the top of the report, with the
// maximum bounding box it may occupy. Zero box dimensions mean the defaults
// apply (content width by two inches).
type HeaderImage struct {
	Data      []byte
	MaxWidth  float64
	MaxHeight float64
}

// ReportConfiguration is the complete, immutable configuration for one
// render call. Every field a render needs is carried here; the engine holds
// no state between calls, so configurations may be built concurrently and
// renders may run concurrently as long as each call owns its configuration.
type ReportConfiguration struct {
	PageSize    string // "A4", "Letter", "Legal"
	Orientation Orientation
	Margins     Margins
	HeaderImage *HeaderImage
	FooterText  string
	TitleStyle  TitleStyle
	TableStyle  TableStyle
	ChartWidth  float64 // reserved for chart blocks
	ChartHeight float64
	Content     ContentSelection
}

// Geometry resolves the configured page size and orientation to concrete
// dimensions. Unknown size names fall back to A4; the caller is expected to
// have validated the name.
func (c ReportConfiguration) Geometry() Geometry {
	g, ok := PageSizeByName(c.PageSize)
	if !ok {
		g = A4
	}
	return g.Oriented(c.Orientation)
}

// SummaryEntry is one (label, formatted value) pair in the summary table.
type SummaryEntry struct {
	Label string
	Value string
}

// Summary is the ordered list of aggregated statistics for a report.
type Summary []SummaryEntry

// EmailContent is the plain-text email artifact that accompanies a rendered
// report.
type EmailContent struct {
	Subject       string
	Body          string
	IncludeHeader bool
}
