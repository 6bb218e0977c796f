package render

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/model"
)

// PDF renders a layout to PDF bytes using the built-in core fonts. The zero
// value is ready to use.
type PDF struct {
	// CreationTime pins the document's creation and modification dates.
	// When zero the current time is embedded, which makes output bytes
	// differ between otherwise identical renders.
	CreationTime time.Time
}

// NewPDF creates a PDF renderer.
func NewPDF() *PDF {
	return &PDF{}
}

// Render serializes the layout. Blocks are drawn at their assigned absolute
// positions; automatic page breaking is disabled since pagination was
// already decided by the layout engine.
func (r *PDF) Render(l *model.Layout) ([]byte, error) {
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: l.Page.Width, Ht: l.Page.Height},
	})
	doc.SetMargins(l.Margins.Left, l.Margins.Top, l.Margins.Right)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCatalogSort(true)
	if !r.CreationTime.IsZero() {
		doc.SetCreationDate(r.CreationTime)
		doc.SetModificationDate(r.CreationTime)
	}

	drawable := l.Page.Drawable(l.Margins)

	page := -1
	for i, pb := range l.Blocks {
		for page < pb.Page {
			doc.AddPage()
			page++
		}
		x := l.Margins.Left
		y := l.Margins.Top + pb.Y

		switch blk := pb.Block.(type) {
		case *model.ImageBlock:
			drawImage(doc, blk, i, x, y)
		case *model.TitleBlock:
			drawText(doc, blk.Text, blk.Style, x, y, drawable.Width)
		case *model.TextBlock:
			drawText(doc, blk.Text, blk.Style, x, y, drawable.Width)
		case *model.TableBlock:
			drawTableSegment(doc, blk, pb, x, y, drawable.Width)
		case *model.SpacerBlock:
			// Whitespace needs no drawing.
		}
	}
	if page < 0 {
		doc.AddPage()
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func drawImage(doc *fpdf.Fpdf, blk *model.ImageBlock, index int, x, y float64) {
	name := fmt.Sprintf("hdr%d", index)
	opts := fpdf.ImageOptions{ImageType: strings.ToUpper(blk.Format)}
	doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(blk.Data))
	doc.ImageOptions(name, x, y, blk.Width, blk.Height, false, opts, 0, "")
}

func drawText(doc *fpdf.Fpdf, text string, st model.TitleStyle, x, y, width float64) {
	family, fontStyle := splitFont(st.Font)
	doc.SetFont(family, fontStyle, st.FontSize)
	doc.SetTextColor(int(st.Color.R), int(st.Color.G), int(st.Color.B))
	doc.SetXY(x, y)
	doc.CellFormat(width, st.FontSize*layout.LineSpacing, text, "", 0, alignString(st.Alignment), false, 0, "")
}

// drawTableSegment draws the header row plus the body row window assigned
// to this placed block.
func drawTableSegment(doc *fpdf.Fpdf, blk *model.TableBlock, pb model.PlacedBlock, x, y, drawableWidth float64) {
	if blk.ColCount() == 0 {
		return
	}
	st := blk.Style
	colW := layout.ColumnWidth(blk, drawableWidth)
	rowH := st.RowHeight

	doc.SetDrawColor(int(st.GridColor.R), int(st.GridColor.G), int(st.GridColor.B))
	doc.SetLineWidth(st.GridWidth)

	// Header row.
	family, fontStyle := splitFont(st.HeaderFont)
	doc.SetFont(family, fontStyle, st.HeaderFontSize)
	doc.SetFillColor(int(st.HeaderBackground.R), int(st.HeaderBackground.G), int(st.HeaderBackground.B))
	doc.SetTextColor(int(st.HeaderTextColor.R), int(st.HeaderTextColor.G), int(st.HeaderTextColor.B))
	doc.SetXY(x, y)
	for _, cell := range blk.Header {
		doc.CellFormat(colW, rowH, cell, "1", 0, "L", true, 0, "")
	}
	y += rowH

	// Body rows for this segment, uniform background.
	family, fontStyle = splitFont(st.BodyFont)
	doc.SetFont(family, fontStyle, st.BodyFontSize)
	doc.SetFillColor(int(st.BodyBackground.R), int(st.BodyBackground.G), int(st.BodyBackground.B))
	doc.SetTextColor(int(st.BodyTextColor.R), int(st.BodyTextColor.G), int(st.BodyTextColor.B))
	for row := pb.RowStart; row < pb.RowEnd; row++ {
		doc.SetXY(x, y)
		for _, cell := range blk.Body[row] {
			doc.CellFormat(colW, rowH, cell, "1", 0, "L", true, 0, "")
		}
		y += rowH
	}
}

// splitFont maps a PostScript-style font name to an fpdf core font family
// and style string ("Helvetica-Bold" becomes Helvetica, "B").
func splitFont(name string) (family, style string) {
	base := name
	if i := strings.IndexByte(name, '-'); i >= 0 {
		base = name[:i]
		switch strings.ToLower(name[i+1:]) {
		case "bold":
			style = "B"
		case "oblique", "italic":
			style = "I"
		case "boldoblique", "bolditalic":
			style = "BI"
		}
	}
	switch base {
	case "Helvetica", "Times", "Courier":
		return base, style
	default:
		return "Helvetica", style
	}
}

func alignString(a model.TextAlignment) string {
	switch a {
	case model.AlignLeft:
		return "L"
	case model.AlignRight:
		return "R"
	default:
		return "C"
	}
}
