package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/tsawler/folio/model"
)

func TestPDFRender(t *testing.T) {
	out, err := NewPDF().Render(testLayout())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Errorf("output does not start with PDF header: %q", out[:min(len(out), 8)])
	}
	// Two pages in the layout, so the page tree must hold two pages.
	if !bytes.Contains(out, []byte("/Count 2")) {
		t.Error("expected a 2-page document")
	}
}

func TestPDFRenderDeterministic(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	r := &PDF{CreationTime: fixed}

	a, err := r.Render(testLayout())
	if err != nil {
		t.Fatalf("first render failed: %v", err)
	}
	b, err := r.Render(testLayout())
	if err != nil {
		t.Fatalf("second render failed: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("identical layouts produced different PDF bytes")
	}
}

func TestPDFRenderEmptyLayout(t *testing.T) {
	l := &model.Layout{
		Page:      model.Geometry{Width: 612, Height: 792},
		Margins:   model.UniformMargins(36),
		PageCount: 1,
	}
	out, err := NewPDF().Render(l)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(out) == 0 {
		t.Error("empty output for empty layout")
	}
}

func TestSplitFont(t *testing.T) {
	tests := []struct {
		in     string
		family string
		style  string
	}{
		{"Helvetica", "Helvetica", ""},
		{"Helvetica-Bold", "Helvetica", "B"},
		{"Times-Roman", "Times", ""},
		{"Times-BoldItalic", "Times", "BI"},
		{"Courier-Oblique", "Courier", "I"},
		{"Comic Sans", "Helvetica", ""},
	}
	for _, tt := range tests {
		family, style := splitFont(tt.in)
		if family != tt.family || style != tt.style {
			t.Errorf("splitFont(%q) = %q,%q want %q,%q", tt.in, family, style, tt.family, tt.style)
		}
	}
}
