package model

import (
	"fmt"
	"strconv"
)

// Color represents an RGB color.
type Color struct {
	R, G, B uint8
}

// HexColor parses a "#rrggbb" color string.
func HexColor(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	var channels [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(s[1+i*2:3+i*2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		channels[i] = uint8(v)
	}
	return Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// Hex returns the "#rrggbb" form of the color.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// TextAlignment represents horizontal text alignment. The zero value is
// AlignCenter, the default title alignment, so an unset alignment in a
// partially specified style resolves to centered text.
type TextAlignment int

const (
	AlignCenter TextAlignment = iota
	AlignLeft
	AlignRight
)

func (a TextAlignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return "center"
	}
}

// VerticalAlignment represents vertical alignment within a table cell. The
// zero value is VAlignMiddle, the default.
type VerticalAlignment int

const (
	VAlignMiddle VerticalAlignment = iota
	VAlignTop
	VAlignBottom
)

// TitleStyle describes how the report title (and other standalone text) is
// drawn.
type TitleStyle struct {
	Font       string
	FontSize   float64
	Color      Color
	Alignment  TextAlignment
	SpaceAfter float64
}

// TableStyle describes how a table is drawn. Body rows share a single
// background color; there is no alternating striping.
type TableStyle struct {
	HeaderBackground Color
	HeaderTextColor  Color
	HeaderFont       string
	HeaderFontSize   float64
	HeaderPadding    float64
	BodyBackground   Color
	BodyTextColor    Color
	BodyFont         string
	BodyFontSize     float64
	GridColor        Color
	GridWidth        float64
	RowHeight        float64
	VerticalAlign    VerticalAlignment
}
