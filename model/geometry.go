package model

// Points per inch. PDF user space is measured in points.
const PointsPerInch = 72.0

// Geometry is a page size in points.
type Geometry struct {
	Width  float64
	Height float64
}

// Standard page sizes in points, portrait orientation.
var (
	A4     = Geometry{Width: 595.28, Height: 841.89}
	Letter = Geometry{Width: 612, Height: 792}
	Legal  = Geometry{Width: 612, Height: 1008}
)

// Orientation selects portrait or landscape page orientation.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// PageSizeByName returns the geometry for a named page size ("A4", "Letter",
// "Legal"). The second return is false for unknown names.
func PageSizeByName(name string) (Geometry, bool) {
	switch name {
	case "A4":
		return A4, true
	case "Letter":
		return Letter, true
	case "Legal":
		return Legal, true
	}
	return Geometry{}, false
}

// Oriented returns the geometry with width and height swapped for landscape.
func (g Geometry) Oriented(o Orientation) Geometry {
	if o == Landscape {
		return Geometry{Width: g.Height, Height: g.Width}
	}
	return g
}

// Margins are the page margins in points. All values are non-negative.
type Margins struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// UniformMargins returns margins with the same value on every side.
func UniformMargins(m float64) Margins {
	return Margins{Left: m, Right: m, Top: m, Bottom: m}
}

// Drawable returns the area remaining after margins are subtracted.
func (g Geometry) Drawable(m Margins) Geometry {
	return Geometry{
		Width:  g.Width - m.Left - m.Right,
		Height: g.Height - m.Top - m.Bottom,
	}
}
