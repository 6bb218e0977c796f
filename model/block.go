package model

// BlockType identifies the kind of a content block.
type BlockType int

const (
	BlockTypeUnknown BlockType = iota
	BlockTypeImage
	BlockTypeTitle
	BlockTypeText
	BlockTypeTable
	BlockTypeSpacer
)

func (bt BlockType) String() string {
	switch bt {
	case BlockTypeImage:
		return "Image"
	case BlockTypeTitle:
		return "Title"
	case BlockTypeText:
		return "Text"
	case BlockTypeTable:
		return "Table"
	case BlockTypeSpacer:
		return "Spacer"
	default:
		return "Unknown"
	}
}

// Block is the interface for all content blocks. Blocks are immutable once
// composed; the layout engine annotates them with page positions without
// modifying them.
type Block interface {
	Type() BlockType
}

// ImageBlock is an image already fitted to its display dimensions.
type ImageBlock struct {
	Data   []byte
	Format string // "png", "jpeg", ...
	Width  float64
	Height float64
}

func (b *ImageBlock) Type() BlockType { return BlockTypeImage }

// TitleBlock is the report title.
type TitleBlock struct {
	Text  string
	Style TitleStyle
}

func (b *TitleBlock) Type() BlockType { return BlockTypeTitle }

// TextBlock is a short run of standalone text (timestamp, footer).
type TextBlock struct {
	Text  string
	Style TitleStyle
}

func (b *TextBlock) Type() BlockType { return BlockTypeText }

// TableBlock is a table with one header row and zero or more body rows.
type TableBlock struct {
	Header []string
	Body   [][]string
	Style  TableStyle
}

func (b *TableBlock) Type() BlockType { return BlockTypeTable }

// ColCount returns the number of columns, taken from the header row.
func (b *TableBlock) ColCount() int { return len(b.Header) }

// SpacerBlock is vertical whitespace between blocks.
type SpacerBlock struct {
	Gap float64
}

func (b *SpacerBlock) Type() BlockType { return BlockTypeSpacer }

// PlacedBlock is a content block annotated with its assigned page and
// vertical offset. Only the layout engine produces placed blocks.
type PlacedBlock struct {
	Block Block

	// Page is the 0-based page index.
	Page int

	// Y is the vertical offset in points from the top of the drawable
	// area of the page.
	Y float64

	// For table blocks split across pages: the half-open window of body
	// rows placed by this entry. A table that fits on one page has
	// RowStart == 0 and RowEnd == len(Body).
	RowStart int
	RowEnd   int
}

// Layout is the final page-annotated block stream together with the page
// geometry it was computed for. It is the renderer's input.
type Layout struct {
	Page    Geometry
	Margins Margins
	Blocks  []PlacedBlock

	// PageCount is the total number of pages used.
	PageCount int
}
