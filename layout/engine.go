package layout

import (
	"errors"
	"fmt"

	"github.com/tsawler/folio/model"
)

// ErrBlockTooTall is returned when a non-splittable block is taller than a
// full drawable page. The render fails rather than silently clipping.
var ErrBlockTooTall = errors.New("block taller than drawable page")

// LineSpacing is the line height multiplier for text blocks.
const LineSpacing = 1.2

// Engine assigns pages and vertical offsets to a block stream. The zero
// value is ready to use.
type Engine struct{}

// NewEngine creates a layout engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Layout places blocks onto pages. Pages are 0-indexed and emitted strictly
// in block order. Column widths inside tables divide the drawable width
// evenly across the header columns; row heights are the fixed height from
// the table style.
func (e *Engine) Layout(blocks []model.Block, geom model.Geometry, margins model.Margins) (*model.Layout, error) {
	drawable := geom.Drawable(margins)
	if drawable.Width <= 0 || drawable.Height <= 0 {
		return nil, fmt.Errorf("margins leave no drawable area on %gx%g page", geom.Width, geom.Height)
	}

	result := &model.Layout{
		Page:    geom,
		Margins: margins,
	}

	page := 0
	y := 0.0

	for i, b := range blocks {
		if table, ok := b.(*model.TableBlock); ok {
			var err error
			page, y, err = e.placeTable(result, table, page, y, drawable.Height)
			if err != nil {
				return nil, fmt.Errorf("block %d (%s): %w", i, b.Type(), err)
			}
			continue
		}

		h := BlockHeight(b)
		if h > drawable.Height {
			return nil, fmt.Errorf("block %d (%s) is %.1fpt, drawable page is %.1fpt: %w",
				i, b.Type(), h, drawable.Height, ErrBlockTooTall)
		}
		if y+h > drawable.Height {
			page++
			y = 0
		}
		result.Blocks = append(result.Blocks, model.PlacedBlock{
			Block: b,
			Page:  page,
			Y:     y,
		})
		y += h
	}

	result.PageCount = page + 1
	return result, nil
}

// placeTable places a table block, splitting the body across pages. Each
// continuation page re-emits the header row at its top. Returns the page
// and y position after the table.
func (e *Engine) placeTable(result *model.Layout, table *model.TableBlock, page int, y, pageHeight float64) (int, float64, error) {
	rowH := table.Style.RowHeight
	if rowH <= 0 {
		return 0, 0, fmt.Errorf("table has non-positive row height %g", rowH)
	}
	if rowH > pageHeight || (len(table.Body) > 0 && rowH*2 > pageHeight) {
		// Not even a header (plus one body row) fits on an empty page.
		return 0, 0, fmt.Errorf("row height %.1fpt on %.1fpt page: %w", rowH, pageHeight, ErrBlockTooTall)
	}

	row := 0
	for {
		remaining := pageHeight - y
		// Header plus at least one body row must fit, unless the table
		// has no body rows at all.
		need := rowH
		if len(table.Body) > 0 {
			need = rowH * 2
		}
		if remaining < need {
			page++
			y = 0
			remaining = pageHeight
		}

		capacity := int(remaining/rowH) - 1 // body rows after the header
		if capacity < 0 {
			capacity = 0
		}
		end := row + capacity
		if end > len(table.Body) {
			end = len(table.Body)
		}

		result.Blocks = append(result.Blocks, model.PlacedBlock{
			Block:    table,
			Page:     page,
			Y:        y,
			RowStart: row,
			RowEnd:   end,
		})
		y += rowH * float64(1+end-row)

		row = end
		if row >= len(table.Body) {
			return page, y, nil
		}
	}
}

// BlockHeight returns the vertical space a non-table block occupies. Table
// heights depend on pagination and are computed during placement.
func BlockHeight(b model.Block) float64 {
	switch blk := b.(type) {
	case *model.ImageBlock:
		return blk.Height
	case *model.TitleBlock:
		return blk.Style.FontSize*LineSpacing + blk.Style.SpaceAfter
	case *model.TextBlock:
		return blk.Style.FontSize*LineSpacing + blk.Style.SpaceAfter
	case *model.SpacerBlock:
		return blk.Gap
	case *model.TableBlock:
		return blk.Style.RowHeight * float64(1+len(blk.Body))
	default:
		return 0
	}
}

// ColumnWidth returns the even column width for a table in the given
// drawable width. A header-only table with zero columns has no width to
// divide.
func ColumnWidth(table *model.TableBlock, drawableWidth float64) float64 {
	n := table.ColCount()
	if n == 0 {
		return drawableWidth
	}
	return drawableWidth / float64(n)
}
