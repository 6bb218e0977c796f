// Package compose assembles the ordered content block stream for a report
// from a dataset, a configuration, and a computed summary.
//
// The block order is fixed regardless of input: header image (when present
// and decodable), title, generation timestamp, summary table (when the
// summary is non-empty), main data table, footer (when footer text is set),
// with spacers between sections.
package compose

import (
	"time"

	"github.com/tsawler/folio/imaging"
	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/style"
)

// SectionGap is the vertical spacing between report sections, in points.
const SectionGap = 20.0

// DefaultImageMaxHeight is the default header image bounding box height:
// two inches.
const DefaultImageMaxHeight = 2 * model.PointsPerInch

// Composer builds the content block stream. Clock supplies the render
// timestamp and defaults to time.Now; tests inject a fixed clock for
// deterministic output.
type Composer struct {
	Clock func() time.Time
}

// NewComposer creates a Composer using the wall clock.
func NewComposer() *Composer {
	return &Composer{Clock: time.Now}
}

// Compose assembles the block stream. The returned warnings describe
// degraded content (an undecodable header image); they never abort
// composition.
func (c *Composer) Compose(ds *model.Dataset, cfg model.ReportConfiguration, summary model.Summary) ([]model.Block, []model.Warning) {
	var blocks []model.Block
	var warnings []model.Warning

	titleStyle := style.ResolveTitle(cfg.TitleStyle)
	tableStyle := style.ResolveTable(cfg.TableStyle)
	drawable := cfg.Geometry().Drawable(cfg.Margins)

	if cfg.HeaderImage != nil {
		if img, warning := c.imageBlock(cfg.HeaderImage, drawable.Width); img != nil {
			blocks = append(blocks, img, &model.SpacerBlock{Gap: SectionGap})
		} else {
			warnings = append(warnings, *warning)
		}
	}

	blocks = append(blocks, &model.TitleBlock{
		Text:  cfg.Content.ReportTitle,
		Style: titleStyle,
	})

	now := time.Now
	if c.Clock != nil {
		now = c.Clock
	}
	blocks = append(blocks,
		&model.TextBlock{
			Text:  "Generated on: " + now().Format("2006-01-02 15:04:05"),
			Style: style.Timestamp(),
		},
		&model.SpacerBlock{Gap: SectionGap},
	)

	if len(summary) > 0 {
		body := make([][]string, len(summary))
		for i, e := range summary {
			body[i] = []string{e.Label, e.Value}
		}
		blocks = append(blocks,
			&model.TableBlock{
				Header: []string{"Metric", "Value"},
				Body:   body,
				Style:  tableStyle,
			},
			&model.SpacerBlock{Gap: SectionGap},
		)
	}

	header, body := ds.Project(cfg.Content.SelectedColumns)
	blocks = append(blocks, &model.TableBlock{
		Header: header,
		Body:   body,
		Style:  tableStyle,
	})

	if cfg.FooterText != "" {
		blocks = append(blocks,
			&model.SpacerBlock{Gap: SectionGap},
			&model.TextBlock{
				Text:  cfg.FooterText,
				Style: style.Footer(),
			},
		)
	}

	return blocks, warnings
}

// imageBlock decodes and fits the header image. A decode failure returns a
// nil block and a warning; the report renders without the image.
func (c *Composer) imageBlock(hdr *model.HeaderImage, contentWidth float64) (*model.ImageBlock, *model.Warning) {
	info, err := imaging.Decode(hdr.Data)
	if err != nil {
		return nil, &model.Warning{
			Code:    model.WarnImageUndecodable,
			Message: "header image omitted: " + err.Error(),
		}
	}

	maxW := hdr.MaxWidth
	if maxW <= 0 {
		maxW = contentWidth
	}
	maxH := hdr.MaxHeight
	if maxH <= 0 {
		maxH = DefaultImageMaxHeight
	}

	w, h := imaging.Fit(float64(info.Width), float64(info.Height), maxW, maxH)
	return &model.ImageBlock{
		Data:   hdr.Data,
		Format: info.Format,
		Width:  w,
		Height: h,
	}, nil
}
