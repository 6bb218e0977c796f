// Package folio renders tabular datasets into paginated, print-ready
// documents from a declarative configuration.
//
// Basic usage:
//
//	result, err := folio.Render(ds, cfg)
//	if err != nil {
//	    // handle error
//	}
//	if len(result.Warnings) > 0 {
//	    log.Println("Warnings:", folio.FormatWarnings(result.Warnings))
//	}
//	os.WriteFile("report.pdf", result.Bytes, 0o644)
//
// Rendering is a synchronous, pure computation: every input a render needs
// is carried in one immutable [model.ReportConfiguration], so independent
// renders may run concurrently. A failed render returns no bytes, never a
// truncated document. For custom output formats or deterministic output,
// construct an [Engine] with options:
//
//	engine := folio.New(
//	    folio.WithRenderer(render.NewHTML()),
//	    folio.WithClock(func() time.Time { return fixed }),
//	)
//	result, err := engine.Render(ds, cfg)
package folio

import (
	"fmt"
	"time"

	"github.com/tsawler/folio/aggregate"
	"github.com/tsawler/folio/compose"
	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/render"
)

// Warning is re-exported from the model package for convenient use at the
// API surface.
type Warning = model.Warning

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	return model.FormatWarnings(warnings)
}

// Result holds the output of one render call.
type Result struct {
	// Bytes is the complete rendered document.
	Bytes []byte

	// Warnings are the non-fatal conditions encountered; the document
	// rendered degraded but complete.
	Warnings []Warning

	// Pages is the number of pages in the document.
	Pages int
}

// Engine runs the rendering pipeline: aggregation, composition, layout,
// and serialization. Engines hold no per-render state and are safe for
// concurrent use.
type Engine struct {
	renderer render.Renderer
	clock    func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithRenderer selects the document renderer. The default renders PDF.
func WithRenderer(r render.Renderer) Option {
	return func(e *Engine) { e.renderer = r }
}

// WithClock injects the timestamp source. Two renders of the same dataset
// and configuration under a fixed clock produce identical bytes.
func WithClock(fn func() time.Time) Option {
	return func(e *Engine) { e.clock = fn }
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{clock: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render renders a dataset using the default engine (PDF output, wall
// clock).
func Render(ds *model.Dataset, cfg model.ReportConfiguration) (*Result, error) {
	return New().Render(ds, cfg)
}

// Render runs the full pipeline for one dataset and configuration.
func (e *Engine) Render(ds *model.Dataset, cfg model.ReportConfiguration) (*Result, error) {
	summary := aggregate.NewComputer().Compute(ds, cfg.Content)

	composer := &compose.Composer{Clock: e.clock}
	blocks, warnings := composer.Compose(ds, cfg, summary)

	placed, err := layout.NewEngine().Layout(blocks, cfg.Geometry(), cfg.Margins)
	if err != nil {
		return nil, fmt.Errorf("laying out report: %w", err)
	}

	renderer := e.renderer
	if renderer == nil {
		// Pin the PDF metadata clock to the engine clock so a fixed
		// clock yields byte-identical output.
		renderer = &render.PDF{CreationTime: e.clock()}
	}
	data, err := renderer.Render(placed)
	if err != nil {
		return nil, fmt.Errorf("rendering report: %w", err)
	}

	return &Result{
		Bytes:    data,
		Warnings: warnings,
		Pages:    placed.PageCount,
	}, nil
}

// Compose runs aggregation and composition only, returning the ordered
// block stream without laying it out. Useful for callers that feed blocks
// to their own layout or renderer.
func (e *Engine) Compose(ds *model.Dataset, cfg model.ReportConfiguration) ([]model.Block, []Warning) {
	summary := aggregate.NewComputer().Compute(ds, cfg.Content)
	composer := &compose.Composer{Clock: e.clock}
	return composer.Compose(ds, cfg, summary)
}
