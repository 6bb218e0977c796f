// Package render serializes a page-annotated block stream into final
// document bytes. The [Renderer] interface is the narrow seam between the
// layout pipeline and any concrete document format; [PDF] and [HTML]
// implementations are provided.
package render

import "github.com/tsawler/folio/model"

// Renderer turns a computed layout into document bytes. Rendering is
// all-or-nothing: on error no bytes are returned, never a truncated
// document.
type Renderer interface {
	Render(l *model.Layout) ([]byte, error)
}
