// Package layout computes page placement for a composed block stream. Given
// page geometry and margins, the engine assigns each block a page index and
// vertical offset, breaking tables across pages with the header row
// re-emitted at the top of each continuation.
//
// Non-table blocks never split: a block that does not fit in the remaining
// drawable height is pushed whole to the next page. A single block taller
// than one full drawable page is a fatal layout error.
package layout
