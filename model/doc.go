// Package model provides the intermediate representation (IR) for report
// composition.
//
// This package defines the data structures the rendering pipeline is built
// around. A [Dataset] (ordered columns, rows of typed [Value] cells) and a
// [ReportConfiguration] go in; an ordered sequence of content blocks comes
// out of composition; layout assigns each block a page and vertical offset,
// producing a [Layout] ready for a renderer.
//
// # Dataset
//
// The [Dataset] type holds tabular data with a fixed column order:
//
//	ds := model.NewDataset("Region", "Sales")
//	ds.AddRow(model.Text("West"), model.Number(1250))
//
// Cells are [Value] variants: number, text, boolean, date, or null.
//
// # Content blocks
//
// All composed content implements the [Block] interface. The concrete types
// are:
//
//   - [ImageBlock] - a pre-fitted header image
//   - [TitleBlock] - the report title
//   - [TextBlock] - timestamp, footer, and other short text
//   - [TableBlock] - summary and main data tables
//   - [SpacerBlock] - vertical whitespace between blocks
//
// Blocks are immutable once composed. [PlacedBlock] pairs a block with its
// assigned page index and vertical offset; only the layout engine produces
// placed blocks.
//
// # Geometry
//
// Page geometry is expressed in points (1/72 inch). [PageSizeByName] maps
// the supported named sizes (A4, Letter, Legal) to dimensions, and
// [Orientation] selects portrait or landscape. [Margins] subtracted from a
// [Geometry] yield the drawable area.
package model
