// Package style resolves partially specified user styles into complete
// style specs by filling unset fields from built-in defaults.
package style

import "github.com/tsawler/folio/model"

// Default style constants. Colors match the application's stock report
// theme.
var (
	DefaultHeaderBackground = model.Color{R: 0x2d, G: 0x5d, B: 0x7b}
	DefaultHeaderText       = model.Color{R: 0xff, G: 0xff, B: 0xff}
	DefaultBodyBackground   = model.Color{R: 0xf5, G: 0xf5, B: 0xf5}
	DefaultBodyText         = model.Color{R: 0x00, G: 0x00, B: 0x00}
	DefaultGrid             = model.Color{R: 0x80, G: 0x80, B: 0x80}
	GrayText                = model.Color{R: 0x80, G: 0x80, B: 0x80}
)

// DefaultTitle returns the default title style: 24pt Helvetica, black,
// centered, with 30pt of space after.
func DefaultTitle() model.TitleStyle {
	return model.TitleStyle{
		Font:       "Helvetica",
		FontSize:   24,
		Color:      model.Color{},
		Alignment:  model.AlignCenter,
		SpaceAfter: 30,
	}
}

// DefaultTable returns the default table style. Body rows share one uniform
// background color; rows are a fixed 20pt tall with middle vertical
// alignment.
func DefaultTable() model.TableStyle {
	return model.TableStyle{
		HeaderBackground: DefaultHeaderBackground,
		HeaderTextColor:  DefaultHeaderText,
		HeaderFont:       "Helvetica-Bold",
		HeaderFontSize:   10,
		HeaderPadding:    12,
		BodyBackground:   DefaultBodyBackground,
		BodyTextColor:    DefaultBodyText,
		BodyFont:         "Helvetica",
		BodyFontSize:     8,
		GridColor:        DefaultGrid,
		GridWidth:        1,
		RowHeight:        20,
		VerticalAlign:    model.VAlignMiddle,
	}
}

// Timestamp returns the style for the generation timestamp line: 10pt gray,
// left-aligned.
func Timestamp() model.TitleStyle {
	return model.TitleStyle{
		Font:      "Helvetica",
		FontSize:  10,
		Color:     GrayText,
		Alignment: model.AlignLeft,
	}
}

// Footer returns the style for the footer line: 8pt gray, centered.
func Footer() model.TitleStyle {
	return model.TitleStyle{
		Font:      "Helvetica",
		FontSize:  8,
		Color:     GrayText,
		Alignment: model.AlignCenter,
	}
}

// ResolveTitle merges a user title style with the defaults, field by field:
// any zero field takes its default value. The zero alignment is AlignCenter
// and the zero color is black, both also the defaults, so an unset field
// and a defaulted field are indistinguishable by construction.
func ResolveTitle(user model.TitleStyle) model.TitleStyle {
	def := DefaultTitle()
	if user.Font == "" {
		user.Font = def.Font
	}
	if user.FontSize <= 0 {
		user.FontSize = def.FontSize
	}
	if user.SpaceAfter <= 0 {
		user.SpaceAfter = def.SpaceAfter
	}
	return user
}

// ResolveTable merges a user table style with the defaults, field by field.
// A zero color means unset and takes its own default; an explicit black
// where the default differs is expressed as a near-black such as #000001.
func ResolveTable(user model.TableStyle) model.TableStyle {
	def := DefaultTable()
	zero := model.Color{}
	if user.HeaderBackground == zero {
		user.HeaderBackground = def.HeaderBackground
	}
	if user.HeaderTextColor == zero {
		user.HeaderTextColor = def.HeaderTextColor
	}
	if user.BodyBackground == zero {
		user.BodyBackground = def.BodyBackground
	}
	if user.BodyTextColor == zero {
		user.BodyTextColor = def.BodyTextColor
	}
	if user.GridColor == zero {
		user.GridColor = def.GridColor
	}
	if user.HeaderFont == "" {
		user.HeaderFont = def.HeaderFont
	}
	if user.HeaderFontSize <= 0 {
		user.HeaderFontSize = def.HeaderFontSize
	}
	if user.HeaderPadding <= 0 {
		user.HeaderPadding = def.HeaderPadding
	}
	if user.BodyFont == "" {
		user.BodyFont = def.BodyFont
	}
	if user.BodyFontSize <= 0 {
		user.BodyFontSize = def.BodyFontSize
	}
	if user.GridWidth <= 0 {
		user.GridWidth = def.GridWidth
	}
	if user.RowHeight <= 0 {
		user.RowHeight = def.RowHeight
	}
	return user
}
