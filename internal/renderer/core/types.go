// Package core provides shared types for the renderer subsystem.
// This package breaks import cycles between renderer and backend.
package core

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// Attribute represents text attributes (bold, reverse, etc.).
type Attribute uint16

// Text attribute flags.
const (
	AttrNone    Attribute = 0
	AttrBold    Attribute = 1 << iota
	AttrReverse           // Reverse video (swap fg/bg)
	AttrUnderline
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// Color represents a true color or the terminal default.
type Color struct {
	R, G, B uint8
	// Default indicates this is the terminal's default color.
	Default bool
}

// ColorDefault represents the terminal's default color.
var ColorDefault = Color{Default: true}

// ColorFromRGB creates a true color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromColorful converts a parsed color.
func ColorFromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// IsDefault returns true if this is the default terminal color.
func (c Color) IsDefault() bool {
	return c.Default
}

// Style combines colors and attributes for a cell.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// DefaultStyle returns a style using terminal defaults.
func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// Reverse returns the style with reverse video turned on.
func (s Style) Reverse() Style {
	s.Attributes |= AttrReverse
	return s
}

// Cell is one screen cell.
type Cell struct {
	Rune  rune
	Width int
	Style Style
}

// EmptyCell returns a blank cell in the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1, Style: DefaultStyle()}
}

// NewStyledCell creates a cell with the given rune and style.
func NewStyledCell(r rune, style Style) Cell {
	return Cell{Rune: r, Width: RuneWidth(r), Style: style}
}

// RuneWidth returns the number of columns r occupies.
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// ScreenRect is a half-open rectangle of cells.
type ScreenRect struct {
	Top, Left, Bottom, Right int
}

// RectFromSize creates a rectangle from its origin and size.
func RectFromSize(top, left, height, width int) ScreenRect {
	return ScreenRect{Top: top, Left: left, Bottom: top + height, Right: left + width}
}
