// Package renderer draws the current window onto a terminal backend.
//
// The renderer only reads editor state. Each redraw receives a Frame
// holding the visible window's lines, viewport top, cursor and the status
// text, and paints:
//
//	┌─────────────────────────────────────────┐
//	│  text rows (viewport top .. top+h-2)    │
//	├─────────────────────────────────────────┤
//	│  status line or active prompt           │
//	└─────────────────────────────────────────┘
//
// Column positions are display widths: wide runes take two cells and a
// tab takes TabWidth cells.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.DefaultOptions())
//	r.Render(frame)
package renderer
