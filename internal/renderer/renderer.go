package renderer

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dshills/lined/internal/engine/buffer"
	"github.com/dshills/lined/internal/engine/lines"
	"github.com/dshills/lined/internal/renderer/backend"
	"github.com/dshills/lined/internal/renderer/core"
)

// Options configures the renderer.
type Options struct {
	TabWidth    int
	TextStyle   core.Style
	StatusStyle core.Style
}

// DefaultOptions returns the default renderer options.
func DefaultOptions() Options {
	return Options{
		TabWidth:    4,
		TextStyle:   core.DefaultStyle(),
		StatusStyle: core.DefaultStyle().Reverse(),
	}
}

// Frame is everything needed to paint one screen.
type Frame struct {
	Lines  *lines.Store
	Top    int
	Cursor buffer.Position

	// Status is shown on the last row.
	Status string

	// Prompt, when Prompting is set, replaces the status line and
	// receives the cursor.
	Prompt    string
	Prompting bool
}

// Renderer paints frames onto a backend.
type Renderer struct {
	backend backend.Backend
	opts    Options
}

// New creates a renderer drawing to b.
func New(b backend.Backend, opts Options) *Renderer {
	if opts.TabWidth <= 0 {
		opts.TabWidth = DefaultOptions().TabWidth
	}
	return &Renderer{backend: b, opts: opts}
}

// TextHeight returns the number of rows available for buffer lines.
func (r *Renderer) TextHeight() int {
	_, h := r.backend.Size()
	return max(h-1, 1)
}

// Render paints f and flushes it to the display.
func (r *Renderer) Render(f Frame) {
	width, height := r.backend.Size()
	if width <= 0 || height <= 0 {
		return
	}
	r.backend.Fill(core.RectFromSize(0, 0, height, width), core.NewStyledCell(' ', r.opts.TextStyle))

	textRows := max(height-1, 0)
	for row := range textRows {
		i := f.Top + row
		if i >= f.Lines.Len() {
			break
		}
		r.drawText(0, row, width, lineText(f.Lines.At(i)), r.opts.TextStyle)
	}

	statusRow := height - 1
	r.backend.Fill(core.RectFromSize(statusRow, 0, 1, width), core.NewStyledCell(' ', r.opts.StatusStyle))
	if f.Prompting {
		end := r.drawText(0, statusRow, width, f.Prompt, r.opts.StatusStyle)
		r.backend.ShowCursor(min(end, width-1), statusRow)
	} else {
		r.drawText(0, statusRow, width, f.Status, r.opts.StatusStyle)
		line := lineText(f.Lines.At(f.Cursor.Line))
		x := r.Column(line, f.Cursor.Offset)
		y := f.Cursor.Line - f.Top
		if y >= 0 && y < textRows {
			r.backend.ShowCursor(min(x, width-1), y)
		} else {
			r.backend.HideCursor()
		}
	}
	r.backend.Show()
}

// Column returns the screen column of byte offset within line.
func (r *Renderer) Column(line string, offset int) int {
	offset = min(max(offset, 0), len(line))
	return r.width(line[:offset])
}

func (r *Renderer) width(s string) int {
	w := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w += r.clusterWidth(g.Str(), g.Width())
	}
	return w
}

func (r *Renderer) clusterWidth(cluster string, w int) int {
	switch {
	case cluster == "\t":
		return r.opts.TabWidth
	case w == 0:
		return 1 // control characters are drawn as '?'
	default:
		return w
	}
}

// drawText draws s from column x, clipped at width, and returns the
// column after the last cell drawn.
func (r *Renderer) drawText(x, y, width int, s string, style core.Style) int {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		w := r.clusterWidth(cluster, g.Width())
		if x+w > width {
			break
		}
		switch {
		case cluster == "\t":
			for i := range w {
				r.backend.SetCell(x+i, y, core.NewStyledCell(' ', style))
			}
		case g.Width() == 0:
			r.backend.SetCell(x, y, core.NewStyledCell('?', style))
		default:
			cell := core.NewStyledCell(g.Runes()[0], style)
			cell.Width = w
			r.backend.SetCell(x, y, cell)
			for i := 1; i < w; i++ {
				r.backend.SetCell(x+i, y, core.Cell{Style: style})
			}
		}
		x += w
	}
	return x
}

// lineText strips the line terminator for display.
func lineText(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
