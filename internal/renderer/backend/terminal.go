package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/lined/internal/renderer/core"
)

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTerminal creates a new terminal backend.
// tcell reads keys from the controlling terminal, so this works even
// when stdin was a pipe.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an existing screen, such as a simulation
// screen in tests.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Init()
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell.Style))
}

func (t *Terminal) Fill(rect core.ScreenRect, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	style := convertStyle(cell.Style)
	width, height := t.screen.Size()

	for y := rect.Top; y < rect.Bottom && y < height; y++ {
		for x := rect.Left; x < rect.Right && x < width; x++ {
			if x >= 0 && y >= 0 {
				t.screen.SetContent(x, y, cell.Rune, nil, style)
			}
		}
	}
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

func (t *Terminal) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			// Screen finalized.
			return Event{Type: EventNone}
		}
		if out, ok := convertEvent(ev); ok {
			return out
		}
	}
}

func (t *Terminal) PostEvent(event Event) {
	var ev tcell.Event
	switch event.Type {
	case EventKey:
		ev = tcell.NewEventKey(convertToTcellKey(event.Key), event.Rune, tcell.ModNone)
	case EventInterrupt:
		ev = tcell.NewEventInterrupt(event.Payload)
	default:
		return
	}
	_ = t.screen.PostEvent(ev) // best-effort; event queue may be full
}

func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault
	if !s.Foreground.IsDefault() {
		style = style.Foreground(tcell.NewRGBColor(int32(s.Foreground.R), int32(s.Foreground.G), int32(s.Foreground.B)))
	}
	if !s.Background.IsDefault() {
		style = style.Background(tcell.NewRGBColor(int32(s.Background.R), int32(s.Background.G), int32(s.Background.B)))
	}
	if s.Attributes.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attributes.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}
	if s.Attributes.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	return style
}

// convertEvent maps a tcell event; ok is false for events the editor ignores.
func convertEvent(ev tcell.Event) (Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		k := convertKey(e.Key())
		if k == KeyNone {
			return Event{}, false
		}
		out := Event{Type: EventKey, Key: k}
		if k == KeyRune {
			out.Rune = e.Rune()
		}
		return out, true
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true
	case *tcell.EventInterrupt:
		payload, _ := e.Data().(string)
		return Event{Type: EventInterrupt, Payload: payload}, true
	default:
		return Event{}, false
	}
}

func convertKey(k tcell.Key) Key {
	switch k {
	case tcell.KeyRune:
		return KeyRune
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyTab:
		return KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace
	case tcell.KeyDelete:
		return KeyDelete
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyCtrlC:
		return KeyCtrlC
	default:
		return KeyNone
	}
}

func convertToTcellKey(k Key) tcell.Key {
	switch k {
	case KeyEscape:
		return tcell.KeyEscape
	case KeyEnter:
		return tcell.KeyEnter
	case KeyTab:
		return tcell.KeyTab
	case KeyBackspace:
		return tcell.KeyBackspace2
	case KeyDelete:
		return tcell.KeyDelete
	case KeyUp:
		return tcell.KeyUp
	case KeyDown:
		return tcell.KeyDown
	case KeyLeft:
		return tcell.KeyLeft
	case KeyRight:
		return tcell.KeyRight
	case KeyCtrlC:
		return tcell.KeyCtrlC
	default:
		return tcell.KeyRune
	}
}
