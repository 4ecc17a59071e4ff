package editor

import (
	"github.com/dshills/lined/internal/window"
)

// prompt is a line of input being collected on the status row.
type prompt struct {
	label string
	input []rune
	done  func(w *window.Window, input string) error
}

// confirm is a pending yes/no question.
type confirm struct {
	question string
	yes      func(w *window.Window) error
}

func (e *Editor) startPrompt(label string, done func(*window.Window, string) error) {
	e.prompt = prompt{label: label, done: done}
	e.mode = ModePrompt
}

func (e *Editor) startConfirm(question string, yes func(*window.Window) error) {
	e.confirm = confirm{question: question, yes: yes}
	e.mode = ModeConfirm
}

func (e *Editor) handlePrompt(w *window.Window, k Key) error {
	switch k.Code {
	case KeyRune:
		e.prompt.input = append(e.prompt.input, k.Rune)
	case KeyBackspace:
		if n := len(e.prompt.input); n > 0 {
			e.prompt.input = e.prompt.input[:n-1]
		}
	case KeyEscape, KeyCtrlC:
		e.mode = ModeNormal
		e.prompt = prompt{}
		e.info("cancelled")
	case KeyEnter:
		p := e.prompt
		e.prompt = prompt{}
		e.mode = ModeNormal
		e.status.ClearMessage()
		return p.done(w, string(p.input))
	}
	return nil
}

func (e *Editor) handleConfirm(w *window.Window, k Key) error {
	c := e.confirm
	e.confirm = confirm{}
	e.mode = ModeNormal
	if k.Code == KeyRune && (k.Rune == 'y' || k.Rune == 'Y') {
		e.status.ClearMessage()
		return c.yes(w)
	}
	e.info("cancelled")
	return nil
}
