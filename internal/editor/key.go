package editor

import "fmt"

// KeyCode identifies a decoded key.
type KeyCode int

const (
	KeyNone KeyCode = iota
	// KeyRune is a printable character held in Key.Rune.
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
)

var keyNames = map[KeyCode]string{
	KeyNone:      "None",
	KeyRune:      "Rune",
	KeyEscape:    "Esc",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyCtrlC:     "Ctrl+C",
}

// String returns a human-readable name for the key code.
func (k KeyCode) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Key is one decoded keypress.
type Key struct {
	Code KeyCode
	Rune rune
}

// Rune returns the Key for a printable character.
func Rune(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// Special returns the Key for a non-character key.
func Special(code KeyCode) Key {
	return Key{Code: code}
}

// Keys returns one Key per rune of s.
func Keys(s string) []Key {
	keys := make([]Key, 0, len(s))
	for _, r := range s {
		keys = append(keys, Rune(r))
	}
	return keys
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if k.Code == KeyRune {
		return string(k.Rune)
	}
	return k.Code.String()
}
