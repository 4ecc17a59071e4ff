package editor

// Mode is the editor's input state.
type Mode int

const (
	// ModeNormal interprets keys as commands.
	ModeNormal Mode = iota
	// ModeInsert inserts typed text until Escape.
	ModeInsert
	// ModeReplace waits for the character that replaces the one under
	// the cursor.
	ModeReplace
	// ModePrompt collects a line of input on the status row.
	ModePrompt
	// ModeConfirm waits for a yes/no answer.
	ModeConfirm
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInsert:
		return "insert"
	case ModeReplace:
		return "replace"
	case ModePrompt:
		return "prompt"
	case ModeConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// DisplayName returns the label shown on the status line, empty for
// normal mode.
func (m Mode) DisplayName() string {
	switch m {
	case ModeInsert:
		return "INSERT"
	case ModeReplace:
		return "REPLACE"
	default:
		return ""
	}
}
