package config

import (
	"errors"
	"os"
	"path/filepath"
)

// Config holds every setting the editor reads.
type Config struct {
	Editor EditorConfig `toml:"editor" yaml:"editor"`
	UI     UIConfig     `toml:"ui" yaml:"ui"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// EditorConfig holds editing behaviour settings.
type EditorConfig struct {
	// TabWidth is the number of spaces a Tab key inserts.
	TabWidth int `toml:"tab_width" yaml:"tab_width"`
	// UndoLevels bounds each window's undo stack.
	UndoLevels int `toml:"undo_levels" yaml:"undo_levels"`
	// ConfirmWrite asks before writing a file.
	ConfirmWrite bool `toml:"confirm_write" yaml:"confirm_write"`
	// WatchFiles reports changes made to open files by other programs.
	WatchFiles bool `toml:"watch_files" yaml:"watch_files"`
}

// UIConfig holds display settings. Colors are "#rrggbb" strings; an
// empty string keeps the terminal default.
type UIConfig struct {
	TextFg   string `toml:"text_fg" yaml:"text_fg"`
	TextBg   string `toml:"text_bg" yaml:"text_bg"`
	StatusFg string `toml:"status_fg" yaml:"status_fg"`
	StatusBg string `toml:"status_bg" yaml:"status_bg"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`
	// File receives log output. Logging is off when empty.
	File string `toml:"file" yaml:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			TabWidth:     4,
			UndoLevels:   1000,
			ConfirmWrite: true,
			WatchFiles:   true,
		},
		UI: UIConfig{
			StatusFg: "#000000",
			StatusBg: "#c0c0c0",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks every setting and returns the first problem found.
func (c Config) Validate() error {
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		return &ValidationError{Setting: "editor.tab_width", Value: c.Editor.TabWidth, Reason: "must be between 1 and 16"}
	}
	if c.Editor.UndoLevels < 1 {
		return &ValidationError{Setting: "editor.undo_levels", Value: c.Editor.UndoLevels, Reason: "must be positive"}
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{Setting: "log.level", Value: c.Log.Level, Reason: "must be debug, info, warn, or error"}
	}
	for name, hex := range map[string]string{
		"ui.text_fg":   c.UI.TextFg,
		"ui.text_bg":   c.UI.TextBg,
		"ui.status_fg": c.UI.StatusFg,
		"ui.status_bg": c.UI.StatusBg,
	} {
		if _, _, err := ParseColor(hex); err != nil {
			return &ValidationError{Setting: name, Value: hex, Reason: err.Error()}
		}
	}
	return nil
}

// DefaultPath returns the first existing user config file, or "".
func DefaultPath() string {
	dir := userConfigDir()
	if dir == "" {
		return ""
	}
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func userConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "lined")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "lined")
}

// Load builds the configuration from defaults, the file at path (or the
// default user file when path is empty) and the environment.
// An explicitly named file must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return cfg, err
			}
		}
	}

	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}
