package config

import (
	"fmt"
	"strconv"
)

// EnvPrefix starts every environment variable the config reads.
const EnvPrefix = "LINED_"

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides cfg with LINED_* environment variables.
// Empty string values are treated as valid values, not as unset.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	strs := map[string]*string{
		"LOG_LEVEL": &cfg.Log.Level,
		"LOG_FILE":  &cfg.Log.File,
		"STATUS_FG": &cfg.UI.StatusFg,
		"STATUS_BG": &cfg.UI.StatusBg,
	}
	for name, dst := range strs {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"TAB_WIDTH":   &cfg.Editor.TabWidth,
		"UNDO_LEVELS": &cfg.Editor.UndoLevels,
	}
	for name, dst := range ints {
		if v, ok := lookup(EnvPrefix + name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
			}
			*dst = n
		}
	}

	bools := map[string]*bool{
		"CONFIRM_WRITE": &cfg.Editor.ConfirmWrite,
		"WATCH_FILES":   &cfg.Editor.WatchFiles,
	}
	for name, dst := range bools {
		if v, ok := lookup(EnvPrefix + name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
			}
			*dst = b
		}
	}
	return nil
}
