package config

import (
	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses a "#rrggbb" (or "#rgb") string.
// ok is false for an empty string, which means "terminal default".
func ParseColor(hex string) (c colorful.Color, ok bool, err error) {
	if hex == "" {
		return colorful.Color{}, false, nil
	}
	c, err = colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, false, err
	}
	return c, true, nil
}
