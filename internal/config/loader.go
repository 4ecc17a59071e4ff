package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadFile decodes the file at path into cfg. Keys absent from the file
// keep their current values.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Decode(path, data, cfg)
}

// Decode parses data in the format implied by name's extension.
func Decode(name string, data []byte, cfg *Config) error {
	var err error
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	if err != nil {
		return &ParseError{Path: name, Message: err.Error(), Err: err}
	}
	return nil
}
