// Package config provides the configuration system for lined.
//
// Settings are resolved in layers, each overriding the one below:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Arguments  │  ← applied by cmd/lined
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← LINED_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/lined/config.{toml,yaml}
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Config files may be TOML or YAML; the format is picked from the file
// extension. A missing file is not an error.
//
// # Basic Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	tab := cfg.Editor.TabWidth
package config
