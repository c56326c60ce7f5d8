package config

import (
	"os"
	"strconv"
)

// Environment variables recognized by FromEnv.
const (
	EnvIndentSize = "TEXTCORE_INDENT_SIZE"
	EnvTabWidth   = "TEXTCORE_TAB_WIDTH"
)

// FromEnv returns cfg with environment variable overrides applied.
// Unset or unparsable variables leave the corresponding setting
// untouched.
func FromEnv(cfg Config) Config {
	if n, ok := envInt(EnvIndentSize); ok && n > 0 {
		cfg.Editor.IndentSize = n
	}
	if n, ok := envInt(EnvTabWidth); ok && n > 0 {
		cfg.Editor.TabWidth = n
	}
	return cfg
}

func envInt(name string) (int, bool) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
