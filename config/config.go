package config

import (
	"github.com/dshills/textcore/textbuf"
)

// Default editor settings.
const (
	DefaultTabWidth = 4
)

// EditorConfig holds editor-wide text settings.
type EditorConfig struct {
	IndentSize int `toml:"indent_size"`
	TabWidth   int `toml:"tab_width"`
}

// Config is the full textcore settings tree.
type Config struct {
	Editor    EditorConfig      `toml:"editor"`
	Autoclose map[string]string `toml:"autoclose"`
}

// Default returns the built-in settings: indent size 2, tab width 4,
// and the common bracket and quote pairs.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			IndentSize: textbuf.DefaultIndentSize,
			TabWidth:   DefaultTabWidth,
		},
		Autoclose: map[string]string{
			"(": ")",
			"[": "]",
			"{": "}",
			`"`: `"`,
			"'": "'",
			"`": "`",
		},
	}
}

// AutocloseMap converts the configured pairs for use with
// textbuf.Insert.
func (c Config) AutocloseMap() textbuf.AutocloseMap {
	m := make(textbuf.AutocloseMap, len(c.Autoclose))
	for open, closing := range c.Autoclose {
		m[open] = closing
	}
	return m
}

// Options returns the textbuf options implied by the config.
func (c Config) Options() []textbuf.Option {
	return []textbuf.Option{textbuf.WithIndentSize(c.Editor.IndentSize)}
}

// normalize replaces out-of-range values with defaults so a bad config
// file cannot produce a zero or negative alignment unit.
func (c *Config) normalize() {
	if c.Editor.IndentSize < 1 {
		c.Editor.IndentSize = textbuf.DefaultIndentSize
	}
	if c.Editor.TabWidth < 1 {
		c.Editor.TabWidth = DefaultTabWidth
	}
}
