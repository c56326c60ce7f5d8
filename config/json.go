package config

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// LoadJSON reads settings from a JSON file, filling anything unset
// with defaults. A missing file is not an error; the defaults are
// returned unchanged.
func LoadJSON(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	if !gjson.ValidBytes(data) {
		return Default(), fmt.Errorf("parsing config file %s: invalid JSON", path)
	}

	cfg := Default()
	if v := gjson.GetBytes(data, "editor.indent_size"); v.Exists() {
		cfg.Editor.IndentSize = int(v.Int())
	}
	if v := gjson.GetBytes(data, "editor.tab_width"); v.Exists() {
		cfg.Editor.TabWidth = int(v.Int())
	}
	if v := gjson.GetBytes(data, "autoclose"); v.IsObject() {
		pairs := make(map[string]string)
		v.ForEach(func(key, value gjson.Result) bool {
			pairs[key.String()] = value.String()
			return true
		})
		cfg.Autoclose = pairs
	}
	cfg.normalize()
	return cfg, nil
}
