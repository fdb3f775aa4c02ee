package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/mikemackintosh/zush/internal/preprocess"
)

// Source is a parsed TOML document, either a theme file or the main config
// file. Extractors are tolerant: values of the wrong type are skipped, and
// a nil Source answers every query with empty results, so callers can hold
// one without caring whether anything loaded.
type Source struct {
	table map[string]any
}

// Parse parses TOML text into a Source.
func Parse(text string) (*Source, error) {
	var table map[string]any
	if err := toml.Unmarshal([]byte(text), &table); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &Source{table: table}, nil
}

// stringSection extracts a table of string values, skipping entries of any
// other type.
func (s *Source) stringSection(name string) map[string]string {
	result := make(map[string]string)
	if s == nil || s.table == nil {
		return result
	}
	section, ok := s.table[name].(map[string]any)
	if !ok {
		return result
	}
	for key, value := range section {
		if str, ok := value.(string); ok {
			result[key] = str
		}
	}
	return result
}

// Colors returns the [colors] table: name to hex string.
func (s *Source) Colors() map[string]string {
	return s.stringSection("colors")
}

// Symbols returns the [symbols] table with unicode escapes decoded.
func (s *Source) Symbols() map[string]string {
	symbols := s.stringSection("symbols")
	for key, value := range symbols {
		symbols[key] = DecodeEscapes(value)
	}
	return symbols
}

// Segments returns the [segments] table as segment definitions. An entry
// without a string content key is skipped; multi-line content collapses to
// one line.
func (s *Source) Segments() map[string]preprocess.Segment {
	result := make(map[string]preprocess.Segment)
	if s == nil || s.table == nil {
		return result
	}
	section, ok := s.table["segments"].(map[string]any)
	if !ok {
		return result
	}
	for name, raw := range section {
		props, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		content, ok := props["content"].(string)
		if !ok {
			continue
		}
		seg := preprocess.Segment{Content: preprocess.NormalizeContent(content)}
		if bg, ok := props["bg"].(string); ok {
			seg.Bg = bg
		}
		if fg, ok := props["fg"].(string); ok {
			seg.Fg = fg
		}
		if sep, ok := props["sep"].(string); ok {
			seg.Sep = sep
		}
		if leftCap, ok := props["left_cap"].(string); ok {
			seg.LeftCap = leftCap
		}
		result[name] = seg
	}
	return result
}

// Templates returns the [templates] table: name to raw template text. Unlike
// the other extractors this one is strict, because a template of the wrong
// type is an authoring mistake the user needs to hear about rather than a
// silently missing prompt.
func (s *Source) Templates() (map[string]string, error) {
	result := make(map[string]string)
	if s == nil || s.table == nil {
		return result, nil
	}
	raw, present := s.table["templates"]
	if !present {
		return result, nil
	}
	section, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("[templates] must be a table of strings")
	}
	for name, value := range section {
		text, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("template %q must be a string", name)
		}
		result[name] = text
	}
	return result, nil
}

// ThemeName returns the top-level theme key, or empty when unset.
func (s *Source) ThemeName() string {
	if s == nil || s.table == nil {
		return ""
	}
	name, _ := s.table["theme"].(string)
	return name
}

// ApplyOverrides folds the [overrides] table into the given maps. Keys are
// dotted, "colors.blue" or "symbols.arrow"; symbol values go through escape
// decoding the same way the [symbols] table does. Keys with any other
// prefix, and values that are not strings, are ignored.
func (s *Source) ApplyOverrides(colors, symbols map[string]string) {
	if s == nil || s.table == nil {
		return
	}
	section, ok := s.table["overrides"].(map[string]any)
	if !ok {
		return
	}
	for key, raw := range section {
		value, ok := raw.(string)
		if !ok {
			continue
		}
		if name, found := strings.CutPrefix(key, "colors."); found {
			colors[name] = value
		} else if name, found := strings.CutPrefix(key, "symbols."); found {
			symbols[name] = DecodeEscapes(value)
		}
	}
}

// ConfigPath resolves the main config file location. An explicit path wins;
// otherwise ~/.config/zush/config.toml is preferred when it exists, falling
// back to the platform config dir. Empty means no location could be derived.
func ConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if home, err := os.UserHomeDir(); err == nil {
		dotConfig := filepath.Join(home, ".config", "zush", "config.toml")
		if _, err := os.Stat(dotConfig); err == nil {
			return dotConfig
		}
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "zush", "config.toml")
	}
	return ""
}

// ThemePath resolves a theme name to a file path. Names containing a slash
// or a dot are taken as paths to custom theme files; anything else looks up
// <name>.toml in the user theme directory.
func ThemePath(name string) (string, error) {
	if strings.ContainsAny(name, "/.") {
		return name, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve theme %q: %w", name, err)
	}
	return filepath.Join(home, ".config", "zush", "themes", name+".toml"), nil
}

// LoadTheme reads the theme file for name.
func LoadTheme(name string) (string, error) {
	path, err := ThemePath(name)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read theme file %s: %w", path, err)
	}
	return string(data), nil
}

// LoadFile reads a config file, returning ok=false when the path is empty
// or the file does not exist. Other read errors also report not-ok; a
// missing or unreadable config is never fatal.
func LoadFile(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}
