package grout

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// AttrMap resolves attribute name paths to display styles. Lookup walks
// from the full dot-joined path toward the root, so "list.selected.title"
// falls back to "list.selected", then "list", then the default style.
type AttrMap struct {
	def     Style
	entries map[string]Style
}

// NewAttrMap creates an attribute map with the given default style and
// named entries. Entry keys are dot-joined attribute paths.
func NewAttrMap(def Style, entries map[string]Style) AttrMap {
	m := make(map[string]Style, len(entries))
	for k, v := range entries {
		m[k] = v
	}
	return AttrMap{def: def, entries: m}
}

// DefaultAttrMap returns an attribute map that resolves everything to the
// default style.
func DefaultAttrMap() AttrMap {
	return AttrMap{def: DefaultStyle()}
}

// Default returns the map's default style.
func (am AttrMap) Default() Style {
	return am.def
}

// Resolve returns the style for the given attribute path, using the
// longest matching prefix and falling back to the default style.
func (am AttrMap) Resolve(path []string) Style {
	for i := len(path); i > 0; i-- {
		if s, ok := am.entries[strings.Join(path[:i], ".")]; ok {
			return s
		}
	}
	return am.def
}

// ----------------------------------------------------------------------------
// theme loading (TOML)
// ----------------------------------------------------------------------------

// themeEntry is one attribute definition in a theme file.
type themeEntry struct {
	FG        string `toml:"fg"`
	BG        string `toml:"bg"`
	Bold      bool   `toml:"bold"`
	Dim       bool   `toml:"dim"`
	Underline bool   `toml:"underline"`
	Reverse   bool   `toml:"reverse"`
}

// themeFile is the top-level TOML structure.
type themeFile struct {
	Default themeEntry            `toml:"default"`
	Attrs   map[string]themeEntry `toml:"attrs"`
}

// LoadTheme reads an attribute map from a TOML theme file:
//
//	[default]
//	fg = "white"
//
//	[attrs."table.border"]
//	fg = "#5f87af"
//	bold = true
func LoadTheme(path string) (AttrMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AttrMap{}, fmt.Errorf("read theme: %w", err)
	}
	return ParseTheme(string(data))
}

// ParseTheme parses TOML theme content into an attribute map.
func ParseTheme(content string) (AttrMap, error) {
	var tf themeFile
	if err := toml.Unmarshal([]byte(content), &tf); err != nil {
		return AttrMap{}, fmt.Errorf("parse theme: %w", err)
	}

	def, err := tf.Default.style()
	if err != nil {
		return AttrMap{}, fmt.Errorf("theme default: %w", err)
	}

	entries := make(map[string]Style, len(tf.Attrs))
	for name, e := range tf.Attrs {
		s, err := e.style()
		if err != nil {
			return AttrMap{}, fmt.Errorf("theme attr %q: %w", name, err)
		}
		entries[name] = s
	}
	return AttrMap{def: def, entries: entries}, nil
}

// style converts a theme entry to a Style.
func (e themeEntry) style() (Style, error) {
	s := DefaultStyle()
	if e.FG != "" {
		c, err := parseColor(e.FG)
		if err != nil {
			return Style{}, err
		}
		s.FG = c
	}
	if e.BG != "" {
		c, err := parseColor(e.BG)
		if err != nil {
			return Style{}, err
		}
		s.BG = c
	}
	if e.Bold {
		s.Attr = s.Attr.With(AttrBold)
	}
	if e.Dim {
		s.Attr = s.Attr.With(AttrDim)
	}
	if e.Underline {
		s.Attr = s.Attr.With(AttrUnderline)
	}
	if e.Reverse {
		s.Attr = s.Attr.With(AttrReverse)
	}
	return s, nil
}

// basicColorNames maps the standard color names to the 16-color palette.
var basicColorNames = map[string]Color{
	"black": Black, "red": Red, "green": Green, "yellow": Yellow,
	"blue": Blue, "magenta": Magenta, "cyan": Cyan, "white": White,
	"brightblack": BrightBlack, "brightred": BrightRed,
	"brightgreen": BrightGreen, "brightyellow": BrightYellow,
	"brightblue": BrightBlue, "brightmagenta": BrightMagenta,
	"brightcyan": BrightCyan, "brightwhite": BrightWhite,
}

// parseColor accepts a basic color name, "default", or a "#rrggbb" hex value.
func parseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" || name == "default" {
		return DefaultColor(), nil
	}
	if c, ok := basicColorNames[name]; ok {
		return c, nil
	}
	if strings.HasPrefix(name, "#") {
		c, err := colorful.Hex(name)
		if err != nil {
			return Color{}, fmt.Errorf("bad color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return RGB(r, g, b), nil
	}
	return Color{}, fmt.Errorf("unknown color %q", s)
}
