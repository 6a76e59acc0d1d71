package grout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttrMapPrefixFallback(t *testing.T) {
	listStyle := DefaultStyle().Foreground(Red)
	selStyle := DefaultStyle().Bold()
	am := NewAttrMap(DefaultStyle(), map[string]Style{
		"list":          listStyle,
		"list.selected": selStyle,
	})

	assert.Equal(t, selStyle, am.Resolve([]string{"list", "selected", "title"}))
	assert.Equal(t, selStyle, am.Resolve([]string{"list", "selected"}))
	assert.Equal(t, listStyle, am.Resolve([]string{"list", "other"}))
	assert.Equal(t, DefaultStyle(), am.Resolve([]string{"nope"}))
	assert.Equal(t, DefaultStyle(), am.Resolve(nil))
}

func TestContextAttrPath(t *testing.T) {
	am := NewAttrMap(DefaultStyle(), map[string]Style{
		"table.border": DefaultStyle().Foreground(Blue),
	})
	ctx := NewContext(10, 10, am).WithAttr("table")

	assert.Equal(t, DefaultStyle(), ctx.Attr())
	assert.Equal(t, Blue, ctx.AttrNamed("border").FG)
}

func TestParseTheme(t *testing.T) {
	am, err := ParseTheme(`
[default]
fg = "white"

[attrs."table.border"]
fg = "#5f87af"
bold = true

[attrs.scrollbar]
fg = "brightblack"
`)
	require.NoError(t, err)

	assert.Equal(t, White, am.Default().FG)

	border := am.Resolve([]string{"table", "border"})
	assert.Equal(t, RGB(0x5f, 0x87, 0xaf), border.FG)
	assert.True(t, border.Attr.Has(AttrBold))

	assert.Equal(t, BrightBlack, am.Resolve([]string{"scrollbar"}).FG)
}

func TestParseThemeBadColor(t *testing.T) {
	_, err := ParseTheme(`
[attrs.x]
fg = "mauve-ish"
`)
	require.Error(t, err)

	_, err = ParseTheme(`
[attrs.x]
fg = "#zzzzzz"
`)
	require.Error(t, err)
}

func TestParseColor(t *testing.T) {
	c, err := parseColor("RED")
	require.NoError(t, err)
	assert.Equal(t, Red, c)

	c, err = parseColor("default")
	require.NoError(t, err)
	assert.Equal(t, DefaultColor(), c)

	c, err = parseColor("#ff0080")
	require.NoError(t, err)
	assert.Equal(t, RGB(0xff, 0x00, 0x80), c)
}

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[default]
fg = "green"
`), 0o644))

	am, err := LoadTheme(path)
	require.NoError(t, err)
	assert.Equal(t, Green, am.Default().FG)

	_, err = LoadTheme(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
