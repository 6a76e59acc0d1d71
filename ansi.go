package grout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderANSI flattens a picture into an ANSI-styled string, one line per
// row, suitable for returning from a bubbletea View. Runs of cells with the
// same style are rendered together to keep escape sequences down.
func RenderANSI(p Picture) string {
	img := p.Image()
	var b strings.Builder
	for y := 0; y < img.Height(); y++ {
		var run []rune
		runStyle := Style{}
		flush := func() {
			if len(run) == 0 {
				return
			}
			b.WriteString(toLipgloss(runStyle).Render(string(run)))
			run = run[:0]
		}
		for x := 0; x < img.Width(); x++ {
			c := img.Cell(x, y)
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			if len(run) > 0 && c.Style != runStyle {
				flush()
			}
			runStyle = c.Style
			run = append(run, r)
		}
		flush()
		if y < img.Height()-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// toLipgloss converts a grout style to a lipgloss style.
func toLipgloss(s Style) lipgloss.Style {
	ls := lipgloss.NewStyle()
	if c, ok := toLipglossColor(s.FG); ok {
		ls = ls.Foreground(c)
	}
	if c, ok := toLipglossColor(s.BG); ok {
		ls = ls.Background(c)
	}
	if s.Attr.Has(AttrBold) {
		ls = ls.Bold(true)
	}
	if s.Attr.Has(AttrDim) {
		ls = ls.Faint(true)
	}
	if s.Attr.Has(AttrItalic) {
		ls = ls.Italic(true)
	}
	if s.Attr.Has(AttrUnderline) {
		ls = ls.Underline(true)
	}
	if s.Attr.Has(AttrBlink) {
		ls = ls.Blink(true)
	}
	if s.Attr.Has(AttrReverse) {
		ls = ls.Reverse(true)
	}
	if s.Attr.Has(AttrStrikethrough) {
		ls = ls.Strikethrough(true)
	}
	return ls
}

// toLipglossColor converts a grout color. The second return is false for
// the terminal default, which lipgloss expresses by not setting a color.
func toLipglossColor(c Color) (lipgloss.TerminalColor, bool) {
	switch c.Mode {
	case Color16, Color256:
		return lipgloss.Color(strconv.Itoa(int(c.Index))), true
	case ColorRGB:
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)), true
	default:
		return nil, false
	}
}
