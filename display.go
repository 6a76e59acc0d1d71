package grout

import (
	"github.com/gdamore/tcell/v2"
)

// Display is a terminal output driver backed by tcell. It owns the screen
// lifecycle and knows how to blit a composited Picture plus the chosen
// cursor; everything above it stays terminal-agnostic.
type Display struct {
	screen tcell.Screen
}

// NewDisplay creates a display on a new tcell screen.
func NewDisplay() (*Display, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Display{screen: screen}, nil
}

// NewDisplayFor wraps an existing screen, used by tests with a
// SimulationScreen.
func NewDisplayFor(screen tcell.Screen) *Display {
	return &Display{screen: screen}
}

// Init initializes the terminal and enables mouse reporting so clickable
// extents are usable.
func (d *Display) Init() error {
	if err := d.screen.Init(); err != nil {
		return err
	}
	d.screen.EnableMouse()
	return nil
}

// Fini restores the terminal.
func (d *Display) Fini() {
	d.screen.Fini()
}

// Size returns the current terminal dimensions.
func (d *Display) Size() (width, height int) {
	return d.screen.Size()
}

// PollEvent blocks for the next terminal event.
func (d *Display) PollEvent() tcell.Event {
	return d.screen.PollEvent()
}

// Draw blits a composited picture and cursor to the terminal and flushes.
func (d *Display) Draw(p Picture, cursor *CursorLocation) {
	img := p.Image()
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			c := img.Cell(x, y)
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			d.screen.SetContent(x, y, r, nil, toTcellStyle(c.Style))
		}
	}
	if cursor != nil {
		d.screen.ShowCursor(cursor.X, cursor.Y)
	} else {
		d.screen.HideCursor()
	}
	d.screen.Show()
}

// toTcellStyle converts a grout style to a tcell style.
func toTcellStyle(s Style) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(toTcellColor(s.FG)).
		Background(toTcellColor(s.BG))
	if s.Attr.Has(AttrBold) {
		style = style.Bold(true)
	}
	if s.Attr.Has(AttrDim) {
		style = style.Dim(true)
	}
	if s.Attr.Has(AttrItalic) {
		style = style.Italic(true)
	}
	if s.Attr.Has(AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attr.Has(AttrBlink) {
		style = style.Blink(true)
	}
	if s.Attr.Has(AttrReverse) {
		style = style.Reverse(true)
	}
	if s.Attr.Has(AttrStrikethrough) {
		style = style.StrikeThrough(true)
	}
	return style
}

// toTcellColor converts a grout color to a tcell color.
func toTcellColor(c Color) tcell.Color {
	switch c.Mode {
	case Color16, Color256:
		return tcell.PaletteColor(int(c.Index))
	case ColorRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	default:
		return tcell.ColorDefault
	}
}
