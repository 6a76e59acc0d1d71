package grout

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func simDisplay(t *testing.T, width, height int) (*Display, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(width, height)
	return NewDisplayFor(screen), screen
}

func TestDisplayDraw(t *testing.T) {
	d, screen := simDisplay(t, 5, 2)

	img := ImageFromLines([]string{"hello"}, DefaultStyle())
	d.Draw(NewPicture([]Image{img}, 5, 2), nil)

	cells, w, h := screen.GetContents()
	if w != 5 || h != 2 {
		t.Fatalf("screen is %dx%d", w, h)
	}
	got := ""
	for _, c := range cells[:5] {
		got += string(c.Runes[0])
	}
	if got != "hello" {
		t.Errorf("first row = %q", got)
	}
	// uncovered cells come out as the opaque blank background
	if r := cells[5].Runes[0]; r != ' ' {
		t.Errorf("cell (0,1) = %q, want space", r)
	}
}

func TestDisplayDrawStyles(t *testing.T) {
	d, screen := simDisplay(t, 2, 1)

	img := ImageFromLines([]string{"ab"}, DefaultStyle().Foreground(Red).Bold())
	d.Draw(NewPicture([]Image{img}, 2, 1), nil)

	cells, _, _ := screen.GetContents()
	fg, _, attrs := cells[0].Style.Decompose()
	if fg != tcell.PaletteColor(1) {
		t.Errorf("fg = %v", fg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("bold not set")
	}
}

func TestToTcellColor(t *testing.T) {
	if got := toTcellColor(DefaultColor()); got != tcell.ColorDefault {
		t.Errorf("default = %v", got)
	}
	if got := toTcellColor(PaletteColor(42)); got != tcell.PaletteColor(42) {
		t.Errorf("palette = %v", got)
	}
	if got := toTcellColor(RGB(1, 2, 3)); got != tcell.NewRGBColor(1, 2, 3) {
		t.Errorf("rgb = %v", got)
	}
}
