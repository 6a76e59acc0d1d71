package grout

import (
	"strings"
	"testing"
)

func TestRenderANSIPlainText(t *testing.T) {
	// default-styled cells render as plain text, no escape sequences
	img := ImageFromLines([]string{"ab", "cd"}, DefaultStyle())
	pic := NewPicture([]Image{img}, 2, 2)
	if got := RenderANSI(pic); got != "ab\ncd" {
		t.Errorf("ansi = %q", got)
	}
}

func TestRenderANSITransparentCellsBecomeSpaces(t *testing.T) {
	img := NewImage(3, 1).Overlay(ImageFromLines([]string{"x"}, DefaultStyle()), 1, 0)
	pic := NewPicture([]Image{img}, 3, 1).WithBackground(Cell{})
	if got := RenderANSI(pic); got != " x " {
		t.Errorf("ansi = %q", got)
	}
}

func TestRenderANSILineCount(t *testing.T) {
	pic := NewPicture(nil, 4, 3)
	got := RenderANSI(pic)
	if n := strings.Count(got, "\n"); n != 2 {
		t.Errorf("output has %d newlines, want 2", n)
	}
}
