package grout

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Image is an immutable 2D grid of cells produced by rendering a widget.
// All operations return a new Image; the zero value is an empty 0x0 image.
type Image struct {
	cells  []Cell
	width  int
	height int
}

// NewImage creates a transparent image with the given dimensions.
// Negative dimensions are clamped to zero.
func NewImage(width, height int) Image {
	width = max(width, 0)
	height = max(height, 0)
	return Image{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
}

// CharFill creates an image filled with the given rune and style.
func CharFill(r rune, style Style, width, height int) Image {
	m := NewImage(width, height)
	fill := NewCell(r, style)
	for i := range m.cells {
		m.cells[i] = fill
	}
	return m
}

// ImageFromLines builds an image from text lines in the given style.
// The image is as wide as the widest line (display columns, wide runes
// counted per go-runewidth); shorter lines are padded with blanks.
// The second cell of a double-width rune is left transparent so output
// drivers can place the wide glyph themselves.
func ImageFromLines(lines []string, style Style) Image {
	w := 0
	for _, line := range lines {
		w = max(w, runewidth.StringWidth(line))
	}
	m := NewImage(w, len(lines))
	for y, line := range lines {
		x := 0
		for _, r := range line {
			m.set(x, y, NewCell(r, style))
			x += runewidth.RuneWidth(r)
		}
		for ; x < w; x++ {
			m.set(x, y, NewCell(' ', style))
		}
	}
	return m
}

// Width returns the image width.
func (m Image) Width() int {
	return m.width
}

// Height returns the image height.
func (m Image) Height() int {
	return m.height
}

// Size returns the image dimensions.
func (m Image) Size() (width, height int) {
	return m.width, m.height
}

// InBounds returns true if the given coordinates are within the image.
func (m Image) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// index converts x,y coordinates to a slice index.
func (m Image) index(x, y int) int {
	return y*m.width + x
}

// Cell returns the cell at the given coordinates.
// Returns a transparent cell if out of bounds.
func (m Image) Cell(x, y int) Cell {
	if !m.InBounds(x, y) {
		return Cell{}
	}
	return m.cells[m.index(x, y)]
}

// set writes a cell in place. Only used on images this package has just
// allocated and not yet shared; everything exported stays value-semantic.
func (m Image) set(x, y int, c Cell) {
	if !m.InBounds(x, y) {
		return
	}
	m.cells[m.index(x, y)] = c
}

// clone returns a deep copy safe to mutate via set.
func (m Image) clone() Image {
	out := Image{
		cells:  make([]Cell, len(m.cells)),
		width:  m.width,
		height: m.height,
	}
	copy(out.cells, m.cells)
	return out
}

// Crop returns the image clipped to at most width x height, anchored at
// the origin. Cropping never grows the image.
func (m Image) Crop(width, height int) Image {
	width = min(max(width, 0), m.width)
	height = min(max(height, 0), m.height)
	if width == m.width && height == m.height {
		return m
	}
	return m.CropAt(0, 0, width, height)
}

// CropAt returns a width x height window of the image starting at (x, y).
// Cells outside the source are transparent.
func (m Image) CropAt(x, y, width, height int) Image {
	out := NewImage(width, height)
	for dy := 0; dy < out.height; dy++ {
		for dx := 0; dx < out.width; dx++ {
			out.set(dx, dy, m.Cell(x+dx, y+dy))
		}
	}
	return out
}

// Resize returns the image grown or shrunk to exactly width x height.
// New cells are transparent; shrinking crops at the origin.
func (m Image) Resize(width, height int) Image {
	width = max(width, 0)
	height = max(height, 0)
	if width == m.width && height == m.height {
		return m
	}
	return m.CropAt(0, 0, width, height)
}

// Overlay returns a copy of the image with top drawn at (x, y).
// Transparent cells in top let the underlying content show through.
func (m Image) Overlay(top Image, x, y int) Image {
	out := m.clone()
	for dy := 0; dy < top.height; dy++ {
		for dx := 0; dx < top.width; dx++ {
			c := top.Cell(dx, dy)
			if c.Transparent() {
				continue
			}
			out.set(x+dx, y+dy, c)
		}
	}
	return out
}

// Equal returns true if two images have the same size and cells.
func (m Image) Equal(other Image) bool {
	if m.width != other.width || m.height != other.height {
		return false
	}
	for i := range m.cells {
		if m.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String returns the image contents as text, one row per line.
// Transparent cells render as spaces. Intended for tests and debugging.
func (m Image) String() string {
	var b strings.Builder
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			c := m.Cell(x, y)
			if c.Rune == 0 {
				b.WriteByte(' ')
			} else {
				b.WriteRune(c.Rune)
			}
		}
		if y < m.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
