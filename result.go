package grout

// CursorLocation is a named cursor position, relative to the owning
// widget's local origin until composition translates it.
type CursorLocation struct {
	Name string
	X, Y int
}

// Extent is a named rectangular region of rendered output, used for
// hit-testing and visibility requests.
type Extent struct {
	Name   string
	X, Y   int
	Width  int
	Height int
}

// Result is the output of rendering one widget: the image it drew, any
// cursor placements and named extents it produced, the joinable border
// cells it emitted, and optionally its own name.
type Result struct {
	Image   Image
	Cursors []CursorLocation
	Extents []Extent
	Borders BorderMap
	Name    string
}

// Translate shifts the result's cursors, extents and border map by
// (dx, dy). The image itself is positional data owned by the caller and
// is placed separately during composition.
func (r Result) Translate(dx, dy int) Result {
	if dx == 0 && dy == 0 {
		return r
	}
	cursors := make([]CursorLocation, len(r.Cursors))
	for i, cl := range r.Cursors {
		cl.X += dx
		cl.Y += dy
		cursors[i] = cl
	}
	extents := make([]Extent, len(r.Extents))
	for i, e := range r.Extents {
		e.X += dx
		e.Y += dy
		extents[i] = e
	}
	r.Cursors = cursors
	r.Extents = extents
	r.Borders = r.Borders.Translate(dx, dy)
	return r
}
