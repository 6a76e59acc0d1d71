package grout

// Policy describes how a widget uses space along one axis.
type Policy uint8

const (
	// Fixed widgets occupy exactly their intrinsic size.
	Fixed Policy = iota
	// Greedy widgets expand to fill whatever space they are offered.
	Greedy
)

// Widget is the unit of composition: a pair of size policies plus a render
// action. Rendering reads the ambient context, may mutate the render state,
// and produces a Result. Widgets carry no mutable state of their own.
type Widget interface {
	HorizontalPolicy() Policy
	VerticalPolicy() Policy
	Render(ctx Context, st *RenderState) Result
}

// widgetFunc adapts a render function into a Widget.
type widgetFunc struct {
	h, v Policy
	fn   func(Context, *RenderState) Result
}

// NewWidget builds a widget from size policies and a render function.
func NewWidget(horizontal, vertical Policy, render func(Context, *RenderState) Result) Widget {
	return widgetFunc{h: horizontal, v: vertical, fn: render}
}

func (w widgetFunc) HorizontalPolicy() Policy { return w.h }
func (w widgetFunc) VerticalPolicy() Policy   { return w.v }

func (w widgetFunc) Render(ctx Context, st *RenderState) Result {
	return w.fn(ctx, st)
}

// CropToContext clips a render result to the context's available
// rectangle: the image is cropped at the origin, cursors outside the
// rectangle are dropped, extents are clamped to it (and dropped when their
// origin lies beyond it), and the border map keeps only in-range cells.
// The operation is idempotent.
func CropToContext(r Result, ctx Context) Result {
	w := ctx.AvailWidth()
	h := ctx.AvailHeight()

	r.Image = r.Image.Crop(w, h)

	var cursors []CursorLocation
	for _, cl := range r.Cursors {
		if cl.X < 0 || cl.X >= w || cl.Y < 0 || cl.Y >= h {
			continue
		}
		cursors = append(cursors, cl)
	}
	r.Cursors = cursors

	var extents []Extent
	for _, e := range r.Extents {
		if e.X >= w || e.Y >= h {
			continue // origin beyond the visible rectangle
		}
		nw := min(e.X+e.Width, w) - e.X
		nh := min(e.Y+e.Height, h) - e.Y
		if nw < 0 || nh < 0 {
			continue
		}
		e.Width = nw
		e.Height = nh
		extents = append(extents, e)
	}
	r.Extents = extents

	if r.Borders != nil {
		r.Borders = r.Borders.Crop(w, h)
	}
	return r
}
