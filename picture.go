package grout

// Picture is an ordered stack of same-sized layer images composited over a
// background cell. Layers are stored bottom-first and painted back to front;
// transparent cells in upper layers let lower layers show through.
type Picture struct {
	layers     []Image
	background Cell
	width      int
	height     int
}

// NewPicture creates a picture from bottom-first layers. The background
// defaults to an opaque blank cell so stale terminal content never bleeds
// through the composited output.
func NewPicture(layers []Image, width, height int) Picture {
	return Picture{
		layers:     layers,
		background: EmptyCell(),
		width:      max(width, 0),
		height:     max(height, 0),
	}
}

// WithBackground returns a copy of the picture with the given background cell.
func (p Picture) WithBackground(c Cell) Picture {
	p.background = c
	return p
}

// Size returns the picture dimensions.
func (p Picture) Size() (width, height int) {
	return p.width, p.height
}

// Layers returns the layer images, bottom-first.
func (p Picture) Layers() []Image {
	return p.layers
}

// Image flattens the picture into a single image: the background fill with
// every layer painted on top in order.
func (p Picture) Image() Image {
	out := CharFill(p.background.Rune, p.background.Style, p.width, p.height)
	for _, layer := range p.layers {
		out = out.Overlay(layer, 0, 0)
	}
	return out
}
