package grout

// Edges records which sides of a border cell connect to a drawn edge.
// Borders join by OR-combining the edges of coincident cells and picking
// the glyph that matches the merged set.
type Edges uint8

const (
	EdgeTop Edges = 1 << iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// normalized collapses single-edge stubs to the straight segment they
// belong to: a lone vertical neighbor draws as a vertical run, a lone
// horizontal neighbor as a horizontal run.
func (e Edges) normalized() Edges {
	switch e {
	case EdgeTop, EdgeBottom:
		return EdgeTop | EdgeBottom
	case EdgeLeft, EdgeRight:
		return EdgeLeft | EdgeRight
	}
	return e
}

// BorderStyle defines the glyph set used for drawing borders, covering
// straight runs, the four corners, the four T-junctions and the full cross.
type BorderStyle struct {
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	TeeDown     rune // junction opening down, sits on a top edge
	TeeUp       rune // junction opening up, sits on a bottom edge
	TeeRight    rune // junction opening right, sits on a left edge
	TeeLeft     rune // junction opening left, sits on a right edge
	Cross       rune
}

// Standard border glyph sets.
var (
	BorderSingle = BorderStyle{
		Horizontal: '─', Vertical: '│',
		TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘',
		TeeDown: '┬', TeeUp: '┴', TeeRight: '├', TeeLeft: '┤',
		Cross: '┼',
	}
	BorderRounded = BorderStyle{
		Horizontal: '─', Vertical: '│',
		TopLeft: '╭', TopRight: '╮', BottomLeft: '╰', BottomRight: '╯',
		TeeDown: '┬', TeeUp: '┴', TeeRight: '├', TeeLeft: '┤',
		Cross: '┼',
	}
	BorderDouble = BorderStyle{
		Horizontal: '═', Vertical: '║',
		TopLeft: '╔', TopRight: '╗', BottomLeft: '╚', BottomRight: '╝',
		TeeDown: '╦', TeeUp: '╩', TeeRight: '╠', TeeLeft: '╣',
		Cross: '╬',
	}
	BorderASCII = BorderStyle{
		Horizontal: '-', Vertical: '|',
		TopLeft: '+', TopRight: '+', BottomLeft: '+', BottomRight: '+',
		TeeDown: '+', TeeUp: '+', TeeRight: '+', TeeLeft: '+',
		Cross: '+',
	}
)

// Rune selects the glyph for the given edge set. The mapping is total:
// every one of the 16 edge combinations produces a glyph, with lone edges
// drawn as the corresponding straight run.
func (bs BorderStyle) Rune(e Edges) rune {
	switch e.normalized() {
	case 0:
		return ' '
	case EdgeLeft | EdgeRight:
		return bs.Horizontal
	case EdgeTop | EdgeBottom:
		return bs.Vertical
	case EdgeBottom | EdgeRight:
		return bs.TopLeft
	case EdgeBottom | EdgeLeft:
		return bs.TopRight
	case EdgeTop | EdgeRight:
		return bs.BottomLeft
	case EdgeTop | EdgeLeft:
		return bs.BottomRight
	case EdgeBottom | EdgeLeft | EdgeRight:
		return bs.TeeDown
	case EdgeTop | EdgeLeft | EdgeRight:
		return bs.TeeUp
	case EdgeTop | EdgeBottom | EdgeRight:
		return bs.TeeRight
	case EdgeTop | EdgeBottom | EdgeLeft:
		return bs.TeeLeft
	default:
		return bs.Cross
	}
}

// Coord is an integer cell coordinate, relative to the owning widget's
// local origin.
type Coord struct {
	X, Y int
}

// BorderCell describes one joinable border cell: the glyph set it draws
// with, the edges it connects to, and its display style.
type BorderCell struct {
	Glyphs BorderStyle
	Edges  Edges
	Style  Style
}

// Rune returns the glyph this cell currently draws as.
func (bc BorderCell) Rune() rune {
	return bc.Glyphs.Rune(bc.Edges)
}

// BorderMap is a sparse store of joinable border cells keyed by coordinate.
// Widgets emit entries for the border cells they draw; when siblings are
// composed their maps are merged so adjacent borders connect.
type BorderMap map[Coord]BorderCell

// Set records a border cell, OR-combining edges with any existing entry at
// the same coordinate. The incoming glyph set and style win on conflict.
func (bm BorderMap) Set(x, y int, cell BorderCell) {
	if prev, ok := bm[Coord{x, y}]; ok {
		cell.Edges |= prev.Edges
	}
	bm[Coord{x, y}] = cell
}

// Crop returns a new map retaining only cells within [0,width) x [0,height).
func (bm BorderMap) Crop(width, height int) BorderMap {
	out := make(BorderMap, len(bm))
	for c, cell := range bm {
		if c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height {
			out[c] = cell
		}
	}
	return out
}

// Translate returns a new map with every coordinate shifted by (dx, dy).
func (bm BorderMap) Translate(dx, dy int) BorderMap {
	if dx == 0 && dy == 0 && bm != nil {
		return bm
	}
	out := make(BorderMap, len(bm))
	for c, cell := range bm {
		out[Coord{c.X + dx, c.Y + dy}] = cell
	}
	return out
}

// Merge returns the union of two maps. Edge flags are OR-combined where
// both maps define the same coordinate; the second map's glyph set and
// style win on conflict.
func (bm BorderMap) Merge(other BorderMap) BorderMap {
	out := make(BorderMap, len(bm)+len(other))
	for c, cell := range bm {
		out[c] = cell
	}
	for c, cell := range other {
		if prev, ok := out[c]; ok {
			cell.Edges |= prev.Edges
		}
		out[c] = cell
	}
	return out
}

// redrawOnto repaints every border cell's joined glyph into img, which must
// be freshly allocated by the caller. Used after merging sibling maps so
// junction glyphs reflect the combined edge sets.
func (bm BorderMap) redrawOnto(img Image) {
	for c, cell := range bm {
		img.set(c.X, c.Y, NewCell(cell.Rune(), cell.Style))
	}
}
