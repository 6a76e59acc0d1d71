package grout

import (
	"errors"
	"fmt"
)

// ColumnAlignment controls horizontal placement of a cell inside its column.
type ColumnAlignment uint8

const (
	AlignLeft ColumnAlignment = iota
	AlignCenter
	AlignRight
)

// RowAlignment controls vertical placement of a cell inside its row.
type RowAlignment uint8

const (
	AlignTop RowAlignment = iota
	AlignMiddle
	AlignBottom
)

// Table construction failures. Both are programmer errors in the static
// layout and abort construction; nothing is deferred to render time.
var (
	ErrUnequalRowSizes       = errors.New("table rows must all have the same number of cells")
	ErrInvalidCellSizePolicy = errors.New("table cells must be fixed-size in both axes")
)

// Table is a fixed grid of cells with per-row and per-column alignment
// overrides and configurable borders. Build one with NewTable; the setters
// return modified copies so a base table can be configured in a chain.
type Table struct {
	rows        [][]Widget
	columnAlign map[int]ColumnAlignment
	rowAlign    map[int]RowAlignment
	surround    bool
	rowBorders  bool
	colBorders  bool
}

// NewTable validates a grid of cells and returns a table with all borders
// enabled and default (left/top) alignment. Every row must have the same
// number of cells, and every cell must be Fixed in both axes: row and
// column sizing is intrinsic-size-driven, and a Greedy cell has no
// well-defined intrinsic size.
func NewTable(rows [][]Widget) (Table, error) {
	if len(rows) > 0 {
		want := len(rows[0])
		for r, row := range rows {
			if len(row) != want {
				return Table{}, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), want, ErrUnequalRowSizes)
			}
		}
		for r, row := range rows {
			for c, cell := range row {
				if cell.HorizontalPolicy() != Fixed || cell.VerticalPolicy() != Fixed {
					return Table{}, fmt.Errorf("cell (%d,%d): %w", r, c, ErrInvalidCellSizePolicy)
				}
			}
		}
	}
	return Table{
		rows:        rows,
		columnAlign: map[int]ColumnAlignment{},
		rowAlign:    map[int]RowAlignment{},
		surround:    true,
		rowBorders:  true,
		colBorders:  true,
	}, nil
}

// numColumns returns the table width in cells.
func (t Table) numColumns() int {
	if len(t.rows) == 0 {
		return 0
	}
	return len(t.rows[0])
}

// AlignColumn returns a copy with the given column's alignment overridden.
// Out-of-range indices are ignored: alignment is best-effort metadata, not
// worth failing over.
func (t Table) AlignColumn(col int, a ColumnAlignment) Table {
	if col < 0 || col >= t.numColumns() {
		return t
	}
	m := make(map[int]ColumnAlignment, len(t.columnAlign)+1)
	for k, v := range t.columnAlign {
		m[k] = v
	}
	m[col] = a
	t.columnAlign = m
	return t
}

// AlignRow returns a copy with the given row's alignment overridden.
// Out-of-range indices are ignored.
func (t Table) AlignRow(row int, a RowAlignment) Table {
	if row < 0 || row >= len(t.rows) {
		return t
	}
	m := make(map[int]RowAlignment, len(t.rowAlign)+1)
	for k, v := range t.rowAlign {
		m[k] = v
	}
	m[row] = a
	t.rowAlign = m
	return t
}

// SurroundingBorder returns a copy with the outer border toggled.
func (t Table) SurroundingBorder(on bool) Table {
	t.surround = on
	return t
}

// RowBorders returns a copy with the borders between rows toggled.
func (t Table) RowBorders(on bool) Table {
	t.rowBorders = on
	return t
}

// ColumnBorders returns a copy with the borders between columns toggled.
func (t Table) ColumnBorders(on bool) Table {
	t.colBorders = on
	return t
}

// RenderTable turns a table into a fixed-size widget. Border joining is
// forced on for the whole assembly so segments connect regardless of the
// ambient toggle.
func RenderTable(t Table) Widget {
	return NewWidget(Fixed, Fixed, func(ctx Context, st *RenderState) Result {
		return t.render(ctx.WithDynBorders(true), st)
	})
}

// render lays the table out: cells render once in row-major order to
// establish intrinsic sizes, rows and columns take the max extent of their
// cells, and the border lattice is assembled from runs in the border map
// so junction glyphs fall out of edge merging.
func (t Table) render(ctx Context, st *RenderState) Result {
	nrows := len(t.rows)
	ncols := t.numColumns()
	if nrows == 0 || ncols == 0 {
		return Result{Borders: make(BorderMap)}
	}

	cellRes := make([][]Result, nrows)
	rowH := make([]int, nrows)
	colW := make([]int, ncols)
	for r, row := range t.rows {
		cellRes[r] = make([]Result, ncols)
		for c, cell := range row {
			res := CropToContext(cell.Render(ctx, st), ctx)
			cellRes[r][c] = res
			rowH[r] = max(rowH[r], res.Image.Height())
			colW[c] = max(colW[c], res.Image.Width())
		}
	}

	// cell origins, leaving room for the surround and separators
	edge := 0
	if t.surround {
		edge = 1
	}
	colSep, rowSep := 0, 0
	if t.colBorders {
		colSep = 1
	}
	if t.rowBorders {
		rowSep = 1
	}

	xOff := make([]int, ncols)
	x := edge
	for c := 0; c < ncols; c++ {
		xOff[c] = x
		x += colW[c] + colSep
	}
	totalW := x - colSep + edge

	yOff := make([]int, nrows)
	y := edge
	for r := 0; r < nrows; r++ {
		yOff[r] = y
		y += rowH[r] + rowSep
	}
	totalH := y - rowSep + edge

	blank := ctx.Attr()
	out := Result{
		Image:   NewImage(totalW, totalH),
		Borders: make(BorderMap),
	}

	for r := 0; r < nrows; r++ {
		for c := 0; c < ncols; c++ {
			res := cellRes[r][c]
			cw, ch := res.Image.Size()
			if cw == 0 && ch == 0 {
				// empty cells still occupy their slot
				res.Image = CharFill(' ', blank, colW[c], rowH[r])
				cw, ch = colW[c], rowH[r]
			}

			dx := 0
			switch t.columnAlign[c] {
			case AlignCenter:
				dx = (colW[c] - cw) / 2
			case AlignRight:
				dx = colW[c] - cw
			}
			dy := 0
			switch t.rowAlign[r] {
			case AlignMiddle:
				dy = (rowH[r] - ch) / 2
			case AlignBottom:
				dy = rowH[r] - ch
			}

			slot := CharFill(' ', blank, colW[c], rowH[r]).Overlay(res.Image, dx, dy)
			out.Image = out.Image.Overlay(slot, xOff[c], yOff[r])

			shifted := res.Translate(xOff[c]+dx, yOff[r]+dy)
			out.Cursors = append(out.Cursors, shifted.Cursors...)
			out.Extents = append(out.Extents, shifted.Extents...)
			if shifted.Borders != nil {
				out.Borders = out.Borders.Merge(shifted.Borders)
			}
		}
	}

	// border lattice: perimeter and separator runs share junction
	// coordinates, so tees and crosses emerge from the edge merge
	glyphs := ctx.BorderGlyphs()
	bstyle := ctx.AttrNamed("border")
	lattice := make(BorderMap)
	if t.surround {
		addHRun(lattice, glyphs, bstyle, 0, totalW-1, 0)
		addHRun(lattice, glyphs, bstyle, 0, totalW-1, totalH-1)
		addVRun(lattice, glyphs, bstyle, 0, 0, totalH-1)
		addVRun(lattice, glyphs, bstyle, totalW-1, 0, totalH-1)
	}
	if t.colBorders {
		for c := 0; c < ncols-1; c++ {
			addVRun(lattice, glyphs, bstyle, xOff[c]+colW[c], 0, totalH-1)
		}
	}
	if t.rowBorders {
		for r := 0; r < nrows-1; r++ {
			addHRun(lattice, glyphs, bstyle, 0, totalW-1, yOff[r]+rowH[r])
		}
	}

	out.Borders = out.Borders.Merge(lattice)
	out.Borders.redrawOnto(out.Image)
	return out
}
