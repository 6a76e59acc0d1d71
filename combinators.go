package grout

import "strings"

// ----------------------------------------------------------------------------
// leaf widgets
// ----------------------------------------------------------------------------

// Text renders a fixed-size multi-line string in the context's current
// attribute.
func Text(s string) Widget {
	return NewWidget(Fixed, Fixed, func(ctx Context, st *RenderState) Result {
		return Result{Image: ImageFromLines(strings.Split(s, "\n"), ctx.Attr())}
	})
}

// TextStyled renders a fixed-size multi-line string in an explicit style.
func TextStyled(s string, style Style) Widget {
	return NewWidget(Fixed, Fixed, func(ctx Context, st *RenderState) Result {
		return Result{Image: ImageFromLines(strings.Split(s, "\n"), style)}
	})
}

// Fill expands to consume all offered space, painting it with the given rune.
func Fill(r rune) Widget {
	return NewWidget(Greedy, Greedy, func(ctx Context, st *RenderState) Result {
		return Result{Image: CharFill(r, ctx.Attr(), ctx.AvailWidth(), ctx.AvailHeight())}
	})
}

// Empty renders nothing and occupies no space.
func Empty() Widget {
	return NewWidget(Fixed, Fixed, func(ctx Context, st *RenderState) Result {
		return Result{}
	})
}

// ----------------------------------------------------------------------------
// boxes
// ----------------------------------------------------------------------------

// HBox arranges children left to right. The box is greedy along an axis if
// any child is. Fixed-width children are measured first; leftover width is
// split evenly between greedy children, any remainder going to the leftmost.
func HBox(children ...Widget) Widget {
	return NewWidget(boxPolicies(children, true),
		boxPolicies(children, false),
		func(ctx Context, st *RenderState) Result {
			return renderBox(ctx, st, children, true)
		})
}

// VBox arranges children top to bottom, with the same space distribution as
// HBox applied vertically.
func VBox(children ...Widget) Widget {
	return NewWidget(boxPolicies(children, true),
		boxPolicies(children, false),
		func(ctx Context, st *RenderState) Result {
			return renderBox(ctx, st, children, false)
		})
}

// boxPolicies derives a box's policy on one axis from its children.
func boxPolicies(children []Widget, horizontal bool) Policy {
	for _, c := range children {
		if horizontal && c.HorizontalPolicy() == Greedy {
			return Greedy
		}
		if !horizontal && c.VerticalPolicy() == Greedy {
			return Greedy
		}
	}
	return Fixed
}

// renderBox renders children along one axis. Fixed children along the
// primary axis render first to establish intrinsic sizes, then greedy
// children split the remaining space; this reorders state mutation between
// the two passes but keeps it left-to-right within each.
func renderBox(ctx Context, st *RenderState, children []Widget, horizontal bool) Result {
	avail := ctx.AvailHeight()
	if horizontal {
		avail = ctx.AvailWidth()
	}

	primary := func(w Widget) Policy {
		if horizontal {
			return w.HorizontalPolicy()
		}
		return w.VerticalPolicy()
	}
	along := func(img Image) int {
		if horizontal {
			return img.Width()
		}
		return img.Height()
	}

	results := make([]Result, len(children))
	rendered := make([]bool, len(children))

	// pass 1: fixed children at their intrinsic size
	used := 0
	greedyCount := 0
	for i, c := range children {
		if primary(c) == Greedy {
			greedyCount++
			continue
		}
		results[i] = CropToContext(c.Render(ctx, st), ctx)
		rendered[i] = true
		used += along(results[i].Image)
	}

	// pass 2: greedy children split what is left
	if greedyCount > 0 {
		remaining := max(avail-used, 0)
		per := remaining / greedyCount
		extra := remaining % greedyCount
		for i, c := range children {
			if rendered[i] {
				continue
			}
			share := per
			if extra > 0 {
				share++
				extra--
			}
			cctx := ctx
			if horizontal {
				cctx = ctx.WithAvailWidth(share)
			} else {
				cctx = ctx.WithAvailHeight(share)
			}
			results[i] = CropToContext(c.Render(cctx, st), cctx)
		}
	}

	// compose in original order
	total, across := 0, 0
	for _, res := range results {
		total += along(res.Image)
		if horizontal {
			across = max(across, res.Image.Height())
		} else {
			across = max(across, res.Image.Width())
		}
	}

	var out Result
	if horizontal {
		out.Image = NewImage(total, across)
	} else {
		out.Image = NewImage(across, total)
	}
	out.Borders = make(BorderMap)

	off := 0
	for _, res := range results {
		dx, dy := off, 0
		if !horizontal {
			dx, dy = 0, off
		}
		out.Image = out.Image.Overlay(res.Image, dx, dy)
		shifted := res.Translate(dx, dy)
		out.Cursors = append(out.Cursors, shifted.Cursors...)
		out.Extents = append(out.Extents, shifted.Extents...)
		if shifted.Borders != nil {
			out.Borders = out.Borders.Merge(shifted.Borders)
		}
		off += along(res.Image)
	}

	// repaint joined border cells so junctions between siblings connect
	out.Borders.redrawOnto(out.Image)
	return out
}

// ----------------------------------------------------------------------------
// size adjusters
// ----------------------------------------------------------------------------

// HLimit caps the available width offered to child, making it fixed-width.
func HLimit(width int, child Widget) Widget {
	return NewWidget(Fixed, child.VerticalPolicy(), func(ctx Context, st *RenderState) Result {
		cctx := ctx.WithAvailWidth(min(ctx.AvailWidth(), width))
		return CropToContext(child.Render(cctx, st), cctx)
	})
}

// VLimit caps the available height offered to child, making it fixed-height.
func VLimit(height int, child Widget) Widget {
	return NewWidget(child.HorizontalPolicy(), Fixed, func(ctx Context, st *RenderState) Result {
		cctx := ctx.WithAvailHeight(min(ctx.AvailHeight(), height))
		return CropToContext(child.Render(cctx, st), cctx)
	})
}

// Pad surrounds child with blank cells in the current attribute.
func Pad(left, top, right, bottom int, child Widget) Widget {
	return NewWidget(child.HorizontalPolicy(), child.VerticalPolicy(),
		func(ctx Context, st *RenderState) Result {
			cctx := ctx.WithAvail(ctx.AvailWidth()-left-right, ctx.AvailHeight()-top-bottom)
			res := CropToContext(child.Render(cctx, st), cctx)
			w := res.Image.Width() + left + right
			h := res.Image.Height() + top + bottom
			img := CharFill(' ', ctx.Attr(), w, h).Overlay(res.Image, left, top)
			res = res.Translate(left, top)
			res.Image = img
			return res
		})
}

// HCenter centers child horizontally in the available width, filling the
// slack with blanks. Odd slack leaves the extra column on the right.
func HCenter(child Widget) Widget {
	return NewWidget(Greedy, child.VerticalPolicy(), func(ctx Context, st *RenderState) Result {
		res := CropToContext(child.Render(ctx, st), ctx)
		w := ctx.AvailWidth()
		off := max((w-res.Image.Width())/2, 0)
		img := CharFill(' ', ctx.Attr(), w, res.Image.Height()).Overlay(res.Image, off, 0)
		res = res.Translate(off, 0)
		res.Image = img
		return res
	})
}

// VCenter centers child vertically in the available height. Odd slack
// leaves the extra row at the bottom.
func VCenter(child Widget) Widget {
	return NewWidget(child.HorizontalPolicy(), Greedy, func(ctx Context, st *RenderState) Result {
		res := CropToContext(child.Render(ctx, st), ctx)
		h := ctx.AvailHeight()
		off := max((h-res.Image.Height())/2, 0)
		img := CharFill(' ', ctx.Attr(), res.Image.Width(), h).Overlay(res.Image, 0, off)
		res = res.Translate(0, off)
		res.Image = img
		return res
	})
}

// Center centers child in both axes.
func Center(child Widget) Widget {
	return HCenter(VCenter(child))
}

// ----------------------------------------------------------------------------
// borders
// ----------------------------------------------------------------------------

// addHRun records a horizontal border run from x0 to x1 on row y. Interior
// cells connect both ways; endpoints connect inward only, so a merge with a
// perpendicular run at an endpoint produces the right junction glyph.
func addHRun(bm BorderMap, glyphs BorderStyle, style Style, x0, x1, y int) {
	for x := x0; x <= x1; x++ {
		var e Edges
		if x > x0 {
			e |= EdgeLeft
		}
		if x < x1 {
			e |= EdgeRight
		}
		if e == 0 {
			e = EdgeLeft | EdgeRight // single-cell run
		}
		bm.Set(x, y, BorderCell{Glyphs: glyphs, Edges: e, Style: style})
	}
}

// addVRun records a vertical border run from y0 to y1 in column x.
func addVRun(bm BorderMap, glyphs BorderStyle, style Style, x, y0, y1 int) {
	for y := y0; y <= y1; y++ {
		var e Edges
		if y > y0 {
			e |= EdgeTop
		}
		if y < y1 {
			e |= EdgeBottom
		}
		if e == 0 {
			e = EdgeTop | EdgeBottom
		}
		bm.Set(x, y, BorderCell{Glyphs: glyphs, Edges: e, Style: style})
	}
}

// HBorder draws a one-row horizontal border across the available width.
func HBorder() Widget {
	return NewWidget(Greedy, Fixed, func(ctx Context, st *RenderState) Result {
		w := ctx.AvailWidth()
		style := ctx.AttrNamed("border")
		bm := make(BorderMap)
		if w > 0 {
			addHRun(bm, ctx.BorderGlyphs(), style, 0, w-1, 0)
		}
		img := NewImage(w, min(ctx.AvailHeight(), 1))
		bm.redrawOnto(img)
		res := Result{Image: img}
		if ctx.DynBorders() {
			res.Borders = bm
		}
		return res
	})
}

// VBorder draws a one-column vertical border down the available height.
func VBorder() Widget {
	return NewWidget(Fixed, Greedy, func(ctx Context, st *RenderState) Result {
		h := ctx.AvailHeight()
		style := ctx.AttrNamed("border")
		bm := make(BorderMap)
		if h > 0 {
			addVRun(bm, ctx.BorderGlyphs(), style, 0, 0, h-1)
		}
		img := NewImage(min(ctx.AvailWidth(), 1), h)
		bm.redrawOnto(img)
		res := Result{Image: img}
		if ctx.DynBorders() {
			res.Borders = bm
		}
		return res
	})
}

// Border surrounds child with a box border. Corner glyphs fall out of the
// perimeter runs overlapping at the corner coordinates.
func Border(child Widget) Widget {
	return NewWidget(child.HorizontalPolicy(), child.VerticalPolicy(),
		func(ctx Context, st *RenderState) Result {
			cctx := ctx.WithAvail(ctx.AvailWidth()-2, ctx.AvailHeight()-2)
			res := CropToContext(child.Render(cctx, st), cctx)
			w := res.Image.Width() + 2
			h := res.Image.Height() + 2

			style := ctx.AttrNamed("border")
			glyphs := ctx.BorderGlyphs()
			bm := make(BorderMap)
			addHRun(bm, glyphs, style, 0, w-1, 0)
			addHRun(bm, glyphs, style, 0, w-1, h-1)
			addVRun(bm, glyphs, style, 0, 0, h-1)
			addVRun(bm, glyphs, style, w-1, 0, h-1)

			img := NewImage(w, h).Overlay(res.Image, 1, 1)
			res = res.Translate(1, 1)
			if res.Borders != nil {
				bm = res.Borders.Merge(bm)
			}
			bm.redrawOnto(img)

			res.Image = img
			if ctx.DynBorders() {
				res.Borders = bm
			} else {
				res.Borders = nil
			}
			return res
		})
}

// ----------------------------------------------------------------------------
// naming and caching wrappers
// ----------------------------------------------------------------------------

// Named tags child's result with a name, reports its extent, and records
// the name in the render state for duplicate detection.
func Named(name string, child Widget) Widget {
	return NewWidget(child.HorizontalPolicy(), child.VerticalPolicy(),
		func(ctx Context, st *RenderState) Result {
			st.observeName(name)
			res := child.Render(ctx, st)
			res.Name = name
			res.Extents = append(res.Extents, Extent{
				Name:   name,
				Width:  res.Image.Width(),
				Height: res.Image.Height(),
			})
			return res
		})
}

// Clickable is Named plus registration as a clickable region: the driver
// records the widget's final screen extent for hit-testing.
func Clickable(name string, child Widget) Widget {
	inner := Named(name, child)
	return NewWidget(inner.HorizontalPolicy(), inner.VerticalPolicy(),
		func(ctx Context, st *RenderState) Result {
			st.clickNames[name] = struct{}{}
			return inner.Render(ctx, st)
		})
}

// Cached serves child's previous render result from the state's cache
// until InvalidateCache is called for the name. Only widgets whose output
// depends solely on their inputs should be cached.
func Cached(name string, child Widget) Widget {
	return NewWidget(child.HorizontalPolicy(), child.VerticalPolicy(),
		func(ctx Context, st *RenderState) Result {
			if res, ok := st.cache[name]; ok {
				return res
			}
			res := child.Render(ctx, st)
			st.cache[name] = res
			return res
		})
}
