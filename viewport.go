package grout

// viewportBound is the content height offered to a viewport's child.
// Fixed children only allocate their intrinsic size, so the bound just has
// to be comfortably larger than any real content.
const viewportBound = 1 << 14

// ViewportV wraps child in a named, vertically scrolling region. The
// region's scroll position lives in the render state under the given name
// and survives across frames; pending scroll requests and visibility
// requests are applied when the viewport renders. When the context's
// scrollbar is enabled and the content overflows, the rightmost column
// shows a scrollbar.
func ViewportV(name string, child Widget) Widget {
	return NewWidget(Greedy, Greedy, func(ctx Context, st *RenderState) Result {
		st.observeName(name)

		w := ctx.AvailWidth()
		h := ctx.AvailHeight()
		sb := ctx.Scrollbar()

		cw := w
		if sb.Show && cw > 0 {
			cw--
		}

		cctx := ctx.WithAvail(cw, viewportBound)
		res := CropToContext(child.Render(cctx, st), cctx)
		contentH := res.Image.Height()

		vp := st.viewports[name]
		vp.Width = cw
		vp.Height = h
		vp.ContentWidth = res.Image.Width()
		vp.ContentHeight = contentH

		for _, req := range st.takeScrollRequests(name) {
			switch req.kind {
			case scrollBy:
				vp.Top += req.lines
			case scrollToTop:
				vp.Top = 0
			case scrollToEnd:
				vp.Top = contentH - h
			}
		}

		// visibility requests clamp the window onto the requested extent
		for _, e := range res.Extents {
			if !st.VisibilityRequested(e.Name) {
				continue
			}
			if e.Y < vp.Top {
				vp.Top = e.Y
			} else if e.Y+e.Height > vp.Top+h {
				vp.Top = e.Y + e.Height - h
			}
			delete(st.visibilityRq, e.Name)
		}

		vp.Top = min(vp.Top, max(contentH-h, 0))
		vp.Top = max(vp.Top, 0)
		st.viewports[name] = vp

		img := NewImage(w, h).Overlay(res.Image.CropAt(0, vp.Top, cw, h), 0, 0)
		if sb.Show && w > 0 && contentH > h && h > 0 {
			thumbH := max(h*h/contentH, 1)
			thumbY := 0
			if contentH > h {
				thumbY = vp.Top * (h - thumbH) / max(contentH-h, 1)
			}
			style := ctx.AttrNamed("scrollbar")
			for y := 0; y < h; y++ {
				r := sb.Track
				if y >= thumbY && y < thumbY+thumbH {
					r = sb.Thumb
				}
				img.set(w-1, y, NewCell(r, style))
			}
		}

		res = res.Translate(0, -vp.Top)
		res.Image = img
		res.Name = name
		res = CropToContext(res, ctx)
		res.Extents = append(res.Extents, Extent{Name: name, Width: w, Height: h})
		return res
	})
}
