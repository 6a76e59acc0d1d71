package grout

// CursorChooser selects the final cursor from all candidates collected
// across every layer, in top-to-bottom layer order. Returning nil leaves
// the cursor hidden.
type CursorChooser func([]CursorLocation) *CursorLocation

// ShowCursorNamed returns a chooser that picks the first candidate with
// the given name.
func ShowCursorNamed(name string) CursorChooser {
	return func(candidates []CursorLocation) *CursorLocation {
		for _, cl := range candidates {
			if cl.Name == name {
				return &cl
			}
		}
		return nil
	}
}

// ShowFirstCursor returns a chooser that picks the first candidate.
func ShowFirstCursor() CursorChooser {
	return func(candidates []CursorLocation) *CursorLocation {
		if len(candidates) == 0 {
			return nil
		}
		return &candidates[0]
	}
}

// RenderFinal renders an ordered stack of full-screen layer widgets
// (first element topmost) into a composited picture.
//
// Layers render bottommost-first so that extent reporting into the shared
// state happens in paint order: when several layers report the same name,
// the topmost layer's extent wins because it is recorded last. Each
// layer's image is explicitly resized to the display size before
// compositing, since images smaller than the display are not auto-expanded;
// the resize padding is transparent so lower layers show through. The
// picture's background is an opaque blank cell so stale terminal content
// never bleeds into the output.
//
// The returned per-layer extent lists are in the original top-to-bottom
// layer order, independent of the bottom-up render order.
func RenderFinal(am AttrMap, layers []Widget, width, height int, choose CursorChooser, prior *RenderState) (*RenderState, Picture, *CursorLocation, [][]Extent) {
	st := prior
	if st == nil {
		st = NewRenderState()
	} else {
		st.resetFrame()
	}

	ctx := NewContext(width, height, am)

	results := make([]Result, len(layers))
	for i := len(layers) - 1; i >= 0; i-- {
		res := CropToContext(layers[i].Render(ctx, st), ctx)
		for _, e := range res.Extents {
			st.extents[e.Name] = e
			if _, ok := st.clickNames[e.Name]; ok {
				st.clickables = append(st.clickables, e)
			}
		}
		results[i] = res
	}

	images := make([]Image, 0, len(results))
	for i := len(results) - 1; i >= 0; i-- {
		images = append(images, results[i].Image.Resize(width, height))
	}
	pic := NewPicture(images, width, height)

	var candidates []CursorLocation
	perLayer := make([][]Extent, len(results))
	for i, res := range results {
		candidates = append(candidates, res.Cursors...)
		perLayer[i] = res.Extents
	}

	var chosen *CursorLocation
	if choose != nil {
		chosen = choose(candidates)
	}
	return st, pic, chosen, perLayer
}

// RenderWidgets is the non-interactive entry point: it renders the layer
// stack from an empty state with default attributes and returns the
// flattened image, discarding cursor and extent output.
func RenderWidgets(layers []Widget, width, height int) Image {
	_, pic, _, _ := RenderFinal(DefaultAttrMap(), layers, width, height, nil, nil)
	return pic.Image()
}
