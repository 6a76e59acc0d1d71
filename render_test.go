package grout

import (
	"testing"
)

func TestRenderWidgetsCompositing(t *testing.T) {
	// the top layer covers only its own sub-region; everything else shows
	// the layer below
	layers := []Widget{
		HLimit(3, VLimit(1, Fill('*'))),
		Fill('.'),
	}
	img := RenderWidgets(layers, 6, 3)
	want := "***...\n" +
		"......\n" +
		"......"
	if got := img.String(); got != want {
		t.Errorf("composite:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderWidgetsBackgroundIsOpaque(t *testing.T) {
	// a layer smaller than the display leaves blanks, never transparency
	img := RenderWidgets([]Widget{Text("hi")}, 4, 2)
	if got := img.String(); got != "hi  \n    " {
		t.Errorf("image = %q", got)
	}
	if img.Cell(3, 1).Transparent() {
		t.Error("uncovered cells should be opaque blanks")
	}
}

func TestRenderFinalExtentTopmostWins(t *testing.T) {
	top := Named("x", Text("ab"))
	bottom := HBox(Text("zz"), Named("x", Text("cd")))
	st, _, _, perLayer := RenderFinal(DefaultAttrMap(), []Widget{top, bottom}, 10, 5, nil, nil)

	e, ok := st.Extent("x")
	if !ok {
		t.Fatal("extent not recorded")
	}
	if e.X != 0 || e.Y != 0 {
		t.Errorf("extent at (%d,%d), want the top layer's (0,0)", e.X, e.Y)
	}

	// per-layer lists stay in top-to-bottom order
	if len(perLayer) != 2 {
		t.Fatalf("perLayer has %d entries", len(perLayer))
	}
	if perLayer[0][0].X != 0 {
		t.Errorf("top layer extent X = %d", perLayer[0][0].X)
	}
	if perLayer[1][0].X != 2 {
		t.Errorf("bottom layer extent X = %d", perLayer[1][0].X)
	}

	if dups := st.DuplicateNames(); len(dups) != 1 || dups[0] != "x" {
		t.Errorf("duplicates = %v", dups)
	}
}

func TestRenderFinalCursorChooser(t *testing.T) {
	input := NewWidget(Fixed, Fixed, func(ctx Context, st *RenderState) Result {
		return Result{
			Image:   ImageFromLines([]string{"field"}, DefaultStyle()),
			Cursors: []CursorLocation{{Name: "input", X: 1, Y: 0}},
		}
	})

	_, _, cursor, _ := RenderFinal(DefaultAttrMap(), []Widget{input}, 10, 5, ShowCursorNamed("input"), nil)
	if cursor == nil {
		t.Fatal("cursor not chosen")
	}
	if cursor.X != 1 || cursor.Y != 0 {
		t.Errorf("cursor at (%d,%d)", cursor.X, cursor.Y)
	}

	_, _, cursor, _ = RenderFinal(DefaultAttrMap(), []Widget{input}, 10, 5, ShowCursorNamed("other"), nil)
	if cursor != nil {
		t.Error("no candidate matches, cursor should stay hidden")
	}

	_, _, cursor, _ = RenderFinal(DefaultAttrMap(), []Widget{input}, 10, 5, nil, nil)
	if cursor != nil {
		t.Error("nil chooser should leave the cursor hidden")
	}
}

func TestRenderFinalClickables(t *testing.T) {
	layer := HBox(Text("__"), Clickable("btn", Text("ok")))
	st, _, _, _ := RenderFinal(DefaultAttrMap(), []Widget{layer}, 10, 5, nil, nil)

	if name, ok := st.ClickedName(3, 0); !ok || name != "btn" {
		t.Errorf("clicked = %q, %v", name, ok)
	}
	if _, ok := st.ClickedName(0, 0); ok {
		t.Error("non-clickable region should not hit")
	}
	if _, ok := st.ClickedName(3, 4); ok {
		t.Error("outside the extent should not hit")
	}
}

func TestRenderFinalStateCarriesAcrossFrames(t *testing.T) {
	layer := Clickable("a", Text("xx"))
	st, _, _, _ := RenderFinal(DefaultAttrMap(), []Widget{layer}, 10, 5, nil, nil)

	// second frame with a different layer: per-frame bookkeeping resets
	st2, _, _, _ := RenderFinal(DefaultAttrMap(), []Widget{Text("yy")}, 10, 5, nil, st)
	if st2 != st {
		t.Fatal("prior state should be reused")
	}
	if st.Observed("a") {
		t.Error("observed names should reset between frames")
	}
	if len(st.Clickables()) != 0 {
		t.Error("clickables should reset between frames")
	}
	if _, ok := st.Extent("a"); ok {
		t.Error("extents should reset between frames")
	}
}
