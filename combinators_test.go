package grout

import (
	"testing"
)

// renderAt renders a widget directly into a fresh state and context.
func renderAt(t *testing.T, w Widget, width, height int) Result {
	t.Helper()
	ctx := NewContext(width, height, DefaultAttrMap())
	return CropToContext(w.Render(ctx, NewRenderState()), ctx)
}

func TestText(t *testing.T) {
	res := renderAt(t, Text("ab\nc"), 10, 10)
	if got := res.Image.String(); got != "ab\nc " {
		t.Errorf("text = %q", got)
	}
	if Text("x").HorizontalPolicy() != Fixed || Text("x").VerticalPolicy() != Fixed {
		t.Error("text should be fixed in both axes")
	}
}

func TestFill(t *testing.T) {
	res := renderAt(t, Fill('*'), 3, 2)
	if got := res.Image.String(); got != "***\n***" {
		t.Errorf("fill = %q", got)
	}
}

func TestHBoxFixedOnly(t *testing.T) {
	res := renderAt(t, HBox(Text("ab"), Text("cd")), 10, 5)
	if got := res.Image.String(); got != "abcd" {
		t.Errorf("hbox = %q", got)
	}
}

func TestVBoxUnevenWidths(t *testing.T) {
	res := renderAt(t, VBox(Text("ab"), Text("c")), 10, 5)
	if got := res.Image.String(); got != "ab\nc " {
		t.Errorf("vbox = %q", got)
	}
}

func TestHBoxFixedAndGreedy(t *testing.T) {
	res := renderAt(t, HBox(Text("ab"), Fill('.')), 6, 1)
	if got := res.Image.String(); got != "ab...." {
		t.Errorf("hbox = %q", got)
	}
}

func TestHBoxGreedyRemainderGoesLeft(t *testing.T) {
	res := renderAt(t, HBox(Fill('a'), Fill('b')), 5, 1)
	if got := res.Image.String(); got != "aaabb" {
		t.Errorf("hbox = %q", got)
	}
}

func TestBoxPolicyDerivation(t *testing.T) {
	if HBox(Text("a"), Text("b")).HorizontalPolicy() != Fixed {
		t.Error("all-fixed box should be fixed")
	}
	if HBox(Text("a"), Fill('x')).HorizontalPolicy() != Greedy {
		t.Error("box with a greedy child should be greedy")
	}
}

func TestHLimitVLimit(t *testing.T) {
	res := renderAt(t, HLimit(3, VLimit(2, Fill('#'))), 10, 10)
	if got := res.Image.String(); got != "###\n###" {
		t.Errorf("limited fill = %q", got)
	}
	if HLimit(3, Fill('#')).HorizontalPolicy() != Fixed {
		t.Error("hlimit should make width fixed")
	}
}

func TestPad(t *testing.T) {
	res := renderAt(t, Pad(1, 1, 1, 1, Text("x")), 10, 10)
	if got := res.Image.String(); got != "   \n x \n   " {
		t.Errorf("pad = %q", got)
	}
	// padding is opaque blank, not transparent
	if res.Image.Cell(0, 0).Transparent() {
		t.Error("padding cells should be opaque")
	}
}

func TestHCenter(t *testing.T) {
	res := renderAt(t, HCenter(Text("ab")), 6, 1)
	if got := res.Image.String(); got != "  ab  " {
		t.Errorf("centered = %q", got)
	}
	// odd slack leaves the extra column on the right
	res = renderAt(t, HCenter(Text("ab")), 5, 1)
	if got := res.Image.String(); got != " ab  " {
		t.Errorf("odd-slack centered = %q", got)
	}
}

func TestBorderGolden(t *testing.T) {
	res := renderAt(t, Border(Text("ab")), 10, 10)
	want := "┌──┐\n" +
		"│ab│\n" +
		"└──┘"
	if got := res.Image.String(); got != want {
		t.Errorf("border:\n%s\nwant:\n%s", got, want)
	}
}

func TestBorderExportsMapOnlyWhenDynamic(t *testing.T) {
	w := Border(Text("x"))
	ctx := NewContext(10, 10, DefaultAttrMap())
	if res := w.Render(ctx, NewRenderState()); res.Borders != nil {
		t.Error("border map should stay internal without dynamic borders")
	}
	if res := w.Render(ctx.WithDynBorders(true), NewRenderState()); res.Borders == nil {
		t.Error("border map should be exported with dynamic borders")
	}
}

func TestSeparateBordersStayDistinct(t *testing.T) {
	// borders join only where runs share coordinates; side-by-side boxes
	// touch but do not fuse
	w := HBox(Border(Text("a")), Border(Text("b")))
	ctx := NewContext(10, 10, DefaultAttrMap()).WithDynBorders(true)
	res := CropToContext(w.Render(ctx, NewRenderState()), ctx)
	want := "┌─┐┌─┐\n" +
		"│a││b│\n" +
		"└─┘└─┘"
	if got := res.Image.String(); got != want {
		t.Errorf("side-by-side borders:\n%s\nwant:\n%s", got, want)
	}
}

func TestBorderStyleOverride(t *testing.T) {
	w := Border(Text("a"))
	ctx := NewContext(10, 10, DefaultAttrMap()).WithBorderGlyphs(BorderDouble)
	res := CropToContext(w.Render(ctx, NewRenderState()), ctx)
	want := "╔═╗\n" +
		"║a║\n" +
		"╚═╝"
	if got := res.Image.String(); got != want {
		t.Errorf("double border:\n%s\nwant:\n%s", got, want)
	}
}

func TestNamed(t *testing.T) {
	st := NewRenderState()
	ctx := NewContext(10, 10, DefaultAttrMap())
	res := Named("label", Text("ab")).Render(ctx, st)
	if res.Name != "label" {
		t.Errorf("result name = %q", res.Name)
	}
	if !st.Observed("label") {
		t.Error("name should be observed")
	}
	want := Extent{Name: "label", X: 0, Y: 0, Width: 2, Height: 1}
	if len(res.Extents) != 1 || res.Extents[0] != want {
		t.Errorf("extents = %v", res.Extents)
	}
}

func TestDuplicateNames(t *testing.T) {
	st := NewRenderState()
	ctx := NewContext(10, 10, DefaultAttrMap())
	VBox(Named("x", Text("a")), Named("x", Text("b"))).Render(ctx, st)
	dups := st.DuplicateNames()
	if len(dups) != 1 || dups[0] != "x" {
		t.Errorf("duplicates = %v", dups)
	}
}

func TestExtentTranslationInBoxes(t *testing.T) {
	st := NewRenderState()
	ctx := NewContext(10, 10, DefaultAttrMap())
	res := VBox(Text("top"), HBox(Text("__"), Named("n", Text("ab")))).Render(ctx, st)
	var found *Extent
	for i := range res.Extents {
		if res.Extents[i].Name == "n" {
			found = &res.Extents[i]
		}
	}
	if found == nil {
		t.Fatal("extent not propagated")
	}
	if found.X != 2 || found.Y != 1 {
		t.Errorf("extent at (%d,%d), want (2,1)", found.X, found.Y)
	}
}

func TestCached(t *testing.T) {
	st := NewRenderState()
	ctx := NewContext(10, 10, DefaultAttrMap())
	calls := 0
	w := Cached("c", NewWidget(Fixed, Fixed, func(ctx Context, st *RenderState) Result {
		calls++
		return Result{Image: ImageFromLines([]string{"hi"}, DefaultStyle())}
	}))

	w.Render(ctx, st)
	w.Render(ctx, st)
	if calls != 1 {
		t.Errorf("render called %d times, want 1", calls)
	}

	st.InvalidateCache("c")
	w.Render(ctx, st)
	if calls != 2 {
		t.Errorf("render called %d times after invalidation, want 2", calls)
	}
}

func TestCropToContextIdempotent(t *testing.T) {
	ctx := NewContext(3, 2, DefaultAttrMap())
	res := Result{
		Image:   ImageFromLines([]string{"abcde", "fghij", "klmno"}, DefaultStyle()),
		Cursors: []CursorLocation{{Name: "in", X: 1, Y: 1}, {Name: "out", X: 4, Y: 0}},
		Extents: []Extent{
			{Name: "partial", X: 2, Y: 0, Width: 3, Height: 1},
			{Name: "gone", X: 3, Y: 0, Width: 2, Height: 1},
		},
	}

	once := CropToContext(res, ctx)
	twice := CropToContext(once, ctx)

	if !once.Image.Equal(twice.Image) {
		t.Error("image changed on second crop")
	}
	if len(once.Cursors) != 1 || once.Cursors[0].Name != "in" {
		t.Errorf("cursors = %v", once.Cursors)
	}
	if len(once.Extents) != 1 {
		t.Fatalf("extents = %v", once.Extents)
	}
	if e := once.Extents[0]; e.Name != "partial" || e.Width != 1 {
		t.Errorf("partial extent = %v", e)
	}
	if len(twice.Extents) != 1 || twice.Extents[0] != once.Extents[0] {
		t.Error("extents changed on second crop")
	}
}
