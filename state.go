package grout

// Viewport tracks the scroll position of a named scrolling region across
// frames, plus the geometry observed at the last render.
type Viewport struct {
	Top           int // first visible content row
	Left          int // first visible content column
	Width         int // visible width at last render
	Height        int // visible height at last render
	ContentWidth  int
	ContentHeight int
}

// scrollKind enumerates pending scroll request types.
type scrollKind uint8

const (
	scrollBy scrollKind = iota
	scrollToTop
	scrollToEnd
)

// scrollRequest is a pending scroll operation for a named viewport,
// applied the next time that viewport renders.
type scrollRequest struct {
	name  string
	kind  scrollKind
	lines int
}

// RenderState is the mutable bookkeeping threaded through one full render
// pass in depth-first, left-to-right order. It is single-writer: only the
// currently rendering widget mutates it, and nothing reads it concurrently.
// Callers may carry it across frames to preserve viewport positions, or
// start fresh with NewRenderState.
type RenderState struct {
	viewports    map[string]Viewport
	scrollReqs   []scrollRequest
	observed     map[string]int
	cache        map[string]Result
	clickNames   map[string]struct{}
	clickables   []Extent
	visibilityRq map[string]struct{}
	extents      map[string]Extent
}

// NewRenderState creates an empty render state.
func NewRenderState() *RenderState {
	return &RenderState{
		viewports:    make(map[string]Viewport),
		observed:     make(map[string]int),
		cache:        make(map[string]Result),
		clickNames:   make(map[string]struct{}),
		visibilityRq: make(map[string]struct{}),
		extents:      make(map[string]Extent),
	}
}

// observeName records that a named widget rendered this pass and reports
// whether the name had already been seen (a duplicate).
func (st *RenderState) observeName(name string) bool {
	st.observed[name]++
	return st.observed[name] > 1
}

// Observed reports whether a named widget rendered during this pass.
func (st *RenderState) Observed(name string) bool {
	return st.observed[name] > 0
}

// DuplicateNames returns the names rendered more than once this pass.
// Name collisions corrupt extent and viewport tracking, so callers may
// want to surface them during development.
func (st *RenderState) DuplicateNames() []string {
	var dups []string
	for name, n := range st.observed {
		if n > 1 {
			dups = append(dups, name)
		}
	}
	return dups
}

// Viewport returns the tracked viewport for a name, if any.
func (st *RenderState) Viewport(name string) (Viewport, bool) {
	vp, ok := st.viewports[name]
	return vp, ok
}

// ScrollBy queues a scroll of the named viewport by n lines (negative
// scrolls up), applied at its next render.
func (st *RenderState) ScrollBy(name string, n int) {
	st.scrollReqs = append(st.scrollReqs, scrollRequest{name: name, kind: scrollBy, lines: n})
}

// ScrollToTop queues a scroll of the named viewport to the beginning.
func (st *RenderState) ScrollToTop(name string) {
	st.scrollReqs = append(st.scrollReqs, scrollRequest{name: name, kind: scrollToTop})
}

// ScrollToEnd queues a scroll of the named viewport to the end.
func (st *RenderState) ScrollToEnd(name string) {
	st.scrollReqs = append(st.scrollReqs, scrollRequest{name: name, kind: scrollToEnd})
}

// takeScrollRequests removes and returns the pending requests for a name,
// preserving order.
func (st *RenderState) takeScrollRequests(name string) []scrollRequest {
	var taken, rest []scrollRequest
	for _, req := range st.scrollReqs {
		if req.name == name {
			taken = append(taken, req)
		} else {
			rest = append(rest, req)
		}
	}
	st.scrollReqs = rest
	return taken
}

// RequestVisible asks that the named extent be scrolled on screen the next
// time an enclosing viewport renders.
func (st *RenderState) RequestVisible(name string) {
	st.visibilityRq[name] = struct{}{}
}

// VisibilityRequested reports whether visibility was requested for a name.
func (st *RenderState) VisibilityRequested(name string) bool {
	_, ok := st.visibilityRq[name]
	return ok
}

// Extent returns the recorded screen extent for a name. Extents are
// recorded by the top-level driver as layers render; when several layers
// report the same name, the topmost layer's extent wins.
func (st *RenderState) Extent(name string) (Extent, bool) {
	e, ok := st.extents[name]
	return e, ok
}

// Clickables returns the screen extents of clickable widgets rendered this
// pass, in render order.
func (st *RenderState) Clickables() []Extent {
	return st.clickables
}

// ClickedName returns the name of the topmost clickable region containing
// (x, y), if any. Later entries render on top, so the list is scanned in
// reverse.
func (st *RenderState) ClickedName(x, y int) (string, bool) {
	for i := len(st.clickables) - 1; i >= 0; i-- {
		e := st.clickables[i]
		if x >= e.X && x < e.X+e.Width && y >= e.Y && y < e.Y+e.Height {
			return e.Name, true
		}
	}
	return "", false
}

// InvalidateCache drops the cached render result for a name.
func (st *RenderState) InvalidateCache(name string) {
	delete(st.cache, name)
}

// InvalidateCacheAll drops every cached render result.
func (st *RenderState) InvalidateCacheAll() {
	st.cache = make(map[string]Result)
}

// resetFrame clears per-frame bookkeeping while keeping viewport positions
// and the render cache, which are meaningful across frames.
func (st *RenderState) resetFrame() {
	st.observed = make(map[string]int)
	st.clickNames = make(map[string]struct{})
	st.clickables = nil
	st.extents = make(map[string]Extent)
}
