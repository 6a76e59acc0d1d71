package grout

// ScrollbarConfig controls whether and how viewports draw a scrollbar.
type ScrollbarConfig struct {
	Show  bool
	Track rune
	Thumb rune
}

// DefaultScrollbar returns a visible scrollbar configuration.
func DefaultScrollbar() ScrollbarConfig {
	return ScrollbarConfig{Show: true, Track: '│', Thumb: '█'}
}

// Context carries the immutable, tree-scoped rendering parameters. A
// widget never mutates the context it receives; to constrain or restyle
// its children it derives a new one with the With* methods and recurses.
type Context struct {
	availWidth   int
	availHeight  int
	windowWidth  int
	windowHeight int
	attrPath     []string
	attrMap      AttrMap
	borderGlyphs BorderStyle
	dynBorders   bool
	scrollbar    ScrollbarConfig
}

// NewContext creates a context for rendering into a width x height
// rectangle, with window size equal to the available size.
func NewContext(width, height int, am AttrMap) Context {
	return Context{
		availWidth:   width,
		availHeight:  height,
		windowWidth:  width,
		windowHeight: height,
		attrMap:      am,
		borderGlyphs: BorderSingle,
	}
}

// AvailWidth returns the remaining drawable width, clamped to zero.
// Derivations may push the stored value negative; consumers always see 0.
func (c Context) AvailWidth() int {
	return max(c.availWidth, 0)
}

// AvailHeight returns the remaining drawable height, clamped to zero.
func (c Context) AvailHeight() int {
	return max(c.availHeight, 0)
}

// WindowWidth returns the full layer width, for scroll-aware widgets.
func (c Context) WindowWidth() int {
	return c.windowWidth
}

// WindowHeight returns the full layer height.
func (c Context) WindowHeight() int {
	return c.windowHeight
}

// BorderGlyphs returns the active border glyph set.
func (c Context) BorderGlyphs() BorderStyle {
	return c.borderGlyphs
}

// DynBorders reports whether widgets should emit joinable border cells.
func (c Context) DynBorders() bool {
	return c.dynBorders
}

// Scrollbar returns the scrollbar configuration.
func (c Context) Scrollbar() ScrollbarConfig {
	return c.scrollbar
}

// Attr resolves the context's current attribute path to a display style.
func (c Context) Attr() Style {
	return c.attrMap.Resolve(c.attrPath)
}

// AttrNamed resolves the current path extended with name.
func (c Context) AttrNamed(name string) Style {
	return c.attrMap.Resolve(append(c.attrPath[:len(c.attrPath):len(c.attrPath)], name))
}

// WithAvailWidth returns a context with the available width replaced.
func (c Context) WithAvailWidth(w int) Context {
	c.availWidth = w
	return c
}

// WithAvailHeight returns a context with the available height replaced.
func (c Context) WithAvailHeight(h int) Context {
	c.availHeight = h
	return c
}

// WithAvail returns a context with both available dimensions replaced.
func (c Context) WithAvail(w, h int) Context {
	c.availWidth = w
	c.availHeight = h
	return c
}

// WithAttr returns a context whose attribute path is extended with name.
func (c Context) WithAttr(name string) Context {
	c.attrPath = append(c.attrPath[:len(c.attrPath):len(c.attrPath)], name)
	return c
}

// WithBorderGlyphs returns a context drawing borders with the given glyphs.
func (c Context) WithBorderGlyphs(bs BorderStyle) Context {
	c.borderGlyphs = bs
	return c
}

// WithDynBorders returns a context with border joining toggled.
func (c Context) WithDynBorders(on bool) Context {
	c.dynBorders = on
	return c
}

// WithScrollbar returns a context with the scrollbar configuration replaced.
func (c Context) WithScrollbar(cfg ScrollbarConfig) Context {
	c.scrollbar = cfg
	return c
}
