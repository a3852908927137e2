package virtual

// Rect is an axis-aligned rectangle in client (viewport-relative) coordinates.
type Rect struct {
	X, Y, Width, Height int
}

// Top returns the top edge.
func (r Rect) Top() int { return r.Y }

// Bottom returns the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Left returns the left edge.
func (r Rect) Left() int { return r.X }

// Right returns the right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Size is the geometry of an item in content coordinates, i.e. relative to the
// top of the scrollable content rather than to the viewport.
type Size struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	OffsetTop  int `yaml:"offset_top"`
	OffsetLeft int `yaml:"offset_left"`
}

// Bottom returns the bottom edge in content coordinates.
func (s Size) Bottom() int { return s.OffsetTop + s.Height }

// Item is an element of the ordered list backing a window. IDs must be unique
// within a list.
type Item interface {
	ID() string
}

// Cell is a live handle for a mounted item.
type Cell interface {
	// ID returns the ID of the item this cell renders.
	ID() string
	// Loaded reports whether the cell finished its initial load. Geometry of
	// cells that are not loaded is not trusted.
	Loaded() bool
	// Hidden reports whether the cell is mounted but not displayed.
	Hidden() bool
	// ClientRect returns the cell's bounds relative to the screen, in the same
	// coordinate space as Viewport.ClientRect.
	ClientRect() Rect
	// Offset returns the cell's geometry relative to the scrollable content.
	Offset() Size
}

// Viewport is the scroll container a window is rendered into.
type Viewport interface {
	ClientRect() Rect
	ScrollTop() int
}

// CellSnapshot is an immutable copy of a Cell taken during the read phase of
// a cycle.
type CellSnapshot struct {
	ID     string
	Loaded bool
	Hidden bool
	Rect   Rect
	Offset Size
}

// Frame is everything one resolution cycle reads from the rendering backend.
type Frame struct {
	Viewport  Rect
	ScrollTop int
	Cells     []CellSnapshot
}

// Capture reads the viewport and cells once. Cells must be passed in item
// order.
func Capture(viewport Viewport, cells []Cell) Frame {
	frame := Frame{
		Viewport:  viewport.ClientRect(),
		ScrollTop: viewport.ScrollTop(),
		Cells:     make([]CellSnapshot, 0, len(cells)),
	}
	for _, cell := range cells {
		frame.Cells = append(frame.Cells, Snapshot(cell))
	}
	return frame
}

// Snapshot copies a single cell.
func Snapshot(cell Cell) CellSnapshot {
	return CellSnapshot{
		ID:     cell.ID(),
		Loaded: cell.Loaded(),
		Hidden: cell.Hidden(),
		Rect:   cell.ClientRect(),
		Offset: cell.Offset(),
	}
}
