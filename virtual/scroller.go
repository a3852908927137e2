package virtual

// MaxSettleCycles bounds the number of cycles Scroller.Sync runs before
// giving up on reaching a stable window within one call.
const MaxSettleCycles = 64

// Measurement describes a mounted item at the current viewport width.
type Measurement struct {
	Height int
	Loaded bool
	Hidden bool
}

// MeasureFunc measures a mounted item. It is only called for mounted items.
type MeasureFunc func(item Item, width int) Measurement

// Placement locates a mounted item relative to the top of the viewport.
type Placement struct {
	Index  int
	Item   Item
	Row    int
	Height int
	Hidden bool
}

// Scroller is the bookkeeping shared by rendering components: it owns the
// item list, the scroll position and the set of mounted items, and drives a
// Window until the mounted set is stable.
//
// The scroll position is stored as an anchor (item id and offset into
// it), so that items above the viewport changing height after they are
// measured do not make the content jump.
type Scroller struct {
	window  *Window
	measure MeasureFunc

	items    []Item
	viewport Rect
	gap      int
	estimate int

	anchor       string
	anchorOffset int
	scrollTop    int
	atEnd        bool

	mounted map[string]struct{}
	layout  *Layout

	target *scrollTarget
}

type scrollTarget struct {
	id    string
	align Align
}

// ScrollerOption configures a Scroller.
type ScrollerOption func(*Scroller)

// WithGap sets the spacing between consecutive items.
func WithGap(gap int) ScrollerOption {
	return func(s *Scroller) {
		s.gap = max(gap, 0)
	}
}

// WithEstimate sets the height assumed for items that were never mounted.
func WithEstimate(height int) ScrollerOption {
	return func(s *Scroller) {
		s.estimate = max(height, 1)
	}
}

// NewScroller returns a scroller with no items.
func NewScroller(window *Window, measure MeasureFunc, opts ...ScrollerOption) *Scroller {
	s := &Scroller{
		window:   window,
		measure:  measure,
		estimate: 1,
		mounted:  make(map[string]struct{}),
		atEnd:    window.Config().InverseLoading,
	}
	for _, opt := range opts {
		opt(s)
	}
	window.SetEstimator(s.estimateSize)
	window.SetLocator(s.estimateSize)
	s.relayout()
	return s
}

// Window returns the underlying window.
func (s *Scroller) Window() *Window {
	return s.window
}

// Items returns the item list.
func (s *Scroller) Items() []Item {
	return s.items
}

// SetItems replaces the item list. Mounted items that are no longer present
// are dropped on the next Sync.
func (s *Scroller) SetItems(items []Item) {
	s.items = items
	s.relayout()
}

// AppendItems adds items at the end.
func (s *Scroller) AppendItems(items ...Item) {
	s.items = append(s.items, items...)
	s.relayout()
}

// SetGap sets the spacing between consecutive items.
func (s *Scroller) SetGap(gap int) {
	s.gap = max(gap, 0)
	s.relayout()
}

// SetEstimate sets the height assumed for items that were never mounted.
func (s *Scroller) SetEstimate(height int) {
	s.estimate = max(height, 1)
	s.relayout()
}

// SetViewport sets the viewport rectangle. A width change invalidates every
// cached height, so the window's cache is reset.
func (s *Scroller) SetViewport(rect Rect) {
	if rect.Width != s.viewport.Width && s.viewport.Width > 0 {
		s.window.Reset()
	}
	s.viewport = rect
	s.relayout()
}

// ClientRect implements Viewport.
func (s *Scroller) ClientRect() Rect {
	return s.viewport
}

// ScrollTop implements Viewport.
func (s *Scroller) ScrollTop() int {
	return s.scrollTop
}

// ScrollHeight returns the content height as currently laid out.
func (s *Scroller) ScrollHeight() int {
	return s.layout.ScrollHeight()
}

// AtEnd reports whether the viewport shows the end of the content.
func (s *Scroller) AtEnd() bool {
	return s.atEnd
}

// SetScrollTop scrolls to an absolute position, clamped to the content.
func (s *Scroller) SetScrollTop(top int) {
	s.target = nil
	s.setScrollTop(top)
	s.atEnd = s.scrollTop >= s.layout.MaxScrollTop(s.viewport.Height)
}

// ScrollBy scrolls by delta rows; positive values scroll down.
func (s *Scroller) ScrollBy(delta int) {
	s.SetScrollTop(s.scrollTop + delta)
}

// ScrollToStart scrolls to the first item.
func (s *Scroller) ScrollToStart() {
	s.SetScrollTop(0)
}

// ScrollToEnd scrolls to the last item. The target is re-evaluated while the
// remaining items are measured.
func (s *Scroller) ScrollToEnd() {
	if len(s.items) == 0 {
		s.SetScrollTop(0)
		return
	}
	s.ScrollTo(s.items[len(s.items)-1].ID(), AlignEnd)
}

// ScrollTo scrolls id into view. The target is re-evaluated during Sync as
// items around it get measured. An unknown id scrolls to the start.
func (s *Scroller) ScrollTo(id string, align Align) {
	s.target = &scrollTarget{id: id, align: align}
	s.setScrollTop(s.layout.ScrollTarget(id, align, s.viewport.Height, s.scrollTop))
}

// Layout returns the current layout.
func (s *Scroller) Layout() *Layout {
	return s.layout
}

// Mounted reports whether the item with the given id is mounted.
func (s *Scroller) Mounted(id string) bool {
	_, ok := s.mounted[id]
	return ok
}

// MountedCount returns the number of mounted items.
func (s *Scroller) MountedCount() int {
	return len(s.mounted)
}

// Placements returns the mounted items in order with their rows relative to
// the top of the viewport. Rows may be negative or past the viewport for
// items in the buffer zone.
func (s *Scroller) Placements() []Placement {
	placements := make([]Placement, 0, len(s.mounted))
	for i, item := range s.items {
		if !s.Mounted(item.ID()) {
			continue
		}
		m := s.measure(item, s.viewport.Width)
		placements = append(placements, Placement{
			Index:  i,
			Item:   item,
			Row:    s.layout.Offset(i) - s.scrollTop,
			Height: s.layout.Height(i),
			Hidden: m.Hidden,
		})
	}
	return placements
}

// Sync runs resolution cycles until the mounted window is stable, a cell is
// still loading, or MaxSettleCycles is reached. It returns the last update.
func (s *Scroller) Sync() Update {
	var update Update
	for cycle := 0; cycle < MaxSettleCycles; cycle++ {
		update = s.step()
		if update.Position.Kind == KindWaiting {
			break
		}
		s.relayout()
		if s.target != nil {
			top := s.layout.ScrollTarget(s.target.id, s.target.align, s.viewport.Height, s.scrollTop)
			if top != s.scrollTop {
				s.setScrollTop(top)
				continue
			}
		}
		if !update.Changed {
			s.target = nil
			break
		}
	}
	s.atEnd = s.scrollTop >= s.layout.MaxScrollTop(s.viewport.Height)
	return update
}

func (s *Scroller) step() Update {
	cells := make([]Cell, 0, len(s.mounted))
	first, last := -1, -1
	for i, item := range s.items {
		if !s.Mounted(item.ID()) {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
		cells = append(cells, s.cell(i, item))
	}

	startPadding, endPadding := 0, 0
	if first >= 0 {
		startPadding, endPadding = s.layout.Padding(first, last)
	}

	update := s.window.Update(Capture(s, cells), s.items, startPadding, endPadding)
	if update.Position.Kind != KindWaiting {
		s.mount(update.Start, update.End)
	}
	return update
}

func (s *Scroller) mount(start, end int) {
	mounted := make(map[string]struct{}, max(end-start+1, 0))
	for i := start; i <= end && i < len(s.items); i++ {
		mounted[s.items[i].ID()] = struct{}{}
	}
	s.mounted = mounted
}

func (s *Scroller) cell(index int, item Item) Cell {
	m := s.measure(item, s.viewport.Width)
	offset := s.layout.Size(index, s.viewport.Width)
	return scrollerCell{
		id:     item.ID(),
		loaded: m.Loaded,
		hidden: m.Hidden,
		offset: offset,
		rect: Rect{
			X:      s.viewport.X,
			Y:      s.viewport.Y + offset.OffsetTop - s.scrollTop,
			Width:  s.viewport.Width,
			Height: offset.Height,
		},
	}
}

// relayout recomputes offsets and restores the scroll position from the
// anchor. When following the end, the position sticks to the end instead.
func (s *Scroller) relayout() {
	s.layout = s.window.Layout(s.items, func(item Item) (int, bool) {
		if !s.Mounted(item.ID()) {
			return 0, false
		}
		m := s.measure(item, s.viewport.Width)
		if m.Hidden {
			return 0, true
		}
		return m.Height, true
	}, s.estimate, s.gap)

	if s.window.Config().InverseLoading && s.atEnd && s.target == nil {
		s.setScrollTop(s.layout.MaxScrollTop(s.viewport.Height))
		return
	}
	if i := s.layout.IndexOf(s.anchor); i >= 0 {
		s.setScrollTop(s.layout.Offset(i) + s.anchorOffset)
		return
	}
	s.setScrollTop(s.scrollTop)
}

func (s *Scroller) setScrollTop(top int) {
	top = min(max(top, 0), s.layout.MaxScrollTop(s.viewport.Height))
	s.scrollTop = top
	s.anchor, s.anchorOffset = "", 0
	if i := s.layout.ItemAt(top); i >= 0 {
		s.anchor = s.items[i].ID()
		s.anchorOffset = top - s.layout.Offset(i)
	}
}

// estimateSize places an item by the current layout, which uses cached
// heights for unmounted items and the estimated height for items never
// measured.
func (s *Scroller) estimateSize(id string) (Size, bool) {
	i := s.layout.IndexOf(id)
	if i < 0 {
		return Size{}, false
	}
	return s.layout.Size(i, s.viewport.Width), true
}

type scrollerCell struct {
	id     string
	loaded bool
	hidden bool
	rect   Rect
	offset Size
}

func (c scrollerCell) ID() string       { return c.id }
func (c scrollerCell) Loaded() bool     { return c.loaded }
func (c scrollerCell) Hidden() bool     { return c.hidden }
func (c scrollerCell) ClientRect() Rect { return c.rect }
func (c scrollerCell) Offset() Size     { return c.offset }
