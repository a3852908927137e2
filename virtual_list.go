package tview

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/xqrs/tview/keybind"
	"github.com/xqrs/tview/virtual"
)

// VirtualListItem is a primitive the list can measure for a given width. IDs
// must be unique within one list.
type VirtualListItem interface {
	Primitive
	ID() string
	Height(width int) int
}

// VirtualListLoader is implemented by items that finish loading after they
// are mounted. While any mounted item is not loaded, the list keeps its
// window and polls again on the next frame.
type VirtualListLoader interface {
	Loaded() bool
}

// VirtualListHider is implemented by items that can stay mounted without
// being displayed. Hidden items take no rows.
type VirtualListHider interface {
	Hidden() bool
}

// VirtualListKeyMap holds the keys the list reacts to while focused.
type VirtualListKeyMap struct {
	Up       keybind.Keybind
	Down     keybind.Keybind
	PageUp   keybind.Keybind
	PageDown keybind.Keybind
	Top      keybind.Keybind
	Bottom   keybind.Keybind
}

// DefaultVirtualListKeyMap returns arrow, page, and vi style keys.
func DefaultVirtualListKeyMap() VirtualListKeyMap {
	return VirtualListKeyMap{
		Up:       keybind.NewKeybind(keybind.WithKeys("up", "k"), keybind.WithHelp("↑/k", "up")),
		Down:     keybind.NewKeybind(keybind.WithKeys("down", "j"), keybind.WithHelp("↓/j", "down")),
		PageUp:   keybind.NewKeybind(keybind.WithKeys("pgup", "ctrl+b"), keybind.WithHelp("pgup", "page up")),
		PageDown: keybind.NewKeybind(keybind.WithKeys("pgdn", "ctrl+f"), keybind.WithHelp("pgdn", "page down")),
		Top:      keybind.NewKeybind(keybind.WithKeys("home", "g"), keybind.WithHelp("g/home", "top")),
		Bottom:   keybind.NewKeybind(keybind.WithKeys("end", "G"), keybind.WithHelp("G/end", "bottom")),
	}
}

// ShortHelp returns the keys shown in a one-line help bar.
func (k VirtualListKeyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.Up, k.Down, k.Top, k.Bottom}
}

// FullHelp returns the keys grouped by column.
func (k VirtualListKeyMap) FullHelp() [][]keybind.Keybind {
	return [][]keybind.Keybind{
		{k.Up, k.Down},
		{k.PageUp, k.PageDown},
		{k.Top, k.Bottom},
	}
}

// VirtualList displays a long list of variable-height items, keeping only the
// items around the viewport mounted. Heights of items scrolled far away are
// remembered, so the scroll bar and scroll positions stay stable without
// measuring every item.
//
// Items are mounted and unmounted while drawing. Items still loading delay the
// next window change until they report Loaded, and the list asks for another
// frame through the function set with SetRedrawFunc (typically
// Application.RequestDraw).
//
// All methods must be called from the application's event loop, e.g. through
// Application.QueueUpdateDraw when items arrive from another goroutine.
type VirtualList struct {
	*Box

	items    []VirtualListItem
	window   *virtual.Window
	scroller *virtual.Scroller
	frames   *virtual.FrameSync
	redraw   func()

	scrollBar     *ScrollBar
	showScrollBar bool

	keyMap    VirtualListKeyMap
	wheelStep int

	logger zerolog.Logger

	selected func(item VirtualListItem)
	changed  func(start, end int)

	last       virtual.Update
	viewport   virtual.Rect
	placements []virtual.Placement
}

// NewVirtualList returns an empty list.
func NewVirtualList() *VirtualList {
	l := &VirtualList{
		Box:           NewBox(),
		frames:        virtual.NewFrameSync(virtual.DefaultFrameInterval),
		scrollBar:     NewScrollBar(),
		showScrollBar: true,
		keyMap:        DefaultVirtualListKeyMap(),
		wheelStep:     3,
		logger:        zerolog.Nop(),
	}
	l.window = virtual.NewWindow(virtual.Config{BufferSize: virtual.DefaultBufferSize}, virtual.WithLogger(l.logger))
	l.scroller = virtual.NewScroller(l.window, l.measure)
	l.scrollBar.SetStyles(
		tcell.StyleDefault.Dim(true),
		tcell.StyleDefault.Foreground(Styles.GraphicsColor),
		tcell.StyleDefault.Dim(true),
	)
	return l
}

// SetBufferSize sets how many items beyond the visible ones stay mounted on
// each side. Values below virtual.MinBufferSize are raised to it.
func (l *VirtualList) SetBufferSize(size int) *VirtualList {
	config := l.window.Config()
	config.BufferSize = size
	l.window.SetConfig(config)
	return l
}

// SetInverseLoading makes the list start at its end and keep following it as
// items are appended, like a chat log.
func (l *VirtualList) SetInverseLoading(inverse bool) *VirtualList {
	config := l.window.Config()
	config.InverseLoading = inverse
	l.window.SetConfig(config)
	if inverse {
		l.scroller.ScrollToEnd()
	}
	return l
}

// SetGap sets the number of blank rows between items.
func (l *VirtualList) SetGap(gap int) *VirtualList {
	l.scroller.SetGap(gap)
	return l
}

// SetEstimatedItemHeight sets the height assumed for items that were never
// mounted.
func (l *VirtualList) SetEstimatedItemHeight(height int) *VirtualList {
	l.scroller.SetEstimate(height)
	return l
}

// SetLogger sets the logger window changes are reported to.
func (l *VirtualList) SetLogger(logger zerolog.Logger) *VirtualList {
	l.logger = logger
	l.window.SetLogger(logger)
	return l
}

// SetFrameInterval sets the minimum time between two frames requested by the
// list itself.
func (l *VirtualList) SetFrameInterval(interval time.Duration) *VirtualList {
	l.frames.Cancel()
	l.frames = virtual.NewFrameSync(interval)
	return l
}

// SetRedrawFunc sets the function called when the list needs another frame.
func (l *VirtualList) SetRedrawFunc(redraw func()) *VirtualList {
	if redraw == nil {
		l.frames.Cancel()
	}
	l.redraw = redraw
	return l
}

// SetScrollBarVisible toggles the scroll bar in the rightmost column.
func (l *VirtualList) SetScrollBarVisible(visible bool) *VirtualList {
	l.showScrollBar = visible
	return l
}

// ScrollBar returns the scroll bar for styling.
func (l *VirtualList) ScrollBar() *ScrollBar {
	return l.scrollBar
}

// SetKeyMap replaces the navigation keys.
func (l *VirtualList) SetKeyMap(keyMap VirtualListKeyMap) *VirtualList {
	l.keyMap = keyMap
	return l
}

// KeyMap returns the navigation keys.
func (l *VirtualList) KeyMap() VirtualListKeyMap {
	return l.keyMap
}

// SetSelectedFunc sets a handler called when an item is clicked.
func (l *VirtualList) SetSelectedFunc(handler func(item VirtualListItem)) *VirtualList {
	l.selected = handler
	return l
}

// SetChangedFunc sets a handler called when the mounted range changes.
func (l *VirtualList) SetChangedFunc(handler func(start, end int)) *VirtualList {
	l.changed = handler
	return l
}

// SetItems replaces all items.
func (l *VirtualList) SetItems(items []VirtualListItem) *VirtualList {
	l.items = items
	l.scroller.SetItems(virtualItems(items))
	return l
}

// AppendItems adds items at the end. With inverse loading, the list keeps
// showing the end if it did before.
func (l *VirtualList) AppendItems(items ...VirtualListItem) *VirtualList {
	l.items = append(l.items, items...)
	l.scroller.AppendItems(virtualItems(items)...)
	return l
}

// Items returns all items.
func (l *VirtualList) Items() []VirtualListItem {
	return l.items
}

// ScrollTo scrolls the item with the given id into view. Unknown ids scroll
// to the start.
func (l *VirtualList) ScrollTo(id string, align virtual.Align) *VirtualList {
	l.scroller.ScrollTo(id, align)
	return l
}

// ScrollToStart scrolls to the first item.
func (l *VirtualList) ScrollToStart() *VirtualList {
	l.scroller.ScrollToStart()
	return l
}

// ScrollToEnd scrolls to the last item.
func (l *VirtualList) ScrollToEnd() *VirtualList {
	l.scroller.ScrollToEnd()
	return l
}

// ScrollTop returns the number of content rows above the viewport.
func (l *VirtualList) ScrollTop() int {
	return l.scroller.ScrollTop()
}

// MountedRange returns the inclusive range of mounted item indices. end < start
// when nothing is mounted.
func (l *VirtualList) MountedRange() (start, end int) {
	return l.window.Range()
}

// IsMounted reports whether the item with the given id is mounted.
func (l *VirtualList) IsMounted(id string) bool {
	return l.scroller.Mounted(id)
}

// LastUpdate returns the outcome of the last window update.
func (l *VirtualList) LastUpdate() virtual.Update {
	return l.last
}

// Window returns the window manager backing the list.
func (l *VirtualList) Window() *virtual.Window {
	return l.window
}

func (l *VirtualList) measure(item virtual.Item, width int) virtual.Measurement {
	listItem := item.(VirtualListItem)
	m := virtual.Measurement{Loaded: true}
	if loader, ok := listItem.(VirtualListLoader); ok {
		m.Loaded = loader.Loaded()
	}
	if hider, ok := listItem.(VirtualListHider); ok && hider.Hidden() {
		m.Hidden = true
		return m
	}
	m.Height = max(listItem.Height(width), 0)
	return m
}

// Draw draws this primitive onto the screen.
func (l *VirtualList) Draw(screen tcell.Screen) {
	l.DrawForSubclass(screen, l)

	x, y, width, height := l.GetInnerRect()
	if width <= 0 || height <= 0 {
		l.placements = nil
		return
	}

	listWidth := width
	if l.showScrollBar && width > 1 {
		listWidth--
	}
	l.viewport = virtual.Rect{X: x, Y: y, Width: listWidth, Height: height}

	start, end := l.window.Range()
	l.scroller.SetViewport(l.viewport)
	l.last = l.scroller.Sync()
	if newStart, newEnd := l.window.Range(); l.changed != nil && (newStart != start || newEnd != end) {
		l.changed(newStart, newEnd)
	}
	switch {
	case l.last.Position.Kind == virtual.KindWaiting:
		l.requestFrame()
	case l.last.Changed:
		// Still moving after the settle limit; continue on the next frame.
		l.logger.Debug().
			Int("start", l.last.Start).
			Int("end", l.last.End).
			Msg("window did not settle")
		l.requestFrame()
	}

	l.placements = l.scroller.Placements()
	clipped := newClippedScreen(screen, x, y, listWidth, height)
	for _, placement := range l.placements {
		if placement.Hidden || placement.Height <= 0 {
			continue
		}
		if placement.Row+placement.Height <= 0 || placement.Row >= height {
			continue
		}
		item := placement.Item.(VirtualListItem)
		item.SetRect(x, y+placement.Row, listWidth, placement.Height)
		item.Draw(clipped)
	}

	if listWidth < width {
		l.scrollBar.SetRect(x+listWidth, y, 1, height)
		l.scrollBar.SetPosition(l.scroller.ScrollHeight(), height, l.scroller.ScrollTop())
		l.scrollBar.Draw(screen)
	}
}

func (l *VirtualList) requestFrame() {
	if l.redraw == nil {
		return
	}
	l.frames.Perform(l.redraw, nil)
}

// InputHandler scrolls the list.
func (l *VirtualList) InputHandler(event *tcell.EventKey) Command {
	_, _, _, height := l.GetInnerRect()
	page := max(height-1, 1)
	switch {
	case keybind.Matches(event, l.keyMap.Up):
		l.scroller.ScrollBy(-1)
	case keybind.Matches(event, l.keyMap.Down):
		l.scroller.ScrollBy(1)
	case keybind.Matches(event, l.keyMap.PageUp):
		l.scroller.ScrollBy(-page)
	case keybind.Matches(event, l.keyMap.PageDown):
		l.scroller.ScrollBy(page)
	case keybind.Matches(event, l.keyMap.Top):
		l.scroller.ScrollToStart()
	case keybind.Matches(event, l.keyMap.Bottom):
		l.scroller.ScrollToEnd()
	default:
		return nil
	}
	return ScrollCommand{Top: l.scroller.ScrollTop()}
}

// MouseHandler focuses the list on press, selects items on click, jumps on
// scroll bar clicks, and scrolls on wheel events.
func (l *VirtualList) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	if !l.InRect(x, y) {
		return nil, nil
	}

	switch action {
	case MouseLeftDown:
		return nil, SetFocusCommand{Target: l}
	case MouseLeftClick:
		if l.inScrollBar(x, y) {
			top, ok := l.scrollBar.TrackClick(y)
			if !ok {
				return nil, nil
			}
			l.scroller.SetScrollTop(top)
			return nil, ScrollCommand{Top: l.scroller.ScrollTop()}
		}
		item := l.itemAt(x, y)
		if item == nil {
			return nil, nil
		}
		if l.selected != nil {
			l.selected(item)
		}
		return nil, RedrawCommand{}
	case MouseScrollUp:
		l.scroller.ScrollBy(-l.wheelStep)
		return nil, ScrollCommand{Top: l.scroller.ScrollTop()}
	case MouseScrollDown:
		l.scroller.ScrollBy(l.wheelStep)
		return nil, ScrollCommand{Top: l.scroller.ScrollTop()}
	}
	return nil, nil
}

func (l *VirtualList) inScrollBar(x, y int) bool {
	if l.viewport.Width <= 0 {
		return false
	}
	_, _, width, _ := l.GetInnerRect()
	return l.viewport.Width < width && x == l.viewport.Right() && y >= l.viewport.Top() && y < l.viewport.Bottom()
}

// itemAt returns the displayed item at screen position x, y, or nil.
func (l *VirtualList) itemAt(x, y int) VirtualListItem {
	if x < l.viewport.Left() || x >= l.viewport.Right() || y < l.viewport.Top() || y >= l.viewport.Bottom() {
		return nil
	}
	row := y - l.viewport.Y
	for _, placement := range l.placements {
		if placement.Hidden {
			continue
		}
		if row >= placement.Row && row < placement.Row+placement.Height {
			return placement.Item.(VirtualListItem)
		}
	}
	return nil
}

func virtualItems(items []VirtualListItem) []virtual.Item {
	out := make([]virtual.Item, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

var _ Primitive = &VirtualList{}
