package virtual

import "sort"

// Align selects where ScrollTarget places an item within the viewport.
type Align uint8

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	// AlignNearest scrolls as little as possible to reveal the item. An item
	// taller than the viewport is aligned at its start unless it already
	// fills the viewport.
	AlignNearest
)

// Layout holds the content offsets of a list. Item i occupies
// [Offset(i), Offset(i)+Height(i)); consecutive items are separated by gap.
type Layout struct {
	offsets []int
	heights []int
	index   map[string]int
	total   int
}

// NewLayout computes offsets from per-item heights. Negative heights count as
// zero, which is what hidden items report.
func NewLayout(items []Item, height func(index int, item Item) int, gap int) *Layout {
	gap = max(gap, 0)
	l := &Layout{
		offsets: make([]int, len(items)),
		heights: make([]int, len(items)),
		index:   make(map[string]int, len(items)),
	}
	offset := 0
	for i, item := range items {
		if i > 0 {
			offset += gap
		}
		h := max(height(i, item), 0)
		l.offsets[i] = offset
		l.heights[i] = h
		l.index[item.ID()] = i
		offset += h
	}
	l.total = offset
	return l
}

// Len returns the number of items.
func (l *Layout) Len() int {
	return len(l.offsets)
}

// Offset returns the top of item i.
func (l *Layout) Offset(i int) int {
	if i < 0 || i >= len(l.offsets) {
		return 0
	}
	return l.offsets[i]
}

// Height returns the height of item i.
func (l *Layout) Height(i int) int {
	if i < 0 || i >= len(l.heights) {
		return 0
	}
	return l.heights[i]
}

// Size returns the content geometry of item i for the given width.
func (l *Layout) Size(i, width int) Size {
	return Size{Width: width, Height: l.Height(i), OffsetTop: l.Offset(i)}
}

// ScrollHeight returns the total content height.
func (l *Layout) ScrollHeight() int {
	return l.total
}

// MaxScrollTop returns the largest scroll top that still fills the viewport.
func (l *Layout) MaxScrollTop(viewportHeight int) int {
	return max(l.total-viewportHeight, 0)
}

// IndexOf returns the index of id, or -1.
func (l *Layout) IndexOf(id string) int {
	if i, ok := l.index[id]; ok {
		return i
	}
	return -1
}

// ItemAt returns the index of the item covering row, or the last item above
// it when row falls into a gap. It returns -1 for an empty layout.
func (l *Layout) ItemAt(row int) int {
	if len(l.offsets) == 0 {
		return -1
	}
	i := sort.Search(len(l.offsets), func(i int) bool {
		return l.offsets[i] > row
	})
	return max(i-1, 0)
}

// Padding returns the extents before and after the inclusive window
// [start, end]. An empty window pads the whole content at the start.
func (l *Layout) Padding(start, end int) (before, after int) {
	if end < start || len(l.offsets) == 0 {
		return l.total, 0
	}
	before = l.Offset(start)
	after = l.total - (l.Offset(end) + l.Height(end))
	return before, max(after, 0)
}

// ScrollTarget returns the scroll top that brings id into view with the given
// alignment, clamped to the scrollable range. An unknown id scrolls to the
// start of the list.
func (l *Layout) ScrollTarget(id string, align Align, viewportHeight, current int) int {
	i := l.IndexOf(id)
	if i < 0 {
		return 0
	}
	top, height := l.offsets[i], l.heights[i]

	var target int
	switch align {
	case AlignCenter:
		target = top - (viewportHeight-height)/2
	case AlignEnd:
		target = top + height - viewportHeight
	case AlignNearest:
		switch {
		case top <= current && top+height >= current+viewportHeight:
			// Already fills the viewport.
			target = current
		case top < current, height >= viewportHeight:
			target = top
		case top+height > current+viewportHeight:
			target = top + height - viewportHeight
		default:
			target = current
		}
	default:
		target = top
	}
	return min(max(target, 0), l.MaxScrollTop(viewportHeight))
}
