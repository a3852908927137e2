package virtual

import "strconv"

type testItem string

func (i testItem) ID() string { return string(i) }

func makeItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = testItem(strconv.Itoa(i))
	}
	return items
}

// stack returns rendered snapshots for items[start..end], each height rows
// tall and stacked without gaps, as seen from a viewport at the origin
// scrolled to scrollTop.
func stack(items []Item, start, end, height, scrollTop int) []CellSnapshot {
	cells := make([]CellSnapshot, 0, end-start+1)
	for i := start; i <= end; i++ {
		top := i * height
		cells = append(cells, CellSnapshot{
			ID:     items[i].ID(),
			Loaded: true,
			Rect:   Rect{X: 0, Y: top - scrollTop, Width: 10, Height: height},
			Offset: Size{Width: 10, Height: height, OffsetTop: top},
		})
	}
	return cells
}

func fixedHeights(heights map[string]int, fallback int) MeasureFunc {
	return func(item Item, width int) Measurement {
		h, ok := heights[item.ID()]
		if !ok {
			h = fallback
		}
		return Measurement{Height: h, Loaded: true}
	}
}
