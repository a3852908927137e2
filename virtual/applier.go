package virtual

// Bounds returns the inclusive item window pos resolves to, clamped to items.
// ok is false for a waiting position. An empty window has end < start.
func Bounds(pos Position, items []Item) (start, end int, ok bool) {
	last := len(items) - 1
	switch pos.Kind {
	case KindIndex:
		start = min(max(pos.StartIndex, 0), max(last, 0))
		end = min(pos.EndIndex, last)
		return start, end, true
	case KindShift:
		first, lastMounted := mountedRange(pos.Cells, items)
		if first < 0 {
			return 0, -1, true
		}
		start = min(max(first-pos.StartShift, 0), max(last, 0))
		end = min(max(lastMounted+pos.EndShift, start-1), last)
		return start, end, true
	}
	return 0, -1, false
}

// Apply writes the geometry of every loaded, displayed cell that falls out of
// the window into cache and returns those cells. The caller unmounts them.
//
// A cell is never returned without its geometry being cached first. A nil
// cache records nothing; the removed cells are still returned.
func Apply(pos Position, cache *Cache, items []Item) []CellSnapshot {
	start, end, ok := Bounds(pos, items)
	if !ok {
		return nil
	}

	keep := make(map[string]struct{}, max(end-start+1, 0))
	for i := start; i <= end; i++ {
		keep[items[i].ID()] = struct{}{}
	}

	var removed []CellSnapshot
	for _, cell := range pos.Cells {
		if _, ok := keep[cell.ID]; ok {
			continue
		}
		if !CellIsRendered(cell) {
			continue
		}
		cache.put(cell.ID, cell.Offset)
		removed = append(removed, cell)
	}
	return removed
}
