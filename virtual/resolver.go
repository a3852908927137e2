package virtual

// Estimator supplies geometry, in content coordinates, for items that are
// neither mounted nor cached.
type Estimator func(id string) (Size, bool)

// ResolveInput is everything Resolve reads. Cells must be contiguous and in
// item order.
type ResolveInput struct {
	Cells []CellSnapshot
	Items []Item
	Cache *Cache

	// StartPadding and EndPadding are the extents of the placeholder regions
	// standing in for unmounted items before and after the window.
	StartPadding int
	EndPadding   int

	// BufferSize is the number of extra items kept mounted beyond the visible
	// region on each end. Negative values are treated as zero.
	BufferSize int

	ScrollTop int
	Viewport  Rect

	// InverseLoading keeps the window extended to the last item, for lists
	// that grow at the end while anchored there.
	InverseLoading bool

	// Estimate, if set, places items that were never measured. Without it
	// such items count as not visible and have no known position.
	Estimate Estimator

	// Locate, if set, gives the current offsets of cached items. The cached
	// height is kept. Callers whose content moves when items above a cached
	// one get measured use it so that the search does not rank stale offsets.
	Locate Estimator
}

// Resolve computes the next window.
//
// It returns Waiting while any cell is still loading. When the scroll position
// re-entered a region represented only by padding, or nothing is mounted yet,
// the window is searched from scratch (KindIndex). Otherwise the mounted
// window is shifted by the number of cells that left or entered the buffer
// zone at each end (KindShift).
func Resolve(in ResolveInput) Position {
	for _, cell := range in.Cells {
		if !cell.Loaded {
			return Waiting()
		}
	}

	buffer := max(in.BufferSize, 0)
	if len(in.Cells) == 0 || reenteredStart(in) || reenteredEnd(in) {
		return searchIndex(in, buffer)
	}

	first, last := mountedRange(in.Cells, in.Items)
	if first < 0 {
		return searchIndex(in, buffer)
	}

	leading := 0
	for _, cell := range in.Cells {
		if cellVisible(cell, in.Viewport) {
			break
		}
		leading++
	}
	if leading == len(in.Cells) {
		// Nothing mounted intersects the viewport.
		return searchIndex(in, buffer)
	}
	trailing := 0
	for i := len(in.Cells) - 1; i >= 0; i-- {
		if cellVisible(in.Cells[i], in.Viewport) {
			break
		}
		trailing++
	}

	startShift := buffer - leading
	endShift := buffer - trailing
	if in.InverseLoading {
		endShift = len(in.Items) - 1 - last
	}
	return ShiftPosition(startShift, endShift, in.Cells)
}

func reenteredStart(in ResolveInput) bool {
	if in.StartPadding <= 0 || len(in.Cells) < 2 {
		return false
	}
	cell := in.Cells[1]
	return !cell.Hidden && in.ScrollTop < cell.Offset.OffsetTop
}

func reenteredEnd(in ResolveInput) bool {
	if in.EndPadding <= 0 || len(in.Cells) < 2 {
		return false
	}
	cell := in.Cells[len(in.Cells)-2]
	return !cell.Hidden && in.ScrollTop > cell.Offset.Bottom()
}

func searchIndex(in ResolveInput, buffer int) Position {
	last := len(in.Items) - 1
	if last < 0 {
		return IndexPosition(0, -1, in.Cells)
	}

	mounted := make(map[string]CellSnapshot, len(in.Cells))
	for _, cell := range in.Cells {
		mounted[cell.ID] = cell
	}

	closest := closestHiddenAbove(in, mounted)
	start := min(max(0, closest+1-buffer), last)

	end := last
	if !in.InverseLoading {
		end = scanForward(in, mounted, closest+1, last, buffer)
	}
	end = max(end, start)
	return IndexPosition(start, end, in.Cells)
}

// closestHiddenAbove returns the index of the item whose bottom edge is the
// closest one at or above the scroll top, or -1. Ties go to the later item.
func closestHiddenAbove(in ResolveInput, mounted map[string]CellSnapshot) int {
	best, bestBottom := -1, 0
	for i, item := range in.Items {
		size, ok := knownSize(in, mounted, item.ID())
		if !ok {
			continue
		}
		bottom := size.Bottom()
		if bottom > in.ScrollTop {
			continue
		}
		if best < 0 || bottom >= bestBottom {
			best, bestBottom = i, bottom
		}
	}
	return best
}

// scanForward walks from index from and stops once buffer consecutive items
// are not visible. The returned end index leaves buffer-1 more items past the
// stopping point.
func scanForward(in ResolveInput, mounted map[string]CellSnapshot, from, last, buffer int) int {
	invisible := 0
	for i := from; i <= last; i++ {
		if itemVisible(in, mounted, in.Items[i].ID()) {
			invisible = 0
			continue
		}
		invisible++
		if invisible >= buffer {
			return min(last, i+buffer-1)
		}
	}
	return last
}

// knownSize prefers live geometry over the cache, and the cache over the
// estimate. Mounted cells are never estimated. Cached sizes take their offsets
// from Locate when it knows the item.
func knownSize(in ResolveInput, mounted map[string]CellSnapshot, id string) (Size, bool) {
	cell, isMounted := mounted[id]
	if isMounted && CellIsRendered(cell) {
		return cell.Offset, true
	}
	if size, ok := in.Cache.Get(id); ok {
		if in.Locate != nil {
			if placed, ok := in.Locate(id); ok {
				size.OffsetTop, size.OffsetLeft = placed.OffsetTop, placed.OffsetLeft
			}
		}
		return size, true
	}
	if in.Estimate != nil && !isMounted {
		return in.Estimate(id)
	}
	return Size{}, false
}

func itemVisible(in ResolveInput, mounted map[string]CellSnapshot, id string) bool {
	if cell, ok := mounted[id]; ok && CellIsRendered(cell) {
		return IsRenderedCellVisible(cell, in.Viewport)
	}
	if size, ok := knownSize(in, mounted, id); ok {
		return IsVirtualSizeCellVisible(size, in.ScrollTop, in.Viewport)
	}
	return false
}

func cellVisible(cell CellSnapshot, viewport Rect) bool {
	return CellIsRendered(cell) && IsRenderedCellVisible(cell, viewport)
}

// mountedRange locates the first and last cell in items. It returns -1, -1
// when no cell belongs to items anymore.
func mountedRange(cells []CellSnapshot, items []Item) (int, int) {
	if len(cells) == 0 {
		return -1, -1
	}
	ids := make(map[string]struct{}, len(cells))
	for _, cell := range cells {
		ids[cell.ID] = struct{}{}
	}
	first, last := -1, -1
	for i, item := range items {
		if _, ok := ids[item.ID()]; !ok {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	return first, last
}
