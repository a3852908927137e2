package virtual

// CellIsRendered reports whether a cell finished loading and is displayed.
func CellIsRendered(cell CellSnapshot) bool {
	return cell.Loaded && !cell.Hidden
}

// IsRenderedCellVisible reports whether a mounted cell intersects the
// viewport. On each axis at least one of the cell's two edges must fall within
// the viewport span, bounds included.
//
// A cell that overflows the viewport on both sides of an axis has no edge
// inside it and is reported as not visible.
func IsRenderedCellVisible(cell CellSnapshot, viewport Rect) bool {
	r := cell.Rect
	vertical := between(r.Top(), viewport.Top(), viewport.Bottom()) ||
		between(r.Bottom(), viewport.Top(), viewport.Bottom())
	horizontal := between(r.Left(), viewport.Left(), viewport.Right()) ||
		between(r.Right(), viewport.Left(), viewport.Right())
	return vertical && horizontal
}

// IsVirtualSizeCellVisible reports whether a cached item would intersect the
// viewport scrolled to scrollTop. Only the vertical axis is checked.
func IsVirtualSizeCellVisible(size Size, scrollTop int, viewport Rect) bool {
	bottom := scrollTop + viewport.Height
	return between(size.OffsetTop, scrollTop, bottom) ||
		between(size.Bottom(), scrollTop, bottom)
}

func between(v, lo, hi int) bool {
	return v >= lo && v <= hi
}
