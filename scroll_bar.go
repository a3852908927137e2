package tview

import "github.com/gdamore/tcell/v2"

// eighths is the number of thumb steps within one cell.
const eighths = 8

// ScrollBarGlyphs are the symbols a ScrollBar draws with. Lower[i] fills the
// bottom i+1 eighths of a cell, Upper[i] the top i+1 eighths.
type ScrollBarGlyphs struct {
	Track string
	Up    string
	Down  string
	Lower [eighths]string
	Upper [eighths]string
}

var (
	// ScrollBarGlyphsLegacy uses the legacy computing block for exact upper
	// eighths. Not every terminal font has it.
	ScrollBarGlyphsLegacy = ScrollBarGlyphs{
		Track: "│",
		Up:    "▲",
		Down:  "▼",
		Lower: [eighths]string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"},
		Upper: [eighths]string{"▔", "🮂", "🮃", "▀", "🮄", "🮅", "🮆", "█"},
	}
	// ScrollBarGlyphsUnicode approximates upper eighths with common block
	// elements.
	ScrollBarGlyphsUnicode = ScrollBarGlyphs{
		Track: "│",
		Up:    "▲",
		Down:  "▼",
		Lower: [eighths]string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"},
		Upper: [eighths]string{"▔", "▔", "▀", "▀", "▀", "▀", "█", "█"},
	}
	// ScrollBarGlyphsMinimal is ScrollBarGlyphsLegacy on a blank track.
	ScrollBarGlyphsMinimal = func() ScrollBarGlyphs {
		g := ScrollBarGlyphsLegacy
		g.Track = " "
		return g
	}()
)

// ScrollBarGlyphsByName returns the glyphs for "minimal", "unicode", or
// "legacy". The empty name selects minimal.
func ScrollBarGlyphsByName(name string) (ScrollBarGlyphs, bool) {
	switch name {
	case "", "minimal":
		return ScrollBarGlyphsMinimal, true
	case "unicode":
		return ScrollBarGlyphsUnicode, true
	case "legacy":
		return ScrollBarGlyphsLegacy, true
	}
	return ScrollBarGlyphs{}, false
}

// thumb is the position of a scroll bar thumb on a track of cells, in eighths
// of a cell.
type thumb struct {
	cells  int
	start  int
	length int
}

// placeThumb sizes the thumb in proportion to visible/total and moves it in
// proportion to offset. A thumb is at least one cell long; content that fits
// yields a thumb covering the whole track.
func placeThumb(cells, total, visible, offset int) thumb {
	if cells <= 0 {
		return thumb{}
	}
	track := cells * eighths
	total = max(total, 1)
	visible = min(max(visible, 1), total)
	maxOffset := total - visible
	if maxOffset == 0 {
		return thumb{cells: cells, length: track}
	}
	offset = min(max(offset, 0), maxOffset)
	length := min(max(track*visible/total, eighths), track)
	return thumb{
		cells:  cells,
		start:  (track - length) * offset / maxOffset,
		length: length,
	}
}

// covered returns which part of cell the thumb covers: from is the first
// covered eighth within the cell and n the number of covered eighths.
func (t thumb) covered(cell int) (from, n int) {
	lo := max(t.start, cell*eighths)
	hi := min(t.start+t.length, (cell+1)*eighths)
	if hi <= lo {
		return 0, 0
	}
	return lo - cell*eighths, hi - lo
}

// glyph returns the symbol and style for a cell with the given coverage.
func (s *ScrollBar) glyph(from, n int) (string, tcell.Style) {
	switch {
	case n <= 0:
		return s.glyphs.Track, s.trackStyle
	case n >= eighths:
		return s.glyphs.Lower[eighths-1], s.thumbStyle
	case from == 0:
		return s.glyphs.Upper[n-1], s.thumbStyle
	default:
		return s.glyphs.Lower[n-1], s.thumbStyle
	}
}

// ScrollBar is a one column wide vertical scroll indicator. The thumb moves in
// eighths of a cell. It does not scroll anything itself: its owner sets the
// position with SetPosition and maps clicks with TrackClick.
type ScrollBar struct {
	*Box

	total, visible, offset int

	glyphs      ScrollBarGlyphs
	arrows      bool
	jumpOnClick bool
	alwaysShow  bool

	trackStyle tcell.Style
	thumbStyle tcell.Style
	arrowStyle tcell.Style
}

// NewScrollBar returns a scroll bar without arrows that hides itself when
// there is nothing to scroll.
func NewScrollBar() *ScrollBar {
	return &ScrollBar{
		Box:        NewBox(),
		glyphs:     ScrollBarGlyphsMinimal,
		trackStyle: tcell.StyleDefault.Dim(true),
		thumbStyle: tcell.StyleDefault,
		arrowStyle: tcell.StyleDefault.Dim(true),
	}
}

// SetPosition sets the content length, the visible length, and the offset of
// the first visible unit, all in the same unit.
func (s *ScrollBar) SetPosition(total, visible, offset int) *ScrollBar {
	s.total, s.visible, s.offset = max(total, 0), max(visible, 0), max(offset, 0)
	return s
}

// SetGlyphs sets the symbols to draw with.
func (s *ScrollBar) SetGlyphs(glyphs ScrollBarGlyphs) *ScrollBar {
	s.glyphs = glyphs
	return s
}

// SetArrows shows arrows at both ends of the track.
func (s *ScrollBar) SetArrows(arrows bool) *ScrollBar {
	s.arrows = arrows
	return s
}

// SetJumpOnClick makes track clicks jump to the proportional position instead
// of paging towards the click.
func (s *ScrollBar) SetJumpOnClick(jump bool) *ScrollBar {
	s.jumpOnClick = jump
	return s
}

// SetAlwaysShow keeps the scroll bar drawn when the content fits.
func (s *ScrollBar) SetAlwaysShow(always bool) *ScrollBar {
	s.alwaysShow = always
	return s
}

// SetStyles sets the track, thumb, and arrow styles.
func (s *ScrollBar) SetStyles(track, thumb, arrow tcell.Style) *ScrollBar {
	s.trackStyle, s.thumbStyle, s.arrowStyle = track, thumb, arrow
	return s
}

// layout returns the first track row and the thumb for the current rect. ok
// is false when nothing should be drawn.
func (s *ScrollBar) layout() (top int, t thumb, ok bool) {
	_, top, _, height := s.GetInnerRect()
	cells := height
	if s.arrows {
		top++
		cells -= 2
	}
	if cells <= 0 || s.total <= 0 {
		return 0, thumb{}, false
	}
	visible := s.visible
	if visible <= 0 {
		visible = height
	}
	if !s.alwaysShow && s.total <= visible {
		return 0, thumb{}, false
	}
	return top, placeThumb(cells, s.total, visible, s.offset), true
}

// Draw draws this primitive onto the screen.
func (s *ScrollBar) Draw(screen tcell.Screen) {
	s.DrawForSubclass(screen, s)

	top, t, ok := s.layout()
	if !ok {
		return
	}
	x, _, _, _ := s.GetInnerRect()
	if s.arrows {
		setCell(screen, x, top-1, s.glyphs.Up, s.arrowStyle)
		setCell(screen, x, top+t.cells, s.glyphs.Down, s.arrowStyle)
	}
	for cell := 0; cell < t.cells; cell++ {
		glyph, style := s.glyph(t.covered(cell))
		setCell(screen, x, top+cell, glyph, style)
	}
}

// TrackClick returns the offset a click on screen row y scrolls to. ok is
// false when y is not on the track or there is nothing to scroll.
func (s *ScrollBar) TrackClick(y int) (offset int, ok bool) {
	top, t, ok := s.layout()
	if !ok || s.total <= s.visible {
		return 0, false
	}
	cell := y - top
	if cell < 0 || cell >= t.cells {
		return 0, false
	}

	visible := max(s.visible, 1)
	maxOffset := s.total - visible
	if s.jumpOnClick {
		if t.cells == 1 {
			return 0, true
		}
		return cell * maxOffset / (t.cells - 1), true
	}
	switch row := cell * eighths; {
	case row < t.start:
		return max(s.offset-visible, 0), true
	case row >= t.start+t.length:
		return min(s.offset+visible, maxOffset), true
	}
	return s.offset, true
}

var _ Primitive = &ScrollBar{}
