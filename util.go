package tview

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Alignment is the horizontal placement of text within its box.
type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// glyph is a grapheme cluster and the number of cells it covers.
type glyph struct {
	text  string
	width int
}

func splitGlyphs(text string) []glyph {
	var out []glyph
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		out = append(out, glyph{text: g.Str(), width: g.Width()})
	}
	return out
}

func glyphsWidth(glyphs []glyph) int {
	width := 0
	for _, g := range glyphs {
		width += g.width
	}
	return width
}

// fitGlyphs returns the glyphs visible in maxWidth cells and the column of the
// first one. Left aligned text loses its end, right aligned text its start,
// and centered text both. clipped reports whether anything was dropped.
func fitGlyphs(glyphs []glyph, maxWidth int, alignment Alignment) (visible []glyph, column int, clipped bool) {
	total := glyphsWidth(glyphs)
	if total <= maxWidth {
		switch alignment {
		case AlignmentCenter:
			column = (maxWidth - total) / 2
		case AlignmentRight:
			column = maxWidth - total
		}
		return glyphs, column, false
	}

	var skip int
	switch alignment {
	case AlignmentCenter:
		skip = (total - maxWidth) / 2
	case AlignmentRight:
		skip = total - maxWidth
	}
	first := 0
	for skipped := 0; first < len(glyphs) && skipped < skip; first++ {
		skipped += glyphs[first].width
	}
	glyphs = glyphs[first:]

	used, n := 0, 0
	for n < len(glyphs) && used+glyphs[n].width <= maxWidth {
		used += glyphs[n].width
		n++
	}
	if alignment == AlignmentRight {
		column = maxWidth - used
	}
	return glyphs[:n], column, true
}

// drawGlyphs writes glyphs from (x, y) and returns the printed bytes and
// cells. With keepBackground, cells keep the background already on screen
// unless style sets one.
func drawGlyphs(screen tcell.Screen, glyphs []glyph, x, y int, style tcell.Style, keepBackground bool) (bytes, width int) {
	for _, g := range glyphs {
		bytes += len(g.text)
		if g.width == 0 {
			continue
		}
		cellStyle := style
		if keepBackground {
			if _, bg, _ := style.Decompose(); bg == tcell.ColorDefault {
				_, _, existing, _ := screen.GetContent(x, y)
				_, bg, _ = existing.Decompose()
				cellStyle = style.Background(bg)
			}
		}
		setCell(screen, x, y, g.text, cellStyle)
		for extra := 1; extra < g.width; extra++ {
			setCell(screen, x+extra, y, " ", cellStyle)
		}
		x += g.width
		width += g.width
	}
	return bytes, width
}

// Print prints text in color into the one row box (x, y, maxWidth), keeping
// the screen's background. It returns the number of bytes of text printed and
// the cells they took.
func Print(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, color tcell.Color) (int, int) {
	style := tcell.StyleDefault.Foreground(color).Background(tcell.ColorDefault)
	return printAligned(screen, text, x, y, maxWidth, alignment, style, true)
}

// PrintWithStyle is Print with a full style, background included.
func PrintWithStyle(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) (int, int) {
	return printAligned(screen, text, x, y, maxWidth, alignment, style, false)
}

func printAligned(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style, keepBackground bool) (int, int) {
	if maxWidth <= 0 || text == "" {
		return 0, 0
	}
	visible, column, _ := fitGlyphs(splitGlyphs(text), maxWidth, alignment)
	return drawGlyphs(screen, visible, x+column, y, style, keepBackground)
}

// PrintLine prints a styled line left aligned and returns the cells used.
func PrintLine(screen tcell.Screen, line Line, x, y, maxWidth int) int {
	used := 0
	for _, segment := range line {
		if used >= maxWidth {
			break
		}
		_, width := PrintWithStyle(screen, segment.Text, x+used, y, maxWidth-used, AlignmentLeft, segment.Style)
		used += width
	}
	return used
}

// setCell writes one grapheme cluster into a cell.
func setCell(screen tcell.Screen, x, y int, cluster string, style tcell.Style) {
	runes := []rune(cluster)
	if len(runes) == 0 {
		runes = []rune{' '}
	}
	screen.SetContent(x, y, runes[0], runes[1:], style)
}

// fill paints a rectangle with a single glyph.
func fill(screen tcell.Screen, x, y, width, height int, cluster string, style tcell.Style) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			setCell(screen, col, row, cluster, style)
		}
	}
}
