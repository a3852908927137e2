package tview

import "github.com/gdamore/tcell/v2"

// caption is a title or footer line.
type caption struct {
	text      string
	style     tcell.Style
	alignment Alignment
}

// Box is the base of the other primitives: a rectangle with a background and
// optional borders, title, footer, and padding. Embedding types draw their
// content into GetInnerRect.
type Box struct {
	x, y, width, height int

	padTop, padBottom, padLeft, padRight int

	background tcell.Color

	borders     Borders
	borderSet   BorderSet
	borderStyle tcell.Style

	title  caption
	footer caption

	focused bool
}

// NewBox returns a Box without borders.
func NewBox() *Box {
	captionStyle := tcell.StyleDefault.Foreground(Styles.TitleColor)
	return &Box{
		width:       15,
		height:      10,
		background:  Styles.PrimitiveBackgroundColor,
		borderSet:   BorderSetPlain(),
		borderStyle: tcell.StyleDefault.Foreground(Styles.BorderColor).Background(Styles.PrimitiveBackgroundColor),
		title:       caption{style: captionStyle, alignment: AlignmentCenter},
		footer:      caption{style: captionStyle, alignment: AlignmentCenter},
	}
}

// SetBorderPadding adds empty rows and columns inside the borders.
func (b *Box) SetBorderPadding(top, bottom, left, right int) *Box {
	b.padTop, b.padBottom, b.padLeft, b.padRight = top, bottom, left, right
	return b
}

func (b *Box) GetRect() (int, int, int, int) {
	return b.x, b.y, b.width, b.height
}

func (b *Box) SetRect(x, y, width, height int) {
	b.x, b.y, b.width, b.height = x, y, width, height
}

// GetInnerRect returns the rectangle inside borders, captions, and padding.
// Width and height are never negative.
func (b *Box) GetInnerRect() (int, int, int, int) {
	top, bottom, left, right := b.chrome()
	return b.x + left, b.y + top, max(b.width-left-right, 0), max(b.height-top-bottom, 0)
}

// chrome returns the rows and columns taken on each side.
func (b *Box) chrome() (top, bottom, left, right int) {
	edge := func(side Borders, text string) int {
		if b.borders.Has(side) || text != "" {
			return 1
		}
		return 0
	}
	return edge(BordersTop, b.title.text) + b.padTop,
		edge(BordersBottom, b.footer.text) + b.padBottom,
		edge(BordersLeft, "") + b.padLeft,
		edge(BordersRight, "") + b.padRight
}

// InRect reports whether (x, y) is inside the box.
func (b *Box) InRect(x, y int) bool {
	return x >= b.x && x < b.x+b.width && y >= b.y && y < b.y+b.height
}

// InInnerRect reports whether (x, y) is inside the inner rectangle.
func (b *Box) InInnerRect(x, y int) bool {
	ix, iy, width, height := b.GetInnerRect()
	return x >= ix && x < ix+width && y >= iy && y < iy+height
}

// SetBackgroundColor sets the fill color, borders included.
func (b *Box) SetBackgroundColor(color tcell.Color) *Box {
	b.background = color
	b.borderStyle = b.borderStyle.Background(color)
	return b
}

func (b *Box) SetBorders(borders Borders) *Box {
	b.borders = borders
	return b
}

func (b *Box) SetBorderSet(set BorderSet) *Box {
	b.borderSet = set
	return b
}

func (b *Box) SetTitle(title string) *Box {
	b.title.text = title
	return b
}

func (b *Box) SetFooter(footer string) *Box {
	b.footer.text = footer
	return b
}

// SetFooterAlignment places the footer. Titles are always centered.
func (b *Box) SetFooterAlignment(alignment Alignment) *Box {
	b.footer.alignment = alignment
	return b
}

func (b *Box) InputHandler(event *tcell.EventKey) Command {
	return nil
}

func (b *Box) PasteHandler(text string) Command {
	return nil
}

// MouseHandler focuses the box when it is pressed.
func (b *Box) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if action == MouseLeftDown && b.InRect(event.Position()) {
		return nil, SetFocusCommand{Target: b}
	}
	return nil, nil
}

func (b *Box) Focus(delegate func(p Primitive)) {
	b.focused = true
}

func (b *Box) Blur() {
	b.focused = false
}

func (b *Box) HasFocus() bool {
	return b.focused
}

// Draw draws this primitive onto the screen.
func (b *Box) Draw(screen tcell.Screen) {
	b.DrawForSubclass(screen, b)
}

// DrawForSubclass draws the background, borders, and captions of the box
// embedded in p.
func (b *Box) DrawForSubclass(screen tcell.Screen, p Primitive) {
	if b.width <= 0 || b.height <= 0 {
		return
	}
	fill(screen, b.x, b.y, b.width, b.height, " ", tcell.StyleDefault.Background(b.background))
	b.drawBorders(screen)
	b.drawCaption(screen, b.title, b.y)
	b.drawCaption(screen, b.footer, b.y+b.height-1)
}

func (b *Box) drawBorders(screen tcell.Screen) {
	if b.borders == BordersNone || b.width < 2 || b.height < 2 {
		return
	}
	set, style := b.borderSet, b.borderStyle
	right, bottom := b.x+b.width-1, b.y+b.height-1

	sides := []struct {
		side                Borders
		x, y, width, height int
		glyph               string
	}{
		{BordersTop, b.x + 1, b.y, b.width - 2, 1, set.Horizontal},
		{BordersBottom, b.x + 1, bottom, b.width - 2, 1, set.Horizontal},
		{BordersLeft, b.x, b.y + 1, 1, b.height - 2, set.Vertical},
		{BordersRight, right, b.y + 1, 1, b.height - 2, set.Vertical},
	}
	for _, s := range sides {
		if b.borders.Has(s.side) {
			fill(screen, s.x, s.y, s.width, s.height, s.glyph, style)
		}
	}

	corners := []struct {
		sides Borders
		x, y  int
		glyph string
	}{
		{BordersTop | BordersLeft, b.x, b.y, set.TopLeft},
		{BordersTop | BordersRight, right, b.y, set.TopRight},
		{BordersBottom | BordersLeft, b.x, bottom, set.BottomLeft},
		{BordersBottom | BordersRight, right, bottom, set.BottomRight},
	}
	for _, c := range corners {
		if b.borders&c.sides == c.sides {
			setCell(screen, c.x, c.y, c.glyph, style)
		}
	}
}

// drawCaption prints c on row y between the corners. Text that does not fit
// gets an ellipsis on its clipped side.
func (b *Box) drawCaption(screen tcell.Screen, c caption, y int) {
	room := b.width - 2
	if c.text == "" || room < 2 {
		return
	}
	glyphs := splitGlyphs(c.text)
	x := b.x + 1
	visible, column, clipped := fitGlyphs(glyphs, room, c.alignment)
	if clipped {
		visible, column, _ = fitGlyphs(glyphs, room-1, c.alignment)
		ellipsis := x + room - 1
		if c.alignment == AlignmentRight {
			ellipsis = x
			x++
		}
		drawGlyphs(screen, []glyph{{text: SemigraphicsHorizontalEllipsis, width: 1}}, ellipsis, y, c.style, true)
	}
	drawGlyphs(screen, visible, x+column, y, c.style, true)
}

var _ Primitive = &Box{}
