package tview

import "github.com/gdamore/tcell/v2"

// TextItem is a word-wrapped block of styled text for a VirtualList. Its height
// depends on the width it is laid out at.
type TextItem struct {
	*Box

	id      string
	lines   []Line
	pending bool
	hidden  bool
}

// NewTextItem returns an empty item with the given id.
func NewTextItem(id string) *TextItem {
	return &TextItem{
		Box: NewBox(),
		id:  id,
	}
}

// ID returns the item's id.
func (t *TextItem) ID() string {
	return t.id
}

// SetText sets the text, split into lines at newlines, in a single style.
func (t *TextItem) SetText(text string, style tcell.Style) *TextItem {
	builder := NewLineBuilder()
	builder.Write(text, style)
	t.lines = builder.Finish()
	return t
}

// SetLines sets already styled lines.
func (t *TextItem) SetLines(lines []Line) *TextItem {
	t.lines = lines
	return t
}

// Lines returns the unwrapped lines.
func (t *TextItem) Lines() []Line {
	return t.lines
}

// SetPending marks the item as still loading. A pending item takes a single
// row and shows a placeholder.
func (t *TextItem) SetPending(pending bool) *TextItem {
	t.pending = pending
	return t
}

// Loaded reports whether the item finished loading.
func (t *TextItem) Loaded() bool {
	return !t.pending
}

// SetHidden hides the item without removing it from its list.
func (t *TextItem) SetHidden(hidden bool) *TextItem {
	t.hidden = hidden
	return t
}

// Hidden reports whether the item is hidden.
func (t *TextItem) Hidden() bool {
	return t.hidden
}

// Height returns the rows needed at the given width, borders and title
// included.
func (t *TextItem) Height(width int) int {
	if t.hidden {
		return 0
	}
	top, bottom, left, right := t.chrome()
	if t.pending {
		return 1 + top + bottom
	}
	inner := max(width-left-right, 1)
	rows := 0
	for _, line := range t.lines {
		rows += len(WrapLine(line, inner))
	}
	return max(rows, 1) + top + bottom
}

// Draw draws this primitive onto the screen.
func (t *TextItem) Draw(screen tcell.Screen) {
	if t.hidden {
		return
	}
	t.DrawForSubclass(screen, t)

	x, y, width, height := t.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	if t.pending {
		Print(screen, "loading"+SemigraphicsHorizontalEllipsis, x, y, width, AlignmentLeft, Styles.PendingTextColor)
		return
	}

	row := 0
	for _, line := range t.lines {
		for _, wrapped := range WrapLine(line, width) {
			if row >= height {
				return
			}
			PrintLine(screen, wrapped, x, y+row, width)
			row++
		}
	}
}

var (
	_ VirtualListItem   = &TextItem{}
	_ VirtualListLoader = &TextItem{}
	_ VirtualListHider  = &TextItem{}
)
