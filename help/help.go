// Package help draws the key bindings of a key map, either as a single line
// or as aligned columns.
package help

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/xqrs/tview"
	"github.com/xqrs/tview/keybind"
)

const (
	shortSeparator = " • "
	fullSeparator  = "    "
)

// KeyMap is implemented by anything with keys worth documenting.
type KeyMap interface {
	// ShortHelp returns the bindings of the one line view.
	ShortHelp() []keybind.Keybind
	// FullHelp returns the bindings of the full view, one group per column.
	FullHelp() [][]keybind.Keybind
}

// Help shows the keys of a KeyMap. A status text may sit at the right end of
// the first row; key help gives way to it when space runs out.
type Help struct {
	*tview.Box

	styles  Styles
	keyMap  KeyMap
	showAll bool
	status  string
}

func New() *Help {
	return &Help{
		Box:    tview.NewBox(),
		styles: DefaultStyles(),
	}
}

func (h *Help) SetKeyMap(keyMap KeyMap) *Help {
	h.keyMap = keyMap
	return h
}

// SetShowAll switches between the one line and the full view.
func (h *Help) SetShowAll(showAll bool) *Help {
	h.showAll = showAll
	return h
}

func (h *Help) ShowAll() bool {
	return h.showAll
}

func (h *Help) SetStyles(styles Styles) *Help {
	h.styles = styles
	return h
}

func (h *Help) SetStatus(status string) *Help {
	h.status = status
	return h
}

// Height returns the rows the current view needs.
func (h *Help) Height() int {
	if !h.showAll || h.keyMap == nil {
		return 1
	}
	rows := 1
	for _, group := range h.keyMap.FullHelp() {
		rows = max(rows, len(newColumn(group).entries))
	}
	return rows
}

// Draw draws this primitive onto the screen.
func (h *Help) Draw(screen tcell.Screen) {
	h.DrawForSubclass(screen, h)

	x, y, width, height := h.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	room := width
	if h.status != "" {
		_, used := tview.PrintWithStyle(screen, h.status, x, y, width, tview.AlignmentRight, h.styles.Status)
		room = max(width-used-1, 0)
	}
	if h.keyMap == nil {
		return
	}

	lines := []tview.Line{h.short(h.keyMap.ShortHelp(), room)}
	if h.showAll {
		lines = h.full(h.keyMap.FullHelp(), room)
	}
	for row, line := range lines {
		if row >= height {
			break
		}
		tview.PrintLine(screen, line, x, y+row, room)
	}
}

// FullHelpLines returns the full view as plain text. A maxWidth of 0 means
// unbounded.
func (h *Help) FullHelpLines(groups [][]keybind.Keybind, maxWidth int) []string {
	styled := h.full(groups, maxWidth)
	lines := make([]string, len(styled))
	for i, line := range styled {
		lines[i] = line.Text()
	}
	return lines
}

// ShortHelpLine returns the one line view as plain text. A maxWidth of 0
// means unbounded.
func (h *Help) ShortHelpLine(bindings []keybind.Keybind, maxWidth int) string {
	return h.short(bindings, maxWidth).Text()
}

func fits(width, maxWidth int) bool {
	return maxWidth <= 0 || width <= maxWidth
}

// short joins the bindings that fit, then an ellipsis if any were left out.
// It is empty when not even the first binding fits.
func (h *Help) short(bindings []keybind.Keybind, maxWidth int) tview.Line {
	var out tview.Line
	for _, kb := range bindings {
		item := h.shortItem(kb)
		if item == nil {
			continue
		}
		if out == nil {
			if !fits(item.Width(), maxWidth) {
				return nil
			}
			out = item
			continue
		}
		next := append(append(out[:len(out):len(out)], tview.Segment{Text: shortSeparator, Style: h.styles.Separator}), item...)
		if !fits(next.Width(), maxWidth) {
			return h.withEllipsis(out, maxWidth)
		}
		out = next
	}
	return out
}

func (h *Help) shortItem(kb keybind.Keybind) tview.Line {
	if !kb.Enabled() {
		return nil
	}
	var item tview.Line
	help := kb.Help()
	if help.Key != "" {
		item = append(item, tview.Segment{Text: help.Key, Style: h.styles.Key})
	}
	if help.Key != "" && help.Desc != "" {
		item = append(item, tview.Segment{Text: " ", Style: h.styles.Desc})
	}
	if help.Desc != "" {
		item = append(item, tview.Segment{Text: help.Desc, Style: h.styles.Desc})
	}
	return item
}

// withEllipsis appends " …" to line if it still fits.
func (h *Help) withEllipsis(line tview.Line, maxWidth int) tview.Line {
	tail := " " + tview.SemigraphicsHorizontalEllipsis
	if line.Width()+uniseg.StringWidth(tail) > maxWidth {
		return line
	}
	return append(line, tview.Segment{Text: tail, Style: h.styles.Ellipsis})
}

// column is one group of the full view. Keys are padded to keyWidth so the
// descriptions line up.
type column struct {
	entries  []keybind.Help
	keyWidth int
	width    int
}

func newColumn(group []keybind.Keybind) column {
	var c column
	for _, kb := range group {
		if help := kb.Help(); kb.Enabled() && help != (keybind.Help{}) {
			c.entries = append(c.entries, help)
			c.keyWidth = max(c.keyWidth, uniseg.StringWidth(help.Key))
		}
	}
	for _, e := range c.entries {
		w := c.keyWidth + uniseg.StringWidth(e.Desc)
		if e.Key != "" && e.Desc != "" {
			w++
		}
		c.width = max(c.width, w)
	}
	return c
}

// cell renders row of the column, padded to the column width unless last.
func (h *Help) cell(c column, row int, last bool) tview.Line {
	var e keybind.Help
	if row < len(c.entries) {
		e = c.entries[row]
	}
	text := e.Key + strings.Repeat(" ", c.keyWidth-uniseg.StringWidth(e.Key))
	if e.Key != "" && e.Desc != "" {
		text += " "
	}
	line := tview.Line{{Text: text, Style: h.styles.Key}}
	if e.Desc != "" {
		line = append(line, tview.Segment{Text: e.Desc, Style: h.styles.Desc})
	}
	if pad := c.width - line.Width(); !last && pad > 0 {
		line = append(line, tview.Segment{Text: strings.Repeat(" ", pad), Style: h.styles.Desc})
	}
	return line
}

// full lays out the groups as columns, left to right while they fit.
func (h *Help) full(groups [][]keybind.Keybind, maxWidth int) []tview.Line {
	var columns []column
	for _, group := range groups {
		if c := newColumn(group); len(c.entries) > 0 {
			columns = append(columns, c)
		}
	}
	if len(columns) == 0 {
		return nil
	}

	shown, used, rows := 0, 0, 0
	for _, c := range columns {
		w := c.width
		if shown > 0 {
			w += len(fullSeparator)
		}
		if !fits(used+w, maxWidth) {
			break
		}
		shown++
		used += w
		rows = max(rows, len(c.entries))
	}
	if shown == 0 {
		return []tview.Line{{{Text: tview.SemigraphicsHorizontalEllipsis, Style: h.styles.Ellipsis}}}
	}

	lines := make([]tview.Line, rows)
	for row := range lines {
		for i, c := range columns[:shown] {
			if i > 0 {
				lines[row] = append(lines[row], tview.Segment{Text: fullSeparator, Style: h.styles.Separator})
			}
			lines[row] = append(lines[row], h.cell(c, row, i == shown-1)...)
		}
	}
	if shown < len(columns) {
		lines[0] = h.withEllipsis(lines[0], maxWidth)
	}
	return lines
}

var _ tview.Primitive = &Help{}
