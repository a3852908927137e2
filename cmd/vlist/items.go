package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"

	"github.com/xqrs/tview"
)

var phrases = []string{
	"resolved from the cached geometry",
	"shifted into the buffer zone",
	"measured once and remembered after unmounting",
	"a longer entry that wraps on narrow terminals and makes the heights uneven across the list",
}

// itemText returns the deterministic text of the i-th generated item. Every
// fourth item spans several lines.
func itemText(i int) string {
	text := fmt.Sprintf("#%d %s", i, phrases[i%len(phrases)])
	if i%4 == 3 {
		text += strings.Repeat("\n  detail", i%3+1)
	}
	return text
}

func tcellItems(from, n int) []tview.VirtualListItem {
	items := make([]tview.VirtualListItem, n)
	for i := range items {
		index := from + i
		style := tcell.StyleDefault.Foreground(tview.Styles.PrimaryTextColor)
		if index%2 == 1 {
			style = style.Foreground(tview.Styles.SecondaryTextColor)
		}
		items[i] = tview.NewTextItem(strconv.Itoa(index)).SetText(itemText(index), style)
	}
	return items
}

// teaItem wraps its text to the render width.
type teaItem struct {
	id   string
	text string
}

func (t teaItem) ID() string { return t.id }

func (t teaItem) Render(width int) string {
	return lipgloss.NewStyle().Width(width).Render(t.text)
}
