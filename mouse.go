package tview

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// DoubleClickInterval is the longest pause between two clicks of the same
// button that still counts as a double click.
var DoubleClickInterval = 500 * time.Millisecond

// MouseAction is what a mouse event means to a primitive once button state
// changes have been turned into presses, releases, and clicks.
type MouseAction int16

// Mouse actions.
const (
	MouseMove MouseAction = iota
	MouseLeftDown
	MouseLeftUp
	MouseLeftClick
	MouseLeftDoubleClick
	MouseRightDown
	MouseRightUp
	MouseRightClick
	MouseRightDoubleClick
	MouseScrollUp
	MouseScrollDown
)

var mouseActionNames = [...]string{
	MouseMove:             "move",
	MouseLeftDown:         "left-down",
	MouseLeftUp:           "left-up",
	MouseLeftClick:        "left-click",
	MouseLeftDoubleClick:  "left-double-click",
	MouseRightDown:        "right-down",
	MouseRightUp:          "right-up",
	MouseRightClick:       "right-click",
	MouseRightDoubleClick: "right-double-click",
	MouseScrollUp:         "scroll-up",
	MouseScrollDown:       "scroll-down",
}

func (a MouseAction) String() string {
	if a >= 0 && int(a) < len(mouseActionNames) {
		return mouseActionNames[a]
	}
	return "unknown"
}

// mouseButton maps a tcell button to its actions.
type mouseButton struct {
	mask        tcell.ButtonMask
	down        MouseAction
	up          MouseAction
	click       MouseAction
	doubleClick MouseAction
}

var mouseButtons = []mouseButton{
	{tcell.ButtonPrimary, MouseLeftDown, MouseLeftUp, MouseLeftClick, MouseLeftDoubleClick},
	{tcell.ButtonSecondary, MouseRightDown, MouseRightUp, MouseRightClick, MouseRightDoubleClick},
}

// mouseTracker remembers enough of the previous events to derive actions
// from the next one. A release counts as a click only when the pointer has
// not moved since the press.
type mouseTracker struct {
	x, y       int
	downX      int
	downY      int
	buttons    tcell.ButtonMask
	lastClick  time.Time
	hasPointer bool
}

// actions returns the actions event stands for, in the order they happened.
func (m *mouseTracker) actions(event *tcell.EventMouse, now time.Time) []MouseAction {
	var out []MouseAction
	x, y := event.Position()
	buttons := event.Buttons()

	if !m.hasPointer || x != m.x || y != m.y {
		out = append(out, MouseMove)
		m.x, m.y, m.hasPointer = x, y, true
	}

	changed := buttons ^ m.buttons
	for _, b := range mouseButtons {
		if changed&b.mask == 0 {
			continue
		}
		if buttons&b.mask != 0 {
			out = append(out, b.down)
			m.downX, m.downY = x, y
			continue
		}
		out = append(out, b.up)
		if x != m.downX || y != m.downY {
			continue
		}
		if !m.lastClick.IsZero() && now.Sub(m.lastClick) <= DoubleClickInterval {
			out = append(out, b.doubleClick)
			m.lastClick = time.Time{}
		} else {
			out = append(out, b.click)
			m.lastClick = now
		}
	}
	m.buttons = buttons &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)

	if buttons&tcell.WheelUp != 0 {
		out = append(out, MouseScrollUp)
	}
	if buttons&tcell.WheelDown != 0 {
		out = append(out, MouseScrollDown)
	}
	return out
}
