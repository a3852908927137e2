package keybind

import (
	"slices"

	"github.com/gdamore/tcell/v2"
)

var namedKeys = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyEscape:     "esc",
	tcell.KeyTab:        "tab",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdn",
	tcell.KeyInsert:     "insert",
	tcell.KeyDelete:     "delete",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
}

// eventChord converts a key event. Enter, Tab, and Backspace share codes with
// Ctrl+M, Ctrl+I, and Ctrl+H and resolve to the named keys.
func eventChord(event *tcell.EventKey) (chord, bool) {
	key := event.Key()
	var c chord
	switch name, named := namedKeys[key]; {
	case named:
		c.key = name
	case key == tcell.KeyBacktab:
		return chord{mods: modShift, key: "tab"}, true
	case key == tcell.KeyRune:
		c.key = string(event.Rune())
	case key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ:
		return chord{mods: modCtrl, key: string(rune('a' + (key - tcell.KeyCtrlA)))}, true
	default:
		return parseChord(event.Name())
	}

	mods := event.Modifiers()
	if mods&tcell.ModCtrl != 0 {
		c.mods |= modCtrl
	}
	if mods&tcell.ModAlt != 0 {
		c.mods |= modAlt
	}
	if mods&tcell.ModShift != 0 && key != tcell.KeyRune {
		c.mods |= modShift
	}
	if mods&tcell.ModMeta != 0 {
		c.mods |= modMeta
	}
	return c, true
}

// Matches reports whether event triggers any of the enabled keybinds.
func Matches(event *tcell.EventKey, keybinds ...Keybind) bool {
	if event == nil {
		return false
	}
	c, ok := eventChord(event)
	if !ok {
		return false
	}
	for _, k := range keybinds {
		if k.Enabled() && slices.Contains(k.chords, c) {
			return true
		}
	}
	return false
}
