// Package keybind matches tcell key events against key specs such as "j",
// "pgdn", or "ctrl+f", and carries the help text shown for them.
package keybind

import (
	"slices"
	"strings"
)

// Help is the key label and description shown in help views.
type Help struct {
	Key  string
	Desc string
}

// Keybind is a set of equivalent keys plus their help.
type Keybind struct {
	chords   []chord
	help     Help
	disabled bool
}

// Option configures a Keybind.
type Option func(*Keybind)

// NewKeybind returns a keybind configured by options.
func NewKeybind(options ...Option) Keybind {
	var k Keybind
	for _, option := range options {
		option(&k)
	}
	return k
}

// WithKeys sets the key specs. Invalid specs are dropped.
func WithKeys(keys ...string) Option {
	return func(k *Keybind) {
		k.SetKeys(keys...)
	}
}

// WithHelp sets the help label and description.
func WithHelp(key, desc string) Option {
	return func(k *Keybind) {
		k.help = Help{Key: key, Desc: desc}
	}
}

// WithDisabled creates the keybind disabled.
func WithDisabled() Option {
	return func(k *Keybind) {
		k.disabled = true
	}
}

// Keys returns the canonical specs of the keys.
func (k Keybind) Keys() []string {
	keys := make([]string, len(k.chords))
	for i, c := range k.chords {
		keys[i] = c.String()
	}
	return keys
}

// SetKeys replaces the keys. Invalid and duplicate specs are dropped.
func (k *Keybind) SetKeys(keys ...string) {
	k.chords = nil
	for _, spec := range keys {
		c, ok := parseChord(spec)
		if ok && !slices.Contains(k.chords, c) {
			k.chords = append(k.chords, c)
		}
	}
}

func (k Keybind) Help() Help {
	return k.help
}

func (k *Keybind) SetHelp(key, desc string) {
	k.help = Help{Key: key, Desc: desc}
}

// Enabled reports whether the keybind has keys and is not disabled. Only
// enabled keybinds match events and show up in help.
func (k Keybind) Enabled() bool {
	return !k.disabled && len(k.chords) > 0
}

func (k *Keybind) SetEnabled(enabled bool) {
	k.disabled = !enabled
}

// Valid reports whether spec names a key.
func Valid(spec string) bool {
	_, ok := parseChord(spec)
	return ok
}

// Normalize returns the canonical form of spec, or "" if it is invalid.
func Normalize(spec string) string {
	c, ok := parseChord(spec)
	if !ok {
		return ""
	}
	return c.String()
}

type modifier uint8

const (
	modCtrl modifier = 1 << iota
	modAlt
	modShift
	modMeta
)

// modifierNames is in the order modifiers are written.
var modifierNames = []struct {
	mod  modifier
	name string
}{
	{modCtrl, "ctrl"},
	{modAlt, "alt"},
	{modShift, "shift"},
	{modMeta, "meta"},
}

var modifierAliases = map[string]modifier{
	"ctrl":    modCtrl,
	"control": modCtrl,
	"alt":     modAlt,
	"shift":   modShift,
	"meta":    modMeta,
}

// keyAliases maps lower case spellings of named keys to their canonical name.
var keyAliases = map[string]string{
	"esc":       "esc",
	"escape":    "esc",
	"enter":     "enter",
	"return":    "enter",
	"tab":       "tab",
	"space":     " ",
	"up":        "up",
	"down":      "down",
	"left":      "left",
	"right":     "right",
	"home":      "home",
	"end":       "end",
	"pgup":      "pgup",
	"pageup":    "pgup",
	"pgdn":      "pgdn",
	"pgdown":    "pgdn",
	"pagedown":  "pgdn",
	"insert":    "insert",
	"delete":    "delete",
	"backspace": "backspace",
}

// chord is a key with its modifiers. Runes keep their case; shift is implied
// by an upper case rune and never recorded for it.
type chord struct {
	mods modifier
	key  string
}

func (c chord) String() string {
	var b strings.Builder
	for _, m := range modifierNames {
		if c.mods&m.mod != 0 {
			b.WriteString(m.name)
			b.WriteByte('+')
		}
	}
	b.WriteString(c.key)
	return b.String()
}

// parseChord parses specs like "j", "G", "ctrl+f", "Ctrl-C", "backtab", or
// the "Rune[x]" names tcell gives rune events.
func parseChord(spec string) (chord, bool) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return chord{}, false
	}
	if inner, ok := strings.CutPrefix(spec, "Rune["); ok && strings.HasSuffix(inner, "]") && len(inner) > 1 {
		return chord{key: strings.TrimSuffix(inner, "]")}, true
	}
	if rest, ok := cutPrefixFold(spec, "ctrl-"); ok && rest != "" {
		spec = "ctrl+" + rest
	}

	parts := strings.Split(spec, "+")
	var c chord
	for _, part := range parts[:len(parts)-1] {
		mod, ok := modifierAliases[strings.ToLower(strings.TrimSpace(part))]
		if !ok {
			return chord{}, false
		}
		c.mods |= mod
	}

	key := strings.TrimSpace(parts[len(parts)-1])
	switch lower := strings.ToLower(key); {
	case key == "":
		return chord{}, false
	case lower == "backtab":
		c.mods |= modShift
		c.key = "tab"
	case keyAliases[lower] != "":
		c.key = keyAliases[lower]
	case len([]rune(key)) == 1:
		c.key = key
		if c.mods != 0 {
			c.key = lower
		}
	default:
		c.key = lower
	}
	return c, true
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}
