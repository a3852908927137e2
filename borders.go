package tview

import (
	"fmt"
	"strings"
)

// Borders selects the sides of a box that get a border.
type Borders uint

const (
	BordersTop Borders = 1 << iota
	BordersBottom
	BordersLeft
	BordersRight

	BordersNone Borders = 0
	BordersAll          = BordersTop | BordersBottom | BordersLeft | BordersRight
)

// Has reports whether any side in flag is set.
func (b Borders) Has(flag Borders) bool {
	return b&flag != 0
}

// BorderSet holds the glyphs of a border.
type BorderSet struct {
	Horizontal  string
	Vertical    string
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
}

// newBorderSet takes the glyphs in BorderSet field order.
func newBorderSet(glyphs ...string) BorderSet {
	return BorderSet{glyphs[0], glyphs[1], glyphs[2], glyphs[3], glyphs[4], glyphs[5]}
}

var borderSets = map[string]BorderSet{
	"plain": newBorderSet(
		BoxDrawingsLightHorizontal, BoxDrawingsLightVertical,
		BoxDrawingsLightDownAndRight, BoxDrawingsLightDownAndLeft,
		BoxDrawingsLightUpAndRight, BoxDrawingsLightUpAndLeft,
	),
	"round": newBorderSet(
		BoxDrawingsLightHorizontal, BoxDrawingsLightVertical,
		BoxDrawingsLightArcDownAndRight, BoxDrawingsLightArcDownAndLeft,
		BoxDrawingsLightArcUpAndRight, BoxDrawingsLightArcUpAndLeft,
	),
	"thick": newBorderSet(
		BoxDrawingsHeavyHorizontal, BoxDrawingsHeavyVertical,
		BoxDrawingsHeavyDownAndRight, BoxDrawingsHeavyDownAndLeft,
		BoxDrawingsHeavyUpAndRight, BoxDrawingsHeavyUpAndLeft,
	),
	"double": newBorderSet(
		BoxDrawingsDoubleHorizontal, BoxDrawingsDoubleVertical,
		BoxDrawingsDoubleDownAndRight, BoxDrawingsDoubleDownAndLeft,
		BoxDrawingsDoubleUpAndRight, BoxDrawingsDoubleUpAndLeft,
	),
}

// BorderSetPlain returns thin lines with square corners.
func BorderSetPlain() BorderSet {
	return borderSets["plain"]
}

// BorderSetByName resolves plain, round, thick, double, and none. none
// returns BordersNone as the second value, every other name BordersAll.
func BorderSetByName(name string) (BorderSet, Borders, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "none" {
		return BorderSetPlain(), BordersNone, nil
	}
	if name == "" {
		name = "plain"
	}
	set, ok := borderSets[name]
	if !ok {
		return BorderSet{}, BordersNone, fmt.Errorf("unknown border set %q", name)
	}
	return set, BordersAll, nil
}
