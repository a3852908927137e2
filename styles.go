package tview

import "github.com/gdamore/tcell/v2"

// Theme defines the colors used when primitives are initialized.
type Theme struct {
	PrimitiveBackgroundColor tcell.Color // Main background color for primitives.
	BorderColor              tcell.Color // Box borders.
	TitleColor               tcell.Color // Box titles.
	GraphicsColor            tcell.Color // Scroll bars.
	PrimaryTextColor         tcell.Color // Primary text.
	SecondaryTextColor       tcell.Color // Alternating rows.
	PendingTextColor         tcell.Color // Items that are still loading.
}

// Styles is the theme new primitives pick their colors from.
var Styles = Theme{
	PrimitiveBackgroundColor: tcell.ColorBlack,
	BorderColor:              tcell.ColorWhite,
	TitleColor:               tcell.ColorWhite,
	GraphicsColor:            tcell.ColorWhite,
	PrimaryTextColor:         tcell.ColorWhite,
	SecondaryTextColor:       tcell.ColorYellow,
	PendingTextColor:         tcell.ColorGray,
}
