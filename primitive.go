package tview

import "github.com/gdamore/tcell/v2"

// Primitive is implemented by everything the Application can draw and route
// events to.
type Primitive interface {
	// Draw renders the primitive into its rectangle.
	Draw(screen tcell.Screen)

	// GetRect returns x, y, width, and height.
	GetRect() (int, int, int, int)
	// SetRect positions the primitive. Containers and the Application call it
	// before every Draw.
	SetRect(x, y, width, height int)

	// InputHandler handles a key event while the primitive has focus.
	InputHandler(event *tcell.EventKey) Command
	// MouseHandler handles a mouse action. A non-nil returned primitive
	// captures the following mouse events until it returns nil.
	MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command)
	// PasteHandler handles bracketed paste input.
	PasteHandler(text string) Command

	// HasFocus reports whether the primitive or one of its children has focus.
	HasFocus() bool
	// Focus gives focus to the primitive, which may pass it on via delegate.
	Focus(delegate func(p Primitive))
	// Blur takes the focus away.
	Blur()
}
