// Package layers stacks primitives on top of each other, for dialogs and
// help overlays above a main view.
package layers

import (
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/xqrs/tview"
)

type placement int

const (
	// placeManual leaves the rect to whoever owns the primitive.
	placeManual placement = iota
	// placeFill gives the layer the container's inner rect.
	placeFill
	// placeCenter centers the layer at its size, shrunk to fit.
	placeCenter
)

type layer struct {
	name          string
	item          tview.Primitive
	placement     placement
	width, height int
	hidden        bool
	disabled      bool
	overlay       bool
}

// active reports whether the layer is shown and takes focus and input.
func (l *layer) active() bool {
	return !l.hidden && !l.disabled
}

// Option configures a layer when it is added.
type Option func(*layer)

func WithName(name string) Option {
	return func(l *layer) { l.name = name }
}

// WithFill sizes the layer to the container's inner rect.
func WithFill() Option {
	return func(l *layer) { l.placement = placeFill }
}

// WithCenter centers the layer at width x height, shrunk to the container
// when it does not fit.
func WithCenter(width, height int) Option {
	return func(l *layer) {
		l.placement = placeCenter
		l.width, l.height = width, height
	}
}

// WithHidden adds the layer hidden.
func WithHidden() Option {
	return func(l *layer) { l.hidden = true }
}

// WithDisabled adds a layer that is drawn but never gets focus or input.
func WithDisabled() Option {
	return func(l *layer) { l.disabled = true }
}

// WithOverlay makes the layer an overlay: while it is active, the layers
// behind it are drawn in the dim style and get no mouse events.
func WithOverlay() Option {
	return func(l *layer) { l.overlay = true }
}

// Layers draws its layers back to front. Focus always goes to the front
// active layer.
type Layers struct {
	*tview.Box

	layers   []*layer
	dim      tcell.Style
	setFocus func(p tview.Primitive)
	changed  func()
}

func New() *Layers {
	return &Layers{
		Box: tview.NewBox(),
		dim: tcell.StyleDefault.Dim(true),
	}
}

// SetChangedFunc sets a function called when the set or order of visible
// layers changes.
func (l *Layers) SetChangedFunc(handler func()) *Layers {
	l.changed = handler
	return l
}

// SetDimStyle sets the style merged into layers behind an active overlay.
// Colors that are not the default replace the layer's; attributes add up.
func (l *Layers) SetDimStyle(style tcell.Style) *Layers {
	l.dim = style
	return l
}

// Add puts item in front of the other layers, replacing a layer of the same
// name.
func (l *Layers) Add(item tview.Primitive, opts ...Option) *Layers {
	added := &layer{item: item}
	for _, opt := range opts {
		opt(added)
	}
	l.update(func() bool {
		visible := !added.hidden
		if added.name != "" {
			if old := l.take(added.name); old != nil {
				visible = visible || !old.hidden
			}
		}
		l.layers = append(l.layers, added)
		return visible
	})
	return l
}

// Remove drops the named layer.
func (l *Layers) Remove(name string) *Layers {
	l.update(func() bool {
		removed := l.take(name)
		return removed != nil && !removed.hidden
	})
	return l
}

func (l *Layers) Show(name string) *Layers {
	return l.setHidden(name, false)
}

func (l *Layers) Hide(name string) *Layers {
	return l.setHidden(name, true)
}

func (l *Layers) Toggle(name string) *Layers {
	return l.setHidden(name, l.Visible(name))
}

func (l *Layers) setHidden(name string, hidden bool) *Layers {
	l.update(func() bool {
		target := l.find(name)
		if target == nil || target.hidden == hidden {
			return false
		}
		if hidden && target.item.HasFocus() {
			target.item.Blur()
		}
		target.hidden = hidden
		return true
	})
	return l
}

// update applies change, reports visible changes, and moves the focus to the
// front active layer if the container had it.
func (l *Layers) update(change func() (visibleChange bool)) {
	focused := l.HasFocus()
	if change() && l.changed != nil {
		l.changed()
	}
	if focused {
		l.Focus(l.setFocus)
	}
}

func (l *Layers) Has(name string) bool {
	return l.find(name) != nil
}

// Visible reports whether the named layer exists and is shown.
func (l *Layers) Visible(name string) bool {
	found := l.find(name)
	return found != nil && !found.hidden
}

// Get returns the named layer's primitive or nil.
func (l *Layers) Get(name string) tview.Primitive {
	if found := l.find(name); found != nil {
		return found.item
	}
	return nil
}

func (l *Layers) Len() int {
	return len(l.layers)
}

// Names returns the layer names front to back.
func (l *Layers) Names(visibleOnly bool) []string {
	var names []string
	for _, each := range slices.Backward(l.layers) {
		if !visibleOnly || !each.hidden {
			names = append(names, each.name)
		}
	}
	return names
}

// Front returns the front visible layer, or "" and nil.
func (l *Layers) Front() (string, tview.Primitive) {
	if i := l.frontmost(func(each *layer) bool { return !each.hidden }); i >= 0 {
		return l.layers[i].name, l.layers[i].item
	}
	return "", nil
}

func (l *Layers) find(name string) *layer {
	for _, each := range l.layers {
		if each.name == name {
			return each
		}
	}
	return nil
}

// take removes and returns the named layer.
func (l *Layers) take(name string) *layer {
	i := slices.IndexFunc(l.layers, func(each *layer) bool { return each.name == name })
	if i < 0 {
		return nil
	}
	taken := l.layers[i]
	l.layers = slices.Delete(l.layers, i, i+1)
	return taken
}

// frontmost returns the index of the front layer matching match, or -1.
func (l *Layers) frontmost(match func(*layer) bool) int {
	for i, each := range slices.Backward(l.layers) {
		if match(each) {
			return i
		}
	}
	return -1
}

// overlayIndex returns the index of the front active overlay, or -1.
func (l *Layers) overlayIndex() int {
	return l.frontmost(func(each *layer) bool { return each.active() && each.overlay })
}

// focused returns the active layer holding the focus.
func (l *Layers) focused() *layer {
	for _, each := range l.layers {
		if !each.disabled && each.item.HasFocus() {
			return each
		}
	}
	return nil
}

func (l *Layers) HasFocus() bool {
	return l.focused() != nil || l.Box.HasFocus()
}

// Focus passes the focus to the front active layer.
func (l *Layers) Focus(delegate func(p tview.Primitive)) {
	if delegate == nil {
		return
	}
	l.setFocus = delegate
	if i := l.frontmost((*layer).active); i >= 0 {
		delegate(l.layers[i].item)
		return
	}
	l.Box.Focus(delegate)
}

// Draw draws this primitive onto the screen.
func (l *Layers) Draw(screen tcell.Screen) {
	l.DrawForSubclass(screen, l)

	x, y, width, height := l.GetInnerRect()
	overlay := l.overlayIndex()
	dimmed := &dimScreen{Screen: screen, style: l.dim}
	for i, each := range l.layers {
		if each.hidden {
			continue
		}
		switch each.placement {
		case placeFill:
			each.item.SetRect(x, y, width, height)
		case placeCenter:
			w, h := min(each.width, width), min(each.height, height)
			each.item.SetRect(x+(width-w)/2, y+(height-h)/2, w, h)
		}
		if i < overlay {
			each.item.Draw(dimmed)
		} else {
			each.item.Draw(screen)
		}
	}
}

// MouseHandler offers the event to the active layers front to back, stopping
// at an active overlay.
func (l *Layers) MouseHandler(action tview.MouseAction, event *tcell.EventMouse) (tview.Primitive, tview.Command) {
	if !l.InRect(event.Position()) {
		return nil, nil
	}
	overlay := l.overlayIndex()
	for i, each := range slices.Backward(l.layers) {
		if i < overlay {
			break
		}
		if !each.active() {
			continue
		}
		if capture, cmd := each.item.MouseHandler(action, event); capture != nil || cmd != nil {
			return capture, cmd
		}
	}
	return nil, nil
}

// InputHandler passes key events to the focused layer.
func (l *Layers) InputHandler(event *tcell.EventKey) tview.Command {
	if f := l.focused(); f != nil {
		return f.item.InputHandler(event)
	}
	return nil
}

// PasteHandler passes pasted text to the focused layer.
func (l *Layers) PasteHandler(text string) tview.Command {
	if f := l.focused(); f != nil {
		return f.item.PasteHandler(text)
	}
	return nil
}

// dimScreen merges a style into every cell written through it.
type dimScreen struct {
	tcell.Screen
	style tcell.Style
}

func (s *dimScreen) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	fg, bg, attrs := s.style.Decompose()
	if fg != tcell.ColorDefault {
		style = style.Foreground(fg)
	}
	if bg != tcell.ColorDefault {
		style = style.Background(bg)
	}
	_, _, own := style.Decompose()
	s.Screen.SetContent(x, y, primary, combining, style.Attributes(own|attrs))
}

var _ tview.Primitive = &Layers{}
