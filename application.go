package tview

import (
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

const (
	// eventQueueSize bounds both the event and the update queue.
	eventQueueSize = 100
	// resizeSettle is how long a burst of resize events is coalesced for.
	resizeSettle = 50 * time.Millisecond
)

// queuedFunc is a function run on the event loop. done, when set, is closed
// once fn returned.
type queuedFunc struct {
	fn   func()
	done chan struct{}
}

// pasteBuffer collects the key events between the start and the end of a
// bracketed paste.
type pasteBuffer struct {
	active bool
	text   strings.Builder
}

func (p *pasteBuffer) add(event *tcell.EventKey) {
	switch event.Key() {
	case tcell.KeyRune:
		p.text.WriteRune(event.Rune())
	case tcell.KeyEnter:
		p.text.WriteByte('\n')
	case tcell.KeyTab:
		p.text.WriteByte('\t')
	}
}

// Application owns the screen and runs the event loop. Primitives are only
// touched from the loop; other goroutines go through QueueUpdate,
// QueueUpdateDraw, or RequestDraw.
//
//	app := tview.NewApplication().SetRoot(list)
//	if err := app.Run(); err != nil {
//		return err
//	}
type Application struct {
	mu sync.RWMutex

	screen       tcell.Screen
	root         Primitive
	focus        Primitive
	inputCapture func(event *tcell.EventKey) *tcell.EventKey
	mouse        bool
	fullRedraw   bool
	logger       zerolog.Logger

	events  chan tcell.Event
	updates chan queuedFunc

	// Owned by the event loop.
	tracker     mouseTracker
	mouseOwner  Primitive
	paste       pasteBuffer
	lastResize  time.Time
	resizeTimer *time.Timer
	runErr      error
}

// NewApplication returns an application without a screen. Run creates one
// unless SetScreen was called.
func NewApplication() *Application {
	return &Application{
		logger:  zerolog.Nop(),
		events:  make(chan tcell.Event, eventQueueSize),
		updates: make(chan queuedFunc, eventQueueSize),
	}
}

// SetScreen uses an initialized screen instead of the terminal. It has no
// effect once a screen is set.
func (a *Application) SetScreen(screen tcell.Screen) *Application {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.screen == nil {
		a.screen = screen
		a.fullRedraw = true
	}
	return a
}

// SetLogger sets the logger for event loop diagnostics.
func (a *Application) SetLogger(logger zerolog.Logger) *Application {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.logger = logger
	return a
}

// EnableMouse turns on mouse reporting when Run starts.
func (a *Application) EnableMouse(enable bool) *Application {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.mouse = enable
	return a
}

// SetInputCapture sets a function that sees every key event before the root
// primitive does. Returning nil swallows the event.
func (a *Application) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) *Application {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.inputCapture = capture
	return a
}

// start returns the screen to run on, creating it if needed.
func (a *Application) start() (tcell.Screen, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, err
		}
		if err := screen.Init(); err != nil {
			return nil, err
		}
		a.screen = screen
	}
	if a.mouse {
		a.screen.EnableMouse()
	}
	a.screen.EnablePaste()
	return a.screen, nil
}

// Run draws the root primitive and processes events until Stop is called or
// the screen reports an error.
func (a *Application) Run() error {
	screen, err := a.start()
	if err != nil {
		return err
	}

	// A panic would otherwise leave the terminal in raw mode.
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()

	a.draw()
	go func() {
		for {
			event := screen.PollEvent()
			a.events <- event
			if event == nil {
				return
			}
		}
	}()

	for {
		select {
		case event := <-a.events:
			if event == nil {
				if a.resizeTimer != nil {
					a.resizeTimer.Stop()
				}
				return a.runErr
			}
			a.dispatch(event)
		case queued := <-a.updates:
			queued.fn()
			if queued.done != nil {
				close(queued.done)
			}
		}
	}
}

func (a *Application) dispatch(event tcell.Event) {
	switch event := event.(type) {
	case *tcell.EventKey:
		a.handleKey(event)
	case *tcell.EventPaste:
		a.handlePaste(event)
	case *tcell.EventResize:
		a.handleResize(event)
	case *tcell.EventMouse:
		a.handleMouse(event)
	case *tcell.EventError:
		a.logger.Error().Err(event).Msg("screen error")
		a.runErr = event
		a.Stop()
	}
}

func (a *Application) handleKey(event *tcell.EventKey) {
	if a.paste.active {
		a.paste.add(event)
		return
	}

	a.mu.RLock()
	root, capture := a.root, a.inputCapture
	a.mu.RUnlock()

	if capture != nil {
		if event = capture(event); event == nil {
			a.draw()
			return
		}
	}
	if root != nil && root.HasFocus() && a.runCommand(root.InputHandler(event)) {
		a.draw()
	}
}

func (a *Application) handlePaste(event *tcell.EventPaste) {
	if event.Start() {
		a.paste.active = true
		a.paste.text.Reset()
		return
	}
	if !event.End() {
		return
	}
	a.paste.active = false
	root := a.getRoot()
	if root == nil || !root.HasFocus() || a.paste.text.Len() == 0 {
		return
	}
	if a.runCommand(root.PasteHandler(a.paste.text.String())) {
		a.draw()
	}
}

// handleResize redraws at once and again after the burst settled, since some
// terminals report intermediate sizes.
func (a *Application) handleResize(event *tcell.EventResize) {
	a.mu.Lock()
	a.fullRedraw = true
	a.mu.Unlock()

	if time.Since(a.lastResize) < resizeSettle {
		if a.resizeTimer != nil {
			a.resizeTimer.Stop()
		}
		a.resizeTimer = time.AfterFunc(resizeSettle, func() {
			a.QueueEvent(event)
		})
	}
	a.lastResize = time.Now()

	width, height := event.Size()
	a.logger.Debug().Int("width", width).Int("height", height).Msg("screen resized")
	a.draw()
}

// handleMouse sends the derived actions to the primitive that captured the
// mouse, or to the root.
func (a *Application) handleMouse(event *tcell.EventMouse) {
	redraw := false
	for _, action := range a.tracker.actions(event, time.Now()) {
		target := a.mouseOwner
		if target == nil {
			target = a.getRoot()
		}
		if target == nil {
			continue
		}
		owner, cmd := target.MouseHandler(action, event)
		a.mouseOwner = owner
		if a.runCommand(cmd) {
			redraw = true
		}
	}
	if redraw {
		a.draw()
	}
}

// Stop finalizes the screen, which makes Run return.
func (a *Application) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.screen == nil {
		return
	}
	a.screen.Fini()
	a.screen = nil
}

// RequestDraw asks the event loop for a redraw without waiting. A full update
// queue already holds work that ends in a redraw, so the request is dropped
// then. It may be called from any goroutine.
func (a *Application) RequestDraw() {
	select {
	case a.updates <- queuedFunc{fn: func() { a.draw() }}:
	default:
	}
}

func (a *Application) draw() {
	a.mu.Lock()
	screen, root, fullRedraw := a.screen, a.root, a.fullRedraw
	a.fullRedraw = false
	a.mu.Unlock()

	if screen == nil || root == nil {
		return
	}
	width, height := screen.Size()
	root.SetRect(0, 0, width, height)
	if fullRedraw {
		screen.Clear()
	}
	root.Draw(screen)
	screen.Show()
}

func (a *Application) getRoot() Primitive {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.root
}

// SetRoot replaces the root primitive and focuses it.
func (a *Application) SetRoot(root Primitive) *Application {
	a.mu.Lock()
	a.root = root
	a.fullRedraw = a.screen != nil
	a.mu.Unlock()

	return a.SetFocus(root)
}

// SetFocus blurs the focused primitive and focuses p, following any
// delegation from p's Focus.
func (a *Application) SetFocus(p Primitive) *Application {
	a.mu.Lock()
	previous := a.focus
	a.focus = p
	if a.screen != nil {
		a.screen.HideCursor()
	}
	a.mu.Unlock()

	if previous != nil {
		previous.Blur()
	}
	if p != nil {
		p.Focus(func(next Primitive) {
			a.SetFocus(next)
		})
	}
	return a
}

// GetFocus returns the focused primitive or nil.
func (a *Application) GetFocus() Primitive {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.focus
}

// QueueUpdate runs fn on the event loop and waits for it to finish. It must
// not be called from the event loop.
func (a *Application) QueueUpdate(fn func()) *Application {
	done := make(chan struct{})
	a.updates <- queuedFunc{fn: fn, done: done}
	<-done
	return a
}

// QueueUpdateDraw is QueueUpdate followed by a redraw.
func (a *Application) QueueUpdateDraw(fn func()) *Application {
	return a.QueueUpdate(func() {
		fn()
		a.draw()
	})
}

// QueueEvent feeds event to the event loop as if the screen sent it.
func (a *Application) QueueEvent(event tcell.Event) *Application {
	a.events <- event
	return a
}

// runCommand executes cmd and reports whether the screen needs a redraw.
func (a *Application) runCommand(cmd Command) bool {
	switch c := cmd.(type) {
	case BatchCommand:
		redraw := false
		for _, each := range c {
			redraw = a.runCommand(each) || redraw
		}
		return redraw
	case RedrawCommand, ScrollCommand:
		return true
	case QuitCommand:
		a.Stop()
	case SetFocusCommand:
		if c.Target == nil || c.Target == a.GetFocus() {
			return false
		}
		a.SetFocus(c.Target)
		return true
	}
	return false
}
