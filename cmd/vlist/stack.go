package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/xqrs/tview"
	"github.com/xqrs/tview/help"
)

// stack shows a list above its help bar. The list keeps the focus.
type stack struct {
	*tview.Box

	list   *tview.VirtualList
	footer *help.Help
}

func newStack(list *tview.VirtualList, footer *help.Help) *stack {
	return &stack{Box: tview.NewBox(), list: list, footer: footer}
}

func (s *stack) Draw(screen tcell.Screen) {
	s.DrawForSubclass(screen, s)

	x, y, width, height := s.GetInnerRect()
	footerHeight := min(s.footer.Height(), height)
	s.list.SetRect(x, y, width, height-footerHeight)
	s.footer.SetRect(x, y+height-footerHeight, width, footerHeight)
	s.list.Draw(screen)
	s.footer.Draw(screen)
}

func (s *stack) InputHandler(event *tcell.EventKey) tview.Command {
	return s.list.InputHandler(event)
}

func (s *stack) MouseHandler(action tview.MouseAction, event *tcell.EventMouse) (tview.Primitive, tview.Command) {
	if !s.InRect(event.Position()) {
		return nil, nil
	}
	return s.list.MouseHandler(action, event)
}

func (s *stack) Focus(delegate func(p tview.Primitive)) {
	delegate(s.list)
}

func (s *stack) HasFocus() bool {
	return s.list.HasFocus()
}
