package tview

// Command is what a handler asks the Application to do once it returns. Nil
// means nothing.
type Command any

// BatchCommand runs its commands in order.
type BatchCommand []Command

// AppendCommand combines two commands into one, flattening batches.
func AppendCommand(current, next Command) Command {
	switch {
	case next == nil:
		return current
	case current == nil:
		return next
	}
	var batch BatchCommand
	for _, cmd := range []Command{current, next} {
		if nested, ok := cmd.(BatchCommand); ok {
			batch = append(batch, nested...)
		} else {
			batch = append(batch, cmd)
		}
	}
	return batch
}

// SetFocusCommand moves the focus to Target.
type SetFocusCommand struct {
	Target Primitive
}

// RedrawCommand asks for a redraw after the event.
type RedrawCommand struct{}

// QuitCommand stops the application.
type QuitCommand struct{}

// ConsumeEventCommand marks an event as handled without other effects.
type ConsumeEventCommand struct{}

// ScrollCommand reports that a list scrolled to Top.
type ScrollCommand struct {
	Top int
}
