package virtual

import "fmt"

// Kind discriminates the variants of a Position.
type Kind uint8

const (
	// KindWaiting means a mounted cell has not finished loading; nothing can be
	// decided this cycle.
	KindWaiting Kind = iota
	// KindIndex carries an absolute window.
	KindIndex
	// KindShift carries an adjustment relative to the mounted window.
	KindShift
)

func (k Kind) String() string {
	switch k {
	case KindWaiting:
		return "waiting-for-cells-to-render"
	case KindIndex:
		return "index"
	case KindShift:
		return "shift"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Position is the result of one resolution cycle.
//
// For KindIndex, StartIndex and EndIndex are inclusive item indices. For
// KindShift, StartShift and EndShift count items relative to the mounted
// window: a positive value grows the window on that end, a negative value
// trims it. Cells is the snapshot the position was computed from.
type Position struct {
	Kind       Kind
	StartIndex int
	EndIndex   int
	StartShift int
	EndShift   int
	Cells      []CellSnapshot
}

// Waiting returns the waiting-for-cells-to-render position.
func Waiting() Position {
	return Position{Kind: KindWaiting}
}

// IndexPosition returns an absolute window position.
func IndexPosition(start, end int, cells []CellSnapshot) Position {
	return Position{Kind: KindIndex, StartIndex: start, EndIndex: end, Cells: cells}
}

// ShiftPosition returns a relative window position.
func ShiftPosition(startShift, endShift int, cells []CellSnapshot) Position {
	return Position{Kind: KindShift, StartShift: startShift, EndShift: endShift, Cells: cells}
}

func (p Position) String() string {
	switch p.Kind {
	case KindIndex:
		return fmt.Sprintf("index[%d..%d]", p.StartIndex, p.EndIndex)
	case KindShift:
		return fmt.Sprintf("shift[%+d,%+d]", p.StartShift, p.EndShift)
	}
	return p.Kind.String()
}
