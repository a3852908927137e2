package help

import "github.com/gdamore/tcell/v2"

// Styles are the styles of the parts of a help view.
type Styles struct {
	Key       tcell.Style
	Desc      tcell.Style
	Separator tcell.Style
	Ellipsis  tcell.Style
	Status    tcell.Style
}

// DefaultStyles dims everything except the descriptions.
func DefaultStyles() Styles {
	dim := tcell.StyleDefault.Dim(true)
	return Styles{
		Key:       dim,
		Desc:      tcell.StyleDefault,
		Separator: dim,
		Ellipsis:  dim,
		Status:    dim,
	}
}
