package virtual

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsRenderedCellVisible(t *testing.T) {
	t.Parallel()

	viewport := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	cases := []struct {
		name string
		rect Rect
		want bool
	}{
		{name: "inside", rect: Rect{X: 0, Y: 2, Width: 10, Height: 3}, want: true},
		{name: "bottom edge touches viewport top", rect: Rect{X: 0, Y: -5, Width: 10, Height: 5}, want: true},
		{name: "top edge touches viewport bottom", rect: Rect{X: 0, Y: 10, Width: 10, Height: 5}, want: true},
		{name: "straddles viewport top", rect: Rect{X: 0, Y: -3, Width: 10, Height: 5}, want: true},
		{name: "entirely above", rect: Rect{X: 0, Y: -8, Width: 10, Height: 5}, want: false},
		{name: "entirely below", rect: Rect{X: 0, Y: 11, Width: 10, Height: 5}, want: false},
		{name: "right of viewport", rect: Rect{X: 11, Y: 2, Width: 4, Height: 3}, want: false},
		// Known limitation: a cell taller than the viewport that overflows it
		// on both sides has no edge inside the viewport.
		{name: "overflows both sides", rect: Rect{X: 0, Y: -5, Width: 10, Height: 20}, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cell := CellSnapshot{ID: "a", Loaded: true, Rect: tc.rect}
			require.Equal(t, tc.want, IsRenderedCellVisible(cell, viewport))
		})
	}
}

func TestIsVirtualSizeCellVisible(t *testing.T) {
	t.Parallel()

	viewport := Rect{Width: 10, Height: 50}
	size := Size{Height: 10, OffsetTop: 100}

	require.True(t, IsVirtualSizeCellVisible(size, 50, viewport), "top edge on viewport bottom")
	require.True(t, IsVirtualSizeCellVisible(size, 110, viewport), "bottom edge on viewport top")
	require.True(t, IsVirtualSizeCellVisible(size, 80, viewport))
	require.False(t, IsVirtualSizeCellVisible(size, 0, viewport))
	require.False(t, IsVirtualSizeCellVisible(size, 111, viewport))
}

func TestCellIsRendered(t *testing.T) {
	t.Parallel()

	require.True(t, CellIsRendered(CellSnapshot{Loaded: true}))
	require.False(t, CellIsRendered(CellSnapshot{Loaded: false}))
	require.False(t, CellIsRendered(CellSnapshot{Loaded: true, Hidden: true}))
}
