package tview

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlaceThumb(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name                          string
		cells, total, visible, offset int
		want                          thumb
	}{
		{"no track", 0, 100, 10, 0, thumb{}},
		{"content fits", 10, 5, 10, 0, thumb{cells: 10, length: 80}},
		{"at start", 10, 100, 10, 0, thumb{cells: 10, length: 8}},
		{"at end", 10, 100, 10, 90, thumb{cells: 10, start: 72, length: 8}},
		{"offset clamped", 10, 100, 10, 500, thumb{cells: 10, start: 72, length: 8}},
		{"half visible", 4, 20, 10, 5, thumb{cells: 4, start: 8, length: 16}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, placeThumb(tc.cells, tc.total, tc.visible, tc.offset))
		})
	}
}

func TestThumbCovered(t *testing.T) {
	t.Parallel()

	th := thumb{cells: 3, start: 5, length: 8}
	from, n := th.covered(0)
	require.Equal(t, []int{5, 3}, []int{from, n})
	from, n = th.covered(1)
	require.Equal(t, []int{0, 5}, []int{from, n})
	from, n = th.covered(2)
	require.Equal(t, []int{0, 0}, []int{from, n})
}

func TestScrollBarTrackClick(t *testing.T) {
	t.Parallel()

	bar := NewScrollBar().SetPosition(100, 10, 20)
	bar.SetRect(0, 0, 1, 10)

	// The thumb covers row 2.
	top, ok := bar.TrackClick(9)
	require.True(t, ok)
	require.Equal(t, 30, top)

	top, ok = bar.TrackClick(0)
	require.True(t, ok)
	require.Equal(t, 10, top)

	top, ok = bar.TrackClick(2)
	require.True(t, ok)
	require.Equal(t, 20, top)

	_, ok = bar.TrackClick(10)
	require.False(t, ok)

	bar.SetJumpOnClick(true)
	top, ok = bar.TrackClick(9)
	require.True(t, ok)
	require.Equal(t, 90, top)
}

func TestScrollBarTrackClickWithArrows(t *testing.T) {
	t.Parallel()

	bar := NewScrollBar().SetPosition(100, 10, 0).SetArrows(true).SetJumpOnClick(true)
	bar.SetRect(0, 0, 1, 10)

	_, ok := bar.TrackClick(0)
	require.False(t, ok, "arrows are not part of the track")

	top, ok := bar.TrackClick(8)
	require.True(t, ok)
	require.Equal(t, 90, top)
}

func TestScrollBarNothingToScroll(t *testing.T) {
	t.Parallel()

	screen := newTestScreen(t, 1, 4)
	bar := NewScrollBar().SetPosition(3, 4, 0).SetGlyphs(ScrollBarGlyphsUnicode)
	bar.SetRect(0, 0, 1, 4)

	_, ok := bar.TrackClick(1)
	require.False(t, ok)

	bar.Draw(screen)
	require.Empty(t, screenRow(screen, 0))

	bar.SetAlwaysShow(true).Draw(screen)
	require.Equal(t, "█", screenRow(screen, 0))
	require.Equal(t, "█", screenRow(screen, 3))
}

func TestScrollBarDraw(t *testing.T) {
	t.Parallel()

	screen := newTestScreen(t, 1, 4)
	bar := NewScrollBar().
		SetPosition(8, 4, 0).
		SetGlyphs(ScrollBarGlyphsUnicode).
		SetArrows(true)
	bar.SetRect(0, 0, 1, 4)
	bar.Draw(screen)

	require.Equal(t, "▲", screenRow(screen, 0))
	require.Equal(t, "█", screenRow(screen, 1))
	require.Equal(t, "│", screenRow(screen, 2))
	require.Equal(t, "▼", screenRow(screen, 3))
}

func TestScrollBarDrawFractionalThumb(t *testing.T) {
	t.Parallel()

	screen := newTestScreen(t, 1, 2)
	bar := NewScrollBar().SetPosition(4, 2, 1).SetGlyphs(ScrollBarGlyphsUnicode)
	bar.SetRect(0, 0, 1, 2)
	bar.Draw(screen)

	// An 8 eighths thumb starting 4 eighths down.
	require.Equal(t, "▄", screenRow(screen, 0))
	require.Equal(t, "▀", screenRow(screen, 1))
}

func TestScrollBarGlyphsByName(t *testing.T) {
	t.Parallel()

	glyphs, ok := ScrollBarGlyphsByName("unicode")
	require.True(t, ok)
	require.Equal(t, ScrollBarGlyphsUnicode, glyphs)

	glyphs, ok = ScrollBarGlyphsByName("")
	require.True(t, ok)
	require.Equal(t, " ", glyphs.Track)
	require.Equal(t, ScrollBarGlyphsLegacy.Upper, glyphs.Upper)

	_, ok = ScrollBarGlyphsByName("fancy")
	require.False(t, ok)
}
