package tview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoxInnerRect(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		box  func() *Box
		want [4]int
	}{
		{"plain", func() *Box { return NewBox() }, [4]int{0, 0, 10, 4}},
		{"borders", func() *Box { return NewBox().SetBorders(BordersAll) }, [4]int{1, 1, 8, 2}},
		{"title only", func() *Box { return NewBox().SetTitle("t") }, [4]int{0, 1, 10, 3}},
		{"footer and left border", func() *Box { return NewBox().SetFooter("f").SetBorders(BordersLeft) }, [4]int{1, 0, 9, 3}},
		{
			"borders and padding",
			func() *Box { return NewBox().SetBorders(BordersAll).SetBorderPadding(1, 0, 2, 0) },
			[4]int{3, 2, 6, 1},
		},
		{
			"clamped",
			func() *Box { return NewBox().SetBorders(BordersAll).SetBorderPadding(5, 5, 0, 0) },
			[4]int{1, 6, 8, 0},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			box := tc.box()
			box.SetRect(0, 0, 10, 4)
			x, y, width, height := box.GetInnerRect()
			require.Equal(t, tc.want, [4]int{x, y, width, height})
		})
	}
}

func TestBoxDrawBordersAndTitle(t *testing.T) {
	t.Parallel()

	screen := newTestScreen(t, 10, 3)
	box := NewBox().SetBorders(BordersAll).SetTitle("hi")
	box.SetRect(0, 0, 10, 3)
	box.Draw(screen)

	top := screenRow(screen, 0)
	require.True(t, strings.HasPrefix(top, BoxDrawingsLightDownAndRight))
	require.True(t, strings.HasSuffix(top, BoxDrawingsLightDownAndLeft))
	require.Contains(t, top, "hi")
	require.Equal(t, "│        │", screenRow(screen, 1))
	require.Equal(t, "└────────┘", screenRow(screen, 2))
}

func TestBoxTitleTruncation(t *testing.T) {
	t.Parallel()

	screen := newTestScreen(t, 8, 3)
	box := NewBox().SetBorders(BordersAll).SetTitle("a very long title")
	box.SetRect(0, 0, 8, 3)
	box.Draw(screen)

	require.Contains(t, screenRow(screen, 0), SemigraphicsHorizontalEllipsis)
}

func TestBoxMouseFocus(t *testing.T) {
	t.Parallel()

	box := NewBox()
	box.SetRect(0, 0, 5, 5)
	require.True(t, box.InRect(4, 4))
	require.False(t, box.InRect(5, 0))
	require.False(t, box.InInnerRect(-1, 0))
}

func TestBorderSetByName(t *testing.T) {
	t.Parallel()

	set, borders, err := BorderSetByName("Round")
	require.NoError(t, err)
	require.Equal(t, BordersAll, borders)
	require.Equal(t, BoxDrawingsLightArcDownAndRight, set.TopLeft)

	set, borders, err = BorderSetByName("")
	require.NoError(t, err)
	require.Equal(t, BordersAll, borders)
	require.Equal(t, BorderSetPlain(), set)

	_, borders, err = BorderSetByName("none")
	require.NoError(t, err)
	require.Equal(t, BordersNone, borders)

	_, _, err = BorderSetByName("dotted")
	require.ErrorContains(t, err, "dotted")
}

func TestBoxDrawDoubleBorderWithRightFooter(t *testing.T) {
	t.Parallel()

	set, _, err := BorderSetByName("double")
	require.NoError(t, err)

	screen := newTestScreen(t, 8, 3)
	box := NewBox().SetBorders(BordersAll).SetBorderSet(set).SetFooter("1/9").SetFooterAlignment(AlignmentRight)
	box.SetRect(0, 0, 8, 3)
	box.Draw(screen)

	require.Equal(t, "╔══════╗", screenRow(screen, 0))
	require.Equal(t, "║      ║", screenRow(screen, 1))
	require.Equal(t, "╚═══1/9╝", screenRow(screen, 2))
}
