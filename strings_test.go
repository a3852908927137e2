package tview

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

func TestLineBuilder(t *testing.T) {
	t.Parallel()

	red := tcell.StyleDefault.Foreground(tcell.ColorRed)
	b := NewLineBuilder()
	b.Write("ab", red)
	b.Write("c\nd", red)
	b.Write("e", tcell.StyleDefault)

	require.Equal(t, []Line{
		{{Text: "abc", Style: red}},
		{{Text: "d", Style: red}, {Text: "e", Style: tcell.StyleDefault}},
	}, b.Finish())
}

func TestWrapLine(t *testing.T) {
	t.Parallel()

	red := tcell.StyleDefault.Foreground(tcell.ColorRed)
	blue := tcell.StyleDefault.Foreground(tcell.ColorBlue)

	cases := []struct {
		name  string
		line  Line
		width int
		want  []Line
	}{
		{
			name:  "fits",
			line:  Line{{Text: "abc", Style: red}},
			width: 5,
			want:  []Line{{{Text: "abc", Style: red}}},
		},
		{
			name:  "zero width keeps the line",
			line:  Line{{Text: "abc", Style: red}},
			width: 0,
			want:  []Line{{{Text: "abc", Style: red}}},
		},
		{
			name:  "breaks at spaces and keeps styles",
			line:  Line{{Text: "aa", Style: red}, {Text: "aa bbbb", Style: blue}},
			width: 5,
			want: []Line{
				{{Text: "aa", Style: red}, {Text: "aa ", Style: blue}},
				{{Text: "bbbb", Style: blue}},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, WrapLine(tc.line, tc.width))
		})
	}
}

func TestLineText(t *testing.T) {
	t.Parallel()

	line := Line{{Text: "ab"}, {Text: "cd"}}
	require.Equal(t, "abcd", line.Text())
	require.Equal(t, 4, line.Width())
	require.Equal(t, 4, Line{{Text: "日本"}}.Width())
}

func TestWordWrap(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"empty", "", 4, []string{""}},
		{"no width", "abc", 0, nil},
		{"fits", "abc", 4, []string{"abc"}},
		{"at spaces", "aaaa bbbb", 5, []string{"aaaa ", "bbbb"}},
		{"long word is cut", "abcdefgh", 3, []string{"abc", "def", "gh"}},
		{"newline", "ab\ncd", 10, []string{"ab", "cd"}},
		{"wide runes", "日本語", 4, []string{"日本", "語"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, WordWrap(tc.text, tc.width))
		})
	}
}

func TestPrintAlignment(t *testing.T) {
	t.Parallel()

	screen := newTestScreen(t, 8, 3)
	PrintWithStyle(screen, "ab", 0, 0, 8, AlignmentRight, tcell.StyleDefault)
	PrintWithStyle(screen, "ab", 0, 1, 8, AlignmentCenter, tcell.StyleDefault)
	printed, width := PrintWithStyle(screen, "abcdefghij", 0, 2, 8, AlignmentRight, tcell.StyleDefault)

	require.Equal(t, "      ab", screenRow(screen, 0))
	require.Equal(t, "   ab", screenRow(screen, 1))
	require.Equal(t, "cdefghij", screenRow(screen, 2))
	require.Equal(t, 8, printed)
	require.Equal(t, 8, width)
}
