package help

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/xqrs/tview"
	"github.com/xqrs/tview/keybind"
)

func TestShortHelpLine(t *testing.T) {
	t.Parallel()

	keys := tview.DefaultVirtualListKeyMap()
	cases := []struct {
		name  string
		width int
		want  string
	}{
		{"unbounded", 0, "↑/k up • ↓/j down • g/home top • G/end bottom"},
		{"truncated", 20, "↑/k up • ↓/j down …"},
		{"too narrow", 4, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, New().ShortHelpLine(keys.ShortHelp(), tc.width))
		})
	}
}

func TestShortHelpSkipsDisabledKeys(t *testing.T) {
	t.Parallel()

	bindings := []keybind.Keybind{
		keybind.NewKeybind(keybind.WithKeys("q"), keybind.WithHelp("q", "quit")),
		keybind.NewKeybind(keybind.WithKeys("x"), keybind.WithHelp("x", "hidden"), keybind.WithDisabled()),
		keybind.NewKeybind(keybind.WithKeys("?"), keybind.WithHelp("?", "")),
	}
	require.Equal(t, "q quit • ?", New().ShortHelpLine(bindings, 0))
}

func TestFullHelpLines(t *testing.T) {
	t.Parallel()

	keys := tview.DefaultVirtualListKeyMap()
	lines := New().FullHelpLines(keys.FullHelp(), 0)
	require.Equal(t, []string{
		"↑/k up      pgup page up      g/home top",
		"↓/j down    pgdn page down    G/end  bottom",
	}, lines)

	lines = New().FullHelpLines(keys.FullHelp(), 30)
	require.Equal(t, []string{
		"↑/k up      pgup page up …",
		"↓/j down    pgdn page down",
	}, lines)
}

func TestHelpDrawWithStatus(t *testing.T) {
	t.Parallel()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 1)

	h := New().SetKeyMap(tview.DefaultVirtualListKeyMap()).SetStatus("3/10")
	h.SetRect(0, 0, 40, 1)
	h.Draw(screen)

	var b strings.Builder
	for x := 0; x < 40; x++ {
		r, _, _, _ := screen.GetContent(x, 0)
		b.WriteRune(r)
	}
	row := b.String()
	require.True(t, strings.HasPrefix(row, "↑/k up • ↓/j down"), row)
	require.True(t, strings.HasSuffix(row, "3/10"), row)
	require.Equal(t, 1, h.Height())

	h.SetShowAll(true)
	require.Equal(t, 2, h.Height())
}
