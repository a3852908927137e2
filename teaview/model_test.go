package teaview

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/xqrs/tview/virtual"
)

type textItem struct {
	id      string
	text    string
	pending bool
	hidden  bool
}

func (t *textItem) ID() string { return t.id }

func (t *textItem) Render(int) string {
	if t.pending {
		return "loading"
	}
	return t.text
}

func (t *textItem) Loaded() bool { return !t.pending }
func (t *textItem) Hidden() bool { return t.hidden }

func makeItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = &textItem{id: strconv.Itoa(i), text: fmt.Sprintf("item %d", i)}
	}
	return items
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelInitialWindow(t *testing.T) {
	t.Parallel()

	m := New()
	m.SetItems(makeItems(100))
	require.Nil(t, m.Init())
	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 20, Height: 5})
	require.Nil(t, cmd)

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 5)
	require.Equal(t, "item 0", lines[0])
	require.Equal(t, "item 4", lines[4])

	start, end := m.Range()
	require.Equal(t, 0, start)
	require.LessOrEqual(t, end, 5+2*virtual.DefaultBufferSize)
	require.False(t, m.Mounted("50"))
}

func TestModelKeys(t *testing.T) {
	t.Parallel()

	m := New()
	m.SetItems(makeItems(100))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 5})

	tests := []struct {
		msg tea.KeyMsg
		top int
	}{
		{tea.KeyMsg{Type: tea.KeyDown}, 1},
		{runes("j"), 2},
		{tea.KeyMsg{Type: tea.KeyPgDown}, 6},
		{runes("k"), 5},
		{runes("G"), 95},
		{tea.KeyMsg{Type: tea.KeyHome}, 0},
		{tea.KeyMsg{Type: tea.KeyEnd}, 95},
		{runes("g"), 0},
	}
	for _, tt := range tests {
		m, _ = update(t, m, tt.msg)
		require.Equal(t, tt.top, m.ScrollTop(), "after %s", tt.msg)
	}

	m, _ = update(t, m, runes("G"))
	lines := strings.Split(m.View(), "\n")
	require.Equal(t, "item 95", lines[0])
	require.Equal(t, "item 99", lines[4])
	require.True(t, m.Mounted("99"))
	require.False(t, m.Mounted("0"))

	m, cmd := update(t, m, runes("x"))
	require.Nil(t, cmd)
	require.Equal(t, 95, m.ScrollTop())
}

func TestModelQuit(t *testing.T) {
	t.Parallel()

	m := New()
	_, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModelMouseWheel(t *testing.T) {
	t.Parallel()

	m := New()
	m.SetItems(makeItems(100))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 5})

	m, _ = update(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	require.Equal(t, wheelStep, m.ScrollTop())

	m, _ = update(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	require.Zero(t, m.ScrollTop())

	m, _ = update(t, m, tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	require.Zero(t, m.ScrollTop())
}

func TestModelWaitsForLoadingItems(t *testing.T) {
	t.Parallel()

	items := makeItems(20)
	pending := items[1].(*textItem)
	pending.pending = true

	m := New()
	m.SetItems(items)
	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 20, Height: 5})
	require.NotNil(t, cmd, "a frame is scheduled while an item loads")
	require.Equal(t, virtual.KindWaiting, m.LastUpdate().Position.Kind)
	require.Contains(t, m.View(), "loading")

	m, cmd = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 5})
	require.Nil(t, cmd, "only one frame is pending at a time")

	pending.pending = false
	m, cmd = update(t, m, frameMsg{})
	require.Nil(t, cmd)
	require.NotEqual(t, virtual.KindWaiting, m.LastUpdate().Position.Kind)
	require.Contains(t, m.View(), "item 1")
}

func TestModelHiddenItems(t *testing.T) {
	t.Parallel()

	items := makeItems(10)
	items[1].(*textItem).hidden = true

	m := New()
	m.SetItems(items)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 3})

	require.Equal(t, "item 0\nitem 2\nitem 3", m.View())
}

func TestModelInverseLoading(t *testing.T) {
	t.Parallel()

	m := New(WithConfig(virtual.Config{BufferSize: 2, InverseLoading: true}))
	m.SetItems(makeItems(50))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})
	require.Equal(t, 40, m.ScrollTop())

	m, _ = update(t, m, AppendMsg{Items: []Item{&textItem{id: "50", text: "item 50"}}})
	require.Equal(t, 41, m.ScrollTop())
	require.True(t, m.Mounted("50"))

	lines := strings.Split(m.View(), "\n")
	require.Equal(t, "item 50", lines[len(lines)-1])
}

func TestModelScrollTo(t *testing.T) {
	t.Parallel()

	m := New()
	m.SetItems(makeItems(100))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 5})

	m.ScrollTo("40", virtual.AlignStart)
	m, _ = update(t, m, frameMsg{})
	require.Equal(t, 40, m.ScrollTop())
	require.True(t, m.Mounted("40"))
}

func TestModelHelpFooter(t *testing.T) {
	t.Parallel()

	m := New(WithHelp(true))
	m.SetItems(makeItems(100))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 6})

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 6)
	require.Equal(t, "item 4", lines[4])
	require.Contains(t, lines[5], "down")

	m, _ = update(t, m, runes("?"))
	require.True(t, m.Help.ShowAll)
	require.Len(t, strings.Split(m.View(), "\n"), 6)
}
