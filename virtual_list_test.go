package tview

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/xqrs/tview/virtual"
)

func newTestList(items []VirtualListItem) *VirtualList {
	list := NewVirtualList().SetScrollBarVisible(false).SetItems(items)
	list.SetRect(0, 0, 20, 5)
	return list
}

func TestVirtualListMountsAroundViewport(t *testing.T) {
	t.Parallel()

	screen := newTestScreen(t, 20, 5)
	var ranges [][2]int
	list := newTestList(textItems(100)).SetChangedFunc(func(start, end int) {
		ranges = append(ranges, [2]int{start, end})
	})
	list.Draw(screen)

	require.Equal(t, "item 0", screenRow(screen, 0))
	require.Equal(t, "item 4", screenRow(screen, 4))

	start, end := list.MountedRange()
	require.Equal(t, [2]int{0, 7}, [2]int{start, end})
	require.True(t, list.IsMounted("7"))
	require.False(t, list.IsMounted("8"))
	require.Equal(t, [][2]int{{0, 7}}, ranges)
	require.Equal(t, virtual.KindShift, list.LastUpdate().Position.Kind)
}

func TestVirtualListKeys(t *testing.T) {
	t.Parallel()

	screen := newTestScreen(t, 20, 5)
	list := newTestList(textItems(100))
	list.Draw(screen)

	require.Equal(t, ScrollCommand{Top: 1}, list.InputHandler(keyEvent(tcell.KeyDown, 0)))
	list.Draw(screen)
	require.Equal(t, "item 1", screenRow(screen, 0))

	require.Equal(t, ScrollCommand{Top: 5}, list.InputHandler(keyEvent(tcell.KeyPgDn, 0)))
	require.Equal(t, ScrollCommand{Top: 4}, list.InputHandler(keyEvent(tcell.KeyRune, 'k')))

	require.Equal(t, ScrollCommand{Top: 95}, list.InputHandler(keyEvent(tcell.KeyEnd, 0)))
	list.Draw(screen)
	require.Equal(t, "item 95", screenRow(screen, 0))
	require.Equal(t, "item 99", screenRow(screen, 4))
	require.True(t, list.IsMounted("99"))
	require.False(t, list.IsMounted("0"))

	require.Equal(t, ScrollCommand{Top: 0}, list.InputHandler(keyEvent(tcell.KeyRune, 'g')))
	list.Draw(screen)
	require.Equal(t, "item 0", screenRow(screen, 0))

	require.Nil(t, list.InputHandler(keyEvent(tcell.KeyRune, 'x')))
}

func TestVirtualListHiddenItemsTakeNoRows(t *testing.T) {
	t.Parallel()

	screen := newTestScreen(t, 20, 5)
	items := textItems(10)
	items[1].(*TextItem).SetHidden(true)
	list := newTestList(items)
	list.Draw(screen)

	require.Equal(t, "item 0", screenRow(screen, 0))
	require.Equal(t, "item 2", screenRow(screen, 1))
	require.True(t, list.IsMounted("1"))
}

func TestVirtualListWaitsForPendingItems(t *testing.T) {
	t.Parallel()

	screen := newTestScreen(t, 20, 5)
	items := textItems(20)
	pending := items[1].(*TextItem).SetPending(true)

	redraws := make(chan struct{}, 10)
	list := newTestList(items).
		SetFrameInterval(10 * time.Millisecond).
		SetRedrawFunc(func() { redraws <- struct{}{} })
	list.Draw(screen)

	require.Equal(t, virtual.KindWaiting, list.LastUpdate().Position.Kind)
	require.Equal(t, "loading"+SemigraphicsHorizontalEllipsis, screenRow(screen, 1))
	require.Eventually(t, func() bool { return len(redraws) > 0 }, time.Second, 5*time.Millisecond)

	pending.SetPending(false)
	list.Draw(screen)
	require.NotEqual(t, virtual.KindWaiting, list.LastUpdate().Position.Kind)
	require.Equal(t, "item 1", screenRow(screen, 1))
}

func TestVirtualListInverseLoadingFollowsAppends(t *testing.T) {
	t.Parallel()

	screen := newTestScreen(t, 20, 5)
	list := NewVirtualList().SetScrollBarVisible(false).SetInverseLoading(true).SetItems(textItems(50))
	list.SetRect(0, 0, 20, 5)
	list.Draw(screen)

	require.Equal(t, "item 45", screenRow(screen, 0))
	require.Equal(t, "item 49", screenRow(screen, 4))

	list.AppendItems(NewTextItem("50").SetText("item 50", tcell.StyleDefault))
	list.Draw(screen)

	require.Equal(t, "item 46", screenRow(screen, 0))
	require.Equal(t, "item 50", screenRow(screen, 4))
	require.True(t, list.IsMounted("50"))
}

func TestVirtualListScrollToItem(t *testing.T) {
	t.Parallel()

	screen := newTestScreen(t, 20, 5)
	list := newTestList(textItems(100))
	list.Draw(screen)

	list.ScrollTo("40", virtual.AlignCenter)
	list.Draw(screen)
	require.Equal(t, "item 40", screenRow(screen, 2))

	list.ScrollTo("missing", virtual.AlignStart)
	list.Draw(screen)
	require.Equal(t, "item 0", screenRow(screen, 0))
}

func TestVirtualListMouse(t *testing.T) {
	t.Parallel()

	screen := newTestScreen(t, 20, 5)
	var selected string
	list := newTestList(textItems(100)).SetSelectedFunc(func(item VirtualListItem) {
		selected = item.ID()
	})
	list.Draw(screen)

	capture, cmd := list.MouseHandler(MouseLeftDown, tcell.NewEventMouse(1, 1, tcell.ButtonPrimary, tcell.ModNone))
	require.Nil(t, capture)
	require.Equal(t, SetFocusCommand{Target: list}, cmd)

	_, cmd = list.MouseHandler(MouseScrollDown, tcell.NewEventMouse(1, 1, tcell.WheelDown, tcell.ModNone))
	require.Equal(t, ScrollCommand{Top: 3}, cmd)
	list.Draw(screen)

	_, cmd = list.MouseHandler(MouseLeftClick, tcell.NewEventMouse(1, 2, tcell.ButtonNone, tcell.ModNone))
	require.Equal(t, RedrawCommand{}, cmd)
	require.Equal(t, "5", selected)

	_, cmd = list.MouseHandler(MouseLeftClick, tcell.NewEventMouse(30, 2, tcell.ButtonNone, tcell.ModNone))
	require.Nil(t, cmd)
}

func TestVirtualListScrollBarClick(t *testing.T) {
	t.Parallel()

	screen := newTestScreen(t, 20, 5)
	list := NewVirtualList().SetItems(textItems(100))
	list.SetRect(0, 0, 20, 5)
	list.Draw(screen)

	_, cmd := list.MouseHandler(MouseLeftClick, tcell.NewEventMouse(19, 4, tcell.ButtonNone, tcell.ModNone))
	require.Equal(t, ScrollCommand{Top: 5}, cmd)
	list.Draw(screen)
	require.Equal(t, 5, list.ScrollTop())
}

func TestVirtualListBorderShrinksViewport(t *testing.T) {
	t.Parallel()

	screen := newTestScreen(t, 20, 7)
	list := NewVirtualList().SetScrollBarVisible(false).SetItems(textItems(100))
	list.SetBorders(BordersAll)
	list.SetRect(0, 0, 20, 7)
	list.Draw(screen)

	require.Equal(t, "│item 0", screenRow(screen, 1)[:len("│item 0")])
	require.Equal(t, "│item 4", screenRow(screen, 5)[:len("│item 4")])
}
