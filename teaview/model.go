// Package teaview renders a virtually scrolled list as a Bubble Tea model.
// Only the items in the resolved window are ever rendered.
package teaview

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/xqrs/tview/virtual"
)

// Item is a list entry. Render returns the item's text at the given width;
// its line count is the item's height.
type Item interface {
	ID() string
	Render(width int) string
}

// Loader is implemented by items that can still be loading. The window is
// not resolved while a mounted item is loading.
type Loader interface {
	Loaded() bool
}

// Hider is implemented by items that can be hidden. Hidden items take no rows.
type Hider interface {
	Hidden() bool
}

// AppendMsg appends items to the list.
type AppendMsg struct {
	Items []Item
}

type frameMsg struct{}

const wheelStep = 3

// Model is a virtually scrolled list.
type Model struct {
	KeyMap KeyMap
	Help   help.Model

	scroller *virtual.Scroller
	logger   zerolog.Logger
	interval time.Duration
	showHelp bool

	width, height int
	framePending  bool
	last          virtual.Update
}

// Option configures a Model.
type Option func(*Model)

// WithConfig sets the window configuration.
func WithConfig(config virtual.Config) Option {
	return func(m *Model) {
		m.scroller.Window().SetConfig(config)
	}
}

// WithLogger sets the logger receiving resolution cycles.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
		m.scroller.Window().SetLogger(logger)
	}
}

// WithGap sets the number of blank rows between items.
func WithGap(gap int) Option {
	return func(m *Model) {
		m.scroller.SetGap(gap)
	}
}

// WithEstimatedHeight sets the height assumed for items never rendered.
func WithEstimatedHeight(height int) Option {
	return func(m *Model) {
		m.scroller.SetEstimate(height)
	}
}

// WithFrameInterval sets how long to wait before polling loading items again.
func WithFrameInterval(interval time.Duration) Option {
	return func(m *Model) {
		if interval > 0 {
			m.interval = interval
		}
	}
}

// WithHelp shows a help footer.
func WithHelp(show bool) Option {
	return func(m *Model) {
		m.showHelp = show
	}
}

// New returns an empty list.
func New(opts ...Option) Model {
	m := Model{
		KeyMap:   DefaultKeyMap(),
		Help:     help.New(),
		logger:   zerolog.Nop(),
		interval: virtual.DefaultFrameInterval,
		scroller: virtual.NewScroller(
			virtual.NewWindow(virtual.Config{BufferSize: virtual.DefaultBufferSize}),
			measure,
		),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.scroller.Window().Config().InverseLoading {
		m.scroller.ScrollToEnd()
	}
	return m
}

func measure(item virtual.Item, width int) virtual.Measurement {
	if h, ok := item.(Hider); ok && h.Hidden() {
		return virtual.Measurement{Loaded: true, Hidden: true}
	}
	loaded := true
	if l, ok := item.(Loader); ok {
		loaded = l.Loaded()
	}
	return virtual.Measurement{
		Height: lipgloss.Height(item.(Item).Render(width)),
		Loaded: loaded,
	}
}

// SetItems replaces the items.
func (m *Model) SetItems(items []Item) {
	m.scroller.SetItems(virtualItems(items))
}

// AppendItems adds items at the end.
func (m *Model) AppendItems(items ...Item) {
	m.scroller.AppendItems(virtualItems(items)...)
}

// SetSize sets the size of the whole model, help footer included.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = max(width, 0), max(height, 0)
	m.Help.Width = m.width
}

// ScrollTo scrolls the item with the given id into view.
func (m *Model) ScrollTo(id string, align virtual.Align) {
	m.scroller.ScrollTo(id, align)
}

// ScrollTop returns the current scroll position in rows.
func (m Model) ScrollTop() int {
	return m.scroller.ScrollTop()
}

// Range returns the inclusive range of mounted items.
func (m Model) Range() (start, end int) {
	return m.scroller.Window().Range()
}

// Mounted reports whether the item with the given id is rendered.
func (m Model) Mounted(id string) bool {
	return m.scroller.Mounted(id)
}

// LastUpdate returns the outcome of the latest resolution cycle.
func (m Model) LastUpdate() virtual.Update {
	return m.last
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.KeyMap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.KeyMap.Help):
			m.Help.ShowAll = !m.Help.ShowAll
		case key.Matches(msg, m.KeyMap.Up):
			m.scroller.ScrollBy(-1)
		case key.Matches(msg, m.KeyMap.Down):
			m.scroller.ScrollBy(1)
		case key.Matches(msg, m.KeyMap.PageUp):
			m.scroller.ScrollBy(-max(m.listHeight()-1, 1))
		case key.Matches(msg, m.KeyMap.PageDown):
			m.scroller.ScrollBy(max(m.listHeight()-1, 1))
		case key.Matches(msg, m.KeyMap.Top):
			m.scroller.ScrollToStart()
		case key.Matches(msg, m.KeyMap.Bottom):
			m.scroller.ScrollToEnd()
		default:
			return m, nil
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scroller.ScrollBy(-wheelStep)
		case tea.MouseButtonWheelDown:
			m.scroller.ScrollBy(wheelStep)
		default:
			return m, nil
		}
	case AppendMsg:
		m.AppendItems(msg.Items...)
	case frameMsg:
		m.framePending = false
	default:
		return m, nil
	}
	cmd := m.sync()
	return m, cmd
}

// sync resolves the window for the current viewport. While items are loading,
// or the window did not settle, it schedules another cycle for the next frame.
func (m *Model) sync() tea.Cmd {
	if m.width <= 0 || m.height <= 0 {
		return nil
	}
	m.scroller.SetViewport(virtual.Rect{Width: m.width, Height: m.listHeight()})
	update := m.scroller.Sync()
	if update.Changed || update.Start != m.last.Start || update.End != m.last.End {
		m.logger.Debug().
			Int("start", update.Start).
			Int("end", update.End).
			Int("scroll_top", m.scroller.ScrollTop()).
			Msg("window changed")
	}
	m.last = update

	if update.Position.Kind != virtual.KindWaiting && !update.Changed {
		return nil
	}
	if m.framePending {
		return nil
	}
	m.framePending = true
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func (m Model) listHeight() int {
	if !m.showHelp {
		return m.height
	}
	return max(m.height-lipgloss.Height(m.Help.View(m.KeyMap)), 0)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	height := m.listHeight()
	rows := make([]string, height)
	line := lipgloss.NewStyle().MaxWidth(m.width)
	for _, p := range m.scroller.Placements() {
		if p.Hidden || p.Height <= 0 || p.Row >= height || p.Row+p.Height <= 0 {
			continue
		}
		for i, text := range strings.Split(p.Item.(Item).Render(m.width), "\n") {
			row := p.Row + i
			if i >= p.Height || row >= height {
				break
			}
			if row >= 0 {
				rows[row] = line.Render(text)
			}
		}
	}

	view := strings.Join(rows, "\n")
	if m.showHelp {
		view += "\n" + m.Help.View(m.KeyMap)
	}
	return view
}

func virtualItems(items []Item) []virtual.Item {
	out := make([]virtual.Item, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
