package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
	"github.com/spf13/cobra"

	"github.com/xqrs/tview"
	"github.com/xqrs/tview/config"
	"github.com/xqrs/tview/help"
	"github.com/xqrs/tview/keybind"
	"github.com/xqrs/tview/layers"
	"github.com/xqrs/tview/teaview"
)

const (
	backendTcell = "tcell"
	backendTea   = "tea"
)

type demoOptions struct {
	items       int
	inverse     bool
	backend     string
	appendEvery time.Duration
}

func newDemoCmd(flags *rootFlags) *cobra.Command {
	opts := &demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Scroll through a large generated list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			s, err := loadSettings(cmd, flags, io.Discard)
			if err != nil {
				return err
			}
			defer s.Close()

			if opts.inverse {
				s.cfg.List.InverseLoading = true
			}
			s.log.Info().
				Str("backend", opts.backend).
				Int("items", opts.items).
				Bool("inverse_loading", s.cfg.List.InverseLoading).
				Msg("starting demo")

			if opts.backend == backendTea {
				return runTeaDemo(s, opts)
			}
			return runTcellDemo(s, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.items, "items", "n", 10000, "Number of generated items")
	cmd.Flags().BoolVar(&opts.inverse, "inverse", false, "Start at the end and follow appended items")
	cmd.Flags().StringVar(&opts.backend, "backend", backendTcell, "Rendering backend (tcell or tea)")
	cmd.Flags().DurationVar(&opts.appendEvery, "append-every", 0, "Append an item at this interval (0 disables)")

	return cmd
}

func (o *demoOptions) validate() error {
	if o.items < 0 {
		return fmt.Errorf("--items must not be negative, got %d", o.items)
	}
	if o.backend != backendTcell && o.backend != backendTea {
		return fmt.Errorf("unknown backend %q (want %s or %s)", o.backend, backendTcell, backendTea)
	}
	if o.appendEvery < 0 {
		return fmt.Errorf("--append-every must not be negative, got %s", o.appendEvery)
	}
	return nil
}

// demoKeyMap extends the list keys with the demo's own.
type demoKeyMap struct {
	tview.VirtualListKeyMap
	Help keybind.Keybind
	Quit keybind.Keybind
}

func newDemoKeyMap() demoKeyMap {
	return demoKeyMap{
		VirtualListKeyMap: tview.DefaultVirtualListKeyMap(),
		Help:              keybind.NewKeybind(keybind.WithKeys("?"), keybind.WithHelp("?", "keys")),
		Quit:              keybind.NewKeybind(keybind.WithKeys("q", "ctrl+c"), keybind.WithHelp("q", "quit")),
	}
}

func (k demoKeyMap) ShortHelp() []keybind.Keybind {
	return append(k.VirtualListKeyMap.ShortHelp(), k.Help, k.Quit)
}

func (k demoKeyMap) FullHelp() [][]keybind.Keybind {
	return append(k.VirtualListKeyMap.FullHelp(), []keybind.Keybind{k.Help, k.Quit})
}

// demoView is the primitive tree of the tcell demo.
type demoView struct {
	root   *layers.Layers
	list   *tview.VirtualList
	footer *help.Help
	keys   demoKeyMap
}

// overrideKeys replaces the keys of every list binding cfg names.
func overrideKeys(keys *tview.VirtualListKeyMap, cfg config.Keys) {
	for _, o := range []struct {
		bind  *keybind.Keybind
		specs []string
	}{
		{&keys.Up, cfg.Up},
		{&keys.Down, cfg.Down},
		{&keys.PageUp, cfg.PageUp},
		{&keys.PageDown, cfg.PageDown},
		{&keys.Top, cfg.Top},
		{&keys.Bottom, cfg.Bottom},
	} {
		if len(o.specs) > 0 {
			o.bind.SetKeys(o.specs...)
			o.bind.SetHelp(strings.Join(o.bind.Keys(), "/"), o.bind.Help().Desc)
		}
	}
}

func newDemoView(cfg config.Config) *demoView {
	keys := newDemoKeyMap()
	overrideKeys(&keys.VirtualListKeyMap, cfg.Keys)

	list := tview.NewVirtualList().
		SetBufferSize(cfg.List.BufferSize).
		SetGap(cfg.List.Gap).
		SetEstimatedItemHeight(cfg.List.EstimatedItemHeight).
		SetScrollBarVisible(cfg.List.ScrollBar).
		SetFrameInterval(cfg.Frame.Interval).
		SetKeyMap(keys.VirtualListKeyMap)
	if glyphs, ok := tview.ScrollBarGlyphsByName(cfg.List.ScrollBarGlyphs); ok {
		list.ScrollBar().SetGlyphs(glyphs)
	}
	if set, borders, err := tview.BorderSetByName(cfg.List.Border); err == nil && borders != tview.BordersNone {
		list.SetBorders(borders).SetBorderSet(set).SetTitle(" vlist ")
	}

	footer := help.New().SetKeyMap(keys)
	list.SetChangedFunc(func(start, end int) {
		footer.SetStatus(fmt.Sprintf("%d-%d/%d", start, end, len(list.Items())))
	})

	fullHelp := help.New().SetKeyMap(keys).SetShowAll(true)
	fullHelp.SetBorders(tview.BordersAll).SetTitle(" keys ")
	width := 0
	for _, line := range fullHelp.FullHelpLines(keys.FullHelp(), 0) {
		width = max(width, uniseg.StringWidth(line))
	}

	root := layers.New().
		Add(newStack(list, footer), layers.WithName("main"), layers.WithFill()).
		Add(fullHelp,
			layers.WithName("help"),
			layers.WithCenter(width+2, fullHelp.Height()+2),
			layers.WithHidden(),
			layers.WithOverlay(),
		)

	v := &demoView{root: root, list: list, footer: footer, keys: keys}
	list.SetInverseLoading(cfg.List.InverseLoading)
	return v
}

// capture handles the demo keys before the focused primitive sees them.
func (v *demoView) capture(stop func()) func(event *tcell.EventKey) *tcell.EventKey {
	return func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case keybind.Matches(event, v.keys.Quit):
			stop()
			return nil
		case keybind.Matches(event, v.keys.Help):
			v.root.Toggle("help")
			return nil
		case event.Key() == tcell.KeyEscape && v.root.Visible("help"):
			v.root.Hide("help")
			return nil
		}
		return event
	}
}

func runTcellDemo(s *settings, opts *demoOptions) error {
	app := tview.NewApplication().EnableMouse(true).SetLogger(s.log)

	view := newDemoView(s.cfg)
	view.list.SetLogger(s.log).SetRedrawFunc(app.RequestDraw)
	view.list.SetItems(tcellItems(0, opts.items))
	app.SetInputCapture(view.capture(app.Stop))
	app.SetRoot(view.root)

	done := make(chan struct{})
	defer close(done)
	if opts.appendEvery > 0 {
		go appendLoop(done, opts.appendEvery, opts.items, func(index int) {
			app.QueueUpdateDraw(func() {
				view.list.AppendItems(tcellItems(index, 1)...)
			})
		})
	}

	return app.Run()
}

func runTeaDemo(s *settings, opts *demoOptions) error {
	items := make([]teaview.Item, opts.items)
	for i := range items {
		items[i] = teaItem{id: strconv.Itoa(i), text: itemText(i)}
	}

	model := teaview.New(
		teaview.WithConfig(s.cfg.Window()),
		teaview.WithGap(s.cfg.List.Gap),
		teaview.WithEstimatedHeight(s.cfg.List.EstimatedItemHeight),
		teaview.WithFrameInterval(s.cfg.Frame.Interval),
		teaview.WithLogger(s.log),
		teaview.WithHelp(true),
	)
	model.SetItems(items)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	done := make(chan struct{})
	defer close(done)
	if opts.appendEvery > 0 {
		go appendLoop(done, opts.appendEvery, opts.items, func(index int) {
			program.Send(teaview.AppendMsg{Items: []teaview.Item{
				teaItem{id: strconv.Itoa(index), text: itemText(index)},
			}})
		})
	}

	_, err := program.Run()
	return err
}

// appendLoop calls add with consecutive indexes starting at next, once per
// interval, until done is closed.
func appendLoop(done <-chan struct{}, interval time.Duration, next int, add func(index int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			add(next)
			next++
		}
	}
}
