package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/xqrs/tview/virtual"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

type simulateOptions struct {
	items    int
	heights  []int
	width    int
	viewport int
	scroll   []int
	to       []string
	align    string
	appends  int
}

// cycleReport is printed once per simulated step.
type cycleReport struct {
	Step         int          `yaml:"step"`
	Action       string       `yaml:"action"`
	Kind         virtual.Kind `yaml:"kind"`
	ScrollTop    int          `yaml:"scroll_top"`
	ScrollHeight int          `yaml:"scroll_height"`
	Start        int          `yaml:"start"`
	End          int          `yaml:"end"`
	Mounted      int          `yaml:"mounted"`
	StartPadding int          `yaml:"start_padding"`
	EndPadding   int          `yaml:"end_padding"`
	Cached       int          `yaml:"cached"`
	AtEnd        bool         `yaml:"at_end"`
}

func newSimulateCmd(flags *rootFlags) *cobra.Command {
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Resolve windows for scripted scroll positions without a terminal UI",
		Long: "simulate lays out generated items with the given heights, then for every step " +
			"scrolls, resolves the window until it settles, and prints one YAML document per step.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			align, err := parseAlign(opts.align)
			if err != nil {
				return err
			}
			if err := opts.validate(); err != nil {
				return err
			}
			opts.applyTerminalSize()

			window := virtual.NewWindow(s.cfg.Window(), virtual.WithLogger(s.log))
			scroller := virtual.NewScroller(window, measureSimItem,
				virtual.WithGap(s.cfg.List.Gap),
				virtual.WithEstimate(s.cfg.List.EstimatedItemHeight),
			)
			scroller.SetViewport(virtual.Rect{Width: opts.width, Height: opts.viewport})
			scroller.SetItems(simItems(0, opts.items, opts.heights))

			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2)
			defer encoder.Close()

			step := 0
			emit := func(action string) error {
				update := scroller.Sync()
				before, after := scroller.Layout().Padding(update.Start, update.End)
				report := cycleReport{
					Step:         step,
					Action:       action,
					Kind:         update.Position.Kind,
					ScrollTop:    scroller.ScrollTop(),
					ScrollHeight: scroller.ScrollHeight(),
					Start:        update.Start,
					End:          update.End,
					Mounted:      scroller.MountedCount(),
					StartPadding: before,
					EndPadding:   after,
					Cached:       window.Cache().Len(),
					AtEnd:        scroller.AtEnd(),
				}
				step++
				if err := encoder.Encode(report); err != nil {
					return fmt.Errorf("encode step %d: %w", report.Step, err)
				}
				return nil
			}

			if err := emit("initial"); err != nil {
				return err
			}
			for _, top := range opts.scroll {
				scroller.SetScrollTop(top)
				if err := emit("scroll " + strconv.Itoa(top)); err != nil {
					return err
				}
			}
			for _, id := range opts.to {
				scroller.ScrollTo(id, align)
				if err := emit("scroll-to " + id); err != nil {
					return err
				}
			}
			if opts.appends > 0 {
				scroller.AppendItems(simItems(opts.items, opts.appends, opts.heights)...)
				if err := emit("append " + strconv.Itoa(opts.appends)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.items, "items", "n", 100, "Number of items")
	cmd.Flags().IntSliceVar(&opts.heights, "heights", []int{1}, "Item heights, repeated over the list")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Viewport width (defaults to the terminal width)")
	cmd.Flags().IntVar(&opts.viewport, "viewport", 0, "Viewport height (defaults to the terminal height)")
	cmd.Flags().IntSliceVar(&opts.scroll, "scroll", nil, "Scroll positions to visit, in order")
	cmd.Flags().StringSliceVar(&opts.to, "to", nil, "Item ids to scroll to after the scroll positions")
	cmd.Flags().StringVar(&opts.align, "align", "start", "Alignment for --to (start, center, end, nearest)")
	cmd.Flags().IntVar(&opts.appends, "append", 0, "Append this many items as the last step")

	return cmd
}

func (o *simulateOptions) validate() error {
	if o.items < 0 {
		return fmt.Errorf("--items must not be negative, got %d", o.items)
	}
	if len(o.heights) == 0 {
		return fmt.Errorf("--heights must list at least one height")
	}
	for _, h := range o.heights {
		if h < 0 {
			return fmt.Errorf("--heights must not be negative, got %d", h)
		}
	}
	if o.width < 0 || o.viewport < 0 {
		return fmt.Errorf("viewport size must not be negative, got %dx%d", o.width, o.viewport)
	}
	return nil
}

// applyTerminalSize fills unset viewport dimensions from the terminal on
// stdout, or from defaults when stdout is not a terminal.
func (o *simulateOptions) applyTerminalSize() {
	width, height := defaultWidth, defaultHeight
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
			width, height = w, h
		}
	}
	if o.width == 0 {
		o.width = width
	}
	if o.viewport == 0 {
		o.viewport = height
	}
}

func parseAlign(name string) (virtual.Align, error) {
	switch strings.ToLower(name) {
	case "start":
		return virtual.AlignStart, nil
	case "center":
		return virtual.AlignCenter, nil
	case "end":
		return virtual.AlignEnd, nil
	case "nearest":
		return virtual.AlignNearest, nil
	default:
		return 0, fmt.Errorf("unknown alignment %q", name)
	}
}

// simItem is an item with a fixed height.
type simItem struct {
	id     string
	height int
}

func (s simItem) ID() string { return s.id }

func measureSimItem(item virtual.Item, _ int) virtual.Measurement {
	return virtual.Measurement{Height: item.(simItem).height, Loaded: true}
}

func simItems(from, n int, heights []int) []virtual.Item {
	items := make([]virtual.Item, n)
	for i := range items {
		index := from + i
		items[i] = simItem{id: strconv.Itoa(index), height: heights[index%len(heights)]}
	}
	return items
}
