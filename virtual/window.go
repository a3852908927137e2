package virtual

import (
	"github.com/rs/zerolog"
)

// Config is the caller-facing configuration of a window.
type Config struct {
	// BufferSize is the number of extra items kept mounted beyond the visible
	// region on each end. Values below MinBufferSize are raised to it.
	BufferSize int `yaml:"buffer_size"`
	// InverseLoading keeps the window extended to the last item.
	InverseLoading bool `yaml:"inverse_loading"`
}

// DefaultBufferSize is used by rendering components when no buffer size is
// configured.
const DefaultBufferSize = 2

// MinBufferSize is the smallest buffer a Window runs with. With no buffer a
// shift can only trim the window, never grow it toward items scrolling in.
const MinBufferSize = 1

func (c Config) normalized() Config {
	c.BufferSize = max(c.BufferSize, MinBufferSize)
	return c
}

// Update is the outcome of one Window.Update cycle.
type Update struct {
	Position Position
	// Start and End are the inclusive window after the cycle. End < Start
	// means nothing should be mounted.
	Start, End int
	// Removed lists the cells whose geometry was cached and which must be
	// unmounted.
	Removed []CellSnapshot
	// Changed reports whether Start or End moved.
	Changed bool
}

// Window owns the geometry cache of one list instance and runs resolution
// cycles against it. It is not safe for concurrent use; rendering components
// drive it from their draw loop.
type Window struct {
	config    Config
	cache     *Cache
	logger    zerolog.Logger
	estimator Estimator
	locator   Estimator

	start, end int
	cycles     uint64
}

// Option configures a Window.
type Option func(*Window)

// WithLogger sets the logger cycles are reported to at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(w *Window) {
		w.logger = logger
	}
}

// WithEstimator sets the geometry source for items never measured.
func WithEstimator(estimator Estimator) Option {
	return func(w *Window) {
		w.estimator = estimator
	}
}

// WithLocator sets the source of current offsets for cached items. See
// ResolveInput.Locate.
func WithLocator(locator Estimator) Option {
	return func(w *Window) {
		w.locator = locator
	}
}

// WithCache makes the window use an existing cache.
func WithCache(cache *Cache) Option {
	return func(w *Window) {
		if cache != nil {
			w.cache = cache
		}
	}
}

// NewWindow returns a window with nothing mounted.
func NewWindow(config Config, opts ...Option) *Window {
	w := &Window{
		config: config.normalized(),
		cache:  NewCache(),
		logger: zerolog.Nop(),
		start:  0,
		end:    -1,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Config returns the effective configuration.
func (w *Window) Config() Config {
	return w.config
}

// SetConfig replaces the configuration. The mounted window is kept; the next
// cycle adapts it.
func (w *Window) SetConfig(config Config) {
	w.config = config.normalized()
}

// SetLogger replaces the logger cycles are reported to.
func (w *Window) SetLogger(logger zerolog.Logger) {
	w.logger = logger
}

// SetEstimator replaces the geometry source for items never measured.
func (w *Window) SetEstimator(estimator Estimator) {
	w.estimator = estimator
}

// SetLocator replaces the source of current offsets for cached items.
func (w *Window) SetLocator(locator Estimator) {
	w.locator = locator
}

// Cache returns the geometry cache.
func (w *Window) Cache() *Cache {
	return w.cache
}

// Range returns the inclusive window produced by the last cycle.
func (w *Window) Range() (start, end int) {
	return w.start, w.end
}

// Cycles returns the number of cycles run so far, waiting ones included.
func (w *Window) Cycles() uint64 {
	return w.cycles
}

// Reset drops the cache and forgets the mounted window.
func (w *Window) Reset() {
	w.cache.Reset()
	w.start, w.end = 0, -1
}

// Update resolves the next window from frame and applies it. startPadding and
// endPadding are the extents standing in for unmounted items before and after
// the mounted cells.
func (w *Window) Update(frame Frame, items []Item, startPadding, endPadding int) Update {
	w.cycles++
	pos := Resolve(ResolveInput{
		Cells:          frame.Cells,
		Items:          items,
		Cache:          w.cache,
		StartPadding:   startPadding,
		EndPadding:     endPadding,
		BufferSize:     w.config.BufferSize,
		ScrollTop:      frame.ScrollTop,
		Viewport:       frame.Viewport,
		InverseLoading: w.config.InverseLoading,
		Estimate:       w.estimator,
		Locate:         w.locator,
	})
	if pos.Kind == KindWaiting {
		w.logger.Debug().
			Uint64("cycle", w.cycles).
			Int("cells", len(frame.Cells)).
			Msg("waiting for cells to render")
		return Update{Position: pos, Start: w.start, End: w.end}
	}

	start, end, _ := Bounds(pos, items)
	removed := Apply(pos, w.cache, items)
	changed := start != w.start || end != w.end
	w.start, w.end = start, end

	w.logger.Debug().
		Uint64("cycle", w.cycles).
		Stringer("position", pos).
		Int("scroll_top", frame.ScrollTop).
		Int("start", start).
		Int("end", end).
		Int("removed", len(removed)).
		Int("cached", w.cache.Len()).
		Msg("window resolved")

	return Update{
		Position: pos,
		Start:    start,
		End:      end,
		Removed:  removed,
		Changed:  changed,
	}
}

// Layout builds the content layout of items. live reports the measured height
// of mounted items; unmounted items use their cached height, or estimate when
// they were never mounted.
func (w *Window) Layout(items []Item, live func(item Item) (int, bool), estimate, gap int) *Layout {
	estimate = max(estimate, 1)
	return NewLayout(items, func(_ int, item Item) int {
		if live != nil {
			if height, ok := live(item); ok {
				return height
			}
		}
		if size, ok := w.cache.Get(item.ID()); ok {
			return size.Height
		}
		return estimate
	}, gap)
}
