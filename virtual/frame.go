package virtual

import (
	"sync"
	"time"
)

// DefaultFrameInterval is roughly one frame at 60Hz.
const DefaultFrameInterval = 16 * time.Millisecond

// FrameSync coalesces resolution requests so that at most one runs per frame.
//
// Perform schedules work for the next frame; a later call before that frame
// replaces the pending work. Cancel drops whatever is pending. Work runs on a
// timer goroutine, so callers that need to touch UI state typically post back
// to their event loop from it.
type FrameSync struct {
	mu       sync.Mutex
	interval time.Duration
	timer    *time.Timer
	pending  func()
	gen      uint64
}

// NewFrameSync returns a synchronizer firing at most once per interval. A
// non-positive interval selects DefaultFrameInterval.
func NewFrameSync(interval time.Duration) *FrameSync {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &FrameSync{interval: interval}
}

// Interval returns the frame interval.
func (f *FrameSync) Interval() time.Duration {
	return f.interval
}

// Perform runs immediate synchronously, if set, and schedules work for the
// next frame, superseding any pending work.
func (f *FrameSync) Perform(work func(), immediate func()) {
	if immediate != nil {
		immediate()
	}
	if work == nil {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = work
	if f.timer != nil {
		return
	}
	gen := f.gen
	f.timer = time.AfterFunc(f.interval, func() {
		f.fire(gen)
	})
}

// Cancel drops the pending work, if any.
func (f *FrameSync) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.pending = nil
	f.gen++
}

// Pending reports whether work is scheduled.
func (f *FrameSync) Pending() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending != nil
}

func (f *FrameSync) fire(gen uint64) {
	f.mu.Lock()
	if gen != f.gen {
		// Cancelled after the timer fired.
		f.mu.Unlock()
		return
	}
	work := f.pending
	f.pending = nil
	f.timer = nil
	f.gen++
	f.mu.Unlock()

	if work != nil {
		work()
	}
}
