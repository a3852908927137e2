// Package virtual decides which items of a long list must be materialized as
// cells at a given scroll position.
//
// A rendering component (see tview.VirtualList or teaview.Model) mounts a
// contiguous window of items. On every cycle it captures a read-only [Frame]
// of the mounted cells and the viewport, and hands it to [Resolve]. The result
// is a [Position]: either "waiting" (some cell has not finished loading), an
// absolute index window, or a relative shift of the current window. [Apply]
// then records the geometry of every cell leaving the window in the [Cache]
// and reports which cells must be unmounted.
//
// The cache remembers the last known size and offset of items that are no
// longer mounted. When the user jumps past the mounted window the index search
// uses those sizes to find the new window without mounting everything in
// between.
//
// [Window] bundles a cache with its configuration and is what most callers
// use. Nothing in this package blocks; [FrameSync] coalesces resolution
// requests to at most one per frame.
package virtual
