package syscolor

import "sync/atomic"

// onceBool is a lazily-initialized boolean: a tri-state cell that
// converges to a permanent value the first time a result is published.
type onceBool struct {
	v atomic.Uint32
}

const (
	onceUninit uint32 = iota
	onceFalse
	onceTrue
)

// getOrInit returns the cached value, computing it with f on first use.
// There is no mutual exclusion around f: concurrent first callers may
// each run f, and whichever result is published first by the
// compare-and-swap becomes the permanent answer for everyone. f must be
// idempotent from the cell's point of view. No caller ever blocks.
func (o *onceBool) getOrInit(f func() bool) bool {
	for {
		switch o.v.Load() {
		case onceTrue:
			return true
		case onceFalse:
			return false
		}
		v := onceFalse
		if f() {
			v = onceTrue
		}
		// Losing the swap is fine: the next load sees the winner.
		o.v.CompareAndSwap(onceUninit, v)
	}
}
