package feed

import (
	"sync"
	"time"
)

// DefaultDebounce coalesces bursts of edits such as search typing.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer runs only the most recent of a burst of triggers. Every Trigger
// supersedes the pending one; a superseded call is dropped without running.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	version uint64
}

// NewDebouncer returns a Debouncer that waits delay after the last trigger.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn and returns the version it was scheduled under.
func (d *Debouncer) Trigger(fn func()) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.version++
	v := d.version
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// Stop may lose the race with an already fired timer
		current := d.version == v
		if current {
			d.timer = nil
		}
		d.mu.Unlock()
		if current {
			fn()
		}
	})
	return v
}

// Stop cancels the pending call, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.version++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Pending reports whether a call is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}
