package debounce

import (
	"sync"
	"time"
)

// Debouncer delays delivery of an event until no newer event has arrived for
// the quiescence window. Only the last event of a burst reaches fn.
type Debouncer[T any] struct {
	delay time.Duration
	fn    func(T)

	mu      sync.Mutex
	timer   *time.Timer
	pending T
	gen     uint64
	stopped bool
}

// New creates a debouncer delivering to fn after delay
func New[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{delay: delay, fn: fn}
}

// Trigger records an event and restarts the quiescence window
func (d *Debouncer[T]) Trigger(event T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.pending = event
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
	}
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	// a newer trigger superseded this timer after it had already fired
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	event := d.pending
	d.timer = nil
	d.mu.Unlock()

	d.fn(event)
}

// Stop drops any pending event. Later triggers are ignored.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
