// Package debounce coalesces bursts of values into a single delayed call.
package debounce

import (
	"sync"
	"time"

	"k8s.io/utils/clock"
)

// Debouncer holds at most one pending call. Every Trigger replaces the
// pending value and restarts the delay; the callback sees only the last value.
type Debouncer[T any] struct {
	mu      sync.Mutex
	clock   clock.WithDelayedExecution
	delay   time.Duration
	fn      func(T)
	timer   clock.Timer
	seq     uint64
	stopped bool
}

// Option configures a Debouncer
type Option func(*options)

type options struct {
	clock clock.WithDelayedExecution
}

// WithClock replaces the real clock, mainly for tests
func WithClock(c clock.WithDelayedExecution) Option {
	return func(o *options) {
		o.clock = c
	}
}

// New creates a debouncer that calls fn once delay has passed without a new Trigger
func New[T any](delay time.Duration, fn func(T), opts ...Option) *Debouncer[T] {
	o := options{clock: clock.RealClock{}}
	for _, opt := range opts {
		opt(&o)
	}
	return &Debouncer[T]{
		clock: o.clock,
		delay: delay,
		fn:    fn,
	}
}

// Trigger schedules fn(v), cancelling any call still pending
func (d *Debouncer[T]) Trigger(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}

	d.seq++
	seq := d.seq
	d.timer = d.clock.AfterFunc(d.delay, func() {
		d.fire(seq, v)
	})
}

// Pending reports whether a call is scheduled
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop cancels the pending call and ignores later Triggers
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer[T]) fire(seq uint64, v T) {
	d.mu.Lock()
	// a newer Trigger won the race against this timer
	if seq != d.seq || d.stopped {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.fn(v)
}
