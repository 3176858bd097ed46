// Package throttle rate-limits callbacks. Calls arriving sooner than the
// interval after the last admitted call are dropped, not queued, so a
// throttled update costs at most one run per interval no matter how often the
// render loop asks for it.
package throttle

import "time"

// Option configures a Throttle.
type Option func(*Throttle)

// WithClock replaces time.Now, e.g. with game time or a test clock.
func WithClock(now func() time.Time) Option {
	return func(t *Throttle) { t.now = now }
}

// Throttle admits at most one call per interval. The first call is always
// admitted. Independent throttles share no state.
//
// A Throttle is not safe for concurrent use.
type Throttle struct {
	interval time.Duration
	now      func() time.Time
	last     time.Time
	ran      bool

	admitted uint64
	dropped  uint64
}

// New creates a throttle with the given interval.
func New(interval time.Duration, opts ...Option) *Throttle {
	t := &Throttle{interval: interval, now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Allow reports whether a call made now should run. It only records the time
// of admitted calls: more than interval must have passed since the last one.
func (t *Throttle) Allow() bool {
	now := t.now()
	if t.ran && now.Sub(t.last) <= t.interval {
		t.dropped++
		return false
	}
	t.last = now
	t.ran = true
	t.admitted++
	return true
}

// Reset forgets the last admission so the next call runs immediately.
func (t *Throttle) Reset() {
	t.ran = false
	t.last = time.Time{}
}

// Interval returns the minimum spacing between admitted calls.
func (t *Throttle) Interval() time.Duration { return t.interval }

// Stats returns how many calls were admitted and dropped so far.
func (t *Throttle) Stats() (admitted, dropped uint64) {
	return t.admitted, t.dropped
}

// Func wraps fn so that it runs at most once per interval.
func Func(fn func(), interval time.Duration, opts ...Option) func() {
	t := New(interval, opts...)
	return func() {
		if t.Allow() {
			fn()
		}
	}
}

// Func1 is Func for callbacks taking one argument.
func Func1[A any](fn func(A), interval time.Duration, opts ...Option) func(A) {
	t := New(interval, opts...)
	return func(a A) {
		if t.Allow() {
			fn(a)
		}
	}
}

// Func2 is Func for callbacks taking two arguments.
func Func2[A, B any](fn func(A, B), interval time.Duration, opts ...Option) func(A, B) {
	t := New(interval, opts...)
	return func(a A, b B) {
		if t.Allow() {
			fn(a, b)
		}
	}
}
