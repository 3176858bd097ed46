package throttle

import (
	"reflect"
	"testing"
	"time"
)

// fakeClock returns whatever time the test set last.
type fakeClock struct {
	base time.Time
	at   time.Duration
}

func (c *fakeClock) now() time.Time { return c.base.Add(c.at) }

func TestFuncAdmission(t *testing.T) {
	clock := &fakeClock{base: time.Unix(1_700_000_000, 0)}
	var ran []time.Duration
	fn := Func(func() { ran = append(ran, clock.at) }, 100*time.Millisecond, WithClock(clock.now))

	for _, ms := range []int{0, 50, 120, 130, 260} {
		clock.at = time.Duration(ms) * time.Millisecond
		fn()
	}

	want := []time.Duration{0, 120 * time.Millisecond, 260 * time.Millisecond}
	if !reflect.DeepEqual(ran, want) {
		t.Errorf("admitted at %v, want %v", ran, want)
	}
}

func TestAllowBoundaryIsExclusive(t *testing.T) {
	clock := &fakeClock{}
	th := New(100*time.Millisecond, WithClock(clock.now))

	if !th.Allow() {
		t.Fatal("first call was dropped")
	}
	clock.at = 100 * time.Millisecond
	if th.Allow() {
		t.Error("call exactly one interval later was admitted, want dropped")
	}
	clock.at = 101 * time.Millisecond
	if !th.Allow() {
		t.Error("call after the interval was dropped")
	}
	if a, d := th.Stats(); a != 2 || d != 1 {
		t.Errorf("Stats() = %d, %d; want 2, 1", a, d)
	}
}

func TestFirstCallAlwaysRuns(t *testing.T) {
	// a zero clock must not look like "just ran"
	th := New(time.Hour, WithClock(func() time.Time { return time.Time{} }))
	if !th.Allow() {
		t.Error("first call at the zero time was dropped")
	}
}

func TestReset(t *testing.T) {
	clock := &fakeClock{}
	th := New(time.Second, WithClock(clock.now))
	th.Allow()
	th.Reset()
	if !th.Allow() {
		t.Error("call after Reset was dropped")
	}
}

func TestIndependentThrottles(t *testing.T) {
	clock := &fakeClock{}
	var a, b int
	fa := Func(func() { a++ }, time.Second, WithClock(clock.now))
	fb := Func(func() { b++ }, time.Second, WithClock(clock.now))

	fa()
	fb()
	fa()
	if a != 1 || b != 1 {
		t.Errorf("a=%d b=%d, want 1 and 1", a, b)
	}
}

func TestFuncArgs(t *testing.T) {
	clock := &fakeClock{}
	var got []string
	f1 := Func1(func(s string) { got = append(got, s) }, time.Second, WithClock(clock.now))
	f2 := Func2(func(s string, n int) { got = append(got, s+string(rune('0'+n))) }, time.Second, WithClock(clock.now))

	f1("a")
	f1("dropped")
	f2("b", 7)
	clock.at = 2 * time.Second
	f1("c")

	if want := []string{"a", "b7", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("calls = %v, want %v", got, want)
	}
}
