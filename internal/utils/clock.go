// internal/utils/clock.go
package utils

import "time"

// Clock игровое время: двигается только вызовами Advance.
// На паузе время стоит, и троттлинг миникарты вместе с ним.
type Clock struct {
	start   time.Time
	elapsed time.Duration
}

// NewClock создаёт часы, начинающиеся с нулевого времени Unix
func NewClock() *Clock {
	return &Clock{start: time.Unix(0, 0)}
}

// Advance сдвигает время на deltaTime секунд
func (c *Clock) Advance(deltaTime float64) {
	c.elapsed += time.Duration(deltaTime * float64(time.Second))
}

// AdvanceBy сдвигает время на d
func (c *Clock) AdvanceBy(d time.Duration) {
	c.elapsed += d
}

func (c *Clock) Now() time.Time {
	return c.start.Add(c.elapsed)
}

func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}
