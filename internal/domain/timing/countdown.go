// Package timing provides the countdown timer that drives transition effects.
package timing

import "fmt"

// Countdown counts a fixed duration down to zero.
// Remaining is clamped at zero and never increases between resets.
type Countdown struct {
	total     float64
	remaining float64
}

// NewCountdown creates a countdown over the given duration in seconds.
// The duration must be positive.
func NewCountdown(seconds float64) Countdown {
	if seconds <= 0 {
		panic(fmt.Sprintf("timing: non-positive countdown duration %v", seconds))
	}
	return Countdown{total: seconds, remaining: seconds}
}

// Reset rewinds the countdown to its full duration.
func (c *Countdown) Reset() {
	c.remaining = c.total
}

// Advance moves the countdown forward by dt seconds.
// Returns true on the call where remaining first reaches zero; later
// calls return false. dt must not be negative.
func (c *Countdown) Advance(dt float64) (finished bool) {
	if dt < 0 {
		panic(fmt.Sprintf("timing: negative dt %v", dt))
	}
	if c.remaining <= 0 {
		return false
	}
	c.remaining -= dt
	if c.remaining <= 0 {
		c.remaining = 0
		return true
	}
	return false
}

// Total returns the full duration in seconds.
func (c *Countdown) Total() float64 {
	return c.total
}

// Remaining returns the seconds left, zero once finished.
func (c *Countdown) Remaining() float64 {
	return c.remaining
}

// Fraction returns remaining/total in [0, 1]: 1 at the start, 0 when done.
func (c *Countdown) Fraction() float64 {
	return c.remaining / c.total
}

// Done reports whether the countdown has reached zero.
func (c *Countdown) Done() bool {
	return c.remaining <= 0
}
