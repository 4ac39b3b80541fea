package core

import "time"

// Pacing bounds for the generation interval.
const (
	DefaultInterval = 100 * time.Millisecond
	FastestInterval = time.Millisecond
	SlowestInterval = 2 * time.Second
	IntervalStep    = 40 * time.Millisecond
)

// Interval gates simulation advances so the generation rate can differ from
// the frame rate.
type Interval struct {
	every   time.Duration
	def     time.Duration
	fastest time.Duration
	slowest time.Duration
	step    time.Duration
	last    time.Time
}

// NewInterval constructs an Interval with the standard bounds, starting at every.
func NewInterval(every time.Duration) *Interval {
	iv := &Interval{
		def:     DefaultInterval,
		fastest: FastestInterval,
		slowest: SlowestInterval,
		step:    IntervalStep,
	}
	if every <= 0 {
		every = iv.def
	}
	iv.Set(every)
	return iv
}

// Every returns the current interval between advances.
func (iv *Interval) Every() time.Duration { return iv.every }

// Set changes the interval, clamped to the fastest and slowest bounds.
func (iv *Interval) Set(d time.Duration) {
	if d < iv.fastest {
		d = iv.fastest
	}
	if d > iv.slowest {
		d = iv.slowest
	}
	iv.every = d
}

// Faster shortens the interval by one step.
func (iv *Interval) Faster() { iv.Set(iv.every - iv.step) }

// Slower lengthens the interval by one step.
func (iv *Interval) Slower() { iv.Set(iv.every + iv.step) }

// Default restores the default interval.
func (iv *Interval) Default() { iv.every = iv.def }

// Ready reports whether strictly more than the interval has passed since the
// last accepted tick. An accepted tick records now.
func (iv *Interval) Ready(now time.Time) bool {
	if now.Sub(iv.last) <= iv.every {
		return false
	}
	iv.last = now
	return true
}

// Mark records now as the last tick without checking the interval.
func (iv *Interval) Mark(now time.Time) { iv.last = now }
