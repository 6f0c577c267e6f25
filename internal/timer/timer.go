// Package timer provides a countdown clock advanced by an external scheduler.
//
// The timer never blocks or schedules anything itself: the host calls Tick once
// per elapsed second. Abandoning a Timer needs no cleanup.
package timer

// Timer counts whole seconds down to zero.
type Timer struct {
	remaining int
	expired   bool
}

// New returns an idle timer with nothing remaining.
func New() *Timer {
	return &Timer{}
}

// Start resets the timer to seconds and clears the expired flag.
func (t *Timer) Start(seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	t.remaining = seconds
	t.expired = false
}

// Tick advances the timer by one second. It reports true only on the tick
// that moves remaining from 1 to 0; ticks at zero are no-ops.
func (t *Timer) Tick() bool {
	if t.remaining == 0 {
		return false
	}
	t.remaining--
	if t.remaining == 0 {
		t.expired = true
		return true
	}
	return false
}

// Remaining returns the seconds left.
func (t *Timer) Remaining() int {
	return t.remaining
}

// IsExpired reports whether the countdown reached zero since the last Start.
func (t *Timer) IsExpired() bool {
	return t.expired
}
