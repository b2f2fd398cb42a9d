package game

import "time"

// Timer is a repeating countdown driven by frame deltas. A Tick that crosses the
// period reports true once, however many periods the delta spans.
type Timer struct {
	period  time.Duration
	elapsed time.Duration
}

func NewTimer(period time.Duration) *Timer {
	return &Timer{period: period}
}

// Tick advances the timer by dt and reports whether it just finished
func (t *Timer) Tick(dt time.Duration) bool {
	if t.period <= 0 {
		return true
	}
	t.elapsed += dt
	if t.elapsed >= t.period {
		t.elapsed %= t.period
		return true
	}
	return false
}
