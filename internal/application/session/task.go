package session

import "time"

// Task fires a callback once per interval of accumulated time.
// It is advanced explicitly so the same code runs under ebiten's frame
// clock, a ticker, or a test.
type Task struct {
	interval time.Duration
	elapsed  time.Duration
	fn       func()
	stopped  bool
}

// NewTask creates a running task
func NewTask(interval time.Duration, fn func()) *Task {
	return &Task{
		interval: interval,
		fn:       fn,
	}
}

// Advance adds elapsed time and fires once for every full interval.
// Returns the number of times the callback ran.
func (t *Task) Advance(elapsed time.Duration) int {
	if t.stopped || t.interval <= 0 || elapsed <= 0 {
		return 0
	}

	t.elapsed += elapsed
	fired := 0
	for t.elapsed >= t.interval && !t.stopped {
		t.elapsed -= t.interval
		t.fn()
		fired++
	}
	return fired
}

// Stop cancels the task; further Advance calls do nothing
func (t *Task) Stop() {
	t.stopped = true
}

// Stopped returns true once Stop has been called
func (t *Task) Stopped() bool {
	return t.stopped
}

// Reset clears accumulated time and restarts a stopped task
func (t *Task) Reset() {
	t.elapsed = 0
	t.stopped = false
}
