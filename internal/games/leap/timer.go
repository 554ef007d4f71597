package leap

// Timer is a fire-once callback scheduled on a timerQueue.
type Timer struct {
	remaining float64
	fn        func()
	done      bool
}

// Cancel stops the timer. A canceled or already fired timer never fires again.
func (t *Timer) Cancel() {
	if t == nil {
		return
	}
	t.done = true
}

// Pending reports whether the timer has neither fired nor been canceled.
func (t *Timer) Pending() bool {
	return t != nil && !t.done
}

// timerQueue runs timers on simulated frame time, so they fire between frames
// on the game's own thread.
type timerQueue struct {
	timers []*Timer
	firing []*Timer // batch being walked by Advance
}

// After schedules fn to run once delay seconds from now.
func (q *timerQueue) After(delay float64, fn func()) *Timer {
	t := &Timer{remaining: delay, fn: fn}
	q.timers = append(q.timers, t)
	return t
}

// Advance counts down all timers by dt and fires those that are due.
// Timers scheduled from inside a callback wait for the next Advance.
func (q *timerQueue) Advance(dt float64) {
	due := q.timers
	q.timers = nil
	q.firing = due
	defer func() { q.firing = nil }()

	for _, t := range due {
		if t.done {
			continue
		}
		t.remaining -= dt
		if t.remaining > 0 {
			q.timers = append(q.timers, t)
			continue
		}
		t.done = true
		t.fn()
	}
}

// CancelAll drops every pending timer, including the rest of a batch that
// Advance is firing when a callback calls it.
func (q *timerQueue) CancelAll() {
	for _, t := range q.timers {
		t.done = true
	}
	for _, t := range q.firing {
		t.done = true
	}
	q.timers = nil
}

// Len returns the number of timers still waiting.
func (q *timerQueue) Len() int {
	n := 0
	for _, t := range q.timers {
		if !t.done {
			n++
		}
	}
	return n
}
