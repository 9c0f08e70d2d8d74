// Package pomod implements the pomodoro interval timer state machine.
package pomod

import (
	"time"
)

const (
	WorkDuration       = 25 * time.Minute
	ShortBreakDuration = 5 * time.Minute
	LongBreakDuration  = 30 * time.Minute

	// BreakCycle is the number of work sessions completed before a long
	// break replaces the short one.
	BreakCycle = 4
)

type TimerState uint8

const (
	StatePlanned TimerState = iota
	StateWork
	StateShortBreak
	StateLongBreak
)

func (s TimerState) String() string {
	switch s {
	case StatePlanned:
		return "planned"
	case StateWork:
		return "work"
	case StateShortBreak:
		return "short break"
	case StateLongBreak:
		return "long break"
	default:
		panic("no matching name for TimerState")
	}
}

// Duration returns the fixed span the timer spends in s. Planned shares
// Work's duration so a fresh timer displays the upcoming work session.
func (s TimerState) Duration() time.Duration {
	switch s {
	case StatePlanned, StateWork:
		return WorkDuration
	case StateShortBreak:
		return ShortBreakDuration
	case StateLongBreak:
		return LongBreakDuration
	default:
		panic("no matching duration for TimerState")
	}
}

// Icon returns the built-in status-line glyph for s.
func (s TimerState) Icon() string {
	switch s {
	case StatePlanned:
		return "○"
	case StateWork:
		return "🍅"
	case StateShortBreak:
		return "☕"
	case StateLongBreak:
		return "🌙"
	default:
		panic("no matching icon for TimerState")
	}
}

// Next computes the state that follows s. breakCount is the number of
// work sessions completed since the last long break; it only changes on
// the way out of Work and always stays within [0, BreakCycle).
func (s TimerState) Next(breakCount int) (TimerState, int) {
	switch s {
	case StateWork:
		next := StateShortBreak
		if breakCount >= BreakCycle-1 {
			next = StateLongBreak
		}
		return next, (breakCount + 1) % BreakCycle
	default:
		// Planned and both breaks lead into Work; the counter is untouched
		return StateWork, breakCount
	}
}

// Timer is the single live pomodoro timer. It is driven by one control
// loop at a time and needs no locking; every mutation happens through
// Start, Stop, Toggle, and Poll.
type Timer struct {
	running        bool
	state          TimerState
	stateStartedAt time.Time // zero until the first Start
	remaining      time.Duration
	lastPollAt     time.Time
	breakCount     int
	onStateChange  func(TimerState)
	now            func() time.Time
}

func NewTimer() *Timer {
	return NewTimerWithClock(time.Now)
}

// NewTimerWithClock injects the clock source. now must never move
// backward; tests use it to simulate elapsed time without sleeping.
func NewTimerWithClock(now func() time.Time) *Timer {
	return &Timer{
		state:      StatePlanned,
		remaining:  StatePlanned.Duration(),
		lastPollAt: now(),
		now:        now,
	}
}

// SetOnStateChange stores the single callback invoked with the new state
// whenever an expired interval transitions. It replaces any previous
// callback and does not survive a reset; the driver reattaches it after
// rebuilding the timer.
func (t *Timer) SetOnStateChange(fn func(TimerState)) {
	t.onStateChange = fn
}

func (t *Timer) Running() bool {
	return t.running
}

func (t *Timer) State() TimerState {
	return t.state
}

// Remaining reports the signed time left in the current state. It can dip
// below zero between the poll that overshoots an interval and the poll
// that services the expiry.
func (t *Timer) Remaining() time.Duration {
	return t.remaining
}

func (t *Timer) BreakCount() int {
	return t.breakCount
}

// Start resumes the timer. The very first start leaves Planned for Work
// directly, without the expiry path, so the state-change callback does
// not fire. No-op when already running.
func (t *Timer) Start() {
	if t.running {
		return
	}
	if t.stateStartedAt.IsZero() {
		t.stateStartedAt = t.now()
		t.beginNextState()
	}
	t.running = true
}

func (t *Timer) Stop() {
	t.running = false
}

func (t *Timer) Toggle() {
	if t.running {
		t.Stop()
	} else {
		t.Start()
	}
}

func (t *Timer) beginNextState() {
	t.state, t.breakCount = t.state.Next(t.breakCount)
	t.remaining = t.state.Duration()
}

// Poll deducts the real time elapsed since the previous poll, or services
// an expiry. The poll that observes remaining <= 0 transitions, resets
// remaining to the new state's full duration, and deducts nothing for
// that call, so up to one poll interval is dropped at each boundary. A
// stopped timer only refreshes its poll timestamp.
func (t *Timer) Poll() {
	now := t.now()
	if t.running {
		if t.remaining <= 0 {
			t.beginNextState()
			if t.onStateChange != nil {
				t.onStateChange(t.state)
			}
		} else {
			t.remaining -= now.Sub(t.lastPollAt)
		}
	}
	t.lastPollAt = now
}
