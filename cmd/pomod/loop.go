package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"pomod"
)

// pollInterval is the control loop cadence. Expiry detection tolerates up
// to one interval of slack at each state boundary.
const pollInterval = 250 * time.Millisecond

type ControlEvent uint8

const (
	_ ControlEvent = iota
	ToggleEvent
	ResetEvent
)

// loop owns the live Timer and serializes every trigger through a single
// iteration: at most one control event or theme reload per cycle, then
// one poll, then one rendered status line.
type loop struct {
	timer    *pomod.Timer
	events   <-chan ControlEvent
	themes   <-chan Theme
	theme    Theme
	out      io.Writer
	onChange func(pomod.TimerState)
	onReset  func()
	interval time.Duration
}

func newLoop(
	events <-chan ControlEvent, themes <-chan Theme, theme Theme,
	out io.Writer, onChange func(pomod.TimerState), onReset func(),
) *loop {
	timer := pomod.NewTimer()
	timer.SetOnStateChange(onChange)
	return &loop{
		timer:    timer,
		events:   events,
		themes:   themes,
		theme:    theme,
		out:      out,
		onChange: onChange,
		onReset:  onReset,
		interval: pollInterval,
	}
}

func (l *loop) run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-l.events:
			l.handle(ev)
		case theme, ok := <-l.themes:
			if ok {
				l.theme = theme
			}
		case <-ticker.C:
		}
		l.timer.Poll()
		l.render()
	}
}

func (l *loop) handle(ev ControlEvent) {
	switch ev {
	case ToggleEvent:
		l.timer.Toggle()
	case ResetEvent:
		// a reset discards the timer wholesale; the callback does not
		// survive reconstruction and must be reattached
		l.timer = pomod.NewTimer()
		l.timer.SetOnStateChange(l.onChange)
		if l.onReset != nil {
			l.onReset()
		}
	}
}

func (l *loop) render() {
	fmt.Fprintln(l.out, pomod.StatusLine(l.theme.Icon(l.timer.State()), l.timer.Remaining()))
}
