package main

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomod"
)

var statusLineRe = regexp.MustCompile(`^\S+ \d{2}:\d{2}$`)

func runLoop(t *testing.T, l *loop, drive func()) []string {
	t.Helper()
	l.interval = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- l.run(ctx)
	}()
	drive()
	cancel()
	require.ErrorIs(t, <-done, context.Canceled)

	out := strings.TrimSpace(l.out.(*bytes.Buffer).String())
	require.NotEmpty(t, out)
	return strings.Split(out, "\n")
}

func TestLoop_RendersEveryCycle(t *testing.T) {
	l := newLoop(make(chan ControlEvent), nil, Theme{}, &bytes.Buffer{}, nil, nil)

	lines := runLoop(t, l, func() {
		time.Sleep(50 * time.Millisecond)
	})

	for _, line := range lines {
		assert.Regexp(t, statusLineRe, line)
	}
	// never toggled: still planned with the full work duration
	assert.False(t, l.timer.Running())
	assert.Equal(t, pomod.StatePlanned.Icon()+" 25:00", lines[len(lines)-1])
}

func TestLoop_ToggleStartsTimer(t *testing.T) {
	events := make(chan ControlEvent)
	l := newLoop(events, nil, Theme{}, &bytes.Buffer{}, nil, nil)

	lines := runLoop(t, l, func() {
		events <- ToggleEvent
		time.Sleep(50 * time.Millisecond)
	})

	assert.True(t, l.timer.Running())
	assert.Equal(t, pomod.StateWork, l.timer.State())
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], pomod.StateWork.Icon()+" "))
}

func TestLoop_ResetRebuildsTimerAndReattachesCallback(t *testing.T) {
	events := make(chan ControlEvent)
	var resets int
	onChange := func(pomod.TimerState) {}
	l := newLoop(events, nil, Theme{}, &bytes.Buffer{}, onChange, func() { resets++ })

	lines := runLoop(t, l, func() {
		events <- ToggleEvent
		time.Sleep(30 * time.Millisecond)
		events <- ResetEvent
		time.Sleep(30 * time.Millisecond)
	})

	assert.Equal(t, 1, resets)
	assert.False(t, l.timer.Running())
	assert.Equal(t, pomod.StatePlanned, l.timer.State())
	// a stopped fresh timer holds the full work duration exactly
	assert.Equal(t, pomod.StatePlanned.Icon()+" 25:00", lines[len(lines)-1])
}

func TestLoop_ThemeReload(t *testing.T) {
	themes := make(chan Theme, 1)
	var themed Theme
	themed.Icons.Planned = "P"
	l := newLoop(make(chan ControlEvent), themes, Theme{}, &bytes.Buffer{}, nil, nil)

	lines := runLoop(t, l, func() {
		themes <- themed
		time.Sleep(50 * time.Millisecond)
	})

	assert.Equal(t, "P 25:00", lines[len(lines)-1])
}
