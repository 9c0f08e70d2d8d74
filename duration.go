package pomod

import (
	"fmt"
	"time"
)

// Minutes returns the whole minutes in d.
func Minutes(d time.Duration) int {
	return int(d / time.Minute)
}

// Seconds returns the seconds left over after Minutes.
func Seconds(d time.Duration) int {
	return int(d/time.Second) % 60
}

// FormatClock renders d as zero-padded MM:SS. Negative spans render as
// 00:00; the timer only goes negative transiently between polls.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%02d:%02d", Minutes(d), Seconds(d))
}

// StatusLine is the one-line status-bar rendering of a timer state.
func StatusLine(icon string, remaining time.Duration) string {
	return icon + " " + FormatClock(remaining)
}
