package pomod

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMinutesSeconds(t *testing.T) {
	testCases := []struct {
		duration        time.Duration
		expectedMinutes int
		expectedSeconds int
	}{
		{0, 0, 0},
		{59 * time.Second, 0, 59},
		{time.Minute, 1, 0},
		{125 * time.Second, 2, 5},
		{25 * time.Minute, 25, 0},
		{30*time.Minute + 30*time.Second, 30, 30},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expectedMinutes, Minutes(tc.duration), "minutes of %v", tc.duration)
		assert.Equal(t, tc.expectedSeconds, Seconds(tc.duration), "seconds of %v", tc.duration)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "02:05", FormatClock(125*time.Second))
	assert.Equal(t, "25:00", FormatClock(25*time.Minute))
	assert.Equal(t, "00:00", FormatClock(0))
	// negative only happens transiently between polls; render clamps it
	assert.Equal(t, "00:00", FormatClock(-3*time.Second))
}

func TestStatusLine(t *testing.T) {
	assert.Equal(t, "🍅 02:05", StatusLine("🍅", 125*time.Second))
}
