package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomod"
)

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[icons]
work = "W"
long_break = "L"
`), 0o644))

	theme, err := LoadTheme(path)
	require.NoError(t, err)

	assert.Equal(t, "W", theme.Icon(pomod.StateWork))
	assert.Equal(t, "L", theme.Icon(pomod.StateLongBreak))
	// unset icons fall back to the built-ins
	assert.Equal(t, pomod.StatePlanned.Icon(), theme.Icon(pomod.StatePlanned))
	assert.Equal(t, pomod.StateShortBreak.Icon(), theme.Icon(pomod.StateShortBreak))
}

func TestLoadTheme_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte("not toml ["), 0o644))

	_, err := LoadTheme(path)
	assert.Error(t, err)
}

func TestTheme_ZeroValueUsesBuiltins(t *testing.T) {
	var theme Theme
	for _, s := range []pomod.TimerState{
		pomod.StatePlanned, pomod.StateWork, pomod.StateShortBreak, pomod.StateLongBreak,
	} {
		assert.Equal(t, s.Icon(), theme.Icon(s))
	}
}
