package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"pomod"
)

// Theme overrides the built-in state icons for the status line. Durations
// are deliberately not part of it; they are fixed for a given run.
type Theme struct {
	Icons struct {
		Planned    string `toml:"planned"`
		Work       string `toml:"work"`
		ShortBreak string `toml:"short_break"`
		LongBreak  string `toml:"long_break"`
	} `toml:"icons"`
}

func LoadTheme(path string) (Theme, error) {
	var t Theme
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return Theme{}, fmt.Errorf("failed to decode theme %s: %w", path, err)
	}
	return t, nil
}

// Icon falls back to the state's built-in glyph when the theme leaves it
// unset, so a zero Theme renders the defaults.
func (t Theme) Icon(s pomod.TimerState) string {
	var icon string
	switch s {
	case pomod.StatePlanned:
		icon = t.Icons.Planned
	case pomod.StateWork:
		icon = t.Icons.Work
	case pomod.StateShortBreak:
		icon = t.Icons.ShortBreak
	case pomod.StateLongBreak:
		icon = t.Icons.LongBreak
	}
	if icon == "" {
		return s.Icon()
	}
	return icon
}

// WatchTheme re-reads path whenever it is written and delivers the parsed
// result on the returned channel. Editors that replace the file on save
// show up as creates, so the watch covers the parent directory.
func WatchTheme(ctx context.Context, path string) (<-chan Theme, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create theme watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close() //nolint
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	ch := make(chan Theme, 1)
	go func() {
		defer close(ch)
		defer watcher.Close() //nolint
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Name != path || !ev.Op.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				theme, err := LoadTheme(path)
				if err != nil {
					log.Error("failed to reload theme", "path", path, "err", err)
					continue
				}
				select {
				case ch <- theme:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Error("theme watcher error", "err", err)
			}
		}
	}()
	return ch, nil
}
