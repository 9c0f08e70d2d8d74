package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	txStdLib "github.com/Thiht/transactor/stdlib"
	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite"

	"pomod"
	"pomod/sqlite"
)

func main() {
	// stdout carries the status line; everything else goes to stderr
	log.SetOutput(os.Stderr)
	log.SetLevel(log.InfoLevel)
	topCtx, topCtxC := context.WithCancel(context.Background())
	defer topCtxC()

	cfg, err := pomod.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	// optional session history
	var recorder *historyRecorder
	if cfg.DatabasePath != "" {
		log.Info("opening history db", "path", cfg.DatabasePath)
		db, err := sql.Open("sqlite", cfg.DatabasePath)
		if err != nil {
			log.Fatal("failed database open", "err", err)
		}
		defer db.Close() //nolint
		if err := sqlite.RunMigrations(db); err != nil {
			log.Fatal("failed migration", "err", err)
		}

		tx, dbGetter := txStdLib.NewTransactor(db, txStdLib.NestedTransactionsSavepoints)
		repo := sqlite.NewHistoryRepo(dbGetter, *log.Default())
		recorder = newHistoryRecorder(repo, tx)

		countCtx, countCtxC := context.WithTimeout(topCtx, 5*time.Second)
		now := time.Now()
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if n, err := repo.CountCompletedWork(countCtx, midnight); err != nil {
			log.Error("failed to count completed work sessions", "err", err)
		} else {
			log.Info("work sessions completed today", "count", n)
		}
		countCtxC()
	}

	var notifier Notifier
	if dn, err := NewDBusNotifier(); err != nil {
		log.Error("notifications disabled", "err", err)
	} else {
		notifier = dn
		defer dn.Close() //nolint
	}

	var player Player
	if len(cfg.SoundCommand) > 0 {
		player = NewCommandPlayer(cfg.SoundCommand)
	}

	// state-change hook: quick fire-and-forget side effects only, it runs
	// inline in the poll that triggered it
	onChange := func(next pomod.TimerState) {
		log.Debug("state change", "next", next)
		if notifier != nil {
			if err := notifier.Notify(next); err != nil {
				log.Error("failed notification", "err", err)
			}
		}
		if player != nil {
			if err := player.Play(); err != nil {
				log.Error("failed alert sound", "err", err)
			}
		}
		if recorder != nil {
			recorder.OnTransition(next)
		}
	}
	var onReset func()
	if recorder != nil {
		onReset = recorder.Reset
	}

	// icon theme
	var theme Theme
	var themes <-chan Theme
	if cfg.ThemePath != "" {
		theme, err = LoadTheme(cfg.ThemePath)
		if err != nil {
			log.Fatal("failed theme load", "err", err)
		}
		themes, err = WatchTheme(topCtx, cfg.ThemePath)
		if err != nil {
			log.Error("theme hot-reload disabled", "err", err)
		}
	}

	// control signals: SIGUSR1 toggles, SIGUSR2 resets
	events := make(chan ControlEvent, 1)
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGUSR1, syscall.SIGUSR2)
	go func() {
		for sig := range sc {
			var ev ControlEvent
			switch sig {
			case syscall.SIGUSR1:
				ev = ToggleEvent
			case syscall.SIGUSR2:
				ev = ResetEvent
			default:
				continue
			}
			select {
			case events <- ev:
			default:
				log.Debug("dropped control event", "signal", sig)
			}
		}
	}()

	term := make(chan os.Signal, 1)
	signal.Notify(term, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-term
		log.Info("terminating pomod")
		topCtxC()
	}()

	l := newLoop(events, themes, theme, os.Stdout, onChange, onReset)
	if err := l.run(topCtx); err != nil && err != context.Canceled {
		log.Fatal(err)
	}
}
