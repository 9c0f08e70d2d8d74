package main

import (
	"context"
	"time"

	"github.com/Thiht/transactor"
	"github.com/charmbracelet/log"

	"pomod"
)

// historyRecorder turns the timer's new-state callback into from/to
// transition rows. The timer only reports the state it entered, so the
// recorder tracks the state it left. Writes happen off the control loop;
// a failed write degrades to a log line without touching timekeeping.
type historyRecorder struct {
	repo pomod.HistoryRepo
	tx   transactor.Transactor
	prev pomod.TimerState
}

func newHistoryRecorder(repo pomod.HistoryRepo, tx transactor.Transactor) *historyRecorder {
	return &historyRecorder{
		repo: repo,
		tx:   tx,
		// the first expiry always leaves Work: the manual Planned -> Work
		// start does not reach the callback
		prev: pomod.StateWork,
	}
}

// Reset realigns the recorder after the driver rebuilds the timer.
func (r *historyRecorder) Reset() {
	r.prev = pomod.StateWork
}

func (r *historyRecorder) OnTransition(next pomod.TimerState) {
	record := pomod.TransitionRecord{
		From:       r.prev,
		To:         next,
		OccurredAt: time.Now(),
	}
	r.prev = next

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	go func() {
		defer cancel()
		err := r.tx.WithinTransaction(ctx, func(ctx context.Context) error {
			_, err := r.repo.InsertTransition(ctx, record)
			return err
		})
		if err != nil {
			log.Error("failed to record transition", "from", record.From, "to", record.To, "err", err)
		}
	}()
}
