package pomod

import (
	"context"
	"time"
)

type ExistingRecord[T ~string] struct {
	ID        T
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewExistingRecord[T ~string](id string) ExistingRecord[T] {
	now := time.Now()
	return ExistingRecord[T]{
		ID:        T(id),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type TransitionID string

// TransitionRecord is one expiry-driven state change, written behind the
// timer as a stats log. The timer never reads history back; a restarted
// process always begins with a fresh timer.
type TransitionRecord struct {
	From       TimerState
	To         TimerState
	OccurredAt time.Time
}

type ExistingTransitionRecord struct {
	ExistingRecord[TransitionID]
	TransitionRecord
}

type HistoryRepo interface {
	InsertTransition(context.Context, TransitionRecord) (ExistingTransitionRecord, error)
	GetTransitionsSince(context.Context, time.Time) ([]ExistingTransitionRecord, error)
	// CountCompletedWork tallies transitions out of Work, i.e. finished
	// work sessions, at or after the given time.
	CountCompletedWork(context.Context, time.Time) (int, error)
}
