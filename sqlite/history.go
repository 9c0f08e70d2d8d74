// Package sqlite implements repo interfaces
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	txStdLib "github.com/Thiht/transactor/stdlib"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"pomod"
)

const SelectAllTransitions = "SELECT id, from_state, to_state, occurred_at, created_at, updated_at FROM transitions"

type transitionEntity struct {
	ID         string
	FromState  uint8
	ToState    uint8
	OccurredAt int64
	CreatedAt  int64
	UpdatedAt  int64
}

// historyRepo
type historyRepo struct {
	dbGetter txStdLib.DBGetter
	l        log.Logger
}

func NewHistoryRepo(dbGetter txStdLib.DBGetter, logger log.Logger) *historyRepo {
	return &historyRepo{
		dbGetter: dbGetter,
		l:        logger,
	}
}

func (r *historyRepo) InsertTransition(ctx context.Context, t pomod.TransitionRecord) (pomod.ExistingTransitionRecord, error) {
	db := r.dbGetter(ctx)
	existingRecord := pomod.ExistingTransitionRecord{
		TransitionRecord: t,
		ExistingRecord:   pomod.NewExistingRecord[pomod.TransitionID](uuid.NewString()),
	}
	e := mapToTransitionEntity(existingRecord)

	args := []any{
		e.ID,
		e.FromState,
		e.ToState,
		e.OccurredAt,
		e.CreatedAt,
		e.UpdatedAt,
	}
	query := "INSERT INTO transitions (id, from_state, to_state, occurred_at, created_at, updated_at) VALUES " + placeholders(len(args))
	r.l.Debug("recording transition", "query", query, "args", args)
	_, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return pomod.ExistingTransitionRecord{}, err
	}

	return existingRecord, nil
}

func (r *historyRepo) GetTransitionsSince(ctx context.Context, since time.Time) ([]pomod.ExistingTransitionRecord, error) {
	query := SelectAllTransitions + " WHERE occurred_at >= ? ORDER BY occurred_at"
	rows, err := r.dbGetter(ctx).QueryContext(ctx, query, since.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("failed to query transitions: %w", err)
	}
	defer rows.Close() //nolint

	var records []pomod.ExistingTransitionRecord
	for rows.Next() {
		var e transitionEntity
		if err := rows.Scan(&e.ID, &e.FromState, &e.ToState, &e.OccurredAt, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transition: %w", err)
		}
		records = append(records, mapToExistingTransitionRecord(e))
	}
	return records, rows.Err()
}

func (r *historyRepo) CountCompletedWork(ctx context.Context, since time.Time) (int, error) {
	query := "SELECT COUNT(*) FROM transitions WHERE from_state = ? AND occurred_at >= ?"
	var count int
	err := r.dbGetter(ctx).QueryRowContext(ctx, query, uint8(pomod.StateWork), since.UnixMilli()).Scan(&count)
	if err != nil && err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to count completed work sessions: %w", err)
	}
	return count, nil
}

func placeholders(n int) string {
	return "(?" + strings.Repeat(", ?", n-1) + ")"
}

func mapToTransitionEntity(r pomod.ExistingTransitionRecord) transitionEntity {
	return transitionEntity{
		ID:         string(r.ID),
		FromState:  uint8(r.From),
		ToState:    uint8(r.To),
		OccurredAt: r.OccurredAt.UnixMilli(),
		CreatedAt:  r.CreatedAt.UnixMilli(),
		UpdatedAt:  r.UpdatedAt.UnixMilli(),
	}
}

func mapToExistingTransitionRecord(e transitionEntity) pomod.ExistingTransitionRecord {
	return pomod.ExistingTransitionRecord{
		ExistingRecord: pomod.ExistingRecord[pomod.TransitionID]{
			ID:        pomod.TransitionID(e.ID),
			CreatedAt: time.UnixMilli(e.CreatedAt),
			UpdatedAt: time.UnixMilli(e.UpdatedAt),
		},
		TransitionRecord: pomod.TransitionRecord{
			From:       pomod.TimerState(e.FromState),
			To:         pomod.TimerState(e.ToState),
			OccurredAt: time.UnixMilli(e.OccurredAt),
		},
	}
}
