package time_entry_case

import (
	"context"
	"time"

	"github.com/dogaculudag/repro-dashboard-sub001/internal/abstraction/tx"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
	time_entry_repo "github.com/dogaculudag/repro-dashboard-sub001/internal/repo/time-entry-repo"
	"github.com/google/uuid"
)

type Ledger struct {
	repo time_entry_repo.TimeEntryRepoContract
}

func NewLedger(repo time_entry_repo.TimeEntryRepoContract) *Ledger {
	return &Ledger{repo: repo}
}

// OpenInTx legt einen offenen Eintrag an, solange der Benutzer keinen anderen offenen hat.
// Der Unique-Index fängt parallele Starts ab, die diese Prüfung gleichzeitig passieren.
func (l *Ledger) OpenInTx(ctx context.Context, t tx.Tx, userID, fileID string, note *string, at time.Time) (*entity.TimeEntryEntity, *app_errors.AppError) {
	open, err := l.repo.GetOpenEntryForUpdate(ctx, t, userID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, app_errors.NewConflict("conflict.active_entry_exists", nil)
	}

	entryID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.NewInternal(idErr)
	}

	entry := &entity.TimeEntryEntity{
		ID:        entryID.String(),
		UserID:    userID,
		FileID:    fileID,
		StartedAt: at.UTC(),
		Note:      note,
	}
	if err := l.repo.InsertEntry(ctx, t, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// CloseInTx schließt den offenen Eintrag des Benutzers, optional nur für fileID.
// Ohne passenden offenen Eintrag kommt NOT_FOUND zurück.
func (l *Ledger) CloseInTx(ctx context.Context, t tx.Tx, userID string, fileID *string, at time.Time) (*entity.TimeEntryEntity, *app_errors.AppError) {
	open, err := l.repo.GetOpenEntryForUpdate(ctx, t, userID)
	if err != nil {
		return nil, err
	}
	if open == nil || (fileID != nil && open.FileID != *fileID) {
		return nil, app_errors.NewNotFound("not_found.no_active_entry")
	}

	endedAt := at.UTC()
	if endedAt.Before(open.StartedAt) {
		endedAt = open.StartedAt
	}

	return l.repo.CloseEntry(ctx, t, open.ID, endedAt)
}

func isNotFound(err *app_errors.AppError) bool {
	return err != nil && err.Type == app_errors.ErrNotFound
}
