package file_case

import (
	"context"
	"time"

	"github.com/dogaculudag/repro-dashboard-sub001/internal/abstraction/tx"
	file_dto "github.com/dogaculudag/repro-dashboard-sub001/internal/dtos/file-dto"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/permission"
	worker_task "github.com/dogaculudag/repro-dashboard-sub001/internal/worker/tasks"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// requirePermission prüft die Fähigkeit der Rolle des Aufrufers.
func requirePermission(actor entity.Actor, action permission.Action) *app_errors.AppError {
	if !permission.Has(actor.Role, action) {
		return app_errors.NewForbidden("forbidden")
	}
	return nil
}

// lockFile sperrt die Mappe. Eine unbekannte ID ist ein Validierungsfehler der Eingabe.
func (s *FileService) lockFile(ctx context.Context, t tx.Tx, fileID string) (*entity.FileEntity, *app_errors.AppError) {
	file, err := s.fileRepo.GetFileForUpdate(ctx, t, fileID)
	if err != nil {
		if err.Type == app_errors.ErrNotFound {
			return nil, app_errors.NewInvalidReference("file_id", "validation.file_not_found")
		}
		return nil, err
	}
	return file, nil
}

// findDesigner lädt den Zielbenutzer einer Zuweisung. Existiert er nicht oder ist
// er deaktiviert, ist die Referenz ungültig.
func (s *FileService) findDesigner(ctx context.Context, field, userID string) (*entity.UserEntity, *app_errors.AppError) {
	user, err := s.userRepo.FindByUserID(ctx, userID)
	if err != nil {
		if err.Type == app_errors.ErrNotFound {
			return nil, app_errors.NewInvalidReference(field, "validation.assignee_not_found")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, app_errors.NewInvalidReference(field, "validation.assignee_inactive")
	}
	return user, nil
}

// insertEvent vergibt eine ID und schreibt den Audit-Eintrag in dieselbe Transaktion.
func (s *FileService) insertEvent(ctx context.Context, t tx.Tx, event *entity.FileEventEntity) (string, *app_errors.AppError) {
	eventID, idErr := uuid.NewV7()
	if idErr != nil {
		return "", app_errors.NewInternal(idErr)
	}
	event.ID = eventID.String()

	if err := s.fileRepo.InsertFileEvent(ctx, t, event); err != nil {
		return "", err
	}
	return event.ID, nil
}

// notifyDesigner stellt die Benachrichtigung nach dem Commit ein. Fehler werden nur protokolliert.
func (s *FileService) notifyDesigner(file *entity.FileEntity, designerID, actorID string, action entity.FileAction, at time.Time) {
	payload := &worker_task.FileAssignedPayload{
		FileID:     file.ID,
		FileNo:     file.FileNo,
		DesignerID: designerID,
		ActorID:    actorID,
		Action:     string(action),
		AssignedAt: at,
	}
	if err := s.taskQueue.EnqueueFileAssignedEmail(payload); err != nil {
		log.Error().Err(err).Str("file_id", file.ID).Msg("Fehler beim Stellen der Aufgabe in die Warteschlange")
	}
}

func toFileItem(f *entity.FileEntity) *file_dto.FileItem {
	return &file_dto.FileItem{
		FileID:             f.ID,
		FileNo:             f.FileNo,
		CustomerName:       f.CustomerName,
		Stage:              string(f.Stage),
		Status:             string(f.Status),
		AssignedDesignerID: f.AssignedDesignerID,
		UpdatedAt:          f.UpdatedAt,
	}
}

func toEventItem(e *entity.FileEventEntity) *file_dto.FileEventItem {
	return &file_dto.FileEventItem{
		EventID:      e.ID,
		ActorID:      e.ActorID,
		TargetUserID: e.TargetUserID,
		Action:       string(e.Action),
		FromStage:    stringPtr(e.FromStage),
		ToStage:      stringPtr(e.ToStage),
		FromStatus:   stringPtr(e.FromStatus),
		ToStatus:     stringPtr(e.ToStatus),
		Note:         e.Note,
		CreatedAt:    e.CreatedAt,
	}
}

func stringPtr[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

func ptr[T any](v T) *T {
	return &v
}
