package worker_handler

import (
	"context"

	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/mail"
	worker_task "github.com/dogaculudag/repro-dashboard-sub001/internal/worker/tasks"
	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// FileAssignedEmail benachrichtigt den Grafiker. Wurde die Mappe inzwischen
// jemand anderem zugewiesen, entfällt die Mail.
func (wh *WorkerHandler) FileAssignedEmail() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p worker_task.FileAssignedPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			log.Error().Err(err).Msg("Worker handler: Payload nicht lesbar")
			return asynq.SkipRetry
		}

		file, err := wh.fr.GetFileByID(ctx, p.FileID)
		if err != nil {
			if err.Code == 404 {
				return nil
			}
			log.Error().Err(err.Err).Str("file_id", p.FileID).Msg("Worker handler: Fehler beim Laden der Mappe")
			return err
		}
		if file.AssignedDesignerID == nil || *file.AssignedDesignerID != p.DesignerID {
			log.Info().Str("file_id", p.FileID).Msg("Worker handler: Mappe inzwischen umverteilt, keine Mail")
			return nil
		}

		designer, err := wh.ur.FindByUserID(ctx, p.DesignerID)
		if err != nil {
			if err.Code == 404 {
				return nil
			}
			log.Error().Err(err.Err).Str("user_id", p.DesignerID).Msg("Worker handler: Fehler beim Laden des Grafikers")
			return err
		}
		if !designer.IsActive {
			return nil
		}

		return wh.mailer.SendFileAssigned(ctx, mail.FileAssignedNotice{
			To:           designer.Email,
			DesignerName: designer.Name,
			FileNo:       p.FileNo,
			Action:       entity.FileAction(p.Action),
			AssignedAt:   p.AssignedAt,
		})
	}
}
