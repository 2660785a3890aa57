package worker_handler

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// reminderTTL hält den Claim länger als jeder realistische offene Eintrag.
const reminderTTL = 14 * 24 * time.Hour

func ReminderKey(entryID string) string {
	return "long_running_reminder:" + entryID
}

// LongRunningEntries erinnert Benutzer an Einträge, die länger als die Schwelle offen sind.
// Jeder Eintrag bekommt höchstens eine Mail; schlägt der Versand fehl, wird der Claim freigegeben.
func (wh *WorkerHandler) LongRunningEntries() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		now := wh.now()
		entries, err := wh.ter.ListLongRunning(ctx, now.Add(-wh.threshold))
		if err != nil {
			log.Error().Err(err.Err).Msg("Worker handler: Fehler beim Auflisten offener Einträge")
			return err
		}
		if len(entries) == 0 {
			return nil
		}

		sent := 0
		for i := range entries {
			e := &entries[i]
			key := ReminderKey(e.EntryID)

			claimed, claimErr := wh.cache.Claim(ctx, key, reminderTTL)
			if claimErr != nil {
				log.Warn().Err(claimErr.Err).Str("entry_id", e.EntryID).Msg("Worker handler: Claim fehlgeschlagen")
				continue
			}
			if !claimed {
				continue
			}

			if err := wh.mailer.SendLongRunningReminder(ctx, e, now.Sub(e.StartedAt)); err != nil {
				log.Error().Err(err).Str("entry_id", e.EntryID).Msg("Worker handler: Fehler beim Versenden der Erinnerung")
				if delErr := wh.cache.Del(ctx, key); delErr != nil {
					log.Warn().Err(delErr).Str("key", key).Msg("Worker handler: Claim konnte nicht freigegeben werden")
				}
				continue
			}
			sent++
		}

		log.Info().Int("open", len(entries)).Int("sent", sent).Msg("Worker handler: Erinnerungen verarbeitet")
		return nil
	}
}
