package file_case

import (
	"context"
	"time"

	"github.com/dogaculudag/repro-dashboard-sub001/internal/abstraction/tx"
	file_dto "github.com/dogaculudag/repro-dashboard-sub001/internal/dtos/file-dto"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/permission"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/queue"
	file_repo "github.com/dogaculudag/repro-dashboard-sub001/internal/repo/file-repo"
	user_repo "github.com/dogaculudag/repro-dashboard-sub001/internal/repo/user-repo"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type FileService struct {
	fileRepo  file_repo.FileRepoContract
	userRepo  user_repo.UserRepoContract
	txManager tx.TxManager
	taskQueue queue.TaskQueueClient
	now       func() time.Time
}

func NewFileService(db *pgxpool.Pool, redis *redis.Client) FileServiceContract {
	return &FileService{
		fileRepo:  file_repo.NewFileRepo(db),
		userRepo:  user_repo.NewUserRepo(db),
		txManager: tx.NewPgxTxManager(db),
		taskQueue: queue.NewTaskQueue(redis),
		now:       time.Now,
	}
}

func (s *FileService) AssignFile(ctx context.Context, actor entity.Actor, fileID string, req *file_dto.AssignFileRequest) (*file_dto.FileAssignmentResponse, *app_errors.AppError) {
	if err := requirePermission(actor, permission.FileAssign); err != nil {
		return nil, err
	}

	if _, err := s.findDesigner(ctx, "assignee_id", req.AssigneeID); err != nil {
		return nil, err
	}

	t, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer t.Rollback(ctx)

	file, err := s.lockFile(ctx, t, fileID)
	if err != nil {
		return nil, err
	}
	if file.Status == entity.StatusSentToProduction {
		return nil, app_errors.NewConflict("conflict.file_sent_to_production", nil)
	}

	assigned, err := s.fileRepo.UpdateAssignee(ctx, t, fileID, req.AssigneeID)
	if err != nil {
		return nil, err
	}

	eventID, err := s.insertEvent(ctx, t, &entity.FileEventEntity{
		FileID:       fileID,
		ActorID:      actor.UserID,
		TargetUserID: &req.AssigneeID,
		Action:       entity.ActionAssign,
		FromStage:    ptr(file.Stage),
		ToStage:      ptr(assigned.Stage),
		Note:         req.Note,
	})
	if err != nil {
		return nil, err
	}

	if err := t.Commit(ctx); err != nil {
		log.Error().Err(err.Err).Str("file_id", fileID).Msg("Fehler beim Ausführen der DB-Transaktion")
		return nil, err
	}

	s.notifyDesigner(file, req.AssigneeID, actor.UserID, entity.ActionAssign, s.now())

	return &file_dto.FileAssignmentResponse{
		FileID:             assigned.ID,
		Stage:              string(assigned.Stage),
		Status:             string(assigned.Status),
		AssignedDesignerID: assigned.AssignedDesignerID,
		EventID:            eventID,
	}, nil
}

// TransferToRepro übergibt eine Mappe aus der Vorstufe in den Pool eines Grafikers.
func (s *FileService) TransferToRepro(ctx context.Context, actor entity.Actor, fileID string, req *file_dto.TransferFileRequest) (*file_dto.FileAssignmentResponse, *app_errors.AppError) {
	if err := requirePermission(actor, permission.FileTransfer); err != nil {
		return nil, err
	}

	designer, err := s.findDesigner(ctx, "designer_id", req.DesignerID)
	if err != nil {
		return nil, err
	}
	if designer.Role != entity.GRAFIKER {
		return nil, app_errors.NewInvalidReference("designer_id", "validation.designer_role")
	}

	t, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer t.Rollback(ctx)

	file, err := s.lockFile(ctx, t, fileID)
	if err != nil {
		return nil, err
	}
	if file.Stage != entity.StagePreRepro {
		return nil, app_errors.NewConflict("conflict.file_not_in_pre_repro", nil)
	}

	transferred, err := s.fileRepo.TransferToRepro(ctx, t, fileID, req.DesignerID)
	if err != nil {
		return nil, err
	}

	eventID, err := s.insertEvent(ctx, t, &entity.FileEventEntity{
		FileID:       fileID,
		ActorID:      actor.UserID,
		TargetUserID: &req.DesignerID,
		Action:       entity.ActionTransferToRepro,
		FromStage:    ptr(file.Stage),
		ToStage:      ptr(transferred.Stage),
		Note:         req.Note,
	})
	if err != nil {
		return nil, err
	}

	if err := t.Commit(ctx); err != nil {
		log.Error().Err(err.Err).Str("file_id", fileID).Msg("Fehler beim Ausführen der DB-Transaktion")
		return nil, err
	}

	s.notifyDesigner(file, req.DesignerID, actor.UserID, entity.ActionTransferToRepro, s.now())

	return &file_dto.FileAssignmentResponse{
		FileID:             transferred.ID,
		Stage:              string(transferred.Stage),
		Status:             string(transferred.Status),
		AssignedDesignerID: transferred.AssignedDesignerID,
		EventID:            eventID,
	}, nil
}

// SendToProduction darf nur der zugewiesene Grafiker oder ein Admin.
func (s *FileService) SendToProduction(ctx context.Context, actor entity.Actor, fileID string, req *file_dto.SendToProductionRequest) (*file_dto.SendToProductionResponse, *app_errors.AppError) {
	if err := requirePermission(actor, permission.FileSendToProduction); err != nil {
		return nil, err
	}

	t, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer t.Rollback(ctx)

	file, err := s.lockFile(ctx, t, fileID)
	if err != nil {
		return nil, err
	}

	isAssignee := file.AssignedDesignerID != nil && *file.AssignedDesignerID == actor.UserID
	if !isAssignee && !permission.HasRole(actor.Role, entity.ADMIN) {
		return nil, app_errors.NewForbidden("forbidden.not_file_designer")
	}
	if file.Status == entity.StatusSentToProduction {
		return nil, app_errors.NewConflict("conflict.file_sent_to_production", nil)
	}

	if err := s.fileRepo.UpdateStatus(ctx, t, fileID, entity.StatusSentToProduction); err != nil {
		return nil, err
	}

	eventID, err := s.insertEvent(ctx, t, &entity.FileEventEntity{
		FileID:     fileID,
		ActorID:    actor.UserID,
		Action:     entity.ActionSendToProduction,
		FromStatus: ptr(file.Status),
		ToStatus:   ptr(entity.StatusSentToProduction),
		Note:       req.Note,
	})
	if err != nil {
		return nil, err
	}

	if err := t.Commit(ctx); err != nil {
		log.Error().Err(err.Err).Str("file_id", fileID).Msg("Fehler beim Ausführen der DB-Transaktion")
		return nil, err
	}

	return &file_dto.SendToProductionResponse{
		FileID:  fileID,
		Status:  string(entity.StatusSentToProduction),
		EventID: eventID,
	}, nil
}

// ListPoolFiles zeigt nur Mappen, die bereits in REPRO angekommen sind.
// Fremde Pools sieht nur ein Admin.
func (s *FileService) ListPoolFiles(ctx context.Context, actor entity.Actor, userID string) ([]*file_dto.FileItem, *app_errors.AppError) {
	if err := requirePermission(actor, permission.FileViewPool); err != nil {
		return nil, err
	}
	if userID == "" {
		userID = actor.UserID
	}
	if userID != actor.UserID && !permission.HasRole(actor.Role, entity.ADMIN) {
		return nil, app_errors.NewForbidden("forbidden")
	}

	files, err := s.fileRepo.ListPoolFiles(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]*file_dto.FileItem, 0, len(files))
	for _, f := range files {
		// PRE_REPRO-Mappen gehören in die Eingangsschlange, auch wenn schon ein Grafiker eingetragen ist
		if f.Stage != entity.StageRepro || f.DesignerID != userID {
			continue
		}
		resp = append(resp, &file_dto.FileItem{
			FileID:             f.ID,
			FileNo:             f.FileNo,
			CustomerName:       f.CustomerName,
			Stage:              string(f.Stage),
			Status:             string(f.Status),
			AssignedDesignerID: &userID,
			UpdatedAt:          f.UpdatedAt,
		})
	}
	return resp, nil
}

func (s *FileService) ListPreReproQueue(ctx context.Context, actor entity.Actor) ([]*file_dto.FileItem, *app_errors.AppError) {
	if err := requirePermission(actor, permission.FileViewQueue); err != nil {
		return nil, err
	}

	files, err := s.fileRepo.ListPreReproQueue(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]*file_dto.FileItem, 0, len(files))
	for i := range files {
		resp = append(resp, toFileItem(&files[i]))
	}
	return resp, nil
}

func (s *FileService) ListFileEvents(ctx context.Context, actor entity.Actor, fileID string) ([]*file_dto.FileEventItem, *app_errors.AppError) {
	if err := requirePermission(actor, permission.AuditView); err != nil {
		return nil, err
	}

	if _, err := s.fileRepo.GetFileByID(ctx, fileID); err != nil {
		return nil, err
	}

	events, err := s.fileRepo.ListFileEvents(ctx, fileID)
	if err != nil {
		return nil, err
	}

	resp := make([]*file_dto.FileEventItem, 0, len(events))
	for i := range events {
		resp = append(resp, toEventItem(&events[i]))
	}
	return resp, nil
}

// AuthorizeTracking wird vor jeder Zeitbuchung aufgerufen.
func (s *FileService) AuthorizeTracking(ctx context.Context, actor entity.Actor, fileID string) *app_errors.AppError {
	if err := requirePermission(actor, permission.TimeTrack); err != nil {
		return err
	}

	file, err := s.fileRepo.GetFileByID(ctx, fileID)
	if err != nil {
		if err.Type == app_errors.ErrNotFound {
			return app_errors.NewInvalidReference("file_id", "validation.file_not_found")
		}
		return err
	}

	if file.Status == entity.StatusSentToProduction {
		return app_errors.NewConflict("conflict.file_sent_to_production", nil)
	}

	if permission.Has(actor.Role, permission.TimeTrackAnyFile) {
		return nil
	}

	inPool := file.Stage == entity.StageRepro && file.AssignedDesignerID != nil && *file.AssignedDesignerID == actor.UserID
	if !inPool {
		return app_errors.NewForbidden("forbidden.file_not_in_pool")
	}
	return nil
}
