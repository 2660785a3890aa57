package file_case

import (
	"context"
	"testing"

	file_dto "github.com/dogaculudag/repro-dashboard-sub001/internal/dtos/file-dto"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransferToRepro_Success(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	actor := entity.Actor{UserID: "onrepro-1", Role: entity.ONREPRO}
	file := &entity.FileEntity{ID: "file-1", FileNo: "R-1", Stage: entity.StagePreRepro, Status: entity.StatusPending}

	f.userRepo.On("FindByUserID", ctx, "designer-1").Return(designer("designer-1"), (*app_errors.AppError)(nil))
	f.expectTx(ctx, true)
	f.fileRepo.On("GetFileForUpdate", ctx, f.tx, "file-1").Return(file, (*app_errors.AppError)(nil))
	f.fileRepo.On("TransferToRepro", ctx, f.tx, "file-1", "designer-1").Return(&entity.FileAssignment{
		ID: "file-1", Stage: entity.StageRepro, Status: entity.StatusPending, AssignedDesignerID: "designer-1",
	}, (*app_errors.AppError)(nil))
	f.fileRepo.On("InsertFileEvent", ctx, f.tx, mock.MatchedBy(func(e *entity.FileEventEntity) bool {
		return e.Action == entity.ActionTransferToRepro && *e.FromStage == entity.StagePreRepro && *e.ToStage == entity.StageRepro
	})).Return((*app_errors.AppError)(nil))
	f.taskQueue.On("EnqueueFileAssignedEmail", mock.Anything).Return(nil)

	resp, err := f.service.TransferToRepro(ctx, actor, "file-1", &file_dto.TransferFileRequest{DesignerID: "designer-1"})

	require.Nil(t, err)
	assert.Equal(t, string(entity.StageRepro), resp.Stage)
	f.fileRepo.AssertExpectations(t)
	f.taskQueue.AssertExpectations(t)
}

func TestTransferToRepro_NotInPreRepro(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	actor := entity.Actor{UserID: "onrepro-1", Role: entity.ONREPRO}
	file := &entity.FileEntity{ID: "file-1", Stage: entity.StageRepro, Status: entity.StatusInProgress}

	f.userRepo.On("FindByUserID", ctx, "designer-1").Return(designer("designer-1"), (*app_errors.AppError)(nil))
	f.expectTx(ctx, false)
	f.fileRepo.On("GetFileForUpdate", ctx, f.tx, "file-1").Return(file, (*app_errors.AppError)(nil))

	resp, err := f.service.TransferToRepro(ctx, actor, "file-1", &file_dto.TransferFileRequest{DesignerID: "designer-1"})

	assert.Nil(t, resp)
	require.NotNil(t, err)
	assert.Equal(t, 409, err.Code)
	assert.Equal(t, "conflict.file_not_in_pre_repro", err.MessageKey)
	f.fileRepo.AssertNotCalled(t, "TransferToRepro", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTransferToRepro_TargetNotDesigner(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	admin := &entity.UserEntity{ID: "admin-2", Role: entity.ADMIN, IsActive: true}
	f.userRepo.On("FindByUserID", ctx, "admin-2").Return(admin, (*app_errors.AppError)(nil))

	_, err := f.service.TransferToRepro(ctx, entity.Actor{UserID: "onrepro-1", Role: entity.ONREPRO}, "file-1", &file_dto.TransferFileRequest{DesignerID: "admin-2"})

	require.NotNil(t, err)
	assert.Equal(t, app_errors.ErrValidation, err.Type)
	assert.Equal(t, "validation.designer_role", err.MessageKey)
	f.txManager.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestSendToProduction_ByAssignee(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	owner := "designer-1"
	actor := entity.Actor{UserID: owner, Role: entity.GRAFIKER}
	file := &entity.FileEntity{ID: "file-1", Stage: entity.StageRepro, Status: entity.StatusInProgress, AssignedDesignerID: &owner}

	f.expectTx(ctx, true)
	f.fileRepo.On("GetFileForUpdate", ctx, f.tx, "file-1").Return(file, (*app_errors.AppError)(nil))
	f.fileRepo.On("UpdateStatus", ctx, f.tx, "file-1", entity.StatusSentToProduction).Return((*app_errors.AppError)(nil))
	f.fileRepo.On("InsertFileEvent", ctx, f.tx, mock.MatchedBy(func(e *entity.FileEventEntity) bool {
		return e.Action == entity.ActionSendToProduction && *e.FromStatus == entity.StatusInProgress
	})).Return((*app_errors.AppError)(nil))

	resp, err := f.service.SendToProduction(ctx, actor, "file-1", &file_dto.SendToProductionRequest{})

	require.Nil(t, err)
	assert.Equal(t, string(entity.StatusSentToProduction), resp.Status)
	f.tx.AssertExpectations(t)
}

func TestSendToProduction_OtherDesigner(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	owner := "designer-1"
	file := &entity.FileEntity{ID: "file-1", Stage: entity.StageRepro, Status: entity.StatusInProgress, AssignedDesignerID: &owner}

	f.expectTx(ctx, false)
	f.fileRepo.On("GetFileForUpdate", ctx, f.tx, "file-1").Return(file, (*app_errors.AppError)(nil))

	_, err := f.service.SendToProduction(ctx, entity.Actor{UserID: "designer-2", Role: entity.GRAFIKER}, "file-1", &file_dto.SendToProductionRequest{})

	require.NotNil(t, err)
	assert.Equal(t, 403, err.Code)
	assert.Equal(t, "forbidden.not_file_designer", err.MessageKey)
}

func TestSendToProduction_AlreadySent(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	file := &entity.FileEntity{ID: "file-1", Stage: entity.StageRepro, Status: entity.StatusSentToProduction}

	f.expectTx(ctx, false)
	f.fileRepo.On("GetFileForUpdate", ctx, f.tx, "file-1").Return(file, (*app_errors.AppError)(nil))

	_, err := f.service.SendToProduction(ctx, entity.Actor{UserID: "admin-1", Role: entity.ADMIN}, "file-1", &file_dto.SendToProductionRequest{})

	require.NotNil(t, err)
	assert.Equal(t, app_errors.ErrConflict, err.Type)
}
