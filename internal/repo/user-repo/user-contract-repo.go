package user_repo

import (
	"context"

	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
)

type UserRepoContract interface {
	FindByUserID(ctx context.Context, userID string) (*entity.UserEntity, *app_errors.AppError)
	FindDepartmentByID(ctx context.Context, departmentID string) (*entity.DepartmentEntity, *app_errors.AppError)
	ListDepartmentUsers(ctx context.Context, departmentID string) ([]entity.UserEntity, *app_errors.AppError)
}
