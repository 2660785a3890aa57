package user_repo

import (
	"context"
	"errors"

	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) UserRepoContract {
	return &UserRepo{
		db: db,
	}
}

func (r *UserRepo) FindByUserID(ctx context.Context, userID string) (*entity.UserEntity, *app_errors.AppError) {
	query := `
		SELECT id, email, name, role, department_id, is_active, created_at
		FROM users
		WHERE id = $1
		LIMIT 1
	`

	var u entity.UserEntity
	if err := r.db.QueryRow(ctx, query, userID).Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.DepartmentID, &u.IsActive, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "user_not_found", nil)
		}
		return nil, app_errors.MapPgxError(err)
	}
	return &u, nil
}

func (r *UserRepo) FindDepartmentByID(ctx context.Context, departmentID string) (*entity.DepartmentEntity, *app_errors.AppError) {
	query := `SELECT id, name FROM departments WHERE id = $1`

	var d entity.DepartmentEntity
	if err := r.db.QueryRow(ctx, query, departmentID).Scan(&d.ID, &d.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "department_not_found", nil)
		}
		return nil, app_errors.MapPgxError(err)
	}
	return &d, nil
}

// ListDepartmentUsers liefert alle Benutzer der Abteilung, auch inaktive,
// damit ihre vergangenen Zeiten im Bericht auftauchen.
func (r *UserRepo) ListDepartmentUsers(ctx context.Context, departmentID string) ([]entity.UserEntity, *app_errors.AppError) {
	query := `
		SELECT id, email, name, role, department_id, is_active, created_at
		FROM users
		WHERE department_id = $1
		ORDER BY name ASC
	`

	rows, err := r.db.Query(ctx, query, departmentID)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	var users []entity.UserEntity
	for rows.Next() {
		var u entity.UserEntity
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.DepartmentID, &u.IsActive, &u.CreatedAt); err != nil {
			return nil, app_errors.MapPgxError(err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	return users, nil
}
