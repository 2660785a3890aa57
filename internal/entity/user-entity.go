package entity

import "time"

// UserEntity repräsentiert die Benutzerdaten in der Datenbank.
type UserEntity struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         UserRole  `json:"role"`
	DepartmentID string    `json:"department_id"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Actor ist der aufrufende Benutzer, wie ihn der Identity-Provider auflöst.
type Actor struct {
	UserID       string   `json:"user_id"`
	Role         UserRole `json:"role"`
	DepartmentID string   `json:"department_id"`
}

type DepartmentEntity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type UserRole string

const (
	ADMIN    UserRole = "ADMIN"
	GRAFIKER UserRole = "GRAFIKER"
	ONREPRO  UserRole = "ONREPRO"
)

func (u UserRole) IsValid() bool {
	switch u {
	case ADMIN, GRAFIKER, ONREPRO:
		return true
	}

	return false
}
