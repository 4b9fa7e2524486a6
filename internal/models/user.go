package models

import (
	"time"

	"github.com/gocql/gocql"
)

type AdminUser struct {
	ID           gocql.UUID `json:"id" db:"user_id"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Role         string     `json:"role" db:"role"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}
