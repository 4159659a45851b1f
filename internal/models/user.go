package models

import "time"

// User is the persistence model for the users table.
type User struct {
	UserID       string `db:"user_id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	AuthProvider string `db:"auth_provider"`
	AuditModel
	DeletedAt *time.Time `db:"deleted_at"`
}
