package models

import (
	"database/sql"
	"time"
)

// User represents a row of the users table.
type User struct {
	ID           string         `db:"id"`            // ULID
	Email        string         `db:"email"`         // login name, unique
	PasswordHash string         `db:"password_hash"` // bcrypt hash
	FullName     sql.NullString `db:"full_name"`
	AgeGroup     string         `db:"age_group"`
	Gender       sql.NullString `db:"gender"`
	Faculty      sql.NullString `db:"faculty"`
	ConsentGiven int            `db:"consent_given"` // 0 or 1
	ConsentAt    sql.NullTime   `db:"consent_at"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}
