package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"health-screen/internal/domain"
	"health-screen/internal/repository/models"
	"health-screen/internal/util"
)

// UserRepositoryImpl implements domain.UserRepository with sqlx.
type UserRepositoryImpl struct {
	db DBTX
}

// NewUserRepository creates a user repository backed by db.
func NewUserRepository(db *sqlx.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

const userColumns = `id, email, password_hash, full_name, age_group, gender, faculty,
	consent_given, consent_at, created_at, updated_at`

// CreateUser inserts a new user.
func (r *UserRepositoryImpl) CreateUser(ctx context.Context, user *domain.User) error {
	exec := GetExecutor(ctx, r.db)
	m := fromDomainUser(user)

	query := exec.Rebind(`INSERT INTO users (` + userColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err := exec.ExecContext(ctx, query,
		m.ID, m.Email, m.PasswordHash, m.FullName, m.AgeGroup, m.Gender, m.Faculty,
		m.ConsentGiven, m.ConsentAt, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID returns the user or nil when it does not exist.
func (r *UserRepositoryImpl) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, "id", id)
}

// GetUserByEmail returns the user or nil when it does not exist.
func (r *UserRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, "email", email)
}

func (r *UserRepositoryImpl) getOne(ctx context.Context, column, value string) (*domain.User, error) {
	exec := GetExecutor(ctx, r.db)
	query := exec.Rebind(`SELECT ` + userColumns + ` FROM users WHERE ` + column + ` = ?`)

	var m models.User
	if err := exec.GetContext(ctx, &m, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by %s: %w", column, err)
	}
	return toDomainUser(&m), nil
}

// DeleteUserData removes the user's posture records, analyses, surveys and
// the user row. Call it inside a transaction.
func (r *UserRepositoryImpl) DeleteUserData(ctx context.Context, id string) error {
	exec := GetExecutor(ctx, r.db)
	for _, table := range []string{"posture_records", "analyses", "surveys"} {
		query := exec.Rebind(`DELETE FROM ` + table + ` WHERE user_id = ?`)
		if _, err := exec.ExecContext(ctx, query, id); err != nil {
			return fmt.Errorf("failed to delete %s of user %s: %w", table, id, err)
		}
	}

	result, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM users WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("User not found with ID: %s", id))
	}
	return nil
}

func toDomainUser(m *models.User) *domain.User {
	if m == nil {
		return nil
	}
	u := &domain.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FullName:     m.FullName.String,
		AgeGroup:     m.AgeGroup,
		Gender:       m.Gender.String,
		Faculty:      m.Faculty.String,
		ConsentGiven: m.ConsentGiven == 1,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.ConsentAt.Valid {
		t := m.ConsentAt.Time
		u.ConsentAt = &t
	}
	return u
}

func fromDomainUser(u *domain.User) *models.User {
	if u == nil {
		return nil
	}
	m := &models.User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FullName:     util.StringToNullString(u.FullName),
		AgeGroup:     u.AgeGroup,
		Gender:       util.StringToNullString(u.Gender),
		Faculty:      util.StringToNullString(u.Faculty),
		ConsentGiven: util.BoolToSmallInt(u.ConsentGiven),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
	if u.ConsentAt != nil {
		m.ConsentAt = util.TimeToNullTime(*u.ConsentAt)
	}
	return m
}
