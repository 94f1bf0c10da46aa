package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"health-screen/internal/domain"
	"health-screen/internal/repository/models"
)

// PostureRepositoryImpl implements domain.PostureRepository with sqlx.
type PostureRepositoryImpl struct {
	db DBTX
}

// NewPostureRepository creates a posture repository backed by db.
func NewPostureRepository(db *sqlx.DB) domain.PostureRepository {
	return &PostureRepositoryImpl{db: db}
}

// CreatePostureRecord stores a posture-check session.
func (r *PostureRepositoryImpl) CreatePostureRecord(ctx context.Context, record *domain.PostureRecord) error {
	exec := GetExecutor(ctx, r.db)
	session, err := json.Marshal(record.Session)
	if err != nil {
		return fmt.Errorf("failed to encode posture session: %w", err)
	}

	query := exec.Rebind(`INSERT INTO posture_records (id, user_id, session, posture_score, eye_score,
		overall_score, session_duration, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err = exec.ExecContext(ctx, query,
		record.ID, record.UserID, string(session), record.Session.Scores.Posture, record.Session.Scores.Eye,
		record.Session.Scores.Overall, record.SessionDuration, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert posture record: %w", err)
	}
	return nil
}

// ListPostureRecordsByUser returns the user's newest sessions.
func (r *PostureRepositoryImpl) ListPostureRecordsByUser(ctx context.Context, userID string, limit int) ([]*domain.PostureRecord, error) {
	exec := GetExecutor(ctx, r.db)
	query := exec.Rebind(`SELECT id, user_id, session, posture_score, eye_score, overall_score,
		session_duration, created_at
		FROM posture_records
		WHERE user_id = ?
		ORDER BY created_at DESC
		FETCH FIRST ? ROWS ONLY`)

	var rows []models.PostureRecord
	if err := exec.SelectContext(ctx, &rows, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list posture records for user %s: %w", userID, err)
	}

	records := make([]*domain.PostureRecord, 0, len(rows))
	for _, row := range rows {
		rec := &domain.PostureRecord{
			ID:              row.ID,
			UserID:          row.UserID,
			SessionDuration: row.SessionDuration,
			CreatedAt:       row.CreatedAt,
		}
		if err := json.Unmarshal([]byte(row.Session), &rec.Session); err != nil {
			return nil, fmt.Errorf("failed to decode posture record %s: %w", row.ID, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
