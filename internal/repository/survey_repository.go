package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"health-screen/internal/domain"
	"health-screen/internal/repository/models"
)

// SurveyRepositoryImpl implements domain.SurveyRepository with sqlx.
type SurveyRepositoryImpl struct {
	db DBTX
}

// NewSurveyRepository creates a survey repository backed by db.
func NewSurveyRepository(db *sqlx.DB) domain.SurveyRepository {
	return &SurveyRepositoryImpl{db: db}
}

// CreateSurvey inserts the survey and its analysis. Call it inside a
// transaction to keep both rows consistent.
func (r *SurveyRepositoryImpl) CreateSurvey(ctx context.Context, survey *domain.Survey, analysis *domain.Analysis) error {
	exec := GetExecutor(ctx, r.db)

	surveyModel, err := fromDomainSurvey(survey)
	if err != nil {
		return err
	}
	analysisModel, err := fromDomainAnalysis(analysis)
	if err != nil {
		return err
	}

	query := exec.Rebind(`INSERT INTO surveys (id, user_id, answers, sitting_hours, screen_time, sleep_hours,
		exercise_minutes, back_pain, eye_strain, stress_level, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if _, err := exec.ExecContext(ctx, query,
		surveyModel.ID, surveyModel.UserID, surveyModel.Answers, surveyModel.SittingHours,
		surveyModel.ScreenTime, surveyModel.SleepHours, surveyModel.ExerciseMinutes,
		surveyModel.BackPain, surveyModel.EyeStrain, surveyModel.StressLevel, surveyModel.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert survey: %w", err)
	}

	query = exec.Rebind(`INSERT INTO analyses (id, survey_id, user_id, profile, overall_score, risk_level, result, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if _, err := exec.ExecContext(ctx, query,
		analysisModel.ID, analysisModel.SurveyID, analysisModel.UserID, analysisModel.Profile,
		analysisModel.OverallScore, analysisModel.RiskLevel, analysisModel.Result, analysisModel.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert analysis: %w", err)
	}
	return nil
}

// ListSurveysByUser returns a page of the user's surveys, newest first.
func (r *SurveyRepositoryImpl) ListSurveysByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Survey, error) {
	exec := GetExecutor(ctx, r.db)
	query := exec.Rebind(`SELECT s.id, s.user_id, s.answers, s.sitting_hours, s.screen_time, s.sleep_hours,
		s.exercise_minutes, s.back_pain, s.eye_strain, s.stress_level, s.created_at, a.result
		FROM surveys s LEFT JOIN analyses a ON a.survey_id = s.id
		WHERE s.user_id = ?
		ORDER BY s.created_at DESC
		OFFSET ? ROWS FETCH NEXT ? ROWS ONLY`)

	var rows []models.SurveyWithResult
	if err := exec.SelectContext(ctx, &rows, query, userID, offset, limit); err != nil {
		return nil, fmt.Errorf("failed to list surveys for user %s: %w", userID, err)
	}
	return toDomainSurveys(rows)
}

// ListSurveys returns a page of all surveys, newest first.
func (r *SurveyRepositoryImpl) ListSurveys(ctx context.Context, limit, offset int) ([]*domain.Survey, error) {
	exec := GetExecutor(ctx, r.db)
	query := exec.Rebind(`SELECT s.id, s.user_id, s.answers, s.sitting_hours, s.screen_time, s.sleep_hours,
		s.exercise_minutes, s.back_pain, s.eye_strain, s.stress_level, s.created_at, a.result
		FROM surveys s LEFT JOIN analyses a ON a.survey_id = s.id
		ORDER BY s.created_at DESC, s.id DESC
		OFFSET ? ROWS FETCH NEXT ? ROWS ONLY`)

	var rows []models.SurveyWithResult
	if err := exec.SelectContext(ctx, &rows, query, offset, limit); err != nil {
		return nil, fmt.Errorf("failed to list surveys: %w", err)
	}
	return toDomainSurveys(rows)
}

func toDomainSurveys(rows []models.SurveyWithResult) ([]*domain.Survey, error) {
	surveys := make([]*domain.Survey, 0, len(rows))
	for i := range rows {
		s, err := toDomainSurvey(&rows[i])
		if err != nil {
			return nil, err
		}
		surveys = append(surveys, s)
	}
	return surveys, nil
}

const analysisColumns = `id, survey_id, user_id, profile, overall_score, risk_level, result, created_at`

// GetLatestAnalysis returns the newest analysis of the user, or nil when the
// user has none.
func (r *SurveyRepositoryImpl) GetLatestAnalysis(ctx context.Context, userID string) (*domain.Analysis, error) {
	exec := GetExecutor(ctx, r.db)
	query := exec.Rebind(`SELECT ` + analysisColumns + ` FROM analyses
		WHERE user_id = ?
		ORDER BY created_at DESC
		FETCH FIRST 1 ROWS ONLY`)

	var row models.Analysis
	if err := exec.GetContext(ctx, &row, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest analysis for user %s: %w", userID, err)
	}
	return toDomainAnalysis(&row)
}

// ListAnalysesSince returns the user's analyses created at or after since,
// oldest first.
func (r *SurveyRepositoryImpl) ListAnalysesSince(ctx context.Context, userID string, since time.Time) ([]*domain.Analysis, error) {
	exec := GetExecutor(ctx, r.db)
	query := exec.Rebind(`SELECT ` + analysisColumns + ` FROM analyses
		WHERE user_id = ? AND created_at >= ?
		ORDER BY created_at ASC`)

	var rows []models.Analysis
	if err := exec.SelectContext(ctx, &rows, query, userID, since); err != nil {
		return nil, fmt.Errorf("failed to list analyses for user %s: %w", userID, err)
	}

	analyses := make([]*domain.Analysis, 0, len(rows))
	for i := range rows {
		a, err := toDomainAnalysis(&rows[i])
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, a)
	}
	return analyses, nil
}

func fromDomainSurvey(s *domain.Survey) (*models.Survey, error) {
	answers, err := json.Marshal(s.Answers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode survey answers: %w", err)
	}
	return &models.Survey{
		ID:              s.ID,
		UserID:          s.UserID,
		Answers:         string(answers),
		SittingHours:    s.Summary.SittingHours,
		ScreenTime:      s.Summary.ScreenTime,
		SleepHours:      s.Summary.SleepHours,
		ExerciseMinutes: s.Summary.ExerciseMinutes,
		BackPain:        s.Summary.MaxPain,
		EyeStrain:       s.Summary.EyeStrain,
		StressLevel:     s.Summary.StressLevel,
		CreatedAt:       s.CreatedAt,
	}, nil
}

func toDomainSurvey(m *models.SurveyWithResult) (*domain.Survey, error) {
	s := &domain.Survey{
		ID:     m.ID,
		UserID: m.UserID,
		Summary: domain.SurveySummary{
			SittingHours:    m.SittingHours,
			ScreenTime:      m.ScreenTime,
			SleepHours:      m.SleepHours,
			ExerciseMinutes: m.ExerciseMinutes,
			MaxPain:         m.BackPain,
			EyeStrain:       m.EyeStrain,
			StressLevel:     m.StressLevel,
		},
		CreatedAt: m.CreatedAt,
	}
	if err := json.Unmarshal([]byte(m.Answers), &s.Answers); err != nil {
		return nil, fmt.Errorf("failed to decode answers of survey %s: %w", m.ID, err)
	}
	if m.Result.Valid {
		var result domain.ScoreResult
		if err := json.Unmarshal([]byte(m.Result.String), &result); err != nil {
			return nil, fmt.Errorf("failed to decode result of survey %s: %w", m.ID, err)
		}
		s.Result = &result
	}
	return s, nil
}

func fromDomainAnalysis(a *domain.Analysis) (*models.Analysis, error) {
	result, err := json.Marshal(a.Result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis result: %w", err)
	}
	return &models.Analysis{
		ID:           a.ID,
		SurveyID:     a.SurveyID,
		UserID:       a.UserID,
		Profile:      a.Result.Profile,
		OverallScore: a.Result.OverallScore,
		RiskLevel:    string(a.Result.OverallRiskLevel),
		Result:       string(result),
		CreatedAt:    a.SubmittedAt,
	}, nil
}

func toDomainAnalysis(m *models.Analysis) (*domain.Analysis, error) {
	a := &domain.Analysis{
		ID:          m.ID,
		UserID:      m.UserID,
		SurveyID:    m.SurveyID,
		SubmittedAt: m.CreatedAt,
	}
	if err := json.Unmarshal([]byte(m.Result), &a.Result); err != nil {
		return nil, fmt.Errorf("failed to decode analysis %s: %w", m.ID, err)
	}
	return a, nil
}
