package models

import (
	"database/sql"
	"time"
)

// Survey represents a row of the surveys table. Answers is the JSON document
// as submitted; the numeric columns repeat headline answers for aggregation.
type Survey struct {
	ID              string    `db:"id"`
	UserID          string    `db:"user_id"`
	Answers         string    `db:"answers"`
	SittingHours    float64   `db:"sitting_hours"`
	ScreenTime      float64   `db:"screen_time"`
	SleepHours      float64   `db:"sleep_hours"`
	ExerciseMinutes float64   `db:"exercise_minutes"`
	BackPain        float64   `db:"back_pain"`
	EyeStrain       float64   `db:"eye_strain"`
	StressLevel     float64   `db:"stress_level"`
	CreatedAt       time.Time `db:"created_at"`
}

// SurveyWithResult is a survey joined with its analysis result, if any.
type SurveyWithResult struct {
	Survey
	Result sql.NullString `db:"result"`
}

// Analysis represents a row of the analyses table. Result is the JSON
// encoded score result.
type Analysis struct {
	ID           string    `db:"id"`
	SurveyID     string    `db:"survey_id"`
	UserID       string    `db:"user_id"`
	Profile      string    `db:"profile"`
	OverallScore int       `db:"overall_score"`
	RiskLevel    string    `db:"risk_level"`
	Result       string    `db:"result"`
	CreatedAt    time.Time `db:"created_at"`
}

// PostureRecord represents a row of the posture_records table.
type PostureRecord struct {
	ID              string    `db:"id"`
	UserID          string    `db:"user_id"`
	Session         string    `db:"session"`
	PostureScore    int       `db:"posture_score"`
	EyeScore        int       `db:"eye_score"`
	OverallScore    int       `db:"overall_score"`
	SessionDuration int       `db:"session_duration"`
	CreatedAt       time.Time `db:"created_at"`
}
