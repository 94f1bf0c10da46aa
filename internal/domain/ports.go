package domain

import (
	"context"
	"time"
)

// SurveyRepository persists submissions and their scored analyses.
type SurveyRepository interface {
	// CreateSurvey stores the answers and the analysis computed from them.
	CreateSurvey(ctx context.Context, survey *Survey, analysis *Analysis) error

	// ListSurveysByUser returns a user's submissions, newest first.
	ListSurveysByUser(ctx context.Context, userID string, limit, offset int) ([]*Survey, error)

	// ListSurveys returns submissions of every user, newest first.
	ListSurveys(ctx context.Context, limit, offset int) ([]*Survey, error)

	// GetLatestAnalysis returns the newest analysis of a user or nil.
	GetLatestAnalysis(ctx context.Context, userID string) (*Analysis, error)

	// ListAnalysesSince returns a user's analyses at or after since, oldest first.
	ListAnalysesSince(ctx context.Context, userID string, since time.Time) ([]*Analysis, error)
}

// UserRepository persists registered users.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	// DeleteUserData removes the user and everything recorded for them.
	DeleteUserData(ctx context.Context, id string) error
}

// PostureRepository persists posture-check sessions.
type PostureRepository interface {
	CreatePostureRecord(ctx context.Context, record *PostureRecord) error
	ListPostureRecordsByUser(ctx context.Context, userID string, limit int) ([]*PostureRecord, error)
}

// DashboardRepository computes population aggregates.
type DashboardRepository interface {
	GetStats(ctx context.Context) (*DashboardStats, error)
	GetCommonIssues(ctx context.Context) ([]IssueStat, error)
	GetAgeGroupStats(ctx context.Context) ([]AgeGroupStat, error)
	GetDailyScores(ctx context.Context, since time.Time) ([]DailyScore, error)
	GetSittingBackPain(ctx context.Context) ([]SittingBackPainBucket, error)
	GetRecentSurveys(ctx context.Context, limit int) ([]RecentSurvey, error)
}

// TransactionManager runs fn inside a database transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
