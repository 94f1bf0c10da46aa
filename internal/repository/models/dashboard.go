package models

import "time"

// RiskCount is one row of the risk distribution query.
type RiskCount struct {
	RiskLevel string `db:"risk_level"`
	Count     int    `db:"cnt"`
}

// IssueCounts holds the per-issue respondent counts.
type IssueCounts struct {
	Total       int `db:"total"`
	LowExercise int `db:"low_exercise"`
	LongSitting int `db:"long_sitting"`
	EyeStrain   int `db:"eye_strain"`
	HighStress  int `db:"high_stress"`
	ShortSleep  int `db:"short_sleep"`
}

// AgeGroupRow is one row of the age group aggregate.
type AgeGroupRow struct {
	AgeGroup      string  `db:"age_group"`
	Count         int     `db:"cnt"`
	AvgScore      float64 `db:"avg_score"`
	HighRiskCount int     `db:"high_risk_count"`
}

// ScorePoint is one analysis timestamp and score.
type ScorePoint struct {
	CreatedAt    time.Time `db:"created_at"`
	OverallScore int       `db:"overall_score"`
}

// SittingBucketRow is one bucket of the sitting time / back pain aggregate.
type SittingBucketRow struct {
	SittingRange string  `db:"sitting_range"`
	AvgBackPain  float64 `db:"avg_back_pain"`
	Count        int     `db:"cnt"`
}

// RecentSurveyRow is one row of the recent submissions query.
type RecentSurveyRow struct {
	SurveyID     string    `db:"survey_id"`
	AgeGroup     string    `db:"age_group"`
	CreatedAt    time.Time `db:"created_at"`
	OverallScore int       `db:"overall_score"`
	RiskLevel    string    `db:"risk_level"`
}
