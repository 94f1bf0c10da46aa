package domain

import "time"

// DashboardStats is the population overview.
type DashboardStats struct {
	TotalUsers       int               `json:"total_users"`
	TotalSurveys     int               `json:"total_surveys"`
	AvgHealthScore   float64           `json:"avg_health_score"`
	RiskDistribution map[RiskLevel]int `json:"risk_distribution"`
	DemoData         bool              `json:"demo_data,omitempty"`
}

// Common issue labels.
const (
	IssueLowExercise = "Low physical activity (<150 min/week)"
	IssueLongSitting = "Sitting more than 8 hours/day"
	IssueEyeStrain   = "High eye strain (>=6/10)"
	IssueHighStress  = "High stress (>=7/10)"
	IssueShortSleep  = "Short sleep (<7 hours/night)"
)

// IssueStat counts respondents matching one common problem.
type IssueStat struct {
	Issue      string  `json:"issue"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// AgeGroupStat aggregates analyses by respondent age group.
type AgeGroupStat struct {
	AgeGroup      string  `json:"age_group"`
	Count         int     `json:"count"`
	AvgScore      float64 `json:"avg_score"`
	HighRiskCount int     `json:"high_risk_count"`
}

// DailyScore is the average overall score of one day.
type DailyScore struct {
	Date        time.Time `json:"date"`
	SurveyCount int       `json:"survey_count"`
	AvgScore    float64   `json:"avg_score"`
}

// PopulationTrend is the daily average series over a period.
type PopulationTrend struct {
	Period   string       `json:"period"`
	Data     []DailyScore `json:"data"`
	DemoData bool         `json:"demo_data,omitempty"`
}

// SittingBackPainBucket correlates daily sitting time with back pain.
type SittingBackPainBucket struct {
	SittingRange string  `json:"sitting_range"`
	AvgBackPain  float64 `json:"avg_back_pain"`
	Count        int     `json:"count"`
}

// RecentSurvey is one row of the recent submissions list.
type RecentSurvey struct {
	SurveyID     string    `json:"survey_id"`
	AgeGroup     string    `json:"age_group"`
	CreatedAt    time.Time `json:"created_at"`
	OverallScore int       `json:"overall_score"`
	RiskLevel    RiskLevel `json:"risk_level"`
}

// DashboardSummary bundles every dashboard aggregate in one response.
type DashboardSummary struct {
	Stats           *DashboardStats         `json:"stats"`
	Issues          []IssueStat             `json:"issues"`
	AgeGroups       []AgeGroupStat          `json:"age_groups"`
	Trend           *PopulationTrend        `json:"trend"`
	SittingBackPain []SittingBackPainBucket `json:"sitting_back_pain"`
}
