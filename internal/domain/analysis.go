package domain

import "time"

// RiskLevel classifies a 0-100 score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// Severity of a triggered alert.
type Severity string

const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
	SeverityLow    Severity = "LOW"
)

// Category identifies one scored health dimension.
type Category string

const (
	CategoryMusculoskeletal  Category = "musculoskeletal"
	CategoryEyeHealth        Category = "eyeHealth"
	CategoryMentalHealth     Category = "mentalHealth"
	CategoryPhysicalActivity Category = "physicalActivity"
)

// CategoryScore is the clamped score of one category.
type CategoryScore struct {
	Category  Category  `json:"category"`
	Score     float64   `json:"score"`
	RiskLevel RiskLevel `json:"risk_level"`
}

// Alert is a warning raised by a rule over raw answers.
type Alert struct {
	RuleID         string   `json:"rule_id"`
	Category       Category `json:"category"`
	Severity       Severity `json:"severity"`
	Message        string   `json:"message"`
	Recommendation string   `json:"recommendation"`
}

// Recommendation is a suggested action. Priority 1 is the most urgent.
type Recommendation struct {
	Category    Category `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    int      `json:"priority"`
}

// ScoreResult is the complete output of one scoring run.
type ScoreResult struct {
	Profile          string           `json:"profile"`
	Categories       []CategoryScore  `json:"categories"`
	OverallScore     int              `json:"overall_score"`
	OverallRiskLevel RiskLevel        `json:"overall_risk_level"`
	Alerts           []Alert          `json:"alerts"`
	Recommendations  []Recommendation `json:"recommendations"`
}

// CategoryScore returns the score for c and whether the profile scored it.
func (r *ScoreResult) CategoryScore(c Category) (CategoryScore, bool) {
	for _, cs := range r.Categories {
		if cs.Category == c {
			return cs, true
		}
	}
	return CategoryScore{}, false
}

// Analysis is a scored result bound to its owner and submission time.
type Analysis struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id,omitempty"`
	SurveyID    string      `json:"survey_id,omitempty"`
	Result      ScoreResult `json:"result"`
	SubmittedAt time.Time   `json:"submitted_at"`
}

// TrendDirection summarises how overall scores moved over a period.
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendStable    TrendDirection = "stable"
	TrendDeclining TrendDirection = "declining"
)

// TrendPoint is one dated overall score.
type TrendPoint struct {
	Date         time.Time `json:"date"`
	OverallScore int       `json:"overall_score"`
	RiskLevel    RiskLevel `json:"risk_level"`
}

// HealthTrend is a user's score history over a period.
type HealthTrend struct {
	Period    string         `json:"period"`
	Points    []TrendPoint   `json:"points"`
	Direction TrendDirection `json:"direction"`
	Change    int            `json:"change"`
}
