// Package scoring turns self-reported survey answers into category scores,
// an overall score, risk levels, alerts and recommendations.
//
// The engine is pure: it never returns an error, never reads the clock and
// gives identical output for identical input.
package scoring

import (
	"github.com/shopspring/decimal"

	"health-screen/internal/domain"
)

// Engine scores answers under one profile. It holds no mutable state and is
// safe for concurrent use.
type Engine struct {
	profile Profile
}

// NewEngine creates an engine for profile.
func NewEngine(profile Profile) *Engine {
	return &Engine{profile: profile}
}

// Profile returns the profile the engine scores with.
func (e *Engine) Profile() Profile {
	return e.profile
}

var defaultEngine = NewEngine(Extended)

// Score evaluates answers with the extended profile.
func Score(answers *domain.SurveyAnswers) domain.ScoreResult {
	return defaultEngine.Score(answers)
}

// Score evaluates answers. A nil answers value is scored as an empty survey.
func (e *Engine) Score(answers *domain.SurveyAnswers) domain.ScoreResult {
	a := normalize(answers)

	categories := make([]domain.CategoryScore, 0, len(e.profile.Weights))
	overall := decimal.Zero
	for _, w := range e.profile.Weights {
		s := rulesByCategory[w.Category].score(&a)
		categories = append(categories, domain.CategoryScore{
			Category:  w.Category,
			Score:     s,
			RiskLevel: LevelFor(s),
		})
		overall = overall.Add(decimal.NewFromFloat(s).Mul(w.Share))
	}

	// Round is half away from zero, which is half-up for non-negative sums.
	rounded := int(clamp(float64(overall.Round(0).IntPart()), minScore, maxScore))

	return domain.ScoreResult{
		Profile:          e.profile.Name,
		Categories:       categories,
		OverallScore:     rounded,
		OverallRiskLevel: LevelFor(float64(rounded)),
		Alerts:           evaluateAlerts(&a),
		Recommendations:  buildRecommendations(&a, categories),
	}
}
