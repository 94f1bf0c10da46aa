package scoring

import "health-screen/internal/domain"

const (
	maxScore = 100.0
	minScore = 0.0

	lowRiskFloor    = 70.0
	mediumRiskFloor = 40.0
)

// LevelFor maps a 0-100 score onto a risk level.
func LevelFor(score float64) domain.RiskLevel {
	switch {
	case score >= lowRiskFloor:
		return domain.RiskLow
	case score >= mediumRiskFloor:
		return domain.RiskMedium
	default:
		return domain.RiskHigh
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
