// Package posture scores posture-check sessions and provides a synthetic
// session generator for demos and tests. It does not do any image analysis.
package posture

import (
	"math"

	"github.com/shopspring/decimal"

	"health-screen/internal/domain"
)

var (
	postureWeight  = decimal.RequireFromString("0.35")
	faceWeight     = decimal.RequireFromString("0.20")
	eyeWeight      = decimal.RequireFromString("0.30")
	lightingWeight = decimal.RequireFromString("0.15")
)

func clampScore(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

// PostureScore rates body position.
func PostureScore(m domain.PostureMetrics) int {
	score := 100.0
	switch {
	case m.NeckAngle > 20:
		score -= 25
	case m.NeckAngle > 15:
		score -= 15
	}
	switch {
	case m.BackCurvature > 15:
		score -= 20
	case m.BackCurvature > 12:
		score -= 10
	}
	if m.ShoulderBalance < 85 {
		score -= 15
	}
	switch {
	case m.DistanceFromScreen < 40:
		score -= 20
	case m.DistanceFromScreen < 50:
		score -= 10
	}
	return int(clampScore(score))
}

// FaceScore rates visible fatigue.
func FaceScore(m domain.FaceMetrics) int {
	score := 100.0
	switch {
	case m.DarkCircles > 60:
		score -= 25
	case m.DarkCircles > 40:
		score -= 15
	}
	switch {
	case m.FatigueLevel > 70:
		score -= 20
	case m.FatigueLevel > 50:
		score -= 10
	}
	score -= (100 - m.SkinCondition) * 0.2
	return int(clampScore(roundHalfUp(score)))
}

// EyeScore rates eye comfort.
func EyeScore(m domain.EyeMetrics) int {
	score := 100.0
	if m.BlinkRate < 12 {
		score -= 20
	}
	switch {
	case m.EyeStrain > 60:
		score -= 25
	case m.EyeStrain > 40:
		score -= 15
	}
	if m.EyeOpenness < 75 {
		score -= 15
	}
	if m.ScreenGlare > 60 {
		score -= 15
	}
	return int(clampScore(score))
}

// LightingScore rates the screen environment.
func LightingScore(m domain.LightingMetrics) int {
	score := 100.0
	switch {
	case m.Brightness < 40:
		score -= 25
	case m.Brightness > 85:
		score -= 15
	}
	if m.BlueLight > 60 {
		score -= 20
	}
	if m.Contrast > 70 {
		score -= 10
	}
	return int(clampScore(score))
}

// Evaluate computes every sub-score and the weighted overall score.
func Evaluate(s domain.PostureSession) domain.PostureScores {
	scores := domain.PostureScores{
		Posture:  PostureScore(s.Posture),
		Face:     FaceScore(s.Face),
		Eye:      EyeScore(s.Eye),
		Lighting: LightingScore(s.Lighting),
	}
	overall := decimal.NewFromInt(int64(scores.Posture)).Mul(postureWeight).
		Add(decimal.NewFromInt(int64(scores.Face)).Mul(faceWeight)).
		Add(decimal.NewFromInt(int64(scores.Eye)).Mul(eyeWeight)).
		Add(decimal.NewFromInt(int64(scores.Lighting)).Mul(lightingWeight))
	scores.Overall = int(overall.Round(0).IntPart())
	return scores
}

// ToPostureData maps session measurements onto the survey's posture_data
// block so a session can feed the musculoskeletal score.
func ToPostureData(s domain.PostureSession, sessionMinutes float64) *domain.PostureData {
	return &domain.PostureData{
		NeckAngle:         domain.Float(s.Posture.NeckAngle),
		BackCurvature:     domain.Float(s.Posture.BackCurvature),
		ShoulderAlignment: domain.Float(s.Posture.ShoulderBalance),
		SessionDuration:   domain.Float(sessionMinutes),
	}
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
