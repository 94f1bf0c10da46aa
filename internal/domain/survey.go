package domain

import (
	"encoding/json"
	"time"
)

// Frequency labels shared by several survey questions.
const (
	FreqNever     = "never"
	FreqRarely    = "rarely"
	FreqSometimes = "sometimes"
	FreqOften     = "often"
	FreqAlways    = "always"
)

// Occurrence labels for pain_frequency and headache.
const (
	OccurNever   = "never"
	OccurOnce    = "once"
	OccurSeveral = "several"
	OccurDaily   = "daily"
)

// DeviceData carries optional wearable readings.
type DeviceData struct {
	DailySteps       *float64 `json:"daily_steps,omitempty"`
	SedentaryMinutes *float64 `json:"sedentary_minutes,omitempty"`
	ActiveMinutes    *float64 `json:"active_minutes,omitempty"`
}

// PostureData carries optional posture-session measurements.
type PostureData struct {
	NeckAngle          *float64 `json:"neck_angle,omitempty"`
	BackCurvature      *float64 `json:"back_curvature,omitempty"`
	ShoulderAlignment  *float64 `json:"shoulder_alignment,omitempty"`
	SessionDuration    *float64 `json:"session_duration,omitempty"`
	BadPostureDuration *float64 `json:"bad_posture_duration,omitempty"`
}

// SurveyAnswers is the flat self-report document. Every field is optional;
// a nil pointer means the respondent skipped the question.
type SurveyAnswers struct {
	SittingHours    *float64 `json:"sitting_hours,omitempty"`
	ScreenTime      *float64 `json:"screen_time,omitempty"`
	SleepHours      *float64 `json:"sleep_hours,omitempty"`
	ExerciseMinutes *float64 `json:"exercise_minutes,omitempty"`
	SedentaryHours  *float64 `json:"sedentary_hours,omitempty"`
	DailySteps      *float64 `json:"daily_steps,omitempty"`

	NeckPain      *float64 `json:"neck_pain,omitempty"`
	UpperBackPain *float64 `json:"upper_back_pain,omitempty"`
	LowerBackPain *float64 `json:"lower_back_pain,omitempty"`
	BackPain      *float64 `json:"back_pain,omitempty"`
	EyeStrain     *float64 `json:"eye_strain,omitempty"`
	StressLevel   *float64 `json:"stress_level,omitempty"`

	PostureQuality *float64 `json:"posture_quality,omitempty"`
	SleepQuality   *float64 `json:"sleep_quality,omitempty"`
	Mood           *float64 `json:"mood,omitempty"`
	BreakFrequency *float64 `json:"break_frequency,omitempty"`

	HunchedBack       *string `json:"hunched_back,omitempty"`
	HeadForward       *string `json:"head_forward,omitempty"`
	SittingPosture    *string `json:"sitting_posture,omitempty"`
	PainFrequency     *string `json:"pain_frequency,omitempty"`
	DryEyes           *string `json:"dry_eyes,omitempty"`
	Headache          *string `json:"headache,omitempty"`
	ScreenDistance    *string `json:"screen_distance,omitempty"`
	Lighting          *string `json:"lighting,omitempty"`
	ScreenBreak       *string `json:"screen_break,omitempty"`
	ScreenBeforeSleep *string `json:"screen_before_sleep,omitempty"`
	ExerciseFrequency *string `json:"exercise_frequency,omitempty"`

	Faculty string `json:"faculty,omitempty"`
	Notes   string `json:"notes,omitempty"`

	DeviceData  *DeviceData  `json:"device_data,omitempty"`
	PostureData *PostureData `json:"posture_data,omitempty"`
}

// UnmarshalJSON accepts back_pain_frequency as an alias of pain_frequency.
func (a *SurveyAnswers) UnmarshalJSON(data []byte) error {
	type plain SurveyAnswers
	aux := struct {
		*plain
		BackPainFrequency *string `json:"back_pain_frequency,omitempty"`
	}{plain: (*plain)(a)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if a.PainFrequency == nil && aux.BackPainFrequency != nil {
		a.PainFrequency = aux.BackPainFrequency
	}
	return nil
}

// Float returns a pointer to v. It keeps literal answer construction short.
func Float(v float64) *float64 { return &v }

// Str returns a pointer to v.
func Str(v string) *string { return &v }

// SurveySummary holds the headline answers, after defaults, that are stored
// in their own columns for population statistics.
type SurveySummary struct {
	SittingHours    float64 `json:"sitting_hours"`
	ScreenTime      float64 `json:"screen_time"`
	SleepHours      float64 `json:"sleep_hours"`
	ExerciseMinutes float64 `json:"exercise_minutes"`
	MaxPain         float64 `json:"max_pain"`
	EyeStrain       float64 `json:"eye_strain"`
	StressLevel     float64 `json:"stress_level"`
}

// Survey is a persisted submission together with its scored result.
type Survey struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	Answers   SurveyAnswers `json:"answers"`
	Summary   SurveySummary `json:"summary"`
	Result    *ScoreResult  `json:"result,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}
