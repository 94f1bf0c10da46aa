package scoring

import (
	"math"

	"health-screen/internal/domain"
)

// Defaults applied when a numeric answer is absent.
const (
	DefaultSittingHours    = 4.0
	DefaultScreenTime      = 4.0
	DefaultSleepHours      = 7.0
	DefaultExerciseMinutes = 0.0
	DefaultPainLevel       = 0.0
)

type bounds struct {
	lo, hi float64
}

var (
	hoursRange    = bounds{0, 24}
	scaleRange    = bounds{0, 10}
	exerciseRange = bounds{0, 1440}
	stepsRange    = bounds{0, 100000}
	breakRange    = bounds{0, 999}
	angleRange    = bounds{0, 90}
	minutesRange  = bounds{0, 1440}
	percentRange  = bounds{0, 100}
)

// normalize returns a copy of a with defaults filled in and every numeric
// answer clamped to its range. Optional answers stay nil when absent.
func normalize(a *domain.SurveyAnswers) domain.SurveyAnswers {
	var n domain.SurveyAnswers
	if a != nil {
		n = *a
	}

	n.SittingHours = withDefault(n.SittingHours, DefaultSittingHours, hoursRange)
	n.ScreenTime = withDefault(n.ScreenTime, DefaultScreenTime, hoursRange)
	n.SleepHours = withDefault(n.SleepHours, DefaultSleepHours, hoursRange)
	n.ExerciseMinutes = withDefault(n.ExerciseMinutes, DefaultExerciseMinutes, exerciseRange)

	n.NeckPain = withDefault(n.NeckPain, DefaultPainLevel, scaleRange)
	n.UpperBackPain = withDefault(n.UpperBackPain, DefaultPainLevel, scaleRange)
	n.LowerBackPain = withDefault(n.LowerBackPain, DefaultPainLevel, scaleRange)
	n.BackPain = withDefault(n.BackPain, DefaultPainLevel, scaleRange)
	n.EyeStrain = withDefault(n.EyeStrain, DefaultPainLevel, scaleRange)
	n.StressLevel = withDefault(n.StressLevel, DefaultPainLevel, scaleRange)

	n.SedentaryHours = bounded(n.SedentaryHours, hoursRange)
	n.DailySteps = bounded(n.DailySteps, stepsRange)
	n.PostureQuality = bounded(n.PostureQuality, scaleRange)
	n.SleepQuality = bounded(n.SleepQuality, scaleRange)
	n.Mood = bounded(n.Mood, scaleRange)
	n.BreakFrequency = bounded(n.BreakFrequency, breakRange)

	if n.DeviceData != nil {
		d := *n.DeviceData
		d.DailySteps = bounded(d.DailySteps, stepsRange)
		d.SedentaryMinutes = bounded(d.SedentaryMinutes, minutesRange)
		d.ActiveMinutes = bounded(d.ActiveMinutes, exerciseRange)
		n.DeviceData = &d
	}
	if n.PostureData != nil {
		p := *n.PostureData
		p.NeckAngle = bounded(p.NeckAngle, angleRange)
		p.BackCurvature = bounded(p.BackCurvature, angleRange)
		p.ShoulderAlignment = bounded(p.ShoulderAlignment, percentRange)
		p.SessionDuration = bounded(p.SessionDuration, minutesRange)
		p.BadPostureDuration = bounded(p.BadPostureDuration, minutesRange)
		n.PostureData = &p
	}
	return n
}

// missing reports whether v is absent or not a finite number. Non-finite
// answers are scored as if the question was skipped.
func missing(v *float64) bool {
	return v == nil || math.IsNaN(*v) || math.IsInf(*v, 0)
}

func withDefault(v *float64, def float64, r bounds) *float64 {
	if missing(v) {
		return domain.Float(def)
	}
	return domain.Float(clamp(*v, r.lo, r.hi))
}

func bounded(v *float64, r bounds) *float64 {
	if missing(v) {
		return nil
	}
	return domain.Float(clamp(*v, r.lo, r.hi))
}

// value dereferences a field that normalize guarantees is set.
func value(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func label(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func maxPain(a *domain.SurveyAnswers) float64 {
	m := value(a.NeckPain)
	for _, p := range []*float64{a.UpperBackPain, a.LowerBackPain, a.BackPain} {
		if v := value(p); v > m {
			m = v
		}
	}
	return m
}

// Summarize returns the headline answers with defaults applied, as the
// engine sees them.
func Summarize(answers *domain.SurveyAnswers) domain.SurveySummary {
	a := normalize(answers)
	return domain.SurveySummary{
		SittingHours:    value(a.SittingHours),
		ScreenTime:      value(a.ScreenTime),
		SleepHours:      value(a.SleepHours),
		ExerciseMinutes: value(a.ExerciseMinutes),
		MaxPain:         maxPain(&a),
		EyeStrain:       value(a.EyeStrain),
		StressLevel:     value(a.StressLevel),
	}
}
