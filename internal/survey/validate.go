package survey

import "health-screen/internal/domain"

const maxTextLength = 2000

type numberAnswer struct {
	id    string
	value *float64
}

type labelAnswer struct {
	id    string
	value *string
}

func numberAnswers(a *domain.SurveyAnswers) []numberAnswer {
	return []numberAnswer{
		{"sitting_hours", a.SittingHours},
		{"break_frequency", a.BreakFrequency},
		{"posture_quality", a.PostureQuality},
		{"neck_pain", a.NeckPain},
		{"upper_back_pain", a.UpperBackPain},
		{"lower_back_pain", a.LowerBackPain},
		{"back_pain", a.BackPain},
		{"screen_time", a.ScreenTime},
		{"eye_strain", a.EyeStrain},
		{"stress_level", a.StressLevel},
		{"sleep_hours", a.SleepHours},
		{"sleep_quality", a.SleepQuality},
		{"mood", a.Mood},
		{"exercise_minutes", a.ExerciseMinutes},
		{"daily_steps", a.DailySteps},
		{"sedentary_hours", a.SedentaryHours},
	}
}

func labelAnswers(a *domain.SurveyAnswers) []labelAnswer {
	return []labelAnswer{
		{"hunched_back", a.HunchedBack},
		{"head_forward", a.HeadForward},
		{"sitting_posture", a.SittingPosture},
		{"pain_frequency", a.PainFrequency},
		{"dry_eyes", a.DryEyes},
		{"headache", a.Headache},
		{"screen_distance", a.ScreenDistance},
		{"lighting", a.Lighting},
		{"screen_break", a.ScreenBreak},
		{"screen_before_sleep", a.ScreenBeforeSleep},
		{"exercise_frequency", a.ExerciseFrequency},
	}
}

// Validate checks answers against the catalog. Absent answers are accepted.
// The scoring engine tolerates anything; this is applied only before
// answers are persisted.
func Validate(a *domain.SurveyAnswers) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if a == nil {
		return errors
	}

	for _, n := range numberAnswers(a) {
		if n.value == nil {
			continue
		}
		q, ok := Lookup(n.id)
		if !ok || q.Min == nil || q.Max == nil {
			continue
		}
		if *n.value < *q.Min || *n.value > *q.Max {
			errors = append(errors, domain.NewOutOfRangeError(n.id, *n.value, *q.Min, *q.Max))
		}
	}

	for _, l := range labelAnswers(a) {
		if l.value == nil {
			continue
		}
		q, ok := Lookup(l.id)
		if !ok {
			continue
		}
		if !hasOption(q, *l.value) {
			errors = append(errors, domain.NewInvalidFormatError(l.id, *l.value))
		}
	}

	if len(a.Faculty) > maxTextLength {
		errors = append(errors, domain.NewOutOfRangeError("faculty", len(a.Faculty), 0, maxTextLength))
	}
	if len(a.Notes) > maxTextLength {
		errors = append(errors, domain.NewOutOfRangeError("notes", len(a.Notes), 0, maxTextLength))
	}

	return errors
}

func hasOption(q Question, value string) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}
