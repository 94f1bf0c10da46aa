package scoring

import "health-screen/internal/domain"

type comparison int

const (
	greaterThan comparison = iota
	atLeast
	lessThan
)

// tier is one rung of a bucket ladder. Ladders are checked top to bottom and
// the first matching tier applies.
type tier struct {
	cmp     comparison
	limit   float64
	penalty float64
}

func (t tier) matches(v float64) bool {
	switch t.cmp {
	case greaterThan:
		return v > t.limit
	case atLeast:
		return v >= t.limit
	case lessThan:
		return v < t.limit
	}
	return false
}

type numberField func(a *domain.SurveyAnswers) *float64

type labelField func(a *domain.SurveyAnswers) *string

// bucketRule subtracts the penalty of the first matching tier.
type bucketRule struct {
	field string
	value numberField
	tiers []tier
}

// linearRule subtracts factor*value, or factor*(10-value) for self-ratings.
type linearRule struct {
	field  string
	value  numberField
	factor float64
	rating bool
}

// labelRule subtracts a fixed penalty per enumerated answer.
type labelRule struct {
	field     string
	value     labelField
	penalties map[string]float64
}

// adjustment is a signed delta that depends on more than one field.
type adjustment struct {
	name  string
	delta func(a *domain.SurveyAnswers) float64
}

// categoryRules is the full rule set of one category.
type categoryRules struct {
	category    domain.Category
	linear      []linearRule
	buckets     []bucketRule
	labels      []labelRule
	adjustments []adjustment
}

func frequencyLadder(rarely, sometimes, often, always float64) map[string]float64 {
	return map[string]float64{
		domain.FreqRarely:    rarely,
		domain.FreqSometimes: sometimes,
		domain.FreqOften:     often,
		domain.FreqAlways:    always,
	}
}

func occurrenceLadder(once, several, daily float64) map[string]float64 {
	return map[string]float64{
		domain.OccurOnce:    once,
		domain.OccurSeveral: several,
		domain.OccurDaily:   daily,
	}
}

var musculoskeletalRules = categoryRules{
	category: domain.CategoryMusculoskeletal,
	linear: []linearRule{
		{field: "neck_pain", value: func(a *domain.SurveyAnswers) *float64 { return a.NeckPain }, factor: 2},
		{field: "upper_back_pain", value: func(a *domain.SurveyAnswers) *float64 { return a.UpperBackPain }, factor: 2},
		{field: "lower_back_pain", value: func(a *domain.SurveyAnswers) *float64 { return a.LowerBackPain }, factor: 2},
		{field: "back_pain", value: func(a *domain.SurveyAnswers) *float64 { return a.BackPain }, factor: 2},
		{field: "posture_quality", value: func(a *domain.SurveyAnswers) *float64 { return a.PostureQuality }, factor: 2, rating: true},
	},
	buckets: []bucketRule{
		{
			field: "sitting_hours",
			value: func(a *domain.SurveyAnswers) *float64 { return a.SittingHours },
			tiers: []tier{{greaterThan, 10, 25}, {greaterThan, 8, 20}, {greaterThan, 6, 10}},
		},
		{
			field: "break_frequency",
			value: func(a *domain.SurveyAnswers) *float64 { return a.BreakFrequency },
			tiers: []tier{{atLeast, 120, 20}, {atLeast, 60, 10}, {atLeast, 30, 5}},
		},
		{
			field: "posture_data.neck_angle",
			value: func(a *domain.SurveyAnswers) *float64 {
				if a.PostureData == nil {
					return nil
				}
				return a.PostureData.NeckAngle
			},
			tiers: []tier{{greaterThan, 20, 10}},
		},
		{
			field: "posture_data.back_curvature",
			value: func(a *domain.SurveyAnswers) *float64 {
				if a.PostureData == nil {
					return nil
				}
				return a.PostureData.BackCurvature
			},
			tiers: []tier{{greaterThan, 15, 10}},
		},
	},
	labels: []labelRule{
		{
			field:     "hunched_back",
			value:     func(a *domain.SurveyAnswers) *string { return a.HunchedBack },
			penalties: frequencyLadder(5, 10, 20, 25),
		},
		{
			field:     "head_forward",
			value:     func(a *domain.SurveyAnswers) *string { return a.HeadForward },
			penalties: frequencyLadder(3, 8, 15, 20),
		},
		{
			field: "sitting_posture",
			value: func(a *domain.SurveyAnswers) *string { return a.SittingPosture },
			penalties: map[string]float64{
				"slight_hunch": 5,
				"mixed":        8,
				"head_forward": 12,
				"hunched":      15,
			},
		},
		{
			field:     "pain_frequency",
			value:     func(a *domain.SurveyAnswers) *string { return a.PainFrequency },
			penalties: occurrenceLadder(5, 10, 15),
		},
	},
}

var eyeHealthRules = categoryRules{
	category: domain.CategoryEyeHealth,
	linear: []linearRule{
		{field: "eye_strain", value: func(a *domain.SurveyAnswers) *float64 { return a.EyeStrain }, factor: 3},
	},
	buckets: []bucketRule{
		{
			field: "screen_time",
			value: func(a *domain.SurveyAnswers) *float64 { return a.ScreenTime },
			tiers: []tier{{greaterThan, 12, 30}, {greaterThan, 10, 25}, {greaterThan, 8, 20}, {greaterThan, 6, 10}},
		},
	},
	labels: []labelRule{
		{
			field:     "dry_eyes",
			value:     func(a *domain.SurveyAnswers) *string { return a.DryEyes },
			penalties: frequencyLadder(5, 10, 15, 20),
		},
		{
			field:     "headache",
			value:     func(a *domain.SurveyAnswers) *string { return a.Headache },
			penalties: occurrenceLadder(5, 15, 20),
		},
		{
			field:     "screen_distance",
			value:     func(a *domain.SurveyAnswers) *string { return a.ScreenDistance },
			penalties: map[string]float64{"close": 8, "too_close": 15},
		},
		{
			field:     "lighting",
			value:     func(a *domain.SurveyAnswers) *string { return a.Lighting },
			penalties: map[string]float64{"dim": 10, "too_bright": 10, "too_dark": 15},
		},
		{
			field:     "screen_break",
			value:     func(a *domain.SurveyAnswers) *string { return a.ScreenBreak },
			penalties: map[string]float64{"rarely": 5, "never": 10},
		},
	},
}

var mentalHealthRules = categoryRules{
	category: domain.CategoryMentalHealth,
	linear: []linearRule{
		{field: "stress_level", value: func(a *domain.SurveyAnswers) *float64 { return a.StressLevel }, factor: 6},
		{field: "sleep_quality", value: func(a *domain.SurveyAnswers) *float64 { return a.SleepQuality }, factor: 2, rating: true},
		{field: "mood", value: func(a *domain.SurveyAnswers) *float64 { return a.Mood }, factor: 2, rating: true},
	},
	buckets: []bucketRule{
		{
			field: "sleep_hours",
			value: func(a *domain.SurveyAnswers) *float64 { return a.SleepHours },
			tiers: []tier{{lessThan, 5, 25}, {lessThan, 6, 15}, {lessThan, 7, 5}},
		},
	},
	labels: []labelRule{
		{
			field:     "screen_before_sleep",
			value:     func(a *domain.SurveyAnswers) *string { return a.ScreenBeforeSleep },
			penalties: map[string]float64{"sometimes": 5, "often": 10, "always": 15},
		},
	},
}

var physicalActivityRules = categoryRules{
	category: domain.CategoryPhysicalActivity,
	buckets: []bucketRule{
		{
			field: "exercise_minutes",
			value: func(a *domain.SurveyAnswers) *float64 { return a.ExerciseMinutes },
			tiers: []tier{{lessThan, 30, 40}, {lessThan, 60, 25}, {lessThan, 150, 10}},
		},
		{
			field: "daily_steps",
			value: func(a *domain.SurveyAnswers) *float64 { return a.DailySteps },
			tiers: []tier{{lessThan, 4000, 15}, {lessThan, 6000, 10}, {lessThan, 8000, 5}},
		},
		{
			field: "sedentary_hours",
			value: func(a *domain.SurveyAnswers) *float64 { return a.SedentaryHours },
			tiers: []tier{{greaterThan, 10, 20}, {greaterThan, 8, 15}},
		},
	},
	adjustments: []adjustment{
		{
			name: "long_sitting_low_exercise",
			delta: func(a *domain.SurveyAnswers) float64 {
				if value(a.SittingHours) > 8 && value(a.ExerciseMinutes) < 60 {
					return -15
				}
				return 0
			},
		},
		{
			name: "device_steps_bonus",
			delta: func(a *domain.SurveyAnswers) float64 {
				if a.DeviceData != nil && value(a.DeviceData.DailySteps) > 8000 {
					return 5
				}
				return 0
			},
		},
		{
			name: "device_active_bonus",
			delta: func(a *domain.SurveyAnswers) float64 {
				if a.DeviceData != nil && value(a.DeviceData.ActiveMinutes) >= 150 {
					return 5
				}
				return 0
			},
		},
	},
}

// score applies every rule of the category to normalized answers and clamps
// the total once at the end.
func (r categoryRules) score(a *domain.SurveyAnswers) float64 {
	total := maxScore
	for _, rule := range r.linear {
		v := rule.value(a)
		if v == nil {
			continue
		}
		if rule.rating {
			total -= (10 - *v) * rule.factor
		} else {
			total -= *v * rule.factor
		}
	}
	for _, rule := range r.buckets {
		v := rule.value(a)
		if v == nil {
			continue
		}
		for _, t := range rule.tiers {
			if t.matches(*v) {
				total -= t.penalty
				break
			}
		}
	}
	for _, rule := range r.labels {
		total -= rule.penalties[label(rule.value(a))]
	}
	for _, adj := range r.adjustments {
		total += adj.delta(a)
	}
	return clamp(total, minScore, maxScore)
}

var rulesByCategory = map[domain.Category]categoryRules{
	domain.CategoryMusculoskeletal:  musculoskeletalRules,
	domain.CategoryEyeHealth:        eyeHealthRules,
	domain.CategoryMentalHealth:     mentalHealthRules,
	domain.CategoryPhysicalActivity: physicalActivityRules,
}

// ScoredFields lists the answer keys read by the category rules, in table order.
func ScoredFields() []string {
	var fields []string
	for _, r := range []categoryRules{musculoskeletalRules, eyeHealthRules, mentalHealthRules, physicalActivityRules} {
		for _, rule := range r.linear {
			fields = append(fields, rule.field)
		}
		for _, rule := range r.buckets {
			fields = append(fields, rule.field)
		}
		for _, rule := range r.labels {
			fields = append(fields, rule.field)
		}
	}
	return fields
}
