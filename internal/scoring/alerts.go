package scoring

import "health-screen/internal/domain"

// Alert rule ids.
const (
	AlertHighPain           = "high_pain"
	AlertDailyPain          = "daily_pain"
	AlertStressSleepDeficit = "stress_sleep_deficit"
	AlertSevereSleepDeficit = "severe_sleep_deficit"
	AlertEyeStrain          = "eye_strain"
	AlertFrequentHeadache   = "frequent_headache"
	AlertSedentaryInactive  = "sedentary_inactive"
	AlertPoorPostureHabit   = "poor_posture_habit"
	AlertScreenBeforeSleep  = "screen_before_sleep"
	AlertProlongedSitting   = "prolonged_sitting"
	AlertScreenTooClose     = "screen_too_close"
	AlertPoorLighting       = "poor_lighting"
)

type alertRule struct {
	id       string
	category domain.Category
	severity domain.Severity
	when     func(a *domain.SurveyAnswers) bool
}

type alertText struct {
	message        string
	recommendation string
}

// alertRules are evaluated top to bottom; every matching rule is reported.
var alertRules = []alertRule{
	{
		id:       AlertHighPain,
		category: domain.CategoryMusculoskeletal,
		severity: domain.SeverityHigh,
		when:     func(a *domain.SurveyAnswers) bool { return maxPain(a) >= 7 },
	},
	{
		id:       AlertDailyPain,
		category: domain.CategoryMusculoskeletal,
		severity: domain.SeverityHigh,
		when: func(a *domain.SurveyAnswers) bool {
			return label(a.PainFrequency) == domain.OccurDaily && maxPain(a) >= 5
		},
	},
	{
		id:       AlertStressSleepDeficit,
		category: domain.CategoryMentalHealth,
		severity: domain.SeverityHigh,
		when: func(a *domain.SurveyAnswers) bool {
			return value(a.StressLevel) >= 7 && value(a.SleepHours) < 6
		},
	},
	{
		id:       AlertSevereSleepDeficit,
		category: domain.CategoryMentalHealth,
		severity: domain.SeverityHigh,
		when:     func(a *domain.SurveyAnswers) bool { return value(a.SleepHours) < 5 },
	},
	{
		id:       AlertEyeStrain,
		category: domain.CategoryEyeHealth,
		severity: domain.SeverityMedium,
		when: func(a *domain.SurveyAnswers) bool {
			return value(a.ScreenTime) > 8 && value(a.EyeStrain) >= 6
		},
	},
	{
		id:       AlertFrequentHeadache,
		category: domain.CategoryEyeHealth,
		severity: domain.SeverityMedium,
		when: func(a *domain.SurveyAnswers) bool {
			h := label(a.Headache)
			return h == domain.OccurDaily || h == domain.OccurSeveral
		},
	},
	{
		id:       AlertSedentaryInactive,
		category: domain.CategoryPhysicalActivity,
		severity: domain.SeverityMedium,
		when: func(a *domain.SurveyAnswers) bool {
			return value(a.SittingHours) > 6 && value(a.ExerciseMinutes) < 60
		},
	},
	{
		id:       AlertPoorPostureHabit,
		category: domain.CategoryMusculoskeletal,
		severity: domain.SeverityMedium,
		when: func(a *domain.SurveyAnswers) bool {
			habitual := func(v *string) bool {
				l := label(v)
				return l == domain.FreqOften || l == domain.FreqAlways
			}
			posture := label(a.SittingPosture)
			return habitual(a.HunchedBack) || habitual(a.HeadForward) ||
				posture == "hunched" || posture == "head_forward"
		},
	},
	{
		id:       AlertScreenBeforeSleep,
		category: domain.CategoryMentalHealth,
		severity: domain.SeverityMedium,
		when: func(a *domain.SurveyAnswers) bool {
			return label(a.ScreenBeforeSleep) == domain.FreqAlways &&
				a.SleepQuality != nil && *a.SleepQuality < 5
		},
	},
	{
		id:       AlertProlongedSitting,
		category: domain.CategoryMusculoskeletal,
		severity: domain.SeverityMedium,
		when: func(a *domain.SurveyAnswers) bool {
			return a.BreakFrequency != nil && *a.BreakFrequency >= 120
		},
	},
	{
		id:       AlertScreenTooClose,
		category: domain.CategoryEyeHealth,
		severity: domain.SeverityMedium,
		when:     func(a *domain.SurveyAnswers) bool { return label(a.ScreenDistance) == "too_close" },
	},
	{
		id:       AlertPoorLighting,
		category: domain.CategoryEyeHealth,
		severity: domain.SeverityLow,
		when: func(a *domain.SurveyAnswers) bool {
			l := label(a.Lighting)
			return l == "too_dark" || l == "too_bright"
		},
	},
}

var alertTexts = map[string]alertText{
	AlertHighPain: {
		message:        "High pain level reported in the neck or back.",
		recommendation: "See a doctor or physiotherapist for an examination.",
	},
	AlertDailyPain: {
		message:        "Pain occurs every day.",
		recommendation: "Book a musculoskeletal check-up and avoid sitting for long stretches.",
	},
	AlertStressSleepDeficit: {
		message:        "High stress combined with too little sleep.",
		recommendation: "Talk to the campus counselling service and aim for 7-8 hours of sleep.",
	},
	AlertSevereSleepDeficit: {
		message:        "Severe sleep deficit (under 5 hours per night).",
		recommendation: "Set a fixed bedtime and protect at least 7 hours of sleep.",
	},
	AlertEyeStrain: {
		message:        "Eye strain from long screen sessions.",
		recommendation: "Apply the 20-20-20 rule and consider an eye examination.",
	},
	AlertFrequentHeadache: {
		message:        "Frequent headaches reported.",
		recommendation: "Check screen brightness and hydration, and see a doctor if headaches persist.",
	},
	AlertSedentaryInactive: {
		message:        "Long sitting time with little exercise.",
		recommendation: "Stand up every hour and build up to 150 minutes of exercise per week.",
	},
	AlertPoorPostureHabit: {
		message:        "Habitual hunched or head-forward posture.",
		recommendation: "Adjust chair and screen height and do posture exercises daily.",
	},
	AlertScreenBeforeSleep: {
		message:        "Screen use before bed is hurting sleep quality.",
		recommendation: "Put screens away 30-60 minutes before sleep.",
	},
	AlertProlongedSitting: {
		message:        "Breaks from sitting are two hours or more apart.",
		recommendation: "Take a short movement break every 30-60 minutes.",
	},
	AlertScreenTooClose: {
		message:        "Screen is too close to the eyes.",
		recommendation: "Keep the screen 50-70 cm away, about an arm's length.",
	},
	AlertPoorLighting: {
		message:        "Lighting around the screen is too dark or too bright.",
		recommendation: "Use even ambient light and reduce screen glare.",
	},
}

func evaluateAlerts(a *domain.SurveyAnswers) []domain.Alert {
	alerts := make([]domain.Alert, 0)
	for _, rule := range alertRules {
		if !rule.when(a) {
			continue
		}
		text := alertTexts[rule.id]
		alerts = append(alerts, domain.Alert{
			RuleID:         rule.id,
			Category:       rule.category,
			Severity:       rule.severity,
			Message:        text.message,
			Recommendation: text.recommendation,
		})
	}
	return alerts
}
