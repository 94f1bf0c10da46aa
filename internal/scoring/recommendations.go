package scoring

import (
	"sort"

	"health-screen/internal/domain"
)

// Recommendation priorities.
const (
	PriorityUrgent = 1
	PriorityNormal = 2
	PriorityLow    = 3
)

type recommendationText struct {
	title       string
	description string
	priority    int
}

// categoryRecommendations apply when a category scores below the low-risk floor.
var categoryRecommendations = map[domain.Category]recommendationText{
	domain.CategoryMusculoskeletal: {
		title:       "Improve your posture",
		description: "Keep your back straight, feet flat and the screen at eye level. Stretch your neck and shoulders every hour.",
		priority:    PriorityUrgent,
	},
	domain.CategoryEyeHealth: {
		title:       "Protect your eyes",
		description: "Follow the 20-20-20 rule: every 20 minutes look at something 20 feet away for 20 seconds.",
		priority:    PriorityUrgent,
	},
	domain.CategoryMentalHealth: {
		title:       "Look after your mental health",
		description: "Manage stress with short relaxation breaks, keep a regular sleep schedule and reach out to counselling services when needed.",
		priority:    PriorityUrgent,
	},
	domain.CategoryPhysicalActivity: {
		title:       "Move more",
		description: "Aim for at least 150 minutes of moderate exercise per week and walk during study breaks.",
		priority:    PriorityNormal,
	},
}

type flagRecommendation struct {
	category domain.Category
	text     recommendationText
	when     func(a *domain.SurveyAnswers) bool
}

var flagRecommendations = []flagRecommendation{
	{
		category: domain.CategoryMusculoskeletal,
		text: recommendationText{
			title:       "Daily stretching",
			description: "Do 10 minutes of neck and back stretches every morning and evening.",
			priority:    PriorityUrgent,
		},
		when: func(a *domain.SurveyAnswers) bool { return maxPain(a) >= 5 },
	},
	{
		category: domain.CategoryMusculoskeletal,
		text: recommendationText{
			title:       "Take regular breaks",
			description: "Stand up and walk for 5 minutes every 30-60 minutes of sitting.",
			priority:    PriorityNormal,
		},
		when: func(a *domain.SurveyAnswers) bool {
			return a.BreakFrequency != nil && *a.BreakFrequency >= 60
		},
	},
	{
		category: domain.CategoryEyeHealth,
		text: recommendationText{
			title:       "Rest your eyes",
			description: "Look away from the screen regularly and blink often during long sessions.",
			priority:    PriorityNormal,
		},
		when: func(a *domain.SurveyAnswers) bool {
			b := label(a.ScreenBreak)
			return b == domain.FreqNever || b == domain.FreqRarely
		},
	},
	{
		category: domain.CategoryEyeHealth,
		text: recommendationText{
			title:       "Reduce screen time",
			description: "Plan screen-free periods and switch to paper or audio where you can.",
			priority:    PriorityNormal,
		},
		when: func(a *domain.SurveyAnswers) bool { return value(a.ScreenTime) >= 8 },
	},
	{
		category: domain.CategoryEyeHealth,
		text: recommendationText{
			title:       "Relieve dry eyes",
			description: "Use lubricating eye drops, keep the room humid and blink consciously.",
			priority:    PriorityNormal,
		},
		when: func(a *domain.SurveyAnswers) bool {
			d := label(a.DryEyes)
			return d == domain.FreqSometimes || d == domain.FreqOften || d == domain.FreqAlways
		},
	},
	{
		category: domain.CategoryMentalHealth,
		text: recommendationText{
			title:       "Get enough sleep",
			description: "Sleep 7-8 hours a night and go to bed at the same time every day.",
			priority:    PriorityUrgent,
		},
		when: func(a *domain.SurveyAnswers) bool { return value(a.SleepHours) < 7 },
	},
	{
		category: domain.CategoryMentalHealth,
		text: recommendationText{
			title:       "Screen-free bedtime",
			description: "Stop using phones and laptops an hour before bed, or enable a night filter.",
			priority:    PriorityLow,
		},
		when: func(a *domain.SurveyAnswers) bool {
			s := label(a.ScreenBeforeSleep)
			return s == domain.FreqOften || s == domain.FreqAlways
		},
	},
	{
		category: domain.CategoryPhysicalActivity,
		text: recommendationText{
			title:       "Build an exercise routine",
			description: "Start with 20-30 minutes of walking, cycling or swimming three times a week.",
			priority:    PriorityNormal,
		},
		when: func(a *domain.SurveyAnswers) bool {
			e := label(a.ExerciseFrequency)
			return e == domain.FreqNever || e == domain.FreqRarely
		},
	},
}

// buildRecommendations emits category entries in profile order followed by
// flag entries, then stable-sorts by priority.
func buildRecommendations(a *domain.SurveyAnswers, categories []domain.CategoryScore) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0)
	for _, cs := range categories {
		if cs.Score >= lowRiskFloor {
			continue
		}
		text, ok := categoryRecommendations[cs.Category]
		if !ok {
			continue
		}
		recs = append(recs, toRecommendation(cs.Category, text))
	}
	for _, flag := range flagRecommendations {
		if flag.when(a) {
			recs = append(recs, toRecommendation(flag.category, flag.text))
		}
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority < recs[j].Priority
	})
	return recs
}

func toRecommendation(c domain.Category, t recommendationText) domain.Recommendation {
	return domain.Recommendation{
		Category:    c,
		Title:       t.title,
		Description: t.description,
		Priority:    t.priority,
	}
}
