package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"health-screen/internal/domain"
)

func TestRecommendations_SortedStableByPriority(t *testing.T) {
	answers := &domain.SurveyAnswers{
		ExerciseMinutes:   f(200),
		ScreenBeforeSleep: s("always"),
		ExerciseFrequency: s("rarely"),
		ScreenBreak:       s("never"),
		SleepHours:        f(6.5),
	}

	recs := Score(answers).Recommendations

	require.Len(t, recs, 4)
	assert.Equal(t, "Get enough sleep", recs[0].Title)
	assert.Equal(t, "Rest your eyes", recs[1].Title)
	assert.Equal(t, "Build an exercise routine", recs[2].Title)
	assert.Equal(t, "Screen-free bedtime", recs[3].Title)
	for i := 1; i < len(recs); i++ {
		assert.LessOrEqual(t, recs[i-1].Priority, recs[i].Priority)
	}
}

func TestRecommendations_CategoryBelowSeventy(t *testing.T) {
	// 100 - 20 (sitting > 8) - 10 (hunched_back sometimes) = 70, no entry
	atFloor := Score(&domain.SurveyAnswers{SittingHours: f(9), HunchedBack: s("sometimes"), ExerciseMinutes: f(200)})
	for _, r := range atFloor.Recommendations {
		assert.NotEqual(t, domain.CategoryMusculoskeletal, r.Category)
	}

	// one more point of neck pain drops it to 68
	below := Score(&domain.SurveyAnswers{SittingHours: f(9), HunchedBack: s("sometimes"), NeckPain: f(1), ExerciseMinutes: f(200)})
	require.NotEmpty(t, below.Recommendations)
	assert.Equal(t, domain.CategoryMusculoskeletal, below.Recommendations[0].Category)
	assert.Equal(t, PriorityUrgent, below.Recommendations[0].Priority)
}

func TestRecommendations_FlagEntries(t *testing.T) {
	tests := []struct {
		name    string
		answers domain.SurveyAnswers
		title   string
	}{
		{"pain", domain.SurveyAnswers{BackPain: f(5)}, "Daily stretching"},
		{"breaks", domain.SurveyAnswers{BreakFrequency: f(60)}, "Take regular breaks"},
		{"screen breaks", domain.SurveyAnswers{ScreenBreak: s("rarely")}, "Rest your eyes"},
		{"screen time", domain.SurveyAnswers{ScreenTime: f(8)}, "Reduce screen time"},
		{"dry eyes", domain.SurveyAnswers{DryEyes: s("sometimes")}, "Relieve dry eyes"},
		{"sleep", domain.SurveyAnswers{SleepHours: f(6)}, "Get enough sleep"},
		{"bedtime screens", domain.SurveyAnswers{ScreenBeforeSleep: s("often")}, "Screen-free bedtime"},
		{"exercise habit", domain.SurveyAnswers{ExerciseFrequency: s("never")}, "Build an exercise routine"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := tt.answers
			answers.ExerciseMinutes = f(200)
			recs := Score(&answers).Recommendations

			titles := make([]string, 0, len(recs))
			for _, r := range recs {
				titles = append(titles, r.Title)
			}
			assert.Contains(t, titles, tt.title)
		})
	}
}
