package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"health-screen/internal/cache"
	"health-screen/internal/domain"
	"health-screen/internal/metrics"
	"health-screen/internal/scoring"
)

type analysisFixture struct {
	svc      *analysisServiceImpl
	repo     *MockSurveyRepository
	tx       *MockTransactionManager
	cache    *ManualMockCache
	metrics  *metrics.Metrics
	fixedNow time.Time
}

func newAnalysisFixture() *analysisFixture {
	f := &analysisFixture{
		repo:     new(MockSurveyRepository),
		tx:       &MockTransactionManager{},
		cache:    newManualMockCache(),
		metrics:  metrics.New(),
		fixedNow: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	svc := NewAnalysisService(
		scoring.NewEngine(scoring.Extended),
		f.repo,
		f.tx,
		NewResultCacheService(f.cache, time.Hour),
		f.cache,
		f.metrics,
	).(*analysisServiceImpl)
	svc.now = func() time.Time { return f.fixedNow }
	f.svc = svc
	return f
}

func TestAnalysisService_AnalyzeAndFetch(t *testing.T) {
	f := newAnalysisFixture()
	answers := DemoAnswers()

	resp, err := f.svc.Analyze(context.Background(), &answers)
	require.NoError(t, err)
	assert.Len(t, resp.ResultID, 26)
	assert.Equal(t, f.fixedNow, resp.CreatedAt)
	assert.NotEmpty(t, resp.Disclaimer)
	assert.Equal(t, 1, f.cache.Len())

	fetched, err := f.svc.GetCachedResult(context.Background(), resp.ResultID)
	require.NoError(t, err)
	assert.Equal(t, resp.OverallScore, fetched.OverallScore)
	assert.Equal(t, resp.OverallRiskLevel, fetched.OverallRiskLevel)
}

func TestAnalysisService_Analyze_CacheFailureStillReturnsResult(t *testing.T) {
	f := newAnalysisFixture()
	f.cache.SetFunc = func(ctx context.Context, key, value string, ttl time.Duration) error {
		return errors.New("redis down")
	}

	resp, err := f.svc.Analyze(context.Background(), &domain.SurveyAnswers{})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ResultID)
}

func TestAnalysisService_GetCachedResult_Unknown(t *testing.T) {
	f := newAnalysisFixture()

	_, err := f.svc.GetCachedResult(context.Background(), "01HZZZZZZZZZZZZZZZZZZZZZZZ")
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.CodeResultNotFound))
}

func TestAnalysisService_SubmitSurvey(t *testing.T) {
	f := newAnalysisFixture()
	f.cache.items[cache.GenerateCacheKey(cache.ServiceDashboard, cache.ObjectStats, "all")] = "{}"
	answers := DemoAnswers()

	f.repo.On("CreateSurvey", mock.Anything,
		mock.MatchedBy(func(s *domain.Survey) bool {
			return s.UserID == "user-1" && s.Summary.SittingHours == 8 && s.CreatedAt.Equal(f.fixedNow)
		}),
		mock.MatchedBy(func(a *domain.Analysis) bool {
			return a.UserID == "user-1" && a.SurveyID != "" && a.Result.OverallRiskLevel != ""
		}),
	).Return(nil).Once()

	resp, err := f.svc.SubmitSurvey(context.Background(), "user-1", &answers)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ResultID)
	assert.Equal(t, 1, f.tx.Calls)
	assert.Equal(t, []string{cache.ServicePrefix(cache.ServiceDashboard)}, f.cache.DeletedPrefixes)
	assert.Equal(t, 0, f.cache.Len())
	f.repo.AssertExpectations(t)
}

func TestAnalysisService_SubmitSurvey_InvalidAnswers(t *testing.T) {
	f := newAnalysisFixture()
	answers := &domain.SurveyAnswers{SittingHours: domain.Float(30)}

	_, err := f.svc.SubmitSurvey(context.Background(), "user-1", answers)
	require.Error(t, err)

	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "sitting_hours", verrs[0].Field)
	assert.Equal(t, 0, f.tx.Calls)
	f.repo.AssertNotCalled(t, "CreateSurvey", mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalysisService_SubmitSurvey_StoreError(t *testing.T) {
	f := newAnalysisFixture()
	f.tx.Err = errors.New("connection refused")

	_, err := f.svc.SubmitSurvey(context.Background(), "user-1", &domain.SurveyAnswers{})
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.CodeInternal))
	assert.Empty(t, f.cache.DeletedPrefixes)
}

func TestAnalysisService_GetHistory(t *testing.T) {
	f := newAnalysisFixture()
	surveys := []*domain.Survey{{ID: "s2"}, {ID: "s1"}}
	f.repo.On("ListSurveysByUser", mock.Anything, "user-1", 20, 0).Return(surveys, nil)

	resp, err := f.svc.GetHistory(context.Background(), "user-1", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, surveys, resp.Surveys)
	assert.Equal(t, 20, resp.Limit)
}

func TestAnalysisService_GetLatest(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		f := newAnalysisFixture()
		f.repo.On("GetLatestAnalysis", mock.Anything, "user-1").Return(nil, nil)

		_, err := f.svc.GetLatest(context.Background(), "user-1")
		assert.True(t, domain.IsCode(err, domain.CodeNotFound))
	})

	t.Run("found", func(t *testing.T) {
		f := newAnalysisFixture()
		submitted := f.fixedNow.Add(-time.Hour)
		f.repo.On("GetLatestAnalysis", mock.Anything, "user-1").Return(&domain.Analysis{
			ID:          "a1",
			Result:      domain.ScoreResult{OverallScore: 72, OverallRiskLevel: domain.RiskLow},
			SubmittedAt: submitted,
		}, nil)

		resp, err := f.svc.GetLatest(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, "a1", resp.ResultID)
		assert.Equal(t, 72, resp.OverallScore)
		assert.Equal(t, submitted, resp.CreatedAt)
	})
}

func TestAnalysisService_GetTrend(t *testing.T) {
	f := newAnalysisFixture()
	since := f.fixedNow.AddDate(0, 0, -30)
	f.repo.On("ListAnalysesSince", mock.Anything, "user-1", since).Return([]*domain.Analysis{
		{Result: domain.ScoreResult{OverallScore: 50, OverallRiskLevel: domain.RiskMedium}, SubmittedAt: since.Add(time.Hour)},
		{Result: domain.ScoreResult{OverallScore: 58, OverallRiskLevel: domain.RiskMedium}, SubmittedAt: since.Add(48 * time.Hour)},
		{Result: domain.ScoreResult{OverallScore: 64, OverallRiskLevel: domain.RiskLow}, SubmittedAt: since.Add(96 * time.Hour)},
	}, nil)

	trend, err := f.svc.GetTrend(context.Background(), "user-1", "30d")
	require.NoError(t, err)
	assert.Equal(t, "30d", trend.Period)
	assert.Len(t, trend.Points, 3)
	assert.Equal(t, domain.TrendImproving, trend.Direction)
	assert.Equal(t, 14, trend.Change)
}

func TestAnalysisService_GetTrend_InvalidPeriod(t *testing.T) {
	f := newAnalysisFixture()

	_, err := f.svc.GetTrend(context.Background(), "user-1", "1y")
	var verrs domain.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestTrendDirection(t *testing.T) {
	points := func(scores ...int) []domain.TrendPoint {
		out := make([]domain.TrendPoint, 0, len(scores))
		for _, s := range scores {
			out = append(out, domain.TrendPoint{OverallScore: s})
		}
		return out
	}

	tests := []struct {
		name      string
		points    []domain.TrendPoint
		direction domain.TrendDirection
		change    int
	}{
		{"empty", nil, domain.TrendStable, 0},
		{"single point", points(40), domain.TrendStable, 0},
		{"small rise", points(60, 65), domain.TrendStable, 5},
		{"rise", points(60, 80, 66), domain.TrendImproving, 6},
		{"small drop", points(60, 55), domain.TrendStable, -5},
		{"drop", points(70, 90, 50), domain.TrendDeclining, -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			direction, change := TrendDirection(tt.points)
			assert.Equal(t, tt.direction, direction)
			assert.Equal(t, tt.change, change)
		})
	}
}

func TestAnalysisService_Demo(t *testing.T) {
	f := newAnalysisFixture()

	demo := f.svc.Demo()
	assert.Equal(t, DemoNote, demo.Note)
	assert.Equal(t, "demo", demo.Result.ResultID)
	assert.Equal(t, 8.0, *demo.Input.SittingHours)
	assert.NotEmpty(t, demo.Result.Recommendations)
}
