package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"health-screen/internal/cache"
	"health-screen/internal/domain"
	"health-screen/internal/dto"
	"health-screen/internal/logger"
	"health-screen/internal/metrics"
	"health-screen/internal/scoring"
	"health-screen/internal/survey"
	"health-screen/internal/util"
	"health-screen/internal/validation"
)

// trendBand is the score change, in points, below which a trend is stable.
const trendBand = 5

// DemoNote labels the demo analysis.
const DemoNote = "Demo result computed from sample answers"

// AnalysisService scores surveys and serves stored results.
type AnalysisService interface {
	// Analyze scores answers anonymously and caches the result by a new id.
	Analyze(ctx context.Context, answers *domain.SurveyAnswers) (*dto.AnalysisResponse, error)
	GetCachedResult(ctx context.Context, resultID string) (*dto.AnalysisResponse, error)
	// SubmitSurvey validates, scores and stores answers for userID.
	SubmitSurvey(ctx context.Context, userID string, answers *domain.SurveyAnswers) (*dto.AnalysisResponse, error)
	GetHistory(ctx context.Context, userID string, limit, offset int) (*dto.SurveyHistoryResponse, error)
	GetLatest(ctx context.Context, userID string) (*dto.AnalysisResponse, error)
	GetTrend(ctx context.Context, userID, period string) (*domain.HealthTrend, error)
	Demo() *dto.DemoResponse
}

type analysisServiceImpl struct {
	engine      *scoring.Engine
	surveyRepo  domain.SurveyRepository
	txManager   domain.TransactionManager
	resultCache ResultCacheService
	cache       domain.Cache
	metrics     *metrics.Metrics
	now         func() time.Time
}

// NewAnalysisService creates an analysis service. cache may be nil; it is
// only used to invalidate dashboard aggregates after a submission.
func NewAnalysisService(
	engine *scoring.Engine,
	surveyRepo domain.SurveyRepository,
	txManager domain.TransactionManager,
	resultCache ResultCacheService,
	cache domain.Cache,
	m *metrics.Metrics,
) AnalysisService {
	return &analysisServiceImpl{
		engine:      engine,
		surveyRepo:  surveyRepo,
		txManager:   txManager,
		resultCache: resultCache,
		cache:       cache,
		metrics:     m,
		now:         time.Now,
	}
}

func newAnalysisResponse(id string, createdAt time.Time, result domain.ScoreResult) *dto.AnalysisResponse {
	return &dto.AnalysisResponse{
		ResultID:    id,
		CreatedAt:   createdAt,
		ScoreResult: result,
		Disclaimer:  dto.Disclaimer,
	}
}

func (s *analysisServiceImpl) Analyze(ctx context.Context, answers *domain.SurveyAnswers) (*dto.AnalysisResponse, error) {
	result := s.engine.Score(answers)
	resp := newAnalysisResponse(util.NewULID(), s.now().UTC(), result)

	// The result is still returned when caching fails; it just cannot be
	// fetched again by id.
	if err := s.resultCache.Put(ctx, resp.ResultID, resp); err != nil {
		logger.Get().Warn("Failed to cache anonymous analysis", zap.Error(err), zap.String("resultID", resp.ResultID))
	}
	s.metrics.ObserveAnalysis(metrics.SourceAnonymous, result.OverallRiskLevel)

	logger.Get().Info("Anonymous survey analyzed",
		zap.String("resultID", resp.ResultID),
		zap.Int("overallScore", result.OverallScore),
		zap.String("riskLevel", string(result.OverallRiskLevel)),
		zap.Int("alerts", len(result.Alerts)))
	return resp, nil
}

func (s *analysisServiceImpl) GetCachedResult(ctx context.Context, resultID string) (*dto.AnalysisResponse, error) {
	resp, err := s.resultCache.Get(ctx, resultID)
	if err != nil {
		if errors.Is(err, ErrResultNotCached) {
			return nil, domain.NewResultNotFoundError(resultID)
		}
		return nil, err
	}
	return resp, nil
}

func (s *analysisServiceImpl) SubmitSurvey(ctx context.Context, userID string, answers *domain.SurveyAnswers) (*dto.AnalysisResponse, error) {
	if answers == nil {
		answers = &domain.SurveyAnswers{}
	}
	if errs := survey.Validate(answers); len(errs) > 0 {
		return nil, errs
	}

	result := s.engine.Score(answers)
	now := s.now().UTC()
	sv := &domain.Survey{
		ID:        util.NewULID(),
		UserID:    userID,
		Answers:   *answers,
		Summary:   scoring.Summarize(answers),
		CreatedAt: now,
	}
	analysis := &domain.Analysis{
		ID:          util.NewULID(),
		UserID:      userID,
		SurveyID:    sv.ID,
		Result:      result,
		SubmittedAt: now,
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.surveyRepo.CreateSurvey(txCtx, sv, analysis)
	})
	if err != nil {
		logger.Get().Error("Failed to store survey", zap.Error(err), zap.String("userID", userID))
		return nil, domain.NewInternalError("failed to store survey", err)
	}

	s.invalidateDashboard(ctx)
	s.metrics.ObserveAnalysis(metrics.SourceSubmitted, result.OverallRiskLevel)

	logger.Get().Info("Survey submitted",
		zap.String("userID", userID),
		zap.String("surveyID", sv.ID),
		zap.Int("overallScore", result.OverallScore))
	return newAnalysisResponse(analysis.ID, now, result), nil
}

func (s *analysisServiceImpl) invalidateDashboard(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPrefix(ctx, cache.ServicePrefix(cache.ServiceDashboard)); err != nil {
		logger.Get().Warn("Failed to invalidate dashboard cache", zap.Error(err))
	}
}

func (s *analysisServiceImpl) GetHistory(ctx context.Context, userID string, limit, offset int) (*dto.SurveyHistoryResponse, error) {
	surveys, err := s.surveyRepo.ListSurveysByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, domain.NewInternalError("failed to list surveys", err)
	}
	return &dto.SurveyHistoryResponse{Surveys: surveys, Limit: limit, Offset: offset}, nil
}

func (s *analysisServiceImpl) GetLatest(ctx context.Context, userID string) (*dto.AnalysisResponse, error) {
	analysis, err := s.surveyRepo.GetLatestAnalysis(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get latest analysis", err)
	}
	if analysis == nil {
		return nil, domain.NewNotFoundError("No analysis found. Submit a survey first.")
	}
	return newAnalysisResponse(analysis.ID, analysis.SubmittedAt, analysis.Result), nil
}

func (s *analysisServiceImpl) GetTrend(ctx context.Context, userID, period string) (*domain.HealthTrend, error) {
	days, ok := validation.TrendPeriods[period]
	if !ok {
		return nil, domain.ValidationErrors{domain.NewInvalidFormatError("period", period)}
	}

	since := s.now().UTC().AddDate(0, 0, -days)
	analyses, err := s.surveyRepo.ListAnalysesSince(ctx, userID, since)
	if err != nil {
		return nil, domain.NewInternalError("failed to get analyses for trend", err)
	}

	points := make([]domain.TrendPoint, 0, len(analyses))
	for _, a := range analyses {
		points = append(points, domain.TrendPoint{
			Date:         a.SubmittedAt,
			OverallScore: a.Result.OverallScore,
			RiskLevel:    a.Result.OverallRiskLevel,
		})
	}

	direction, change := TrendDirection(points)
	return &domain.HealthTrend{
		Period:    period,
		Points:    points,
		Direction: direction,
		Change:    change,
	}, nil
}

// TrendDirection compares the first and last overall score. Higher scores
// are healthier, so a rise of more than trendBand points is improving.
func TrendDirection(points []domain.TrendPoint) (domain.TrendDirection, int) {
	if len(points) < 2 {
		return domain.TrendStable, 0
	}
	change := points[len(points)-1].OverallScore - points[0].OverallScore
	switch {
	case change > trendBand:
		return domain.TrendImproving, change
	case change < -trendBand:
		return domain.TrendDeclining, change
	default:
		return domain.TrendStable, change
	}
}

// DemoAnswers is the sample survey behind the demo analysis.
func DemoAnswers() domain.SurveyAnswers {
	return domain.SurveyAnswers{
		SittingHours:    domain.Float(8),
		ScreenTime:      domain.Float(9),
		SleepHours:      domain.Float(6),
		ExerciseMinutes: domain.Float(45),
		BackPain:        domain.Float(6),
		NeckPain:        domain.Float(5),
		EyeStrain:       domain.Float(7),
		StressLevel:     domain.Float(7),
		PostureQuality:  domain.Float(5),
		PostureData: &domain.PostureData{
			NeckAngle:          domain.Float(25),
			BackCurvature:      domain.Float(18),
			ShoulderAlignment:  domain.Float(85),
			SessionDuration:    domain.Float(3600),
			BadPostureDuration: domain.Float(1200),
		},
	}
}

func (s *analysisServiceImpl) Demo() *dto.DemoResponse {
	answers := DemoAnswers()
	return &dto.DemoResponse{
		Note:   DemoNote,
		Input:  answers,
		Result: newAnalysisResponse("demo", s.now().UTC(), s.engine.Score(&answers)),
	}
}
