package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"health-screen/internal/cache"
	"health-screen/internal/domain"
	"health-screen/internal/logger"
)

// DefaultRecentLimit is the number of recent submissions listed by default.
const DefaultRecentLimit = 10

// DashboardService serves population aggregates. Aggregates are cached and
// concurrent misses for the same key share one query. When the store fails
// the documented demo dataset is returned instead.
type DashboardService interface {
	GetStats(ctx context.Context) (*domain.DashboardStats, error)
	GetIssues(ctx context.Context) ([]domain.IssueStat, error)
	GetAgeGroups(ctx context.Context) ([]domain.AgeGroupStat, error)
	GetTrend(ctx context.Context, days int) (*domain.PopulationTrend, error)
	GetSittingBackPain(ctx context.Context) ([]domain.SittingBackPainBucket, error)
	GetRecent(ctx context.Context, limit int) ([]domain.RecentSurvey, error)
	Summary(ctx context.Context, days int) (*domain.DashboardSummary, error)
}

type dashboardServiceImpl struct {
	repo    domain.DashboardRepository
	cache   domain.Cache
	ttl     time.Duration
	sfGroup singleflight.Group
	now     func() time.Time
}

// NewDashboardService creates a dashboard service. cache may be nil.
func NewDashboardService(repo domain.DashboardRepository, c domain.Cache, ttl time.Duration) DashboardService {
	return &dashboardServiceImpl{
		repo:  repo,
		cache: c,
		ttl:   ttl,
		now:   time.Now,
	}
}

// cachedQuery returns the cached value under key or runs load once for all
// concurrent callers and caches its result.
func cachedQuery[T any](ctx context.Context, s *dashboardServiceImpl, key string, load func(context.Context) (T, error)) (T, error) {
	var zero T
	if s.cache != nil {
		data, err := s.cache.Get(ctx, key)
		if err == nil {
			var v T
			if jsonErr := json.Unmarshal([]byte(data), &v); jsonErr == nil {
				return v, nil
			}
			logger.Get().Warn("Discarding undecodable dashboard cache entry", zap.String("key", key))
		} else if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Dashboard cache read failed", zap.Error(err), zap.String("key", key))
		}
	}

	res, err, _ := s.sfGroup.Do(key, func() (interface{}, error) {
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			if data, jsonErr := json.Marshal(v); jsonErr == nil {
				if setErr := s.cache.Set(ctx, key, string(data), s.ttl); setErr != nil {
					logger.Get().Warn("Dashboard cache write failed", zap.Error(setErr), zap.String("key", key))
				}
			}
		}
		return v, nil
	})
	if err != nil {
		return zero, err
	}
	v, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected cached type for key %s", key)
	}
	return v, nil
}

func dashboardKey(object string, params ...string) string {
	return cache.GenerateCacheKey(cache.ServiceDashboard, object, "all", params...)
}

func logFallback(what string, err error) {
	logger.Get().Warn("Dashboard store unavailable, serving demo data",
		zap.String("aggregate", what), zap.Error(err))
}

func (s *dashboardServiceImpl) GetStats(ctx context.Context) (*domain.DashboardStats, error) {
	stats, err := cachedQuery(ctx, s, dashboardKey(cache.ObjectStats), s.repo.GetStats)
	if err != nil {
		logFallback("stats", err)
		return DemoStats(), nil
	}
	return stats, nil
}

func (s *dashboardServiceImpl) GetIssues(ctx context.Context) ([]domain.IssueStat, error) {
	issues, err := cachedQuery(ctx, s, dashboardKey(cache.ObjectIssues), s.repo.GetCommonIssues)
	if err != nil {
		logFallback("issues", err)
		return DemoIssues(), nil
	}
	return issues, nil
}

func (s *dashboardServiceImpl) GetAgeGroups(ctx context.Context) ([]domain.AgeGroupStat, error) {
	groups, err := cachedQuery(ctx, s, dashboardKey(cache.ObjectAges), s.repo.GetAgeGroupStats)
	if err != nil {
		logFallback("age_groups", err)
		return DemoAgeGroups(), nil
	}
	return groups, nil
}

func (s *dashboardServiceImpl) GetTrend(ctx context.Context, days int) (*domain.PopulationTrend, error) {
	period := strconv.Itoa(days) + "d"
	since := s.now().UTC().AddDate(0, 0, -days)
	data, err := cachedQuery(ctx, s, dashboardKey(cache.ObjectTrend, period), func(ctx context.Context) ([]domain.DailyScore, error) {
		return s.repo.GetDailyScores(ctx, since)
	})
	if err != nil {
		logFallback("trend", err)
		return &domain.PopulationTrend{Period: period, Data: []domain.DailyScore{}, DemoData: true}, nil
	}
	return &domain.PopulationTrend{Period: period, Data: data}, nil
}

func (s *dashboardServiceImpl) GetSittingBackPain(ctx context.Context) ([]domain.SittingBackPainBucket, error) {
	buckets, err := cachedQuery(ctx, s, dashboardKey(cache.ObjectSBP), s.repo.GetSittingBackPain)
	if err != nil {
		logFallback("sitting_backpain", err)
		return DemoSittingBackPain(), nil
	}
	return buckets, nil
}

// GetRecent is not cached; it lists the newest submissions.
func (s *dashboardServiceImpl) GetRecent(ctx context.Context, limit int) ([]domain.RecentSurvey, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	recent, err := s.repo.GetRecentSurveys(ctx, limit)
	if err != nil {
		logFallback("recent", err)
		return []domain.RecentSurvey{}, nil
	}
	return recent, nil
}

func (s *dashboardServiceImpl) Summary(ctx context.Context, days int) (*domain.DashboardSummary, error) {
	summary := &domain.DashboardSummary{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		summary.Stats, err = s.GetStats(gctx)
		return err
	})
	g.Go(func() (err error) {
		summary.Issues, err = s.GetIssues(gctx)
		return err
	})
	g.Go(func() (err error) {
		summary.AgeGroups, err = s.GetAgeGroups(gctx)
		return err
	})
	g.Go(func() (err error) {
		summary.Trend, err = s.GetTrend(gctx, days)
		return err
	})
	g.Go(func() (err error) {
		summary.SittingBackPain, err = s.GetSittingBackPain(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summary, nil
}
