package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"health-screen/internal/cache"
	"health-screen/internal/domain"
	"health-screen/internal/dto"
	"health-screen/internal/logger"
)

// ErrResultNotCached is returned when a result id is unknown or expired.
var ErrResultNotCached = errors.New("analysis result not found in cache")

// ResultCacheService stores anonymous analysis results by result id.
type ResultCacheService interface {
	Put(ctx context.Context, resultID string, result *dto.AnalysisResponse) error
	Get(ctx context.Context, resultID string) (*dto.AnalysisResponse, error)
}

type resultCacheServiceImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewResultCacheService creates a result cache. A nil cache yields a no-op
// implementation.
func NewResultCacheService(c domain.Cache, ttl time.Duration) ResultCacheService {
	if c == nil {
		logger.Get().Warn("ResultCacheService initialized with nil cache. Service will be no-op.")
		return &noopResultCacheService{}
	}
	return &resultCacheServiceImpl{cache: c, ttl: ttl}
}

func (s *resultCacheServiceImpl) key(resultID string) string {
	return cache.GenerateCacheKey(cache.ServiceAnalysis, cache.ObjectResult, resultID)
}

func (s *resultCacheServiceImpl) Put(ctx context.Context, resultID string, result *dto.AnalysisResponse) error {
	if result == nil {
		return domain.NewInvalidInputError("cannot cache nil result")
	}

	key := s.key(resultID)
	data, err := json.Marshal(result)
	if err != nil {
		return domain.NewInternalError("failed to marshal result for caching", err)
	}
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		logger.Get().Error("Failed to cache analysis result", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to cache result for key %s", key), err)
	}
	logger.Get().Debug("Cached analysis result", zap.String("key", key), zap.Duration("ttl", s.ttl))
	return nil
}

func (s *resultCacheServiceImpl) Get(ctx context.Context, resultID string) (*dto.AnalysisResponse, error) {
	key := s.key(resultID)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, ErrResultNotCached
		}
		logger.Get().Error("Failed to get analysis result from cache", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to get result from cache for key %s", key), err)
	}
	if data == "" {
		return nil, ErrResultNotCached
	}

	var result dto.AnalysisResponse
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal result for key %s", key), err)
	}
	return &result, nil
}

type noopResultCacheService struct{}

func (s *noopResultCacheService) Put(ctx context.Context, resultID string, result *dto.AnalysisResponse) error {
	return nil
}

func (s *noopResultCacheService) Get(ctx context.Context, resultID string) (*dto.AnalysisResponse, error) {
	return nil, ErrResultNotCached
}
