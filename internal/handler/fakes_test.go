package handler_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"health-screen/internal/domain"
)

var errStoreDown = errors.New("store unavailable")

type memStore struct {
	mu       sync.Mutex
	users    map[string]*domain.User
	surveys  []*domain.Survey
	analyses []*domain.Analysis
	posture  []*domain.PostureRecord
}

func newMemStore() *memStore {
	return &memStore{users: make(map[string]*domain.User)}
}

func (s *memStore) CreateUser(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	return nil
}

func (s *memStore) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[id], nil
}

func (s *memStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *memStore) DeleteUserData(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return domain.NewNotFoundError("User not found")
	}
	delete(s.users, id)
	keptSurveys := s.surveys[:0]
	for _, sv := range s.surveys {
		if sv.UserID != id {
			keptSurveys = append(keptSurveys, sv)
		}
	}
	s.surveys = keptSurveys
	keptAnalyses := s.analyses[:0]
	for _, a := range s.analyses {
		if a.UserID != id {
			keptAnalyses = append(keptAnalyses, a)
		}
	}
	s.analyses = keptAnalyses
	return nil
}

func (s *memStore) CreateSurvey(ctx context.Context, survey *domain.Survey, analysis *domain.Analysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.surveys = append(s.surveys, survey)
	s.analyses = append(s.analyses, analysis)
	return nil
}

func (s *memStore) ListSurveysByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Survey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Survey, 0)
	for i := len(s.surveys) - 1; i >= 0; i-- {
		if s.surveys[i].UserID == userID {
			out = append(out, s.surveys[i])
		}
	}
	if offset >= len(out) {
		return []*domain.Survey{}, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memStore) ListSurveys(ctx context.Context, limit, offset int) ([]*domain.Survey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Survey, 0, len(s.surveys))
	for i := len(s.surveys) - 1; i >= 0; i-- {
		out = append(out, s.surveys[i])
	}
	if offset >= len(out) {
		return []*domain.Survey{}, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memStore) GetLatestAnalysis(ctx context.Context, userID string) (*domain.Analysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.analyses) - 1; i >= 0; i-- {
		if s.analyses[i].UserID == userID {
			return s.analyses[i], nil
		}
	}
	return nil, nil
}

func (s *memStore) ListAnalysesSince(ctx context.Context, userID string, since time.Time) ([]*domain.Analysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Analysis, 0)
	for _, a := range s.analyses {
		if a.UserID == userID && !a.SubmittedAt.Before(since) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SubmittedAt.Before(out[j].SubmittedAt) })
	return out, nil
}

func (s *memStore) CreatePostureRecord(ctx context.Context, record *domain.PostureRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posture = append(s.posture, record)
	return nil
}

func (s *memStore) ListPostureRecordsByUser(ctx context.Context, userID string, limit int) ([]*domain.PostureRecord, error) {
	return nil, nil
}

func (s *memStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// downDashboardRepo fails every query.
type downDashboardRepo struct{}

func (downDashboardRepo) GetStats(ctx context.Context) (*domain.DashboardStats, error) {
	return nil, errStoreDown
}
func (downDashboardRepo) GetCommonIssues(ctx context.Context) ([]domain.IssueStat, error) {
	return nil, errStoreDown
}
func (downDashboardRepo) GetAgeGroupStats(ctx context.Context) ([]domain.AgeGroupStat, error) {
	return nil, errStoreDown
}
func (downDashboardRepo) GetDailyScores(ctx context.Context, since time.Time) ([]domain.DailyScore, error) {
	return nil, errStoreDown
}
func (downDashboardRepo) GetSittingBackPain(ctx context.Context) ([]domain.SittingBackPainBucket, error) {
	return nil, errStoreDown
}
func (downDashboardRepo) GetRecentSurveys(ctx context.Context, limit int) ([]domain.RecentSurvey, error) {
	return nil, errStoreDown
}

type memCache struct {
	mu    sync.Mutex
	items map[string]string
}

func newMemCache() *memCache {
	return &memCache{items: make(map[string]string)}
}

func (c *memCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return v, nil
}

func (c *memCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	return nil
}

func (c *memCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}

func (c *memCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.items {
		if strings.HasPrefix(k, prefix) {
			delete(c.items, k)
		}
	}
	return nil
}

func (c *memCache) Ping(ctx context.Context) error { return nil }

type pinger struct{ err error }

func (p pinger) PingContext(ctx context.Context) error { return p.err }
