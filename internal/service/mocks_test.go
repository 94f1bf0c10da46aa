package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"health-screen/internal/domain"
)

// --- MockSurveyRepository ---
type MockSurveyRepository struct {
	mock.Mock
}

func (m *MockSurveyRepository) CreateSurvey(ctx context.Context, survey *domain.Survey, analysis *domain.Analysis) error {
	args := m.Called(ctx, survey, analysis)
	return args.Error(0)
}

func (m *MockSurveyRepository) ListSurveysByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Survey, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Survey), args.Error(1)
}

func (m *MockSurveyRepository) ListSurveys(ctx context.Context, limit, offset int) ([]*domain.Survey, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Survey), args.Error(1)
}

func (m *MockSurveyRepository) GetLatestAnalysis(ctx context.Context, userID string) (*domain.Analysis, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Analysis), args.Error(1)
}

func (m *MockSurveyRepository) ListAnalysesSince(ctx context.Context, userID string, since time.Time) ([]*domain.Analysis, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Analysis), args.Error(1)
}

// --- MockUserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) DeleteUserData(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- MockPostureRepository ---
type MockPostureRepository struct {
	mock.Mock
}

func (m *MockPostureRepository) CreatePostureRecord(ctx context.Context, record *domain.PostureRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockPostureRepository) ListPostureRecordsByUser(ctx context.Context, userID string, limit int) ([]*domain.PostureRecord, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PostureRecord), args.Error(1)
}

// --- MockDashboardRepository ---
type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) GetStats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *MockDashboardRepository) GetCommonIssues(ctx context.Context) ([]domain.IssueStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IssueStat), args.Error(1)
}

func (m *MockDashboardRepository) GetAgeGroupStats(ctx context.Context) ([]domain.AgeGroupStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AgeGroupStat), args.Error(1)
}

func (m *MockDashboardRepository) GetDailyScores(ctx context.Context, since time.Time) ([]domain.DailyScore, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyScore), args.Error(1)
}

func (m *MockDashboardRepository) GetSittingBackPain(ctx context.Context) ([]domain.SittingBackPainBucket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SittingBackPainBucket), args.Error(1)
}

func (m *MockDashboardRepository) GetRecentSurveys(ctx context.Context, limit int) ([]domain.RecentSurvey, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecentSurvey), args.Error(1)
}

// MockTransactionManager runs fn directly unless Err is set.
type MockTransactionManager struct {
	Err   error
	Calls int
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	if m.Err != nil {
		return m.Err
	}
	return fn(ctx)
}

// ManualMockCache is an in-memory domain.Cache. Func fields override the
// map-backed behaviour when set.
type ManualMockCache struct {
	mu    sync.Mutex
	items map[string]string

	GetFunc            func(ctx context.Context, key string) (string, error)
	SetFunc            func(ctx context.Context, key string, value string, ttl time.Duration) error
	DeleteByPrefixFunc func(ctx context.Context, prefix string) error

	SetCalls        int
	DeletedPrefixes []string
	LastTTL         time.Duration
}

func newManualMockCache() *ManualMockCache {
	return &ManualMockCache{items: make(map[string]string)}
}

func (m *ManualMockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return v, nil
}

func (m *ManualMockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	m.mu.Lock()
	m.SetCalls++
	m.LastTTL = ttl
	m.mu.Unlock()
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *ManualMockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

func (m *ManualMockCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	m.mu.Lock()
	m.DeletedPrefixes = append(m.DeletedPrefixes, prefix)
	m.mu.Unlock()
	if m.DeleteByPrefixFunc != nil {
		return m.DeleteByPrefixFunc(ctx, prefix)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.items {
		if strings.HasPrefix(k, prefix) {
			delete(m.items, k)
		}
	}
	return nil
}

func (m *ManualMockCache) Ping(ctx context.Context) error {
	return nil
}

func (m *ManualMockCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

var _ domain.SurveyRepository = (*MockSurveyRepository)(nil)
var _ domain.UserRepository = (*MockUserRepository)(nil)
var _ domain.PostureRepository = (*MockPostureRepository)(nil)
var _ domain.DashboardRepository = (*MockDashboardRepository)(nil)
var _ domain.TransactionManager = (*MockTransactionManager)(nil)
var _ domain.Cache = (*ManualMockCache)(nil)
