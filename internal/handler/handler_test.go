package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"health-screen/internal/config"
	"health-screen/internal/dto"
	"health-screen/internal/handler"
	"health-screen/internal/middleware"
	"health-screen/internal/posture"
	"health-screen/internal/scoring"
	"health-screen/internal/service"
)

type testApp struct {
	app   *fiber.App
	store *memStore
}

func setupApp(t *testing.T, db handler.Pinger) *testApp {
	t.Helper()
	store := newMemStore()
	c := newMemCache()

	authService, err := service.NewAuthService(store, config.AuthConfig{
		JWT:        config.JWTConfig{SecretKey: "handler-test-secret-key-32-bytes!!", AccessTokenTTL: time.Hour},
		BcryptCost: bcrypt.MinCost,
	})
	require.NoError(t, err)

	analysisService := service.NewAnalysisService(
		scoring.NewEngine(scoring.Extended),
		store,
		store,
		service.NewResultCacheService(c, time.Hour),
		c,
		nil,
	)

	handlers := handler.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		User:      handler.NewUserHandler(service.NewUserService(store, store, c)),
		Survey:    handler.NewSurveyHandler(analysisService),
		Analysis:  handler.NewAnalysisHandler(analysisService),
		Dashboard: handler.NewDashboardHandler(service.NewDashboardService(downDashboardRepo{}, c, time.Minute)),
		Chat:      handler.NewChatHandler(service.NewChatService(nil, config.LLMConfig{}, nil)),
		Posture:   handler.NewPostureHandler(service.NewPostureService(store, posture.NewGenerator(7))),
		Health:    handler.NewHealthHandler(db, c),
	}

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	handler.RegisterRoutes(app, handlers, authService)
	return &testApp{app: app, store: store}
}

func (ta *testApp) do(t *testing.T, method, path string, body interface{}, token string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}

func (ta *testApp) register(t *testing.T, email string) string {
	t.Helper()
	resp := ta.do(t, "POST", "/api/auth/register", dto.RegisterRequest{
		Email:        email,
		Password:     "correct-horse",
		AgeGroup:     "19-22",
		ConsentGiven: true,
	}, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var tokens dto.TokenResponse
	decode(t, resp, &tokens)
	return tokens.AccessToken
}

func TestHealth(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		ta := setupApp(t, pinger{})
		var body dto.HealthResponse
		decode(t, ta.do(t, "GET", "/health", nil, ""), &body)
		assert.Equal(t, dto.HealthResponse{Status: "ok", Database: "ok", Cache: "ok"}, body)
	})

	t.Run("database down", func(t *testing.T) {
		ta := setupApp(t, pinger{err: errors.New("refused")})
		resp := ta.do(t, "GET", "/health", nil, "")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		var body dto.HealthResponse
		decode(t, resp, &body)
		assert.Equal(t, "degraded", body.Status)
		assert.Equal(t, "unavailable", body.Database)
	})
}

func TestAuthFlow(t *testing.T) {
	ta := setupApp(t, pinger{})
	token := ta.register(t, "student@uni.edu")

	resp := ta.do(t, "POST", "/api/auth/register", dto.RegisterRequest{
		Email: "student@uni.edu", Password: "correct-horse", AgeGroup: "19-22", ConsentGiven: true,
	}, "")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp = ta.do(t, "POST", "/api/auth/register", dto.RegisterRequest{
		Email: "other@uni.edu", Password: "correct-horse", AgeGroup: "19-22",
	}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var errBody middleware.ErrorResponse
	decode(t, resp, &errBody)
	assert.Equal(t, "CONSENT_REQUIRED", errBody.Code)

	resp = ta.do(t, "POST", "/api/auth/login", dto.LoginRequest{Email: "student@uni.edu", Password: "wrong-horse"}, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = ta.do(t, "POST", "/api/auth/login", dto.LoginRequest{Email: "student@uni.edu", Password: "correct-horse"}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var profile dto.UserProfileResponse
	decode(t, ta.do(t, "GET", "/api/auth/me", nil, token), &profile)
	assert.Equal(t, "student@uni.edu", profile.Email)
	assert.Equal(t, "19-22", profile.AgeGroup)

	resp = ta.do(t, "GET", "/api/auth/consent-form", nil, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRegister_ValidationErrors(t *testing.T) {
	ta := setupApp(t, pinger{})

	resp := ta.do(t, "POST", "/api/auth/register", dto.RegisterRequest{Email: "nope", Password: "short", ConsentGiven: true}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body middleware.ValidationErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	assert.Len(t, body.Errors, 3)
}

func TestSurveyFlow(t *testing.T) {
	ta := setupApp(t, pinger{})
	token := ta.register(t, "student@uni.edu")
	answers := service.DemoAnswers()

	var questions dto.QuestionsResponse
	decode(t, ta.do(t, "GET", "/api/survey/questions", nil, ""), &questions)
	assert.NotEmpty(t, questions.Sections)

	resp := ta.do(t, "POST", "/api/survey/submit", answers, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = ta.do(t, "POST", "/api/survey/submit", answers, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var submitted dto.AnalysisResponse
	decode(t, resp, &submitted)
	assert.NotEmpty(t, submitted.ResultID)

	var history dto.SurveyHistoryResponse
	decode(t, ta.do(t, "GET", "/api/survey/history?limit=5", nil, token), &history)
	assert.Len(t, history.Surveys, 1)
	assert.Equal(t, 5, history.Limit)

	resp = ta.do(t, "GET", "/api/survey/history?limit=500", nil, token)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var latest dto.AnalysisResponse
	decode(t, ta.do(t, "GET", "/api/analysis/latest", nil, token), &latest)
	assert.Equal(t, submitted.ResultID, latest.ResultID)
	assert.Equal(t, submitted.OverallScore, latest.OverallScore)

	var trend struct {
		Period    string `json:"period"`
		Direction string `json:"direction"`
		Points    []struct {
			OverallScore int `json:"overall_score"`
		} `json:"points"`
	}
	decode(t, ta.do(t, "GET", "/api/analysis/trend?period=7d", nil, token), &trend)
	assert.Equal(t, "7d", trend.Period)
	assert.Equal(t, "stable", trend.Direction)
	assert.Len(t, trend.Points, 1)

	resp = ta.do(t, "GET", "/api/analysis/trend?period=2w", nil, token)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSubmit_OutOfRange(t *testing.T) {
	ta := setupApp(t, pinger{})
	token := ta.register(t, "student@uni.edu")

	resp := ta.do(t, "POST", "/api/survey/submit", map[string]interface{}{"sitting_hours": 30}, token)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, ta.store.surveys)
}

func TestLatest_NoSubmission(t *testing.T) {
	ta := setupApp(t, pinger{})
	token := ta.register(t, "student@uni.edu")

	resp := ta.do(t, "GET", "/api/analysis/latest", nil, token)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAnonymousAnalysis(t *testing.T) {
	ta := setupApp(t, pinger{})

	resp := ta.do(t, "POST", "/api/analysis/analyze", service.DemoAnswers(), "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var analyzed dto.AnalysisResponse
	decode(t, resp, &analyzed)
	assert.Equal(t, dto.Disclaimer, analyzed.Disclaimer)
	assert.Len(t, analyzed.Categories, 4)

	var fetched dto.AnalysisResponse
	decode(t, ta.do(t, "GET", "/api/analysis/results/"+analyzed.ResultID, nil, ""), &fetched)
	assert.Equal(t, analyzed.OverallScore, fetched.OverallScore)

	resp = ta.do(t, "GET", "/api/analysis/results/01HX3Z4G5A6B7C8D9E0F1G2H3J", nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = ta.do(t, "GET", "/api/analysis/results/not-a-ulid", nil, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var demo dto.DemoResponse
	decode(t, ta.do(t, "GET", "/api/analysis/demo", nil, ""), &demo)
	assert.Equal(t, "demo", demo.Result.ResultID)
}

func TestDashboard_DemoFallback(t *testing.T) {
	ta := setupApp(t, pinger{})

	var stats struct {
		TotalUsers int  `json:"total_users"`
		DemoData   bool `json:"demo_data"`
	}
	decode(t, ta.do(t, "GET", "/api/dashboard/stats", nil, ""), &stats)
	assert.True(t, stats.DemoData)
	assert.Equal(t, 295, stats.TotalUsers)

	for _, path := range []string{
		"/api/dashboard/issues",
		"/api/dashboard/age-groups",
		"/api/dashboard/trend",
		"/api/dashboard/summary?period=90d",
		"/api/dashboard/recent",
		"/api/dashboard/correlation/sitting-backpain",
	} {
		resp := ta.do(t, "GET", path, nil, "")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}

	resp := ta.do(t, "GET", "/api/dashboard/trend?period=1d", nil, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestChat(t *testing.T) {
	ta := setupApp(t, pinger{})

	var reply struct {
		Response string `json:"response"`
		Mode     string `json:"mode"`
	}
	decode(t, ta.do(t, "POST", "/api/chat", dto.ChatRequest{Message: "My eyes are tired"}, ""), &reply)
	assert.Equal(t, "rule_based", reply.Mode)
	assert.NotEmpty(t, reply.Response)

	resp := ta.do(t, "POST", "/api/chat", dto.ChatRequest{Message: "  "}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var status struct {
		Mode string `json:"mode"`
	}
	decode(t, ta.do(t, "GET", "/api/chat/status", nil, ""), &status)
	assert.Equal(t, "rule_based", status.Mode)
}

func TestPosture(t *testing.T) {
	ta := setupApp(t, pinger{})
	token := ta.register(t, "student@uni.edu")

	var simulated dto.PostureResponse
	decode(t, ta.do(t, "GET", "/api/posture/simulate", nil, ""), &simulated)
	assert.True(t, simulated.Session.Synthetic)

	req := dto.PostureRequest{
		Posture:         simulated.Session.Posture,
		Face:            simulated.Session.Face,
		Eye:             simulated.Session.Eye,
		Lighting:        simulated.Session.Lighting,
		SessionDuration: 20,
	}
	resp := ta.do(t, "POST", "/api/posture", req, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = ta.do(t, "POST", "/api/posture", req, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var recorded dto.PostureResponse
	decode(t, resp, &recorded)
	assert.NotEmpty(t, recorded.ID)
	assert.Equal(t, simulated.Session.Scores, recorded.Session.Scores)
	assert.Len(t, ta.store.posture, 1)

	req.SessionDuration = 9999
	resp = ta.do(t, "POST", "/api/posture", req, token)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDeleteAccount(t *testing.T) {
	ta := setupApp(t, pinger{})
	token := ta.register(t, "student@uni.edu")

	resp := ta.do(t, "POST", "/api/survey/submit", service.DemoAnswers(), token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = ta.do(t, "DELETE", "/api/auth/account", nil, token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, ta.store.surveys)
	assert.Empty(t, ta.store.analyses)

	resp = ta.do(t, "GET", "/api/auth/me", nil, token)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
