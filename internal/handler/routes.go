package handler

import (
	"github.com/gofiber/fiber/v2"

	"health-screen/internal/middleware"
)

// Handlers bundles every HTTP handler of the API.
type Handlers struct {
	Auth      *AuthHandler
	User      *UserHandler
	Survey    *SurveyHandler
	Analysis  *AnalysisHandler
	Dashboard *DashboardHandler
	Chat      *ChatHandler
	Posture   *PostureHandler
	Health    *HealthHandler
}

// RegisterRoutes mounts /health and the /api routes on app.
func RegisterRoutes(app *fiber.App, h Handlers, tokens middleware.TokenValidator) {
	vm := middleware.NewValidationMiddleware()
	protected := middleware.Protected(tokens)

	app.Get("/health", h.Health.Check)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Get("/consent-form", h.Auth.ConsentForm)
	authGroup.Get("/me", protected, h.User.GetMyProfile)
	authGroup.Delete("/account", protected, h.User.DeleteAccount)

	surveyGroup := api.Group("/survey")
	surveyGroup.Get("/questions", h.Survey.GetQuestions)
	surveyGroup.Post("/submit", protected, h.Survey.Submit)
	surveyGroup.Get("/history", protected, vm.ValidatePagination(), h.Survey.History)

	analysisGroup := api.Group("/analysis")
	analysisGroup.Post("/analyze", h.Analysis.Analyze)
	analysisGroup.Get("/results/:id", vm.ValidateResultID(), h.Analysis.GetResult)
	analysisGroup.Get("/demo", h.Analysis.Demo)
	analysisGroup.Get("/latest", protected, h.Analysis.Latest)
	analysisGroup.Get("/trend", protected, vm.ValidateTrendPeriod(), h.Analysis.Trend)

	dashboardGroup := api.Group("/dashboard")
	dashboardGroup.Get("/stats", h.Dashboard.Stats)
	dashboardGroup.Get("/issues", h.Dashboard.Issues)
	dashboardGroup.Get("/age-groups", h.Dashboard.AgeGroups)
	dashboardGroup.Get("/trend", vm.ValidateTrendPeriod(), h.Dashboard.Trend)
	dashboardGroup.Get("/summary", vm.ValidateTrendPeriod(), h.Dashboard.Summary)
	dashboardGroup.Get("/recent", vm.ValidatePagination(), h.Dashboard.Recent)
	dashboardGroup.Get("/correlation/sitting-backpain", h.Dashboard.SittingBackPain)

	chatGroup := api.Group("/chat")
	chatGroup.Post("/", h.Chat.Reply)
	chatGroup.Get("/status", h.Chat.Status)

	postureGroup := api.Group("/posture")
	postureGroup.Post("/", protected, h.Posture.Record)
	postureGroup.Get("/simulate", h.Posture.Simulate)
}
