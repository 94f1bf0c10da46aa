package handler

import (
	"github.com/gofiber/fiber/v2"

	"health-screen/internal/domain"
	"health-screen/internal/middleware"
	"health-screen/internal/service"
)

// AnalysisHandler scores surveys and serves results.
type AnalysisHandler struct {
	analysisService service.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analysisService service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// Analyze godoc
// @Summary Analyze answers anonymously
// @Description Scores the answers without storing them. The result can be fetched again by result_id until it expires.
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body domain.SurveyAnswers true "Survey answers"
// @Success 200 {object} dto.AnalysisResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /analysis/analyze [post]
func (h *AnalysisHandler) Analyze(c *fiber.Ctx) error {
	var answers domain.SurveyAnswers
	if err := c.BodyParser(&answers); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.analysisService.Analyze(c.Context(), &answers)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetResult godoc
// @Summary Get an anonymous result
// @Tags analysis
// @Produce json
// @Param id path string true "Result ID (ULID)"
// @Success 200 {object} dto.AnalysisResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /analysis/results/{id} [get]
func (h *AnalysisHandler) GetResult(c *fiber.Ctx) error {
	resp, err := h.analysisService.GetCachedResult(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Demo godoc
// @Summary Demo analysis
// @Description Scores a fixed sample survey.
// @Tags analysis
// @Produce json
// @Success 200 {object} dto.DemoResponse
// @Router /analysis/demo [get]
func (h *AnalysisHandler) Demo(c *fiber.Ctx) error {
	return c.JSON(h.analysisService.Demo())
}

// Latest godoc
// @Summary Latest analysis
// @Tags analysis
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.AnalysisResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse "No submission yet"
// @Router /analysis/latest [get]
func (h *AnalysisHandler) Latest(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if userID == "" {
		return err
	}

	resp, err := h.analysisService.GetLatest(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Trend godoc
// @Summary Personal trend
// @Description Overall scores over the period and whether they are improving.
// @Tags analysis
// @Security ApiKeyAuth
// @Produce json
// @Param period query string false "7d, 30d or 90d" default(30d)
// @Success 200 {object} domain.HealthTrend
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /analysis/trend [get]
func (h *AnalysisHandler) Trend(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if userID == "" {
		return err
	}

	period := c.Locals(middleware.ValidatedPeriodKey).(string)
	trend, err := h.analysisService.GetTrend(c.Context(), userID, period)
	if err != nil {
		return err
	}
	return c.JSON(trend)
}
