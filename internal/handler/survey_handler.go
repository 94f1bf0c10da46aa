package handler

import (
	"github.com/gofiber/fiber/v2"

	"health-screen/internal/domain"
	"health-screen/internal/dto"
	"health-screen/internal/middleware"
	"health-screen/internal/service"
	"health-screen/internal/survey"
)

// SurveyHandler serves the question catalog and stored submissions.
type SurveyHandler struct {
	analysisService service.AnalysisService
}

// NewSurveyHandler creates a new SurveyHandler.
func NewSurveyHandler(analysisService service.AnalysisService) *SurveyHandler {
	return &SurveyHandler{analysisService: analysisService}
}

// GetQuestions godoc
// @Summary Survey questions
// @Description Returns the self-screening questions grouped by section.
// @Tags survey
// @Produce json
// @Success 200 {object} dto.QuestionsResponse
// @Router /survey/questions [get]
func (h *SurveyHandler) GetQuestions(c *fiber.Ctx) error {
	return c.JSON(dto.QuestionsResponse{
		Sections:   survey.Catalog(),
		Disclaimer: dto.Disclaimer,
	})
}

// Submit godoc
// @Summary Submit a survey
// @Description Validates, scores and stores the answers of the logged-in user.
// @Tags survey
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body domain.SurveyAnswers true "Survey answers"
// @Success 201 {object} dto.AnalysisResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /survey/submit [post]
func (h *SurveyHandler) Submit(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if userID == "" {
		return err
	}

	var answers domain.SurveyAnswers
	if err := c.BodyParser(&answers); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.analysisService.SubmitSurvey(c.Context(), userID, &answers)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// History godoc
// @Summary Survey history
// @Description Lists the logged-in user's submissions, newest first.
// @Tags survey
// @Security ApiKeyAuth
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.SurveyHistoryResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /survey/history [get]
func (h *SurveyHandler) History(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if userID == "" {
		return err
	}

	page := dto.Pagination{
		Limit:  c.Locals(middleware.ValidatedLimitKey).(int),
		Offset: c.Locals(middleware.ValidatedOffsetKey).(int),
	}
	resp, err := h.analysisService.GetHistory(c.Context(), userID, page.Limit, page.Offset)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
