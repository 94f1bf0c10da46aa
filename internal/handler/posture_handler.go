package handler

import (
	"github.com/gofiber/fiber/v2"

	"health-screen/internal/domain"
	"health-screen/internal/dto"
	"health-screen/internal/service"
	"health-screen/internal/validation"
)

// PostureHandler records posture-check sessions.
type PostureHandler struct {
	postureService service.PostureService
	validator      *validation.Validator
}

// NewPostureHandler creates a new PostureHandler.
func NewPostureHandler(postureService service.PostureService) *PostureHandler {
	return &PostureHandler{postureService: postureService, validator: validation.NewValidator()}
}

// Record godoc
// @Summary Record a posture session
// @Tags posture
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.PostureRequest true "Session metrics"
// @Success 201 {object} dto.PostureResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /posture [post]
func (h *PostureHandler) Record(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if userID == "" {
		return err
	}

	var req dto.PostureRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateSessionDuration(req.SessionDuration); len(errs) > 0 {
		return errs
	}

	resp, err := h.postureService.Record(c.Context(), userID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Simulate godoc
// @Summary Synthetic posture session
// @Description Returns generated metrics for demos. Not computer vision.
// @Tags posture
// @Produce json
// @Success 200 {object} dto.PostureResponse
// @Router /posture/simulate [get]
func (h *PostureHandler) Simulate(c *fiber.Ctx) error {
	return c.JSON(h.postureService.Simulate())
}
