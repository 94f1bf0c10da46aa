package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"health-screen/internal/dto"
	"health-screen/internal/logger"
	"health-screen/internal/middleware"
	"health-screen/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func requireUserID(c *fiber.Ctx) (string, error) {
	userID := middleware.UserID(c)
	if userID == "" {
		logger.Get().Warn("User ID not found in context", zap.String("path", c.Path()))
		return "", c.Status(fiber.StatusUnauthorized).JSON(middleware.ErrorResponse{
			Code: "INVALID_USER_CONTEXT", Message: "User ID not found in context", Status: fiber.StatusUnauthorized,
		})
	}
	return userID, nil
}

// GetMyProfile retrieves the profile of the currently authenticated user.
// @Summary Get My Profile
// @Description Retrieves the profile information of the logged-in user.
// @Tags auth
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.UserProfileResponse
// @Failure 401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure 404 {object} middleware.ErrorResponse "User not found"
// @Router /auth/me [get]
func (h *UserHandler) GetMyProfile(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if userID == "" {
		return err
	}

	profile, err := h.userService.GetUserProfile(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// DeleteAccount godoc
// @Summary Delete account
// @Description Deletes the logged-in user together with every survey, analysis and posture record.
// @Tags auth
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure 404 {object} middleware.ErrorResponse "User not found"
// @Router /auth/account [delete]
func (h *UserHandler) DeleteAccount(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if userID == "" {
		return err
	}

	if err := h.userService.DeleteAccount(c.Context(), userID); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Account and all related data deleted"})
}
