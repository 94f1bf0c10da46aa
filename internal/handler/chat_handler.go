package handler

import (
	"github.com/gofiber/fiber/v2"

	"health-screen/internal/domain"
	"health-screen/internal/dto"
	"health-screen/internal/service"
	"health-screen/internal/validation"
)

// ChatHandler serves the health assistant.
type ChatHandler struct {
	chatService service.ChatService
	validator   *validation.Validator
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService, validator: validation.NewValidator()}
}

// Reply godoc
// @Summary Ask the health assistant
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Message and history"
// @Success 200 {object} domain.ChatReply
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /chat [post]
func (h *ChatHandler) Reply(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateChatRequest(req.Message, req.History); len(errs) > 0 {
		return errs
	}

	reply, err := h.chatService.Reply(c.Context(), req.Message, req.History)
	if err != nil {
		return err
	}
	return c.JSON(reply)
}

// Status godoc
// @Summary Assistant mode
// @Description Reports whether replies come from a language model or the rule-based table.
// @Tags chat
// @Produce json
// @Success 200 {object} domain.ChatStatus
// @Router /chat/status [get]
func (h *ChatHandler) Status(c *fiber.Ctx) error {
	return c.JSON(h.chatService.Status())
}
