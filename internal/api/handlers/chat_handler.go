package handlers

import (
	"ghars/internal/dto"
	"ghars/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ChatHandler serves the knowledge-retrieval endpoints.
type ChatHandler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// Chat godoc
// @Summary Answer a free-text agricultural question
// @Description Match the question against the knowledge corpus, optionally narrowed by governorate/season context
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat request"
// @Success 200 {object} dto.Response
// @Failure 400 {object} map[string]string
// @Router /api/v1/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Message is required",
		})
	}

	answer := h.chatService.Answer(req.Message, req.Context)
	return c.JSON(dto.OK(answer))
}

// History godoc
// @Summary Recent conversation turns
// @Tags chat
// @Produce json
// @Param limit query int false "Maximum turns" default(20)
// @Success 200 {object} dto.Response
// @Router /api/v1/chat/history [get]
func (h *ChatHandler) History(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	turns := h.chatService.History(limit)
	return c.JSON(dto.OKCount(len(turns), turns))
}
