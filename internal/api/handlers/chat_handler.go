package handlers

import (
	"errors"

	"ironlady-chat/internal/dto"
	"ironlady-chat/internal/service"
	"ironlady-chat/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ApologyText is returned alongside 500 errors so the widget always has
// something to show.
const ApologyText = "I apologize for the technical difficulty. Please try asking about our leadership programs, mentors, certifications, or course duration."

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
// @Summary Ask the support assistant
// @Description Answers from the FAQ rules, then the LLM provider, then a static fallback
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat request"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ChatErrorResponse
// @Router /api/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	// non-JSON bodies are treated as an empty request, like a missing message
	if len(c.Body()) > 0 && c.Is("json") {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: "Invalid request body",
			})
		}
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Message is required",
		})
	}

	reply, err := h.chatService.Reply(c.UserContext(), req.Message)
	if err != nil {
		if errors.Is(err, service.ErrMessageRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: "Message is required",
			})
		}
		h.logger.Error("Chat API error",
			zap.String("request_id", middleware.RequestID(c)),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ChatErrorResponse{
			Error:    "Internal server error",
			Response: ApologyText,
		})
	}

	h.logger.Info("Chat reply sent",
		zap.String("request_id", middleware.RequestID(c)),
		zap.String("source", string(reply.Source)),
	)
	return c.JSON(dto.ChatResponse{Response: reply.Text})
}
