package handlers

import (
	"encoding/json"
	"fmt"
	"time"

	"ironlady-chat/internal/dto"
	"ironlady-chat/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	apiName    = "Iron Lady Leadership Chatbot API"
	apiVersion = "1.0.0"
)

type InfoHandler struct {
	programsJSON      []byte
	delegationEnabled bool
	now               func() time.Time
}

// NewInfoHandler renders the catalog once; every /api/programs response is the
// same bytes.
func NewInfoHandler(kb *models.KnowledgeBase, delegationEnabled bool) (*InfoHandler, error) {
	programsJSON, err := json.Marshal(kb.AllPrograms())
	if err != nil {
		return nil, fmt.Errorf("failed to encode knowledge base: %w", err)
	}

	return &InfoHandler{
		programsJSON:      programsJSON,
		delegationEnabled: delegationEnabled,
		now:               time.Now,
	}, nil
}

// Root godoc
// @Summary Service banner
// @Tags info
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Router / [get]
func (h *InfoHandler) Root(c *fiber.Ctx) error {
	return c.JSON(dto.StatusResponse{
		Message: apiName,
		Status:  "active",
		Version: apiVersion,
	})
}

// Health godoc
// @Summary Health check
// @Tags info
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *InfoHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:      "healthy",
		Timestamp:   h.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		GroqEnabled: h.delegationEnabled,
	})
}

// Programs godoc
// @Summary Program catalog
// @Description Returns every program plus general academy information
// @Tags info
// @Produce json
// @Success 200 {object} models.KnowledgeBase
// @Router /api/programs [get]
func (h *InfoHandler) Programs(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(h.programsJSON)
}
