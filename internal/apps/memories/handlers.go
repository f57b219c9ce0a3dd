package memories

import (
	"errors"

	"github.com/feelup-app/feelup-backend/internal/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MemoryHandler struct {
	service *MemoryService
}

func NewMemoryHandler(service *MemoryService) *MemoryHandler {
	return &MemoryHandler{service: service}
}

type memoryRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Tag   string `json:"tag"`
}

// Create handles POST /api/memories
func (h *MemoryHandler) Create(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	var req memoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}

	memory, err := h.service.Create(userID, req.Title, req.Body, req.Tag)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(memory)
}

// List handles GET /api/memories
func (h *MemoryHandler) List(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	memories, err := h.service.List(userID, c.Query("tag"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to fetch memories",
		})
	}

	return c.JSON(fiber.Map{"data": memories})
}

// Update handles PUT /api/memories/:id
func (h *MemoryHandler) Update(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	memoryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid memory ID",
		})
	}

	var req memoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}

	memory, err := h.service.Update(memoryID, userID, req.Title, req.Body, req.Tag)
	if err != nil {
		return memoryError(c, err, "Failed to update memory")
	}

	return c.JSON(memory)
}

// Delete handles DELETE /api/memories/:id
func (h *MemoryHandler) Delete(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	memoryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid memory ID",
		})
	}

	if err := h.service.Delete(memoryID, userID); err != nil {
		return memoryError(c, err, "Failed to delete memory")
	}

	return c.JSON(fiber.Map{"message": "Memory deleted"})
}

// Suggestions handles GET /api/memories/suggestions
func (h *MemoryHandler) Suggestions(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	suggestions, err := h.service.Suggestions(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to fetch suggestions",
		})
	}

	return c.JSON(fiber.Map{"data": suggestions})
}

func memoryError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, ErrMemoryNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	case errors.Is(err, ErrNotAuthorized):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": true, "message": fallback,
	})
}
