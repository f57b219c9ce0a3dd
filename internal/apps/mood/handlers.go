package mood

import (
	"errors"
	"strconv"
	"time"

	"github.com/feelup-app/feelup-backend/internal/auth"
	"github.com/gofiber/fiber/v2"
)

// MoodHandler handles HTTP requests for check-ins, journaling, and analytics.
type MoodHandler struct {
	service *MoodService
}

func NewMoodHandler(service *MoodService) *MoodHandler {
	return &MoodHandler{service: service}
}

// SubmitCheckin handles POST /api/moods/checkin
func (h *MoodHandler) SubmitCheckin(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	var req struct {
		Mood string `json:"mood"`
		Note string `json:"note"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}

	entry, err := h.service.SubmitCheckin(userID, req.Mood, req.Note)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

// TodayCheckin handles GET /api/moods/checkin/today
func (h *MoodHandler) TodayCheckin(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	entry, err := h.service.TodayCheckin(userID)
	if err != nil {
		if errors.Is(err, ErrCheckinNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": "No check-in today",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to fetch today's check-in",
		})
	}

	return c.JSON(entry)
}

// SubmitJournal handles POST /api/moods/journal
func (h *MoodHandler) SubmitJournal(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	var req struct {
		Text    string `json:"text"`
		Emotion string `json:"emotion"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}

	entry, err := h.service.SubmitJournal(userID, req.Text, req.Emotion)
	if err != nil {
		if errors.Is(err, ErrEmptyText) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": true, "message": "Please write something about your mood",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to save journal entry",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

// ListJournal handles GET /api/moods/journal
func (h *MoodHandler) ListJournal(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	entries, total, err := h.service.ListJournal(userID, page, 10)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to fetch journal entries",
		})
	}

	return c.JSON(fiber.Map{
		"data": entries, "total": total, "page": page,
	})
}

// Dashboard handles GET /api/moods/dashboard
func (h *MoodHandler) Dashboard(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	series, err := h.service.DashboardSeries(userID, time.Now().UTC())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to build dashboard series",
		})
	}

	return c.JSON(series)
}

// Coach handles GET /api/moods/coach
func (h *MoodHandler) Coach(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	view, err := h.service.CoachView(userID, time.Now().UTC())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to build coach view",
		})
	}

	return c.JSON(view)
}

// JournalAnalytics handles GET /api/moods/journal/analytics
func (h *MoodHandler) JournalAnalytics(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	points, err := h.service.JournalAnalytics(userID, time.Now().UTC())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to fetch journal analytics",
		})
	}

	return c.JSON(fiber.Map{"data": points})
}
