package feed

import (
	"errors"
	"strconv"

	"github.com/feelup-app/feelup-backend/internal/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// FeedHandler handles HTTP requests for the mood feed.
type FeedHandler struct {
	service *FeedService
}

func NewFeedHandler(service *FeedService) *FeedHandler {
	return &FeedHandler{service: service}
}

// CreatePost handles POST /api/posts
func (h *FeedHandler) CreatePost(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	var req struct {
		Content   string `json:"content"`
		Emotion   string `json:"emotion"`
		Anonymous bool   `json:"anonymous"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}

	post, err := h.service.CreatePost(userID, auth.GetUserName(c), req.Content, req.Emotion, req.Anonymous)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetFeed handles GET /api/posts
func (h *FeedHandler) GetFeed(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit > 100 {
		limit = 100
	}

	posts, total, err := h.service.GetFeed(page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to fetch feed",
		})
	}

	return c.JSON(fiber.Map{
		"data": posts, "total": total, "page": page, "limit": limit,
	})
}

// React handles POST /api/posts/:id/react
func (h *FeedHandler) React(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid post ID",
		})
	}

	var req struct {
		Emoji string `json:"emoji"`
	}
	if err := c.BodyParser(&req); err != nil || req.Emoji == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "emoji is required",
		})
	}

	count, err := h.service.React(postID, req.Emoji)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to react",
		})
	}

	return c.JSON(fiber.Map{"emoji": req.Emoji, "count": count})
}

// GetReactions handles GET /api/posts/:id/reactions
func (h *FeedHandler) GetReactions(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid post ID",
		})
	}

	counts, err := h.service.Reactions(postID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to fetch reactions",
		})
	}

	return c.JSON(fiber.Map{"data": counts})
}

// AddComment handles POST /api/posts/:id/comments
func (h *FeedHandler) AddComment(c *fiber.Ctx) error {
	if _, err := auth.GetUserID(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid post ID",
		})
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}

	author := auth.GetUserName(c)
	if author == "" {
		author = "Guest"
	}

	comment, err := h.service.AddComment(postID, author, req.Text)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// ListComments handles GET /api/posts/:id/comments
func (h *FeedHandler) ListComments(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid post ID",
		})
	}

	comments, err := h.service.ListComments(postID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to fetch comments",
		})
	}

	return c.JSON(fiber.Map{"data": comments})
}

// ToggleLike handles POST /api/posts/:id/like
func (h *FeedHandler) ToggleLike(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid post ID",
		})
	}

	liked, err := h.service.ToggleLike(postID, userID)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to like post",
		})
	}

	return c.JSON(fiber.Map{"liked": liked})
}

// UpdatePost handles PUT /api/posts/:id
func (h *FeedHandler) UpdatePost(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid post ID",
		})
	}

	var req struct {
		Content string `json:"content"`
		Emotion string `json:"emotion"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}

	post, err := h.service.UpdatePost(postID, userID, req.Content, req.Emotion)
	if err != nil {
		switch {
		case errors.Is(err, ErrPostNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": err.Error(),
			})
		case errors.Is(err, ErrNotAuthorized):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": true, "message": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to update post",
		})
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (h *FeedHandler) DeletePost(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid post ID",
		})
	}

	if err := h.service.DeletePost(postID, userID); err != nil {
		switch {
		case errors.Is(err, ErrPostNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": err.Error(),
			})
		case errors.Is(err, ErrNotAuthorized):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": true, "message": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to delete post",
		})
	}

	return c.JSON(fiber.Map{"message": "Post deleted"})
}

// WeeklyStats handles GET /api/posts/stats/weekly
func (h *FeedHandler) WeeklyStats(c *fiber.Ctx) error {
	stats, err := h.service.WeeklyMoodStats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to fetch weekly stats",
		})
	}

	return c.JSON(fiber.Map{"data": stats})
}
