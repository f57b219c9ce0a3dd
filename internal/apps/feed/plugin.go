package feed

import (
	"github.com/feelup-app/feelup-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Plugin implements the apps.Plugin interface for the mood feed app.
type Plugin struct{}

func New() *Plugin { return &Plugin{} }

func (p *Plugin) ID() string { return "feed" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{
		&MoodPost{},
		&PostReaction{},
		&PostComment{},
		&PostLike{},
	}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewFeedService(db)
	handler := NewFeedHandler(svc)

	router.Post("/posts", handler.CreatePost)
	router.Get("/posts", handler.GetFeed)
	router.Put("/posts/:id", handler.UpdatePost)
	router.Delete("/posts/:id", handler.DeletePost)
	router.Post("/posts/:id/react", handler.React)
	router.Get("/posts/:id/reactions", handler.GetReactions)
	router.Post("/posts/:id/comments", handler.AddComment)
	router.Get("/posts/:id/comments", handler.ListComments)
	router.Post("/posts/:id/like", handler.ToggleLike)
	router.Get("/posts/stats/weekly", handler.WeeklyStats)
}
