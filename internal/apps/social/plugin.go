package social

import (
	"github.com/feelup-app/feelup-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Plugin struct{}

func New() *Plugin { return &Plugin{} }

func (p *Plugin) ID() string { return "social" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{&Follow{}, &Message{}}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewSocialService(db)
	handler := NewSocialHandler(svc)

	router.Post("/social/follow/:id", handler.Follow)
	router.Delete("/social/follow/:id", handler.Unfollow)
	router.Get("/social/following", handler.Following)
	router.Get("/social/messages", handler.Conversations)
	router.Post("/social/messages/:id", handler.SendMessage)
	router.Get("/social/messages/:id", handler.Thread)
}
