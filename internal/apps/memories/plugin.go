package memories

import (
	"github.com/feelup-app/feelup-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Plugin struct{}

func New() *Plugin { return &Plugin{} }

func (p *Plugin) ID() string { return "memories" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{&Memory{}}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewMemoryService(db)
	handler := NewMemoryHandler(svc)

	router.Post("/memories", handler.Create)
	router.Get("/memories", handler.List)
	router.Get("/memories/suggestions", handler.Suggestions)
	router.Put("/memories/:id", handler.Update)
	router.Delete("/memories/:id", handler.Delete)
}
