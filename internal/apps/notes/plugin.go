package notes

import (
	"github.com/feelup-app/feelup-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Plugin wraps an already-built NoteService so the same instance can serve
// both the HTTP routes and the mood coach view.
type Plugin struct {
	service *NoteService
}

func New(service *NoteService) *Plugin {
	return &Plugin{service: service}
}

func (p *Plugin) ID() string { return "notes" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{&JournalNote{}}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := NewNoteHandler(p.service)

	router.Post("/notes", handler.Create)
	router.Get("/notes", handler.List)
	router.Post("/notes/:id/pin", handler.TogglePin)
	router.Delete("/notes/:id", handler.Delete)
}
