package events

import (
	"github.com/feelup-app/feelup-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Plugin struct{}

func New() *Plugin { return &Plugin{} }

func (p *Plugin) ID() string { return "events" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{&Event{}, &EventJoin{}}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewEventService(db)
	handler := NewEventHandler(svc)

	router.Post("/events", handler.Create)
	router.Get("/events", handler.Upcoming)
	router.Post("/events/:id/join", handler.Join)
	router.Get("/events/:id/attendees", handler.Attendees)
}
