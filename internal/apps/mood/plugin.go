package mood

import (
	"github.com/feelup-app/feelup-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Plugin implements the apps.Plugin interface for the mood analytics app.
type Plugin struct {
	scorer Scorer
	notes  NotesProvider
}

// New creates a new mood Plugin. The scorer is shared so the lexicon loads
// once at startup.
func New(scorer Scorer, notes NotesProvider) *Plugin {
	return &Plugin{scorer: scorer, notes: notes}
}

func (p *Plugin) ID() string { return "mood" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{
		&MoodEntry{},
	}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewMoodService(NewGormLedger(db), p.scorer, p.notes)
	handler := NewMoodHandler(svc)

	router.Post("/moods/checkin", handler.SubmitCheckin)
	router.Get("/moods/checkin/today", handler.TodayCheckin)
	router.Post("/moods/journal", handler.SubmitJournal)
	router.Get("/moods/journal", handler.ListJournal)
	router.Get("/moods/journal/analytics", handler.JournalAnalytics)
	router.Get("/moods/dashboard", handler.Dashboard)
	router.Get("/moods/coach", handler.Coach)
}
