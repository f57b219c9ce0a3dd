package mood

import (
	"time"

	"github.com/google/uuid"
)

// Entry sources.
const (
	SourceCheckin = "checkin"
	SourceJournal = "journal"
)

// Sentiment labels derived from the compound score.
const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
)

// MoodEntry is one timestamped mood observation in a user's ledger.
// Entries are append-only: no update or delete path exists in this app.
type MoodEntry struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Mood      string    `gorm:"size:50" json:"mood"`
	Score     *float64  `json:"score"`
	Note      string    `gorm:"type:text" json:"note"`
	Source    string    `gorm:"size:20;not null;index" json:"source"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

// --- Derived types, computed on demand and never persisted ---

// DailyBucket is one calendar day's aggregate of a user's entries.
// AverageScore is nil when no scored entry exists for the day.
type DailyBucket struct {
	Date         string   `json:"date"`
	Count        int      `json:"count"`
	AverageScore *float64 `json:"average_score"`
}

// Recommendation is the coaching output for a user's recent entries.
type Recommendation struct {
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
	DailyGoal   string   `json:"daily_goal,omitempty"`
}

// LastNote is the most recent free-form note, sourced from the notes app.
type LastNote struct {
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// DashboardResponse carries the chart series for the dashboard.
type DashboardResponse struct {
	Weekly       []DailyBucket  `json:"weekly"`
	Monthly      []DailyBucket  `json:"monthly"`
	Distribution map[string]int `json:"distribution"`
}

// CoachResponse is the coach view payload.
type CoachResponse struct {
	Recommendation Recommendation `json:"recommendation"`
	Streak         int            `json:"streak"`
	LastNote       *LastNote      `json:"last_note"`
}

// JournalPoint is one scored journal entry in the analytics series.
type JournalPoint struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
}
