package notes

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JournalNote is a private free-form note. The most recent one surfaces on
// the mood coach view.
type JournalNote struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string         `gorm:"size:200" json:"title"`
	Body      string         `gorm:"type:text;not null" json:"body"`
	Tags      string         `gorm:"size:200" json:"tags"`
	Pinned    bool           `gorm:"default:false" json:"pinned"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
