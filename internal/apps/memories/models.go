package memories

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Memory is a saved moment a user wants to revisit. Tags drive the
// suggestion feature, which surfaces other users' memories with a shared tag.
type Memory struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string         `gorm:"size:200;not null" json:"title"`
	Body      string         `gorm:"type:text" json:"body"`
	Tag       string         `gorm:"size:50;index" json:"tag"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
