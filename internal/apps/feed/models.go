package feed

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MoodPost is a public mood update on the shared feed.
type MoodPost struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       *uuid.UUID     `gorm:"type:uuid;index" json:"user_id"`
	Username     string         `gorm:"size:120" json:"username"`
	Content      string         `gorm:"type:text;not null" json:"content"`
	Emotion      string         `gorm:"size:50" json:"emotion"`
	Anonymous    bool           `gorm:"default:false" json:"anonymous"`
	LikeCount    int            `gorm:"default:0" json:"like_count"`
	CommentCount int            `gorm:"default:0" json:"comment_count"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// PostReaction is a per-emoji reaction counter for a post. One row per
// (post, emoji) pair keeps the counts inspectable instead of an opaque blob.
type PostReaction struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_post_reaction_emoji" json:"post_id"`
	Emoji     string    `gorm:"size:10;not null;uniqueIndex:idx_post_reaction_emoji" json:"emoji"`
	Count     int       `gorm:"default:0" json:"count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostComment is a comment on a mood post.
type PostComment struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;index" json:"post_id"`
	Author    string    `gorm:"size:120" json:"author"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// PostLike tracks who liked a post.
type PostLike struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_post_like_user" json:"post_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_post_like_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
