package feed

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrNotAuthorized = errors.New("not authorized")
)

// FeedService handles the shared mood feed.
type FeedService struct {
	db *gorm.DB
}

func NewFeedService(db *gorm.DB) *FeedService {
	return &FeedService{db: db}
}

// CreatePost publishes a mood update. Anonymous posts drop the author link
// and display as "Anonymous".
func (s *FeedService) CreatePost(userID uuid.UUID, username, content, emotion string, anonymous bool) (*MoodPost, error) {
	if content == "" {
		return nil, errors.New("enter something to post")
	}
	if emotion == "" {
		emotion = "neutral"
	}

	post := &MoodPost{
		Content:   content,
		Emotion:   emotion,
		Anonymous: anonymous,
		Username:  username,
	}
	if anonymous {
		post.Username = "Anonymous"
	} else {
		post.UserID = &userID
	}

	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// GetFeed returns posts newest first.
func (s *FeedService) GetFeed(page, limit int) ([]MoodPost, int64, error) {
	var posts []MoodPost
	var total int64

	offset := (page - 1) * limit
	s.db.Model(&MoodPost{}).Count(&total)

	err := s.db.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

// React increments the per-emoji counter for a post and returns the new count.
func (s *FeedService) React(postID uuid.UUID, emoji string) (int, error) {
	var post MoodPost
	if err := s.db.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrPostNotFound
		}
		return 0, err
	}

	var reaction PostReaction
	err := s.db.Where("post_id = ? AND emoji = ?", postID, emoji).First(&reaction).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		reaction = PostReaction{PostID: postID, Emoji: emoji, Count: 1}
		if err := s.db.Create(&reaction).Error; err != nil {
			return 0, err
		}
		return 1, nil
	}
	if err != nil {
		return 0, err
	}

	if err := s.db.Model(&reaction).Update("count", gorm.Expr("count + 1")).Error; err != nil {
		return 0, err
	}
	return reaction.Count + 1, nil
}

// Reactions returns the emoji→count map for a post.
func (s *FeedService) Reactions(postID uuid.UUID) (map[string]int, error) {
	var rows []PostReaction
	if err := s.db.Where("post_id = ?", postID).Find(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.Emoji] = r.Count
	}
	return counts, nil
}

// AddComment comments on a post.
func (s *FeedService) AddComment(postID uuid.UUID, author, text string) (*PostComment, error) {
	if text == "" {
		return nil, errors.New("comment cannot be empty")
	}

	var post MoodPost
	if err := s.db.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	comment := &PostComment{PostID: postID, Author: author, Text: text}
	if err := s.db.Create(comment).Error; err != nil {
		return nil, err
	}

	s.db.Model(&MoodPost{}).Where("id = ?", postID).
		Update("comment_count", gorm.Expr("comment_count + 1"))

	return comment, nil
}

// ListComments returns a post's comments oldest first.
func (s *FeedService) ListComments(postID uuid.UUID) ([]PostComment, error) {
	var comments []PostComment
	err := s.db.Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// ToggleLike likes a post, or removes the like if it already exists.
func (s *FeedService) ToggleLike(postID, userID uuid.UUID) (bool, error) {
	var post MoodPost
	if err := s.db.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrPostNotFound
		}
		return false, err
	}

	var existing PostLike
	if err := s.db.Where("post_id = ? AND user_id = ?", postID, userID).First(&existing).Error; err == nil {
		s.db.Delete(&existing)
		s.db.Model(&MoodPost{}).Where("id = ?", postID).
			Update("like_count", gorm.Expr("like_count - 1"))
		return false, nil
	}

	like := &PostLike{PostID: postID, UserID: userID}
	if err := s.db.Create(like).Error; err != nil {
		return false, err
	}
	s.db.Model(&MoodPost{}).Where("id = ?", postID).
		Update("like_count", gorm.Expr("like_count + 1"))
	return true, nil
}

// UpdatePost edits a post's content and emotion. Only the author may edit.
func (s *FeedService) UpdatePost(postID, userID uuid.UUID, content, emotion string) (*MoodPost, error) {
	var post MoodPost
	if err := s.db.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	if post.UserID == nil || *post.UserID != userID {
		return nil, ErrNotAuthorized
	}

	post.Content = content
	post.Emotion = emotion
	if err := s.db.Save(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost removes a post. Only the author may delete.
func (s *FeedService) DeletePost(postID, userID uuid.UUID) error {
	var post MoodPost
	if err := s.db.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	if post.UserID == nil || *post.UserID != userID {
		return ErrNotAuthorized
	}

	return s.db.Delete(&post).Error
}

// WeeklyMoodStats counts feed posts per emotion over the last 7 days.
func (s *FeedService) WeeklyMoodStats() (map[string]int, error) {
	oneWeekAgo := time.Now().UTC().AddDate(0, 0, -7)

	var posts []MoodPost
	if err := s.db.Where("created_at >= ?", oneWeekAgo).Find(&posts).Error; err != nil {
		return nil, err
	}

	stats := make(map[string]int)
	for _, p := range posts {
		stats[p.Emotion]++
	}
	return stats, nil
}
