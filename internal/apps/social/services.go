package social

import (
	"errors"

	"github.com/feelup-app/feelup-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrNotFollowing     = errors.New("not following this user")
	ErrUserNotFound     = errors.New("user not found")
)

// SocialService manages follows and direct messages.
type SocialService struct {
	db *gorm.DB
}

func NewSocialService(db *gorm.DB) *SocialService {
	return &SocialService{db: db}
}

func (s *SocialService) FollowUser(followerID, followeeID uuid.UUID) (*Follow, error) {
	if followerID == followeeID {
		return nil, ErrSelfFollow
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", followeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var existing Follow
	err := s.db.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyFollowing
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	follow := &Follow{FollowerID: followerID, FolloweeID: followeeID}
	if err := s.db.Create(follow).Error; err != nil {
		return nil, err
	}
	return follow, nil
}

func (s *SocialService) UnfollowUser(followerID, followeeID uuid.UUID) error {
	result := s.db.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&Follow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFollowing
	}
	return nil
}

// Following returns the users the given user follows.
func (s *SocialService) Following(userID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := s.db.
		Joins("JOIN follows ON follows.followee_id = users.id").
		Where("follows.follower_id = ?", userID).
		Order("follows.created_at DESC").
		Find(&users).Error
	return users, err
}

func (s *SocialService) SendMessage(senderID, receiverID uuid.UUID, body string) (*Message, error) {
	if body == "" {
		return nil, errors.New("message cannot be empty")
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", receiverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	msg := &Message{SenderID: senderID, ReceiverID: receiverID, Body: body}
	if err := s.db.Create(msg).Error; err != nil {
		return nil, err
	}
	return msg, nil
}

// Thread returns the full conversation between two users, oldest first.
func (s *SocialService) Thread(userID, otherID uuid.UUID) ([]Message, error) {
	var messages []Message
	err := s.db.Where(
		"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		userID, otherID, otherID, userID,
	).Order("created_at ASC").Find(&messages).Error
	return messages, err
}

// Conversations returns the distinct user IDs the given user has exchanged
// messages with.
func (s *SocialService) Conversations(userID uuid.UUID) ([]uuid.UUID, error) {
	var messages []Message
	err := s.db.Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]bool)
	partners := make([]uuid.UUID, 0)
	for _, m := range messages {
		other := m.SenderID
		if other == userID {
			other = m.ReceiverID
		}
		if !seen[other] {
			seen[other] = true
			partners = append(partners, other)
		}
	}
	return partners, nil
}
