package memories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrMemoryNotFound = errors.New("memory not found")
	ErrNotAuthorized  = errors.New("not authorized")
)

// MemoryService manages personal memories and tag-based suggestions.
type MemoryService struct {
	db *gorm.DB
}

func NewMemoryService(db *gorm.DB) *MemoryService {
	return &MemoryService{db: db}
}

func (s *MemoryService) Create(userID uuid.UUID, title, body, tag string) (*Memory, error) {
	if title == "" {
		return nil, errors.New("title is required")
	}

	memory := &Memory{
		UserID: userID,
		Title:  title,
		Body:   body,
		Tag:    tag,
	}
	if err := s.db.Create(memory).Error; err != nil {
		return nil, err
	}
	return memory, nil
}

// List returns the user's memories newest first, optionally filtered by tag.
func (s *MemoryService) List(userID uuid.UUID, tag string) ([]Memory, error) {
	query := s.db.Where("user_id = ?", userID)
	if tag != "" {
		query = query.Where("tag = ?", tag)
	}

	var memories []Memory
	err := query.Order("created_at DESC").Limit(50).Find(&memories).Error
	return memories, err
}

func (s *MemoryService) Update(memoryID, userID uuid.UUID, title, body, tag string) (*Memory, error) {
	memory, err := s.ownedMemory(memoryID, userID)
	if err != nil {
		return nil, err
	}

	memory.Title = title
	memory.Body = body
	memory.Tag = tag
	if err := s.db.Save(memory).Error; err != nil {
		return nil, err
	}
	return memory, nil
}

func (s *MemoryService) Delete(memoryID, userID uuid.UUID) error {
	memory, err := s.ownedMemory(memoryID, userID)
	if err != nil {
		return err
	}
	return s.db.Delete(memory).Error
}

// Suggestions surfaces other users' memories that share a tag with any of
// the requesting user's own memories.
func (s *MemoryService) Suggestions(userID uuid.UUID) ([]Memory, error) {
	var tags []string
	err := s.db.Model(&Memory{}).
		Where("user_id = ? AND tag <> ''", userID).
		Distinct("tag").
		Pluck("tag", &tags).Error
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return []Memory{}, nil
	}

	var suggestions []Memory
	err = s.db.Where("user_id <> ? AND tag IN ?", userID, tags).
		Order("created_at DESC").
		Limit(5).
		Find(&suggestions).Error
	return suggestions, err
}

func (s *MemoryService) ownedMemory(memoryID, userID uuid.UUID) (*Memory, error) {
	var memory Memory
	if err := s.db.First(&memory, "id = ?", memoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemoryNotFound
		}
		return nil, err
	}
	if memory.UserID != userID {
		return nil, ErrNotAuthorized
	}
	return &memory, nil
}
