package events

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrAlreadyJoined = errors.New("already joined this event")
)

// EventService manages community events and attendance.
type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

func (s *EventService) Create(creatorID uuid.UUID, title, description, location string, startsAt time.Time) (*Event, error) {
	if title == "" {
		return nil, errors.New("title is required")
	}
	if startsAt.IsZero() {
		return nil, errors.New("starts_at is required")
	}

	event := &Event{
		CreatorID:   creatorID,
		Title:       title,
		Description: description,
		Location:    location,
		StartsAt:    startsAt,
	}
	if err := s.db.Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

// Upcoming lists events that have not started yet, soonest first.
func (s *EventService) Upcoming() ([]Event, error) {
	var events []Event
	err := s.db.Where("starts_at >= ?", time.Now().UTC()).
		Order("starts_at ASC").
		Find(&events).Error
	return events, err
}

func (s *EventService) Join(eventID, userID uuid.UUID) (*EventJoin, error) {
	var event Event
	if err := s.db.First(&event, "id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	var existing EventJoin
	err := s.db.Where("event_id = ? AND user_id = ?", eventID, userID).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyJoined
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	join := &EventJoin{EventID: eventID, UserID: userID}
	if err := s.db.Create(join).Error; err != nil {
		return nil, err
	}
	return join, nil
}

// Attendees returns the user IDs joined to an event.
func (s *EventService) Attendees(eventID uuid.UUID) ([]uuid.UUID, error) {
	var event Event
	if err := s.db.First(&event, "id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	var userIDs []uuid.UUID
	err := s.db.Model(&EventJoin{}).
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Pluck("user_id", &userIDs).Error
	return userIDs, err
}
