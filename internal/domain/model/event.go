package model

import (
	"strings"
	"time"

	apperrors "github.com/monastery360/m360-api/internal/errors"
)

// EventType categorizes cultural events.
type EventType string

const (
	EventFestival   EventType = "festival"
	EventRitual     EventType = "ritual"
	EventExhibition EventType = "exhibition"
	EventWorkshop   EventType = "workshop"
	EventCeremony   EventType = "ceremony"
)

// Valid reports whether the event type is a known value.
func (t EventType) Valid() bool {
	switch t {
	case EventFestival, EventRitual, EventExhibition, EventWorkshop, EventCeremony:
		return true
	default:
		return false
	}
}

// CulturalEvent is a scheduled happening at a monastery. Capacity-limited
// events track registered participants; MaxParticipants nil means
// unlimited.
type CulturalEvent struct {
	ID                  string     `json:"id" db:"id"`
	MonasteryID         string     `json:"monastery_id" db:"monastery_id"`
	Title               string     `json:"title" db:"title"`
	Description         string     `json:"description" db:"description"`
	StartDate           time.Time  `json:"start_date" db:"start_date"`
	EndDate             time.Time  `json:"end_date" db:"end_date"`
	Location            string     `json:"location" db:"location"`
	Type                EventType  `json:"type" db:"type"`
	TicketsRequired     bool       `json:"tickets_required" db:"tickets_required"`
	MaxParticipants     *int       `json:"max_participants,omitempty" db:"max_participants"`
	CurrentParticipants int        `json:"current_participants" db:"current_participants"`
	ImageURL            string     `json:"image_url" db:"image_url"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt           *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// HasCapacity reports whether another participant can register.
func (e CulturalEvent) HasCapacity() bool {
	return e.MaxParticipants == nil || e.CurrentParticipants < *e.MaxParticipants
}

// CreateEventRequest carries the fields required to schedule an event.
type CreateEventRequest struct {
	MonasteryID     string    `json:"monastery_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Location        string    `json:"location"`
	Type            EventType `json:"type"`
	TicketsRequired bool      `json:"tickets_required"`
	MaxParticipants *int      `json:"max_participants,omitempty"`
	ImageURL        string    `json:"image_url"`
}

// Validate checks required fields and date ordering.
func (r *CreateEventRequest) Validate() error {
	if strings.TrimSpace(r.MonasteryID) == "" {
		return apperrors.ValidationField("monastery_id", "monastery_id is required")
	}
	if strings.TrimSpace(r.Title) == "" {
		return apperrors.ValidationField("title", "title is required")
	}
	if !r.Type.Valid() {
		return apperrors.ValidationField("type", "unknown event type")
	}
	if r.EndDate.Before(r.StartDate) {
		return apperrors.ValidationField("end_date", "end_date precedes start_date")
	}
	if r.MaxParticipants != nil && *r.MaxParticipants <= 0 {
		return apperrors.ValidationField("max_participants", "max_participants must be positive")
	}
	return nil
}

// EventsListOptions carries filters for event listing.
type EventsListOptions struct {
	MonasteryID string
	// UpcomingOnly restricts results to events ending on or after now.
	UpcomingOnly bool
	Limit        int
	Offset       int
}
