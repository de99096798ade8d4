package service

import (
	"context"
	"time"

	"github.com/monastery360/m360-api/internal/core"
	"github.com/monastery360/m360-api/internal/domain/model"
	"github.com/monastery360/m360-api/internal/observability/notify"
	"github.com/monastery360/m360-api/internal/service/capacitynotifier"
)

// EventServiceOptions groups dependencies for EventService.
type EventServiceOptions struct {
	Repo core.EventRepository
	// CapacityAlerts is optional; when nil no sold-out alerts are emitted.
	CapacityAlerts *capacitynotifier.Service
}

// EventService orchestrates cultural event listing and registration.
type EventService struct {
	repo           core.EventRepository
	capacityAlerts *capacitynotifier.Service
}

// NewEventService constructs a new EventService.
func NewEventService(opts EventServiceOptions) *EventService {
	return &EventService{
		repo:           opts.Repo,
		capacityAlerts: opts.CapacityAlerts,
	}
}

// List returns events matching the options.
func (s *EventService) List(ctx context.Context, opts model.EventsListOptions) ([]*model.CulturalEvent, error) {
	return s.repo.List(ctx, normalizeEventOptions(opts))
}

// GetByID retrieves an event by ID.
func (s *EventService) GetByID(ctx context.Context, id string) (*model.CulturalEvent, error) {
	return s.repo.GetByID(ctx, id)
}

// Create schedules a new event.
func (s *EventService) Create(ctx context.Context, req *model.CreateEventRequest) (*model.CulturalEvent, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, req)
}

// Register adds a participant to a capacity-limited event. The repository
// performs the increment atomically and fails with a conflict when the
// event is full. When the registration fills the last slot a capacity
// alert fans out to the configured notification sinks.
func (s *EventService) Register(ctx context.Context, id string) (*model.CulturalEvent, error) {
	event, err := s.repo.Register(ctx, id)
	if err != nil {
		return nil, err
	}
	s.maybeNotifySoldOut(ctx, event)
	return event, nil
}

func (s *EventService) maybeNotifySoldOut(ctx context.Context, event *model.CulturalEvent) {
	if s.capacityAlerts == nil || !s.capacityAlerts.Enabled() || event == nil {
		return
	}
	if event.MaxParticipants == nil || event.CurrentParticipants < *event.MaxParticipants {
		return
	}

	payload := notify.CapacityAlertPayload{
		EventID:         event.ID,
		EventTitle:      event.Title,
		EventType:       string(event.Type),
		MonasteryID:     event.MonasteryID,
		MaxParticipants: *event.MaxParticipants,
		OccurredAt:      time.Now().UTC(),
	}
	// Webhook delivery must not block the registration response.
	go s.capacityAlerts.NotifyCapacityReached(context.WithoutCancel(ctx), payload)
}

func normalizeEventOptions(opts model.EventsListOptions) model.EventsListOptions {
	if opts.Limit <= 0 {
		opts.Limit = 50
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	return opts
}
