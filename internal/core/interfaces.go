// Package core defines the repository interfaces the service layer
// depends on. Concrete implementations live in internal/data; test doubles
// are generated into internal/mocks.
package core

import (
	"context"
	"time"

	"github.com/monastery360/m360-api/internal/domain/model"
)

// MonasteryRepository provides persistence for the monastery catalog.
type MonasteryRepository interface {
	Create(ctx context.Context, req *model.CreateMonasteryRequest) (*model.Monastery, error)
	GetByID(ctx context.Context, id string) (*model.Monastery, error)
	List(ctx context.Context, opts model.MonasteriesListOptions) ([]*model.Monastery, error)
	// Search matches the query case-insensitively against name and
	// description.
	Search(ctx context.Context, query string, opts model.MonasteriesListOptions) ([]*model.Monastery, error)
}

// ManuscriptRepository provides persistence for the digitized archive.
type ManuscriptRepository interface {
	Create(ctx context.Context, req *model.CreateManuscriptRequest) (*model.Manuscript, error)
	GetByID(ctx context.Context, id string) (*model.Manuscript, error)
	ListByMonastery(ctx context.Context, monasteryID string) ([]*model.Manuscript, error)
}

// EventRepository provides persistence for cultural events.
type EventRepository interface {
	Create(ctx context.Context, req *model.CreateEventRequest) (*model.CulturalEvent, error)
	GetByID(ctx context.Context, id string) (*model.CulturalEvent, error)
	List(ctx context.Context, opts model.EventsListOptions) ([]*model.CulturalEvent, error)
	// Register atomically increments the participant count, failing with a
	// conflict when the event is at capacity.
	Register(ctx context.Context, id string) (*model.CulturalEvent, error)
	// CountUpcoming returns the number of events ending on or after now.
	CountUpcoming(ctx context.Context, now time.Time) (int, error)
}

// BookingRepository provides persistence for visit bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *model.Booking) (*model.Booking, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	List(ctx context.Context, opts model.BookingsListOptions) ([]*model.Booking, error)
	UpdateStatus(ctx context.Context, id string, status model.BookingStatus, payment model.PaymentStatus) (*model.Booking, error)
	// Totals returns the visitor count and revenue across confirmed and
	// completed bookings.
	Totals(ctx context.Context) (visitors int, revenue float64, err error)
	// CountCreatedBetween counts bookings created in [from, to).
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error)
}

// CacheRepository is a byte-oriented TTL cache used for catalog reads.
type CacheRepository interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) (bool, error)
}
