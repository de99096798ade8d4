package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/monastery360/m360-api/internal/core"
	"github.com/monastery360/m360-api/internal/data"
	"github.com/monastery360/m360-api/internal/domain/model"
	apperrors "github.com/monastery360/m360-api/internal/errors"
)

// BookingServiceOptions groups dependencies for BookingService.
type BookingServiceOptions struct {
	Bookings    core.BookingRepository
	Monasteries core.MonasteryRepository
	Events      core.EventRepository
	Time        data.TimeProvider
}

// BookingService orchestrates visit bookings: pricing, event registration,
// and the mock payment that confirms every booking immediately.
type BookingService struct {
	bookings    core.BookingRepository
	monasteries core.MonasteryRepository
	events      core.EventRepository
	time        data.TimeProvider
}

// NewBookingService constructs a new BookingService.
func NewBookingService(opts BookingServiceOptions) *BookingService {
	tp := opts.Time
	if tp == nil {
		tp = &data.RealTimeProvider{}
	}
	return &BookingService{
		bookings:    opts.Bookings,
		monasteries: opts.Monasteries,
		events:      opts.Events,
		time:        tp,
	}
}

// BookVisit validates the request, prices it from the monastery's ticket
// pricing, registers event participation when an event is referenced, and
// persists the booking as confirmed and paid. Payment is mocked: there is
// no external charge, the booking is simply stamped paid.
func (s *BookingService) BookVisit(ctx context.Context, req *model.CreateBookingRequest) (*model.Booking, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	monastery, err := s.monasteries.GetByID(ctx, req.MonasteryID)
	if err != nil {
		return nil, fmt.Errorf("resolve monastery: %w", err)
	}

	total, err := priceVisitors(monastery.TicketPricing, req.Visitors)
	if err != nil {
		return nil, err
	}

	if req.EventID != nil {
		if _, regErr := s.events.Register(ctx, *req.EventID); regErr != nil {
			return nil, fmt.Errorf("register event participation: %w", regErr)
		}
	}

	booking := &model.Booking{
		ID:              uuid.NewString(),
		UserID:          req.UserID,
		MonasteryID:     req.MonasteryID,
		EventID:         req.EventID,
		VisitDate:       req.VisitDate,
		Visitors:        req.Visitors,
		TotalAmount:     total,
		Currency:        monastery.TicketPricing.Currency,
		Status:          model.BookingConfirmed,
		PaymentStatus:   model.PaymentPaid,
		SpecialRequests: req.SpecialRequests,
		CreatedAt:       s.time.Now().UTC(),
	}
	return s.bookings.Create(ctx, booking)
}

// GetByID retrieves a booking by ID.
func (s *BookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

// ListForUser returns the bookings owned by a user.
func (s *BookingService) ListForUser(ctx context.Context, userID string, opts model.BookingsListOptions) ([]*model.Booking, error) {
	opts.UserID = userID
	return s.bookings.List(ctx, normalizeBookingOptions(opts))
}

// ListAll returns bookings across all users; admin-only at the HTTP layer.
func (s *BookingService) ListAll(ctx context.Context, opts model.BookingsListOptions) ([]*model.Booking, error) {
	return s.bookings.List(ctx, normalizeBookingOptions(opts))
}

// Cancel marks a booking cancelled and its payment refunded. Only the
// owner (or an admin, enforced by the HTTP layer) may cancel.
func (s *BookingService) Cancel(ctx context.Context, id, userID string) (*model.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if userID != "" && booking.UserID != userID {
		return nil, apperrors.NotFoundf("booking %s not found", id)
	}
	if booking.Status == model.BookingCancelled {
		return booking, nil
	}
	return s.bookings.UpdateStatus(ctx, id, model.BookingCancelled, model.PaymentRefunded)
}

// priceVisitors totals the ticket prices for every visitor.
func priceVisitors(pricing model.TicketPricing, visitors []model.VisitorInfo) (float64, error) {
	var total float64
	for _, v := range visitors {
		price, ok := pricing.PriceFor(v.TicketType)
		if !ok {
			return 0, apperrors.ValidationField("visitors", fmt.Sprintf("unknown ticket type %q", v.TicketType))
		}
		total += price
	}
	return total, nil
}

func normalizeBookingOptions(opts model.BookingsListOptions) model.BookingsListOptions {
	if opts.Limit <= 0 {
		opts.Limit = 50
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	return opts
}
