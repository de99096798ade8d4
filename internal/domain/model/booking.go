package model

import (
	"strings"
	"time"

	apperrors "github.com/monastery360/m360-api/internal/errors"
)

// BookingStatus is the lifecycle state of a visit booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// PaymentStatus tracks the payment side of a booking.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// VisitorInfo identifies one visitor inside a booking.
type VisitorInfo struct {
	Name       string `json:"name"`
	Age        int    `json:"age"`
	TicketType string `json:"ticket_type"`
}

// Booking is a confirmed monastery visit reservation.
type Booking struct {
	ID              string        `json:"id" db:"id"`
	UserID          string        `json:"user_id" db:"user_id"`
	MonasteryID     string        `json:"monastery_id" db:"monastery_id"`
	EventID         *string       `json:"event_id,omitempty" db:"event_id"`
	VisitDate       time.Time     `json:"visit_date" db:"visit_date"`
	Visitors        []VisitorInfo `json:"visitors" db:"visitors"`
	TotalAmount     float64       `json:"total_amount" db:"total_amount"`
	Currency        string        `json:"currency" db:"currency"`
	Status          BookingStatus `json:"status" db:"status"`
	PaymentStatus   PaymentStatus `json:"payment_status" db:"payment_status"`
	SpecialRequests string        `json:"special_requests,omitempty" db:"special_requests"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt       *time.Time    `json:"updated_at,omitempty" db:"updated_at"`
}

// CreateBookingRequest carries the fields required to book a visit. The
// total amount is computed server-side from the monastery's ticket
// pricing; clients never supply it.
type CreateBookingRequest struct {
	UserID          string        `json:"-"`
	MonasteryID     string        `json:"monastery_id"`
	EventID         *string       `json:"event_id,omitempty"`
	VisitDate       time.Time     `json:"visit_date"`
	Visitors        []VisitorInfo `json:"visitors"`
	SpecialRequests string        `json:"special_requests,omitempty"`
}

// Validate checks required fields.
func (r *CreateBookingRequest) Validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return apperrors.ValidationField("user_id", "user_id is required")
	}
	if strings.TrimSpace(r.MonasteryID) == "" {
		return apperrors.ValidationField("monastery_id", "monastery_id is required")
	}
	if r.VisitDate.IsZero() {
		return apperrors.ValidationField("visit_date", "visit_date is required")
	}
	if len(r.Visitors) == 0 {
		return apperrors.ValidationField("visitors", "at least one visitor is required")
	}
	for _, v := range r.Visitors {
		if strings.TrimSpace(v.Name) == "" {
			return apperrors.ValidationField("visitors", "visitor name is required")
		}
		if strings.TrimSpace(v.TicketType) == "" {
			return apperrors.ValidationField("visitors", "visitor ticket_type is required")
		}
	}
	return nil
}

// BookingsListOptions carries filters for booking listing.
type BookingsListOptions struct {
	UserID string
	Status BookingStatus
	Limit  int
	Offset int
}
