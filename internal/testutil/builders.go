package testutil

import (
	"time"

	"github.com/monastery360/m360-api/internal/domain/model"
)

// MonasteryRequestBuilder provides a fluent interface for building CreateMonasteryRequest objects for testing.
type MonasteryRequestBuilder struct {
	req *model.CreateMonasteryRequest
}

// NewMonasteryRequest creates a new MonasteryRequestBuilder with sensible defaults.
func NewMonasteryRequest() *MonasteryRequestBuilder {
	return &MonasteryRequestBuilder{
		req: &model.CreateMonasteryRequest{
			Name:        "Test Monastery",
			Description: "A monastery used in tests",
			Location: model.Location{
				Latitude:  42.1,
				Longitude: 23.3,
				Address:   "1 Mountain Road",
				City:      "Rila",
				Region:    "Kyustendil",
				Country:   "Bulgaria",
			},
			TicketPricing: model.TicketPricing{
				Adult:    15,
				Student:  10,
				Senior:   12,
				Child:    8,
				Family:   40,
				Currency: "EUR",
			},
		},
	}
}

// WithName sets the monastery name.
func (b *MonasteryRequestBuilder) WithName(name string) *MonasteryRequestBuilder {
	b.req.Name = name
	return b
}

// WithDescription sets the monastery description.
func (b *MonasteryRequestBuilder) WithDescription(desc string) *MonasteryRequestBuilder {
	b.req.Description = desc
	return b
}

// WithPricing sets the ticket pricing.
func (b *MonasteryRequestBuilder) WithPricing(p model.TicketPricing) *MonasteryRequestBuilder {
	b.req.TicketPricing = p
	return b
}

// WithAttractions sets the nearby attractions.
func (b *MonasteryRequestBuilder) WithAttractions(attractions ...model.Attraction) *MonasteryRequestBuilder {
	b.req.Attractions = attractions
	return b
}

// Build returns the constructed CreateMonasteryRequest.
func (b *MonasteryRequestBuilder) Build() *model.CreateMonasteryRequest {
	return b.req
}

// EventRequestBuilder provides a fluent interface for building CreateEventRequest objects for testing.
type EventRequestBuilder struct {
	req *model.CreateEventRequest
}

// NewEventRequest creates a new EventRequestBuilder with sensible defaults.
// The event runs for two hours starting one week after TestTime.
func NewEventRequest(monasteryID string) *EventRequestBuilder {
	start := TestTime().AddDate(0, 0, 7)
	return &EventRequestBuilder{
		req: &model.CreateEventRequest{
			MonasteryID: monasteryID,
			Title:       "Test Event",
			Description: "An event used in tests",
			StartDate:   start,
			EndDate:     start.Add(2 * time.Hour),
			Location:    "Main courtyard",
			Type:        model.EventFestival,
		},
	}
}

// WithTitle sets the event title.
func (b *EventRequestBuilder) WithTitle(title string) *EventRequestBuilder {
	b.req.Title = title
	return b
}

// WithType sets the event type.
func (b *EventRequestBuilder) WithType(t model.EventType) *EventRequestBuilder {
	b.req.Type = t
	return b
}

// WithDates sets the event start and end dates.
func (b *EventRequestBuilder) WithDates(start, end time.Time) *EventRequestBuilder {
	b.req.StartDate = start
	b.req.EndDate = end
	return b
}

// WithMaxParticipants caps the event capacity.
func (b *EventRequestBuilder) WithMaxParticipants(n int) *EventRequestBuilder {
	b.req.MaxParticipants = &n
	return b
}

// Build returns the constructed CreateEventRequest.
func (b *EventRequestBuilder) Build() *model.CreateEventRequest {
	return b.req
}

// BookingRequestBuilder provides a fluent interface for building CreateBookingRequest objects for testing.
type BookingRequestBuilder struct {
	req *model.CreateBookingRequest
}

// NewBookingRequest creates a new BookingRequestBuilder with one adult visitor.
func NewBookingRequest(userID, monasteryID string) *BookingRequestBuilder {
	return &BookingRequestBuilder{
		req: &model.CreateBookingRequest{
			UserID:      userID,
			MonasteryID: monasteryID,
			VisitDate:   TestTime().AddDate(0, 0, 3),
			Visitors: []model.VisitorInfo{
				{Name: "Test Visitor", Age: 35, TicketType: "adult"},
			},
		},
	}
}

// WithVisitors replaces the visitor list.
func (b *BookingRequestBuilder) WithVisitors(visitors ...model.VisitorInfo) *BookingRequestBuilder {
	b.req.Visitors = visitors
	return b
}

// WithVisitDate sets the visit date.
func (b *BookingRequestBuilder) WithVisitDate(d time.Time) *BookingRequestBuilder {
	b.req.VisitDate = d
	return b
}

// WithEventID attaches the booking to an event.
func (b *BookingRequestBuilder) WithEventID(id string) *BookingRequestBuilder {
	b.req.EventID = &id
	return b
}

// WithSpecialRequests sets the special requests note.
func (b *BookingRequestBuilder) WithSpecialRequests(s string) *BookingRequestBuilder {
	b.req.SpecialRequests = s
	return b
}

// Build returns the constructed CreateBookingRequest.
func (b *BookingRequestBuilder) Build() *model.CreateBookingRequest {
	return b.req
}
