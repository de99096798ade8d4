package model

import (
	"strings"
	"time"

	apperrors "github.com/monastery360/m360-api/internal/errors"
)

// Location is a geographic position with a postal-style address.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
}

// DaySchedule describes opening hours for a single weekday.
type DaySchedule struct {
	Open         bool   `json:"open"`
	OpenTime     string `json:"open_time,omitempty"`
	CloseTime    string `json:"close_time,omitempty"`
	SpecialNotes string `json:"special_notes,omitempty"`
}

// VisitingHours is the weekly opening schedule.
type VisitingHours struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// TicketPricing carries per-ticket-type prices in a single currency.
type TicketPricing struct {
	Adult    float64 `json:"adult"`
	Student  float64 `json:"student"`
	Senior   float64 `json:"senior"`
	Child    float64 `json:"child"`
	Family   float64 `json:"family"`
	Currency string  `json:"currency"`
}

// PriceFor returns the price for a ticket type, or false when the type is
// unknown.
func (p TicketPricing) PriceFor(ticketType string) (float64, bool) {
	switch strings.ToLower(strings.TrimSpace(ticketType)) {
	case "adult":
		return p.Adult, true
	case "student":
		return p.Student, true
	case "senior":
		return p.Senior, true
	case "child":
		return p.Child, true
	case "family":
		return p.Family, true
	default:
		return 0, false
	}
}

// VirtualTour is a guided virtual walkthrough of a monastery.
type VirtualTour struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	DurationMins int      `json:"duration_mins"`
	ThumbnailURL string   `json:"thumbnail_url"`
	TourURL      string   `json:"tour_url"`
	Language     string   `json:"language"`
	Highlights   []string `json:"highlights"`
}

// Hotspot is an interactive point inside a panoramic view.
type Hotspot struct {
	ID          string  `json:"id"`
	X           float64 `json:"x"` // percentage across the image
	Y           float64 `json:"y"` // percentage down the image
	Title       string  `json:"title"`
	Description string  `json:"description"`
	AudioURL    string  `json:"audio_url,omitempty"`
}

// PanoramicView is a 360-degree scene with annotated hotspots.
type PanoramicView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Hotspots    []Hotspot `json:"hotspots"`
	Location    string    `json:"location"`
}

// AudioGuide is a narrated audio segment, optionally beacon-triggered.
type AudioGuide struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	AudioURL     string `json:"audio_url"`
	DurationSecs int    `json:"duration_secs"`
	Language     string `json:"language"`
	BeaconID     string `json:"beacon_id,omitempty"`
	Transcript   string `json:"transcript,omitempty"`
}

// AttractionType categorizes nearby attractions.
type AttractionType string

const (
	AttractionMonastery     AttractionType = "monastery"
	AttractionMuseum        AttractionType = "museum"
	AttractionRestaurant    AttractionType = "restaurant"
	AttractionAccommodation AttractionType = "accommodation"
	AttractionNature        AttractionType = "nature"
)

// Attraction is a point of interest near a monastery.
type Attraction struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Location    Location       `json:"location"`
	DistanceKm  float64        `json:"distance_km"`
	Type        AttractionType `json:"type"`
	Rating      float64        `json:"rating"`
	ImageURL    string         `json:"image_url"`
}

// Monastery is the central catalog aggregate. Nested collections are
// stored as JSONB documents alongside the typed columns.
type Monastery struct {
	ID             string          `json:"id" db:"id"`
	Name           string          `json:"name" db:"name"`
	Description    string          `json:"description" db:"description"`
	Location       Location        `json:"location" db:"location"`
	Images         []string        `json:"images" db:"images"`
	VirtualTours   []VirtualTour   `json:"virtual_tours" db:"virtual_tours"`
	PanoramicViews []PanoramicView `json:"panoramic_views" db:"panoramic_views"`
	AudioGuides    []AudioGuide    `json:"audio_guides" db:"audio_guides"`
	Attractions    []Attraction    `json:"nearby_attractions" db:"attractions"`
	VisitingHours  VisitingHours   `json:"visiting_hours" db:"visiting_hours"`
	TicketPricing  TicketPricing   `json:"ticket_pricing" db:"ticket_pricing"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      *time.Time      `json:"updated_at,omitempty" db:"updated_at"`
}

// CreateMonasteryRequest carries the fields required to create a monastery.
type CreateMonasteryRequest struct {
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Location       Location        `json:"location"`
	Images         []string        `json:"images"`
	VirtualTours   []VirtualTour   `json:"virtual_tours"`
	PanoramicViews []PanoramicView `json:"panoramic_views"`
	AudioGuides    []AudioGuide    `json:"audio_guides"`
	Attractions    []Attraction    `json:"nearby_attractions"`
	VisitingHours  VisitingHours   `json:"visiting_hours"`
	TicketPricing  TicketPricing   `json:"ticket_pricing"`
}

// Validate checks required fields.
func (r *CreateMonasteryRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return apperrors.ValidationField("name", "name is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		return apperrors.ValidationField("description", "description is required")
	}
	if r.TicketPricing.Currency == "" {
		return apperrors.ValidationField("ticket_pricing.currency", "currency is required")
	}
	return nil
}

// MonasteriesListOptions carries pagination for catalog listing.
type MonasteriesListOptions struct {
	Limit  int
	Offset int
}
