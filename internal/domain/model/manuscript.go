package model

import (
	"strings"
	"time"

	apperrors "github.com/monastery360/m360-api/internal/errors"
)

// AnnotationType categorizes scholarly annotations on digitized pages.
type AnnotationType string

const (
	AnnotationHistorical AnnotationType = "historical"
	AnnotationArtistic   AnnotationType = "artistic"
	AnnotationReligious  AnnotationType = "religious"
	AnnotationLinguistic AnnotationType = "linguistic"
)

// Annotation marks a region of a digitized page with scholarly commentary.
type Annotation struct {
	ID     string         `json:"id"`
	X      float64        `json:"x"`
	Y      float64        `json:"y"`
	Width  float64        `json:"width"`
	Height float64        `json:"height"`
	Text   string         `json:"text"`
	Type   AnnotationType `json:"type"`
}

// DigitizedPage is a scanned manuscript page with optional transcription.
type DigitizedPage struct {
	ID            string       `json:"id"`
	PageNumber    int          `json:"page_number"`
	ImageURL      string       `json:"image_url"`
	Transcription string       `json:"transcription,omitempty"`
	Annotations   []Annotation `json:"annotations"`
}

// Manuscript is a digitized archival document belonging to a monastery.
type Manuscript struct {
	ID             string          `json:"id" db:"id"`
	MonasteryID    string          `json:"monastery_id" db:"monastery_id"`
	Title          string          `json:"title" db:"title"`
	Description    string          `json:"description" db:"description"`
	Period         string          `json:"period" db:"period"`
	ImageURLs      []string        `json:"image_urls" db:"image_urls"`
	Tags           []string        `json:"tags" db:"tags"`
	DigitizedPages []DigitizedPage `json:"digitized_pages" db:"digitized_pages"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
}

// CreateManuscriptRequest carries the fields required to archive a manuscript.
type CreateManuscriptRequest struct {
	MonasteryID    string          `json:"monastery_id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Period         string          `json:"period"`
	ImageURLs      []string        `json:"image_urls"`
	Tags           []string        `json:"tags"`
	DigitizedPages []DigitizedPage `json:"digitized_pages"`
}

// Validate checks required fields.
func (r *CreateManuscriptRequest) Validate() error {
	if strings.TrimSpace(r.MonasteryID) == "" {
		return apperrors.ValidationField("monastery_id", "monastery_id is required")
	}
	if strings.TrimSpace(r.Title) == "" {
		return apperrors.ValidationField("title", "title is required")
	}
	return nil
}
