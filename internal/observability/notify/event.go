package notify

import (
	"context"
	"time"
)

// Severity constants recognised by downstream sinks.
const (
	SeverityWarning = "warning"
)

// CapacityAlertPayload captures the canonical data we emit when a cultural
// event reaches its participant capacity.
type CapacityAlertPayload struct {
	EventID         string
	EventTitle      string
	EventType       string
	MonasteryID     string
	MaxParticipants int
	Severity        string
	OccurredAt      time.Time
	Metadata        map[string]string
}

// Sink describes a destination capable of consuming capacity alerts.
type Sink interface {
	SendCapacityAlert(ctx context.Context, payload CapacityAlertPayload) error
}

// SinkFunc adapts a function to the Sink interface (useful for tests).
type SinkFunc func(ctx context.Context, payload CapacityAlertPayload) error

// SendCapacityAlert implements the Sink interface.
func (f SinkFunc) SendCapacityAlert(ctx context.Context, payload CapacityAlertPayload) error {
	if f == nil {
		return nil
	}
	return f(ctx, payload)
}
