package capacitynotifier

import (
	"context"
	"errors"
	"testing"

	"github.com/monastery360/m360-api/internal/observability/notify"
)

func TestServiceNotifyCapacityReached(t *testing.T) {
	ctx := context.Background()

	var received []notify.CapacityAlertPayload
	svc := NewService(Options{
		Sinks: []SinkRegistration{
			{
				Name: "capture",
				Sink: notify.SinkFunc(func(ctx context.Context, payload notify.CapacityAlertPayload) error {
					received = append(received, payload)
					return nil
				}),
			},
		},
	})

	svc.NotifyCapacityReached(ctx, notify.CapacityAlertPayload{
		EventID:         "e-123",
		EventType:       "workshop",
		MaxParticipants: 12,
	})

	if len(received) != 1 {
		t.Fatalf("expected 1 payload, got %d", len(received))
	}
	if received[0].Severity != notify.SeverityWarning {
		t.Fatalf("expected severity to default to warning, got %s", received[0].Severity)
	}
}

func TestServiceDisabled(t *testing.T) {
	svc := NewService(Options{})
	if svc.Enabled() {
		t.Fatal("expected Enabled() to be false when no sinks registered")
	}
}

func TestServiceLogsErrors(t *testing.T) {
	// Ensure we don't panic when sink returns an error.
	svc := NewService(Options{
		Sinks: []SinkRegistration{
			{
				Name: "fail",
				Sink: notify.SinkFunc(func(ctx context.Context, payload notify.CapacityAlertPayload) error {
					return errors.New("boom")
				}),
			},
		},
	})

	svc.NotifyCapacityReached(context.Background(), notify.CapacityAlertPayload{
		EventID:         "e-123",
		MaxParticipants: 5,
	})
}

func TestServiceSkipsUnlimitedEvent(t *testing.T) {
	ctx := context.Background()
	var called bool
	svc := NewService(Options{
		Sinks: []SinkRegistration{
			{
				Name: "capture",
				Sink: notify.SinkFunc(func(ctx context.Context, payload notify.CapacityAlertPayload) error {
					called = true
					return nil
				}),
			},
		},
	})

	svc.NotifyCapacityReached(ctx, notify.CapacityAlertPayload{
		EventID:         "e-unlimited",
		MaxParticipants: 0,
	})

	if called {
		t.Fatal("expected sink not to be invoked for unlimited event")
	}
}
