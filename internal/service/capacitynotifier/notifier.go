// Package capacitynotifier fans out sold-out alerts for capacity-limited
// cultural events to the configured notification sinks.
package capacitynotifier

import (
	"context"
	"log/slog"
	"sync"

	"github.com/monastery360/m360-api/internal/observability/notify"
)

// SinkRegistration pairs a sink implementation with a human-readable name for logging.
type SinkRegistration struct {
	Name string
	Sink notify.Sink
}

// Options configures the capacity notifier service.
type Options struct {
	Logger *slog.Logger
	Sinks  []SinkRegistration
}

// Service dispatches capacity alerts to all registered sinks.
type Service struct {
	logger *slog.Logger
	sinks  []SinkRegistration
}

// NewService constructs a capacity notifier.
func NewService(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default().With("component", "capacity_notifier")
	}

	var sinks []SinkRegistration
	for _, entry := range opts.Sinks {
		if entry.Sink == nil {
			continue
		}
		name := entry.Name
		if name == "" {
			name = "sink"
		}
		sinks = append(sinks, SinkRegistration{
			Name: name,
			Sink: entry.Sink,
		})
	}

	return &Service{
		logger: logger,
		sinks:  sinks,
	}
}

// NotifyCapacityReached fans out the capacity alert payload to all sinks.
func (s *Service) NotifyCapacityReached(ctx context.Context, payload notify.CapacityAlertPayload) {
	if len(s.sinks) == 0 {
		return
	}

	if payload.MaxParticipants <= 0 {
		// Unlimited-capacity events never sell out.
		if s.logger != nil {
			s.logger.DebugContext(ctx, "skipping capacity alert for unlimited event",
				"event_id", payload.EventID,
				"event_type", payload.EventType,
			)
		}
		return
	}

	if payload.Severity == "" {
		payload.Severity = notify.SeverityWarning
	}

	var wg sync.WaitGroup
	for _, entry := range s.sinks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := entry.Sink.SendCapacityAlert(ctx, payload); err != nil {
				s.logger.Error("capacity notifier delivery error",
					"sink", entry.Name,
					"event_id", payload.EventID,
					"event_type", payload.EventType,
					"error", err,
				)
			}
		}()
	}
	wg.Wait()
}

// Enabled reports whether the notifier has any active sinks.
func (s *Service) Enabled() bool {
	return len(s.sinks) > 0
}
