package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/monastery360/m360-api/config"
	"github.com/monastery360/m360-api/internal/data"
	"github.com/monastery360/m360-api/internal/observability/notify/pagerduty"
	"github.com/monastery360/m360-api/internal/observability/notify/slack"
	"github.com/monastery360/m360-api/internal/observability/statsd"
	"github.com/monastery360/m360-api/internal/service"
	"github.com/monastery360/m360-api/internal/service/capacitynotifier"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Sessions      *service.SessionStore
	Monasteries   *service.MonasteryService
	Manuscripts   *service.ManuscriptService
	Events        *service.EventService
	Bookings      *service.BookingService
	Stats         *service.StatsService
	Filter        *service.EventFilterService
	Observability ObservabilityContainer
}

// ObservabilityContainer groups shared observability dependencies.
type ObservabilityContainer struct {
	MetricsSink    *statsd.Client
	MetricsConfig  config.ObservabilityMetricsConfig
	CapacityAlerts *capacitynotifier.Service
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildServices constructs the full service container from its
// dependencies.
func BuildServices(deps ServiceDeps) ServiceContainer {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.AppConfig{}
	}

	obs := buildObservability(logger, cfg.Observability)

	monasteryRepo := data.NewMonasteryRepo(deps.DB)
	manuscriptRepo := data.NewManuscriptRepo(deps.DB)
	eventRepo := data.NewEventRepo(deps.DB)
	bookingRepo := data.NewBookingRepo(deps.DB)

	monasteryOpts := service.MonasteryServiceOptions{
		Repo:     monasteryRepo,
		CacheTTL: cfg.Cache.CatalogTTL,
		Logger:   logger,
	}
	if cfg.Cache.Enabled && deps.RedisClient != nil {
		monasteryOpts.Cache = data.NewRedisCacheRepo(deps.RedisClient)
	}
	monasteries := service.NewMonasteryService(monasteryOpts)

	var metrics statsd.Sink
	if obs.MetricsSink.Enabled() {
		metrics = obs.MetricsSink
	}

	sessions := BuildSessionStore(AuthDeps{
		Auth:        cfg.Auth,
		RedisClient: deps.RedisClient,
		Metrics:     metrics,
		Logger:      logger,
	})

	return ServiceContainer{
		Sessions:    sessions,
		Monasteries: monasteries,
		Manuscripts: service.NewManuscriptService(service.ManuscriptServiceOptions{Repo: manuscriptRepo}),
		Events: service.NewEventService(service.EventServiceOptions{
			Repo:           eventRepo,
			CapacityAlerts: obs.CapacityAlerts,
		}),
		Bookings: service.NewBookingService(service.BookingServiceOptions{
			Bookings:    bookingRepo,
			Monasteries: monasteryRepo,
			Events:      eventRepo,
		}),
		Stats: service.NewStatsService(service.StatsServiceOptions{
			Bookings:    bookingRepo,
			Events:      eventRepo,
			Monasteries: monasteryRepo,
		}),
		Filter:        service.NewEventFilterService(service.EventFilterServiceOptions{}),
		Observability: obs,
	}
}

// buildObservability configures the metrics sink and notification fan-out.
func buildObservability(logger *slog.Logger, cfg config.ObservabilityConfig) ObservabilityContainer {
	var sink *statsd.Client
	if cfg.Metrics.IsEnabled() {
		client, err := statsd.NewClient(statsd.Config{
			Enabled: true,
			Address: cfg.Metrics.StatsdAddress,
			Prefix:  cfg.Metrics.Prefix,
			Logger:  logger,
		})
		if err != nil {
			logger.Warn("statsd client unavailable, metrics disabled", "error", err)
		} else {
			sink = client
		}
	}
	return ObservabilityContainer{
		MetricsSink:    sink,
		MetricsConfig:  cfg.Metrics,
		CapacityAlerts: buildCapacityNotifier(logger, cfg.Notifications),
	}
}

func buildCapacityNotifier(logger *slog.Logger, cfg config.ObservabilityNotificationsConfig) *capacitynotifier.Service {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	if !cfg.Enabled {
		return capacitynotifier.NewService(capacitynotifier.Options{
			Logger: baseLogger.With("component", "capacity_notifier"),
		})
	}

	sinks := make([]capacitynotifier.SinkRegistration, 0, 2)

	if cfg.Slack.Enabled {
		client, err := slack.NewClient(slack.Config{
			WebhookURL:     cfg.Slack.WebhookURL,
			Channel:        cfg.Slack.Channel,
			Username:       cfg.Slack.Username,
			Timeout:        cfg.Timeout,
			RetryLimit:     cfg.RetryLimit,
			EventURLPrefix: cfg.Slack.EventURLPrefix,
		})
		if err != nil {
			baseLogger.Error("failed to initialise slack notifier", "error", err)
		} else {
			sinks = append(sinks, capacitynotifier.SinkRegistration{
				Name: "slack",
				Sink: client,
			})
		}
	}

	if cfg.PagerDuty.Enabled {
		client, err := pagerduty.NewClient(pagerduty.Config{
			RoutingKey: cfg.PagerDuty.RoutingKey,
			Source:     cfg.PagerDuty.Source,
			Component:  cfg.PagerDuty.Component,
			Timeout:    cfg.Timeout,
			RetryLimit: cfg.RetryLimit,
		})
		if err != nil {
			baseLogger.Error("failed to initialise pagerduty notifier", "error", err)
		} else {
			sinks = append(sinks, capacitynotifier.SinkRegistration{
				Name: "pagerduty",
				Sink: client,
			})
		}
	}

	return capacitynotifier.NewService(capacitynotifier.Options{
		Logger: baseLogger.With("component", "capacity_notifier"),
		Sinks:  sinks,
	})
}
