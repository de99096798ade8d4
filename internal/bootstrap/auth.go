package bootstrap

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/monastery360/m360-api/config"
	"github.com/monastery360/m360-api/internal/adapters/directory"
	"github.com/monastery360/m360-api/internal/adapters/oidc"
	redisadapter "github.com/monastery360/m360-api/internal/adapters/redis"
	"github.com/monastery360/m360-api/internal/observability/statsd"
	"github.com/monastery360/m360-api/internal/ports"
	"github.com/monastery360/m360-api/internal/service"
)

// AuthDeps contains dependencies for building the session store.
type AuthDeps struct {
	Auth        config.AuthConfig
	RedisClient redis.UniversalClient
	Metrics     statsd.Sink
	Logger      *slog.Logger
}

// BuildSessionStore creates the session store backed by the configured
// gateway. Returns nil when the configuration cannot produce a working
// gateway; callers treat that as auth disabled.
func BuildSessionStore(deps AuthDeps) *service.SessionStore {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	slot := buildIdentitySlot(deps, logger)

	var gateway ports.SessionGateway
	switch deps.Auth.Mode {
	case config.AuthModeDirectory:
		gateway = directory.NewGateway(directory.Config{
			Latency: deps.Auth.Directory.Latency,
			Slot:    slot,
		})

	case config.AuthModeOAuth:
		oauth := deps.Auth.OAuth
		if oauth.DiscoveryURL == "" || oauth.ClientID == "" || oauth.ClientSecret == "" {
			logger.Warn("AuthModeOAuth selected but required config missing; auth disabled",
				"discovery_url_empty", oauth.DiscoveryURL == "",
				"client_id_empty", oauth.ClientID == "",
				"client_secret_empty", oauth.ClientSecret == "",
			)
			return nil
		}
		gw, err := oidc.NewGateway(oidc.GatewayConfig{
			ClientID:     oauth.ClientID,
			ClientSecret: oauth.ClientSecret,
			Scope:        oauth.Scope,
			DiscoveryURL: oauth.DiscoveryURL,
			AdminGroup:   deps.Auth.AdminGroup,
			Slot:         slot,
		})
		if err != nil {
			logger.Warn("failed to create OIDC gateway, auth disabled", "error", err)
			return nil
		}
		gateway = gw

	default:
		return nil
	}

	store := service.NewSessionStore(service.SessionStoreOptions{
		Gateway: gateway,
		Logger:  logger,
		Metrics: deps.Metrics,
	})
	store.Initialize()
	return store
}

// buildIdentitySlot selects the slot backend. Redis keeps the session
// across restarts; memory is the single-process default.
func buildIdentitySlot(deps AuthDeps, logger *slog.Logger) ports.IdentitySlot {
	if deps.Auth.SlotBackend == config.SlotBackendRedis {
		if deps.RedisClient != nil {
			return redisadapter.NewIdentitySlotWithKey(deps.RedisClient, deps.Auth.SlotKey)
		}
		logger.Warn("redis identity slot requested but redis client missing, using memory slot")
	}
	return directory.NewMemorySlot()
}
