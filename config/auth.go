package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthMode selects which session gateway backs the session store.
type AuthMode string

const (
	// AuthModeOAuth authenticates against an OIDC provider.
	AuthModeOAuth AuthMode = "oauth"
	// AuthModeDirectory authenticates against the built-in credential
	// directory (for development and demos).
	AuthModeDirectory AuthMode = "directory"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "oauth", "directory":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: oauth, directory)", v)
	}
}

// SlotBackend selects where the current-identity slot lives.
type SlotBackend string

const (
	// SlotBackendMemory keeps the slot in process memory.
	SlotBackendMemory SlotBackend = "memory"
	// SlotBackendRedis persists the slot in Redis so sessions survive
	// restarts.
	SlotBackendRedis SlotBackend = "redis"
)

// UnmarshalText implements encoding.TextUnmarshaler for SlotBackend.
func (s *SlotBackend) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "memory", "redis":
		*s = SlotBackend(v)
		return nil
	default:
		return fmt.Errorf("invalid SlotBackend: %q (valid options: memory, redis)", v)
	}
}

// OAuthConfig contains OAuth/OIDC configuration.
type OAuthConfig struct {
	ClientID     string `env:"CLIENT_ID"     envDefault:"m360"`
	ClientSecret string `env:"CLIENT_SECRET" envDefault:"m360"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email groups"`
	DiscoveryURL string `env:"DISCOVERY_URL"`
}

// DirectoryConfig controls the built-in credential directory.
// Used when AUTH_MODE=directory for development and demos.
type DirectoryConfig struct {
	// Latency is the base simulated round-trip delay. Zero disables it.
	Latency time.Duration `env:"LATENCY" envDefault:"800ms"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which session gateway to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"directory"`

	// OAuth configuration (used when Mode=oauth).
	OAuth OAuthConfig `envPrefix:"OAUTH_"`

	// Directory configuration (used when Mode=directory).
	Directory DirectoryConfig `envPrefix:"DIRECTORY_"`

	// SlotBackend selects the current-identity slot store.
	SlotBackend SlotBackend `env:"SESSION_SLOT_BACKEND" envDefault:"memory"`

	// SlotKey is the Redis key for the identity slot when SlotBackend=redis.
	SlotKey string `env:"SESSION_SLOT_KEY" envDefault:"session:current"`

	// AdminGroup is the provider group that maps to the admin role.
	AdminGroup string `env:"ADMIN_GROUP" envDefault:"m360-admins"`
}

// Sanitize applies guardrails to authentication configuration values.
func (a *AuthConfig) Sanitize() {
	if a.Directory.Latency < 0 {
		a.Directory.Latency = 0
	}
	a.AdminGroup = strings.TrimSpace(a.AdminGroup)
	if a.SlotKey = strings.TrimSpace(a.SlotKey); a.SlotKey == "" {
		a.SlotKey = "session:current"
	}
}
