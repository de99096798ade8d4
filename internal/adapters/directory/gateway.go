package directory

// Package directory provides a static in-memory credential directory
// implementing ports.SessionGateway for local development and demos.
// It simulates network latency so the session store's loading and
// ordering semantics can be exercised without a real backend.

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	domainauth "github.com/monastery360/m360-api/internal/domain/auth"
	"github.com/monastery360/m360-api/internal/ports"
)

// Latency multipliers per operation class, modeled on the round-trip
// profile of the original mock backend (verify/create are the slowest,
// token refresh the fastest).
const (
	verifyLatencyFactor     = 1.0
	createLatencyFactor     = 1.0
	invalidateLatencyFactor = 0.5
	refreshLatencyFactor    = 0.3
)

// Account pairs a directory identity with its fixture password.
type Account struct {
	Identity domainauth.Identity
	Password string
}

// FixturePassword is the literal password every seeded directory account
// requires.
const FixturePassword = "123456"

// SeedAccounts returns the two canonical demo accounts: one tourist, one
// admin.
func SeedAccounts() []Account {
	return []Account{
		{
			Password: FixturePassword,
			Identity: domainauth.Identity{
				ID:          "1",
				Email:       "tourist@monastery.com",
				Name:        "Elena Rodriguez",
				Role:        domainauth.RoleTourist,
				AvatarURL:   "https://images.unsplash.com/photo-1494790108755-2616b612b913?w=150&h=150&fit=crop&crop=face",
				Preferences: domainauth.DefaultPreferences(),
			},
		},
		{
			Password: FixturePassword,
			Identity: domainauth.Identity{
				ID:        "2",
				Email:     "admin@monastery.com",
				Name:      "Brother Marcus",
				Role:      domainauth.RoleAdmin,
				AvatarURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
			},
		},
	}
}

// Config controls the directory gateway behavior.
type Config struct {
	// Accounts seeds the credential directory. Defaults to SeedAccounts.
	Accounts []Account
	// Latency is the base simulated round-trip delay. Zero disables the
	// delay entirely (useful in tests).
	Latency time.Duration
	// Slot persists the current-identity slot. Defaults to an in-process
	// memory slot.
	Slot ports.IdentitySlot
}

// Gateway implements ports.SessionGateway against a fixed account
// directory. All identity-establishing operations write the shared
// current-identity slot; nothing else does.
type Gateway struct {
	accounts map[string]Account
	slot     ports.IdentitySlot
	latency  time.Duration
}

var _ ports.SessionGateway = (*Gateway)(nil)

// NewGateway constructs a directory gateway from Config.
func NewGateway(cfg Config) *Gateway {
	accounts := cfg.Accounts
	if accounts == nil {
		accounts = SeedAccounts()
	}
	byEmail := make(map[string]Account, len(accounts))
	for _, a := range accounts {
		byEmail[strings.ToLower(a.Identity.Email)] = a
	}
	slot := cfg.Slot
	if slot == nil {
		slot = NewMemorySlot()
	}
	return &Gateway{accounts: byEmail, slot: slot, latency: cfg.Latency}
}

// VerifyCredentials looks up the email and checks the password, then
// establishes the matching identity as current.
func (g *Gateway) VerifyCredentials(ctx context.Context, email, password string) (domainauth.Identity, error) {
	if err := g.simulateLatency(ctx, verifyLatencyFactor); err != nil {
		return domainauth.Identity{}, err
	}

	acct, ok := g.accounts[strings.ToLower(email)]
	if !ok || acct.Password != password {
		return domainauth.Identity{}, ports.ErrInvalidCredentials
	}

	if err := g.slot.Put(ctx, acct.Identity); err != nil {
		return domainauth.Identity{}, fmt.Errorf("store current identity: %w", err)
	}
	return acct.Identity, nil
}

// CreateIdentity unconditionally mints a fresh tourist identity with
// default preferences and establishes it as current. It deliberately does
// not check the email against existing directory entries.
func (g *Gateway) CreateIdentity(ctx context.Context, name, email, _ string) (domainauth.Identity, error) {
	if err := g.simulateLatency(ctx, createLatencyFactor); err != nil {
		return domainauth.Identity{}, err
	}

	id := domainauth.Identity{
		ID:          uuid.NewString(),
		Email:       email,
		Name:        name,
		Role:        domainauth.RoleTourist,
		Preferences: domainauth.DefaultPreferences(),
	}
	if err := g.slot.Put(ctx, id); err != nil {
		return domainauth.Identity{}, fmt.Errorf("store current identity: %w", err)
	}
	return id, nil
}

// InvalidateSession clears the current-identity slot.
func (g *Gateway) InvalidateSession(ctx context.Context) error {
	if err := g.simulateLatency(ctx, invalidateLatencyFactor); err != nil {
		return err
	}
	if err := g.slot.Clear(ctx); err != nil {
		return fmt.Errorf("clear current identity: %w", err)
	}
	return nil
}

// CurrentIdentity synchronously reads the slot. Slot read failures are
// indistinguishable from absence here; the session store fails closed on
// them anyway.
func (g *Gateway) CurrentIdentity() (domainauth.Identity, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	id, ok, err := g.slot.Get(ctx)
	if err != nil || !ok {
		return domainauth.Identity{}, false
	}
	return id, true
}

// RefreshToken stamps a new opaque token when an identity is current.
// The token carries no expiry semantics.
func (g *Gateway) RefreshToken(ctx context.Context) (string, error) {
	if err := g.simulateLatency(ctx, refreshLatencyFactor); err != nil {
		return "", err
	}
	if _, ok := g.CurrentIdentity(); !ok {
		return "", nil
	}
	return "tok_" + uuid.NewString(), nil
}

// simulateLatency blocks for the scaled base latency or until the context
// is done. The delay is bounded; operations never hang indefinitely.
func (g *Gateway) simulateLatency(ctx context.Context, factor float64) error {
	if g.latency <= 0 {
		return nil
	}
	d := time.Duration(float64(g.latency) * factor)
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
