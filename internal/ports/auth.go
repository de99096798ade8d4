package ports

// Package ports defines interfaces (hexagonal ports) for session-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"
	"errors"

	domainauth "github.com/monastery360/m360-api/internal/domain/auth"
)

// ErrInvalidCredentials is returned by VerifyCredentials when the email is
// unknown or the password does not match. It is the only gateway error the
// session store surfaces to callers.
var ErrInvalidCredentials = errors.New("invalid credentials")

// SessionGateway is the sole authority for verifying credentials and
// minting identities. The mock directory adapter backs it in development;
// an OAuth2 password-grant adapter backs it against a real IdP.
type SessionGateway interface {
	// VerifyCredentials checks the email/password pair and establishes the
	// matching identity as current. Fails with ErrInvalidCredentials on
	// unknown email or password mismatch. No retry; the caller decides.
	VerifyCredentials(ctx context.Context, email, password string) (domainauth.Identity, error)

	// CreateIdentity mints a fresh tourist identity with a new unique id and
	// default preferences, and establishes it as current. The mock performs
	// no uniqueness check against existing emails.
	CreateIdentity(ctx context.Context, name, email, password string) (domainauth.Identity, error)

	// InvalidateSession clears the current identity. Best-effort from the
	// caller's perspective; the session store forces absent regardless.
	InvalidateSession(ctx context.Context) error

	// CurrentIdentity synchronously reads the last established identity.
	// Doubles as the session-restore mechanism at process start.
	CurrentIdentity() (domainauth.Identity, bool)

	// RefreshToken returns a newly stamped opaque token when an identity is
	// current, or empty when absent. Cosmetic; no expiry semantics.
	RefreshToken(ctx context.Context) (string, error)
}

// SessionObserver receives session state publications from the session
// store. Observers are notified only when the state value actually changes.
type SessionObserver interface {
	SessionChanged(state domainauth.SessionState)
}

// SessionObserverFunc adapts a function to the SessionObserver interface.
type SessionObserverFunc func(state domainauth.SessionState)

func (f SessionObserverFunc) SessionChanged(state domainauth.SessionState) { f(state) }

// IdentitySlot persists the single current-identity slot shared by gateway
// operations. The slot is the only session state the gateway keeps; only
// gateway operations may write it.
type IdentitySlot interface {
	Put(ctx context.Context, id domainauth.Identity) error
	Get(ctx context.Context) (domainauth.Identity, bool, error)
	Clear(ctx context.Context) error
}
