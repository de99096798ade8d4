package auth

// Package auth contains simple hand-written test doubles for session ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"fmt"
	"sync"

	domainauth "github.com/monastery360/m360-api/internal/domain/auth"
	"github.com/monastery360/m360-api/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.SessionGateway = (*MockSessionGateway)(nil)
	_ ports.IdentitySlot   = (*MemoryIdentitySlot)(nil)
)

// MockSessionGateway simulates a credential backend for tests with
// per-operation hooks and deterministic defaults. Every hook is optional;
// unset hooks fall back to a simple in-memory current-identity model.
type MockSessionGateway struct {
	VerifyFunc     func(ctx context.Context, email, password string) (domainauth.Identity, error)
	CreateFunc     func(ctx context.Context, name, email, password string) (domainauth.Identity, error)
	InvalidateFunc func(ctx context.Context) error
	RefreshFunc    func(ctx context.Context) (string, error)

	// Deterministic values for predictable testing
	DefaultIdentity domainauth.Identity
	Password        string

	mu         sync.Mutex
	current    *domainauth.Identity
	callCounts map[string]int
}

// NewMockSessionGateway creates a MockSessionGateway with sensible defaults.
func NewMockSessionGateway() *MockSessionGateway {
	return &MockSessionGateway{
		Password: "123456",
		DefaultIdentity: domainauth.Identity{
			ID:          "mock-user-1",
			Email:       "mock.user@example.com",
			Name:        "Mock User",
			Role:        domainauth.RoleTourist,
			Preferences: domainauth.DefaultPreferences(),
		},
		callCounts: make(map[string]int),
	}
}

// Calls returns how many times the named operation ran.
func (m *MockSessionGateway) Calls(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCounts[op]
}

// SetCurrent pre-establishes an identity, as if a prior login survived.
func (m *MockSessionGateway) SetCurrent(id domainauth.Identity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = &id
}

func (m *MockSessionGateway) record(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCounts[op]++
}

func (m *MockSessionGateway) VerifyCredentials(ctx context.Context, email, password string) (domainauth.Identity, error) {
	m.record("verify")
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, email, password)
	}
	if email != m.DefaultIdentity.Email || password != m.Password {
		return domainauth.Identity{}, ports.ErrInvalidCredentials
	}
	m.SetCurrent(m.DefaultIdentity)
	return m.DefaultIdentity, nil
}

func (m *MockSessionGateway) CreateIdentity(ctx context.Context, name, email, password string) (domainauth.Identity, error) {
	m.record("create")
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, name, email, password)
	}
	m.mu.Lock()
	n := m.callCounts["create"]
	m.mu.Unlock()
	id := domainauth.Identity{
		ID:          fmt.Sprintf("mock-user-%d", n),
		Email:       email,
		Name:        name,
		Role:        domainauth.RoleTourist,
		Preferences: domainauth.DefaultPreferences(),
	}
	m.SetCurrent(id)
	return id, nil
}

func (m *MockSessionGateway) InvalidateSession(ctx context.Context) error {
	m.record("invalidate")
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx)
	}
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
	return nil
}

func (m *MockSessionGateway) CurrentIdentity() (domainauth.Identity, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return domainauth.Identity{}, false
	}
	return *m.current, true
}

func (m *MockSessionGateway) RefreshToken(ctx context.Context) (string, error) {
	m.record("refresh")
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return "", nil
	}
	return fmt.Sprintf("tok_mock-%d", m.callCounts["refresh"]), nil
}

// MemoryIdentitySlot is an in-memory identity slot for unit tests. Unlike
// the directory adapter's slot it can be scripted to fail.
type MemoryIdentitySlot struct {
	PutErr   error
	GetErr   error
	ClearErr error

	mu      sync.Mutex
	current *domainauth.Identity
}

// NewMemoryIdentitySlot creates an empty in-memory identity slot.
func NewMemoryIdentitySlot() *MemoryIdentitySlot {
	return &MemoryIdentitySlot{}
}

func (s *MemoryIdentitySlot) Put(_ context.Context, id domainauth.Identity) error {
	if s.PutErr != nil {
		return s.PutErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &id
	return nil
}

func (s *MemoryIdentitySlot) Get(_ context.Context) (domainauth.Identity, bool, error) {
	if s.GetErr != nil {
		return domainauth.Identity{}, false, s.GetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return domainauth.Identity{}, false, nil
	}
	return *s.current, true, nil
}

func (s *MemoryIdentitySlot) Clear(_ context.Context) error {
	if s.ClearErr != nil {
		return s.ClearErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	return nil
}
