package directory

import (
	"context"
	"sync"

	domainauth "github.com/monastery360/m360-api/internal/domain/auth"
	"github.com/monastery360/m360-api/internal/ports"
)

// MemorySlot is the default in-process identity slot. Session state kept
// here does not survive a process restart.
type MemorySlot struct {
	mu      sync.RWMutex
	current domainauth.Identity
	present bool
}

var _ ports.IdentitySlot = (*MemorySlot)(nil)

// NewMemorySlot creates an empty in-memory identity slot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

func (s *MemorySlot) Put(_ context.Context, id domainauth.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = id
	s.present = true
	return nil
}

func (s *MemorySlot) Get(_ context.Context) (domainauth.Identity, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.present {
		return domainauth.Identity{}, false, nil
	}
	return s.current, true, nil
}

func (s *MemorySlot) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = domainauth.Identity{}
	s.present = false
	return nil
}
