package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	domainauth "github.com/monastery360/m360-api/internal/domain/auth"
	"github.com/monastery360/m360-api/internal/observability/metrics"
	"github.com/monastery360/m360-api/internal/observability/statsd"
	"github.com/monastery360/m360-api/internal/ports"
)

// SessionStoreOptions groups dependencies for SessionStore.
type SessionStoreOptions struct {
	Gateway ports.SessionGateway
	Logger  *slog.Logger
	// Metrics is optional; when nil no metrics are emitted.
	Metrics statsd.Sink
}

// SessionStore mediates between consumers and the session gateway. It owns
// the publishable session state and the loading flag, and guarantees
// consumers never observe a torn state: the loading flag is true exactly
// while at least one gateway call is outstanding.
//
// Identity-mutating operations carry a monotonic sequence number. When an
// operation completes, its result is published only if no higher-sequence
// operation has published already. This fences the race where a
// short-latency logout issued after a long-latency login would otherwise
// be overwritten by the login's late completion.
type SessionStore struct {
	gateway ports.SessionGateway
	logger  *slog.Logger
	metrics statsd.Sink

	mu          sync.Mutex
	state       domainauth.SessionState
	observers   map[int]ports.SessionObserver
	nextObsID   int
	inFlight    int
	seq         uint64
	published   uint64
	initialized bool
	pending     []notification
	dispatching bool
}

// notification is a queued observer delivery, snapshotted at publish time.
type notification struct {
	state     domainauth.SessionState
	observers []ports.SessionObserver
}

// NewSessionStore constructs a SessionStore. The state starts as Unknown
// until Initialize runs.
func NewSessionStore(opts SessionStoreOptions) *SessionStore {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionStore{
		gateway:   opts.Gateway,
		logger:    logger,
		metrics:   opts.Metrics,
		state:     domainauth.Unknown(),
		observers: make(map[int]ports.SessionObserver),
	}
}

// Initialize restores the session from the gateway's current-identity slot
// and publishes absent or present accordingly. It runs exactly once; later
// calls are no-ops.
func (s *SessionStore) Initialize() {
	s.mu.Lock()
	if s.initialized {
		s.mu.Unlock()
		return
	}
	s.initialized = true
	s.mu.Unlock()

	seq := s.nextSeq()
	if id, ok := s.gateway.CurrentIdentity(); ok {
		s.publish(seq, domainauth.Present(id))
		return
	}
	s.publish(seq, domainauth.Absent())
}

// Login verifies the credentials through the gateway and publishes the
// resulting identity. On failure the session state is left untouched and
// the error (normally ports.ErrInvalidCredentials) propagates to the
// caller.
func (s *SessionStore) Login(ctx context.Context, email, password string) (domainauth.Identity, error) {
	seq := s.begin()
	defer s.end()

	start := time.Now()
	identity, err := s.gateway.VerifyCredentials(ctx, email, password)
	if err != nil {
		metrics.EmitSessionOp(s.metrics, metrics.SessionMetric{Op: "login", Result: metrics.ResultError, Err: err})
		return domainauth.Identity{}, err
	}

	metrics.EmitSessionOp(s.metrics, metrics.SessionMetric{
		Op:       "login",
		Result:   metrics.ResultSuccess,
		Duration: time.Since(start),
	})
	s.publish(seq, domainauth.Present(identity))
	return identity, nil
}

// Signup creates a fresh identity through the gateway and publishes it.
func (s *SessionStore) Signup(ctx context.Context, name, email, password string) (domainauth.Identity, error) {
	seq := s.begin()
	defer s.end()

	identity, err := s.gateway.CreateIdentity(ctx, name, email, password)
	if err != nil {
		metrics.EmitSessionOp(s.metrics, metrics.SessionMetric{Op: "signup", Result: metrics.ResultError, Err: err})
		return domainauth.Identity{}, err
	}

	metrics.EmitSessionOp(s.metrics, metrics.SessionMetric{Op: "signup", Result: metrics.ResultSuccess})
	s.publish(seq, domainauth.Present(identity))
	return identity, nil
}

// Logout invalidates the session through the gateway and publishes absent.
// Logout is best-effort: gateway failures are logged, never surfaced, and
// the published state is absent regardless of the gateway outcome.
func (s *SessionStore) Logout(ctx context.Context) {
	seq := s.begin()
	defer s.end()

	if err := s.gateway.InvalidateSession(ctx); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Warn("session invalidation failed, forcing absent", "error", err)
	}

	metrics.EmitSessionOp(s.metrics, metrics.SessionMetric{Op: "logout", Result: metrics.ResultSuccess})
	s.publish(seq, domainauth.Absent())
}

// Refresh re-reads the gateway's current identity synchronously and
// republishes. It never fails; when the identity cannot be determined the
// state degrades to absent.
func (s *SessionStore) Refresh() {
	seq := s.nextSeq()
	if id, ok := s.gateway.CurrentIdentity(); ok {
		s.publish(seq, domainauth.Present(id))
		return
	}
	s.publish(seq, domainauth.Absent())
}

// RefreshToken requests a fresh opaque token from the gateway. An absent
// session yields an empty token and no error.
func (s *SessionStore) RefreshToken(ctx context.Context) (string, error) {
	return s.gateway.RefreshToken(ctx)
}

// State returns the currently published session state.
func (s *SessionStore) State() domainauth.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsLoading reports whether an identity-mutating gateway call is
// outstanding.
func (s *SessionStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight > 0
}

// Subscribe registers an observer for session state changes and returns an
// unsubscribe function. Observers are only notified when the published
// value actually changes; repeated publications of an equal state emit no
// event.
func (s *SessionStore) Subscribe(obs ports.SessionObserver) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = obs
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

// begin allocates an operation sequence number and raises the loading flag.
func (s *SessionStore) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.inFlight++
	return s.seq
}

func (s *SessionStore) end() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight--
}

func (s *SessionStore) nextSeq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// publish applies the state for the given sequence unless a
// higher-sequence operation has already published. Deliveries are queued
// and drained by a single dispatcher so observers see state changes in
// publish order; callbacks run without the lock held.
func (s *SessionStore) publish(seq uint64, state domainauth.SessionState) {
	s.mu.Lock()
	if seq < s.published {
		// A newer operation already completed; this result is stale.
		s.mu.Unlock()
		return
	}
	s.published = seq
	if state.Equal(s.state) {
		s.mu.Unlock()
		return
	}
	s.state = state
	observers := make([]ports.SessionObserver, 0, len(s.observers))
	for _, obs := range s.observers {
		observers = append(observers, obs)
	}
	s.pending = append(s.pending, notification{state: state, observers: observers})
	if s.dispatching {
		// The active dispatcher will drain this entry in order.
		s.mu.Unlock()
		return
	}
	s.dispatching = true
	for len(s.pending) > 0 {
		next := s.pending[0]
		s.pending = s.pending[1:]
		s.mu.Unlock()
		for _, obs := range next.observers {
			obs.SessionChanged(next.state)
		}
		s.mu.Lock()
	}
	s.dispatching = false
	s.mu.Unlock()
}
