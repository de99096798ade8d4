package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/monastery360/m360-api/internal/domain/auth"
	mockauth "github.com/monastery360/m360-api/internal/mocks/auth"
	"github.com/monastery360/m360-api/internal/ports"
)

func newTestStore(gw ports.SessionGateway) *SessionStore {
	return NewSessionStore(SessionStoreOptions{Gateway: gw})
}

func TestSessionStore_InitialStateIsUnknown(t *testing.T) {
	store := newTestStore(mockauth.NewMockSessionGateway())
	assert.Equal(t, domainauth.StateUnknown, store.State().Kind)
	assert.False(t, store.IsLoading())
}

func TestSessionStore_Initialize_NoStoredIdentity(t *testing.T) {
	store := newTestStore(mockauth.NewMockSessionGateway())
	store.Initialize()
	assert.Equal(t, domainauth.StateAbsent, store.State().Kind)
}

func TestSessionStore_Initialize_RestoresStoredIdentity(t *testing.T) {
	gw := mockauth.NewMockSessionGateway()
	gw.SetCurrent(domainauth.Identity{ID: "42", Role: domainauth.RoleAdmin})
	store := newTestStore(gw)

	store.Initialize()

	state := store.State()
	require.Equal(t, domainauth.StatePresent, state.Kind)
	require.NotNil(t, state.Identity)
	assert.Equal(t, "42", state.Identity.ID)
}

func TestSessionStore_Initialize_RunsOnce(t *testing.T) {
	gw := mockauth.NewMockSessionGateway()
	store := newTestStore(gw)
	store.Initialize()

	// A login after initialization must not be clobbered by a second call.
	_, err := store.Login(context.Background(), gw.DefaultIdentity.Email, gw.Password)
	require.NoError(t, err)
	store.Initialize()

	assert.Equal(t, domainauth.StatePresent, store.State().Kind)
}

func TestSessionStore_Login_Success(t *testing.T) {
	gw := mockauth.NewMockSessionGateway()
	store := newTestStore(gw)
	store.Initialize()

	identity, err := store.Login(context.Background(), gw.DefaultIdentity.Email, gw.Password)
	require.NoError(t, err)
	assert.Equal(t, gw.DefaultIdentity.ID, identity.ID)

	state := store.State()
	require.Equal(t, domainauth.StatePresent, state.Kind)
	assert.Equal(t, gw.DefaultIdentity.ID, state.Identity.ID)
	assert.False(t, store.IsLoading())
}

func TestSessionStore_Login_WrongPassword_StateUntouched(t *testing.T) {
	gw := mockauth.NewMockSessionGateway()
	store := newTestStore(gw)
	store.Initialize()

	_, err := store.Login(context.Background(), gw.DefaultIdentity.Email, "wrong")
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)
	assert.Equal(t, domainauth.StateAbsent, store.State().Kind)
}

func TestSessionStore_Signup_PublishesFreshTourist(t *testing.T) {
	gw := mockauth.NewMockSessionGateway()
	store := newTestStore(gw)
	store.Initialize()

	first, err := store.Signup(context.Background(), "Ana", "ana@example.com", "pw")
	require.NoError(t, err)
	second, err := store.Signup(context.Background(), "Bo", "bo@example.com", "pw")
	require.NoError(t, err)

	assert.Equal(t, domainauth.RoleTourist, first.Role)
	require.NotNil(t, first.Preferences)
	assert.Equal(t, "en", first.Preferences.Language)
	assert.NotEqual(t, first.ID, second.ID, "each signup mints a unique id")

	state := store.State()
	require.Equal(t, domainauth.StatePresent, state.Kind)
	assert.Equal(t, second.ID, state.Identity.ID)
}

func TestSessionStore_Logout_FailClosed(t *testing.T) {
	gw := mockauth.NewMockSessionGateway()
	gw.InvalidateFunc = func(context.Context) error {
		return errors.New("backend unreachable")
	}
	store := newTestStore(gw)
	store.Initialize()
	_, err := store.Login(context.Background(), gw.DefaultIdentity.Email, gw.Password)
	require.NoError(t, err)

	store.Logout(context.Background())

	assert.Equal(t, domainauth.StateAbsent, store.State().Kind,
		"state must be absent even when invalidation fails")
}

func TestSessionStore_RefreshToken(t *testing.T) {
	gw := mockauth.NewMockSessionGateway()
	store := newTestStore(gw)
	store.Initialize()

	tok, err := store.RefreshToken(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tok, "no token without a session")

	_, err = store.Login(context.Background(), gw.DefaultIdentity.Email, gw.Password)
	require.NoError(t, err)

	tok, err = store.RefreshToken(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
}

// A slow login that completes after a fast logout must not resurrect the
// session. The logout carries a higher sequence number, so the login's
// late publication is dropped.
func TestSessionStore_SlowLoginFastLogout_StaysAbsent(t *testing.T) {
	gw := mockauth.NewMockSessionGateway()
	loginStarted := make(chan struct{})
	releaseLogin := make(chan struct{})
	gw.VerifyFunc = func(context.Context, string, string) (domainauth.Identity, error) {
		close(loginStarted)
		<-releaseLogin
		return gw.DefaultIdentity, nil
	}
	store := newTestStore(gw)
	store.Initialize()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = store.Login(context.Background(), gw.DefaultIdentity.Email, gw.Password)
	}()

	<-loginStarted
	store.Logout(context.Background())
	close(releaseLogin)
	wg.Wait()

	assert.Equal(t, domainauth.StateAbsent, store.State().Kind,
		"stale login completion must not overwrite the later logout")
}

func TestSessionStore_IsLoading_WhileGatewayCallOutstanding(t *testing.T) {
	gw := mockauth.NewMockSessionGateway()
	verifyStarted := make(chan struct{})
	releaseVerify := make(chan struct{})
	gw.VerifyFunc = func(context.Context, string, string) (domainauth.Identity, error) {
		close(verifyStarted)
		<-releaseVerify
		return gw.DefaultIdentity, nil
	}
	store := newTestStore(gw)
	store.Initialize()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = store.Login(context.Background(), gw.DefaultIdentity.Email, gw.Password)
	}()

	<-verifyStarted
	assert.True(t, store.IsLoading())
	close(releaseVerify)
	<-done
	assert.False(t, store.IsLoading())
}

func TestSessionStore_Subscribe_NotifiesOnChange(t *testing.T) {
	gw := mockauth.NewMockSessionGateway()
	store := newTestStore(gw)

	var mu sync.Mutex
	var seen []domainauth.StateKind
	unsubscribe := store.Subscribe(ports.SessionObserverFunc(func(state domainauth.SessionState) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, state.Kind)
	}))
	defer unsubscribe()

	store.Initialize()
	_, err := store.Login(context.Background(), gw.DefaultIdentity.Email, gw.Password)
	require.NoError(t, err)
	store.Logout(context.Background())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []domainauth.StateKind{
		domainauth.StateAbsent,
		domainauth.StatePresent,
		domainauth.StateAbsent,
	}, seen)
}

func TestSessionStore_Subscribe_DeduplicatesEqualStates(t *testing.T) {
	gw := mockauth.NewMockSessionGateway()
	store := newTestStore(gw)
	store.Initialize()

	var mu sync.Mutex
	notifications := 0
	unsubscribe := store.Subscribe(ports.SessionObserverFunc(func(domainauth.SessionState) {
		mu.Lock()
		defer mu.Unlock()
		notifications++
	}))
	defer unsubscribe()

	// Refresh republishes absent repeatedly; observers see nothing new.
	store.Refresh()
	store.Refresh()
	store.Logout(context.Background())

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, notifications)
}

func TestSessionStore_Unsubscribe_StopsNotifications(t *testing.T) {
	gw := mockauth.NewMockSessionGateway()
	store := newTestStore(gw)
	store.Initialize()

	var mu sync.Mutex
	notifications := 0
	unsubscribe := store.Subscribe(ports.SessionObserverFunc(func(domainauth.SessionState) {
		mu.Lock()
		defer mu.Unlock()
		notifications++
	}))
	unsubscribe()

	_, err := store.Login(context.Background(), gw.DefaultIdentity.Email, gw.Password)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, notifications)
}

func TestSessionStore_Subscribe_NestedPublishStaysOrdered(t *testing.T) {
	gw := mockauth.NewMockSessionGateway()
	store := newTestStore(gw)

	var mu sync.Mutex
	var seen []domainauth.StateKind
	unsubscribe := store.Subscribe(ports.SessionObserverFunc(func(state domainauth.SessionState) {
		mu.Lock()
		seen = append(seen, state.Kind)
		mu.Unlock()
		// A logout triggered from inside a callback must be delivered
		// after the callback that triggered it, never interleaved.
		if state.Kind == domainauth.StatePresent {
			store.Logout(context.Background())
		}
	}))
	defer unsubscribe()

	store.Initialize()
	_, err := store.Login(context.Background(), gw.DefaultIdentity.Email, gw.Password)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []domainauth.StateKind{
		domainauth.StateAbsent,
		domainauth.StatePresent,
		domainauth.StateAbsent,
	}, seen)
	assert.Equal(t, domainauth.StateAbsent, store.State().Kind)
}

func TestSessionStore_Subscribe_ConcurrentPublishesDeliverInOrder(t *testing.T) {
	gw := mockauth.NewMockSessionGateway()
	store := newTestStore(gw)
	store.Initialize()

	var mu sync.Mutex
	// Baseline matches the state published by Initialize.
	last := domainauth.StateAbsent
	unsubscribe := store.Subscribe(ports.SessionObserverFunc(func(state domainauth.SessionState) {
		mu.Lock()
		defer mu.Unlock()
		last = state.Kind
	}))
	defer unsubscribe()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Login(context.Background(), gw.DefaultIdentity.Email, gw.Password)
			store.Logout(context.Background())
		}()
	}
	wg.Wait()

	// The final callback must match the final published state.
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, store.State().Kind, last)
}

func TestSessionStore_Refresh_RoundTripsLoginIdentity(t *testing.T) {
	gw := mockauth.NewMockSessionGateway()
	store := newTestStore(gw)
	store.Initialize()

	identity, err := store.Login(context.Background(), gw.DefaultIdentity.Email, gw.Password)
	require.NoError(t, err)

	store.Refresh()

	state := store.State()
	require.Equal(t, domainauth.StatePresent, state.Kind)
	require.NotNil(t, state.Identity)
	assert.Equal(t, identity.ID, state.Identity.ID)
	assert.Equal(t, identity.Role, state.Identity.Role)
}

func TestSessionStore_Refresh_DegradesToAbsent(t *testing.T) {
	gw := mockauth.NewMockSessionGateway()
	store := newTestStore(gw)
	store.Initialize()
	_, err := store.Login(context.Background(), gw.DefaultIdentity.Email, gw.Password)
	require.NoError(t, err)

	// Simulate the backend losing the identity out of band.
	require.NoError(t, gw.InvalidateSession(context.Background()))
	store.Refresh()

	assert.Equal(t, domainauth.StateAbsent, store.State().Kind)
}

func TestSessionStore_ConcurrentLogins_NoTornState(t *testing.T) {
	gw := mockauth.NewMockSessionGateway()
	gw.VerifyFunc = func(context.Context, string, string) (domainauth.Identity, error) {
		time.Sleep(time.Millisecond)
		return gw.DefaultIdentity, nil
	}
	store := newTestStore(gw)
	store.Initialize()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Login(context.Background(), gw.DefaultIdentity.Email, gw.Password)
		}()
	}
	wg.Wait()

	state := store.State()
	require.Equal(t, domainauth.StatePresent, state.Kind)
	assert.Equal(t, gw.DefaultIdentity.ID, state.Identity.ID)
	assert.False(t, store.IsLoading())
}
