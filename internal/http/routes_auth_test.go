package httpx

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/monastery360/m360-api/internal/adapters/directory"
	domainauth "github.com/monastery360/m360-api/internal/domain/auth"
	"github.com/monastery360/m360-api/internal/mocks"
	"github.com/monastery360/m360-api/internal/service"
)

// routerFixture wires the router against an in-memory directory gateway
// and mock repositories.
type routerFixture struct {
	handler     http.Handler
	store       *service.SessionStore
	monasteries *mocks.MockMonasteryRepository
	manuscripts *mocks.MockManuscriptRepository
	events      *mocks.MockEventRepository
	bookings    *mocks.MockBookingRepository
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRouterFixture(t *testing.T, ctrl *gomock.Controller) *routerFixture {
	t.Helper()

	store := service.NewSessionStore(service.SessionStoreOptions{
		Gateway: directory.NewGateway(directory.Config{}),
		Logger:  discardLogger(),
	})
	store.Initialize()

	f := &routerFixture{
		store:       store,
		monasteries: mocks.NewMockMonasteryRepository(ctrl),
		manuscripts: mocks.NewMockManuscriptRepository(ctrl),
		events:      mocks.NewMockEventRepository(ctrl),
		bookings:    mocks.NewMockBookingRepository(ctrl),
	}

	logger := discardLogger()
	f.handler = NewRouter(RouterServices{
		Sessions:    store,
		Monasteries: service.NewMonasteryService(service.MonasteryServiceOptions{Repo: f.monasteries, Logger: logger}),
		Manuscripts: service.NewManuscriptService(service.ManuscriptServiceOptions{Repo: f.manuscripts}),
		Events:      service.NewEventService(service.EventServiceOptions{Repo: f.events}),
		Bookings: service.NewBookingService(service.BookingServiceOptions{
			Bookings:    f.bookings,
			Monasteries: f.monasteries,
			Events:      f.events,
		}),
		Stats: service.NewStatsService(service.StatsServiceOptions{
			Bookings:    f.bookings,
			Events:      f.events,
			Monasteries: f.monasteries,
		}),
		Logger: logger,
	})
	return f
}

func (f *routerFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

// doRaw sends the body bytes verbatim, without JSON encoding.
func (f *routerFixture) doRaw(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func (f *routerFixture) loginTourist(t *testing.T) {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/auth/login",
		map[string]string{"email": "tourist@monastery.com", "password": directory.FixturePassword})
	require.Equal(t, http.StatusOK, rec.Code)
}

func (f *routerFixture) loginAdmin(t *testing.T) {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/auth/login",
		map[string]string{"email": "admin@monastery.com", "password": directory.FixturePassword})
	require.Equal(t, http.StatusOK, rec.Code)
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestAuthRoutes_SessionLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRouterFixture(t, ctrl)

	// Before login the session is absent and routes to login.
	rec := f.do(t, http.MethodGet, "/auth/session", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	sess := decodeBody[sessionResponse](t, rec)
	assert.Equal(t, domainauth.StateAbsent, sess.State)
	assert.Equal(t, domainauth.RouteLogin, sess.Route)
	assert.Nil(t, sess.Identity)

	f.loginTourist(t)

	rec = f.do(t, http.MethodGet, "/auth/session", nil)
	sess = decodeBody[sessionResponse](t, rec)
	assert.Equal(t, domainauth.StatePresent, sess.State)
	assert.Equal(t, domainauth.RouteTourist, sess.Route)
	require.NotNil(t, sess.Identity)
	assert.Equal(t, "Elena Rodriguez", sess.Identity.Name)

	rec = f.do(t, http.MethodPost, "/auth/logout", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, http.MethodGet, "/auth/session", nil)
	sess = decodeBody[sessionResponse](t, rec)
	assert.Equal(t, domainauth.StateAbsent, sess.State)
}

func TestAuthRoutes_Login_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRouterFixture(t, ctrl)

	rec := f.do(t, http.MethodPost, "/auth/login",
		map[string]string{"email": "tourist@monastery.com", "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "invalid_credentials", body["error"])
}

func TestAuthRoutes_Login_MalformedJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRouterFixture(t, ctrl)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "invalid_json", body["error"])
}

func TestAuthRoutes_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRouterFixture(t, ctrl)

	rec := f.do(t, http.MethodPost, "/auth/signup",
		map[string]string{"name": "New Visitor", "email": "new@example.com", "password": "pw"})
	require.Equal(t, http.StatusCreated, rec.Code)

	id := decodeBody[domainauth.Identity](t, rec)
	assert.Equal(t, domainauth.RoleTourist, id.Role)
	assert.NotEmpty(t, id.ID)
	require.NotNil(t, id.Preferences)
	assert.Equal(t, "en", id.Preferences.Language)

	rec = f.do(t, http.MethodGet, "/auth/session", nil)
	sess := decodeBody[sessionResponse](t, rec)
	assert.Equal(t, domainauth.StatePresent, sess.State)
}

func TestAuthRoutes_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRouterFixture(t, ctrl)

	rec := f.do(t, http.MethodPost, "/auth/refresh", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Empty(t, body["token"], "no token without a session")

	f.loginTourist(t)

	rec = f.do(t, http.MethodPost, "/auth/refresh", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody[map[string]string](t, rec)
	assert.NotEmpty(t, body["token"])
}

func TestHealthz(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRouterFixture(t, ctrl)

	rec := f.do(t, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "ok", body["status"])
}
