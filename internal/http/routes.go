package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/monastery360/m360-api/internal/domain/auth"
	"github.com/monastery360/m360-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Sessions    *service.SessionStore
	Monasteries *service.MonasteryService
	Manuscripts *service.ManuscriptService
	Events      *service.EventService
	Bookings    *service.BookingService
	Stats       *service.StatsService
	// Filter is optional; a default JMESPath evaluator is created when nil.
	Filter *service.EventFilterService
	Logger *slog.Logger
}

// NewRouter creates and configures the HTTP router. Middleware order is
// Recover outermost, then Logging, then the mux; per-route guards are
// applied at registration.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	filterSvc := services.Filter
	if filterSvc == nil {
		filterSvc = service.NewEventFilterService(service.EventFilterServiceOptions{})
	}

	mux := http.NewServeMux()

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	registerAuthRoutes(mux, &AuthHandlers{Store: services.Sessions})

	requireSession := RequireSession(services.Sessions)
	requireAdmin := RequireRole(services.Sessions, domainauth.RoleAdmin)

	monasteryHandlers := &MonasteryHandlers{Svc: services.Monasteries, ManuscriptSvc: services.Manuscripts}
	mux.HandleFunc("GET /api/monasteries", monasteryHandlers.List)
	mux.HandleFunc("GET /api/monasteries/{id}", monasteryHandlers.GetByID)
	mux.HandleFunc("GET /api/monasteries/{id}/attractions", monasteryHandlers.Attractions)
	mux.HandleFunc("GET /api/monasteries/{id}/manuscripts", monasteryHandlers.Manuscripts)
	mux.Handle("POST /api/monasteries", requireAdmin(http.HandlerFunc(monasteryHandlers.Create)))

	manuscriptHandlers := &ManuscriptHandlers{Svc: services.Manuscripts}
	mux.HandleFunc("GET /api/manuscripts/{id}", manuscriptHandlers.GetByID)
	mux.Handle("POST /api/manuscripts", requireAdmin(http.HandlerFunc(manuscriptHandlers.Create)))

	eventHandlers := &EventHandlers{Svc: services.Events, Filter: filterSvc}
	mux.HandleFunc("GET /api/events", eventHandlers.List)
	mux.HandleFunc("GET /api/events/{id}", eventHandlers.GetByID)
	mux.Handle("POST /api/events", requireAdmin(http.HandlerFunc(eventHandlers.Create)))
	mux.Handle("POST /api/events/{id}/register", requireSession(http.HandlerFunc(eventHandlers.Register)))
	mux.Handle("GET /api/admin/events", requireAdmin(http.HandlerFunc(eventHandlers.FilteredList)))

	bookingHandlers := &BookingHandlers{Svc: services.Bookings}
	mux.Handle("POST /api/bookings", requireSession(http.HandlerFunc(bookingHandlers.Create)))
	mux.Handle("GET /api/bookings", requireSession(http.HandlerFunc(bookingHandlers.List)))
	mux.Handle("GET /api/bookings/{id}", requireSession(http.HandlerFunc(bookingHandlers.GetByID)))
	mux.Handle("POST /api/bookings/{id}/cancel", requireSession(http.HandlerFunc(bookingHandlers.Cancel)))
	mux.Handle("GET /api/admin/bookings", requireAdmin(http.HandlerFunc(bookingHandlers.ListAll)))

	statsHandlers := &StatsHandlers{Svc: services.Stats}
	mux.Handle("GET /api/admin/stats", requireAdmin(http.HandlerFunc(statsHandlers.AdminStats)))

	return Recover(logger)(Logging(logger)(mux))
}
