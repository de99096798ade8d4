package httpx

import (
	"net/http"

	"github.com/monastery360/m360-api/internal/domain/model"
	"github.com/monastery360/m360-api/internal/service"
)

// EventHandlers provides HTTP handlers for cultural event operations.
type EventHandlers struct {
	Svc    *service.EventService
	Filter *service.EventFilterService
}

// List handles GET /api/events. Supports monastery_id and upcoming filters.
func (h *EventHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := model.EventsListOptions{
		MonasteryID:  q.Get("monastery_id"),
		UpcomingOnly: q.Get("upcoming") == "true",
		Limit:        queryInt(r, "limit"),
		Offset:       queryInt(r, "offset"),
	}

	out, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// FilteredList handles GET /api/admin/events (admin only). A `filter`
// parameter carries a JMESPath expression evaluated against each event's
// JSON form, e.g. `tickets_required && type == 'workshop'`.
func (h *EventHandlers) FilteredList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := model.EventsListOptions{
		MonasteryID:  q.Get("monastery_id"),
		UpcomingOnly: q.Get("upcoming") == "true",
		Limit:        queryInt(r, "limit"),
		Offset:       queryInt(r, "offset"),
	}

	events, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out, err := h.Filter.Filter(events, q.Get("filter"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// GetByID handles GET /api/events/{id}.
func (h *EventHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	ev, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, ev)
}

// Create handles POST /api/events (admin only).
func (h *EventHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEventRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	ev, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, ev)
}

// Register handles POST /api/events/{id}/register. Registration fails
// with 409 once the event is at capacity.
func (h *EventHandlers) Register(w http.ResponseWriter, r *http.Request) {
	ev, err := h.Svc.Register(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, ev)
}
