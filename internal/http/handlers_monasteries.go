// Package httpx provides the JSON API handlers and routing for the m360
// backend.
package httpx

import (
	"net/http"
	"strconv"

	"github.com/monastery360/m360-api/internal/domain/model"
	"github.com/monastery360/m360-api/internal/service"
)

// MonasteryHandlers provides HTTP handlers for catalog operations.
type MonasteryHandlers struct {
	Svc           *service.MonasteryService
	ManuscriptSvc *service.ManuscriptService
}

// List handles GET /api/monasteries. A `q` parameter switches to search.
func (h *MonasteryHandlers) List(w http.ResponseWriter, r *http.Request) {
	opts := model.MonasteriesListOptions{
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}

	var (
		out []*model.Monastery
		err error
	)
	if q := r.URL.Query().Get("q"); q != "" {
		out, err = h.Svc.Search(r.Context(), q, opts)
	} else {
		out, err = h.Svc.List(r.Context(), opts)
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// GetByID handles GET /api/monasteries/{id}.
func (h *MonasteryHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	m, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, m)
}

// Attractions handles GET /api/monasteries/{id}/attractions.
func (h *MonasteryHandlers) Attractions(w http.ResponseWriter, r *http.Request) {
	out, err := h.Svc.NearbyAttractions(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// Manuscripts handles GET /api/monasteries/{id}/manuscripts.
func (h *MonasteryHandlers) Manuscripts(w http.ResponseWriter, r *http.Request) {
	out, err := h.ManuscriptSvc.ListByMonastery(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// Create handles POST /api/monasteries (admin only).
func (h *MonasteryHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateMonasteryRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	m, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, m)
}

// queryInt parses a non-negative integer query parameter; malformed or
// missing values collapse to zero and take the handler defaults.
func queryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
