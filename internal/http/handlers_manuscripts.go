package httpx

import (
	"net/http"

	"github.com/monastery360/m360-api/internal/domain/model"
	"github.com/monastery360/m360-api/internal/service"
)

// ManuscriptHandlers provides HTTP handlers for the digitized archive.
type ManuscriptHandlers struct {
	Svc *service.ManuscriptService
}

// GetByID handles GET /api/manuscripts/{id}.
func (h *ManuscriptHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	m, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, m)
}

// Create handles POST /api/manuscripts (admin only).
func (h *ManuscriptHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateManuscriptRequest
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
