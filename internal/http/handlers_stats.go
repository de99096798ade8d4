package httpx

import (
	"net/http"

	"github.com/monastery360/m360-api/internal/service"
)

// StatsHandlers provides the admin dashboard endpoint.
type StatsHandlers struct {
	Svc *service.StatsService
}

// AdminStats handles GET /api/admin/stats (admin only).
func (h *StatsHandlers) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.AdminStats(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, stats)
}
