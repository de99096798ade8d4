package httpx

import (
	"errors"
	"net/http"

	"github.com/monastery360/m360-api/internal/domain/model"
	"github.com/monastery360/m360-api/internal/service"
)

// BookingHandlers provides HTTP handlers for booking operations. All
// routes require an authenticated session; the admin listing additionally
// requires the admin role.
type BookingHandlers struct {
	Svc *service.BookingService
}

// Create handles POST /api/bookings. The user id comes from the session,
// never from the payload.
func (h *BookingHandlers) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIdentityFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	var req model.CreateBookingRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	req.UserID = id.ID

	booking, err := h.Svc.BookVisit(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, booking)
}

// List handles GET /api/bookings, scoped to the session's user.
func (h *BookingHandlers) List(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIdentityFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	opts := model.BookingsListOptions{
		Status: model.BookingStatus(r.URL.Query().Get("status")),
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}
	out, err := h.Svc.ListForUser(r.Context(), id.ID, opts)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// GetByID handles GET /api/bookings/{id}. Non-admin callers only see
// their own bookings; anything else reads as not found.
func (h *BookingHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIdentityFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	booking, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !id.IsAdmin() && booking.UserID != id.ID {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errors.New("booking not found")})
		return
	}
	WriteJSON(w, http.StatusOK, booking)
}

// Cancel handles POST /api/bookings/{id}/cancel. Cancelling an already
// cancelled booking is a no-op success.
func (h *BookingHandlers) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIdentityFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	owner := id.ID
	if id.IsAdmin() {
		// Admins may cancel any booking.
		owner = ""
	}
	booking, err := h.Svc.Cancel(r.Context(), r.PathValue("id"), owner)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, booking)
}

// ListAll handles GET /api/admin/bookings (admin only).
func (h *BookingHandlers) ListAll(w http.ResponseWriter, r *http.Request) {
	opts := model.BookingsListOptions{
		UserID: r.URL.Query().Get("user_id"),
		Status: model.BookingStatus(r.URL.Query().Get("status")),
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}
	out, err := h.Svc.ListAll(r.Context(), opts)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}
