package httpx

import (
	"errors"
	"net/http"

	domainauth "github.com/monastery360/m360-api/internal/domain/auth"
	"github.com/monastery360/m360-api/internal/ports"
	"github.com/monastery360/m360-api/internal/service"
)

// AuthHandlers provides HTTP handlers for session operations.
type AuthHandlers struct {
	Store *service.SessionStore
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// sessionResponse is the wire shape of GET /auth/session.
type sessionResponse struct {
	State    domainauth.StateKind `json:"state"`
	Route    domainauth.Route     `json:"route"`
	Identity *domainauth.Identity `json:"identity,omitempty"`
	Loading  bool                 `json:"loading"`
}

// Login handles POST /auth/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	identity, err := h.Store.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ports.ErrInvalidCredentials) {
			WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "invalid_credentials", Err: err})
			return
		}
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, identity)
}

// Signup handles POST /auth/signup.
func (h *AuthHandlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	identity, err := h.Store.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, identity)
}

// Logout handles POST /auth/logout. It always succeeds: gateway failures
// still leave the session absent.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.Store.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// Session handles GET /auth/session, reporting the published state, the
// route derived from it, and the loading flag.
func (h *AuthHandlers) Session(w http.ResponseWriter, _ *http.Request) {
	state := h.Store.State()
	WriteJSON(w, http.StatusOK, sessionResponse{
		State:    state.Kind,
		Route:    domainauth.RouteFor(state),
		Identity: state.Identity,
		Loading:  h.Store.IsLoading(),
	})
}

// RefreshToken handles POST /auth/refresh. An absent session yields an
// empty token.
func (h *AuthHandlers) RefreshToken(w http.ResponseWriter, r *http.Request) {
	token, err := h.Store.RefreshToken(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"token": token})
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("POST /auth/login", h.Login)
	mux.HandleFunc("POST /auth/signup", h.Signup)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("POST /auth/refresh", h.RefreshToken)
	mux.HandleFunc("GET /auth/session", h.Session)
}
