package auth

// Package auth contains domain-level types for identities and sessions.
// It is pure and free of framework/adapter concerns.

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	RoleTourist Role = "tourist"
	RoleAdmin   Role = "admin"
)

// Valid reports whether the role is one of the known values.
// Identities with an unknown role must not pass the routing boundary.
func (r Role) Valid() bool {
	return r == RoleTourist || r == RoleAdmin
}

// DownloadQuality selects the audio-guide download quality tier.
type DownloadQuality string

const (
	DownloadQualityLow    DownloadQuality = "low"
	DownloadQualityMedium DownloadQuality = "medium"
	DownloadQualityHigh   DownloadQuality = "high"
)

// AudioGuideSettings holds audio-guide sub-settings inside Preferences.
type AudioGuideSettings struct {
	AutoPlay        bool            `json:"auto_play"`
	Volume          float64         `json:"volume"`
	NarratorVoice   string          `json:"narrator_voice"`
	DownloadQuality DownloadQuality `json:"download_quality"`
}

// Preferences is the fixed-shape per-identity settings bundle.
// It is constructed in exactly one place (DefaultPreferences) and is
// never reassembled ad hoc at call sites.
type Preferences struct {
	Language      string             `json:"language"`
	Notifications bool               `json:"notifications"`
	OfflineMode   bool               `json:"offline_mode"`
	AudioGuide    AudioGuideSettings `json:"audio_guide"`
}

// DefaultPreferences returns the preference bundle applied to every
// freshly created identity.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Language:      "en",
		Notifications: true,
		OfflineMode:   false,
		AudioGuide: AudioGuideSettings{
			AutoPlay:        true,
			Volume:          0.8,
			NarratorVoice:   "female_calm",
			DownloadQuality: DownloadQualityMedium,
		},
	}
}

// Identity represents the authenticated principal.
// The gateway mints it on successful login or signup; the session store
// holds at most one for the lifetime of the process session.
type Identity struct {
	ID          string       `json:"id"`
	Email       string       `json:"email"`
	Name        string       `json:"name"`
	Role        Role         `json:"role"`
	AvatarURL   string       `json:"avatar_url,omitempty"`
	Preferences *Preferences `json:"preferences,omitempty"`
}

// IsAdmin returns true if the identity carries the admin role.
func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }

// StateKind discriminates the three possible session states.
type StateKind string

const (
	// StateUnknown means the session has not been determined yet (startup only).
	StateUnknown StateKind = "unknown"
	// StateAbsent means no identity is authenticated.
	StateAbsent StateKind = "absent"
	// StatePresent means an identity is authenticated.
	StatePresent StateKind = "present"
)

// SessionState is the publishable tri-state session value. Exactly one of
// the three kinds holds at any time; Identity is set only when Kind is
// StatePresent. Transitions are unknown -> {absent|present} once at startup
// and absent <-> present thereafter.
type SessionState struct {
	Kind     StateKind `json:"kind"`
	Identity *Identity `json:"identity,omitempty"`
}

// Unknown returns the initial not-yet-determined state.
func Unknown() SessionState { return SessionState{Kind: StateUnknown} }

// Absent returns the unauthenticated state.
func Absent() SessionState { return SessionState{Kind: StateAbsent} }

// Present returns the authenticated state for the given identity.
func Present(id Identity) SessionState {
	return SessionState{Kind: StatePresent, Identity: &id}
}

// Equal reports whether two session states are observationally identical.
// The session store uses it to suppress duplicate publications.
func (s SessionState) Equal(other SessionState) bool {
	if s.Kind != other.Kind {
		return false
	}
	if s.Kind != StatePresent {
		return true
	}
	if s.Identity == nil || other.Identity == nil {
		return s.Identity == other.Identity
	}
	return s.Identity.ID == other.Identity.ID && s.Identity.Role == other.Identity.Role
}
