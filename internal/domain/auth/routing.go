package auth

// Route is the navigation target derived from a session state.
type Route string

const (
	// RouteLoading renders a placeholder while the session is undetermined.
	RouteLoading Route = "loading"
	// RouteLogin is the unauthenticated entry point.
	RouteLogin Route = "login"
	// RouteTourist is the tourist navigation root.
	RouteTourist Route = "tourist"
	// RouteAdmin is the admin navigation root.
	RouteAdmin Route = "admin"
)

// RouteFor maps a session state to its navigation target. It is a pure
// function: evaluating it repeatedly on the same state yields the same
// route and implies no side effects. Identities with an unrecognized role
// fall back to the unauthenticated entry point.
func RouteFor(state SessionState) Route {
	switch state.Kind {
	case StateUnknown:
		return RouteLoading
	case StatePresent:
		if state.Identity == nil {
			return RouteLogin
		}
		switch state.Identity.Role {
		case RoleTourist:
			return RouteTourist
		case RoleAdmin:
			return RouteAdmin
		default:
			return RouteLogin
		}
	case StateAbsent:
		return RouteLogin
	default:
		return RouteLogin
	}
}
