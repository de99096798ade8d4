package auth

import "testing"

func TestRouteFor(t *testing.T) {
	cases := []struct {
		name  string
		state SessionState
		want  Route
	}{
		{"unknown routes to loading", Unknown(), RouteLoading},
		{"absent routes to login", Absent(), RouteLogin},
		{"tourist routes to tourist", Present(Identity{ID: "1", Role: RoleTourist}), RouteTourist},
		{"admin routes to admin", Present(Identity{ID: "2", Role: RoleAdmin}), RouteAdmin},
		{"unknown role falls back to login", Present(Identity{ID: "3", Role: Role("owner")}), RouteLogin},
		{"present without identity falls back to login", SessionState{Kind: StatePresent}, RouteLogin},
	}
	for _, tc := range cases {
		if got := RouteFor(tc.state); got != tc.want {
			t.Errorf("%s: RouteFor() = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestRouteFor_Pure(t *testing.T) {
	state := Present(Identity{ID: "1", Role: RoleAdmin})
	first := RouteFor(state)
	for i := 0; i < 5; i++ {
		if got := RouteFor(state); got != first {
			t.Fatalf("RouteFor not stable: %q then %q", first, got)
		}
	}
}
