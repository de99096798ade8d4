package auth

import (
	"testing"
)

func TestRole_Valid(t *testing.T) {
	if !RoleTourist.Valid() || !RoleAdmin.Valid() {
		t.Fatalf("expected known roles to be valid")
	}
	if Role("guest").Valid() {
		t.Fatalf("did not expect unknown role to be valid")
	}
}

func TestIdentity_IsAdmin(t *testing.T) {
	if !(Identity{Role: RoleAdmin}).IsAdmin() {
		t.Fatalf("expected admin")
	}
	if (Identity{Role: RoleTourist}).IsAdmin() {
		t.Fatalf("did not expect admin")
	}
}

func TestDefaultPreferences(t *testing.T) {
	p := DefaultPreferences()
	if p.Language != "en" || !p.Notifications || p.OfflineMode {
		t.Fatalf("unexpected defaults: %+v", p)
	}
	if p.AudioGuide.DownloadQuality != DownloadQualityMedium {
		t.Fatalf("unexpected audio guide quality: %q", p.AudioGuide.DownloadQuality)
	}
}

func TestSessionState_Equal(t *testing.T) {
	a := Identity{ID: "1", Role: RoleTourist}
	b := Identity{ID: "2", Role: RoleTourist}
	sameAsA := Identity{ID: "1", Role: RoleTourist, Name: "renamed"}

	cases := []struct {
		name string
		x, y SessionState
		want bool
	}{
		{"unknown vs unknown", Unknown(), Unknown(), true},
		{"absent vs absent", Absent(), Absent(), true},
		{"unknown vs absent", Unknown(), Absent(), false},
		{"present vs absent", Present(a), Absent(), false},
		{"same identity", Present(a), Present(sameAsA), true},
		{"different identity", Present(a), Present(b), false},
		{"different role same id", Present(a), Present(Identity{ID: "1", Role: RoleAdmin}), false},
	}
	for _, tc := range cases {
		if got := tc.x.Equal(tc.y); got != tc.want {
			t.Errorf("%s: Equal() = %v, want %v", tc.name, got, tc.want)
		}
	}
}
