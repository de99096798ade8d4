package oidc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/monastery360/m360-api/internal/adapters/directory"
	domainauth "github.com/monastery360/m360-api/internal/domain/auth"
)

func TestNewGateway_Validation(t *testing.T) {
	slot := directory.NewMemorySlot()

	tests := []struct {
		name    string
		cfg     GatewayConfig
		wantErr string
	}{
		{
			name:    "missing client ID",
			cfg:     GatewayConfig{ClientSecret: "s", DiscoveryURL: "https://idp.example.com", Slot: slot},
			wantErr: "client ID is required",
		},
		{
			name:    "missing client secret",
			cfg:     GatewayConfig{ClientID: "c", DiscoveryURL: "https://idp.example.com", Slot: slot},
			wantErr: "client secret is required",
		},
		{
			name:    "missing discovery URL",
			cfg:     GatewayConfig{ClientID: "c", ClientSecret: "s", Slot: slot},
			wantErr: "discovery URL is required",
		},
		{
			name:    "missing slot",
			cfg:     GatewayConfig{ClientID: "c", ClientSecret: "s", DiscoveryURL: "https://idp.example.com"},
			wantErr: "identity slot is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGateway(tt.cfg)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestGateway_MapRole(t *testing.T) {
	tests := []struct {
		name       string
		adminGroup string
		groups     []string
		want       domainauth.Role
	}{
		{
			name:       "member of admin group",
			adminGroup: "m360-admins",
			groups:     []string{"staff", "m360-admins"},
			want:       domainauth.RoleAdmin,
		},
		{
			name:       "not a member",
			adminGroup: "m360-admins",
			groups:     []string{"staff", "guides"},
			want:       domainauth.RoleTourist,
		},
		{
			name:       "no groups claim",
			adminGroup: "m360-admins",
			groups:     nil,
			want:       domainauth.RoleTourist,
		},
		{
			name:   "no admin group configured",
			groups: []string{"m360-admins"},
			want:   domainauth.RoleTourist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Gateway{adminGroup: tt.adminGroup}
			assert.Equal(t, tt.want, g.mapRole(tt.groups))
		})
	}
}
