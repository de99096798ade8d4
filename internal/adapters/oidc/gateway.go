package oidc

// Package oidc provides an OIDC/OAuth2 SessionGateway for the m360 system.
// It satisfies the same contract as the mock directory gateway, but verifies
// credentials against a real identity provider using the resource-owner
// password grant and maps ID-token claims into a domain identity.

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	domainauth "github.com/monastery360/m360-api/internal/domain/auth"
	apperrors "github.com/monastery360/m360-api/internal/errors"
	"github.com/monastery360/m360-api/internal/ports"
)

// GatewayConfig holds configuration for the OIDC gateway.
type GatewayConfig struct {
	ClientID     string
	ClientSecret string
	Scope        string
	DiscoveryURL string
	// AdminGroup is the IdP group claim value mapped to the admin role.
	// Every other authenticated principal maps to tourist.
	AdminGroup string
	// Slot persists the current-identity slot shared with the session store.
	Slot ports.IdentitySlot
	// HTTPClient is optional and defaults to a 30s-timeout client.
	HTTPClient *http.Client
}

// Gateway implements ports.SessionGateway against an OIDC provider.
type Gateway struct {
	config     *oauth2.Config
	verifier   *gooidc.IDTokenVerifier
	adminGroup string
	slot       ports.IdentitySlot
}

var _ ports.SessionGateway = (*Gateway)(nil)

// NewGateway creates a new OIDC gateway. It performs a single discovery
// fetch against the configured issuer.
func NewGateway(cfg GatewayConfig) (*Gateway, error) {
	if cfg.ClientID == "" {
		return nil, errors.New("client ID is required")
	}
	if cfg.ClientSecret == "" {
		return nil, errors.New("client secret is required")
	}
	if cfg.DiscoveryURL == "" {
		return nil, errors.New("discovery URL is required")
	}
	if cfg.Slot == nil {
		return nil, errors.New("identity slot is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
	issuer := strings.TrimSuffix(cfg.DiscoveryURL, "/")
	issuer = strings.TrimSuffix(issuer, "/.well-known/openid-configuration")
	issuer = strings.TrimSuffix(issuer, ".well-known/openid-configuration")
	provider, err := gooidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("oidc new provider: %w", err)
	}

	return &Gateway{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Scopes:       strings.Fields(cfg.Scope),
			Endpoint:     provider.Endpoint(),
		},
		verifier:   provider.Verifier(&gooidc.Config{ClientID: cfg.ClientID}),
		adminGroup: cfg.AdminGroup,
		slot:       cfg.Slot,
	}, nil
}

// idTokenClaims is the subset of ID-token claims the gateway maps.
type idTokenClaims struct {
	Subject string   `json:"sub"`
	Email   string   `json:"email"`
	Name    string   `json:"name"`
	Picture string   `json:"picture"`
	Groups  []string `json:"groups"`
}

// VerifyCredentials exchanges the email/password pair for a token using the
// password grant, verifies the returned ID token, and establishes the
// mapped identity as current. Provider rejections surface as
// ports.ErrInvalidCredentials.
func (g *Gateway) VerifyCredentials(ctx context.Context, email, password string) (domainauth.Identity, error) {
	token, err := g.config.PasswordCredentialsToken(ctx, email, password)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil &&
			(retrieveErr.Response.StatusCode == http.StatusBadRequest ||
				retrieveErr.Response.StatusCode == http.StatusUnauthorized) {
			return domainauth.Identity{}, ports.ErrInvalidCredentials
		}
		return domainauth.Identity{}, fmt.Errorf("password grant: %w", err)
	}

	claims, err := g.extractClaims(ctx, token, email)
	if err != nil {
		return domainauth.Identity{}, err
	}

	identity := domainauth.Identity{
		ID:        claims.Subject,
		Email:     claims.Email,
		Name:      claims.Name,
		Role:      g.mapRole(claims.Groups),
		AvatarURL: claims.Picture,
	}
	if identity.Email == "" {
		identity.Email = email
	}

	if putErr := g.slot.Put(ctx, identity); putErr != nil {
		return domainauth.Identity{}, fmt.Errorf("store current identity: %w", putErr)
	}
	return identity, nil
}

// CreateIdentity is not supported: account creation belongs to the IdP.
func (g *Gateway) CreateIdentity(_ context.Context, _, _, _ string) (domainauth.Identity, error) {
	return domainauth.Identity{}, apperrors.Validation("identity creation is managed by the identity provider")
}

// InvalidateSession clears the current-identity slot.
func (g *Gateway) InvalidateSession(ctx context.Context) error {
	if err := g.slot.Clear(ctx); err != nil {
		return fmt.Errorf("clear current identity: %w", err)
	}
	return nil
}

// CurrentIdentity synchronously reads the slot.
func (g *Gateway) CurrentIdentity() (domainauth.Identity, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	id, ok, err := g.slot.Get(ctx)
	if err != nil || !ok {
		return domainauth.Identity{}, false
	}
	return id, true
}

// RefreshToken stamps a new opaque token when an identity is current.
func (g *Gateway) RefreshToken(_ context.Context) (string, error) {
	if _, ok := g.CurrentIdentity(); !ok {
		return "", nil
	}
	return "tok_" + uuid.NewString(), nil
}

func (g *Gateway) extractClaims(ctx context.Context, token *oauth2.Token, fallbackEmail string) (idTokenClaims, error) {
	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		// Some providers omit the ID token on the password grant; fall back
		// to a minimal identity keyed by email.
		return idTokenClaims{Subject: fallbackEmail, Email: fallbackEmail}, nil
	}

	idToken, err := g.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return idTokenClaims{}, fmt.Errorf("verify id_token: %w", err)
	}

	var claims idTokenClaims
	if claimsErr := idToken.Claims(&claims); claimsErr != nil {
		return idTokenClaims{}, fmt.Errorf("parse id_token claims: %w", claimsErr)
	}
	return claims, nil
}

func (g *Gateway) mapRole(groups []string) domainauth.Role {
	if g.adminGroup != "" {
		for _, group := range groups {
			if group == g.adminGroup {
				return domainauth.RoleAdmin
			}
		}
	}
	return domainauth.RoleTourist
}
