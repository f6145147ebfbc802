// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var (
	otelHTTPClient = http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
)

// NewProvider creates an OIDC provider using the issuer's well-known configuration
func NewProvider(ctx context.Context, issuer string) (*oidc.Provider, error) {
	ctx = oidc.ClientContext(ctx, &otelHTTPClient)

	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %v", err)
	}

	return provider, nil
}

// oidcConfig checks the audience only when a client id is configured.
func oidcConfig(clientID string) *oidc.Config {
	return &oidc.Config{
		ClientID:          clientID,
		SkipClientIDCheck: clientID == "",
	}
}

// NewIDTokenVerifier builds the ID token verifier for the provider login
// type. A non empty jwksURL bypasses discovery.
func NewIDTokenVerifier(ctx context.Context, issuer, clientID, jwksURL string) (*oidc.IDTokenVerifier, error) {
	if issuer == "" {
		return nil, fmt.Errorf("issuer is required for provider authentication")
	}

	if jwksURL != "" {
		keySet := oidc.NewRemoteKeySet(oidc.ClientContext(ctx, &otelHTTPClient), jwksURL)
		return oidc.NewVerifier(issuer, keySet, oidcConfig(clientID)), nil
	}

	provider, err := NewProvider(ctx, issuer)
	if err != nil {
		return nil, err
	}

	return provider.Verifier(oidcConfig(clientID)), nil
}
