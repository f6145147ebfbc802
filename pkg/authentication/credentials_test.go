// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/onboarding-service/internal/apperr"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

func newCredentialsVerifier(secret string, now time.Time) *CredentialsVerifier {
	v := NewCredentialsVerifier(secret, time.Hour, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
	v.now = func() time.Time { return now }
	return v
}

func TestCredentialsVerifier_RoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	v := newCredentialsVerifier("secret", now)

	token, expiresAt, err := v.IssueToken(context.Background(), &types.Principal{ID: "kid-1", Email: "a@example.com", Name: "Ada"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !expiresAt.Equal(now.Add(time.Hour)) {
		t.Fatalf("expected a fixed one hour lifetime, got %s", expiresAt)
	}

	p, err := v.VerifyToken(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.ID != "kid-1" || p.Email != "a@example.com" || p.Name != "Ada" || p.LoginType != types.LoginTypeCredentials {
		t.Fatalf("unexpected principal: %+v", p)
	}
	if !p.ExpiresAt.Equal(expiresAt) {
		t.Fatalf("expected expiry %s, got %s", expiresAt, p.ExpiresAt)
	}
}

func TestCredentialsVerifier_Rejects(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer := newCredentialsVerifier("secret", now)

	valid, _, _ := issuer.IssueToken(context.Background(), &types.Principal{ID: "kid-1"})

	noneToken, _ := jwt.NewWithClaims(jwt.SigningMethodNone, SessionClaims{
		UserID:           "kid-1",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	noExpiry, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{UserID: "kid-1"}).SignedString([]byte("secret"))

	tests := []struct {
		name     string
		verifier *CredentialsVerifier
		token    string
	}{
		{name: "wrong secret", verifier: newCredentialsVerifier("other", now), token: valid},
		{name: "expired", verifier: newCredentialsVerifier("secret", now.Add(2*time.Hour)), token: valid},
		{name: "alg none", verifier: issuer, token: noneToken},
		{name: "missing expiry", verifier: issuer, token: noExpiry},
		{name: "garbage", verifier: issuer, token: "not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.verifier.VerifyToken(context.Background(), tt.token)
			if !errors.Is(err, apperr.ErrInvalidToken) {
				t.Fatalf("expected invalid_token, got %v", err)
			}
		})
	}
}
