// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/onboarding-service/internal/apperr"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

var (
	_ TokenVerifierInterface = (*CredentialsVerifier)(nil)
	_ TokenIssuerInterface   = (*CredentialsVerifier)(nil)
)

// SessionClaims is the payload of self issued session tokens.
type SessionClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// CredentialsVerifier verifies and issues HS256 session tokens signed with a
// shared secret.
type CredentialsVerifier struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *CredentialsVerifier) VerifyToken(ctx context.Context, rawToken string) (*types.Principal, error) {
	_, span := v.tracer.Start(ctx, "authentication.CredentialsVerifier.VerifyToken")
	defer span.End()

	claims := new(SessionClaims)
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)

	_, err := parser.ParseWithClaims(rawToken, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		v.logger.Debugf("credentials token rejected: %v", err)
		return nil, apperr.ErrInvalidToken.Wrap(err)
	}

	if claims.UserID == "" {
		return nil, apperr.ErrInvalidToken.Wrap(errors.New("missing id claim"))
	}

	return &types.Principal{
		ID:        claims.UserID,
		Email:     claims.Email,
		Name:      claims.Name,
		LoginType: types.LoginTypeCredentials,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (v *CredentialsVerifier) IssueToken(ctx context.Context, p *types.Principal) (string, time.Time, error) {
	_, span := v.tracer.Start(ctx, "authentication.CredentialsVerifier.IssueToken")
	defer span.End()

	now := v.now()
	expiresAt := now.Add(v.lifetime)

	claims := SessionClaims{
		UserID: p.ID,
		Email:  p.Email,
		Name:   p.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

func NewCredentialsVerifier(secret string, lifetime time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *CredentialsVerifier {
	v := new(CredentialsVerifier)

	v.secret = []byte(secret)
	v.lifetime = lifetime
	v.now = time.Now

	v.tracer = tracer
	v.monitor = monitor
	v.logger = logger

	return v
}
