// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/onboarding-service/internal/apperr"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

var (
	_ TokenVerifierInterface = (*ProviderVerifier)(nil)
	_ VerifierInterface      = (*Verifier)(nil)
)

// ProviderVerifier checks ID tokens issued by the external identity provider.
type ProviderVerifier struct {
	verifier *oidc.IDTokenVerifier

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *ProviderVerifier) VerifyToken(ctx context.Context, rawToken string) (*types.Principal, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.ProviderVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		v.logger.Debugf("provider token rejected: %v", err)
		return nil, apperr.ErrInvalidToken.Wrap(err)
	}

	var claims struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}

	if err := token.Claims(&claims); err != nil {
		v.logger.Debugf("Failed to extract claims: %v", err)
		return nil, apperr.ErrInvalidToken.Wrap(err)
	}

	return &types.Principal{
		ID:        token.Subject,
		Email:     claims.Email,
		Name:      claims.Name,
		LoginType: types.LoginTypeGoogle,
		ExpiresAt: token.Expiry,
	}, nil
}

func NewProviderVerifier(verifier *oidc.IDTokenVerifier, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *ProviderVerifier {
	return &ProviderVerifier{
		verifier: verifier,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// Verifier routes a token to the verifier registered for its login type.
type Verifier struct {
	verifiers map[types.LoginType]TokenVerifierInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *Verifier) VerifyToken(ctx context.Context, rawToken string, loginType types.LoginType) (*types.Principal, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.Verifier.VerifyToken")
	defer span.End()

	tv, ok := v.verifiers[loginType]
	if !ok {
		return nil, apperr.ErrUnsupportedLoginType
	}

	principal, err := tv.VerifyToken(ctx, rawToken)
	if err != nil {
		v.logger.Security().AuthnFailure(string(loginType))
		return nil, err
	}

	return principal, nil
}

// NewVerifier registers credentials and provider verifiers; a nil provider
// leaves that login type unsupported.
func NewVerifier(credentials, provider TokenVerifierInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Verifier {
	v := new(Verifier)
	v.verifiers = make(map[types.LoginType]TokenVerifierInterface)

	if credentials != nil {
		v.verifiers[types.LoginTypeCredentials] = credentials
	}
	if provider != nil {
		v.verifiers[types.LoginTypeGoogle] = provider
	}

	v.tracer = tracer
	v.monitor = monitor
	v.logger = logger

	return v
}
