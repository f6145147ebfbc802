// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"strings"

	"github.com/canonical/onboarding-service/internal/apperr"
	httptypes "github.com/canonical/onboarding-service/internal/http/types"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/requestctx"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

const (
	LoginTypeHeader  = "X-Login-Type"
	defaultLoginType = types.LoginTypeGoogle
)

// errInvalidSession is ErrInvalidToken reported as 401 by middlewares.
var errInvalidSession = apperr.New(apperr.KindUnauthorized, apperr.ErrInvalidToken.Code, apperr.ErrInvalidToken.Message)

type Middleware struct {
	verifier VerifierInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authenticate verifies the bearer token when one is sent. Anonymous requests
// pass through, RequireUser rejects them where a caller is mandatory.
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			if r.Header.Get("Authorization") == "" {
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			token, found := getBearerToken(r.Header)
			if !found {
				httptypes.WriteError(w, r, apperr.ErrUnauthenticated, m.logger)
				return
			}

			loginType := types.LoginType(r.Header.Get(LoginTypeHeader))
			if loginType == "" {
				loginType = defaultLoginType
			}

			principal, err := m.verifier.VerifyToken(ctx, token, loginType)
			if err != nil {
				m.logger.Debugf("token verification failed: %v", err)
				if apperr.KindOf(err) == apperr.KindValidation {
					httptypes.WriteError(w, r, err, m.logger)
					return
				}
				httptypes.WriteError(w, r, errInvalidSession.Wrap(err), m.logger)
				return
			}

			requestctx.FromContext(ctx).SetPrincipal(principal)
			next.ServeHTTP(w, r.WithContext(WithPrincipal(ctx, principal)))
		})
	}
}

// RequireUser rejects requests that Authenticate left anonymous.
func (m *Middleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := PrincipalFrom(r.Context()); !ok {
			httptypes.WriteError(w, r, apperr.ErrUnauthenticated, m.logger)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func getBearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(bearer, "Bearer "))
	return token, token != ""
}

func NewMiddleware(verifier VerifierInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		verifier: verifier,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
