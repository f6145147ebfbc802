// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/onboarding-service/internal/apperr"
	httptypes "github.com/canonical/onboarding-service/internal/http/types"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

const (
	activityActive = "active"
	activityIdle   = "idle"
)

type HeartbeatResponse struct {
	Status           string `json:"status"`
	SessionToTimeout int64  `json:"session_to_timeout"`
	UserState        string `json:"user_state"`
	LoginType        string `json:"login_type"`
	Token            string `json:"token,omitempty"`
}

type API struct {
	verifier      VerifierInterface
	issuer        TokenIssuerInterface
	refreshWindow time.Duration
	now           func() time.Time

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/auth/heartbeat", a.heartbeat)
}

// heartbeat reports the remaining session time and slides credentials
// sessions of active users that are about to expire.
func (a *API) heartbeat(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "authentication.API.heartbeat")
	defer span.End()

	if r.Header.Get("Authorization") == "" {
		httptypes.WriteJSON(w, http.StatusUnauthorized, map[string]string{"message": "Access denied. No token provided."})
		return
	}

	loginType := types.LoginType(r.Header.Get(LoginTypeHeader))
	if loginType == "" {
		httptypes.WriteError(w, r, apperr.ErrMissingLoginType, a.logger)
		return
	}

	token, ok := getBearerToken(r.Header)
	if !ok {
		httptypes.WriteError(w, r, apperr.ErrUnauthenticated, a.logger)
		return
	}

	principal, err := a.verifier.VerifyToken(ctx, token, loginType)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindUnknown {
			err = apperr.ErrInvalidToken.Wrap(err)
		}
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	state := r.URL.Query().Get("userActivityState")
	if state == "" {
		state = activityIdle
	}

	resp := HeartbeatResponse{
		Status:    "success",
		UserState: state,
		LoginType: string(loginType),
	}

	expiresAt := principal.ExpiresAt
	if loginType == types.LoginTypeCredentials && state == activityActive && expiresAt.Sub(a.now()) < a.refreshWindow {
		refreshed, newExpiry, err := a.issuer.IssueToken(ctx, principal)
		if err != nil {
			httptypes.WriteError(w, r, err, a.logger)
			return
		}
		resp.Token = refreshed
		expiresAt = newExpiry
	}

	if remaining := expiresAt.Sub(a.now()); remaining > 0 {
		resp.SessionToTimeout = int64(remaining.Seconds())
	}

	httptypes.WriteJSON(w, http.StatusOK, resp)
}

func NewAPI(verifier VerifierInterface, issuer TokenIssuerInterface, refreshWindow time.Duration, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.verifier = verifier
	a.issuer = issuer
	a.refreshWindow = refreshWindow
	a.now = time.Now

	a.tracer = tracer
	a.logger = logger

	return a
}
