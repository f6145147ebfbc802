// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package verification

import (
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/onboarding-service/internal/apperr"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/tracing"
)

// base64url encoding of 32 random bytes, no padding
var tokenFormat = regexp.MustCompile(`^[A-Za-z0-9_-]{43}$`)

const (
	messageInvalidFormat = "invalid_token_format"
	messageUnexpected    = "unexpected_error_occurred"
)

type API struct {
	service      ServiceInterface
	redirectBase string

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/verify/{token}", a.handleVerify)
}

func (a *API) handleVerify(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "verification.API.handleVerify")
	defer span.End()

	token := chi.URLParam(r, "token")
	if !tokenFormat.MatchString(token) {
		a.redirectError(w, r, messageInvalidFormat)
		return
	}

	result, err := a.service.ConfirmEmail(ctx, token)
	if err != nil {
		a.logger.Debugf("email confirmation failed: %v", err)
		a.redirectError(w, r, errorMessage(err))
		return
	}

	if result.ContractErr != nil {
		a.logger.Warnf("user %d verified without a contract: %v", result.User.ID, result.ContractErr)
	}

	http.Redirect(w, r, a.redirectBase+"/email_verified", http.StatusFound)
}

func (a *API) redirectError(w http.ResponseWriter, r *http.Request, message string) {
	http.Redirect(w, r, a.redirectBase+"/error?message="+url.QueryEscape(message), http.StatusFound)
}

func errorMessage(err error) string {
	switch code := apperr.CodeOf(err); code {
	case apperr.ErrInvalidToken.Code, apperr.ErrTokenExpired.Code, apperr.ErrUnknown.Code:
		return code
	case apperr.ErrUnregisteredEmail.Code:
		return apperr.ErrUnknown.Code
	default:
		return messageUnexpected
	}
}

func NewAPI(service ServiceInterface, redirectBase string, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:      service,
		redirectBase: strings.TrimSuffix(redirectBase, "/"),
		tracer:       tracer,
		logger:       logger,
	}
}
