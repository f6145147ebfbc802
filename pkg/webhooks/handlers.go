// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/onboarding-service/internal/apperr"
	httptypes "github.com/canonical/onboarding-service/internal/http/types"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/tracing"
)

// KeyHeader carries the shared secret configured on the identity provider's registration hook.
const KeyHeader = "X-Webhook-Key"

type API struct {
	service ServiceInterface
	apiKey  string

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

// NewAPI returns the webhook endpoints. An empty apiKey rejects every call.
func NewAPI(service ServiceInterface, apiKey string, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		apiKey:  apiKey,
		tracer:  tracer,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.With(a.authenticate).Post("/webhooks/registration", a.registration)
}

func (a *API) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(KeyHeader)
		if a.apiKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(a.apiKey)) != 1 {
			httptypes.WriteError(w, r, apperr.ErrUnauthenticated, a.logger)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (a *API) registration(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "webhooks.API.registration")
	defer span.End()

	var identity KratosIdentity
	if err := json.NewDecoder(r.Body).Decode(&identity); err != nil {
		httptypes.WriteError(w, r, apperr.ErrMissingRequiredFields.Wrap(err), a.logger)
		return
	}

	created, err := a.service.HandleRegistration(ctx, identity)
	if err != nil {
		httptypes.WriteError(w, r.WithContext(ctx), err, a.logger)
		return
	}

	status := "exists"
	if created {
		status = "created"
	}

	httptypes.WriteJSON(w, http.StatusOK, RegistrationResponse{Status: status})
}
