// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package signup

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/onboarding-service/internal/apperr"
	httptypes "github.com/canonical/onboarding-service/internal/http/types"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/tracing"
)

type UserResponse struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	PhotoURL  string `json:"photoURL"`
}

type SignUpResponse struct {
	Status string       `json:"status"`
	User   UserResponse `json:"user"`
}

type API struct {
	service   ServiceInterface
	validate  *validator.Validate
	rateLimit int

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	if a.rateLimit <= 0 {
		mux.Post("/auth/sign-up", a.handleSignUp)
		return
	}

	limiter := httprate.Limit(
		a.rateLimit,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			httptypes.WriteJSON(w, http.StatusTooManyRequests, httptypes.ErrorResponse{
				Code:    "too_many_requests",
				Message: "too many sign-up attempts, try again later",
			})
		}),
	)

	mux.With(limiter).Post("/auth/sign-up", a.handleSignUp)
}

func (a *API) handleSignUp(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "signup.API.handleSignUp")
	defer span.End()

	var req SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteError(w, r, apperr.ErrMissingRequiredFields.Wrap(err), a.logger)
		return
	}

	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteError(w, r, apperr.ErrMissingRequiredFields.Wrap(err), a.logger)
		return
	}

	u, err := a.service.SignUp(ctx, req)
	if err != nil {
		httptypes.WriteError(w, r.WithContext(ctx), err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, SignUpResponse{
		Status: "success",
		User: UserResponse{
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			PhotoURL:  u.PhotoURL,
		},
	})
}

func NewAPI(service ServiceInterface, rateLimit int, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:   service,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		rateLimit: rateLimit,
		tracer:    tracer,
		logger:    logger,
	}
}
