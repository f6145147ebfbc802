// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/onboarding-service/internal/apperr"
	"github.com/canonical/onboarding-service/internal/authorization"
	httptypes "github.com/canonical/onboarding-service/internal/http/types"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/requestctx"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
	"github.com/canonical/onboarding-service/pkg/authentication"
)

type InviteMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type InvitationResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Verified  bool      `json:"verified"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

type RemoveInvitationResponse struct {
	Deleted int64 `json:"deleted"`
	Revoked bool  `json:"revoked,omitempty"`
}

func toInvitationResponse(i *types.TenantInvitation) InvitationResponse {
	return InvitationResponse{
		ID:        i.ID,
		Email:     i.Email,
		Verified:  i.Verified,
		ExpiresAt: i.ExpiresAt,
		CreatedAt: i.CreatedAt,
	}
}

type API struct {
	service ServiceInterface
	authz   AuthzInterface
	authn   AuthenticatorInterface

	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Route("/tenant/invitations", func(r chi.Router) {
		r.Use(a.authn.Authenticate(), a.authn.RequireUser, a.requireTenant, a.requireOwner)

		r.Post("/", a.handleInviteMember)
		r.Delete("/", a.handleRemoveInvitation)
		r.Get("/{id}", a.handleGetInvitation)
	})
}

func (a *API) requireTenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requestctx.FromContext(r.Context()).TenantID() == 0 {
			httptypes.WriteError(w, r, apperr.ErrMissingTenantID, a.logger)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (a *API) requireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := a.tracer.Start(r.Context(), "tenant.API.requireOwner")
		defer span.End()

		principal, _ := authentication.PrincipalFrom(ctx)
		tenantID := requestctx.FromContext(ctx).TenantID()

		allowed, err := a.authz.CheckTenantAccess(ctx, tenantID, principal.ID, authorization.OWNER_RELATION)
		if err != nil {
			a.logger.Errorf("failed to check access on tenant %d: %v", tenantID, err)
			httptypes.WriteError(w, r, err, a.logger)
			return
		}

		if !allowed {
			httptypes.WriteError(w, r, apperr.ErrForbidden, a.logger)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *API) handleInviteMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.handleInviteMember")
	defer span.End()

	var req InviteMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteError(w, r, apperr.ErrMissingRequiredFields.Wrap(err), a.logger)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteError(w, r, apperr.ErrBadAddress.Wrap(err), a.logger)
		return
	}

	invitation, err := a.service.InviteMember(ctx, req.Email)
	if err != nil {
		httptypes.WriteError(w, r.WithContext(ctx), err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, toInvitationResponse(invitation))
}

func (a *API) handleGetInvitation(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.handleGetInvitation")
	defer span.End()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httptypes.WriteError(w, r, apperr.ErrNotFound.Wrap(err), a.logger)
		return
	}

	invitation, err := a.service.GetInvitation(ctx, id)
	if err != nil {
		httptypes.WriteError(w, r.WithContext(ctx), err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, toInvitationResponse(invitation))
}

func (a *API) handleRemoveInvitation(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.handleRemoveInvitation")
	defer span.End()

	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		httptypes.WriteError(w, r, apperr.ErrMissingRequiredFields, a.logger)
		return
	}

	n, err := a.service.RemoveInvitationByEmail(ctx, email)
	if err != nil {
		httptypes.WriteError(w, r.WithContext(ctx), err, a.logger)
		return
	}

	member, err := a.service.GetInvitedMember(ctx, email)
	if err != nil {
		httptypes.WriteError(w, r.WithContext(ctx), err, a.logger)
		return
	}

	resp := RemoveInvitationResponse{Deleted: n}

	// accepted invitations granted membership, take it back
	if member != nil {
		tenantID := requestctx.FromContext(ctx).TenantID()
		if err := a.authz.RemoveTenantMember(ctx, tenantID, member.KratosIdentityID); err != nil {
			a.logger.Errorf("failed to revoke membership of %s on tenant %d: %v", member.KratosIdentityID, tenantID, err)
			httptypes.WriteError(w, r.WithContext(ctx), err, a.logger)
			return
		}

		resp.Revoked = true
	}

	httptypes.WriteJSON(w, http.StatusOK, resp)
}

func NewAPI(
	service ServiceInterface,
	authz AuthzInterface,
	authn AuthenticatorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		authz:    authz,
		authn:    authn,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
