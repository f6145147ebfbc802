// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package user

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/canonical/onboarding-service/internal/apperr"
	"github.com/canonical/onboarding-service/internal/kratos"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/requestctx"
	"github.com/canonical/onboarding-service/internal/storage"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage      StorageInterface
	identities   IdentityProviderInterface
	verification VerificationInterface

	disableVerification bool
	// dispatch runs background work, tests swap it for a synchronous call
	dispatch func(func())

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func tenantOf(ctx context.Context) (int64, int64, error) {
	state := requestctx.FromContext(ctx)

	tenantID := state.TenantID()
	if tenantID == 0 {
		return 0, 0, apperr.ErrMissingTenantID
	}

	// users.company_id references tenant_companies
	var companyID int64
	if c := state.Company(); c != nil {
		companyID = c.ID
	}

	return tenantID, companyID, nil
}

// CreateUser registers the identity at the provider and stores the user in
// the request tenant. Once the identity exists any failure deletes it again,
// an immediate verification included. Background verification failures are
// only logged.
func (s *Service) CreateUser(ctx context.Context, opts types.CreateUserOptions) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "user.Service.CreateUser")
	defer span.End()

	tenantID, companyID, err := tenantOf(ctx)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(opts.Email))

	identityID, err := s.identities.CreateIdentity(ctx, kratos.NewIdentity{
		Email:     email,
		Password:  opts.Password,
		FirstName: opts.FirstName,
		LastName:  opts.LastName,
		Verified:  !opts.RequireVerification,
	})

	switch {
	case errors.Is(err, kratos.ErrIdentityExists):
		return nil, apperr.ErrDuplicateEmail.Wrap(err)
	case errors.Is(err, kratos.ErrPasswordRejected):
		return nil, apperr.ErrInvalidPassword.Wrap(err)
	case err != nil:
		return nil, fmt.Errorf("failed to create identity: %w", err)
	}

	u, err := s.persist(ctx, identityID, tenantID, companyID, email, opts)
	if err != nil {
		s.compensate(ctx, identityID, nil)
		return nil, err
	}

	s.logger.Security().UserCreated("sign-up", strconv.FormatInt(u.ID, 10))

	if opts.RequireVerification && !s.disableVerification {
		// the request context is gone by the time the email is sent
		bg := context.WithoutCancel(ctx)
		s.dispatch(func() {
			if err := s.verification.CreateEmailVerification(bg, u, tenantID); err != nil {
				s.logger.Errorf("failed to start email verification for user %d: %v", u.ID, err)
			}
		})

		return u, nil
	}

	if _, err := s.verification.VerifyUser(ctx, types.UserRef{ID: u.ID}); err != nil {
		s.compensate(ctx, identityID, u)
		return nil, err
	}

	return u, nil
}

// compensate undoes a partial sign-up, the user row goes first so no row
// ever points at a deleted identity.
func (s *Service) compensate(ctx context.Context, identityID string, u *types.User) {
	ctx = context.WithoutCancel(ctx)

	if u != nil {
		if err := s.storage.DeleteUser(ctx, u.ID); err != nil {
			s.logger.Errorf("failed to delete user %d after failed sign-up: %v", u.ID, err)
		}
	}

	if err := s.identities.DeleteIdentity(ctx, identityID); err != nil {
		s.logger.Errorf("failed to delete identity %s after failed sign-up: %v", identityID, err)
	}
}

func (s *Service) persist(ctx context.Context, identityID string, tenantID, companyID int64, email string, opts types.CreateUserOptions) (*types.User, error) {
	if err := s.identities.SetCompanyClaim(ctx, identityID, companyID); err != nil {
		return nil, fmt.Errorf("failed to set company claim: %w", err)
	}

	u, err := s.storage.CreateUser(ctx, &types.User{
		KratosIdentityID: identityID,
		TenantID:         tenantID,
		CompanyID:        companyID,
		Email:            email,
		FirstName:        opts.FirstName,
		LastName:         opts.LastName,
		PhotoURL:         opts.PhotoURL,
	})

	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, apperr.ErrDuplicateEmail.Wrap(err)
	}

	return u, err
}

// EnsureUser returns the user bound to an identity that already exists at
// the provider, creating the row in the request tenant when missing.
func (s *Service) EnsureUser(ctx context.Context, opts types.EnsureUserOptions) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "user.Service.EnsureUser")
	defer span.End()

	u, err := s.storage.GetUserByIdentityID(ctx, opts.IdentityID)
	if err == nil {
		return u, nil
	}

	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	tenantID, companyID, err := tenantOf(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.identities.SetCompanyClaim(ctx, opts.IdentityID, companyID); err != nil {
		s.logger.Errorf("failed to set company claim on identity %s: %v", opts.IdentityID, err)
	}

	u, err = s.storage.CreateUser(ctx, &types.User{
		KratosIdentityID: opts.IdentityID,
		TenantID:         tenantID,
		CompanyID:        companyID,
		Email:            strings.ToLower(strings.TrimSpace(opts.Email)),
		FirstName:        opts.FirstName,
		LastName:         opts.LastName,
		PhotoURL:         opts.PhotoURL,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Security().UserCreated("registration-webhook", strconv.FormatInt(u.ID, 10))

	return u, nil
}

func NewService(
	storage StorageInterface,
	identities IdentityProviderInterface,
	verification VerificationInterface,
	disableVerification bool,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.identities = identities
	s.verification = verification
	s.disableVerification = disableVerification
	s.dispatch = func(f func()) { go f() }

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
