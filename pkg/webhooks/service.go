// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/onboarding-service/internal/apperr"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/storage"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage   StorageInterface
	companies CompanyServiceInterface
	tenants   TenantServiceInterface
	users     UserServiceInterface
	authz     AuthorizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	companies CompanyServiceInterface,
	tenants TenantServiceInterface,
	users UserServiceInterface,
	authz AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:   storage,
		companies: companies,
		tenants:   tenants,
		users:     users,
		authz:     authz,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// HandleRegistration onboards an identity created directly at the provider,
// social sign-in for instance. Identities that already have a user are left
// alone.
func (s *Service) HandleRegistration(ctx context.Context, identity KratosIdentity) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	email := strings.ToLower(strings.TrimSpace(identity.Traits.Email))
	if identity.ID == "" || email == "" {
		return false, apperr.ErrMissingRequiredFields
	}

	s.logger.Debugf("handling registration for identity %s", identity.ID)

	_, err := s.storage.GetUserByIdentityID(ctx, identity.ID)
	if err == nil {
		return false, nil
	}

	if !errors.Is(err, storage.ErrNotFound) {
		return false, err
	}

	company, err := s.companies.CreateCompany(ctx, fmt.Sprintf("%s's Org", email), email[strings.LastIndex(email, "@")+1:])
	if err != nil {
		return false, err
	}

	tenant, err := s.tenants.InitializeNewTenant(ctx, types.NewTenantOptions{
		DisplayName: company.Name,
		CompanyID:   company.ID,
		AccessLevel: types.AccessLevelBasic,
	})
	if err != nil {
		return false, err
	}

	u, err := s.users.EnsureUser(ctx, types.EnsureUserOptions{
		IdentityID: identity.ID,
		Email:      email,
		FirstName:  identity.Traits.Name.First,
		LastName:   identity.Traits.Name.Last,
	})
	if err != nil {
		return false, err
	}

	if err := s.authz.AssignTenantOwner(ctx, tenant.TenantID, identity.ID); err != nil {
		return false, fmt.Errorf("failed to assign tenant owner in authz: %w", err)
	}

	s.logger.Infof("provisioned tenant %d for user %d", tenant.TenantID, u.ID)

	return true, nil
}
