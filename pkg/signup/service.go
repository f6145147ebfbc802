// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package signup

import (
	"context"
	"strings"

	"github.com/canonical/onboarding-service/internal/apperr"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type SignUpRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Password    string `json:"password" validate:"required"`
	CompanyName string `json:"companyName" validate:"required"`
	Phone       string `json:"phone,omitempty"`
}

type Service struct {
	validator ValidatorInterface
	companies CompanyServiceInterface
	tenants   TenantServiceInterface
	users     UserServiceInterface
	authz     AuthorizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// SignUp registers a user together with a new company and its tenant. The
// caller becomes the tenant owner.
func (s *Service) SignUp(ctx context.Context, req SignUpRequest) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "signup.Service.SignUp")
	defer span.End()

	u, err := s.signUp(ctx, req)

	outcome := "success"
	if err != nil {
		outcome = apperr.CodeOf(err)
		if outcome == "" {
			outcome = "error"
		}
	}

	if merr := s.monitor.IncrementCounter(monitoring.SignUpCounter, map[string]string{"outcome": outcome}); merr != nil {
		s.logger.Debugf("failed to increment sign-up counter: %v", merr)
	}

	return u, err
}

func (s *Service) signUp(ctx context.Context, req SignUpRequest) (*types.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if err := s.validator.ValidateSignUpRequest(ctx, email, strings.TrimSpace(req.Phone)); err != nil {
		return nil, err
	}

	company, err := s.companies.CreateCompany(ctx, req.CompanyName, email[strings.LastIndex(email, "@")+1:])
	if err != nil {
		return nil, err
	}

	tenant, err := s.tenants.InitializeNewTenant(ctx, types.NewTenantOptions{
		DisplayName: company.Name,
		CompanyID:   company.ID,
		AccessLevel: types.AccessLevelBasic,
	})
	if err != nil {
		return nil, err
	}

	u, err := s.users.CreateUser(ctx, types.CreateUserOptions{
		Email:               email,
		Password:            req.Password,
		FirstName:           strings.TrimSpace(req.FirstName),
		LastName:            strings.TrimSpace(req.LastName),
		RequireVerification: true,
	})
	if err != nil {
		return nil, err
	}

	if err := s.authz.AssignTenantOwner(ctx, tenant.TenantID, u.KratosIdentityID); err != nil {
		s.logger.Errorf("failed to grant tenant %d ownership to user %d: %v", tenant.TenantID, u.ID, err)
	}

	return u, nil
}

func NewService(
	validator ValidatorInterface,
	companies CompanyServiceInterface,
	tenants TenantServiceInterface,
	users UserServiceInterface,
	authz AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		validator: validator,
		companies: companies,
		tenants:   tenants,
		users:     users,
		authz:     authz,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}
