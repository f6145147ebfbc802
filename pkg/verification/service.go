// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package verification

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/canonical/onboarding-service/internal/apperr"
	"github.com/canonical/onboarding-service/internal/kratos"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/requestctx"
	"github.com/canonical/onboarding-service/internal/storage"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

const verifyEmailSubject = "Verify your email address"

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage    StorageInterface
	identities IdentityProviderInterface
	tokens     TokenServiceInterface
	contracts  ContractServiceInterface
	email      EmailSenderInterface
	authz      AuthorizerInterface

	verifyURL string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// CreateEmailVerification records the pending verification and mails the
// verification link to the user.
func (s *Service) CreateEmailVerification(ctx context.Context, user *types.User, tenantID int64) error {
	ctx, span := s.tracer.Start(ctx, "verification.Service.CreateEmailVerification")
	defer span.End()

	if _, err := s.storage.CreateEmailVerification(ctx, &types.EmailVerification{UserID: user.ID, Email: user.Email}); err != nil {
		return err
	}

	issued, err := s.tokens.IssueInvitation(ctx, tenantID, user.Email)
	if err != nil {
		return fmt.Errorf("failed to issue verification token: %w", err)
	}

	return s.email.SendEmailNotification(ctx, types.EmailNotification{
		Template: types.EmailTemplateVerifyEmail,
		Subject:  verifyEmailSubject,
		To:       user.Email,
		Params: map[string]any{
			"FirstName": user.FirstName,
			"Link":      s.verifyURL + issued.RawToken,
			"ExpiresAt": issued.Invitation.ExpiresAt,
		},
		SendMonitoringEmail: true,
	})
}

func (s *Service) resolve(ctx context.Context, ref types.UserRef) (*types.User, error) {
	var (
		u   *types.User
		err error
	)

	if ref.ID != 0 {
		u, err = s.storage.GetUserByID(ctx, ref.ID)
	} else {
		u, err = s.storage.GetUserByEmail(ctx, ref.Email)
	}

	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperr.ErrNotFound.Wrap(err)
	}

	return u, err
}

// VerifyUser marks the user's email verified at the identity provider and,
// when a company is active in the request, provisions its default contract.
// A failed contract does not undo the verification.
func (s *Service) VerifyUser(ctx context.Context, ref types.UserRef) (*types.VerificationResult, error) {
	ctx, span := s.tracer.Start(ctx, "verification.Service.VerifyUser")
	defer span.End()

	u, err := s.resolve(ctx, ref)
	if err != nil {
		return nil, err
	}

	err = s.identities.MarkEmailVerified(ctx, u.KratosIdentityID, u.Email)
	switch {
	case errors.Is(err, kratos.ErrIdentityNotFound), errors.Is(err, kratos.ErrAddressNotPresent):
		return nil, apperr.ErrUnregisteredEmail.Wrap(err)
	case err != nil:
		return nil, apperr.ErrUnknown.Wrap(err)
	}

	s.logger.Security().AccountVerified(strconv.FormatInt(u.ID, 10))

	result := &types.VerificationResult{User: u, Status: types.VerificationStatusVerified}

	if company := requestctx.FromContext(ctx).Company(); company != nil {
		if _, err := s.contracts.CreateDefaultContract(ctx, company.ID); err != nil {
			s.logger.Errorf("failed to create default contract for tenant company %d: %v", company.ID, err)
			result.Status = types.VerificationStatusContractPending
			result.ContractErr = err
		} else {
			result.Status = types.VerificationStatusProvisioned
		}
	}

	pending, err := s.tokens.GetPendingInvitationByEmail(ctx, u.Email)
	if err != nil {
		s.logger.Warnf("failed to look up pending invitations for user %d: %v", u.ID, err)
	}
	result.PendingInvitation = pending != nil

	if err := s.monitor.IncrementCounter(monitoring.VerificationCounter, map[string]string{"outcome": string(result.Status)}); err != nil {
		s.logger.Debugf("failed to increment verification counter: %v", err)
	}

	return result, nil
}

// ConfirmEmail consumes a verification link and verifies its owner within
// the tenant the link was issued for. Owners of links issued by another
// tenant become members of it.
func (s *Service) ConfirmEmail(ctx context.Context, rawToken string) (*types.VerificationResult, error) {
	ctx, span := s.tracer.Start(ctx, "verification.Service.ConfirmEmail")
	defer span.End()

	// consumed before the provider call on purpose, a retried link still validates since verified flags are not checked
	validated, err := s.tokens.ConfirmEmailToken(ctx, rawToken)
	if err != nil {
		return nil, err
	}

	company, err := s.storage.GetDefaultTenantCompany(ctx, validated.Tenant.ID)
	if err != nil {
		s.logger.Warnf("no default company for tenant %d: %v", validated.Tenant.ID, err)
		company = nil
	}

	requestctx.FromContext(ctx).SetTenant(validated.Tenant.ID, company, nil, false)

	result, err := s.VerifyUser(ctx, types.UserRef{Email: validated.Email})
	if err != nil {
		return nil, err
	}

	if result.User.TenantID != validated.Tenant.ID {
		if err := s.authz.AssignTenantMember(ctx, validated.Tenant.ID, result.User.KratosIdentityID); err != nil {
			s.logger.Errorf("failed to grant tenant %d membership to %s: %v", validated.Tenant.ID, result.User.KratosIdentityID, err)
		}
	}

	return result, nil
}

func NewService(
	storage StorageInterface,
	identities IdentityProviderInterface,
	tokens TokenServiceInterface,
	contracts ContractServiceInterface,
	email EmailSenderInterface,
	authz AuthorizerInterface,
	verifyURL string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:    storage,
		identities: identities,
		tokens:     tokens,
		contracts:  contracts,
		email:      email,
		authz:      authz,
		verifyURL:  verifyURL,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}
