// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package verification

import (
	"context"

	"github.com/canonical/onboarding-service/internal/types"
)

type ServiceInterface interface {
	CreateEmailVerification(ctx context.Context, user *types.User, tenantID int64) error
	VerifyUser(ctx context.Context, ref types.UserRef) (*types.VerificationResult, error)
	ConfirmEmail(ctx context.Context, rawToken string) (*types.VerificationResult, error)
}

type StorageInterface interface {
	GetUserByID(ctx context.Context, id int64) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	CreateEmailVerification(ctx context.Context, v *types.EmailVerification) (*types.EmailVerification, error)
	GetDefaultTenantCompany(ctx context.Context, tenantID int64) (*types.TenantCompany, error)
}

type IdentityProviderInterface interface {
	MarkEmailVerified(ctx context.Context, identityID, email string) error
}

type TokenServiceInterface interface {
	IssueInvitation(ctx context.Context, tenantID int64, email string) (*types.IssuedToken, error)
	ConfirmEmailToken(ctx context.Context, rawToken string) (*types.ValidatedToken, error)
	GetPendingInvitationByEmail(ctx context.Context, email string) (*types.TenantInvitation, error)
}

type ContractServiceInterface interface {
	CreateDefaultContract(ctx context.Context, tenantCompanyID int64) (*types.DefaultContract, error)
}

type EmailSenderInterface interface {
	SendEmailNotification(ctx context.Context, n types.EmailNotification) error
}

type AuthorizerInterface interface {
	AssignTenantMember(ctx context.Context, tenantID int64, userID string) error
}
