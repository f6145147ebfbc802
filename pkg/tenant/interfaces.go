// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"net/http"

	"github.com/canonical/onboarding-service/internal/types"
)

type ServiceInterface interface {
	InitializeNewTenant(ctx context.Context, opts types.NewTenantOptions) (*types.TenantInit, error)

	IssueInvitation(ctx context.Context, tenantID int64, email string) (*types.IssuedToken, error)
	ValidateEmailToken(ctx context.Context, rawToken string) (*types.ValidatedToken, error)
	ConfirmEmailToken(ctx context.Context, rawToken string) (*types.ValidatedToken, error)

	InviteMember(ctx context.Context, email string) (*types.TenantInvitation, error)
	GetInvitation(ctx context.Context, id int64) (*types.TenantInvitation, error)
	GetPendingInvitationByEmail(ctx context.Context, email string) (*types.TenantInvitation, error)
	RemoveInvitationByEmail(ctx context.Context, email string) (int64, error)
	GetInvitedMember(ctx context.Context, email string) (*types.User, error)
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id int64) (*types.Tenant, error)
	CreateTenantCompany(ctx context.Context, c *types.TenantCompany) (*types.TenantCompany, error)
	GetTenantCompanyByCompanyID(ctx context.Context, companyID int64) (*types.TenantCompany, error)
	GetDefaultTenantCompany(ctx context.Context, tenantID int64) (*types.TenantCompany, error)
	CreateTenantTeam(ctx context.Context, t *types.TenantTeam) (*types.TenantTeam, error)

	CreateInvitation(ctx context.Context, i *types.TenantInvitation) (*types.TenantInvitation, error)
	GetInvitationByID(ctx context.Context, id int64) (*types.TenantInvitation, error)
	GetInvitationByToken(ctx context.Context, tokenHash string) (*types.TenantInvitation, error)
	GetPendingInvitationByEmail(ctx context.Context, email string) (*types.TenantInvitation, error)
	MarkInvitationVerified(ctx context.Context, id int64) error
	MarkEmailVerified(ctx context.Context, email string) (int64, error)
	DeleteInvitationsByEmail(ctx context.Context, tenantID int64, email string) (int64, error)

	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
}

type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type EmailSenderInterface interface {
	SendEmailNotification(ctx context.Context, n types.EmailNotification) error
}

type AuthzInterface interface {
	CheckTenantAccess(ctx context.Context, tenantID int64, userID, relation string) (bool, error)
	RemoveTenantMember(ctx context.Context, tenantID int64, userID string) error
}

type AuthenticatorInterface interface {
	Authenticate() func(http.Handler) http.Handler
	RequireUser(next http.Handler) http.Handler
}
