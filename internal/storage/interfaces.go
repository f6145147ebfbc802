// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/onboarding-service/internal/types"
)

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id int64) (*types.Tenant, error)

	UpsertCompany(ctx context.Context, c *types.Company) (*types.Company, error)

	CreateTenantCompany(ctx context.Context, c *types.TenantCompany) (*types.TenantCompany, error)
	GetTenantCompanyByID(ctx context.Context, id int64) (*types.TenantCompany, error)
	GetTenantCompanyByCompanyID(ctx context.Context, companyID int64) (*types.TenantCompany, error)
	GetDefaultTenantCompany(ctx context.Context, tenantID int64) (*types.TenantCompany, error)
	CreateTenantTeam(ctx context.Context, t *types.TenantTeam) (*types.TenantTeam, error)

	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	DeleteUser(ctx context.Context, id int64) error
	GetUserByID(ctx context.Context, id int64) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetUserByIdentityID(ctx context.Context, identityID string) (*types.User, error)

	CreateEmailVerification(ctx context.Context, v *types.EmailVerification) (*types.EmailVerification, error)
	MarkEmailVerified(ctx context.Context, email string) (int64, error)

	CreateInvitation(ctx context.Context, i *types.TenantInvitation) (*types.TenantInvitation, error)
	GetInvitationByID(ctx context.Context, id int64) (*types.TenantInvitation, error)
	GetInvitationByToken(ctx context.Context, tokenHash string) (*types.TenantInvitation, error)
	GetPendingInvitationByEmail(ctx context.Context, email string) (*types.TenantInvitation, error)
	MarkInvitationVerified(ctx context.Context, id int64) error
	DeleteInvitationsByEmail(ctx context.Context, tenantID int64, email string) (int64, error)

	CountContractsByCompanyID(ctx context.Context, companyID int64) (int64, error)
	GetPlanWithProducts(ctx context.Context, planID int64) (*types.SubscriptionPlan, error)
	CreateContract(ctx context.Context, c *types.Contract) (*types.Contract, error)
	CreateSubscriptionInstance(ctx context.Context, i *types.SubscriptionInstance) (*types.SubscriptionInstance, error)
	CreateSubscriptionProductCredits(ctx context.Context, c *types.SubscriptionProductCredits) (*types.SubscriptionProductCredits, error)
	UpsertTenantProductUsage(ctx context.Context, u *types.TenantProductUsage) (*types.TenantProductUsage, error)
}
