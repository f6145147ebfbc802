// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package contract

import (
	"context"

	"github.com/canonical/onboarding-service/internal/types"
)

type ServiceInterface interface {
	CreateDefaultContract(ctx context.Context, tenantCompanyID int64) (*types.DefaultContract, error)
}

type StorageInterface interface {
	GetTenantCompanyByID(ctx context.Context, id int64) (*types.TenantCompany, error)
	CountContractsByCompanyID(ctx context.Context, tenantCompanyID int64) (int64, error)
	GetPlanWithProducts(ctx context.Context, planID int64) (*types.SubscriptionPlan, error)
	CreateContract(ctx context.Context, c *types.Contract) (*types.Contract, error)
	CreateSubscriptionInstance(ctx context.Context, i *types.SubscriptionInstance) (*types.SubscriptionInstance, error)
	CreateSubscriptionProductCredits(ctx context.Context, c *types.SubscriptionProductCredits) (*types.SubscriptionProductCredits, error)
	UpsertTenantProductUsage(ctx context.Context, u *types.TenantProductUsage) (*types.TenantProductUsage, error)
}

type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
