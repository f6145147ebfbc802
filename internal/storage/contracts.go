// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/canonical/onboarding-service/internal/types"
)

func (s *Storage) CountContractsByCompanyID(ctx context.Context, companyID int64) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountContractsByCompanyID")
	defer span.End()

	var count int64
	err := s.db.Statement(ctx).
		Select("count(*)").
		From("contracts").
		Where(sq.Eq{"company_id": companyID}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count contracts: %w", err)
	}

	return count, nil
}

// GetPlanWithProducts loads a subscription plan with its bundles and the
// products each bundle includes. Bundles without products are kept.
func (s *Storage) GetPlanWithProducts(ctx context.Context, planID int64) (*types.SubscriptionPlan, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPlanWithProducts")
	defer span.End()

	plan := new(types.SubscriptionPlan)
	var price string

	err := s.db.Statement(ctx).
		Select("id", "name", "price::text").
		From("subscription_plans").
		Where(sq.Eq{"id": planID}).
		QueryRowContext(ctx).
		Scan(&plan.ID, &plan.Name, &price)

	if err != nil {
		return nil, translate(err, "failed to get plan")
	}

	if plan.Price, err = decimal.NewFromString(price); err != nil {
		return nil, fmt.Errorf("invalid price %q for plan %d: %w", price, planID, err)
	}

	rows, err := s.db.Statement(ctx).
		Select("b.id", "b.name", "p.id", "p.name", "p.daily_credit_value").
		From("product_bundles b").
		LeftJoin("included_products ip ON ip.bundle_id = b.id").
		LeftJoin("products p ON p.id = ip.product_id").
		Where(sq.Eq{"b.plan_id": planID}).
		OrderBy("b.id", "p.id").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list plan bundles: %w", err)
	}
	defer rows.Close()

	index := make(map[int64]int)
	for rows.Next() {
		var (
			bundleID    int64
			bundleName  string
			productID   *int64
			productName *string
			daily       *int64
		)

		if err := rows.Scan(&bundleID, &bundleName, &productID, &productName, &daily); err != nil {
			return nil, fmt.Errorf("failed to scan plan bundle: %w", err)
		}

		i, ok := index[bundleID]
		if !ok {
			plan.Bundles = append(plan.Bundles, types.ProductBundle{ID: bundleID, PlanID: planID, Name: bundleName})
			i = len(plan.Bundles) - 1
			index[bundleID] = i
		}

		if productID == nil {
			continue
		}

		p := types.Product{ID: *productID}
		if productName != nil {
			p.Name = *productName
		}
		if daily != nil {
			p.DailyCreditValue = *daily
		}
		plan.Bundles[i].Products = append(plan.Bundles[i].Products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate plan bundles: %w", err)
	}

	return plan, nil
}

func (s *Storage) CreateContract(ctx context.Context, c *types.Contract) (*types.Contract, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateContract")
	defer span.End()

	var out types.Contract
	err := s.db.Statement(ctx).
		Insert("contracts").
		Columns("company_id", "plan_id", "contract_terms", "start_date", "trial_start_date", "trial_end_date", "free_credits", "auto_renew").
		Values(c.CompanyID, c.PlanID, c.ContractTerms, c.StartDate, c.TrialStartDate, c.TrialEndDate, c.FreeCredits, c.AutoRenew).
		Suffix("RETURNING id, company_id, plan_id, contract_terms, start_date, trial_start_date, trial_end_date, free_credits, auto_renew").
		QueryRowContext(ctx).
		Scan(&out.ID, &out.CompanyID, &out.PlanID, &out.ContractTerms, &out.StartDate, &out.TrialStartDate, &out.TrialEndDate, &out.FreeCredits, &out.AutoRenew)

	if err != nil {
		return nil, translate(err, "failed to insert contract")
	}

	return &out, nil
}

func (s *Storage) CreateSubscriptionInstance(ctx context.Context, i *types.SubscriptionInstance) (*types.SubscriptionInstance, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateSubscriptionInstance")
	defer span.End()

	var out types.SubscriptionInstance
	err := s.db.Statement(ctx).
		Insert("subscription_instances").
		Columns("company_id", "plan_id", "contract_id", "start_date", "active").
		Values(i.CompanyID, i.PlanID, i.ContractID, i.StartDate, i.Active).
		Suffix("RETURNING id, company_id, plan_id, contract_id, start_date, active").
		QueryRowContext(ctx).
		Scan(&out.ID, &out.CompanyID, &out.PlanID, &out.ContractID, &out.StartDate, &out.Active)

	if err != nil {
		return nil, fmt.Errorf("failed to insert subscription instance: %w", err)
	}

	return &out, nil
}

func (s *Storage) CreateSubscriptionProductCredits(ctx context.Context, c *types.SubscriptionProductCredits) (*types.SubscriptionProductCredits, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateSubscriptionProductCredits")
	defer span.End()

	var out types.SubscriptionProductCredits
	err := s.db.Statement(ctx).
		Insert("subscription_product_credits").
		Columns("subscription_instance_id", "product_id", "credits_allocated", "credits_consumed").
		Values(c.SubscriptionInstanceID, c.ProductID, c.CreditsAllocated, c.CreditsConsumed).
		Suffix("RETURNING id, subscription_instance_id, product_id, credits_allocated, credits_consumed").
		QueryRowContext(ctx).
		Scan(&out.ID, &out.SubscriptionInstanceID, &out.ProductID, &out.CreditsAllocated, &out.CreditsConsumed)

	if err != nil {
		return nil, fmt.Errorf("failed to insert product credits: %w", err)
	}

	return &out, nil
}

// UpsertTenantProductUsage adds the allocation to any existing usage row for
// the same company and product.
func (s *Storage) UpsertTenantProductUsage(ctx context.Context, u *types.TenantProductUsage) (*types.TenantProductUsage, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertTenantProductUsage")
	defer span.End()

	var out types.TenantProductUsage
	err := s.db.Statement(ctx).
		Insert("tenant_product_usage").
		Columns("tenant_id", "company_id", "product_id", "credits_allocated", "credits_consumed").
		Values(u.TenantID, u.CompanyID, u.ProductID, u.CreditsAllocated, u.CreditsConsumed).
		Suffix("ON CONFLICT (company_id, product_id) DO UPDATE SET credits_allocated = tenant_product_usage.credits_allocated + EXCLUDED.credits_allocated " +
			"RETURNING id, tenant_id, company_id, product_id, credits_allocated, credits_consumed").
		QueryRowContext(ctx).
		Scan(&out.ID, &out.TenantID, &out.CompanyID, &out.ProductID, &out.CreditsAllocated, &out.CreditsConsumed)

	if err != nil {
		return nil, fmt.Errorf("failed to upsert product usage: %w", err)
	}

	return &out, nil
}
