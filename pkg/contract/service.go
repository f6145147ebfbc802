// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package contract

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/canonical/onboarding-service/internal/apperr"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/storage"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

const (
	TrialDays        = 14
	FreePlanCredits  = 100
	DefaultTermsText = "Default Free Plan Terms"
)

// ErrPlanMisconfigured is returned when the free plan or its bundles are missing.
var ErrPlanMisconfigured = errors.New("free plan is not configured")

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	tx      TxRunnerInterface

	freePlanID int64
	now        func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// CreateDefaultContract puts the tenant company on the free plan: a trial
// contract, an active subscription and per product credits for the whole
// trial. Companies that already hold a contract are left untouched.
func (s *Service) CreateDefaultContract(ctx context.Context, tenantCompanyID int64) (*types.DefaultContract, error) {
	ctx, span := s.tracer.Start(ctx, "contract.Service.CreateDefaultContract")
	defer span.End()

	result := new(types.DefaultContract)

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		company, err := s.storage.GetTenantCompanyByID(ctx, tenantCompanyID)
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.ErrNotFound.Wrap(fmt.Errorf("tenant company %d", tenantCompanyID))
		}
		if err != nil {
			return err
		}

		count, err := s.storage.CountContractsByCompanyID(ctx, company.ID)
		if err != nil {
			return err
		}

		if count > 0 {
			s.logger.Debugf("tenant company %d already has %d contracts", company.ID, count)
			return nil
		}

		plan, err := s.storage.GetPlanWithProducts(ctx, s.freePlanID)
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: plan %d not found", ErrPlanMisconfigured, s.freePlanID)
		}
		if err != nil {
			return err
		}

		if len(plan.Bundles) == 0 {
			return fmt.Errorf("%w: plan %d has no bundles", ErrPlanMisconfigured, plan.ID)
		}

		return s.provision(ctx, company, plan, result)
	})

	if err != nil {
		s.count("error")
		return nil, err
	}

	if result.Created {
		s.count("created")
	}

	return result, nil
}

func (s *Service) count(outcome string) {
	if err := s.monitor.IncrementCounter(monitoring.ContractCounter, map[string]string{"outcome": outcome}); err != nil {
		s.logger.Debugf("failed to increment contract counter: %v", err)
	}
}

func (s *Service) provision(ctx context.Context, company *types.TenantCompany, plan *types.SubscriptionPlan, result *types.DefaultContract) error {
	start := s.now().UTC()

	var freeCredits int64
	if plan.Price.IsZero() {
		freeCredits = FreePlanCredits
	}

	// contract, subscription and usage rows reference tenant_companies
	contract, err := s.storage.CreateContract(ctx, &types.Contract{
		CompanyID:      company.ID,
		PlanID:         plan.ID,
		ContractTerms:  DefaultTermsText,
		StartDate:      start,
		TrialStartDate: start,
		TrialEndDate:   start.AddDate(0, 0, TrialDays),
		FreeCredits:    freeCredits,
		AutoRenew:      false,
	})
	if err != nil {
		return err
	}

	instance, err := s.storage.CreateSubscriptionInstance(ctx, &types.SubscriptionInstance{
		CompanyID:  company.ID,
		PlanID:     plan.ID,
		ContractID: contract.ID,
		StartDate:  start,
		Active:     true,
	})
	if err != nil {
		return err
	}

	result.Created = true
	result.Contract = contract
	result.Instance = instance

	for _, bundle := range plan.Bundles {
		for _, product := range bundle.Products {
			allocated := product.DailyCreditValue * TrialDays

			credits, err := s.storage.CreateSubscriptionProductCredits(ctx, &types.SubscriptionProductCredits{
				SubscriptionInstanceID: instance.ID,
				ProductID:              product.ID,
				CreditsAllocated:       allocated,
			})
			if err != nil {
				return err
			}

			usage, err := s.storage.UpsertTenantProductUsage(ctx, &types.TenantProductUsage{
				TenantID:         company.TenantID,
				CompanyID:        company.ID,
				ProductID:        product.ID,
				CreditsAllocated: allocated,
			})
			if err != nil {
				return err
			}

			result.Credits = append(result.Credits, credits)
			result.Usage = append(result.Usage, usage)
		}
	}

	s.logger.Infof("default contract %d created for tenant company %d", contract.ID, company.ID)

	return nil
}

func NewService(
	storage StorageInterface,
	tx TxRunnerInterface,
	freePlanID int64,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:    storage,
		tx:         tx,
		freePlanID: freePlanID,
		now:        time.Now,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}
