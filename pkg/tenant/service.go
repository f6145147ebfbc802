// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/canonical/onboarding-service/internal/apperr"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/requestctx"
	"github.com/canonical/onboarding-service/internal/storage"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

const defaultTeamName = "Default"

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	tx      TxRunnerInterface
	email   EmailSenderInterface

	invitationLifetime time.Duration
	invitationURL      string
	now                func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// InitializeNewTenant returns the tenant already bound to the company or
// bootstraps a new one with its default company and team. Either way the
// tenant is attached to the request state.
func (s *Service) InitializeNewTenant(ctx context.Context, opts types.NewTenantOptions) (*types.TenantInit, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.InitializeNewTenant")
	defer span.End()

	existing, err := s.storage.GetTenantCompanyByCompanyID(ctx, opts.CompanyID)
	switch {
	case err == nil:
		company, err := s.storage.GetDefaultTenantCompany(ctx, existing.TenantID)
		if errors.Is(err, storage.ErrNotFound) {
			company = existing
		} else if err != nil {
			return nil, fmt.Errorf("failed to load default company of tenant %d: %w", existing.TenantID, err)
		}

		requestctx.FromContext(ctx).SetTenant(existing.TenantID, company, nil, false)

		return &types.TenantInit{TenantID: existing.TenantID, Company: company}, nil
	case !errors.Is(err, storage.ErrNotFound):
		return nil, fmt.Errorf("failed to look up tenant for company %d: %w", opts.CompanyID, err)
	}

	tenant, err := s.storage.CreateTenant(ctx, &types.Tenant{DisplayName: opts.DisplayName})
	if err != nil {
		return nil, err
	}

	accessLevel := opts.AccessLevel
	if accessLevel == "" {
		accessLevel = types.AccessLevelBasic
	}

	var (
		company *types.TenantCompany
		team    *types.TenantTeam
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		company, err = s.storage.CreateTenantCompany(gctx, &types.TenantCompany{
			TenantID:    tenant.ID,
			CompanyID:   opts.CompanyID,
			DisplayName: opts.DisplayName,
			AccessLevel: accessLevel,
			IsDefault:   true,
		})
		return err
	})
	g.Go(func() error {
		var err error
		team, err = s.storage.CreateTenantTeam(gctx, &types.TenantTeam{
			TenantID:    tenant.ID,
			DisplayName: defaultTeamName,
			IsDefault:   true,
		})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to initialize tenant %d: %w", tenant.ID, err)
	}

	requestctx.FromContext(ctx).SetTenant(tenant.ID, company, team, false)

	s.logger.Infof("tenant %d initialized for company %d", tenant.ID, opts.CompanyID)

	return &types.TenantInit{TenantID: tenant.ID, Company: company, Team: team, Created: true}, nil
}

func NewService(
	storage StorageInterface,
	tx TxRunnerInterface,
	email EmailSenderInterface,
	invitationLifetime time.Duration,
	invitationURL string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:            storage,
		tx:                 tx,
		email:              email,
		invitationLifetime: invitationLifetime,
		invitationURL:      invitationURL,
		now:                time.Now,
		tracer:             tracer,
		monitor:            monitor,
		logger:             logger,
	}
}

// tenantFromContext returns the tenant bound to the request or
// ErrMissingTenantID.
func tenantFromContext(ctx context.Context) (int64, error) {
	id := requestctx.FromContext(ctx).TenantID()
	if id == 0 {
		return 0, apperr.ErrMissingTenantID
	}
	return id, nil
}
