// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package company

import (
	"context"
	"fmt"
	"strings"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) CreateCompany(ctx context.Context, name, domain string) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "company.Service.CreateCompany")
	defer span.End()

	c, err := s.storage.UpsertCompany(ctx, &types.Company{
		Name:   strings.TrimSpace(name),
		Domain: strings.ToLower(strings.TrimSpace(domain)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	s.logger.Debugf("company %d ready (%s)", c.ID, c.Name)

	return c, nil
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
