// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package company

import (
	"context"

	"github.com/canonical/onboarding-service/internal/types"
)

type ServiceInterface interface {
	CreateCompany(ctx context.Context, name, domain string) (*types.Company, error)
}

type StorageInterface interface {
	UpsertCompany(ctx context.Context, c *types.Company) (*types.Company, error)
}
