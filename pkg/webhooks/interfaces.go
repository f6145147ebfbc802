// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/canonical/onboarding-service/internal/types"
)

// StorageInterface is the subset of internal/storage the webhooks need.
type StorageInterface interface {
	GetUserByIdentityID(ctx context.Context, identityID string) (*types.User, error)
}

type CompanyServiceInterface interface {
	CreateCompany(ctx context.Context, name, domain string) (*types.Company, error)
}

type TenantServiceInterface interface {
	InitializeNewTenant(ctx context.Context, opts types.NewTenantOptions) (*types.TenantInit, error)
}

type UserServiceInterface interface {
	EnsureUser(ctx context.Context, opts types.EnsureUserOptions) (*types.User, error)
}

// AuthorizerInterface is the subset of internal/authorization the webhooks need.
type AuthorizerInterface interface {
	AssignTenantOwner(ctx context.Context, tenantID int64, userID string) error
}

type ServiceInterface interface {
	// HandleRegistration reports whether a user row was created
	HandleRegistration(ctx context.Context, identity KratosIdentity) (bool, error)
}
