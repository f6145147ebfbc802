// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package signup

import (
	"context"

	"github.com/canonical/onboarding-service/internal/types"
)

type ServiceInterface interface {
	SignUp(ctx context.Context, req SignUpRequest) (*types.User, error)
}

type ValidatorInterface interface {
	ValidateSignUpRequest(ctx context.Context, email, phone string) error
}

type CompanyServiceInterface interface {
	CreateCompany(ctx context.Context, name, domain string) (*types.Company, error)
}

type TenantServiceInterface interface {
	InitializeNewTenant(ctx context.Context, opts types.NewTenantOptions) (*types.TenantInit, error)
}

type UserServiceInterface interface {
	CreateUser(ctx context.Context, opts types.CreateUserOptions) (*types.User, error)
}

type AuthorizerInterface interface {
	AssignTenantOwner(ctx context.Context, tenantID int64, userID string) error
}
