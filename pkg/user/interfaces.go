// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package user

import (
	"context"

	"github.com/canonical/onboarding-service/internal/kratos"
	"github.com/canonical/onboarding-service/internal/types"
)

type ServiceInterface interface {
	CreateUser(ctx context.Context, opts types.CreateUserOptions) (*types.User, error)
	EnsureUser(ctx context.Context, opts types.EnsureUserOptions) (*types.User, error)
}

type StorageInterface interface {
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	DeleteUser(ctx context.Context, id int64) error
	GetUserByIdentityID(ctx context.Context, identityID string) (*types.User, error)
}

type IdentityProviderInterface interface {
	CreateIdentity(ctx context.Context, identity kratos.NewIdentity) (string, error)
	SetCompanyClaim(ctx context.Context, identityID string, companyID int64) error
	DeleteIdentity(ctx context.Context, identityID string) error
}

type VerificationInterface interface {
	CreateEmailVerification(ctx context.Context, user *types.User, tenantID int64) error
	VerifyUser(ctx context.Context, ref types.UserRef) (*types.VerificationResult, error)
}
