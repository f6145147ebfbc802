// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
)

type AuthorizerInterface interface {
	AssignTenantOwner(context.Context, int64, string) error
	AssignTenantMember(context.Context, int64, string) error
	RemoveTenantMember(context.Context, int64, string) error
	CheckTenantAccess(context.Context, int64, string, string) (bool, error)
}

type AuthzClientInterface interface {
	Check(ctx context.Context, user, relation, object string) (bool, error)
	WriteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuple(ctx context.Context, user, relation, object string) error
}
