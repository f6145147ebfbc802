// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"time"

	"github.com/canonical/onboarding-service/internal/types"
)

// TokenVerifierInterface verifies the tokens of a single login type.
type TokenVerifierInterface interface {
	VerifyToken(ctx context.Context, rawToken string) (*types.Principal, error)
}

// VerifierInterface dispatches on the login type announced by the caller.
type VerifierInterface interface {
	VerifyToken(ctx context.Context, rawToken string, loginType types.LoginType) (*types.Principal, error)
}

type TokenIssuerInterface interface {
	// IssueToken mints a credentials session token, returns it with its expiry
	IssueToken(ctx context.Context, principal *types.Principal) (string, time.Time, error)
}
