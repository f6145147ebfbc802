// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package validation

import (
	"context"
)

type IdentityLookupInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
}

// DomainPolicyInterface decides whether sign-ups from a domain are accepted.
type DomainPolicyInterface interface {
	// Restricted returns the reason when the domain is refused, "" otherwise
	Restricted(ctx context.Context, rootDomain, tld string) (string, error)
}

type ValidatorInterface interface {
	ValidateSignUpRequest(ctx context.Context, email, phone string) error
}
