// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package validation

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/publicsuffix"

	"github.com/canonical/onboarding-service/internal/apperr"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
)

const defaultRestrictionReason = "other"

var _ ValidatorInterface = (*Validator)(nil)

// OpenDomainPolicy never restricts a domain.
type OpenDomainPolicy struct{}

func (OpenDomainPolicy) Restricted(context.Context, string, string) (string, error) {
	return "", nil
}

type Validator struct {
	identities    IdentityLookupInterface
	policy        DomainPolicyInterface
	defaultRegion string
	validate      *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// ValidateSignUpRequest runs the cheap syntax checks before asking the
// identity provider about the address.
func (v *Validator) ValidateSignUpRequest(ctx context.Context, email, phone string) error {
	ctx, span := v.tracer.Start(ctx, "validation.Validator.ValidateSignUpRequest")
	defer span.End()

	if phone != "" {
		if err := v.validatePhone(phone); err != nil {
			return err
		}
	}

	email = strings.TrimSpace(email)
	if err := v.validate.Var(email, "required,email"); err != nil {
		return apperr.ErrBadAddress.Wrap(err)
	}

	id, err := v.identities.GetIdentityIDByEmail(ctx, email)
	if err != nil {
		v.logger.Errorf("identity lookup failed for sign-up validation: %v", err)
	} else if id != "" {
		return apperr.ErrDuplicateEmail
	}

	return v.checkDomain(ctx, email)
}

func (v *Validator) validatePhone(phone string) error {
	num, err := phonenumbers.Parse(phone, v.defaultRegion)
	if err != nil {
		return apperr.ErrInvalidPhoneNumber.Wrap(err)
	}

	if !phonenumbers.IsValidNumber(num) {
		return apperr.ErrInvalidPhoneNumber
	}

	return nil
}

func (v *Validator) checkDomain(ctx context.Context, email string) error {
	domain := strings.ToLower(email[strings.LastIndex(email, "@")+1:])

	tld, _ := publicsuffix.PublicSuffix(domain)

	// a domain that is itself a public suffix is checked as is
	root, err := publicsuffix.EffectiveTLDPlusOne(domain)
	if err != nil {
		v.logger.Debugf("no registrable domain for %s, using it as the root: %v", domain, err)
		root = domain
	}

	reason, err := v.policy.Restricted(ctx, root, tld)
	if err != nil {
		return fmt.Errorf("domain policy check failed: %w", err)
	}

	if reason == "" {
		return nil
	}

	if reason == "true" {
		reason = defaultRestrictionReason
	}

	return apperr.Validation("domain_restricted."+reason, "sign-ups from this domain are not allowed")
}

func NewValidator(
	identities IdentityLookupInterface,
	policy DomainPolicyInterface,
	defaultRegion string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Validator {
	v := new(Validator)

	v.identities = identities
	v.policy = policy
	if v.policy == nil {
		v.policy = OpenDomainPolicy{}
	}
	v.defaultRegion = defaultRegion
	v.validate = validator.New(validator.WithRequiredStructEnabled())

	v.tracer = tracer
	v.monitor = monitor
	v.logger = logger

	return v
}
