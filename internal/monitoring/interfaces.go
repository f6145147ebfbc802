// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

// onboarding funnel counters
const (
	SignUpCounter       = "signups_total"
	VerificationCounter = "email_verifications_total"
	ContractCounter     = "default_contracts_total"
	EmailCounter        = "emails_sent_total"
)

type MonitorInterface interface {
	GetService() string
	SetResponseTimeMetric(map[string]string, float64) error
	SetDependencyAvailability(map[string]string, float64) error
	// IncrementCounter bumps one of the onboarding funnel counters
	IncrementCounter(string, map[string]string) error
}
