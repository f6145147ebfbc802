// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/canonical/onboarding-service/internal/logging"
)

func TestMonitorCounters(t *testing.T) {
	m := NewMonitor("onboarding-test", logging.NewNoopLogger())
	// a second monitor must reuse the registered collectors
	m2 := NewMonitor("onboarding-test", logging.NewNoopLogger())

	if err := m.IncrementCounter(SignUpCounter, map[string]string{"outcome": "success"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m2.IncrementCounter(SignUpCounter, map[string]string{"outcome": "success"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := testutil.ToFloat64(m.counters[SignUpCounter].WithLabelValues("success"))
	if got != 2 {
		t.Errorf("expected counter at 2, got %v", got)
	}

	if err := m.IncrementCounter("unknown", nil); err == nil {
		t.Error("expected error for undefined counter")
	}
}

func TestMonitorResponseTime(t *testing.T) {
	m := NewMonitor("onboarding-test", logging.NewNoopLogger())

	if err := m.SetResponseTimeMetric(map[string]string{"route": "GET/api/v0/status", "status": "200"}, 0.2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.SetDependencyAvailability(map[string]string{"component": "database"}, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.GetService() != "onboarding-test" {
		t.Errorf("unexpected service %q", m.GetService())
	}
}
