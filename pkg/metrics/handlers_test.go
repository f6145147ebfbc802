// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/monitoring/prometheus"
)

func TestMetricsEndpoint(t *testing.T) {
	monitor := prometheus.NewMonitor("metrics-test", logging.NewNoopLogger())
	if err := monitor.IncrementCounter(monitoring.SignUpCounter, map[string]string{"outcome": "success"}); err != nil {
		t.Fatalf("failed to increment counter: %v", err)
	}

	mux := chi.NewRouter()
	NewAPI(logging.NewNoopLogger()).RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/metrics", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	if !strings.Contains(w.Body.String(), "signups_total") {
		t.Fatalf("sign-up counter missing from metrics output")
	}
}
