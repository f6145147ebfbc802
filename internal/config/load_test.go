// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("KRATOS_ADMIN_URL", "http://kratos:4434")
	t.Setenv("DSN", "postgres://localhost/onboarding")
	t.Setenv("JWT_SECRET", "secret")

	specs, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if specs.InvitationLifetime != 24*time.Hour {
		t.Errorf("expected 24h invitation lifetime, got %v", specs.InvitationLifetime)
	}
	if specs.FreePlanID != 3 {
		t.Errorf("expected free plan 3, got %d", specs.FreePlanID)
	}
	if specs.TenantHashSalt != "tenant" || specs.TenantHashMinLength != 8 {
		t.Errorf("unexpected tenant hash settings %q/%d", specs.TenantHashSalt, specs.TenantHashMinLength)
	}
	if specs.SessionRefreshWindow != 10*time.Minute {
		t.Errorf("expected 10m refresh window, got %v", specs.SessionRefreshWindow)
	}
}

func TestLoadDotenv(t *testing.T) {
	t.Setenv("KRATOS_ADMIN_URL", "http://kratos:4434")
	t.Setenv("JWT_SECRET", "secret")
	// unset so the file value is picked up, restored by t.Setenv cleanup
	t.Setenv("DSN", "")
	os.Unsetenv("DSN")
	t.Setenv("MONITORING_RECIPIENTS", "a@example.com,b@example.com")

	f := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(f, []byte("DSN=postgres://file/onboarding\nFREE_PLAN_ID=7\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("FREE_PLAN_ID") })

	specs, err := Load(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if specs.DSN != "postgres://file/onboarding" {
		t.Errorf("expected DSN from file, got %q", specs.DSN)
	}
	if specs.FreePlanID != 7 {
		t.Errorf("expected free plan 7, got %d", specs.FreePlanID)
	}
	if len(specs.MonitoringRecipients) != 2 {
		t.Errorf("expected 2 monitoring recipients, got %v", specs.MonitoringRecipients)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("KRATOS_ADMIN_URL", "")
	os.Unsetenv("KRATOS_ADMIN_URL")
	t.Setenv("DSN", "postgres://localhost/onboarding")
	t.Setenv("JWT_SECRET", "secret")

	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("expected error for missing KRATOS_ADMIN_URL")
	}
}
