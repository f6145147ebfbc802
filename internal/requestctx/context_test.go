// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package requestctx

import (
	"context"
	"sync"
	"testing"

	"github.com/canonical/onboarding-service/internal/types"
)

func TestStateNilSafe(t *testing.T) {
	s := FromContext(context.Background())
	if s != nil {
		t.Fatalf("expected nil state")
	}

	s.SetTenantID(4)
	s.SetTenant(1, &types.TenantCompany{ID: 2}, nil, true)
	s.SetPrincipal(&types.Principal{ID: "x"})

	if s.TenantID() != 0 || s.Company() != nil || s.Team() != nil || s.Principal() != nil || s.Impersonated() || s.ExecutionID() != "" {
		t.Fatalf("nil state must read as zero values")
	}
}

func TestStateRoundTrip(t *testing.T) {
	state := NewState("exec-1")
	ctx := WithState(context.Background(), state)

	company := &types.TenantCompany{ID: 10, TenantID: 3}
	team := &types.TenantTeam{ID: 11, TenantID: 3}
	FromContext(ctx).SetTenant(3, company, team, false)

	got := FromContext(ctx)
	if got != state {
		t.Fatalf("expected the same state pointer")
	}
	if got.TenantID() != 3 || got.Company() != company || got.Team() != team {
		t.Fatalf("unexpected state: tenant=%d company=%v team=%v", got.TenantID(), got.Company(), got.Team())
	}
	if got.ExecutionID() != "exec-1" {
		t.Fatalf("unexpected execution id %q", got.ExecutionID())
	}
}

func TestStateConcurrentAccess(t *testing.T) {
	state := NewState("exec")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(id int64) {
			defer wg.Done()
			state.SetTenantID(id)
		}(int64(i))
		go func() {
			defer wg.Done()
			_ = state.TenantID()
		}()
	}
	wg.Wait()
}
