// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package requestctx holds the mutable per-request state shared by the
// services handling one inbound request: the active tenant, company, team
// and caller.
package requestctx

import (
	"context"
	"sync"

	"github.com/canonical/onboarding-service/internal/types"
)

type stateContextKey struct{}

// State is created once per request by the middleware. Every method is safe
// on a nil receiver: readers return zero values and writers do nothing.
type State struct {
	mu sync.RWMutex

	tenantID     int64
	principal    *types.Principal
	company      *types.TenantCompany
	team         *types.TenantTeam
	impersonated bool
	executionID  string
}

func NewState(executionID string) *State {
	return &State{executionID: executionID}
}

func WithState(ctx context.Context, s *State) context.Context {
	return context.WithValue(ctx, stateContextKey{}, s)
}

// FromContext returns the request state, or nil when ctx carries none.
func FromContext(ctx context.Context) *State {
	if s, ok := ctx.Value(stateContextKey{}).(*State); ok {
		return s
	}
	return nil
}

func (s *State) TenantID() int64 {
	if s == nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tenantID
}

func (s *State) SetTenantID(id int64) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tenantID = id
}

// SetTenant replaces the tenant scope in one step so readers never observe a
// company that belongs to another tenant.
func (s *State) SetTenant(tenantID int64, company *types.TenantCompany, team *types.TenantTeam, impersonated bool) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tenantID = tenantID
	s.company = company
	s.team = team
	s.impersonated = impersonated
}

func (s *State) Company() *types.TenantCompany {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.company
}

func (s *State) Team() *types.TenantTeam {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.team
}

func (s *State) Impersonated() bool {
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.impersonated
}

func (s *State) Principal() *types.Principal {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.principal
}

func (s *State) SetPrincipal(p *types.Principal) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.principal = p
}

func (s *State) ExecutionID() string {
	if s == nil {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.executionID
}
