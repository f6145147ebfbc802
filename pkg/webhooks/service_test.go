// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/onboarding-service/internal/apperr"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/storage"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_interfaces.go -source=./interfaces.go

type mocks struct {
	storage   *MockStorageInterface
	companies *MockCompanyServiceInterface
	tenants   *MockTenantServiceInterface
	users     *MockUserServiceInterface
	authz     *MockAuthorizerInterface
}

func TestService_HandleRegistration(t *testing.T) {
	identity := KratosIdentity{
		ID:     "kid-1",
		Traits: KratosTraits{Email: "Ada@Acme.io", Name: KratosName{First: "Ada", Last: "Lovelace"}},
	}

	tests := []struct {
		name        string
		identity    KratosIdentity
		setupMocks  func(mocks)
		wantCreated bool
		wantErr     bool
	}{
		{
			name:     "success",
			identity: identity,
			setupMocks: func(m mocks) {
				m.storage.EXPECT().GetUserByIdentityID(gomock.Any(), "kid-1").Return(nil, storage.ErrNotFound)
				m.companies.EXPECT().CreateCompany(gomock.Any(), "ada@acme.io's Org", "acme.io").
					Return(&types.Company{ID: 3, Name: "ada@acme.io's Org"}, nil)
				m.tenants.EXPECT().InitializeNewTenant(gomock.Any(), types.NewTenantOptions{
					DisplayName: "ada@acme.io's Org", CompanyID: 3, AccessLevel: types.AccessLevelBasic,
				}).Return(&types.TenantInit{TenantID: 9, Created: true}, nil)
				m.users.EXPECT().EnsureUser(gomock.Any(), types.EnsureUserOptions{
					IdentityID: "kid-1", Email: "ada@acme.io", FirstName: "Ada", LastName: "Lovelace",
				}).Return(&types.User{ID: 100}, nil)
				m.authz.EXPECT().AssignTenantOwner(gomock.Any(), int64(9), "kid-1").Return(nil)
			},
			wantCreated: true,
		},
		{
			name:     "already onboarded",
			identity: identity,
			setupMocks: func(m mocks) {
				m.storage.EXPECT().GetUserByIdentityID(gomock.Any(), "kid-1").Return(&types.User{ID: 100}, nil)
			},
		},
		{
			name:       "empty identity",
			identity:   KratosIdentity{ID: "kid-1"},
			setupMocks: func(mocks) {},
			wantErr:    true,
		},
		{
			name:     "tenant creation error",
			identity: identity,
			setupMocks: func(m mocks) {
				m.storage.EXPECT().GetUserByIdentityID(gomock.Any(), "kid-1").Return(nil, storage.ErrNotFound)
				m.companies.EXPECT().CreateCompany(gomock.Any(), gomock.Any(), gomock.Any()).Return(&types.Company{ID: 3}, nil)
				m.tenants.EXPECT().InitializeNewTenant(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
		{
			name:     "authz error",
			identity: identity,
			setupMocks: func(m mocks) {
				m.storage.EXPECT().GetUserByIdentityID(gomock.Any(), "kid-1").Return(nil, storage.ErrNotFound)
				m.companies.EXPECT().CreateCompany(gomock.Any(), gomock.Any(), gomock.Any()).Return(&types.Company{ID: 3}, nil)
				m.tenants.EXPECT().InitializeNewTenant(gomock.Any(), gomock.Any()).Return(&types.TenantInit{TenantID: 9}, nil)
				m.users.EXPECT().EnsureUser(gomock.Any(), gomock.Any()).Return(&types.User{ID: 100}, nil)
				m.authz.EXPECT().AssignTenantOwner(gomock.Any(), int64(9), "kid-1").Return(errors.New("authz error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := mocks{
				storage:   NewMockStorageInterface(ctrl),
				companies: NewMockCompanyServiceInterface(ctrl),
				tenants:   NewMockTenantServiceInterface(ctrl),
				users:     NewMockUserServiceInterface(ctrl),
				authz:     NewMockAuthorizerInterface(ctrl),
			}
			tt.setupMocks(m)

			s := NewService(m.storage, m.companies, m.tenants, m.users, m.authz, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			created, err := s.HandleRegistration(context.Background(), tt.identity)
			if (err != nil) != tt.wantErr {
				t.Errorf("HandleRegistration() error = %v, wantErr %v", err, tt.wantErr)
			}

			if created != tt.wantCreated {
				t.Errorf("expected created %v, got %v", tt.wantCreated, created)
			}

			if tt.name == "empty identity" && !errors.Is(err, apperr.ErrMissingRequiredFields) {
				t.Errorf("expected missing_required_fields, got %v", err)
			}
		})
	}
}
