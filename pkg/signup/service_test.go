// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package signup

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/onboarding-service/internal/apperr"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package signup -destination ./mock_interfaces.go -source=./interfaces.go

type mocks struct {
	validator *MockValidatorInterface
	companies *MockCompanyServiceInterface
	tenants   *MockTenantServiceInterface
	users     *MockUserServiceInterface
	authz     *MockAuthorizerInterface
}

func request() SignUpRequest {
	return SignUpRequest{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       " Ada@Acme.io ",
		Password:    "correct horse battery staple",
		CompanyName: "Acme",
		Phone:       "+44 20 7946 0958",
	}
}

func TestService_SignUp(t *testing.T) {
	company := &types.Company{ID: 3, Name: "Acme", Domain: "acme.io"}
	tenant := &types.TenantInit{
		TenantID: 9,
		Company:  &types.TenantCompany{ID: 21, TenantID: 9, CompanyID: 3, IsDefault: true},
		Team:     &types.TenantTeam{ID: 31, TenantID: 9, IsDefault: true},
		Created:  true,
	}
	user := &types.User{ID: 100, KratosIdentityID: "kid-1", TenantID: 9, CompanyID: 21, Email: "ada@acme.io"}

	tests := []struct {
		name       string
		setupMocks func(mocks)
		wantErr    error
	}{
		{
			name: "creates tenant, company, team and user",
			setupMocks: func(m mocks) {
				gomock.InOrder(
					m.validator.EXPECT().ValidateSignUpRequest(gomock.Any(), "ada@acme.io", "+44 20 7946 0958").Return(nil),
					m.companies.EXPECT().CreateCompany(gomock.Any(), "Acme", "acme.io").Return(company, nil),
					m.tenants.EXPECT().InitializeNewTenant(gomock.Any(), types.NewTenantOptions{
						DisplayName: "Acme", CompanyID: 3, AccessLevel: types.AccessLevelBasic,
					}).Return(tenant, nil),
					m.users.EXPECT().CreateUser(gomock.Any(), types.CreateUserOptions{
						Email: "ada@acme.io", Password: "correct horse battery staple", FirstName: "Ada", LastName: "Lovelace", RequireVerification: true,
					}).Return(user, nil),
					m.authz.EXPECT().AssignTenantOwner(gomock.Any(), int64(9), "kid-1").Return(nil),
				)
			},
		},
		{
			name: "authorization failure does not fail the sign-up",
			setupMocks: func(m mocks) {
				m.validator.EXPECT().ValidateSignUpRequest(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.companies.EXPECT().CreateCompany(gomock.Any(), gomock.Any(), gomock.Any()).Return(company, nil)
				m.tenants.EXPECT().InitializeNewTenant(gomock.Any(), gomock.Any()).Return(tenant, nil)
				m.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(user, nil)
				m.authz.EXPECT().AssignTenantOwner(gomock.Any(), int64(9), "kid-1").Return(errors.New("fga down"))
			},
		},
		{
			name: "invalid request stops before any write",
			setupMocks: func(m mocks) {
				m.validator.EXPECT().ValidateSignUpRequest(gomock.Any(), gomock.Any(), gomock.Any()).Return(apperr.ErrInvalidPhoneNumber)
			},
			wantErr: apperr.ErrInvalidPhoneNumber,
		},
		{
			name: "duplicate email",
			setupMocks: func(m mocks) {
				m.validator.EXPECT().ValidateSignUpRequest(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.companies.EXPECT().CreateCompany(gomock.Any(), gomock.Any(), gomock.Any()).Return(company, nil)
				m.tenants.EXPECT().InitializeNewTenant(gomock.Any(), gomock.Any()).Return(tenant, nil)
				m.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, apperr.ErrDuplicateEmail)
			},
			wantErr: apperr.ErrDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := mocks{
				validator: NewMockValidatorInterface(ctrl),
				companies: NewMockCompanyServiceInterface(ctrl),
				tenants:   NewMockTenantServiceInterface(ctrl),
				users:     NewMockUserServiceInterface(ctrl),
				authz:     NewMockAuthorizerInterface(ctrl),
			}
			tt.setupMocks(m)

			s := NewService(m.validator, m.companies, m.tenants, m.users, m.authz, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			u, err := s.SignUp(context.Background(), request())

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if u.TenantID != tenant.TenantID || u.CompanyID != tenant.Company.ID || tenant.Team.TenantID != u.TenantID {
				t.Fatalf("user %+v does not match tenant %+v", u, tenant)
			}
		})
	}
}
