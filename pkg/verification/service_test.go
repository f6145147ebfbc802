// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package verification

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/onboarding-service/internal/apperr"
	"github.com/canonical/onboarding-service/internal/kratos"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/requestctx"
	"github.com/canonical/onboarding-service/internal/storage"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package verification -destination ./mock_interfaces.go -source=./interfaces.go

type mocks struct {
	storage    *MockStorageInterface
	identities *MockIdentityProviderInterface
	tokens     *MockTokenServiceInterface
	contracts  *MockContractServiceInterface
	email      *MockEmailSenderInterface
	authz      *MockAuthorizerInterface
}

func newTestService(ctrl *gomock.Controller) (*Service, mocks) {
	m := mocks{
		storage:    NewMockStorageInterface(ctrl),
		identities: NewMockIdentityProviderInterface(ctrl),
		tokens:     NewMockTokenServiceInterface(ctrl),
		contracts:  NewMockContractServiceInterface(ctrl),
		email:      NewMockEmailSenderInterface(ctrl),
		authz:      NewMockAuthorizerInterface(ctrl),
	}

	s := NewService(
		m.storage, m.identities, m.tokens, m.contracts, m.email, m.authz,
		"https://api.example.com/verify/",
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger(),
	)

	return s, m
}

var ada = &types.User{ID: 100, KratosIdentityID: "kid-1", TenantID: 9, CompanyID: 3, Email: "ada@example.com", FirstName: "Ada"}

func withCompany(company *types.TenantCompany) context.Context {
	state := requestctx.NewState("exec-1")
	if company != nil {
		state.SetTenant(company.TenantID, company, nil, false)
	}
	return requestctx.WithState(context.Background(), state)
}

func TestService_CreateEmailVerification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)

	expires := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	m.storage.EXPECT().CreateEmailVerification(gomock.Any(), &types.EmailVerification{UserID: 100, Email: "ada@example.com"}).
		Return(&types.EmailVerification{ID: 1}, nil)
	m.tokens.EXPECT().IssueInvitation(gomock.Any(), int64(9), "ada@example.com").Return(&types.IssuedToken{
		Invitation: &types.TenantInvitation{ID: 2, TenantID: 9, Email: "ada@example.com", ExpiresAt: expires},
		RawToken:   "raw-token",
	}, nil)
	m.email.EXPECT().SendEmailNotification(gomock.Any(), types.EmailNotification{
		Template: types.EmailTemplateVerifyEmail,
		Subject:  "Verify your email address",
		To:       "ada@example.com",
		Params: map[string]any{
			"FirstName": "Ada",
			"Link":      "https://api.example.com/verify/raw-token",
			"ExpiresAt": expires,
		},
		SendMonitoringEmail: true,
	}).Return(nil)

	if err := s.CreateEmailVerification(context.Background(), ada, 9); err != nil {
		t.Fatalf("CreateEmailVerification() error = %v", err)
	}
}

func TestService_VerifyUser(t *testing.T) {
	company := &types.TenantCompany{ID: 21, TenantID: 9, CompanyID: 3}

	tests := []struct {
		name        string
		ref         types.UserRef
		company     *types.TenantCompany
		setupMocks  func(mocks)
		wantErr     error
		wantStatus  types.VerificationStatus
		wantPending bool
	}{
		{
			name:    "provisioned",
			ref:     types.UserRef{ID: 100},
			company: company,
			setupMocks: func(m mocks) {
				m.storage.EXPECT().GetUserByID(gomock.Any(), int64(100)).Return(ada, nil)
				m.identities.EXPECT().MarkEmailVerified(gomock.Any(), "kid-1", "ada@example.com").Return(nil)
				m.contracts.EXPECT().CreateDefaultContract(gomock.Any(), int64(21)).Return(&types.DefaultContract{Created: true}, nil)
				m.tokens.EXPECT().GetPendingInvitationByEmail(gomock.Any(), "ada@example.com").Return(&types.TenantInvitation{ID: 5}, nil)
			},
			wantStatus:  types.VerificationStatusProvisioned,
			wantPending: true,
		},
		{
			name:    "contract failure keeps the verification",
			ref:     types.UserRef{Email: "ada@example.com"},
			company: company,
			setupMocks: func(m mocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "ada@example.com").Return(ada, nil)
				m.identities.EXPECT().MarkEmailVerified(gomock.Any(), "kid-1", "ada@example.com").Return(nil)
				m.contracts.EXPECT().CreateDefaultContract(gomock.Any(), int64(21)).Return(nil, errors.New("plan missing"))
				m.tokens.EXPECT().GetPendingInvitationByEmail(gomock.Any(), "ada@example.com").Return(nil, nil)
			},
			wantStatus: types.VerificationStatusContractPending,
		},
		{
			name: "no active company",
			ref:  types.UserRef{ID: 100},
			setupMocks: func(m mocks) {
				m.storage.EXPECT().GetUserByID(gomock.Any(), int64(100)).Return(ada, nil)
				m.identities.EXPECT().MarkEmailVerified(gomock.Any(), "kid-1", "ada@example.com").Return(nil)
				m.tokens.EXPECT().GetPendingInvitationByEmail(gomock.Any(), "ada@example.com").Return(nil, errors.New("ignored"))
			},
			wantStatus: types.VerificationStatusVerified,
		},
		{
			name: "unknown user",
			ref:  types.UserRef{ID: 100},
			setupMocks: func(m mocks) {
				m.storage.EXPECT().GetUserByID(gomock.Any(), int64(100)).Return(nil, storage.ErrNotFound)
			},
			wantErr: apperr.ErrNotFound,
		},
		{
			name: "identity missing at the provider",
			ref:  types.UserRef{ID: 100},
			setupMocks: func(m mocks) {
				m.storage.EXPECT().GetUserByID(gomock.Any(), int64(100)).Return(ada, nil)
				m.identities.EXPECT().MarkEmailVerified(gomock.Any(), "kid-1", "ada@example.com").Return(kratos.ErrIdentityNotFound)
			},
			wantErr: apperr.ErrUnregisteredEmail,
		},
		{
			name: "provider failure",
			ref:  types.UserRef{ID: 100},
			setupMocks: func(m mocks) {
				m.storage.EXPECT().GetUserByID(gomock.Any(), int64(100)).Return(ada, nil)
				m.identities.EXPECT().MarkEmailVerified(gomock.Any(), "kid-1", "ada@example.com").Return(errors.New("timeout"))
			},
			wantErr: apperr.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			tt.setupMocks(m)

			res, err := s.VerifyUser(withCompany(tt.company), tt.ref)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if res.Status != tt.wantStatus || res.PendingInvitation != tt.wantPending {
				t.Fatalf("unexpected result %+v", res)
			}

			if (res.Status == types.VerificationStatusContractPending) != (res.ContractErr != nil) {
				t.Fatalf("contract error must be reported only for contract_pending: %+v", res)
			}
		})
	}
}

func TestService_ConfirmEmail(t *testing.T) {
	company := &types.TenantCompany{ID: 21, TenantID: 9, CompanyID: 3, IsDefault: true}

	t.Run("verified link provisions the free plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)

		m.tokens.EXPECT().ConfirmEmailToken(gomock.Any(), "raw").
			Return(&types.ValidatedToken{InvitationID: 2, Email: "ada@example.com", Tenant: &types.Tenant{ID: 9}}, nil)
		m.storage.EXPECT().GetDefaultTenantCompany(gomock.Any(), int64(9)).Return(company, nil)
		m.storage.EXPECT().GetUserByEmail(gomock.Any(), "ada@example.com").Return(ada, nil)
		m.identities.EXPECT().MarkEmailVerified(gomock.Any(), "kid-1", "ada@example.com").Return(nil)
		m.contracts.EXPECT().CreateDefaultContract(gomock.Any(), int64(21)).Return(&types.DefaultContract{
			Created:  true,
			Contract: &types.Contract{ID: 40, CompanyID: 3, FreeCredits: 100},
		}, nil)
		m.tokens.EXPECT().GetPendingInvitationByEmail(gomock.Any(), "ada@example.com").Return(nil, nil)

		state := requestctx.NewState("exec-1")
		res, err := s.ConfirmEmail(requestctx.WithState(context.Background(), state), "raw")
		if err != nil {
			t.Fatalf("ConfirmEmail() error = %v", err)
		}

		if res.Status != types.VerificationStatusProvisioned || state.TenantID() != 9 || state.Company() != company {
			t.Fatalf("unexpected result %+v, tenant %d", res, state.TenantID())
		}
	})

	t.Run("invitation from another tenant grants membership", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)

		other := &types.TenantCompany{ID: 31, TenantID: 12, CompanyID: 5, IsDefault: true}

		m.tokens.EXPECT().ConfirmEmailToken(gomock.Any(), "raw").
			Return(&types.ValidatedToken{InvitationID: 6, Email: "ada@example.com", Tenant: &types.Tenant{ID: 12}}, nil)
		m.storage.EXPECT().GetDefaultTenantCompany(gomock.Any(), int64(12)).Return(other, nil)
		m.storage.EXPECT().GetUserByEmail(gomock.Any(), "ada@example.com").Return(ada, nil)
		m.identities.EXPECT().MarkEmailVerified(gomock.Any(), "kid-1", "ada@example.com").Return(nil)
		m.contracts.EXPECT().CreateDefaultContract(gomock.Any(), int64(31)).Return(&types.DefaultContract{}, nil)
		m.tokens.EXPECT().GetPendingInvitationByEmail(gomock.Any(), "ada@example.com").Return(nil, nil)
		m.authz.EXPECT().AssignTenantMember(gomock.Any(), int64(12), "kid-1").Return(errors.New("fga down"))

		state := requestctx.NewState("exec-1")
		res, err := s.ConfirmEmail(requestctx.WithState(context.Background(), state), "raw")
		if err != nil {
			t.Fatalf("ConfirmEmail() error = %v", err)
		}

		if res.User != ada || state.TenantID() != 12 {
			t.Fatalf("unexpected result %+v, tenant %d", res, state.TenantID())
		}
	})

	t.Run("expired link verifies nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)
		m.tokens.EXPECT().ConfirmEmailToken(gomock.Any(), "raw").Return(nil, apperr.ErrTokenExpired)

		if _, err := s.ConfirmEmail(context.Background(), "raw"); !errors.Is(err, apperr.ErrTokenExpired) {
			t.Fatalf("expected token_expired, got %v", err)
		}
	})
}
