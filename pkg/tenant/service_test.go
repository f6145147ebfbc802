// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/onboarding-service/internal/apperr"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/requestctx"
	"github.com/canonical/onboarding-service/internal/storage"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_interfaces.go -source=./interfaces.go

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type testDeps struct {
	storage *MockStorageInterface
	tx      *MockTxRunnerInterface
	email   *MockEmailSenderInterface
}

func newTestService(ctrl *gomock.Controller) (*Service, testDeps) {
	deps := testDeps{
		storage: NewMockStorageInterface(ctrl),
		tx:      NewMockTxRunnerInterface(ctrl),
		email:   NewMockEmailSenderInterface(ctrl),
	}

	s := NewService(
		deps.storage, deps.tx, deps.email,
		24*time.Hour, "https://app.example.com/sign-up?invitation=",
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger(),
	)
	s.now = func() time.Time { return fixedNow }

	return s, deps
}

func contextWithTenant(tenantID int64) context.Context {
	state := requestctx.NewState("exec-1")
	state.SetTenantID(tenantID)
	return requestctx.WithState(context.Background(), state)
}

func TestService_InitializeNewTenant(t *testing.T) {
	defaultCompany := &types.TenantCompany{ID: 11, TenantID: 5, CompanyID: 3, IsDefault: true}

	tests := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		wantCreated bool
		wantTenant  int64
		wantErr     bool
	}{
		{
			name: "company already has a tenant",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetTenantCompanyByCompanyID(gomock.Any(), int64(3)).Return(&types.TenantCompany{ID: 12, TenantID: 5, CompanyID: 3}, nil)
				s.EXPECT().GetDefaultTenantCompany(gomock.Any(), int64(5)).Return(defaultCompany, nil)
			},
			wantTenant: 5,
		},
		{
			name: "existing tenant without default company falls back to the bound one",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetTenantCompanyByCompanyID(gomock.Any(), int64(3)).Return(&types.TenantCompany{ID: 12, TenantID: 5, CompanyID: 3}, nil)
				s.EXPECT().GetDefaultTenantCompany(gomock.Any(), int64(5)).Return(nil, storage.ErrNotFound)
			},
			wantTenant: 5,
		},
		{
			name: "new tenant",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetTenantCompanyByCompanyID(gomock.Any(), int64(3)).Return(nil, storage.ErrNotFound)
				s.EXPECT().CreateTenant(gomock.Any(), &types.Tenant{DisplayName: "Acme"}).Return(&types.Tenant{ID: 9, DisplayName: "Acme"}, nil)
				s.EXPECT().CreateTenantCompany(gomock.Any(), &types.TenantCompany{
					TenantID: 9, CompanyID: 3, DisplayName: "Acme", AccessLevel: types.AccessLevelBasic, IsDefault: true,
				}).Return(&types.TenantCompany{ID: 21, TenantID: 9, CompanyID: 3, IsDefault: true}, nil)
				s.EXPECT().CreateTenantTeam(gomock.Any(), &types.TenantTeam{TenantID: 9, DisplayName: "Default", IsDefault: true}).
					Return(&types.TenantTeam{ID: 31, TenantID: 9, DisplayName: "Default", IsDefault: true}, nil)
			},
			wantCreated: true,
			wantTenant:  9,
		},
		{
			name: "team creation fails",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetTenantCompanyByCompanyID(gomock.Any(), int64(3)).Return(nil, storage.ErrNotFound)
				s.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(&types.Tenant{ID: 9}, nil)
				s.EXPECT().CreateTenantCompany(gomock.Any(), gomock.Any()).Return(&types.TenantCompany{ID: 21, TenantID: 9}, nil).AnyTimes()
				s.EXPECT().CreateTenantTeam(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
			},
			wantErr: true,
		},
		{
			name: "lookup error",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetTenantCompanyByCompanyID(gomock.Any(), int64(3)).Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, deps := newTestService(ctrl)
			tt.setupMocks(deps.storage)

			state := requestctx.NewState("exec-1")
			ctx := requestctx.WithState(context.Background(), state)

			res, err := s.InitializeNewTenant(ctx, types.NewTenantOptions{DisplayName: "Acme", CompanyID: 3})
			if (err != nil) != tt.wantErr {
				t.Fatalf("InitializeNewTenant() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				if state.TenantID() != 0 {
					t.Fatalf("tenant must not be attached on failure")
				}
				return
			}

			if res.Created != tt.wantCreated || res.TenantID != tt.wantTenant {
				t.Fatalf("unexpected result %+v", res)
			}

			if state.TenantID() != tt.wantTenant || state.Company() != res.Company || state.Impersonated() {
				t.Fatalf("request state not populated: tenant %d company %v", state.TenantID(), state.Company())
			}

			if res.Company.TenantID != res.TenantID {
				t.Fatalf("company belongs to tenant %d, expected %d", res.Company.TenantID, res.TenantID)
			}

			if tt.wantCreated && (state.Team() == nil || state.Team().TenantID != res.TenantID) {
				t.Fatalf("team not attached: %+v", state.Team())
			}
		})
	}
}

func TestService_IssueAndValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, deps := newTestService(ctrl)

	var stored *types.TenantInvitation
	deps.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, i *types.TenantInvitation) (*types.TenantInvitation, error) {
			stored = &types.TenantInvitation{ID: 1, TenantID: i.TenantID, Email: i.Email, Token: i.Token, ExpiresAt: i.ExpiresAt}
			return stored, nil
		},
	)

	issued, err := s.IssueInvitation(context.Background(), 5, " Ada@Example.com ")
	if err != nil {
		t.Fatalf("IssueInvitation() error = %v", err)
	}

	raw, err := base64.RawURLEncoding.DecodeString(issued.RawToken)
	if err != nil || len(raw) != tokenBytes {
		t.Fatalf("raw token is not %d base64url bytes: %v", tokenBytes, err)
	}

	if stored.Token == issued.RawToken || stored.Token != HashToken(issued.RawToken) {
		t.Fatalf("persisted token must be the sha256 of the raw token")
	}

	if stored.Email != "ada@example.com" || !stored.ExpiresAt.Equal(fixedNow.Add(24*time.Hour)) {
		t.Fatalf("unexpected invitation %+v", stored)
	}

	deps.storage.EXPECT().GetInvitationByToken(gomock.Any(), HashToken(issued.RawToken)).Return(stored, nil)
	deps.storage.EXPECT().GetTenantByID(gomock.Any(), int64(5)).Return(&types.Tenant{ID: 5}, nil)

	v, err := s.ValidateEmailToken(context.Background(), issued.RawToken)
	if err != nil {
		t.Fatalf("ValidateEmailToken() error = %v", err)
	}

	if v.Email != "ada@example.com" || v.Tenant.ID != 5 || v.InvitationID != 1 {
		t.Fatalf("unexpected validation %+v", v)
	}
}

func TestService_ValidateEmailToken(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*MockStorageInterface)
		wantErr    error
	}{
		{
			name: "unknown token",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetInvitationByToken(gomock.Any(), HashToken("raw")).Return(nil, storage.ErrNotFound)
			},
			wantErr: apperr.ErrInvalidToken,
		},
		{
			name: "expired token",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetInvitationByToken(gomock.Any(), HashToken("raw")).
					Return(&types.TenantInvitation{ID: 1, TenantID: 5, ExpiresAt: fixedNow.Add(-time.Second)}, nil)
			},
			wantErr: apperr.ErrTokenExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, deps := newTestService(ctrl)
			tt.setupMocks(deps.storage)

			if _, err := s.ValidateEmailToken(context.Background(), "raw"); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestService_ConfirmEmailToken(t *testing.T) {
	runTx := func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }

	tests := []struct {
		name       string
		setupMocks func(*MockStorageInterface)
		wantErr    error
	}{
		{
			name: "consumes the token",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetInvitationByToken(gomock.Any(), HashToken("raw")).
					Return(&types.TenantInvitation{ID: 1, TenantID: 5, Email: "ada@example.com", ExpiresAt: fixedNow.Add(time.Hour)}, nil)
				s.EXPECT().GetTenantByID(gomock.Any(), int64(5)).Return(&types.Tenant{ID: 5}, nil)
				s.EXPECT().MarkEmailVerified(gomock.Any(), "ada@example.com").Return(int64(1), nil)
				s.EXPECT().MarkInvitationVerified(gomock.Any(), int64(1)).Return(nil)
			},
		},
		{
			name: "already consumed token can be confirmed again",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetInvitationByToken(gomock.Any(), HashToken("raw")).
					Return(&types.TenantInvitation{ID: 1, TenantID: 5, Email: "ada@example.com", Verified: true, ExpiresAt: fixedNow.Add(time.Hour)}, nil)
				s.EXPECT().GetTenantByID(gomock.Any(), int64(5)).Return(&types.Tenant{ID: 5}, nil)
				s.EXPECT().MarkEmailVerified(gomock.Any(), "ada@example.com").Return(int64(0), nil)
				s.EXPECT().MarkInvitationVerified(gomock.Any(), int64(1)).Return(nil)
			},
		},
		{
			name: "expired token verifies nothing",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetInvitationByToken(gomock.Any(), HashToken("raw")).
					Return(&types.TenantInvitation{ID: 1, TenantID: 5, Email: "ada@example.com", ExpiresAt: fixedNow.Add(-time.Hour)}, nil)
			},
			wantErr: apperr.ErrTokenExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, deps := newTestService(ctrl)
			deps.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
			tt.setupMocks(deps.storage)

			v, err := s.ConfirmEmailToken(context.Background(), "raw")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil || v.Email != "ada@example.com" {
				t.Fatalf("unexpected result %+v, %v", v, err)
			}
		})
	}
}

func TestService_InviteMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, deps := newTestService(ctrl)

	var hash string
	deps.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, i *types.TenantInvitation) (*types.TenantInvitation, error) {
			hash = i.Token
			return &types.TenantInvitation{ID: 4, TenantID: i.TenantID, Email: i.Email, Token: i.Token, ExpiresAt: i.ExpiresAt}, nil
		},
	)
	deps.email.EXPECT().SendEmailNotification(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n types.EmailNotification) error {
			link, _ := n.Params["Link"].(string)
			raw := link[len("https://app.example.com/sign-up?invitation="):]
			if n.Template != types.EmailTemplateInviteUser || n.To != "bob@example.com" || HashToken(raw) != hash {
				t.Errorf("unexpected notification %+v", n)
			}
			return nil
		},
	)

	invitation, err := s.InviteMember(contextWithTenant(5), "bob@example.com")
	if err != nil {
		t.Fatalf("InviteMember() error = %v", err)
	}

	if invitation.TenantID != 5 {
		t.Fatalf("invitation issued for tenant %d", invitation.TenantID)
	}
}

func TestService_InviteMemberWithoutTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _ := newTestService(ctrl)

	if _, err := s.InviteMember(context.Background(), "bob@example.com"); !errors.Is(err, apperr.ErrMissingTenantID) {
		t.Fatalf("expected missing tenant, got %v", err)
	}
}

func TestService_GetInvitation(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*MockStorageInterface)
		wantErr    error
	}{
		{
			name: "same tenant",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetInvitationByID(gomock.Any(), int64(4)).Return(&types.TenantInvitation{ID: 4, TenantID: 5}, nil)
			},
		},
		{
			name: "other tenant is hidden",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetInvitationByID(gomock.Any(), int64(4)).Return(&types.TenantInvitation{ID: 4, TenantID: 6}, nil)
			},
			wantErr: apperr.ErrNotFound,
		},
		{
			name: "missing",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetInvitationByID(gomock.Any(), int64(4)).Return(nil, storage.ErrNotFound)
			},
			wantErr: apperr.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, deps := newTestService(ctrl)
			tt.setupMocks(deps.storage)

			_, err := s.GetInvitation(contextWithTenant(5), 4)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestService_PendingAndRemoveInvitations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, deps := newTestService(ctrl)

	deps.storage.EXPECT().GetPendingInvitationByEmail(gomock.Any(), "ada@example.com").Return(nil, storage.ErrNotFound)
	deps.storage.EXPECT().DeleteInvitationsByEmail(gomock.Any(), int64(5), "ada@example.com").Return(int64(2), nil)

	pending, err := s.GetPendingInvitationByEmail(context.Background(), "ada@example.com")
	if err != nil || pending != nil {
		t.Fatalf("expected no pending invitation, got %+v %v", pending, err)
	}

	n, err := s.RemoveInvitationByEmail(contextWithTenant(5), "ada@example.com")
	if err != nil || n != 2 {
		t.Fatalf("expected 2 removed, got %d %v", n, err)
	}
}

func TestService_GetInvitedMember(t *testing.T) {
	tests := []struct {
		name       string
		user       *types.User
		err        error
		wantMember bool
		wantErr    bool
	}{
		{name: "member of another tenant", user: &types.User{ID: 7, KratosIdentityID: "kid-2", TenantID: 8}, wantMember: true},
		{name: "user of the request tenant", user: &types.User{ID: 7, KratosIdentityID: "kid-2", TenantID: 5}},
		{name: "unregistered email", err: storage.ErrNotFound},
		{name: "storage failure", err: errors.New("db down"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, deps := newTestService(ctrl)
			deps.storage.EXPECT().GetUserByEmail(gomock.Any(), "bob@example.com").Return(tt.user, tt.err)

			member, err := s.GetInvitedMember(contextWithTenant(5), "bob@example.com")
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}

			if (member != nil) != tt.wantMember {
				t.Fatalf("expected member %v, got %+v", tt.wantMember, member)
			}
		})
	}
}
