// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package validation

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/onboarding-service/internal/apperr"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package validation -destination ./mock_interfaces.go -source=./interfaces.go

func TestValidator_ValidateSignUpRequest(t *testing.T) {
	tests := []struct {
		name         string
		email        string
		phone        string
		setupMocks   func(*MockIdentityLookupInterface, *MockDomainPolicyInterface)
		expectedCode string
	}{
		{
			name:  "valid without phone",
			email: "ada@example.com",
			setupMocks: func(i *MockIdentityLookupInterface, p *MockDomainPolicyInterface) {
				i.EXPECT().GetIdentityIDByEmail(gomock.Any(), "ada@example.com").Return("", nil)
				p.EXPECT().Restricted(gomock.Any(), "example.com", "com").Return("", nil)
			},
		},
		{
			name:  "valid international phone",
			email: "ada@mail.example.co.uk",
			phone: "+44 20 7946 0958",
			setupMocks: func(i *MockIdentityLookupInterface, p *MockDomainPolicyInterface) {
				i.EXPECT().GetIdentityIDByEmail(gomock.Any(), gomock.Any()).Return("", nil)
				p.EXPECT().Restricted(gomock.Any(), "example.co.uk", "co.uk").Return("", nil)
			},
		},
		{
			name:  "public suffix domain falls back to the raw domain",
			email: "ada@co.uk",
			setupMocks: func(i *MockIdentityLookupInterface, p *MockDomainPolicyInterface) {
				i.EXPECT().GetIdentityIDByEmail(gomock.Any(), "ada@co.uk").Return("", nil)
				p.EXPECT().Restricted(gomock.Any(), "co.uk", "co.uk").Return("", nil)
			},
		},
		{
			name:  "public suffix domain is still subject to the policy",
			email: "ada@co.uk",
			setupMocks: func(i *MockIdentityLookupInterface, p *MockDomainPolicyInterface) {
				i.EXPECT().GetIdentityIDByEmail(gomock.Any(), "ada@co.uk").Return("", nil)
				p.EXPECT().Restricted(gomock.Any(), "co.uk", "co.uk").Return("true", nil)
			},
			expectedCode: "domain_restricted.other",
		},
		{
			name:         "unparseable phone is checked before email",
			email:        "not-an-email",
			phone:        "hello",
			setupMocks:   func(*MockIdentityLookupInterface, *MockDomainPolicyInterface) {},
			expectedCode: "invalid_phone_number",
		},
		{
			name:         "invalid phone number",
			email:        "ada@example.com",
			phone:        "+1 000",
			setupMocks:   func(*MockIdentityLookupInterface, *MockDomainPolicyInterface) {},
			expectedCode: "invalid_phone_number",
		},
		{
			name:         "bad address skips the provider",
			email:        "ada@@example",
			setupMocks:   func(*MockIdentityLookupInterface, *MockDomainPolicyInterface) {},
			expectedCode: "bad_address",
		},
		{
			name:  "duplicate email",
			email: "ada@example.com",
			setupMocks: func(i *MockIdentityLookupInterface, _ *MockDomainPolicyInterface) {
				i.EXPECT().GetIdentityIDByEmail(gomock.Any(), "ada@example.com").Return("kid-1", nil)
			},
			expectedCode: "duplicate_email",
		},
		{
			name:  "provider lookup failure does not block",
			email: "ada@example.com",
			setupMocks: func(i *MockIdentityLookupInterface, p *MockDomainPolicyInterface) {
				i.EXPECT().GetIdentityIDByEmail(gomock.Any(), "ada@example.com").Return("", errors.New("kratos down"))
				p.EXPECT().Restricted(gomock.Any(), "example.com", "com").Return("", nil)
			},
		},
		{
			name:  "restricted domain",
			email: "ada@blocked.io",
			setupMocks: func(i *MockIdentityLookupInterface, p *MockDomainPolicyInterface) {
				i.EXPECT().GetIdentityIDByEmail(gomock.Any(), gomock.Any()).Return("", nil)
				p.EXPECT().Restricted(gomock.Any(), "blocked.io", "io").Return("disposable", nil)
			},
			expectedCode: "domain_restricted.disposable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			identities := NewMockIdentityLookupInterface(ctrl)
			policy := NewMockDomainPolicyInterface(ctrl)
			tt.setupMocks(identities, policy)

			v := NewValidator(identities, policy, "ZZ", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			err := v.ValidateSignUpRequest(context.Background(), tt.email, tt.phone)

			if tt.expectedCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			if got := apperr.CodeOf(err); got != tt.expectedCode {
				t.Fatalf("expected code %q, got %q (%v)", tt.expectedCode, got, err)
			}
		})
	}
}

func TestOpenDomainPolicy(t *testing.T) {
	reason, err := OpenDomainPolicy{}.Restricted(context.Background(), "example.com", "com")
	if err != nil || reason != "" {
		t.Fatalf("open policy must never restrict, got %q %v", reason, err)
	}
}
