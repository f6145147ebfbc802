// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_tracing.go -source=../tracing/interfaces.go

func TestTuples(t *testing.T) {
	if got := UserTuple("kid-1"); got != "user:kid-1" {
		t.Errorf("unexpected user tuple %q", got)
	}
	if got := TenantTuple(42); got != "tenant:42" {
		t.Errorf("unexpected tenant tuple %q", got)
	}
}

func TestAuthorizer_AssignTenantOwner(t *testing.T) {
	testCases := []struct {
		name        string
		clientErr   error
		expectedErr bool
	}{
		{name: "success"},
		{name: "client error", clientErr: errors.New("fga down"), expectedErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockAuthzClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			a := NewAuthorizer(mockClient, mockTracer, nil, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.AssignTenantOwner").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockClient.EXPECT().WriteTuple(gomock.Any(), "user:kid-1", OWNER_RELATION, "tenant:7").Return(tc.clientErr)

			err := a.AssignTenantOwner(context.Background(), 7, "kid-1")
			if tc.expectedErr != (err != nil) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestAuthorizer_Membership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := NewMockAuthzClientInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)

	a := NewAuthorizer(mockClient, mockTracer, nil, NewMockLoggerInterface(ctrl))

	mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.AssignTenantMember").
		Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.RemoveTenantMember").
		Return(context.Background(), trace.SpanFromContext(context.Background()))

	gomock.InOrder(
		mockClient.EXPECT().WriteTuple(gomock.Any(), "user:kid-2", MEMBER_RELATION, "tenant:3").Return(nil),
		mockClient.EXPECT().DeleteTuple(gomock.Any(), "user:kid-2", MEMBER_RELATION, "tenant:3").Return(nil),
	)

	if err := a.AssignTenantMember(context.Background(), 3, "kid-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := a.RemoveTenantMember(context.Background(), 3, "kid-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAuthorizer_CheckTenantAccess(t *testing.T) {
	testCases := []struct {
		name           string
		allowed        bool
		clientErr      error
		setupLogger    func(*MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedResult bool
		expectedErr    bool
	}{
		{
			name:           "allowed",
			allowed:        true,
			setupLogger:    func(*MockLoggerInterface, *MockSecurityLoggerInterface) {},
			expectedResult: true,
		},
		{
			name:    "denied logs an authz failure",
			allowed: false,
			setupLogger: func(l *MockLoggerInterface, s *MockSecurityLoggerInterface) {
				l.EXPECT().Security().Return(s)
				s.EXPECT().AuthzFailure("kid-1", "tenant:9")
			},
		},
		{
			name:        "client error",
			clientErr:   errors.New("fga down"),
			setupLogger: func(*MockLoggerInterface, *MockSecurityLoggerInterface) {},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockAuthzClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			a := NewAuthorizer(mockClient, mockTracer, nil, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.CheckTenantAccess").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockClient.EXPECT().Check(gomock.Any(), "user:kid-1", OWNER_RELATION, "tenant:9").Return(tc.allowed, tc.clientErr)
			tc.setupLogger(mockLogger, mockSecurity)

			result, err := a.CheckTenantAccess(context.Background(), 9, "kid-1", OWNER_RELATION)
			if tc.expectedErr != (err != nil) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
			if result != tc.expectedResult {
				t.Fatalf("expected %v, got %v", tc.expectedResult, result)
			}
		})
	}
}
