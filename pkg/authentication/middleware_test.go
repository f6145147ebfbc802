// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/onboarding-service/internal/apperr"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/requestctx"
	"github.com/canonical/onboarding-service/internal/types"
)

func TestMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name               string
		headers            map[string]string
		setupMocks         func(*MockVerifierInterface)
		expectedStatusCode int
		expectPrincipal    bool
	}{
		{
			name:               "Anonymous request passes through",
			setupMocks:         func(*MockVerifierInterface) {},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "Invalid token format - rejects request",
			headers:            map[string]string{"Authorization": "InvalidToken"},
			setupMocks:         func(*MockVerifierInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:    "Token verification fails - rejects request",
			headers: map[string]string{"Authorization": "Bearer invalid-token"},
			setupMocks: func(m *MockVerifierInterface) {
				m.EXPECT().VerifyToken(gomock.Any(), "invalid-token", types.LoginTypeGoogle).
					Return(nil, apperr.ErrInvalidToken.Wrap(fmt.Errorf("expired")))
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:    "Unsupported login type",
			headers: map[string]string{"Authorization": "Bearer tok", LoginTypeHeader: "facebook"},
			setupMocks: func(m *MockVerifierInterface) {
				m.EXPECT().VerifyToken(gomock.Any(), "tok", types.LoginType("facebook")).
					Return(nil, apperr.ErrUnsupportedLoginType)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:    "Valid credentials token",
			headers: map[string]string{"Authorization": "Bearer valid-token", LoginTypeHeader: "credentials"},
			setupMocks: func(m *MockVerifierInterface) {
				m.EXPECT().VerifyToken(gomock.Any(), "valid-token", types.LoginTypeCredentials).
					Return(&types.Principal{ID: "user-123", LoginType: types.LoginTypeCredentials}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectPrincipal:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockVerifier := NewMockVerifierInterface(ctrl)

			state := requestctx.NewState("exec")
			ctx := requestctx.WithState(context.Background(), state)

			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Middleware.Authenticate").
				Return(ctx, trace.SpanFromContext(ctx))
			tt.setupMocks(mockVerifier)

			m := NewMiddleware(mockVerifier, mockTracer, nil, logging.NewNoopLogger())

			var seen *types.Principal
			handler := m.Authenticate()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = PrincipalFrom(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Fatalf("expected status %d, got %d", tt.expectedStatusCode, rr.Code)
			}

			if tt.expectPrincipal {
				if seen == nil || seen.ID != "user-123" {
					t.Fatalf("expected principal in context, got %v", seen)
				}
				if state.Principal() != seen {
					t.Fatalf("expected principal in request state")
				}
			} else if seen != nil {
				t.Fatalf("expected anonymous request, got %v", seen)
			}
		})
	}
}

func TestMiddleware_RequireUser(t *testing.T) {
	m := NewMiddleware(nil, nil, nil, logging.NewNoopLogger())

	handler := m.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous request, got %d", rr.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithPrincipal(req.Context(), &types.Principal{ID: "kid"}))
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected request to pass, got %d", rr.Code)
	}
}
