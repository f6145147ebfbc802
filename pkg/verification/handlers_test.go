// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package verification

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/onboarding-service/internal/apperr"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

func TestAPI_Verify(t *testing.T) {
	validToken := strings.Repeat("a", 40) + "_-Z"

	tests := []struct {
		name       string
		token      string
		setupMocks func(*MockServiceInterface)
		location   string
	}{
		{
			name:  "verified",
			token: validToken,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ConfirmEmail(gomock.Any(), validToken).Return(&types.VerificationResult{
					User: &types.User{ID: 1}, Status: types.VerificationStatusProvisioned,
				}, nil)
			},
			location: "https://app.example.com/email_verified",
		},
		{
			name:  "verified without contract",
			token: validToken,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ConfirmEmail(gomock.Any(), validToken).Return(&types.VerificationResult{
					User: &types.User{ID: 1}, Status: types.VerificationStatusContractPending, ContractErr: errors.New("plan"),
				}, nil)
			},
			location: "https://app.example.com/email_verified",
		},
		{
			name:       "malformed token",
			token:      "short",
			setupMocks: func(*MockServiceInterface) {},
			location:   "https://app.example.com/error?message=invalid_token_format",
		},
		{
			name:  "unknown token",
			token: validToken,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ConfirmEmail(gomock.Any(), validToken).Return(nil, apperr.ErrInvalidToken)
			},
			location: "https://app.example.com/error?message=invalid_token",
		},
		{
			name:  "expired token",
			token: validToken,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ConfirmEmail(gomock.Any(), validToken).Return(nil, apperr.ErrTokenExpired)
			},
			location: "https://app.example.com/error?message=token_expired",
		},
		{
			name:  "provider failure",
			token: validToken,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ConfirmEmail(gomock.Any(), validToken).Return(nil, apperr.ErrUnknown.Wrap(errors.New("timeout")))
			},
			location: "https://app.example.com/error?message=unknown",
		},
		{
			name:  "unexpected failure",
			token: validToken,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ConfirmEmail(gomock.Any(), validToken).Return(nil, errors.New("db down"))
			},
			location: "https://app.example.com/error?message=unexpected_error_occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockServiceInterface(ctrl)
			tt.setupMocks(svc)

			mux := chi.NewRouter()
			NewAPI(svc, "https://app.example.com/", tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodGet, "/verify/"+tt.token, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != http.StatusFound {
				t.Fatalf("expected redirect, got %d", w.Code)
			}

			if got := w.Header().Get("Location"); got != tt.location {
				t.Fatalf("expected location %s, got %s", tt.location, got)
			}
		})
	}
}
