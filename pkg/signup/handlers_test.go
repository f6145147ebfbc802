// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package signup

import (
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

const validBody = `{"firstName":"Ada","lastName":"Lovelace","email":"ada@acme.io","password":"secret-pass","companyName":"Acme"}`

func TestAPI_SignUp(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setupMocks   func(*MockServiceInterface)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: validBody,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().SignUp(gomock.Any(), SignUpRequest{
					FirstName: "Ada", LastName: "Lovelace", Email: "ada@acme.io", Password: "secret-pass", CompanyName: "Acme",
				}).Return(&types.User{ID: 1, Email: "ada@acme.io", FirstName: "Ada", LastName: "Lovelace"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"status":"success","user":{"email":"ada@acme.io","firstName":"Ada","lastName":"Lovelace","photoURL":""}}`,
		},
		{
			name:         "missing company name",
			body:         `{"firstName":"Ada","lastName":"Lovelace","email":"ada@acme.io","password":"secret-pass"}`,
			setupMocks:   func(*MockServiceInterface) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `"code":"missing_required_fields"`,
		},
		{
			name:         "malformed body",
			body:         `{`,
			setupMocks:   func(*MockServiceInterface) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `"code":"missing_required_fields"`,
		},
		{
			name: "duplicate email",
			body: validBody,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(nil, apperr.ErrDuplicateEmail)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `"code":"duplicate_email"`,
		},
		{
			name: "restricted domain",
			body: validBody,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(nil, apperr.Validation("domain_restricted.other", "restricted"))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `"code":"domain_restricted.other"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockServiceInterface(ctrl)
			tt.setupMocks(svc)

			mux := chi.NewRouter()
			NewAPI(svc, 0, tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/auth/sign-up", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedCode, w.Code, w.Body.String())
			}

			if !strings.Contains(w.Body.String(), tt.expectedBody) {
				t.Fatalf("expected body to contain %s, got %s", tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestAPI_SignUpRateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockServiceInterface(ctrl)
	svc.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(&types.User{ID: 1}, nil).Times(1)

	mux := chi.NewRouter()
	NewAPI(svc, 1, tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterEndpoints(mux)

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/sign-up", strings.NewReader(validBody))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Fatalf("expected [200 429], got %v", codes)
	}
}
