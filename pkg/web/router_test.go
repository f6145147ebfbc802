// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/mock/gomock"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/maintenance"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/requestctx"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
	"github.com/canonical/onboarding-service/internal/version"
	"github.com/canonical/onboarding-service/pkg/signup"
)

type fakeDB struct{}

func (fakeDB) Statement(context.Context) sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

func (fakeDB) WithTx(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }

func (fakeDB) Ping(context.Context) error { return nil }

func (fakeDB) Close() {}

func newTestRouter(t *testing.T, prefix string, maintenanceOn bool, signUp signup.ServiceInterface) http.Handler {
	t.Helper()

	hasher, err := requestctx.NewHasher("tenant", 8)
	if err != nil {
		t.Fatalf("failed to create hasher: %v", err)
	}

	tracer := tracing.NewNoopTracer()
	logger := logging.NewNoopLogger()

	return NewRouter(
		Config{RoutePrefix: prefix, BodyLimit: 1024, WebhookAPIKey: "hook-secret"},
		Services{
			SignUp:      signUp,
			Hasher:      hasher,
			Maintenance: maintenance.NewChecker(maintenanceOn, nil, "", tracer, logger),
		},
		fakeDB{},
		tracer,
		monitoring.NewNoopMonitor("test"),
		logger,
	)
}

func TestRouterOperationalEndpoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newTestRouter(t, "/api", false, signup.NewMockServiceInterface(ctrl))

	for _, path := range []string{"/api/v0/status", "/api/v0/ready", "/api/version"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}

		if w.Header().Get("x-version") != version.Version || w.Header().Get("x-powered-by") != version.Name {
			t.Errorf("%s: missing version headers", path)
		}
	}
}

func TestRouterUnknownEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newTestRouter(t, "/api", false, signup.NewMockServiceInterface(ctrl))

	req := httptest.NewRequest(http.MethodDelete, "/api/nowhere", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	var body notFoundResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}

	expected := notFoundResponse{Path: "/api/nowhere", Code: "unknown_endpoint", Method: http.MethodDelete}
	if body != expected {
		t.Fatalf("expected %+v, got %+v", expected, body)
	}
}

func TestRouterSignUp(t *testing.T) {
	tests := []struct {
		name          string
		maintenanceOn bool
		expectCall    bool
		expectedCode  int
	}{
		{
			name:         "routed under the prefix",
			expectCall:   true,
			expectedCode: http.StatusOK,
		},
		{
			name:          "maintenance mode",
			maintenanceOn: true,
			expectedCode:  http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := signup.NewMockServiceInterface(ctrl)
			if tt.expectCall {
				svc.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(&types.User{Email: "ada@example.com", FirstName: "Ada"}, nil)
			}

			router := newTestRouter(t, "/api", tt.maintenanceOn, svc)

			body := `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","password":"s3cret-pass","companyName":"Analytical"}`
			req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-up", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedCode {
				t.Fatalf("expected %d, got %d: %s", tt.expectedCode, w.Code, w.Body.String())
			}
		})
	}
}

func TestMaskPasswords(t *testing.T) {
	out := maskPasswords([]byte(`{"email":"a@b.c","password":"hunter2","nested":{"newPassword":"x"}}`))

	if strings.Contains(out, "hunter2") || strings.Contains(out, `"x"`) {
		t.Fatalf("password leaked in %s", out)
	}

	if !strings.Contains(out, "a@b.c") {
		t.Fatalf("non secret field dropped in %s", out)
	}

	if maskPasswords([]byte("not json")) != "<non-json body>" {
		t.Fatalf("expected non-json marker")
	}
}

func TestRouterWebhookRequiresKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newTestRouter(t, "/api", false, signup.NewMockServiceInterface(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/registration", strings.NewReader(`{"id":"kid-1"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
