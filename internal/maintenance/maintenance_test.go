// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package maintenance

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/redis/go-redis/v9"
	"go.uber.org/mock/gomock"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package maintenance -destination ./mock_interfaces.go -source=./interfaces.go

func TestCheckerMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		static         bool
		setupMocks     func(*MockRedisClientInterface)
		expectedStatus int
	}{
		{
			name:           "static flag",
			static:         true,
			setupMocks:     func(*MockRedisClientInterface) {},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name: "redis flag on",
			setupMocks: func(m *MockRedisClientInterface) {
				m.EXPECT().Get(gomock.Any(), "maintenance").Return(redis.NewStringResult("true", nil))
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name: "redis key missing",
			setupMocks: func(m *MockRedisClientInterface) {
				m.EXPECT().Get(gomock.Any(), "maintenance").Return(redis.NewStringResult("", redis.Nil))
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "redis unreachable",
			setupMocks: func(m *MockRedisClientInterface) {
				m.EXPECT().Get(gomock.Any(), "maintenance").Return(redis.NewStringResult("", errors.New("dial tcp")))
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "garbage value",
			setupMocks: func(m *MockRedisClientInterface) {
				m.EXPECT().Get(gomock.Any(), "maintenance").Return(redis.NewStringResult("maybe", nil))
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRedis := NewMockRedisClientInterface(ctrl)
			tt.setupMocks(mockRedis)

			c := NewChecker(tt.static, mockRedis, "maintenance", tracing.NewNoopTracer(), logging.NewNoopLogger())

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			w := httptest.NewRecorder()
			c.Middleware(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/sign-up", nil))

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestCheckerWithoutRedis(t *testing.T) {
	c := NewChecker(false, nil, "maintenance", tracing.NewNoopTracer(), logging.NewNoopLogger())

	if c.Active(httptest.NewRequest(http.MethodGet, "/", nil).Context()) {
		t.Fatalf("expected maintenance off")
	}
}
