// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/onboarding-service/internal/apperr"
	"github.com/canonical/onboarding-service/internal/logging"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
		codeField      string
	}{
		{
			name:           "validation error",
			err:            apperr.ErrBadAddress,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "bad_address",
			codeField:      "code",
		},
		{
			name:           "wrapped conflict",
			err:            fmt.Errorf("signup: %w", apperr.ErrDuplicateEmail),
			expectedStatus: http.StatusConflict,
			expectedCode:   "duplicate_email",
			codeField:      "code",
		},
		{
			name:           "unauthorized shape",
			err:            apperr.ErrInvalidToken.Wrap(errors.New("bad sig")),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "invalid_token",
			codeField:      "code",
		},
		{
			name:           "unauthenticated",
			err:            apperr.ErrUnauthenticated,
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "unauthenticated",
			codeField:      "error",
		},
		{
			name:           "plain error",
			err:            errors.New("db down"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "unknown_error",
			codeField:      "code",
		},
		{
			name:           "typed unknown error",
			err:            apperr.ErrUnknown,
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "unknown_error",
			codeField:      "code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)

			WriteError(w, r, tt.err, logging.NewNoopLogger())

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			body := map[string]any{}
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}

			if body[tt.codeField] != tt.expectedCode {
				t.Fatalf("expected %s %q, got %v", tt.codeField, tt.expectedCode, body)
			}
		})
	}
}
