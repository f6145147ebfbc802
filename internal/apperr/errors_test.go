// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorMatching(t *testing.T) {
	cause := errors.New("kratos returned 409")
	wrapped := fmt.Errorf("create user: %w", ErrDuplicateEmail.Wrap(cause))

	if !errors.Is(wrapped, ErrDuplicateEmail) {
		t.Error("expected wrapped error to match its sentinel")
	}
	if errors.Is(wrapped, ErrInvalidPassword) {
		t.Error("expected no match with a different code")
	}
	if !errors.Is(wrapped, cause) {
		t.Error("expected the cause to stay reachable")
	}
	if KindOf(wrapped) != KindConflict {
		t.Errorf("expected conflict kind, got %s", KindOf(wrapped))
	}
	if CodeOf(wrapped) != "duplicate_email" {
		t.Errorf("unexpected code %q", CodeOf(wrapped))
	}
}

func TestKindOfPlainError(t *testing.T) {
	err := errors.New("boom")

	if KindOf(err) != KindUnknown {
		t.Errorf("expected unknown kind, got %s", KindOf(err))
	}
	if CodeOf(err) != "" {
		t.Errorf("expected empty code, got %q", CodeOf(err))
	}
}

func TestKindHTTPStatus(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindInvalidToken, http.StatusBadRequest},
		{KindTokenExpired, http.StatusBadRequest},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindNotFound, http.StatusNotFound},
		{KindConflict, http.StatusConflict},
		{KindUnavailable, http.StatusServiceUnavailable},
		{KindUnknown, http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.kind.String(), func(t *testing.T) {
			if got := test.kind.HTTPStatus(); got != test.expected {
				t.Errorf("expected %d, got %d", test.expected, got)
			}
		})
	}
}

func TestDomainRestricted(t *testing.T) {
	err := Validation("domain_restricted.disposable", "email domain is not allowed")

	if KindOf(err) != KindValidation {
		t.Errorf("expected validation kind, got %s", KindOf(err))
	}
	if CodeOf(err) != "domain_restricted.disposable" {
		t.Errorf("unexpected code %q", CodeOf(err))
	}
}
