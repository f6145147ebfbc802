// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package apperr defines the typed errors crossing service boundaries.
// Services return them (or wrap them), HTTP handlers switch on their Kind.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindUnauthorized
	KindNotFound
	KindConflict
	KindInvalidToken
	KindTokenExpired
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInvalidToken:
		return "invalid_token"
	case KindTokenExpired:
		return "token_expired"
	case KindUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// HTTPStatus maps a kind to the status code returned to clients.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation, KindInvalidToken, KindTokenExpired:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error carries a machine readable code next to the kind. Two errors are the
// same for errors.Is when their codes match, so wrapped copies of a sentinel
// still match it.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Wrap returns a copy of e with err as its cause.
func (e *Error) Wrap(err error) *Error {
	cp := *e
	cp.Err = err
	return &cp
}

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// Validation builds a validation error for a dynamic code such as
// domain_restricted.<reason>.
func Validation(code, message string) *Error {
	return New(KindValidation, code, message)
}

// KindOf returns the kind of the first *Error in the chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// CodeOf returns the code of the first *Error in the chain, or "" if none.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// MessageOf returns the client facing message of the first *Error in the chain.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}

var (
	ErrMissingRequiredFields = New(KindValidation, "missing_required_fields", "missing required fields")
	ErrInvalidPhoneNumber    = New(KindValidation, "invalid_phone_number", "invalid phone number")
	ErrBadAddress            = New(KindValidation, "bad_address", "invalid email address")
	ErrInvalidPassword       = New(KindValidation, "invalid_password", "password does not satisfy the password policy")
	ErrUnsupportedLoginType  = New(KindValidation, "unsupported_login_type", "unsupported login type")
	ErrMissingLoginType      = New(KindValidation, "missing_login_type", "missing X-Login-Type header")

	ErrDuplicateEmail = New(KindConflict, "duplicate_email", "email address is already registered")

	ErrInvalidToken = New(KindInvalidToken, "invalid_token", "invalid token")
	ErrTokenExpired = New(KindTokenExpired, "token_expired", "token has expired")

	ErrUnauthenticated = New(KindUnauthorized, "unauthenticated", "authentication required")
	ErrForbidden       = New(KindUnauthorized, "forbidden", "not allowed to access this resource")
	ErrMissingTenantID = New(KindUnauthorized, "missing_tenant_id", "missing tenant id")

	ErrNotFound          = New(KindNotFound, "not_found", "resource not found")
	ErrUnregisteredEmail = New(KindNotFound, "unregistered_email", "email is not registered with the identity provider")

	ErrMaintenanceMode = New(KindUnavailable, "maintenance_mode", "service is under maintenance")

	ErrUnknown = New(KindUnknown, "unknown", "unknown error")
)
