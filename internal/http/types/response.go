// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/canonical/onboarding-service/internal/apperr"
	"github.com/canonical/onboarding-service/internal/logging"
)

const unknownErrorCode = "unknown_error"

// ErrorResponse is the body written for expected errors.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	TraceID string `json:"traceId,omitempty"`
	ID      string `json:"id"`
}

// UnknownErrorResponse hides the cause, the id ties the response to the log line.
type UnknownErrorResponse struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	TraceID string `json:"traceId,omitempty"`
}

type UnauthorizedResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if body == nil {
		return
	}

	_ = json.NewEncoder(w).Encode(body)
}

// WriteError maps err onto the response. *apperr.Error values keep their code,
// everything else is logged and reported as unknown_error.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger logging.LoggerInterface) {
	id := uuid.NewString()
	traceID := traceIDFromRequest(r)
	kind := apperr.KindOf(err)
	code := apperr.CodeOf(err)

	if code == "" || kind == apperr.KindUnknown {
		logger.Errorw("unexpected error", "id", id, "traceId", traceID, "path", r.URL.Path, "error", err)
		WriteJSON(w, http.StatusInternalServerError, UnknownErrorResponse{ID: id, Code: unknownErrorCode, TraceID: traceID})
		return
	}

	if kind == apperr.KindUnauthorized {
		logger.Security().AuthnFailure(code)
		WriteJSON(w, kind.HTTPStatus(), UnauthorizedResponse{Message: "Unauthorized", Error: code})
		return
	}

	logger.Debugw("request failed", "id", id, "traceId", traceID, "code", code, "error", err)
	WriteJSON(
		w,
		kind.HTTPStatus(),
		ErrorResponse{Code: code, Message: apperr.MessageOf(err), TraceID: traceID, ID: id},
	)
}

func traceIDFromRequest(r *http.Request) string {
	sc := trace.SpanContextFromContext(r.Context())
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}
