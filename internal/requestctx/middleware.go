// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package requestctx

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/canonical/onboarding-service/internal/apperr"
	httptypes "github.com/canonical/onboarding-service/internal/http/types"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
)

const (
	// TenantHeader carries the hashids encoded tenant id
	TenantHeader = "x-tenant-id"
	// ExecutionHeader correlates the request with upstream function invocations
	ExecutionHeader = "function-execution-id"
)

type Middleware struct {
	hasher *Hasher

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(hasher *Hasher, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		hasher:  hasher,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HTTPMiddleware attaches a fresh State to every request.
func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "requestctx.Middleware.HTTPMiddleware")
		defer span.End()

		executionID := r.Header.Get(ExecutionHeader)
		if executionID == "" {
			executionID = uuid.NewString()
		}

		state := NewState(executionID)

		if hash := r.Header.Get(TenantHeader); hash != "" {
			tenantID, err := m.hasher.Decode(hash)
			if err != nil {
				m.logger.Debugf("rejecting tenant header %q: %v", hash, err)
				httptypes.WriteError(w, r, apperr.ErrMissingTenantID.Wrap(err), m.logger)
				return
			}
			state.SetTenantID(tenantID)
		}

		w.Header().Set(ExecutionHeader, executionID)
		next.ServeHTTP(w, r.WithContext(WithState(ctx, state)))
	})
}
