// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/onboarding-service/internal/logging"
)

// TransactionMiddleware runs mutating requests inside WithTx. Responses with
// a status of 400 or above roll back every statement the handler issued.
func TransactionMiddleware(db DBClientInterface, logger logging.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			err := db.WithTx(r.Context(), func(txCtx context.Context) error {
				next.ServeHTTP(ww, r.WithContext(txCtx))

				if ww.Status() >= http.StatusBadRequest {
					return fmt.Errorf("request failed with status %d", ww.Status())
				}

				return nil
			})

			if err != nil {
				logger.Debugf("rolled back %s %s: %v", r.Method, r.URL.Path, err)
			}
		})
	}
}
