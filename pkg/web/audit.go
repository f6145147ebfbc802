// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/canonical/onboarding-service/internal/logging"
)

const maskedValue = "********"

// auditLog logs every request at debug level, JSON bodies have their
// password fields masked.
func auditLog(logger logging.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body string

			if r.Body != nil && r.Body != http.NoBody {
				raw, err := io.ReadAll(r.Body)
				if err != nil {
					logger.Debugf("failed to read request body for audit: %v", err)
				}
				r.Body = io.NopCloser(bytes.NewReader(raw))
				body = maskPasswords(raw)
			}

			logger.Debugw(
				"request",
				"method", r.Method,
				"path", r.URL.Path,
				"remote", r.RemoteAddr,
				"body", body,
			)

			next.ServeHTTP(w, r)
		})
	}
}

func maskPasswords(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "<non-json body>"
	}

	mask(payload)

	out, err := json.Marshal(payload)
	if err != nil {
		return "<unprintable body>"
	}

	return string(out)
}

func mask(payload map[string]any) {
	for k, v := range payload {
		if strings.Contains(strings.ToLower(k), "password") {
			payload[k] = maskedValue
			continue
		}

		if nested, ok := v.(map[string]any); ok {
			mask(nested)
		}
	}
}
