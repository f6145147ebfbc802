// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/onboarding-service/internal/db"
	httptypes "github.com/canonical/onboarding-service/internal/http/types"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/maintenance"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/requestctx"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/version"
	"github.com/canonical/onboarding-service/pkg/authentication"
	"github.com/canonical/onboarding-service/pkg/metrics"
	"github.com/canonical/onboarding-service/pkg/signup"
	"github.com/canonical/onboarding-service/pkg/status"
	"github.com/canonical/onboarding-service/pkg/tenant"
	"github.com/canonical/onboarding-service/pkg/verification"
	"github.com/canonical/onboarding-service/pkg/webhooks"
)

const compressionLevel = 5

type Config struct {
	RoutePrefix           string
	BodyLimit             int64
	SignUpRateLimit       int
	VerifyRedirectBaseURL string
	SessionRefreshWindow  time.Duration
	CORSOrigins           []string
	WebhookAPIKey         string
}

// Services groups the domain services exposed over HTTP.
type Services struct {
	SignUp       signup.ServiceInterface
	Verification verification.ServiceInterface
	Webhooks     webhooks.ServiceInterface
	Tenant       tenant.ServiceInterface
	Authorizer   tenant.AuthzInterface
	Verifier     authentication.VerifierInterface
	TokenIssuer  authentication.TokenIssuerInterface
	Hasher       *requestctx.Hasher
	Maintenance  *maintenance.Checker
}

type notFoundResponse struct {
	Path   string `json:"path"`
	Code   string `json:"code"`
	Method string `json:"method"`
}

func NewRouter(
	cfg Config,
	svc Services,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(origins),
		middleware.Compress(compressionLevel),
		poweredBy,
	)

	router.Use(middlewares...)
	router.NotFound(unknownEndpoint)

	statusAPI := status.NewAPI(dbClient, tracer, monitor, logger)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	statusAPI.RegisterEndpoints(router)

	authn := authentication.NewMiddleware(svc.Verifier, tracer, monitor, logger)

	app := func(r chi.Router) {
		r.Use(
			bodyLimit(cfg.BodyLimit),
			auditLog(logger),
			requestctx.NewMiddleware(svc.Hasher, tracer, monitor, logger).HTTPMiddleware,
			svc.Maintenance.Middleware,
		)

		statusAPI.RegisterVersionEndpoint(r)
		authentication.NewAPI(svc.Verifier, svc.TokenIssuer, cfg.SessionRefreshWindow, tracer, logger).RegisterEndpoints(r)
		signup.NewAPI(svc.SignUp, cfg.SignUpRateLimit, tracer, logger).RegisterEndpoints(r)
		verification.NewAPI(svc.Verification, cfg.VerifyRedirectBaseURL, tracer, logger).RegisterEndpoints(r)
		webhooks.NewAPI(svc.Webhooks, cfg.WebhookAPIKey, tracer, logger).RegisterEndpoints(r)

		r.Group(func(r chi.Router) {
			r.Use(db.TransactionMiddleware(dbClient, logger))
			tenant.NewAPI(svc.Tenant, svc.Authorizer, authn, tracer, monitor, logger).RegisterEndpoints(r)
		})
	}

	if cfg.RoutePrefix == "" || cfg.RoutePrefix == "/" {
		router.Group(app)
	} else {
		router.Route(cfg.RoutePrefix, app)
	}

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func poweredBy(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("x-powered-by", version.Name)
		w.Header().Set("x-version", version.Version)
		next.ServeHTTP(w, r)
	})
}

func bodyLimit(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limit > 0 && r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func unknownEndpoint(w http.ResponseWriter, r *http.Request) {
	httptypes.WriteJSON(w, http.StatusNotFound, notFoundResponse{
		Path:   r.URL.Path,
		Code:   "unknown_endpoint",
		Method: r.Method,
	})
}
