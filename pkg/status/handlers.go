// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/onboarding-service/internal/http/types"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/version"
)

const (
	okValue          = 1.0
	koValue          = 0.0
	readinessTimeout = 2 * time.Second
)

type BuildInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type Status struct {
	Status    string     `json:"status"`
	BuildInfo *BuildInfo `json:"buildInfo,omitempty"`
}

type API struct {
	db PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/ready", a.ready)
}

// RegisterVersionEndpoint mounts the public build info endpoint, it lives
// under the application route prefix.
func (a *API) RegisterVersionEndpoint(mux chi.Router) {
	mux.Get("/version", a.version)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	httptypes.WriteJSON(w, http.StatusOK, Status{Status: "ok", BuildInfo: buildInfo()})
}

func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, readinessTimeout)
	defer cancel()

	if err := a.db.Ping(ctx); err != nil {
		a.logger.Errorf("database not reachable: %v", err)
		a.setAvailability("database", koValue)
		httptypes.WriteJSON(w, http.StatusServiceUnavailable, Status{Status: "unavailable"})
		return
	}

	a.setAvailability("database", okValue)
	httptypes.WriteJSON(w, http.StatusOK, Status{Status: "ok"})
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	httptypes.WriteJSON(w, http.StatusOK, buildInfo())
}

func (a *API) setAvailability(component string, value float64) {
	if err := a.monitor.SetDependencyAvailability(map[string]string{"component": component}, value); err != nil {
		a.logger.Debugf("failed to set availability of %s: %v", component, err)
	}
}

func buildInfo() *BuildInfo {
	return &BuildInfo{Name: version.Name, Version: version.Version}
}

func NewAPI(db PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.db = db

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
