// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package status exposes liveness and readiness probes. Both are public
// routes; readiness reports the database dependency.
package status

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/tcpfleet/agent-platform/internal/db"
	"github.com/tcpfleet/agent-platform/internal/http/types"
	"github.com/tcpfleet/agent-platform/internal/logging"
	"github.com/tcpfleet/agent-platform/internal/monitoring"
	"github.com/tcpfleet/agent-platform/internal/tracing"
	"github.com/tcpfleet/agent-platform/internal/version"
)

type API struct {
	db db.DBClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(db db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		db: db,

		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v1/status", a.alive)
	mux.Get("/api/v1/status/ready", a.ready)
	mux.Get("/api/v1/status/version", a.version)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	types.WriteResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	available := 1.0
	if err := a.db.Ping(ctx); err != nil {
		a.logger.Errorf("database ping failed: %v", err)
		available = 0

		if err := a.monitor.SetDependencyAvailability(map[string]string{"component": "postgres"}, available); err != nil {
			a.logger.Errorf("failed to set dependency availability: %v", err)
		}

		types.WriteErrorResponse(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	if err := a.monitor.SetDependencyAvailability(map[string]string{"component": "postgres"}, available); err != nil {
		a.logger.Errorf("failed to set dependency availability: %v", err)
	}

	types.WriteResponse(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	types.WriteResponse(w, http.StatusOK, map[string]string{"version": version.Version})
}
