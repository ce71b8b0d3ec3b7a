// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package metrics serves the Prometheus scrape endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus/promhttp"

	chi "github.com/go-chi/chi/v5"

	"github.com/tcpfleet/agent-platform/internal/logging"
)

type API struct {
	logger logging.LoggerInterface
}

func NewAPI(logger logging.LoggerInterface) *API {
	return &API{logger: logger}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Handle("/api/v1/metrics", promhttp.Handler())
}
