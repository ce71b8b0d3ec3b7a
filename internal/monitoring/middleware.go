// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tcpfleet/agent-platform/internal/logging"
)

// Middleware records per-route response times on the monitor.
type Middleware struct {
	monitor MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(monitor MonitorInterface, logger logging.LoggerInterface) *Middleware {
	m := new(Middleware)

	m.monitor = monitor
	m.logger = logger

	return m
}

func (m *Middleware) ResponseTime() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(ww, r)

			// The route pattern is only populated after chi has matched,
			// hence recording on the way out.
			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}

			tags := map[string]string{
				"route":  route,
				"method": r.Method,
				"status": http.StatusText(ww.status),
			}

			if err := m.monitor.SetResponseTimeMetric(tags, time.Since(start).Seconds()); err != nil {
				m.logger.Errorf("failed to record response time: %v", err)
			}
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
