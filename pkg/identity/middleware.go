// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"
	"strings"

	"github.com/tcpfleet/agent-platform/internal/http/types"
	"github.com/tcpfleet/agent-platform/internal/logging"
	"github.com/tcpfleet/agent-platform/internal/monitoring"
	"github.com/tcpfleet/agent-platform/internal/tracing"
	"github.com/tcpfleet/agent-platform/pkg/authentication"
)

type Middleware struct {
	resolver ResolverInterface
	sessions authentication.SessionManagerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(resolver ResolverInterface, sessions authentication.SessionManagerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		resolver: resolver,
		sessions: sessions,

		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// UserContext resolves the session cookie, if any, and attaches the
// user context to the request. Requests without a valid session pass
// through untouched; enforcement is the route guard's job.
func (m *Middleware) UserContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.UserContext")
			defer span.End()
			r = r.WithContext(ctx)

			session, err := m.sessions.Read(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			uc, err := m.resolver.ResolveUser(ctx, session)
			if err != nil {
				m.logger.Debugf("session resolution failed: %v", err)
				next.ServeHTTP(w, r)
				return
			}

			// The membership claims signed into the cookie are only hints.
			// Handlers authorize against the contexts the resolver loaded
			// from the membership rows, so a revoked or demoted role is
			// gone on the next request, not when the cookie expires.
			session.Company = uc.Company
			session.Project = uc.Project

			ctx = authentication.WithUserSession(ctx, session)
			ctx = WithUserContext(ctx, uc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AgentAuth authenticates the Bearer token and attaches the agent
// context. Requests without a verified agent are rejected outright.
func (m *Middleware) AgentAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.AgentAuth")
			defer span.End()

			token, found := bearerToken(r.Header)
			if !found {
				types.WriteErrorResponse(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			ac, err := m.resolver.AuthenticateAgent(ctx, token)
			if err != nil {
				m.logger.Debugf("agent authentication failed: %v", err)
				types.WriteErrorResponse(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx = WithAgentContext(ctx, ac)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Only the "Bearer <token>" format is supported (RFC 6750).
func bearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	return strings.TrimPrefix(bearer, "Bearer "), true
}
