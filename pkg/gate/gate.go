// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package gate classifies inbound requests before any handler runs. The
// decision is purely structural (path, cookie presence, bearer header);
// it never touches the database. Fine-grained authorization happens in
// the handlers after the identity middleware has resolved contexts.
package gate

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/tcpfleet/agent-platform/internal/http/types"
	"github.com/tcpfleet/agent-platform/internal/logging"
	"github.com/tcpfleet/agent-platform/internal/monitoring"
	"github.com/tcpfleet/agent-platform/internal/tracing"
	"github.com/tcpfleet/agent-platform/pkg/authentication"
)

// Config names the route classes the gate dispatches on.
type Config struct {
	// PublicPaths pass through with no session at all.
	PublicPaths []string
	// AuthPaths are the sign-in/sign-up pages; a signed-in user is
	// bounced to DashboardPath instead.
	AuthPaths []string
	// APIPrefix routes require a cookie or a bearer header.
	APIPrefix string
	// AgentAPIPrefix routes require a bearer header specifically.
	AgentAPIPrefix string

	SignInPath    string
	DashboardPath string
}

func DefaultConfig() *Config {
	return &Config{
		// Register and authenticate are public: agents present their
		// one-time registration token or secret in the body, not a
		// bearer header.
		PublicPaths: []string{
			"/sign-in", "/sign-up", "/",
			// The credential endpoints themselves cannot demand a session.
			"/api/v1/auth/sign-in", "/api/v1/auth/sign-up",
			"/api/v1/status", "/api/v1/metrics",
			"/api/v1/agent/register", "/api/v1/agent/authenticate",
			// Billing webhooks authenticate with a body signature.
			"/webhooks/billing",
		},
		AuthPaths:      []string{"/sign-in", "/sign-up"},
		APIPrefix:      "/api",
		AgentAPIPrefix: "/api/v1/agent",

		SignInPath:    "/sign-in",
		DashboardPath: "/dashboard",
	}
}

type Gate struct {
	config   *Config
	sessions authentication.SessionManagerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewGate(config *Config, sessions authentication.SessionManagerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Gate {
	if config == nil {
		config = DefaultConfig()
	}

	return &Gate{
		config:   config,
		sessions: sessions,

		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Middleware dispatches each request by route class, in order: auth
// page, API, public, protected page.
func (g *Gate) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := g.tracer.Start(r.Context(), "gate.Gate.Middleware")
			defer span.End()
			r = r.WithContext(ctx)

			path := r.URL.Path
			_, hasCookie := g.sessionCookie(r)
			hasBearer := strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ")

			// Signed-in users have no business on the auth pages.
			if g.matchesAny(path, g.config.AuthPaths) && hasCookie {
				if session, err := g.sessions.Read(r); err == nil && session != nil {
					http.Redirect(w, r, g.config.DashboardPath, http.StatusFound)
					return
				}
				// Invalid session, continue to the auth page.
			}

			if strings.HasPrefix(path, g.config.APIPrefix) && !g.matchesAny(path, g.config.PublicPaths) {
				if g.matches(path, g.config.AgentAPIPrefix) {
					// Structural check only; signature verification is
					// the agent middleware's job.
					if !hasBearer {
						types.WriteErrorResponse(w, http.StatusUnauthorized, "missing or invalid authorization header")
						return
					}
					next.ServeHTTP(w, r)
					return
				}

				if !hasCookie && !hasBearer {
					types.WriteErrorResponse(w, http.StatusUnauthorized, "authentication required")
					return
				}

				next.ServeHTTP(w, r)
				return
			}

			if g.matchesAny(path, g.config.PublicPaths) {
				next.ServeHTTP(w, r)
				return
			}

			// Protected page.
			if !hasCookie {
				g.redirectToSignIn(w, r, path)
				return
			}

			if r.Method == http.MethodGet {
				session, err := g.sessions.Read(r)
				if err != nil {
					g.logger.Debugf("session refresh failed: %v", err)
					g.sessions.Clear(w)
					g.redirectToSignIn(w, r, path)
					return
				}

				// Sliding expiration on side-effect-free requests.
				if err := g.sessions.Refresh(w, session); err != nil {
					g.logger.Errorf("failed to refresh session: %v", err)
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (g *Gate) sessionCookie(r *http.Request) (*http.Cookie, bool) {
	cookie, err := r.Cookie(authentication.SessionCookieName)
	if err != nil {
		return nil, false
	}
	return cookie, true
}

func (g *Gate) redirectToSignIn(w http.ResponseWriter, r *http.Request, originalPath string) {
	target := g.config.SignInPath + "?redirect=" + url.QueryEscape(originalPath)
	http.Redirect(w, r, target, http.StatusFound)
}

func (g *Gate) matches(path, route string) bool {
	return path == route || strings.HasPrefix(path, route+"/")
}

func (g *Gate) matchesAny(path string, routes []string) bool {
	for _, route := range routes {
		if g.matches(path, route) {
			return true
		}
	}
	return false
}
