// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package web assembles the HTTP surface: middleware chain, route
// guard and every API's endpoints.
package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tcpfleet/agent-platform/internal/authorization"
	"github.com/tcpfleet/agent-platform/internal/config"
	"github.com/tcpfleet/agent-platform/internal/db"
	"github.com/tcpfleet/agent-platform/internal/logging"
	"github.com/tcpfleet/agent-platform/internal/monitoring"
	"github.com/tcpfleet/agent-platform/internal/storage"
	"github.com/tcpfleet/agent-platform/internal/tracing"
	"github.com/tcpfleet/agent-platform/pkg/accounts"
	"github.com/tcpfleet/agent-platform/pkg/agents"
	"github.com/tcpfleet/agent-platform/pkg/authentication"
	"github.com/tcpfleet/agent-platform/pkg/billing"
	"github.com/tcpfleet/agent-platform/pkg/gate"
	"github.com/tcpfleet/agent-platform/pkg/identity"
	"github.com/tcpfleet/agent-platform/pkg/metrics"
	"github.com/tcpfleet/agent-platform/pkg/projects"
	"github.com/tcpfleet/agent-platform/pkg/status"
	"github.com/tcpfleet/agent-platform/pkg/team"
)

func NewRouter(
	cfg *config.EnvSpec,
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	codec := authentication.NewTokenCodec([]byte(cfg.AuthSecret), cfg.AgentTokenLifetime)
	sessions := authentication.NewSessionManager(codec, cfg.SessionLifetime, cfg.SecureCookies, tracer, monitor, logger)
	hasher := authentication.NewHasher()
	authorizer := authorization.NewAuthorizer(logger)

	resolver := identity.NewResolver(s, codec, tracer, monitor, logger)
	identityMw := identity.NewMiddleware(resolver, sessions, tracer, monitor, logger)
	routeGate := gate.NewGate(gate.DefaultConfig(), sessions, tracer, monitor, logger)

	billingService := billing.NewService(s, cfg.BillingProviderURL, tracer, monitor, logger)
	accountsService := accounts.NewService(s, hasher, billingService, tracer, monitor, logger)
	teamService := team.NewService(s, authorizer, cfg.InvitationLifetime, tracer, monitor, logger)
	projectsService := projects.NewService(s, authorizer, tracer, monitor, logger)
	agentsService := agents.NewService(s, authorizer, codec, hasher,
		cfg.RegistrationTokenLifetime, cfg.AgentTokenLifetime, tracer, monitor, logger)

	router.Use(
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
		routeGate.Middleware(),
		identityMw.UserContext(),
		db.TransactionMiddleware(dbClient, logger),
	)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(dbClient, tracer, monitor, logger).RegisterEndpoints(router)
	billing.NewAPI(billingService, []byte(cfg.BillingWebhookSecret), logger).RegisterEndpoints(router)

	accounts.NewAPI(accountsService, sessions, logger).RegisterEndpoints(router)
	team.NewAPI(teamService, logger).RegisterEndpoints(router)
	projects.NewAPI(projectsService, logger).RegisterEndpoints(router)

	agentsAPI := agents.NewAPI(agentsService, logger)
	agentsAPI.RegisterEndpoints(router)

	// Agent-facing routes carry a Bearer token signed with the agent's
	// own credentials.
	router.Group(func(r chi.Router) {
		r.Use(identityMw.AgentAuth())
		agentsAPI.RegisterAgentEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
