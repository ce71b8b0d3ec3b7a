// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package agents

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/tcpfleet/agent-platform/internal/http/types"
	"github.com/tcpfleet/agent-platform/internal/logging"
	"github.com/tcpfleet/agent-platform/internal/types"
	"github.com/tcpfleet/agent-platform/pkg/authentication"
	"github.com/tcpfleet/agent-platform/pkg/identity"
)

const defaultListLimit = 100

type API struct {
	service ServiceInterface

	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

// RegisterEndpoints mounts the user-facing agent management routes and
// the two public agent routes. Register and authenticate carry their
// credentials in the body, so they sit outside the agent bearer check.
func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v1/agents", a.createAgent)
	mux.Get("/api/v1/agents", a.listAgents)
	mux.Get("/api/v1/agents/{agentID}", a.getAgent)
	mux.Put("/api/v1/agents/{agentID}", a.updateAgent)
	mux.Delete("/api/v1/agents/{agentID}", a.deleteAgent)
	mux.Post("/api/v1/agents/{agentID}/rotate-secret", a.rotateSecret)
	mux.Get("/api/v1/agents/{agentID}/activity", a.listActivity)
	mux.Get("/api/v1/agents/{agentID}/telemetry", a.listTelemetry)

	mux.Post("/api/v1/agent/register", a.register)
	mux.Post("/api/v1/agent/authenticate", a.authenticate)
}

// RegisterAgentEndpoints mounts the routes agents call with a bearer
// token. The router wraps them in the agent authentication middleware.
func (a *API) RegisterAgentEndpoints(r chi.Router) {
	r.Post("/api/v1/agent/telemetry", a.reportTelemetry)
	r.Post("/api/v1/agent/heartbeat", a.heartbeat)
}

func requireSession(w http.ResponseWriter, r *http.Request) (*authentication.UserSession, bool) {
	session, ok := authentication.GetUserSession(r.Context())
	if !ok {
		httptypes.WriteErrorResponse(w, http.StatusUnauthorized, "authentication required")
		return nil, false
	}
	return session, true
}

type createAgentRequest struct {
	Name         string   `json:"name" validate:"required,min=1,max=100"`
	Description  string   `json:"description" validate:"max=500"`
	Capabilities []string `json:"capabilities" validate:"max=32,dive,min=1,max=64"`
}

// createAgentResponse is the only response that ever carries the
// registration token.
type createAgentResponse struct {
	Agent             *agentView `json:"agent"`
	RegistrationToken string     `json:"registration_token"`
	TokenExpiresAt    time.Time  `json:"token_expires_at"`
}

// agentView is the externally visible shape of an agent. Credentials
// never leave the service.
type agentView struct {
	AgentID      string     `json:"agent_id"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	Description  string     `json:"description"`
	IsActive     bool       `json:"is_active"`
	Capabilities []string   `json:"capabilities"`
	LastSeenAt   *time.Time `json:"last_seen_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func newAgentView(agent *types.Agent) *agentView {
	return &agentView{
		AgentID:      agent.AgentID,
		Name:         agent.Name,
		Slug:         agent.Slug,
		Description:  agent.Description,
		IsActive:     agent.IsActive,
		Capabilities: agent.Capabilities,
		LastSeenAt:   agent.LastSeenAt,
		CreatedAt:    agent.CreatedAt,
	}
}

func (a *API) createAgent(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req createAgentRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	agent, err := a.service.CreateAgent(r.Context(), session, req.Name, req.Description, req.Capabilities)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	resp := createAgentResponse{Agent: newAgentView(agent)}
	if agent.RegistrationToken != nil {
		resp.RegistrationToken = *agent.RegistrationToken
	}
	if agent.RegistrationTokenExpiresAt != nil {
		resp.TokenExpiresAt = *agent.RegistrationTokenExpiresAt
	}

	httptypes.WriteResponse(w, http.StatusCreated, resp)
}

func (a *API) listAgents(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	agents, err := a.service.ListAgents(r.Context(), session)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	views := make([]*agentView, 0, len(agents))
	for _, agent := range agents {
		views = append(views, newAgentView(agent))
	}

	httptypes.WriteResponse(w, http.StatusOK, views)
}

func (a *API) getAgent(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	agent, err := a.service.GetAgent(r.Context(), session, chi.URLParam(r, "agentID"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, newAgentView(agent))
}

type updateAgentRequest struct {
	Name         string   `json:"name" validate:"required,min=1,max=100"`
	Description  string   `json:"description" validate:"max=500"`
	Capabilities []string `json:"capabilities" validate:"max=32,dive,min=1,max=64"`
}

func (a *API) updateAgent(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req updateAgentRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	agent, err := a.service.UpdateAgent(r.Context(), session, chi.URLParam(r, "agentID"),
		req.Name, req.Description, req.Capabilities)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, newAgentView(agent))
}

func (a *API) deleteAgent(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteAgent(r.Context(), session, chi.URLParam(r, "agentID")); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, nil)
}

type rotateSecretResponse struct {
	Secret string `json:"secret"`
}

func (a *API) rotateSecret(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	secret, err := a.service.RotateSecret(r.Context(), session, chi.URLParam(r, "agentID"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, rotateSecretResponse{Secret: secret})
}

func (a *API) listActivity(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	logs, err := a.service.ListActivity(r.Context(), session, chi.URLParam(r, "agentID"), queryLimit(r))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, logs)
}

func (a *API) listTelemetry(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	since := time.Now().Add(-24 * time.Hour)
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			httptypes.WriteErrorResponse(w, http.StatusBadRequest, "invalid since timestamp")
			return
		}
		since = parsed
	}

	samples, err := a.service.ListTelemetry(r.Context(), session, chi.URLParam(r, "agentID"), since, queryLimit(r))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, samples)
}

func queryLimit(r *http.Request) uint64 {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultListLimit
	}
	limit, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || limit == 0 || limit > 1000 {
		return defaultListLimit
	}
	return limit
}

type registerRequest struct {
	RegistrationToken string `json:"registration_token" validate:"required"`
	Name              string `json:"name" validate:"max=100"`
}

type registerResponse struct {
	Agent  *agentView `json:"agent"`
	Secret string     `json:"secret"`
}

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	registration, err := a.service.Register(r.Context(), req.RegistrationToken, req.Name)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, registerResponse{
		Agent:  newAgentView(registration.Agent),
		Secret: registration.Secret,
	})
}

type authenticateRequest struct {
	AgentID string `json:"agent_id" validate:"required"`
	Secret  string `json:"secret" validate:"required"`
}

type authenticateResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (a *API) authenticate(w http.ResponseWriter, r *http.Request) {
	var req authenticateRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	credentials, err := a.service.Authenticate(r.Context(), req.AgentID, req.Secret)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, authenticateResponse{
		Token:     credentials.Token,
		ExpiresAt: credentials.ExpiresAt,
	})
}

type telemetryRequest struct {
	Throughput        float64            `json:"throughput"`
	RTTMillis         float64            `json:"rtt_millis"`
	PacketLoss        float64            `json:"packet_loss" validate:"gte=0,lte=1"`
	CongestionWindow  float64            `json:"congestion_window"`
	BufferUtilization float64            `json:"buffer_utilization" validate:"gte=0,lte=1"`
	CPUUsage          float64            `json:"cpu_usage" validate:"gte=0,lte=1"`
	MemoryUsage       float64            `json:"memory_usage" validate:"gte=0,lte=1"`
	ActiveStreams     int                `json:"active_streams" validate:"gte=0"`
	Extra             map[string]float64 `json:"extra,omitempty"`
	Timestamp         time.Time          `json:"timestamp"`
}

func (a *API) reportTelemetry(w http.ResponseWriter, r *http.Request) {
	agentCtx, ok := identity.GetAgentContext(r.Context())
	if !ok {
		httptypes.WriteErrorResponse(w, http.StatusUnauthorized, "agent authentication required")
		return
	}

	var req telemetryRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	sample := &types.TelemetrySample{
		Throughput:        req.Throughput,
		RTTMillis:         req.RTTMillis,
		PacketLoss:        req.PacketLoss,
		CongestionWindow:  req.CongestionWindow,
		BufferUtilization: req.BufferUtilization,
		CPUUsage:          req.CPUUsage,
		MemoryUsage:       req.MemoryUsage,
		ActiveStreams:     req.ActiveStreams,
		Extra:             req.Extra,
		Timestamp:         req.Timestamp,
	}

	if err := a.service.ReportTelemetry(r.Context(), agentCtx.Agent, sample); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusAccepted, nil)
}

// heartbeat is a no-op beyond the last-seen bump the authentication
// middleware already performs.
func (a *API) heartbeat(w http.ResponseWriter, r *http.Request) {
	if _, ok := identity.GetAgentContext(r.Context()); !ok {
		httptypes.WriteErrorResponse(w, http.StatusUnauthorized, "agent authentication required")
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, nil)
}
