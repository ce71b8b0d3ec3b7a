// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package agents

import (
	"context"
	"time"

	"github.com/tcpfleet/agent-platform/internal/types"
	"github.com/tcpfleet/agent-platform/pkg/authentication"
)

type ServiceInterface interface {
	CreateAgent(ctx context.Context, session *authentication.UserSession, name, description string, capabilities []string) (*types.Agent, error)
	ListAgents(ctx context.Context, session *authentication.UserSession) ([]*types.Agent, error)
	GetAgent(ctx context.Context, session *authentication.UserSession, agentID string) (*types.Agent, error)
	UpdateAgent(ctx context.Context, session *authentication.UserSession, agentID, name, description string, capabilities []string) (*types.Agent, error)
	DeleteAgent(ctx context.Context, session *authentication.UserSession, agentID string) error
	RotateSecret(ctx context.Context, session *authentication.UserSession, agentID string) (string, error)
	ListActivity(ctx context.Context, session *authentication.UserSession, agentID string, limit uint64) ([]*types.AgentActivityLog, error)
	ListTelemetry(ctx context.Context, session *authentication.UserSession, agentID string, since time.Time, limit uint64) ([]*types.TelemetrySample, error)

	Register(ctx context.Context, registrationToken, name string) (*Registration, error)
	Authenticate(ctx context.Context, agentID, secret string) (*Credentials, error)
	ReportTelemetry(ctx context.Context, agent *types.Agent, sample *types.TelemetrySample) error
}

type StorageInterface interface {
	CreateAgent(ctx context.Context, a *types.Agent) (*types.Agent, error)
	GetAgentByAgentID(ctx context.Context, agentID string) (*types.Agent, error)
	GetAgentByRegistrationToken(ctx context.Context, token string) (*types.Agent, error)
	ConsumeRegistrationToken(ctx context.Context, id int64, token, name, secretHash string) error
	UpdateAgentSecret(ctx context.Context, id int64, secretHash string) error
	TouchAgentLastSeen(ctx context.Context, id int64) error
	ListAgentsByProjectID(ctx context.Context, projectID int64) ([]*types.Agent, error)
	UpdateAgent(ctx context.Context, id int64, name, description string, capabilities []string) (*types.Agent, error)
	SoftDeleteAgent(ctx context.Context, id int64) error

	InsertAgentActivity(ctx context.Context, log *types.AgentActivityLog) error
	ListAgentActivity(ctx context.Context, agentID int64, limit uint64) ([]*types.AgentActivityLog, error)
	InsertTelemetry(ctx context.Context, sample *types.TelemetrySample) error
	ListTelemetrySince(ctx context.Context, agentID int64, since time.Time, limit uint64) ([]*types.TelemetrySample, error)
}
