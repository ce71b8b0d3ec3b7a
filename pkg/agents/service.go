// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package agents manages the lifecycle of remote transfer agents:
// provisioning, one-time registration, secret rotation, telemetry and
// the activity trail.
package agents

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tcpfleet/agent-platform/internal/authorization"
	"github.com/tcpfleet/agent-platform/internal/logging"
	"github.com/tcpfleet/agent-platform/internal/monitoring"
	"github.com/tcpfleet/agent-platform/internal/slug"
	"github.com/tcpfleet/agent-platform/internal/storage"
	"github.com/tcpfleet/agent-platform/internal/tracing"
	"github.com/tcpfleet/agent-platform/internal/types"
	"github.com/tcpfleet/agent-platform/pkg/authentication"
)

// Registration is the outcome of a successful token exchange. Secret is
// the plaintext agent secret; it is never stored and never shown again.
type Registration struct {
	Agent  *types.Agent
	Secret string
}

// Credentials is a short-lived agent bearer token.
type Credentials struct {
	Token     string
	ExpiresAt time.Time
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage    StorageInterface
	authorizer authorization.AuthorizerInterface
	codec      authentication.TokenCodecInterface
	hasher     authentication.HasherInterface

	registrationTokenTTL time.Duration
	agentTokenTTL        time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authorizer authorization.AuthorizerInterface,
	codec authentication.TokenCodecInterface,
	hasher authentication.HasherInterface,
	registrationTokenTTL time.Duration,
	agentTokenTTL time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:    storage,
		authorizer: authorizer,
		codec:      codec,
		hasher:     hasher,

		registrationTokenTTL: registrationTokenTTL,
		agentTokenTTL:        agentTokenTTL,

		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) requireProjectPermission(session *authentication.UserSession, permission string) error {
	if session.Project == nil || !s.authorizer.HasProjectPermission(session.Project.Role, permission) {
		s.logger.Security().AuthzFailure(session.Email, permission)
		return authentication.ErrAccessDenied
	}
	return nil
}

// loadProjectAgent resolves an agent identifier inside the session's
// project. An agent from another project reads as missing.
func (s *Service) loadProjectAgent(ctx context.Context, session *authentication.UserSession, agentID string) (*types.Agent, error) {
	agent, err := s.storage.GetAgentByAgentID(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if agent.ProjectID != session.Project.ID {
		return nil, storage.ErrNotFound
	}
	return agent, nil
}

// CreateAgent provisions a pending agent. The returned record carries
// the one-time registration token; callers must hand it to the agent
// operator now, it is not retrievable later.
func (s *Service) CreateAgent(ctx context.Context, session *authentication.UserSession, name, description string, capabilities []string) (*types.Agent, error) {
	ctx, span := s.tracer.Start(ctx, "agents.Service.CreateAgent")
	defer span.End()

	if err := s.requireProjectPermission(session, authorization.ProjectAgentsCreate); err != nil {
		return nil, err
	}

	token, err := authentication.GenerateSecret()
	if err != nil {
		return nil, err
	}
	expiresAt := time.Now().Add(s.registrationTokenTTL)

	agent, err := s.storage.CreateAgent(ctx, &types.Agent{
		ProjectID:                  session.Project.ID,
		Name:                       name,
		Slug:                       slug.Make(name),
		Description:                description,
		AgentID:                    uuid.NewString(),
		RegistrationToken:          &token,
		RegistrationTokenExpiresAt: &expiresAt,
		IsActive:                   false,
		Capabilities:               capabilities,
	})
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, agent.ID, types.ActivityCreateAgent, map[string]string{
		"created_by": session.Email,
	})

	return agent, nil
}

func (s *Service) ListAgents(ctx context.Context, session *authentication.UserSession) ([]*types.Agent, error) {
	ctx, span := s.tracer.Start(ctx, "agents.Service.ListAgents")
	defer span.End()

	if err := s.requireProjectPermission(session, authorization.ProjectAgentsRead); err != nil {
		return nil, err
	}

	return s.storage.ListAgentsByProjectID(ctx, session.Project.ID)
}

func (s *Service) GetAgent(ctx context.Context, session *authentication.UserSession, agentID string) (*types.Agent, error) {
	ctx, span := s.tracer.Start(ctx, "agents.Service.GetAgent")
	defer span.End()

	if err := s.requireProjectPermission(session, authorization.ProjectAgentsRead); err != nil {
		return nil, err
	}

	return s.loadProjectAgent(ctx, session, agentID)
}

func (s *Service) UpdateAgent(ctx context.Context, session *authentication.UserSession, agentID, name, description string, capabilities []string) (*types.Agent, error) {
	ctx, span := s.tracer.Start(ctx, "agents.Service.UpdateAgent")
	defer span.End()

	if err := s.requireProjectPermission(session, authorization.ProjectAgentsUpdate); err != nil {
		return nil, err
	}

	agent, err := s.loadProjectAgent(ctx, session, agentID)
	if err != nil {
		return nil, err
	}

	return s.storage.UpdateAgent(ctx, agent.ID, name, description, capabilities)
}

func (s *Service) DeleteAgent(ctx context.Context, session *authentication.UserSession, agentID string) error {
	ctx, span := s.tracer.Start(ctx, "agents.Service.DeleteAgent")
	defer span.End()

	if err := s.requireProjectPermission(session, authorization.ProjectAgentsDelete); err != nil {
		return err
	}

	agent, err := s.loadProjectAgent(ctx, session, agentID)
	if err != nil {
		return err
	}

	return s.storage.SoftDeleteAgent(ctx, agent.ID)
}

// RotateSecret replaces the agent's secret and returns the new plaintext
// exactly once. Tokens signed under the old secret stop verifying
// immediately.
func (s *Service) RotateSecret(ctx context.Context, session *authentication.UserSession, agentID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "agents.Service.RotateSecret")
	defer span.End()

	if err := s.requireProjectPermission(session, authorization.ProjectAgentsUpdate); err != nil {
		return "", err
	}

	agent, err := s.loadProjectAgent(ctx, session, agentID)
	if err != nil {
		return "", err
	}

	secret, err := authentication.GenerateSecret()
	if err != nil {
		return "", err
	}
	hash, err := s.hasher.Hash(secret)
	if err != nil {
		return "", err
	}

	if err := s.storage.UpdateAgentSecret(ctx, agent.ID, hash); err != nil {
		return "", err
	}

	s.recordActivity(ctx, agent.ID, types.ActivityRotateAgentSecret, map[string]string{
		"rotated_by": session.Email,
	})

	return secret, nil
}

func (s *Service) ListActivity(ctx context.Context, session *authentication.UserSession, agentID string, limit uint64) ([]*types.AgentActivityLog, error) {
	ctx, span := s.tracer.Start(ctx, "agents.Service.ListActivity")
	defer span.End()

	if err := s.requireProjectPermission(session, authorization.ProjectAgentsRead); err != nil {
		return nil, err
	}

	agent, err := s.loadProjectAgent(ctx, session, agentID)
	if err != nil {
		return nil, err
	}

	return s.storage.ListAgentActivity(ctx, agent.ID, limit)
}

func (s *Service) ListTelemetry(ctx context.Context, session *authentication.UserSession, agentID string, since time.Time, limit uint64) ([]*types.TelemetrySample, error) {
	ctx, span := s.tracer.Start(ctx, "agents.Service.ListTelemetry")
	defer span.End()

	if err := s.requireProjectPermission(session, authorization.ProjectDataRead); err != nil {
		return nil, err
	}

	agent, err := s.loadProjectAgent(ctx, session, agentID)
	if err != nil {
		return nil, err
	}

	return s.storage.ListTelemetrySince(ctx, agent.ID, since, limit)
}

// Register exchanges a one-time registration token for the agent's
// long-lived secret. Expired tokens fail without mutating the agent; a
// concurrent exchange has exactly one winner.
func (s *Service) Register(ctx context.Context, registrationToken, name string) (*Registration, error) {
	ctx, span := s.tracer.Start(ctx, "agents.Service.Register")
	defer span.End()

	agent, err := s.storage.GetAgentByRegistrationToken(ctx, registrationToken)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Security().AuthnFailure("agent", "unknown registration token")
			return nil, authentication.ErrInvalidCredentials
		}
		return nil, err
	}

	if agent.RegistrationTokenExpiresAt != nil && time.Now().After(*agent.RegistrationTokenExpiresAt) {
		s.logger.Security().AuthnFailure(agent.AgentID, "registration token expired")
		return nil, authentication.ErrExpired
	}

	if name == "" {
		name = agent.Name
	}

	secret, err := authentication.GenerateSecret()
	if err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(secret)
	if err != nil {
		return nil, err
	}

	if err := s.storage.ConsumeRegistrationToken(ctx, agent.ID, registrationToken, name, hash); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, authentication.ErrAlreadyUsed
		}
		return nil, err
	}

	registered, err := s.storage.GetAgentByAgentID(ctx, agent.AgentID)
	if err != nil {
		return nil, err
	}

	s.logger.Security().AuthnSuccess(registered.AgentID)
	s.recordActivity(ctx, registered.ID, types.ActivityRegisterAgent, nil)

	return &Registration{Agent: registered, Secret: secret}, nil
}

// Authenticate verifies an agent's secret and issues a bearer token
// signed with a key derived from that agent's credentials, so a token
// minted for agent A never verifies as agent B.
func (s *Service) Authenticate(ctx context.Context, agentID, secret string) (*Credentials, error) {
	ctx, span := s.tracer.Start(ctx, "agents.Service.Authenticate")
	defer span.End()

	agent, err := s.storage.GetAgentByAgentID(ctx, agentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Security().AuthnFailure(agentID, "unknown agent")
			return nil, authentication.ErrInvalidCredentials
		}
		return nil, err
	}

	if !agent.IsActive {
		s.logger.Security().AuthnFailure(agentID, "agent not active")
		return nil, authentication.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(agent.SecretHash, secret); err != nil {
		if errors.Is(err, authentication.ErrInvalidCredentials) {
			s.logger.Security().AuthnFailure(agentID, "wrong secret")
			s.recordActivity(ctx, agent.ID, types.ActivityAuthenticationFailed, nil)
			return nil, authentication.ErrInvalidCredentials
		}
		return nil, err
	}

	token, err := s.codec.IssueAgentToken(agent.AgentID, agent.ProjectID, []byte(agent.SecretHash))
	if err != nil {
		return nil, err
	}

	if err := s.storage.TouchAgentLastSeen(ctx, agent.ID); err != nil {
		s.logger.Warnf("failed to update last seen for agent %d: %v", agent.ID, err)
	}

	s.logger.Security().AuthnSuccess(agentID)
	s.recordActivity(ctx, agent.ID, types.ActivityAgentAuthenticated, nil)

	return &Credentials{
		Token:     token,
		ExpiresAt: time.Now().Add(s.agentTokenTTL),
	}, nil
}

// ReportTelemetry ingests one sample from an already authenticated
// agent.
func (s *Service) ReportTelemetry(ctx context.Context, agent *types.Agent, sample *types.TelemetrySample) error {
	ctx, span := s.tracer.Start(ctx, "agents.Service.ReportTelemetry")
	defer span.End()

	sample.AgentID = agent.ID
	if sample.Timestamp.IsZero() {
		sample.Timestamp = time.Now()
	}

	return s.storage.InsertTelemetry(ctx, sample)
}

// recordActivity appends to the audit trail. Trail failures are logged
// and swallowed; they never fail the operation that produced them.
func (s *Service) recordActivity(ctx context.Context, agentID int64, action string, metadata map[string]string) {
	err := s.storage.InsertAgentActivity(ctx, &types.AgentActivityLog{
		AgentID:   agentID,
		Action:    action,
		Metadata:  metadata,
		Timestamp: time.Now(),
	})
	if err != nil {
		s.logger.Warnf("failed to record %s activity for agent %d: %v", action, agentID, err)
	}
}
