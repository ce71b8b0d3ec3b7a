// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package identity turns raw credentials into request contexts. User
// sessions are re-checked against the membership tables so a revoked
// membership dies with the next request, not with the cookie.
package identity

import (
	"context"
	"errors"

	"github.com/tcpfleet/agent-platform/internal/logging"
	"github.com/tcpfleet/agent-platform/internal/monitoring"
	"github.com/tcpfleet/agent-platform/internal/storage"
	"github.com/tcpfleet/agent-platform/internal/tracing"
	"github.com/tcpfleet/agent-platform/internal/types"
	"github.com/tcpfleet/agent-platform/pkg/authentication"
)

// UserContext is a fully resolved user request context. Company and
// Project are nil when the session carries no such context or the
// underlying membership no longer exists.
type UserContext struct {
	User    *types.User
	Company *authentication.CompanyContext
	Project *authentication.ProjectContext
}

// AgentContext is a fully resolved agent request context.
type AgentContext struct {
	Agent *types.Agent
}

var _ ResolverInterface = (*Resolver)(nil)

type Resolver struct {
	storage StorageInterface
	codec   authentication.TokenCodecInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewResolver(s StorageInterface, codec authentication.TokenCodecInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Resolver {
	return &Resolver{
		storage: s,
		codec:   codec,

		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// ResolveUser loads the session's user and re-validates the claimed
// memberships. A claimed membership that no longer holds is dropped
// from the context rather than failing the request; the role always
// comes from the database, not the token.
func (r *Resolver) ResolveUser(ctx context.Context, session *authentication.UserSession) (*UserContext, error) {
	ctx, span := r.tracer.Start(ctx, "identity.Resolver.ResolveUser")
	defer span.End()

	user, err := r.storage.GetUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, authentication.ErrInvalidCredentials
		}
		return nil, err
	}

	uc := &UserContext{User: user}

	if session.Company != nil {
		member, err := r.storage.GetCompanyMember(ctx, session.Company.ID, user.ID)
		switch {
		case err == nil:
			uc.Company = &authentication.CompanyContext{
				ID:   session.Company.ID,
				Slug: session.Company.Slug,
				Role: member.Role,
			}
		case errors.Is(err, storage.ErrNotFound):
			r.logger.Debugf("dropping stale company context %d for user %d", session.Company.ID, user.ID)
		default:
			return nil, err
		}
	}

	// A project context without a live company context is dropped too:
	// projects are always reached through their company.
	if session.Project != nil && uc.Company != nil {
		member, err := r.storage.GetProjectMember(ctx, session.Project.ID, user.ID)
		switch {
		case err == nil:
			uc.Project = &authentication.ProjectContext{
				ID:   session.Project.ID,
				Slug: session.Project.Slug,
				Role: member.Role,
			}
		case errors.Is(err, storage.ErrNotFound):
			r.logger.Debugf("dropping stale project context %d for user %d", session.Project.ID, user.ID)
		default:
			return nil, err
		}
	}

	return uc, nil
}

// AuthenticateAgent runs the two-phase agent verification: decode the
// claimed agent identifier without trusting the signature, load the
// agent row, then verify the signature with the stored secret. Success
// bumps the agent's last-seen timestamp.
func (r *Resolver) AuthenticateAgent(ctx context.Context, rawToken string) (*AgentContext, error) {
	ctx, span := r.tracer.Start(ctx, "identity.Resolver.AuthenticateAgent")
	defer span.End()

	agentID, err := r.codec.DecodeAgentSubject(rawToken)
	if err != nil {
		return nil, err
	}

	agent, err := r.storage.GetAgentByAgentID(ctx, agentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			r.logger.Security().AuthnFailure(agentID, "unknown agent")
			return nil, authentication.ErrInvalidCredentials
		}
		return nil, err
	}

	if !agent.IsActive {
		r.logger.Security().AuthnFailure(agentID, "agent not active")
		return nil, authentication.ErrInvalidCredentials
	}

	if _, err := r.codec.VerifyAgentToken(rawToken, []byte(agent.SecretHash)); err != nil {
		r.logger.Security().AuthnFailure(agentID, "token verification failed")
		return nil, err
	}

	if err := r.storage.TouchAgentLastSeen(ctx, agent.ID); err != nil {
		r.logger.Warnf("failed to update last seen for agent %d: %v", agent.ID, err)
	}

	return &AgentContext{Agent: agent}, nil
}
