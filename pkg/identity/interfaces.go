// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"

	"github.com/tcpfleet/agent-platform/internal/types"
	"github.com/tcpfleet/agent-platform/pkg/authentication"
)

// StorageInterface defines the storage operations required by the
// identity package.
type StorageInterface interface {
	GetUserByID(ctx context.Context, id int64) (*types.User, error)
	GetCompanyMember(ctx context.Context, companyID, userID int64) (*types.CompanyMember, error)
	GetProjectMember(ctx context.Context, projectID, userID int64) (*types.ProjectMember, error)
	GetAgentByAgentID(ctx context.Context, agentID string) (*types.Agent, error)
	TouchAgentLastSeen(ctx context.Context, id int64) error
}

type ResolverInterface interface {
	// ResolveUser loads the user behind a decoded session and re-checks
	// the company and project memberships it claims.
	ResolveUser(ctx context.Context, session *authentication.UserSession) (*UserContext, error)
	// AuthenticateAgent verifies a raw agent token end to end and
	// returns the agent's context.
	AuthenticateAgent(ctx context.Context, rawToken string) (*AgentContext, error)
}
