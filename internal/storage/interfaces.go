// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/tcpfleet/agent-platform/internal/types"
)

// CompanyMembershipRow pairs a company with the caller's membership in it.
type CompanyMembershipRow struct {
	Company *types.Company
	Member  *types.CompanyMember
}

// MemberDetail is a membership joined with the member's user record.
type MemberDetail struct {
	UserID   int64
	Email    string
	Name     string
	Role     string
	JoinedAt time.Time
}

type StorageInterface interface {
	// Users
	CreateUser(ctx context.Context, email, passwordHash string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetUserByID(ctx context.Context, id int64) (*types.User, error)
	UpdateUserPassword(ctx context.Context, id int64, passwordHash string) error
	SoftDeleteUser(ctx context.Context, id int64) error

	// Companies
	CreateCompany(ctx context.Context, name, slug string) (*types.Company, error)
	GetCompanyByID(ctx context.Context, id int64) (*types.Company, error)
	GetCompanyBySlug(ctx context.Context, slug string) (*types.Company, error)
	CompanySlugExists(ctx context.Context, slug string) (bool, error)
	UpdateCompanyBilling(ctx context.Context, id int64, subscriptionID, planName, status string) error

	// Projects
	CreateProject(ctx context.Context, companyID int64, name, slug, description string) (*types.Project, error)
	GetProjectByID(ctx context.Context, id int64) (*types.Project, error)
	GetProjectBySlug(ctx context.Context, companyID int64, slug string) (*types.Project, error)
	ProjectSlugExists(ctx context.Context, companyID int64, slug string) (bool, error)
	ListProjectsByCompanyID(ctx context.Context, companyID int64) ([]*types.Project, error)
	UpdateProject(ctx context.Context, id int64, name, description string) (*types.Project, error)
	SoftDeleteProject(ctx context.Context, id int64) error

	// Memberships
	AddCompanyMember(ctx context.Context, companyID, userID int64, role string) (*types.CompanyMember, error)
	GetCompanyMember(ctx context.Context, companyID, userID int64) (*types.CompanyMember, error)
	ListCompanyMembers(ctx context.Context, companyID int64) ([]*MemberDetail, error)
	ListCompaniesByUserID(ctx context.Context, userID int64) ([]*CompanyMembershipRow, error)
	UpdateCompanyMemberRole(ctx context.Context, companyID, userID int64, role string) error
	RemoveCompanyMember(ctx context.Context, companyID, userID int64) error

	AddProjectMember(ctx context.Context, projectID, userID int64, role string) (*types.ProjectMember, error)
	GetProjectMember(ctx context.Context, projectID, userID int64) (*types.ProjectMember, error)
	ListProjectMembers(ctx context.Context, projectID int64) ([]*MemberDetail, error)
	UpdateProjectMemberRole(ctx context.Context, projectID, userID int64, role string) error
	RemoveProjectMember(ctx context.Context, projectID, userID int64) error

	// Agents
	CreateAgent(ctx context.Context, a *types.Agent) (*types.Agent, error)
	GetAgentByID(ctx context.Context, id int64) (*types.Agent, error)
	GetAgentByAgentID(ctx context.Context, agentID string) (*types.Agent, error)
	GetAgentByRegistrationToken(ctx context.Context, token string) (*types.Agent, error)
	ConsumeRegistrationToken(ctx context.Context, id int64, token, name, secretHash string) error
	UpdateAgentSecret(ctx context.Context, id int64, secretHash string) error
	TouchAgentLastSeen(ctx context.Context, id int64) error
	ListAgentsByProjectID(ctx context.Context, projectID int64) ([]*types.Agent, error)
	UpdateAgent(ctx context.Context, id int64, name, description string, capabilities []string) (*types.Agent, error)
	SoftDeleteAgent(ctx context.Context, id int64) error

	// Invitations
	CreateCompanyInvitation(ctx context.Context, inv *types.CompanyInvitation) (*types.CompanyInvitation, error)
	GetCompanyInvitationByToken(ctx context.Context, token string) (*types.CompanyInvitation, error)
	AcceptCompanyInvitation(ctx context.Context, id int64) error
	ListCompanyInvitations(ctx context.Context, companyID int64) ([]*types.CompanyInvitation, error)
	RevokeCompanyInvitation(ctx context.Context, companyID, id int64) error
	CreateProjectInvitation(ctx context.Context, inv *types.ProjectInvitation) (*types.ProjectInvitation, error)
	GetProjectInvitationByToken(ctx context.Context, token string) (*types.ProjectInvitation, error)
	AcceptProjectInvitation(ctx context.Context, id int64) error
	ListProjectInvitations(ctx context.Context, projectID int64) ([]*types.ProjectInvitation, error)
	RevokeProjectInvitation(ctx context.Context, projectID, id int64) error

	// Activity and telemetry
	InsertAgentActivity(ctx context.Context, log *types.AgentActivityLog) error
	ListAgentActivity(ctx context.Context, agentID int64, limit uint64) ([]*types.AgentActivityLog, error)
	InsertTelemetry(ctx context.Context, sample *types.TelemetrySample) error
	ListTelemetrySince(ctx context.Context, agentID int64, since time.Time, limit uint64) ([]*types.TelemetrySample, error)
}
