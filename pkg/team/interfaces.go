// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"context"

	"github.com/tcpfleet/agent-platform/internal/storage"
	"github.com/tcpfleet/agent-platform/internal/types"
	"github.com/tcpfleet/agent-platform/pkg/authentication"
)

type ServiceInterface interface {
	ListCompanyMembers(ctx context.Context, session *authentication.UserSession) ([]*storage.MemberDetail, error)
	UpdateCompanyMemberRole(ctx context.Context, session *authentication.UserSession, userID int64, role string) error
	RemoveCompanyMember(ctx context.Context, session *authentication.UserSession, userID int64) error
	InviteCompanyMember(ctx context.Context, session *authentication.UserSession, email, role string) (*types.CompanyInvitation, error)
	ListCompanyInvitations(ctx context.Context, session *authentication.UserSession) ([]*types.CompanyInvitation, error)
	RevokeCompanyInvitation(ctx context.Context, session *authentication.UserSession, invitationID int64) error

	ListProjectMembers(ctx context.Context, session *authentication.UserSession) ([]*storage.MemberDetail, error)
	UpdateProjectMemberRole(ctx context.Context, session *authentication.UserSession, userID int64, role string) error
	RemoveProjectMember(ctx context.Context, session *authentication.UserSession, userID int64) error
	InviteProjectMember(ctx context.Context, session *authentication.UserSession, email, role string) (*types.ProjectInvitation, error)
	ListProjectInvitations(ctx context.Context, session *authentication.UserSession) ([]*types.ProjectInvitation, error)
	RevokeProjectInvitation(ctx context.Context, session *authentication.UserSession, invitationID int64) error
}

type StorageInterface interface {
	ListCompanyMembers(ctx context.Context, companyID int64) ([]*storage.MemberDetail, error)
	GetCompanyMember(ctx context.Context, companyID, userID int64) (*types.CompanyMember, error)
	UpdateCompanyMemberRole(ctx context.Context, companyID, userID int64, role string) error
	RemoveCompanyMember(ctx context.Context, companyID, userID int64) error
	CreateCompanyInvitation(ctx context.Context, inv *types.CompanyInvitation) (*types.CompanyInvitation, error)
	ListCompanyInvitations(ctx context.Context, companyID int64) ([]*types.CompanyInvitation, error)
	RevokeCompanyInvitation(ctx context.Context, companyID, id int64) error

	ListProjectMembers(ctx context.Context, projectID int64) ([]*storage.MemberDetail, error)
	GetProjectMember(ctx context.Context, projectID, userID int64) (*types.ProjectMember, error)
	UpdateProjectMemberRole(ctx context.Context, projectID, userID int64, role string) error
	RemoveProjectMember(ctx context.Context, projectID, userID int64) error
	CreateProjectInvitation(ctx context.Context, inv *types.ProjectInvitation) (*types.ProjectInvitation, error)
	ListProjectInvitations(ctx context.Context, projectID int64) ([]*types.ProjectInvitation, error)
	RevokeProjectInvitation(ctx context.Context, projectID, id int64) error
}
