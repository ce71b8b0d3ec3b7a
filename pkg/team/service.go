// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package team manages company and project memberships and the
// invitations that create them.
package team

import (
	"context"
	"fmt"
	"time"

	"github.com/tcpfleet/agent-platform/internal/authorization"
	httptypes "github.com/tcpfleet/agent-platform/internal/http/types"
	"github.com/tcpfleet/agent-platform/internal/logging"
	"github.com/tcpfleet/agent-platform/internal/monitoring"
	"github.com/tcpfleet/agent-platform/internal/storage"
	"github.com/tcpfleet/agent-platform/internal/tracing"
	"github.com/tcpfleet/agent-platform/internal/types"
	"github.com/tcpfleet/agent-platform/pkg/authentication"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage    StorageInterface
	authorizer authorization.AuthorizerInterface

	invitationTTL time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authorizer authorization.AuthorizerInterface,
	invitationTTL time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:    storage,
		authorizer: authorizer,

		invitationTTL: invitationTTL,

		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// requireCompanyPermission checks the session's company role against the
// static permission map. The role was loaded from the membership row on
// this request, never from the token.
func (s *Service) requireCompanyPermission(session *authentication.UserSession, permission string) error {
	if session.Company == nil || !s.authorizer.HasCompanyPermission(session.Company.Role, permission) {
		s.logger.Security().AuthzFailure(session.Email, permission)
		return authentication.ErrAccessDenied
	}
	return nil
}

func (s *Service) requireProjectPermission(session *authentication.UserSession, permission string) error {
	if session.Project == nil || !s.authorizer.HasProjectPermission(session.Project.Role, permission) {
		s.logger.Security().AuthzFailure(session.Email, permission)
		return authentication.ErrAccessDenied
	}
	return nil
}

func (s *Service) ListCompanyMembers(ctx context.Context, session *authentication.UserSession) ([]*storage.MemberDetail, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.ListCompanyMembers")
	defer span.End()

	if err := s.requireCompanyPermission(session, authorization.CompanyMembersRead); err != nil {
		return nil, err
	}

	return s.storage.ListCompanyMembers(ctx, session.Company.ID)
}

// UpdateCompanyMemberRole reassigns a member's role. The actor must be
// allowed to manage both the member's current role and the new one.
func (s *Service) UpdateCompanyMemberRole(ctx context.Context, session *authentication.UserSession, userID int64, role string) error {
	ctx, span := s.tracer.Start(ctx, "team.Service.UpdateCompanyMemberRole")
	defer span.End()

	if err := s.requireCompanyPermission(session, authorization.CompanyMembersWrite); err != nil {
		return err
	}
	if !types.ValidCompanyRole(role) {
		return invalidRoleError(role)
	}

	target, err := s.storage.GetCompanyMember(ctx, session.Company.ID, userID)
	if err != nil {
		return err
	}

	actorRole := session.Company.Role
	if !s.authorizer.CanManageCompanyRole(actorRole, target.Role) ||
		!s.authorizer.CanManageCompanyRole(actorRole, role) {
		s.logger.Security().AuthzFailure(session.Email, "company:members:manage")
		return authentication.ErrAccessDenied
	}

	return s.storage.UpdateCompanyMemberRole(ctx, session.Company.ID, userID, role)
}

// RemoveCompanyMember deletes a membership. The gate is the member-write
// permission; whether this actor may touch this particular target is the
// precedence predicate's call, so admins can remove plain members but
// never another admin or the owner.
func (s *Service) RemoveCompanyMember(ctx context.Context, session *authentication.UserSession, userID int64) error {
	ctx, span := s.tracer.Start(ctx, "team.Service.RemoveCompanyMember")
	defer span.End()

	if err := s.requireCompanyPermission(session, authorization.CompanyMembersWrite); err != nil {
		return err
	}

	target, err := s.storage.GetCompanyMember(ctx, session.Company.ID, userID)
	if err != nil {
		return err
	}

	if !s.authorizer.CanManageCompanyRole(session.Company.Role, target.Role) {
		s.logger.Security().AuthzFailure(session.Email, "company:members:manage")
		return authentication.ErrAccessDenied
	}

	return s.storage.RemoveCompanyMember(ctx, session.Company.ID, userID)
}

// InviteCompanyMember issues a one-time invitation token. The token is
// returned exactly once, in the created invitation.
func (s *Service) InviteCompanyMember(ctx context.Context, session *authentication.UserSession, email, role string) (*types.CompanyInvitation, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.InviteCompanyMember")
	defer span.End()

	if err := s.requireCompanyPermission(session, authorization.CompanyInvitesCreate); err != nil {
		return nil, err
	}
	if !types.ValidCompanyRole(role) {
		return nil, invalidRoleError(role)
	}
	if !s.authorizer.CanManageCompanyRole(session.Company.Role, role) {
		s.logger.Security().AuthzFailure(session.Email, "company:members:manage")
		return nil, authentication.ErrAccessDenied
	}

	token, err := authentication.GenerateSecret()
	if err != nil {
		return nil, err
	}

	return s.storage.CreateCompanyInvitation(ctx, &types.CompanyInvitation{
		CompanyID: session.Company.ID,
		Email:     email,
		Role:      role,
		InvitedBy: session.UserID,
		Token:     token,
		ExpiresAt: time.Now().Add(s.invitationTTL),
	})
}

func (s *Service) ListCompanyInvitations(ctx context.Context, session *authentication.UserSession) ([]*types.CompanyInvitation, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.ListCompanyInvitations")
	defer span.End()

	if err := s.requireCompanyPermission(session, authorization.CompanyMembersRead); err != nil {
		return nil, err
	}

	return s.storage.ListCompanyInvitations(ctx, session.Company.ID)
}

func (s *Service) RevokeCompanyInvitation(ctx context.Context, session *authentication.UserSession, invitationID int64) error {
	ctx, span := s.tracer.Start(ctx, "team.Service.RevokeCompanyInvitation")
	defer span.End()

	if err := s.requireCompanyPermission(session, authorization.CompanyInvitesRevoke); err != nil {
		return err
	}

	return s.storage.RevokeCompanyInvitation(ctx, session.Company.ID, invitationID)
}

func (s *Service) ListProjectMembers(ctx context.Context, session *authentication.UserSession) ([]*storage.MemberDetail, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.ListProjectMembers")
	defer span.End()

	if err := s.requireProjectPermission(session, authorization.ProjectMembersRead); err != nil {
		return nil, err
	}

	return s.storage.ListProjectMembers(ctx, session.Project.ID)
}

func (s *Service) UpdateProjectMemberRole(ctx context.Context, session *authentication.UserSession, userID int64, role string) error {
	ctx, span := s.tracer.Start(ctx, "team.Service.UpdateProjectMemberRole")
	defer span.End()

	if err := s.requireProjectPermission(session, authorization.ProjectMembersWrite); err != nil {
		return err
	}
	if !types.ValidProjectRole(role) {
		return invalidRoleError(role)
	}

	target, err := s.storage.GetProjectMember(ctx, session.Project.ID, userID)
	if err != nil {
		return err
	}

	actorRole := session.Project.Role
	if !s.authorizer.CanManageProjectRole(actorRole, target.Role) ||
		!s.authorizer.CanManageProjectRole(actorRole, role) {
		s.logger.Security().AuthzFailure(session.Email, "project:members:manage")
		return authentication.ErrAccessDenied
	}

	return s.storage.UpdateProjectMemberRole(ctx, session.Project.ID, userID, role)
}

func (s *Service) RemoveProjectMember(ctx context.Context, session *authentication.UserSession, userID int64) error {
	ctx, span := s.tracer.Start(ctx, "team.Service.RemoveProjectMember")
	defer span.End()

	if err := s.requireProjectPermission(session, authorization.ProjectMembersWrite); err != nil {
		return err
	}

	target, err := s.storage.GetProjectMember(ctx, session.Project.ID, userID)
	if err != nil {
		return err
	}

	if !s.authorizer.CanManageProjectRole(session.Project.Role, target.Role) {
		s.logger.Security().AuthzFailure(session.Email, "project:members:manage")
		return authentication.ErrAccessDenied
	}

	return s.storage.RemoveProjectMember(ctx, session.Project.ID, userID)
}

func (s *Service) InviteProjectMember(ctx context.Context, session *authentication.UserSession, email, role string) (*types.ProjectInvitation, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.InviteProjectMember")
	defer span.End()

	if err := s.requireProjectPermission(session, authorization.ProjectInvitesCreate); err != nil {
		return nil, err
	}
	if !types.ValidProjectRole(role) {
		return nil, invalidRoleError(role)
	}
	if !s.authorizer.CanManageProjectRole(session.Project.Role, role) {
		s.logger.Security().AuthzFailure(session.Email, "project:members:manage")
		return nil, authentication.ErrAccessDenied
	}

	token, err := authentication.GenerateSecret()
	if err != nil {
		return nil, err
	}

	return s.storage.CreateProjectInvitation(ctx, &types.ProjectInvitation{
		ProjectID: session.Project.ID,
		Email:     email,
		Role:      role,
		InvitedBy: session.UserID,
		Token:     token,
		ExpiresAt: time.Now().Add(s.invitationTTL),
	})
}

func (s *Service) ListProjectInvitations(ctx context.Context, session *authentication.UserSession) ([]*types.ProjectInvitation, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.ListProjectInvitations")
	defer span.End()

	if err := s.requireProjectPermission(session, authorization.ProjectMembersRead); err != nil {
		return nil, err
	}

	return s.storage.ListProjectInvitations(ctx, session.Project.ID)
}

func (s *Service) RevokeProjectInvitation(ctx context.Context, session *authentication.UserSession, invitationID int64) error {
	ctx, span := s.tracer.Start(ctx, "team.Service.RevokeProjectInvitation")
	defer span.End()

	if err := s.requireProjectPermission(session, authorization.ProjectInvitesRevoke); err != nil {
		return err
	}

	return s.storage.RevokeProjectInvitation(ctx, session.Project.ID, invitationID)
}

// invalidRoleError reads as a bad request, not a server fault, even
// when a caller bypasses the handlers' oneof validation.
func invalidRoleError(role string) error {
	return &httptypes.MalformedInputError{
		Fields: []string{fmt.Sprintf("Role has unknown value %q", role)},
	}
}
