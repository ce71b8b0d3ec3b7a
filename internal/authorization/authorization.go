// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package authorization evaluates role permissions. The maps are static
// so checks never touch the database; roles come from the membership
// rows embedded in the session.
package authorization

import (
	"slices"

	"github.com/tcpfleet/agent-platform/internal/logging"
	"github.com/tcpfleet/agent-platform/internal/types"
)

// Company-level permissions.
const (
	CompanyRead           = "company:read"
	CompanyUpdate         = "company:update"
	CompanyDelete         = "company:delete"
	CompanyBilling        = "company:billing"
	CompanyMembersRead    = "company:members:read"
	CompanyMembersWrite   = "company:members:write"
	CompanyMembersDelete  = "company:members:delete"
	CompanyProjectsRead   = "company:projects:read"
	CompanyProjectsCreate = "company:projects:create"
	CompanyProjectsDelete = "company:projects:delete"
	CompanyInvitesCreate  = "company:invites:create"
	CompanyInvitesRevoke  = "company:invites:revoke"
)

// Project-level permissions.
const (
	ProjectRead          = "project:read"
	ProjectUpdate        = "project:update"
	ProjectDelete        = "project:delete"
	ProjectMembersRead   = "project:members:read"
	ProjectMembersWrite  = "project:members:write"
	ProjectMembersDelete = "project:members:delete"
	ProjectAgentsCreate  = "project:agents:create"
	ProjectAgentsRead    = "project:agents:read"
	ProjectAgentsUpdate  = "project:agents:update"
	ProjectAgentsDelete  = "project:agents:delete"
	ProjectInvitesCreate = "project:invites:create"
	ProjectInvitesRevoke = "project:invites:revoke"
	ProjectDataRead      = "project:data:read"
	ProjectDataWrite     = "project:data:write"
	ProjectDataDelete    = "project:data:delete"
)

var companyPermissions = map[string][]string{
	types.CompanyRoleOwner: {
		CompanyRead,
		CompanyUpdate,
		CompanyDelete,
		CompanyBilling,
		CompanyMembersRead,
		CompanyMembersWrite,
		CompanyMembersDelete,
		CompanyProjectsCreate,
		CompanyProjectsDelete,
		CompanyInvitesCreate,
		CompanyInvitesRevoke,
	},
	types.CompanyRoleBillingAdmin: {
		CompanyRead,
		CompanyBilling,
		CompanyMembersRead,
		CompanyProjectsRead,
	},
	types.CompanyRoleAdmin: {
		CompanyRead,
		CompanyUpdate,
		CompanyMembersRead,
		CompanyMembersWrite,
		CompanyProjectsCreate,
		CompanyInvitesCreate,
		CompanyInvitesRevoke,
	},
	types.CompanyRoleMember: {
		CompanyRead,
		CompanyMembersRead,
		CompanyProjectsRead,
	},
}

var projectPermissions = map[string][]string{
	types.ProjectRoleOwner: {
		ProjectRead,
		ProjectUpdate,
		ProjectDelete,
		ProjectMembersRead,
		ProjectMembersWrite,
		ProjectMembersDelete,
		ProjectAgentsCreate,
		ProjectAgentsRead,
		ProjectAgentsUpdate,
		ProjectAgentsDelete,
		ProjectInvitesCreate,
		ProjectInvitesRevoke,
		ProjectDataRead,
		ProjectDataWrite,
		ProjectDataDelete,
	},
	types.ProjectRoleAdmin: {
		ProjectRead,
		ProjectUpdate,
		ProjectMembersRead,
		ProjectMembersWrite,
		ProjectAgentsCreate,
		ProjectAgentsRead,
		ProjectAgentsUpdate,
		ProjectInvitesCreate,
		ProjectDataRead,
		ProjectDataWrite,
	},
	types.ProjectRoleDeveloper: {
		ProjectRead,
		ProjectMembersRead,
		ProjectAgentsRead,
		ProjectAgentsUpdate,
		ProjectDataRead,
		ProjectDataWrite,
	},
	types.ProjectRoleAnalyst: {
		ProjectRead,
		ProjectMembersRead,
		ProjectAgentsRead,
		ProjectDataRead,
	},
}

var _ AuthorizerInterface = (*Authorizer)(nil)

type Authorizer struct {
	logger logging.LoggerInterface
}

func NewAuthorizer(logger logging.LoggerInterface) *Authorizer {
	return &Authorizer{logger: logger}
}

func (a *Authorizer) HasCompanyPermission(role, permission string) bool {
	return slices.Contains(companyPermissions[role], permission)
}

func (a *Authorizer) HasProjectPermission(role, permission string) bool {
	return slices.Contains(projectPermissions[role], permission)
}

// CanManageCompanyRole encodes the management precedence: owners manage
// everyone, admins manage plain members only. Nobody else manages roles,
// so an admin cannot touch another admin.
func (a *Authorizer) CanManageCompanyRole(actorRole, targetRole string) bool {
	switch targetRole {
	case types.CompanyRoleOwner, types.CompanyRoleBillingAdmin, types.CompanyRoleAdmin:
		return actorRole == types.CompanyRoleOwner
	case types.CompanyRoleMember:
		return actorRole == types.CompanyRoleOwner || actorRole == types.CompanyRoleAdmin
	}
	return false
}

// CanManageProjectRole mirrors the company rule at project scope:
// project owners manage everyone, project admins manage developers and
// analysts only.
func (a *Authorizer) CanManageProjectRole(actorRole, targetRole string) bool {
	switch targetRole {
	case types.ProjectRoleOwner, types.ProjectRoleAdmin:
		return actorRole == types.ProjectRoleOwner
	case types.ProjectRoleDeveloper, types.ProjectRoleAnalyst:
		return actorRole == types.ProjectRoleOwner || actorRole == types.ProjectRoleAdmin
	}
	return false
}

func (a *Authorizer) CompanyPermissions(role string) []string {
	return slices.Clone(companyPermissions[role])
}

func (a *Authorizer) ProjectPermissions(role string) []string {
	return slices.Clone(projectPermissions[role])
}
