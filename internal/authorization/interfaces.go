// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

type AuthorizerInterface interface {
	// HasCompanyPermission reports whether the company role carries the
	// permission. Unknown roles and permissions are denied.
	HasCompanyPermission(role, permission string) bool
	// HasProjectPermission reports whether the project role carries the
	// permission. Unknown roles and permissions are denied.
	HasProjectPermission(role, permission string) bool

	// CanManageCompanyRole reports whether an actor with actorRole may
	// change or remove a member holding targetRole.
	CanManageCompanyRole(actorRole, targetRole string) bool
	// CanManageProjectRole is the project-scope equivalent.
	CanManageProjectRole(actorRole, targetRole string) bool

	CompanyPermissions(role string) []string
	ProjectPermissions(role string) []string
}
