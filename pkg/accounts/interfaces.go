// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"context"

	"github.com/tcpfleet/agent-platform/internal/storage"
	"github.com/tcpfleet/agent-platform/internal/types"
	"github.com/tcpfleet/agent-platform/pkg/authentication"
)

type ServiceInterface interface {
	SignUp(ctx context.Context, input *SignUpInput) (*SignUpResult, error)
	SignIn(ctx context.Context, email, password string) (*authentication.UserSession, error)
	AcceptInvitation(ctx context.Context, session *authentication.UserSession, token string) (*authentication.UserSession, error)
	UpdatePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error
	SwitchCompany(ctx context.Context, session *authentication.UserSession, companySlug string) (*authentication.UserSession, error)
	SwitchProject(ctx context.Context, session *authentication.UserSession, projectSlug string) (*authentication.UserSession, error)
}

// StorageInterface defines the storage operations required by the
// accounts package.
type StorageInterface interface {
	CreateUser(ctx context.Context, email, passwordHash string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetUserByID(ctx context.Context, id int64) (*types.User, error)
	UpdateUserPassword(ctx context.Context, id int64, passwordHash string) error

	CreateCompany(ctx context.Context, name, slug string) (*types.Company, error)
	GetCompanyByID(ctx context.Context, id int64) (*types.Company, error)
	GetCompanyBySlug(ctx context.Context, slug string) (*types.Company, error)
	CompanySlugExists(ctx context.Context, slug string) (bool, error)

	GetProjectByID(ctx context.Context, id int64) (*types.Project, error)
	GetProjectBySlug(ctx context.Context, companyID int64, slug string) (*types.Project, error)

	AddCompanyMember(ctx context.Context, companyID, userID int64, role string) (*types.CompanyMember, error)
	GetCompanyMember(ctx context.Context, companyID, userID int64) (*types.CompanyMember, error)
	ListCompaniesByUserID(ctx context.Context, userID int64) ([]*storage.CompanyMembershipRow, error)
	AddProjectMember(ctx context.Context, projectID, userID int64, role string) (*types.ProjectMember, error)
	GetProjectMember(ctx context.Context, projectID, userID int64) (*types.ProjectMember, error)

	GetCompanyInvitationByToken(ctx context.Context, token string) (*types.CompanyInvitation, error)
	AcceptCompanyInvitation(ctx context.Context, id int64) error
	GetProjectInvitationByToken(ctx context.Context, token string) (*types.ProjectInvitation, error)
	AcceptProjectInvitation(ctx context.Context, id int64) error
}

// CheckoutInterface starts a billing checkout for a newly created
// company. Implementations talk to the external billing provider.
type CheckoutInterface interface {
	CheckoutURL(ctx context.Context, company *types.Company, priceID string) (string, error)
}
