// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package projects

import (
	"context"

	"github.com/tcpfleet/agent-platform/internal/types"
	"github.com/tcpfleet/agent-platform/pkg/authentication"
)

type ServiceInterface interface {
	ListProjects(ctx context.Context, session *authentication.UserSession) ([]*types.Project, error)
	CreateProject(ctx context.Context, session *authentication.UserSession, name, description string) (*types.Project, error)
	GetProject(ctx context.Context, session *authentication.UserSession, slug string) (*types.Project, error)
	UpdateProject(ctx context.Context, session *authentication.UserSession, slug, name, description string) (*types.Project, error)
	DeleteProject(ctx context.Context, session *authentication.UserSession, slug string) error
}

type StorageInterface interface {
	CreateProject(ctx context.Context, companyID int64, name, slug, description string) (*types.Project, error)
	GetProjectBySlug(ctx context.Context, companyID int64, slug string) (*types.Project, error)
	ProjectSlugExists(ctx context.Context, companyID int64, slug string) (bool, error)
	ListProjectsByCompanyID(ctx context.Context, companyID int64) ([]*types.Project, error)
	UpdateProject(ctx context.Context, id int64, name, description string) (*types.Project, error)
	SoftDeleteProject(ctx context.Context, id int64) error
	AddProjectMember(ctx context.Context, projectID, userID int64, role string) (*types.ProjectMember, error)
	GetProjectMember(ctx context.Context, projectID, userID int64) (*types.ProjectMember, error)
}
