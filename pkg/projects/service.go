// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package projects manages the projects of the session's company.
package projects

import (
	"context"
	"errors"

	"github.com/tcpfleet/agent-platform/internal/authorization"
	"github.com/tcpfleet/agent-platform/internal/logging"
	"github.com/tcpfleet/agent-platform/internal/monitoring"
	"github.com/tcpfleet/agent-platform/internal/slug"
	"github.com/tcpfleet/agent-platform/internal/storage"
	"github.com/tcpfleet/agent-platform/internal/tracing"
	"github.com/tcpfleet/agent-platform/internal/types"
	"github.com/tcpfleet/agent-platform/pkg/authentication"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage    StorageInterface
	authorizer authorization.AuthorizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authorizer authorization.AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:    storage,
		authorizer: authorizer,

		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) requireCompanyPermission(session *authentication.UserSession, permission string) error {
	if session.Company == nil || !s.authorizer.HasCompanyPermission(session.Company.Role, permission) {
		s.logger.Security().AuthzFailure(session.Email, permission)
		return authentication.ErrAccessDenied
	}
	return nil
}

func (s *Service) ListProjects(ctx context.Context, session *authentication.UserSession) ([]*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "projects.Service.ListProjects")
	defer span.End()

	if err := s.requireCompanyPermission(session, authorization.CompanyRead); err != nil {
		return nil, err
	}

	return s.storage.ListProjectsByCompanyID(ctx, session.Company.ID)
}

// CreateProject provisions a project with a slug unique within the
// company and makes the creator its project owner.
func (s *Service) CreateProject(ctx context.Context, session *authentication.UserSession, name, description string) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "projects.Service.CreateProject")
	defer span.End()

	if err := s.requireCompanyPermission(session, authorization.CompanyProjectsCreate); err != nil {
		return nil, err
	}

	companyID := session.Company.ID
	projectSlug, err := slug.Unique(ctx, name, func(ctx context.Context, candidate string) (bool, error) {
		return s.storage.ProjectSlugExists(ctx, companyID, candidate)
	})
	if err != nil {
		return nil, err
	}

	project, err := s.storage.CreateProject(ctx, companyID, name, projectSlug, description)
	if err != nil {
		return nil, err
	}

	if _, err := s.storage.AddProjectMember(ctx, project.ID, session.UserID, types.ProjectRoleOwner); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *Service) GetProject(ctx context.Context, session *authentication.UserSession, projectSlug string) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "projects.Service.GetProject")
	defer span.End()

	if err := s.requireCompanyPermission(session, authorization.CompanyRead); err != nil {
		return nil, err
	}

	return s.storage.GetProjectBySlug(ctx, session.Company.ID, projectSlug)
}

// UpdateProject requires a project-level update permission, so the actor
// must hold a membership in the project itself, not just the company.
func (s *Service) UpdateProject(ctx context.Context, session *authentication.UserSession, projectSlug, name, description string) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "projects.Service.UpdateProject")
	defer span.End()

	project, err := s.loadCompanyProject(ctx, session, projectSlug)
	if err != nil {
		return nil, err
	}

	member, err := s.storage.GetProjectMember(ctx, project.ID, session.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Security().AuthzFailure(session.Email, authorization.ProjectUpdate)
			return nil, authentication.ErrAccessDenied
		}
		return nil, err
	}
	if !s.authorizer.HasProjectPermission(member.Role, authorization.ProjectUpdate) {
		s.logger.Security().AuthzFailure(session.Email, authorization.ProjectUpdate)
		return nil, authentication.ErrAccessDenied
	}

	return s.storage.UpdateProject(ctx, project.ID, name, description)
}

func (s *Service) DeleteProject(ctx context.Context, session *authentication.UserSession, projectSlug string) error {
	ctx, span := s.tracer.Start(ctx, "projects.Service.DeleteProject")
	defer span.End()

	if err := s.requireCompanyPermission(session, authorization.CompanyProjectsDelete); err != nil {
		return err
	}

	project, err := s.loadCompanyProject(ctx, session, projectSlug)
	if err != nil {
		return err
	}

	return s.storage.SoftDeleteProject(ctx, project.ID)
}

// loadCompanyProject resolves a slug inside the session's company. A
// project from another company reads as missing.
func (s *Service) loadCompanyProject(ctx context.Context, session *authentication.UserSession, projectSlug string) (*types.Project, error) {
	if session.Company == nil {
		return nil, authentication.ErrAccessDenied
	}

	return s.storage.GetProjectBySlug(ctx, session.Company.ID, projectSlug)
}
