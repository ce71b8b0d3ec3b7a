// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package accounts implements user sign-up, sign-in and session
// context switching.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tcpfleet/agent-platform/internal/logging"
	"github.com/tcpfleet/agent-platform/internal/monitoring"
	"github.com/tcpfleet/agent-platform/internal/slug"
	"github.com/tcpfleet/agent-platform/internal/storage"
	"github.com/tcpfleet/agent-platform/internal/tracing"
	"github.com/tcpfleet/agent-platform/internal/types"
	"github.com/tcpfleet/agent-platform/pkg/authentication"
)

// SignUpInput carries everything a sign-up may include: an optional
// invitation token (company or project scope) and an optional billing
// plan to start checkout for.
type SignUpInput struct {
	Email       string
	Password    string
	InviteToken string
	PriceID     string
}

// SignUpResult is the outcome of a successful sign-up. RedirectURL is
// either the dashboard or a checkout URL when a plan was requested.
type SignUpResult struct {
	User        *types.User
	Session     *authentication.UserSession
	RedirectURL string
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage  StorageInterface
	hasher   authentication.HasherInterface
	checkout CheckoutInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	hasher authentication.HasherInterface,
	checkout CheckoutInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		hasher:   hasher,
		checkout: checkout,

		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// SignUp creates the user and lands them in a company: either the one
// behind the invitation token, or a freshly created company they own.
func (s *Service) SignUp(ctx context.Context, input *SignUpInput) (*SignUpResult, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.SignUp")
	defer span.End()

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.storage.CreateUser(ctx, input.Email, passwordHash)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, authentication.ErrAlreadyUsed
		}
		return nil, err
	}

	session := &authentication.UserSession{
		UserID: user.ID,
		Email:  user.Email,
	}

	if input.InviteToken != "" {
		if err := s.joinByInvitation(ctx, user, input.InviteToken, session); err != nil {
			return nil, err
		}
	} else {
		if err := s.createOwnedCompany(ctx, user, session); err != nil {
			return nil, err
		}
	}

	s.logger.Security().AuthnSuccess(user.Email)

	result := &SignUpResult{
		User:        user,
		Session:     session,
		RedirectURL: "/dashboard",
	}

	if input.PriceID != "" {
		company, err := s.storage.GetCompanyByID(ctx, session.Company.ID)
		if err != nil {
			return nil, err
		}
		url, err := s.checkout.CheckoutURL(ctx, company, input.PriceID)
		if err != nil {
			s.logger.Errorf("failed to start checkout for company %d: %v", company.ID, err)
			return result, nil
		}
		result.RedirectURL = url
	}

	return result, nil
}

// joinByInvitation consumes an invitation token. The token is looked up
// in the company scope first and the project scope second; expired and
// already-accepted invitations fail without side effects.
func (s *Service) joinByInvitation(ctx context.Context, user *types.User, token string, session *authentication.UserSession) error {
	invitation, err := s.storage.GetCompanyInvitationByToken(ctx, token)
	if err == nil {
		return s.acceptCompanyInvitation(ctx, user, invitation, session)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	projectInvitation, err := s.storage.GetProjectInvitationByToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return authentication.ErrNotFound
		}
		return err
	}

	return s.acceptProjectInvitation(ctx, user, projectInvitation, session)
}

func (s *Service) acceptCompanyInvitation(ctx context.Context, user *types.User, invitation *types.CompanyInvitation, session *authentication.UserSession) error {
	if err := checkInvitation(invitation.Status, invitation.ExpiresAt, invitation.Email, user.Email); err != nil {
		return err
	}

	if err := s.storage.AcceptCompanyInvitation(ctx, invitation.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return authentication.ErrAlreadyUsed
		}
		return err
	}

	member, err := s.storage.AddCompanyMember(ctx, invitation.CompanyID, user.ID, invitation.Role)
	if err != nil {
		return err
	}

	company, err := s.storage.GetCompanyByID(ctx, invitation.CompanyID)
	if err != nil {
		return err
	}

	session.Company = &authentication.CompanyContext{
		ID:   company.ID,
		Slug: company.Slug,
		Role: member.Role,
	}
	return nil
}

// acceptProjectInvitation grants both memberships: a plain company
// membership and the project role named in the invitation.
func (s *Service) acceptProjectInvitation(ctx context.Context, user *types.User, invitation *types.ProjectInvitation, session *authentication.UserSession) error {
	if err := checkInvitation(invitation.Status, invitation.ExpiresAt, invitation.Email, user.Email); err != nil {
		return err
	}

	if err := s.storage.AcceptProjectInvitation(ctx, invitation.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return authentication.ErrAlreadyUsed
		}
		return err
	}

	project, err := s.storage.GetProjectByID(ctx, invitation.ProjectID)
	if err != nil {
		return err
	}

	company, err := s.storage.GetCompanyByID(ctx, project.CompanyID)
	if err != nil {
		return err
	}

	companyMember, err := s.storage.AddCompanyMember(ctx, company.ID, user.ID, types.CompanyRoleMember)
	if err != nil && !errors.Is(err, storage.ErrDuplicateKey) {
		return err
	}
	companyRole := types.CompanyRoleMember
	if companyMember != nil {
		companyRole = companyMember.Role
	}

	projectMember, err := s.storage.AddProjectMember(ctx, project.ID, user.ID, invitation.Role)
	if err != nil {
		return err
	}

	session.Company = &authentication.CompanyContext{
		ID:   company.ID,
		Slug: company.Slug,
		Role: companyRole,
	}
	session.Project = &authentication.ProjectContext{
		ID:   project.ID,
		Slug: project.Slug,
		Role: projectMember.Role,
	}
	return nil
}

// createOwnedCompany provisions a fresh company named after the email's
// local part, with the new user as its owner.
func (s *Service) createOwnedCompany(ctx context.Context, user *types.User, session *authentication.UserSession) error {
	local := user.Email
	if at := strings.Index(local, "@"); at > 0 {
		local = local[:at]
	}
	name := fmt.Sprintf("%s's Company", local)

	companySlug, err := slug.Unique(ctx, local, s.storage.CompanySlugExists)
	if err != nil {
		return err
	}

	company, err := s.storage.CreateCompany(ctx, name, companySlug)
	if err != nil {
		return err
	}

	member, err := s.storage.AddCompanyMember(ctx, company.ID, user.ID, types.CompanyRoleOwner)
	if err != nil {
		return err
	}

	session.Company = &authentication.CompanyContext{
		ID:   company.ID,
		Slug: company.Slug,
		Role: member.Role,
	}
	return nil
}

// AcceptInvitation consumes an invitation token on behalf of a signed-in
// user. The accepted scope replaces the session's contexts the same way
// a switch does, so the caller gets a session rooted in the new company
// or project. The token is spent exactly once; reuse fails with
// ErrAlreadyUsed and no membership is granted.
func (s *Service) AcceptInvitation(ctx context.Context, session *authentication.UserSession, token string) (*authentication.UserSession, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.AcceptInvitation")
	defer span.End()

	user, err := s.storage.GetUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, authentication.ErrInvalidCredentials
		}
		return nil, err
	}

	next := &authentication.UserSession{
		UserID: user.ID,
		Email:  user.Email,
	}
	if err := s.joinByInvitation(ctx, user, token, next); err != nil {
		return nil, err
	}

	s.logger.Infof("user %d accepted an invitation into company %d", user.ID, next.Company.ID)
	return next, nil
}

// SignIn verifies the credentials and builds a session scoped to the
// user's first company, if any. Unknown emails and wrong passwords are
// indistinguishable to the caller.
func (s *Service) SignIn(ctx context.Context, email, password string) (*authentication.UserSession, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.SignIn")
	defer span.End()

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Security().AuthnFailure(email, "unknown email")
			return nil, authentication.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, authentication.ErrInvalidCredentials) {
			s.logger.Security().AuthnFailure(email, "wrong password")
			return nil, authentication.ErrInvalidCredentials
		}
		return nil, err
	}

	session := &authentication.UserSession{
		UserID: user.ID,
		Email:  user.Email,
	}

	memberships, err := s.storage.ListCompaniesByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(memberships) > 0 {
		first := memberships[0]
		session.Company = &authentication.CompanyContext{
			ID:   first.Company.ID,
			Slug: first.Company.Slug,
			Role: first.Member.Role,
		}
	}

	s.logger.Security().AuthnSuccess(email)
	return session, nil
}

func (s *Service) UpdatePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.UpdatePassword")
	defer span.End()

	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.hasher.Compare(user.PasswordHash, currentPassword); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	return s.storage.UpdateUserPassword(ctx, userID, hash)
}

// SwitchCompany rescopes the session to another company the user is a
// member of. Any project context is cleared: projects belong to
// companies and never survive a company switch.
func (s *Service) SwitchCompany(ctx context.Context, session *authentication.UserSession, companySlug string) (*authentication.UserSession, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.SwitchCompany")
	defer span.End()

	company, err := s.storage.GetCompanyBySlug(ctx, companySlug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, authentication.ErrAccessDenied
		}
		return nil, err
	}

	member, err := s.storage.GetCompanyMember(ctx, company.ID, session.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Security().AuthzFailure(session.Email, "switch-company")
			return nil, authentication.ErrAccessDenied
		}
		return nil, err
	}

	return &authentication.UserSession{
		UserID: session.UserID,
		Email:  session.Email,
		Company: &authentication.CompanyContext{
			ID:   company.ID,
			Slug: company.Slug,
			Role: member.Role,
		},
	}, nil
}

// SwitchProject selects a project inside the session's current company.
func (s *Service) SwitchProject(ctx context.Context, session *authentication.UserSession, projectSlug string) (*authentication.UserSession, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.SwitchProject")
	defer span.End()

	if session.Company == nil {
		return nil, authentication.ErrAccessDenied
	}

	// Scoping the lookup by company id makes a cross-company project
	// slug indistinguishable from a missing one.
	project, err := s.storage.GetProjectBySlug(ctx, session.Company.ID, projectSlug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, authentication.ErrAccessDenied
		}
		return nil, err
	}

	member, err := s.storage.GetProjectMember(ctx, project.ID, session.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Security().AuthzFailure(session.Email, "switch-project")
			return nil, authentication.ErrAccessDenied
		}
		return nil, err
	}

	return &authentication.UserSession{
		UserID:  session.UserID,
		Email:   session.Email,
		Company: session.Company,
		Project: &authentication.ProjectContext{
			ID:   project.ID,
			Slug: project.Slug,
			Role: member.Role,
		},
	}, nil
}

func checkInvitation(status string, expiresAt time.Time, invitedEmail, userEmail string) error {
	if status != types.InvitationPending {
		return authentication.ErrAlreadyUsed
	}
	if time.Now().After(expiresAt) {
		return authentication.ErrExpired
	}
	if !strings.EqualFold(invitedEmail, userEmail) {
		return authentication.ErrAccessDenied
	}
	return nil
}
