// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/tcpfleet/agent-platform/internal/types"
)

const companyInvitationColumns = "id, company_id, email, role, invited_by, invited_at, status, token, expires_at"
const projectInvitationColumns = "id, project_id, email, role, invited_by, invited_at, status, token, expires_at"

func (s *Storage) CreateCompanyInvitation(ctx context.Context, inv *types.CompanyInvitation) (*types.CompanyInvitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCompanyInvitation")
	defer span.End()

	var out types.CompanyInvitation
	err := s.db.Statement(ctx).
		Insert("company_invitations").
		Columns("company_id", "email", "role", "invited_by", "status", "token", "expires_at").
		Values(inv.CompanyID, inv.Email, inv.Role, inv.InvitedBy, types.InvitationPending, inv.Token, inv.ExpiresAt).
		Suffix("RETURNING " + companyInvitationColumns).
		QueryRowContext(ctx).
		Scan(&out.ID, &out.CompanyID, &out.Email, &out.Role, &out.InvitedBy,
			&out.InvitedAt, &out.Status, &out.Token, &out.ExpiresAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert company invitation: %w", err)
	}

	return &out, nil
}

func (s *Storage) GetCompanyInvitationByToken(ctx context.Context, token string) (*types.CompanyInvitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCompanyInvitationByToken")
	defer span.End()

	var inv types.CompanyInvitation
	err := s.db.Statement(ctx).
		Select("id", "company_id", "email", "role", "invited_by", "invited_at", "status", "token", "expires_at").
		From("company_invitations").
		Where(sq.Eq{"token": token}).
		QueryRowContext(ctx).
		Scan(&inv.ID, &inv.CompanyID, &inv.Email, &inv.Role, &inv.InvitedBy,
			&inv.InvitedAt, &inv.Status, &inv.Token, &inv.ExpiresAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get company invitation: %w", err)
	}

	return &inv, nil
}

// AcceptCompanyInvitation flips a pending invitation to accepted. The
// status is part of the predicate so a second accept reports ErrNotFound.
func (s *Storage) AcceptCompanyInvitation(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.AcceptCompanyInvitation")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("company_invitations").
		Set("status", types.InvitationAccepted).
		Where(sq.Eq{"id": id, "status": types.InvitationPending}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to accept company invitation: %w", err)
	}

	return requireRowsAffected(res, ErrNotFound)
}

func (s *Storage) ListCompanyInvitations(ctx context.Context, companyID int64) ([]*types.CompanyInvitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCompanyInvitations")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "company_id", "email", "role", "invited_by", "invited_at", "status", "token", "expires_at").
		From("company_invitations").
		Where(sq.Eq{"company_id": companyID, "status": types.InvitationPending}).
		OrderBy("invited_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list company invitations: %w", err)
	}
	defer rows.Close()

	var invitations []*types.CompanyInvitation
	for rows.Next() {
		var inv types.CompanyInvitation
		err := rows.Scan(&inv.ID, &inv.CompanyID, &inv.Email, &inv.Role, &inv.InvitedBy,
			&inv.InvitedAt, &inv.Status, &inv.Token, &inv.ExpiresAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company invitation: %w", err)
		}
		invitations = append(invitations, &inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating company invitation rows: %w", err)
	}

	return invitations, nil
}

// RevokeCompanyInvitation deletes a pending invitation. Accepted
// invitations stay for the audit trail and cannot be revoked.
func (s *Storage) RevokeCompanyInvitation(ctx context.Context, companyID, id int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.RevokeCompanyInvitation")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("company_invitations").
		Where(sq.Eq{"id": id, "company_id": companyID, "status": types.InvitationPending}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to revoke company invitation: %w", err)
	}

	return requireRowsAffected(res, ErrNotFound)
}

func (s *Storage) ListProjectInvitations(ctx context.Context, projectID int64) ([]*types.ProjectInvitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListProjectInvitations")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "project_id", "email", "role", "invited_by", "invited_at", "status", "token", "expires_at").
		From("project_invitations").
		Where(sq.Eq{"project_id": projectID, "status": types.InvitationPending}).
		OrderBy("invited_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list project invitations: %w", err)
	}
	defer rows.Close()

	var invitations []*types.ProjectInvitation
	for rows.Next() {
		var inv types.ProjectInvitation
		err := rows.Scan(&inv.ID, &inv.ProjectID, &inv.Email, &inv.Role, &inv.InvitedBy,
			&inv.InvitedAt, &inv.Status, &inv.Token, &inv.ExpiresAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project invitation: %w", err)
		}
		invitations = append(invitations, &inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project invitation rows: %w", err)
	}

	return invitations, nil
}

func (s *Storage) RevokeProjectInvitation(ctx context.Context, projectID, id int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.RevokeProjectInvitation")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("project_invitations").
		Where(sq.Eq{"id": id, "project_id": projectID, "status": types.InvitationPending}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to revoke project invitation: %w", err)
	}

	return requireRowsAffected(res, ErrNotFound)
}

func (s *Storage) CreateProjectInvitation(ctx context.Context, inv *types.ProjectInvitation) (*types.ProjectInvitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateProjectInvitation")
	defer span.End()

	var out types.ProjectInvitation
	err := s.db.Statement(ctx).
		Insert("project_invitations").
		Columns("project_id", "email", "role", "invited_by", "status", "token", "expires_at").
		Values(inv.ProjectID, inv.Email, inv.Role, inv.InvitedBy, types.InvitationPending, inv.Token, inv.ExpiresAt).
		Suffix("RETURNING " + projectInvitationColumns).
		QueryRowContext(ctx).
		Scan(&out.ID, &out.ProjectID, &out.Email, &out.Role, &out.InvitedBy,
			&out.InvitedAt, &out.Status, &out.Token, &out.ExpiresAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert project invitation: %w", err)
	}

	return &out, nil
}

func (s *Storage) GetProjectInvitationByToken(ctx context.Context, token string) (*types.ProjectInvitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProjectInvitationByToken")
	defer span.End()

	var inv types.ProjectInvitation
	err := s.db.Statement(ctx).
		Select("id", "project_id", "email", "role", "invited_by", "invited_at", "status", "token", "expires_at").
		From("project_invitations").
		Where(sq.Eq{"token": token}).
		QueryRowContext(ctx).
		Scan(&inv.ID, &inv.ProjectID, &inv.Email, &inv.Role, &inv.InvitedBy,
			&inv.InvitedAt, &inv.Status, &inv.Token, &inv.ExpiresAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project invitation: %w", err)
	}

	return &inv, nil
}

func (s *Storage) AcceptProjectInvitation(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.AcceptProjectInvitation")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("project_invitations").
		Set("status", types.InvitationAccepted).
		Where(sq.Eq{"id": id, "status": types.InvitationPending}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to accept project invitation: %w", err)
	}

	return requireRowsAffected(res, ErrNotFound)
}
