// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/tcpfleet/agent-platform/internal/types"
)

func (s *Storage) AddCompanyMember(ctx context.Context, companyID, userID int64, role string) (*types.CompanyMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddCompanyMember")
	defer span.End()

	var m types.CompanyMember
	err := s.db.Statement(ctx).
		Insert("company_members").
		Columns("company_id", "user_id", "role").
		Values(companyID, userID, role).
		Suffix("RETURNING id, company_id, user_id, role, joined_at").
		QueryRowContext(ctx).
		Scan(&m.ID, &m.CompanyID, &m.UserID, &m.Role, &m.JoinedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to add company member: %w", err)
	}

	return &m, nil
}

func (s *Storage) GetCompanyMember(ctx context.Context, companyID, userID int64) (*types.CompanyMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCompanyMember")
	defer span.End()

	var m types.CompanyMember
	err := s.db.Statement(ctx).
		Select("id", "company_id", "user_id", "role", "joined_at").
		From("company_members").
		Where(sq.Eq{"company_id": companyID, "user_id": userID}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.CompanyID, &m.UserID, &m.Role, &m.JoinedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get company member: %w", err)
	}

	return &m, nil
}

func (s *Storage) ListCompanyMembers(ctx context.Context, companyID int64) ([]*MemberDetail, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCompanyMembers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("u.id", "u.email", "u.name", "m.role", "m.joined_at").
		From("company_members m").
		Join("users u ON u.id = m.user_id").
		Where(sq.Eq{"m.company_id": companyID, "u.deleted_at": nil}).
		OrderBy("m.joined_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list company members: %w", err)
	}
	defer rows.Close()

	return scanMemberDetails(rows)
}

func (s *Storage) ListCompaniesByUserID(ctx context.Context, userID int64) ([]*CompanyMembershipRow, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCompaniesByUserID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("c.id", "c.name", "c.slug", "c.created_at", "c.updated_at", "c.deleted_at",
			"c.subscription_id", "c.plan_name", "c.subscription_status",
			"m.id", "m.company_id", "m.user_id", "m.role", "m.joined_at").
		From("company_members m").
		Join("companies c ON c.id = m.company_id").
		Where(sq.Eq{"m.user_id": userID, "c.deleted_at": nil}).
		OrderBy("m.joined_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies for user: %w", err)
	}
	defer rows.Close()

	var memberships []*CompanyMembershipRow
	for rows.Next() {
		var c types.Company
		var m types.CompanyMember
		err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
			&c.SubscriptionID, &c.PlanName, &c.SubscriptionStatus,
			&m.ID, &m.CompanyID, &m.UserID, &m.Role, &m.JoinedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, &CompanyMembershipRow{Company: &c, Member: &m})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating membership rows: %w", err)
	}

	return memberships, nil
}

func (s *Storage) UpdateCompanyMemberRole(ctx context.Context, companyID, userID int64, role string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateCompanyMemberRole")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("company_members").
		Set("role", role).
		Where(sq.Eq{"company_id": companyID, "user_id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update company member: %w", err)
	}

	return requireRowsAffected(res, ErrNotFound)
}

func (s *Storage) RemoveCompanyMember(ctx context.Context, companyID, userID int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveCompanyMember")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("company_members").
		Where(sq.Eq{"company_id": companyID, "user_id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to remove company member: %w", err)
	}

	return requireRowsAffected(res, ErrNotFound)
}

func (s *Storage) AddProjectMember(ctx context.Context, projectID, userID int64, role string) (*types.ProjectMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddProjectMember")
	defer span.End()

	var m types.ProjectMember
	err := s.db.Statement(ctx).
		Insert("project_members").
		Columns("project_id", "user_id", "role").
		Values(projectID, userID, role).
		Suffix("RETURNING id, project_id, user_id, role, joined_at").
		QueryRowContext(ctx).
		Scan(&m.ID, &m.ProjectID, &m.UserID, &m.Role, &m.JoinedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to add project member: %w", err)
	}

	return &m, nil
}

func (s *Storage) GetProjectMember(ctx context.Context, projectID, userID int64) (*types.ProjectMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProjectMember")
	defer span.End()

	var m types.ProjectMember
	err := s.db.Statement(ctx).
		Select("id", "project_id", "user_id", "role", "joined_at").
		From("project_members").
		Where(sq.Eq{"project_id": projectID, "user_id": userID}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.ProjectID, &m.UserID, &m.Role, &m.JoinedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project member: %w", err)
	}

	return &m, nil
}

func (s *Storage) ListProjectMembers(ctx context.Context, projectID int64) ([]*MemberDetail, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListProjectMembers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("u.id", "u.email", "u.name", "m.role", "m.joined_at").
		From("project_members m").
		Join("users u ON u.id = m.user_id").
		Where(sq.Eq{"m.project_id": projectID, "u.deleted_at": nil}).
		OrderBy("m.joined_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list project members: %w", err)
	}
	defer rows.Close()

	return scanMemberDetails(rows)
}

func (s *Storage) UpdateProjectMemberRole(ctx context.Context, projectID, userID int64, role string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateProjectMemberRole")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("project_members").
		Set("role", role).
		Where(sq.Eq{"project_id": projectID, "user_id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update project member: %w", err)
	}

	return requireRowsAffected(res, ErrNotFound)
}

func (s *Storage) RemoveProjectMember(ctx context.Context, projectID, userID int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveProjectMember")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("project_members").
		Where(sq.Eq{"project_id": projectID, "user_id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to remove project member: %w", err)
	}

	return requireRowsAffected(res, ErrNotFound)
}

func scanMemberDetails(rows *sql.Rows) ([]*MemberDetail, error) {
	var members []*MemberDetail
	for rows.Next() {
		var d MemberDetail
		if err := rows.Scan(&d.UserID, &d.Email, &d.Name, &d.Role, &d.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}

	return members, nil
}
