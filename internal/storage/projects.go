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

const projectColumns = "id, company_id, name, slug, description, created_at, updated_at, deleted_at"

func scanProject(row sq.RowScanner) (*types.Project, error) {
	var p types.Project
	err := row.Scan(&p.ID, &p.CompanyID, &p.Name, &p.Slug, &p.Description,
		&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Storage) CreateProject(ctx context.Context, companyID int64, name, slug, description string) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateProject")
	defer span.End()

	row := s.db.Statement(ctx).
		Insert("projects").
		Columns("company_id", "name", "slug", "description").
		Values(companyID, name, slug, description).
		Suffix("RETURNING " + projectColumns).
		QueryRowContext(ctx)

	p, err := scanProject(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert project: %w", err)
	}

	return p, nil
}

func (s *Storage) GetProjectByID(ctx context.Context, id int64) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProjectByID")
	defer span.End()

	return s.getProject(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetProjectBySlug(ctx context.Context, companyID int64, slug string) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProjectBySlug")
	defer span.End()

	return s.getProject(ctx, sq.Eq{"company_id": companyID, "slug": slug})
}

func (s *Storage) getProject(ctx context.Context, pred sq.Eq) (*types.Project, error) {
	row := s.db.Statement(ctx).
		Select("id", "company_id", "name", "slug", "description", "created_at", "updated_at", "deleted_at").
		From("projects").
		Where(pred).
		Where(sq.Eq{"deleted_at": nil}).
		QueryRowContext(ctx)

	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return p, nil
}

func (s *Storage) ProjectSlugExists(ctx context.Context, companyID int64, slug string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ProjectSlugExists")
	defer span.End()

	var n int64
	err := s.db.Statement(ctx).
		Select("COUNT(1)").
		From("projects").
		Where(sq.Eq{"company_id": companyID, "slug": slug}).
		QueryRowContext(ctx).
		Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check project slug: %w", err)
	}

	return n > 0, nil
}

func (s *Storage) ListProjectsByCompanyID(ctx context.Context, companyID int64) ([]*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListProjectsByCompanyID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "company_id", "name", "slug", "description", "created_at", "updated_at", "deleted_at").
		From("projects").
		Where(sq.Eq{"company_id": companyID, "deleted_at": nil}).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*types.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, nil
}

func (s *Storage) UpdateProject(ctx context.Context, id int64, name, description string) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateProject")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("projects").
		Set("name", name).
		Set("description", description).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		Suffix("RETURNING " + projectColumns).
		QueryRowContext(ctx)

	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return p, nil
}

func (s *Storage) SoftDeleteProject(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.SoftDeleteProject")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("projects").
		Set("deleted_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return requireRowsAffected(res, ErrNotFound)
}
