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

const companyColumns = "id, name, slug, created_at, updated_at, deleted_at, subscription_id, plan_name, subscription_status"

func scanCompany(row sq.RowScanner) (*types.Company, error) {
	var c types.Company
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
		&c.SubscriptionID, &c.PlanName, &c.SubscriptionStatus)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Storage) CreateCompany(ctx context.Context, name, slug string) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCompany")
	defer span.End()

	row := s.db.Statement(ctx).
		Insert("companies").
		Columns("name", "slug").
		Values(name, slug).
		Suffix("RETURNING " + companyColumns).
		QueryRowContext(ctx)

	c, err := scanCompany(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert company: %w", err)
	}

	return c, nil
}

func (s *Storage) GetCompanyByID(ctx context.Context, id int64) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCompanyByID")
	defer span.End()

	return s.getCompany(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetCompanyBySlug(ctx context.Context, slug string) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCompanyBySlug")
	defer span.End()

	return s.getCompany(ctx, sq.Eq{"slug": slug})
}

func (s *Storage) getCompany(ctx context.Context, pred sq.Eq) (*types.Company, error) {
	row := s.db.Statement(ctx).
		Select("id", "name", "slug", "created_at", "updated_at", "deleted_at",
			"subscription_id", "plan_name", "subscription_status").
		From("companies").
		Where(pred).
		Where(sq.Eq{"deleted_at": nil}).
		QueryRowContext(ctx)

	c, err := scanCompany(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	return c, nil
}

func (s *Storage) CompanySlugExists(ctx context.Context, slug string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CompanySlugExists")
	defer span.End()

	var n int64
	err := s.db.Statement(ctx).
		Select("COUNT(1)").
		From("companies").
		Where(sq.Eq{"slug": slug}).
		QueryRowContext(ctx).
		Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check company slug: %w", err)
	}

	return n > 0, nil
}

func (s *Storage) UpdateCompanyBilling(ctx context.Context, id int64, subscriptionID, planName, status string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateCompanyBilling")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("companies").
		Set("subscription_id", subscriptionID).
		Set("plan_name", planName).
		Set("subscription_status", status).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update company billing: %w", err)
	}

	return requireRowsAffected(res, ErrNotFound)
}
