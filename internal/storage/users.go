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

const userColumns = "id, name, email, password_hash, created_at, updated_at, deleted_at"

func (s *Storage) CreateUser(ctx context.Context, email, passwordHash string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	var u types.User
	err := s.db.Statement(ctx).
		Insert("users").
		Columns("email", "password_hash").
		Values(email, passwordHash).
		Suffix("RETURNING " + userColumns).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return &u, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"email": email})
}

func (s *Storage) GetUserByID(ctx context.Context, id int64) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"id": id})
}

func (s *Storage) getUser(ctx context.Context, pred sq.Eq) (*types.User, error) {
	var u types.User
	err := s.db.Statement(ctx).
		Select("id", "name", "email", "password_hash", "created_at", "updated_at", "deleted_at").
		From("users").
		Where(pred).
		Where(sq.Eq{"deleted_at": nil}).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

func (s *Storage) UpdateUserPassword(ctx context.Context, id int64, passwordHash string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateUserPassword")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("password_hash", passwordHash).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return requireRowsAffected(res, ErrNotFound)
}

// SoftDeleteUser marks the user deleted. The email is suffixed with the
// user id so the unique constraint does not block re-registration.
func (s *Storage) SoftDeleteUser(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.SoftDeleteUser")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("deleted_at", sq.Expr("now()")).
		Set("email", sq.Expr("email || '-' || id || '-deleted'")).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return requireRowsAffected(res, ErrNotFound)
}
