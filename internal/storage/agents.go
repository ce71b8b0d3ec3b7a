// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/tcpfleet/agent-platform/internal/types"
)

const agentColumns = "id, project_id, name, slug, description, agent_id, secret_hash, " +
	"registration_token, registration_token_expires_at, is_active, capabilities, " +
	"last_seen_at, created_at, updated_at, deleted_at"

func scanAgent(row sq.RowScanner) (*types.Agent, error) {
	var a types.Agent
	var capabilities []byte
	err := row.Scan(&a.ID, &a.ProjectID, &a.Name, &a.Slug, &a.Description,
		&a.AgentID, &a.SecretHash, &a.RegistrationToken, &a.RegistrationTokenExpiresAt,
		&a.IsActive, &capabilities, &a.LastSeenAt, &a.CreatedAt, &a.UpdatedAt, &a.DeletedAt)
	if err != nil {
		return nil, err
	}
	if len(capabilities) > 0 {
		if err := json.Unmarshal(capabilities, &a.Capabilities); err != nil {
			return nil, fmt.Errorf("failed to decode capabilities: %w", err)
		}
	}
	return &a, nil
}

func marshalCapabilities(capabilities []string) ([]byte, error) {
	if capabilities == nil {
		capabilities = []string{}
	}
	return json.Marshal(capabilities)
}

func (s *Storage) CreateAgent(ctx context.Context, a *types.Agent) (*types.Agent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAgent")
	defer span.End()

	capabilities, err := marshalCapabilities(a.Capabilities)
	if err != nil {
		return nil, fmt.Errorf("failed to encode capabilities: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("agents").
		Columns("project_id", "name", "slug", "description", "agent_id",
			"secret_hash", "registration_token", "registration_token_expires_at",
			"is_active", "capabilities").
		Values(a.ProjectID, a.Name, a.Slug, a.Description, a.AgentID,
			a.SecretHash, a.RegistrationToken, a.RegistrationTokenExpiresAt,
			a.IsActive, capabilities).
		Suffix("RETURNING " + agentColumns).
		QueryRowContext(ctx)

	created, err := scanAgent(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert agent: %w", err)
	}

	return created, nil
}

func (s *Storage) GetAgentByID(ctx context.Context, id int64) (*types.Agent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAgentByID")
	defer span.End()

	return s.getAgent(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetAgentByAgentID(ctx context.Context, agentID string) (*types.Agent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAgentByAgentID")
	defer span.End()

	return s.getAgent(ctx, sq.Eq{"agent_id": agentID})
}

func (s *Storage) GetAgentByRegistrationToken(ctx context.Context, token string) (*types.Agent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAgentByRegistrationToken")
	defer span.End()

	return s.getAgent(ctx, sq.Eq{"registration_token": token})
}

func (s *Storage) getAgent(ctx context.Context, pred sq.Eq) (*types.Agent, error) {
	row := s.db.Statement(ctx).
		Select("id", "project_id", "name", "slug", "description", "agent_id",
			"secret_hash", "registration_token", "registration_token_expires_at",
			"is_active", "capabilities", "last_seen_at", "created_at", "updated_at", "deleted_at").
		From("agents").
		Where(pred).
		Where(sq.Eq{"deleted_at": nil}).
		QueryRowContext(ctx)

	a, err := scanAgent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	return a, nil
}

// ConsumeRegistrationToken activates a pending agent. The token is part
// of the predicate so concurrent exchanges resolve to at most one
// winner; losers observe ErrNotFound.
func (s *Storage) ConsumeRegistrationToken(ctx context.Context, id int64, token, name, secretHash string) error {
	ctx, span := s.tracer.Start(ctx, "storage.ConsumeRegistrationToken")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("agents").
		Set("name", name).
		Set("secret_hash", secretHash).
		Set("registration_token", nil).
		Set("registration_token_expires_at", nil).
		Set("is_active", true).
		Set("last_seen_at", sq.Expr("now()")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "registration_token": token, "deleted_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to consume registration token: %w", err)
	}

	return requireRowsAffected(res, ErrNotFound)
}

func (s *Storage) UpdateAgentSecret(ctx context.Context, id int64, secretHash string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateAgentSecret")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("agents").
		Set("secret_hash", secretHash).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update agent secret: %w", err)
	}

	return requireRowsAffected(res, ErrNotFound)
}

func (s *Storage) TouchAgentLastSeen(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.TouchAgentLastSeen")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("agents").
		Set("last_seen_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to touch agent: %w", err)
	}

	return requireRowsAffected(res, ErrNotFound)
}

func (s *Storage) ListAgentsByProjectID(ctx context.Context, projectID int64) ([]*types.Agent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAgentsByProjectID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "project_id", "name", "slug", "description", "agent_id",
			"secret_hash", "registration_token", "registration_token_expires_at",
			"is_active", "capabilities", "last_seen_at", "created_at", "updated_at", "deleted_at").
		From("agents").
		Where(sq.Eq{"project_id": projectID, "deleted_at": nil}).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	defer rows.Close()

	return collectAgents(rows)
}

func collectAgents(rows *sql.Rows) ([]*types.Agent, error) {
	var agents []*types.Agent
	for rows.Next() {
		a, err := scanAgent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan agent: %w", err)
		}
		agents = append(agents, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating agent rows: %w", err)
	}

	return agents, nil
}

func (s *Storage) UpdateAgent(ctx context.Context, id int64, name, description string, capabilities []string) (*types.Agent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateAgent")
	defer span.End()

	encoded, err := marshalCapabilities(capabilities)
	if err != nil {
		return nil, fmt.Errorf("failed to encode capabilities: %w", err)
	}

	row := s.db.Statement(ctx).
		Update("agents").
		Set("name", name).
		Set("description", description).
		Set("capabilities", encoded).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		Suffix("RETURNING " + agentColumns).
		QueryRowContext(ctx)

	a, err := scanAgent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update agent: %w", err)
	}

	return a, nil
}

func (s *Storage) SoftDeleteAgent(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.SoftDeleteAgent")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("agents").
		Set("deleted_at", sq.Expr("now()")).
		Set("is_active", false).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete agent: %w", err)
	}

	return requireRowsAffected(res, ErrNotFound)
}
