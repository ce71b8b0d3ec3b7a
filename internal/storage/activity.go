// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/tcpfleet/agent-platform/internal/types"
)

func (s *Storage) InsertAgentActivity(ctx context.Context, log *types.AgentActivityLog) error {
	ctx, span := s.tracer.Start(ctx, "storage.InsertAgentActivity")
	defer span.End()

	metadata := log.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}
	encoded, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to encode activity metadata: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("agent_activity_logs").
		Columns("agent_id", "action", "metadata", "ip_address").
		Values(log.AgentID, log.Action, encoded, log.IPAddress).
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to insert activity log: %w", err)
	}

	return nil
}

func (s *Storage) ListAgentActivity(ctx context.Context, agentID int64, limit uint64) ([]*types.AgentActivityLog, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAgentActivity")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "agent_id", "action", "metadata", "ip_address", "timestamp").
		From("agent_activity_logs").
		Where(sq.Eq{"agent_id": agentID}).
		OrderBy("timestamp DESC").
		Limit(limit).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}
	defer rows.Close()

	var logs []*types.AgentActivityLog
	for rows.Next() {
		var l types.AgentActivityLog
		var metadata []byte
		if err := rows.Scan(&l.ID, &l.AgentID, &l.Action, &metadata, &l.IPAddress, &l.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan activity log: %w", err)
		}
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &l.Metadata); err != nil {
				return nil, fmt.Errorf("failed to decode activity metadata: %w", err)
			}
		}
		logs = append(logs, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	return logs, nil
}

func (s *Storage) InsertTelemetry(ctx context.Context, sample *types.TelemetrySample) error {
	ctx, span := s.tracer.Start(ctx, "storage.InsertTelemetry")
	defer span.End()

	extra := sample.Extra
	if extra == nil {
		extra = map[string]float64{}
	}
	encoded, err := json.Marshal(extra)
	if err != nil {
		return fmt.Errorf("failed to encode telemetry extras: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("agent_telemetry").
		Columns("agent_id", "throughput", "rtt_millis", "packet_loss", "congestion_window",
			"buffer_utilization", "cpu_usage", "memory_usage", "active_streams", "extra").
		Values(sample.AgentID, sample.Throughput, sample.RTTMillis, sample.PacketLoss,
			sample.CongestionWindow, sample.BufferUtilization, sample.CPUUsage,
			sample.MemoryUsage, sample.ActiveStreams, encoded).
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to insert telemetry: %w", err)
	}

	return nil
}

func (s *Storage) ListTelemetrySince(ctx context.Context, agentID int64, since time.Time, limit uint64) ([]*types.TelemetrySample, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTelemetrySince")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "agent_id", "throughput", "rtt_millis", "packet_loss", "congestion_window",
			"buffer_utilization", "cpu_usage", "memory_usage", "active_streams", "extra", "timestamp").
		From("agent_telemetry").
		Where(sq.Eq{"agent_id": agentID}).
		Where(sq.GtOrEq{"timestamp": since}).
		OrderBy("timestamp DESC").
		Limit(limit).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list telemetry: %w", err)
	}
	defer rows.Close()

	var samples []*types.TelemetrySample
	for rows.Next() {
		var t types.TelemetrySample
		var extra []byte
		err := rows.Scan(&t.ID, &t.AgentID, &t.Throughput, &t.RTTMillis, &t.PacketLoss,
			&t.CongestionWindow, &t.BufferUtilization, &t.CPUUsage, &t.MemoryUsage,
			&t.ActiveStreams, &extra, &t.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("failed to scan telemetry sample: %w", err)
		}
		if len(extra) > 0 {
			if err := json.Unmarshal(extra, &t.Extra); err != nil {
				return nil, fmt.Errorf("failed to decode telemetry extras: %w", err)
			}
		}
		samples = append(samples, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating telemetry rows: %w", err)
	}

	return samples, nil
}
