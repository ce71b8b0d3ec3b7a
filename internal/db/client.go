// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/tcpfleet/agent-platform/internal/logging"
	"github.com/tcpfleet/agent-platform/internal/monitoring"
	"github.com/tcpfleet/agent-platform/internal/tracing"
)

const defaultTxTimeout = time.Second * 60

type lazyTxContextKey struct{}

var lazyTxKey lazyTxContextKey

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TracingEnabled  bool
}

// lazyTx holds transaction state that is only materialized on first
// database access inside WithTx.
type lazyTx struct {
	db        *sql.DB
	tx        TxInterface
	logger    logging.LoggerInterface
	committed bool
	cancel    context.CancelFunc
}

func (lt *lazyTx) get() (TxInterface, error) {
	if lt.tx != nil {
		return lt.tx, nil
	}

	// Detached from the request context so a client disconnect does not
	// roll back a half-applied mutation; bounded by its own timeout.
	ctx, cancel := context.WithTimeout(context.Background(), defaultTxTimeout)
	tx, err := lt.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		cancel()
		return nil, err
	}

	lt.tx = tx
	lt.cancel = cancel
	return tx, nil
}

func (lt *lazyTx) started() bool {
	return lt.tx != nil
}

type DBClient struct {
	// pool is the native pgx pool, held so it can be closed
	pool *pgxpool.Pool
	// db is the database/sql adapter used for transactions and squirrel
	db *sql.DB

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Statement returns a squirrel builder bound to the current transaction
// when one is present in the context, otherwise to the pool.
func (d *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	if lt, ok := ctx.Value(lazyTxKey).(*lazyTx); ok {
		tx, err := lt.get()
		if err != nil {
			d.logger.Errorf("failed to start lazy transaction: %v", err)
		} else {
			return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(tx)
		}
	}

	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(d.db)
}

// WithTx runs fn with a context that lazily opens a transaction on
// first statement. The transaction commits when fn returns nil, rolls
// back otherwise. If fn never touched the database, nothing is opened.
func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	lt := &lazyTx{db: d.db, logger: d.logger}
	txCtx := context.WithValue(ctx, lazyTxKey, lt)

	defer func() {
		if lt.started() && !lt.committed {
			if err := lt.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
				d.logger.Errorf("failed to rollback transaction: %v", err)
			}
		}
		if lt.cancel != nil {
			lt.cancel()
		}
	}()

	if err := fn(txCtx); err != nil {
		return err
	}

	if lt.started() {
		if err := lt.tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %v", err)
		}
		lt.committed = true
	}

	return nil
}

func (d *DBClient) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *DBClient) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}

	if d.pool != nil {
		d.pool.Close()
	}
}

func NewDBClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	config, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("DSN validation failed: %v", err)
	}

	if cfg.TracingEnabled {
		// otelpgx uses the global TracerProvider installed by tracing.NewTracer
		config.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	config.MaxConns = cfg.MaxConns
	config.MinConns = cfg.MinConns
	config.MaxConnLifetime = cfg.MaxConnLifetime
	config.MaxConnLifetimeJitter = cfg.MaxConnLifetime / 10
	config.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %v", err)
	}

	if cfg.TracingEnabled {
		if err := otelpgx.RecordStats(pool); err != nil {
			return nil, fmt.Errorf("failed to start metrics collection for database: %v", err)
		}
	}

	db := stdlib.OpenDBFromPool(pool)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %v", err)
	}

	d := new(DBClient)
	d.pool = pool
	d.db = db

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d, nil
}
