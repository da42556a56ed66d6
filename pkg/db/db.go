package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type PoolConfig struct {
	DSN string
}

func NewPool(ctx context.Context, conf PoolConfig) (*pgxpool.Pool, error) {
	return pgxpool.New(ctx, conf.DSN)
}

// Querier is the subset of pgx the storage code needs; both the pool and a
// transaction satisfy it.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PgTxManager struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

func NewPgTxManager(pool *pgxpool.Pool, log *zap.Logger) *PgTxManager {
	return &PgTxManager{pool: pool, log: log}
}

func (m *PgTxManager) Close() { m.pool.Close() }

func (m *PgTxManager) Conn() Querier { return m.pool }

// RunTx executes fn inside a ReadCommitted transaction, rolling back on
// error or panic.
func (m *PgTxManager) RunTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) (err error) {
	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin tx, err: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			m.log.Error("panic inside tx", zap.Any("panic", p))
			_ = tx.Rollback(ctx)
			panic(p) // fallthrough panic after rollback
		} else if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if err = fn(ctx, tx); err != nil {
		return fmt.Errorf("failed to run fn, err: %w", err)
	}
	return nil
}
