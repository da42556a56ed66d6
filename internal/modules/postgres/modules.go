package postgres

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"dash_gateway/internal/modules/config"
	"dash_gateway/pkg/db"
)

// Module provides the transaction manager. A nil manager means postgres is
// not configured; the journal falls back to a no-op in that case.
func Module() fx.Option {
	return fx.Module("postgres",
		fx.Provide(
			func(ctx context.Context, cfg *config.Config, log *zap.Logger) (*db.PgTxManager, error) {
				if cfg.DatabaseDSN == "" {
					log.Info("postgres disabled: no DATABASE_DSN")
					return nil, nil
				}

				pool, err := db.NewPool(ctx, db.PoolConfig{DSN: cfg.DatabaseDSN})
				if err != nil {
					return nil, errors.Wrap(err, "create pool")
				}
				if err = pool.Ping(ctx); err != nil {
					return nil, errors.Wrap(err, "ping postgres")
				}
				return db.NewPgTxManager(pool, log), nil
			},
		),
	)
}
