package journal

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"dash_gateway/internal/modules/journal/service"
	"dash_gateway/pkg/db"
)

func Module() fx.Option {
	return fx.Module("journal",
		fx.Provide(
			func(ctx context.Context, tm *db.PgTxManager, log *zap.Logger) (service.Journal, error) {
				if tm == nil {
					return service.NewNop(), nil
				}
				pg := service.NewPg(tm, log)
				if err := pg.EnsureSchema(ctx); err != nil {
					return nil, err
				}
				return pg, nil
			},
		),
	)
}
