package price_stream

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"dash_gateway/internal/modules/config"
	health "dash_gateway/internal/modules/health/service"
	"dash_gateway/internal/modules/price_stream/service"
)

func Module() fx.Option {
	return fx.Module("price_stream",
		fx.Provide(
			service.NewPriceBook,
			func(cfg *config.Config, book *service.PriceBook, state *health.State, log *zap.Logger) *service.Client {
				return service.NewClient(cfg.EngineURL, cfg.PriceStreamSymbols, book, state, log)
			},
		),
		fx.Invoke(func(lc fx.Lifecycle, cfg *config.Config, c *service.Client, log *zap.Logger) {
			if !cfg.PriceStreamEnabled {
				log.Info("price stream disabled")
				return
			}
			runCtx, cancel := context.WithCancel(context.Background())
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					go c.Start(runCtx)
					return nil
				},
				OnStop: func(ctx context.Context) error {
					cancel()
					return nil
				},
			})
		}),
	)
}
