package monitor

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"dash_gateway/internal/modules/config"
	gateway "dash_gateway/internal/modules/gateway/service"
	"dash_gateway/internal/modules/monitor/service"
	"dash_gateway/internal/notify"
)

func Module() fx.Option {
	return fx.Module("monitor",
		fx.Provide(
			func(cfg *config.Config, gw *gateway.Gateway, log *zap.Logger) (notify.Notifier, error) {
				if cfg.TelegramToken == "" {
					return notify.NewStdout(log), nil
				}
				return notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID, gw, log)
			},
			service.NewMonitor,
		),
		fx.Invoke(func(lc fx.Lifecycle, m *service.Monitor, n notify.Notifier, log *zap.Logger) {
			runCtx, cancel := context.WithCancel(context.Background())
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					if tg, ok := n.(*notify.Telegram); ok {
						if err := tg.Start(runCtx); err != nil {
							return err
						}
					}
					go func() {
						log.Info("health monitor started")
						m.Run(runCtx)
						log.Info("health monitor stopped")
					}()
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
