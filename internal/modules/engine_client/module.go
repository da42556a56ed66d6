package engine_client

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"dash_gateway/internal/modules/config"
	"dash_gateway/internal/modules/engine_client/service"
	"dash_gateway/pkg/httpclient"
)

func Module() fx.Option {
	return fx.Module("engine_client",
		fx.Provide(
			func(cfg *config.Config, log *zap.Logger) *service.Client {
				return service.NewClient(service.Config{
					BaseURL: cfg.EngineURL,
					Timeout: cfg.RequestTimeout,
					Retry: httpclient.Policy{
						MaxAttempts:    cfg.RetryMaxAttempts,
						InitialBackoff: cfg.RetryInitialBackoff,
					},
					Token: httpclient.StaticToken(cfg.AuthToken),
				}, log)
			},
		),
	)
}
