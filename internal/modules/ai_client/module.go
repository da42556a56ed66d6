package ai_client

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"dash_gateway/internal/modules/ai_client/service"
	"dash_gateway/internal/modules/config"
	"dash_gateway/pkg/httpclient"
)

func Module() fx.Option {
	return fx.Module("ai_client",
		fx.Provide(
			func(cfg *config.Config, log *zap.Logger) *service.Client {
				return service.NewClient(service.Config{
					BaseURL: cfg.AIURL,
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
