package gateway

import (
	"go.uber.org/fx"

	"dash_gateway/internal/modules/gateway/service"
)

func Module() fx.Option {
	return fx.Module("gateway",
		fx.Provide(
			service.New,
		),
	)
}
