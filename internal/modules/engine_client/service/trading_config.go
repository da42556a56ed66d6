package service

import (
	"context"

	"dash_gateway/internal/models"
	"dash_gateway/pkg/httpclient"
)

func (c *Client) TradingConfig(ctx context.Context) (models.TradingConfig, error) {
	return httpclient.Retry(ctx, c.log, c.retry, "engine.trading_config",
		func(ctx context.Context) (models.TradingConfig, error) {
			var cfg models.TradingConfig
			if err := c.http.Get(ctx, "/api/config/trading", nil, &cfg); err != nil {
				return models.TradingConfig{}, err
			}
			return cfg, nil
		})
}

// UpdateTradingConfig is a full request/response round-trip; the engine
// applies the new config atomically and the caller re-fetches to observe it.
func (c *Client) UpdateTradingConfig(ctx context.Context, cfg models.TradingConfig) (models.CommandResult, error) {
	return httpclient.Retry(ctx, c.log, c.retry, "engine.update_trading_config",
		func(ctx context.Context) (models.CommandResult, error) {
			var res models.CommandResult
			if err := c.http.Put(ctx, "/api/config/trading", cfg, &res); err != nil {
				return models.CommandResult{}, err
			}
			return res, nil
		})
}
