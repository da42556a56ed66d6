package service

import (
	"context"

	"dash_gateway/internal/models"
	"dash_gateway/pkg/httpclient"
)

func (c *Client) Positions(ctx context.Context) ([]models.Position, error) {
	return httpclient.Retry(ctx, c.log, c.retry, "engine.positions",
		func(ctx context.Context) ([]models.Position, error) {
			var ps []models.Position
			if err := c.http.Get(ctx, "/api/positions", nil, &ps); err != nil {
				return nil, err
			}
			return ps, nil
		})
}

func (c *Client) ClosePosition(ctx context.Context, symbol string) (models.CommandResult, error) {
	return httpclient.Retry(ctx, c.log, c.retry, "engine.close_position",
		func(ctx context.Context) (models.CommandResult, error) {
			body := map[string]string{"symbol": symbol}
			var res models.CommandResult
			if err := c.http.Post(ctx, "/api/positions/close", body, &res); err != nil {
				return models.CommandResult{}, err
			}
			return res, nil
		})
}

func (c *Client) CloseAllPositions(ctx context.Context) (models.CommandResult, error) {
	return c.command(ctx, "engine.close_all_positions", "/api/positions/close-all")
}
