package service

import (
	"context"

	"dash_gateway/internal/models"
	"dash_gateway/pkg/httpclient"
)

func (c *Client) BotStatus(ctx context.Context) (models.BotStatus, error) {
	return httpclient.Retry(ctx, c.log, c.retry, "engine.bot_status",
		func(ctx context.Context) (models.BotStatus, error) {
			var st models.BotStatus
			if err := c.http.Get(ctx, "/api/bot/status", nil, &st); err != nil {
				return models.BotStatus{}, err
			}
			return st, nil
		})
}

// StartBot asks the engine to begin trading. A false Success in the result
// (bot already running, config invalid) arrives with HTTP 200 and is left
// to the caller.
func (c *Client) StartBot(ctx context.Context) (models.CommandResult, error) {
	return c.command(ctx, "engine.start_bot", "/api/bot/start")
}

func (c *Client) StopBot(ctx context.Context) (models.CommandResult, error) {
	return c.command(ctx, "engine.stop_bot", "/api/bot/stop")
}

func (c *Client) command(ctx context.Context, name, path string) (models.CommandResult, error) {
	return httpclient.Retry(ctx, c.log, c.retry, name,
		func(ctx context.Context) (models.CommandResult, error) {
			var res models.CommandResult
			if err := c.http.Post(ctx, path, nil, &res); err != nil {
				return models.CommandResult{}, err
			}
			return res, nil
		})
}
