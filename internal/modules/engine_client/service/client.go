package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"dash_gateway/pkg/httpclient"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
	Retry   httpclient.Policy
	Token   httpclient.TokenProvider
}

// Client covers the trading engine's REST surface. Every method is a
// stateless request/response round-trip wrapped in the shared retry policy;
// the engine owns all state, including the bot lifecycle.
type Client struct {
	http  *httpclient.Client
	retry httpclient.Policy
	log   *zap.Logger
}

func NewClient(cfg Config, log *zap.Logger) *Client {
	opts := []httpclient.Option{}
	if cfg.Token != nil {
		opts = append(opts, httpclient.WithTokenProvider(cfg.Token))
	}
	return &Client{
		http:  httpclient.New(cfg.BaseURL, "engine", cfg.Timeout, log, opts...),
		retry: cfg.Retry,
		log:   log,
	}
}

// Health probes the engine liveness endpoint. Never retried: a liveness
// check that waits out a backoff sequence defeats its purpose.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	return httpclient.Retry(ctx, c.log, httpclient.NoRetry(), "engine.health",
		func(ctx context.Context) (HealthStatus, error) {
			var hs HealthStatus
			if err := c.http.Get(ctx, "/health", nil, &hs); err != nil {
				return HealthStatus{}, err
			}
			return hs, nil
		})
}
