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

// Client talks to the AI analysis backend: model lifecycle and market
// analysis. All inference happens on the backend; this side only moves JSON.
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
		http:  httpclient.New(cfg.BaseURL, "ai", cfg.Timeout, log, opts...),
		retry: cfg.Retry,
		log:   log,
	}
}

// Health probes the AI service. No retry, same as the engine probe.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	return httpclient.Retry(ctx, c.log, httpclient.NoRetry(), "ai.health",
		func(ctx context.Context) (HealthStatus, error) {
			var hs HealthStatus
			if err := c.http.Get(ctx, "/health", nil, &hs); err != nil {
				return HealthStatus{}, err
			}
			return hs, nil
		})
}
