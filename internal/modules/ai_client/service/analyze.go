package service

import (
	"context"

	"dash_gateway/internal/models"
	"dash_gateway/pkg/httpclient"
)

// AnalyzeMarket submits one candle history and gets back a single signal
// snapshot. The signal is ephemeral; callers wanting history keep their own.
func (c *Client) AnalyzeMarket(ctx context.Context, req models.AnalyzeRequest) (models.AISignal, error) {
	return httpclient.Retry(ctx, c.log, c.retry, "ai.analyze_market",
		func(ctx context.Context) (models.AISignal, error) {
			var sig models.AISignal
			if err := c.http.Post(ctx, "/api/analyze", req, &sig); err != nil {
				return models.AISignal{}, err
			}
			return sig, nil
		})
}

// AIConfig returns the service's effective configuration. Schema varies by
// deployment, hence the opaque Document.
func (c *Client) AIConfig(ctx context.Context) (models.Document, error) {
	return httpclient.Retry(ctx, c.log, c.retry, "ai.config",
		func(ctx context.Context) (models.Document, error) {
			var doc models.Document
			if err := c.http.Get(ctx, "/api/config", nil, &doc); err != nil {
				return nil, err
			}
			return doc, nil
		})
}
