package service

import (
	"context"
	"net/url"
	"strconv"

	"dash_gateway/internal/models"
	"dash_gateway/pkg/httpclient"
)

const defaultHistoryLimit = 100

// TradeHistory returns the most recent trades, newest first. limit <= 0
// means the default of 100.
func (c *Client) TradeHistory(ctx context.Context, limit int) ([]models.TradeRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return httpclient.Retry(ctx, c.log, c.retry, "engine.trade_history",
		func(ctx context.Context) ([]models.TradeRecord, error) {
			q := url.Values{"limit": {strconv.Itoa(limit)}}
			var ts []models.TradeRecord
			if err := c.http.Get(ctx, "/api/trades/history", q, &ts); err != nil {
				return nil, err
			}
			return ts, nil
		})
}

func (c *Client) PerformanceStats(ctx context.Context) (models.PerformanceStats, error) {
	return httpclient.Retry(ctx, c.log, c.retry, "engine.performance_stats",
		func(ctx context.Context) (models.PerformanceStats, error) {
			var st models.PerformanceStats
			if err := c.http.Get(ctx, "/api/performance/stats", nil, &st); err != nil {
				return models.PerformanceStats{}, err
			}
			return st, nil
		})
}

// AccountInfo has no stable schema across engine versions; it stays an
// opaque Document.
func (c *Client) AccountInfo(ctx context.Context) (models.Document, error) {
	return httpclient.Retry(ctx, c.log, c.retry, "engine.account_info",
		func(ctx context.Context) (models.Document, error) {
			var doc models.Document
			if err := c.http.Get(ctx, "/api/account/info", nil, &doc); err != nil {
				return nil, err
			}
			return doc, nil
		})
}
