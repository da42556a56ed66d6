package service

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"dash_gateway/internal/models"
	"dash_gateway/pkg/httpclient"
)

const defaultMarketLimit = 100

func (c *Client) MarketData(ctx context.Context, symbol, timeframe string, limit int) (models.MarketData, error) {
	if limit <= 0 {
		limit = defaultMarketLimit
	}
	return httpclient.Retry(ctx, c.log, c.retry, "engine.market_data",
		func(ctx context.Context) (models.MarketData, error) {
			q := url.Values{
				"symbol":    {symbol},
				"timeframe": {timeframe},
				"limit":     {strconv.Itoa(limit)},
			}
			var md models.MarketData
			if err := c.http.Get(ctx, "/api/market/data", q, &md); err != nil {
				return models.MarketData{}, err
			}
			return md, nil
		})
}

// ChartData fetches candles plus 24h stats for one symbol/timeframe.
// limit <= 0 sends no limit parameter at all, leaving the server default
// in charge.
func (c *Client) ChartData(ctx context.Context, symbol, timeframe string, limit int) (models.ChartData, error) {
	return httpclient.Retry(ctx, c.log, c.retry, "engine.chart_data",
		func(ctx context.Context) (models.ChartData, error) {
			q := url.Values{
				"symbol":    {symbol},
				"timeframe": {timeframe},
			}
			if limit > 0 {
				q.Set("limit", strconv.Itoa(limit))
			}
			var cd models.ChartData
			if err := c.http.Get(ctx, "/api/market/chart", q, &cd); err != nil {
				return models.ChartData{}, err
			}
			return cd, nil
		})
}

// MultiChartData fetches every symbol x timeframe combination in one call.
// The result is keyed "SYMBOL:TIMEFRAME".
func (c *Client) MultiChartData(ctx context.Context, symbols, timeframes []string, limit int) (map[string]models.ChartData, error) {
	return httpclient.Retry(ctx, c.log, c.retry, "engine.multi_chart_data",
		func(ctx context.Context) (map[string]models.ChartData, error) {
			q := url.Values{
				"symbols":    {strings.Join(symbols, ",")},
				"timeframes": {strings.Join(timeframes, ",")},
			}
			if limit > 0 {
				q.Set("limit", strconv.Itoa(limit))
			}
			var out map[string]models.ChartData
			if err := c.http.Get(ctx, "/api/market/chart/multi", q, &out); err != nil {
				return nil, err
			}
			return out, nil
		})
}

func (c *Client) LatestPrices(ctx context.Context) (map[string]float64, error) {
	return httpclient.Retry(ctx, c.log, c.retry, "engine.latest_prices",
		func(ctx context.Context) (map[string]float64, error) {
			var out map[string]float64
			if err := c.http.Get(ctx, "/api/market/prices", nil, &out); err != nil {
				return nil, err
			}
			return out, nil
		})
}

func (c *Client) MarketOverview(ctx context.Context) (models.Document, error) {
	return httpclient.Retry(ctx, c.log, c.retry, "engine.market_overview",
		func(ctx context.Context) (models.Document, error) {
			var doc models.Document
			if err := c.http.Get(ctx, "/api/market/overview", nil, &doc); err != nil {
				return nil, err
			}
			return doc, nil
		})
}
