package service

import (
	"context"
	"net/url"

	"dash_gateway/internal/models"
	"dash_gateway/pkg/httpclient"
)

func (c *Client) SupportedSymbols(ctx context.Context) ([]models.SymbolInfo, error) {
	return httpclient.Retry(ctx, c.log, c.retry, "engine.supported_symbols",
		func(ctx context.Context) ([]models.SymbolInfo, error) {
			var syms []models.SymbolInfo
			if err := c.http.Get(ctx, "/api/market/symbols", nil, &syms); err != nil {
				return nil, err
			}
			return syms, nil
		})
}

func (c *Client) AddSymbol(ctx context.Context, req models.AddSymbolRequest) (models.CommandResult, error) {
	return httpclient.Retry(ctx, c.log, c.retry, "engine.add_symbol",
		func(ctx context.Context) (models.CommandResult, error) {
			var res models.CommandResult
			if err := c.http.Post(ctx, "/api/market/symbols", req, &res); err != nil {
				return models.CommandResult{}, err
			}
			return res, nil
		})
}

func (c *Client) RemoveSymbol(ctx context.Context, symbol string) (models.CommandResult, error) {
	return httpclient.Retry(ctx, c.log, c.retry, "engine.remove_symbol",
		func(ctx context.Context) (models.CommandResult, error) {
			var res models.CommandResult
			if err := c.http.Delete(ctx, "/api/market/symbols/"+url.PathEscape(symbol), &res); err != nil {
				return models.CommandResult{}, err
			}
			return res, nil
		})
}
