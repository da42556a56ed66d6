package service

import (
	"context"

	"dash_gateway/internal/models"
	"dash_gateway/pkg/httpclient"
)

const defaultKeepModels = 5

func (c *Client) ModelInfo(ctx context.Context) (models.AIModelInfo, error) {
	return httpclient.Retry(ctx, c.log, c.retry, "ai.model_info",
		func(ctx context.Context) (models.AIModelInfo, error) {
			var mi models.AIModelInfo
			if err := c.http.Get(ctx, "/api/model/info", nil, &mi); err != nil {
				return models.AIModelInfo{}, err
			}
			return mi, nil
		})
}

// TrainModel kicks off a training run. Never retried: training is
// long-running and a repeat on a flaky response would train twice.
func (c *Client) TrainModel(ctx context.Context, req models.TrainRequest) (models.TrainResult, error) {
	return httpclient.Retry(ctx, c.log, httpclient.NoRetry(), "ai.train_model",
		func(ctx context.Context) (models.TrainResult, error) {
			var res models.TrainResult
			if err := c.http.Post(ctx, "/api/model/train", req, &res); err != nil {
				return models.TrainResult{}, err
			}
			return res, nil
		})
}

// LoadModel loads a saved model; empty path means the service's latest.
func (c *Client) LoadModel(ctx context.Context, path string) (models.CommandResult, error) {
	body := map[string]string{}
	if path != "" {
		body["path"] = path
	}
	return httpclient.Retry(ctx, c.log, c.retry, "ai.load_model",
		func(ctx context.Context) (models.CommandResult, error) {
			var res models.CommandResult
			if err := c.http.Post(ctx, "/api/model/load", body, &res); err != nil {
				return models.CommandResult{}, err
			}
			return res, nil
		})
}

// SaveModel persists the current model; empty name lets the service pick.
func (c *Client) SaveModel(ctx context.Context, name string) (models.CommandResult, error) {
	body := map[string]string{}
	if name != "" {
		body["name"] = name
	}
	return httpclient.Retry(ctx, c.log, c.retry, "ai.save_model",
		func(ctx context.Context) (models.CommandResult, error) {
			var res models.CommandResult
			if err := c.http.Post(ctx, "/api/model/save", body, &res); err != nil {
				return models.CommandResult{}, err
			}
			return res, nil
		})
}

// CleanupOldModels deletes saved models beyond the keep most recent.
// keep <= 0 means the default of 5.
func (c *Client) CleanupOldModels(ctx context.Context, keep int) (models.CommandResult, error) {
	if keep <= 0 {
		keep = defaultKeepModels
	}
	return httpclient.Retry(ctx, c.log, c.retry, "ai.cleanup_old_models",
		func(ctx context.Context) (models.CommandResult, error) {
			body := map[string]int{"keep_count": keep}
			var res models.CommandResult
			if err := c.http.Post(ctx, "/api/model/cleanup", body, &res); err != nil {
				return models.CommandResult{}, err
			}
			return res, nil
		})
}
