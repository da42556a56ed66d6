package service

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"golang.org/x/sync/errgroup"

	"dash_gateway/internal/models"
)

// recentTradesLimit bounds the trade slice shipped with the bootstrap
// payload; the full history endpoint exists for anything deeper.
const recentTradesLimit = 10

type DashboardData struct {
	BotStatus    models.BotStatus        `json:"bot_status"`
	Positions    []models.Position       `json:"positions"`
	ModelInfo    models.AIModelInfo      `json:"model_info"`
	Performance  models.PerformanceStats `json:"performance"`
	RecentTrades []models.TradeRecord    `json:"recent_trades"`
}

// DashboardData runs the five bootstrap fetches concurrently and fails as a
// whole if any one of them fails. A half-populated dashboard is worse than
// an explicit error, so no partial result ever escapes.
func (g *Gateway) DashboardData(ctx context.Context) (*DashboardData, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "gateway.dashboard_data")
	defer span.Finish()

	var out DashboardData
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		st, err := g.engine.BotStatus(ctx)
		if err != nil {
			return err
		}
		out.BotStatus = st
		return nil
	})
	eg.Go(func() error {
		ps, err := g.engine.Positions(ctx)
		if err != nil {
			return err
		}
		out.Positions = ps
		return nil
	})
	eg.Go(func() error {
		mi, err := g.ai.ModelInfo(ctx)
		if err != nil {
			return err
		}
		out.ModelInfo = mi
		return nil
	})
	eg.Go(func() error {
		st, err := g.engine.PerformanceStats(ctx)
		if err != nil {
			return err
		}
		out.Performance = st
		return nil
	})
	eg.Go(func() error {
		ts, err := g.engine.TradeHistory(ctx, recentTradesLimit)
		if err != nil {
			return err
		}
		out.RecentTrades = ts
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
