package service

import (
	"context"
	"sync"

	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type ServiceHealth struct {
	Status  string `json:"status"`
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

type AIHealth struct {
	ServiceHealth
	ModelLoaded bool `json:"model_loaded"`
}

type HealthReport struct {
	Engine  ServiceHealth `json:"engine"`
	AI      AIHealth      `json:"ai"`
	Overall bool          `json:"overall"`
}

// HealthCheck probes both backends concurrently and always reports on both:
// one side going down must not hide the state of the other. Overall is true
// only when both probes succeeded. Contrast with DashboardData, which is
// all-or-nothing.
func (g *Gateway) HealthCheck(ctx context.Context) HealthReport {
	span, ctx := opentracing.StartSpanFromContext(ctx, "gateway.health_check")
	defer span.Finish()

	var (
		report HealthReport
		wg     sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		hs, err := g.engine.Health(ctx)
		if err != nil {
			report.Engine = ServiceHealth{Status: "unreachable", Error: err.Error()}
			return
		}
		report.Engine = ServiceHealth{Status: hs.Status, Healthy: true}
	}()
	go func() {
		defer wg.Done()
		hs, err := g.ai.Health(ctx)
		if err != nil {
			report.AI = AIHealth{ServiceHealth: ServiceHealth{Status: "unreachable", Error: err.Error()}}
			return
		}
		report.AI = AIHealth{
			ServiceHealth: ServiceHealth{Status: hs.Status, Healthy: true},
			ModelLoaded:   hs.ModelLoaded,
		}
	}()
	wg.Wait()

	report.Overall = report.Engine.Healthy && report.AI.Healthy
	if !report.Overall {
		g.log.Warn("combined health check degraded",
			zap.Bool("engine_healthy", report.Engine.Healthy),
			zap.Bool("ai_healthy", report.AI.Healthy),
		)
	}
	return report
}
