package service

import (
	"go.uber.org/zap"

	ai "dash_gateway/internal/modules/ai_client/service"
	engine "dash_gateway/internal/modules/engine_client/service"
)

// Gateway is the single entry point the rest of the process works through:
// the two backend clients plus the aggregate operations that span both.
// It is stateless; one instance is built by fx at startup and reused.
type Gateway struct {
	engine *engine.Client
	ai     *ai.Client
	log    *zap.Logger
}

func New(engineClient *engine.Client, aiClient *ai.Client, log *zap.Logger) *Gateway {
	return &Gateway{engine: engineClient, ai: aiClient, log: log}
}

func (g *Gateway) Engine() *engine.Client { return g.engine }
func (g *Gateway) AI() *ai.Client         { return g.ai }
