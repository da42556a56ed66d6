package models

import "time"

// BotStatus is the trading engine's self-report. Read-only for us: the
// engine owns the running/stopped/error state, the gateway only observes.
type BotStatus struct {
	Status          string    `json:"status"` // running/stopped/error
	UptimeSec       float64   `json:"uptime"`
	ActivePositions int       `json:"active_positions"`
	TotalTrades     int       `json:"total_trades"`
	TotalPnl        float64   `json:"total_pnl"`
	LastUpdate      time.Time `json:"last_update"`
}

type PerformanceStats struct {
	TotalTrades   int     `json:"total_trades"`
	WinningTrades int     `json:"winning_trades"`
	LosingTrades  int     `json:"losing_trades"`
	WinRate       float64 `json:"win_rate"`
	TotalPnl      float64 `json:"total_pnl"`
	MaxDrawdown   float64 `json:"max_drawdown"`
	SharpeRatio   float64 `json:"sharpe_ratio"`
	ProfitFactor  float64 `json:"profit_factor"`
}

type TradingConfig struct {
	Symbols         []string `json:"symbols"`
	Timeframe       string   `json:"timeframe"`
	RiskPerTradePct float64  `json:"risk_per_trade_pct"`
	MaxPositions    int      `json:"max_positions"`
	StopLossPct     float64  `json:"stop_loss_pct"`
	TakeProfitPct   float64  `json:"take_profit_pct"`
	Leverage        int      `json:"leverage"`
}

// CommandResult carries a business-level outcome delivered with HTTP 200.
// A false Success is data, not a transport error; callers decide what to do
// with it.
type CommandResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
