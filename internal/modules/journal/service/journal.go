package service

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"dash_gateway/internal/models"
	gateway "dash_gateway/internal/modules/gateway/service"
	"dash_gateway/pkg/db"
)

// Journal records what flowed through the gateway. It is write-only side
// storage: the gateway never reads it back, so gateway calls stay stateless.
type Journal interface {
	RecordHealth(ctx context.Context, report gateway.HealthReport) error
	RecordSignal(ctx context.Context, sig models.AISignal) error
}

type Pg struct {
	tm  *db.PgTxManager
	log *zap.Logger
}

func NewPg(tm *db.PgTxManager, log *zap.Logger) *Pg {
	return &Pg{tm: tm, log: log}
}

// EnsureSchema creates the journal tables. Called once at startup.
func (p *Pg) EnsureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS health_checks (
    id          BIGSERIAL PRIMARY KEY,
    overall     BOOLEAN     NOT NULL,
    detail      JSONB       NOT NULL,
    checked_at  TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS health_state (
    singleton   BOOLEAN PRIMARY KEY DEFAULT TRUE,
    overall     BOOLEAN     NOT NULL,
    updated_at  TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS ai_signals (
    id          BIGSERIAL PRIMARY KEY,
    symbol      TEXT             NOT NULL,
    timeframe   TEXT             NOT NULL,
    signal      TEXT             NOT NULL,
    confidence  DOUBLE PRECISION NOT NULL,
    probability DOUBLE PRECISION NOT NULL,
    model_type  TEXT             NOT NULL,
    created_at  TIMESTAMPTZ      NOT NULL
);`
	if _, err := p.tm.Conn().Exec(ctx, ddl); err != nil {
		return errors.Wrap(err, "ensure journal schema")
	}
	return nil
}

// RecordHealth appends the check and refreshes the latest-state row in one
// transaction, so readers never see the two disagree.
func (p *Pg) RecordHealth(ctx context.Context, report gateway.HealthReport) error {
	detail, err := sonic.Marshal(report)
	if err != nil {
		return errors.Wrap(err, "marshal health report")
	}
	now := time.Now().UTC()

	return p.tm.RunTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`INSERT INTO health_checks (overall, detail, checked_at) VALUES ($1, $2, $3)`,
			report.Overall, detail, now,
		); err != nil {
			return err
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO health_state (singleton, overall, updated_at) VALUES (TRUE, $1, $2)
			 ON CONFLICT (singleton) DO UPDATE SET overall = $1, updated_at = $2`,
			report.Overall, now,
		)
		return err
	})
}

func (p *Pg) RecordSignal(ctx context.Context, sig models.AISignal) error {
	_, err := p.tm.Conn().Exec(ctx,
		`INSERT INTO ai_signals (symbol, timeframe, signal, confidence, probability, model_type, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		sig.Symbol, sig.Timeframe, sig.Signal, sig.Confidence, sig.Probability, sig.ModelType, sig.Timestamp.UTC(),
	)
	return errors.Wrap(err, "insert ai signal")
}

// Nop is used when postgres is not configured.
type Nop struct{}

func NewNop() *Nop { return &Nop{} }

func (*Nop) RecordHealth(context.Context, gateway.HealthReport) error { return nil }
func (*Nop) RecordSignal(context.Context, models.AISignal) error      { return nil }
