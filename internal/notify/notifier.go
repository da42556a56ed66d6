package notify

import (
	"context"
	"fmt"
	"strings"

	tgbot "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	gateway "dash_gateway/internal/modules/gateway/service"
)

type Notifier interface {
	Send(msg string)
	Sendf(format string, args ...any)
}

// Telegram pushes alerts to one chat and answers two read-only commands,
// /status and /positions. Everything it shows comes through the gateway.
type Telegram struct {
	bot    *tgbot.BotAPI
	chatID int64
	gw     *gateway.Gateway
	log    *zap.Logger
}

func NewTelegram(token string, chatID int64, gw *gateway.Gateway, log *zap.Logger) (*Telegram, error) {
	b, err := tgbot.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Telegram{bot: b, chatID: chatID, gw: gw, log: log}, nil
}

func (t *Telegram) Send(msg string) {
	if t == nil || t.bot == nil || t.chatID == 0 {
		return
	}
	if _, err := t.bot.Send(tgbot.NewMessage(t.chatID, msg)); err != nil {
		t.log.Warn("telegram send failed", zap.Error(err))
	}
}

func (t *Telegram) Sendf(format string, args ...any) { t.Send(fmt.Sprintf(format, args...)) }

func (t *Telegram) handleStatus(ctx context.Context) {
	report := t.gw.HealthCheck(ctx)
	mark := func(ok bool) string {
		if ok {
			return "✅"
		}
		return "❌"
	}
	t.Sendf("engine %s %s\nai %s %s (model loaded: %v)\noverall: %s",
		mark(report.Engine.Healthy), report.Engine.Status,
		mark(report.AI.Healthy), report.AI.Status, report.AI.ModelLoaded,
		mark(report.Overall))
}

func (t *Telegram) handlePositions(ctx context.Context) {
	positions, err := t.gw.Engine().Positions(ctx)
	if err != nil {
		t.Sendf("positions fetch failed: %v", err)
		return
	}
	if len(positions) == 0 {
		t.Send("no open positions")
		return
	}
	var b strings.Builder
	b.WriteString("open positions:\n")
	for _, p := range positions {
		fmt.Fprintf(&b, "- %s [%s] size=%.4f @ %.4f upnl=%.4f\n",
			p.Symbol, strings.ToUpper(p.Side), p.Size, p.EntryPrice, p.UnrealizedPnl)
	}
	t.Send(b.String())
}

// Start runs long-polling for commands. Returns immediately; the poll loop
// lives in a goroutine until ctx is cancelled.
func (t *Telegram) Start(ctx context.Context) error {
	if t == nil || t.bot == nil {
		return nil
	}

	u := tgbot.NewUpdate(0)
	u.Timeout = 30
	u.AllowedUpdates = []string{"message"}

	updates := t.bot.GetUpdatesChan(u)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case upd := <-updates:
				if upd.Message == nil || upd.Message.Chat == nil ||
					upd.Message.Chat.ID != t.chatID || !upd.Message.IsCommand() {
					continue
				}
				switch upd.Message.Command() {
				case "status":
					go t.handleStatus(ctx)
				case "positions":
					go t.handlePositions(ctx)
				}
			}
		}
	}()
	return nil
}

// Stdout logs instead of messaging. Used when no telegram token is set.
type Stdout struct {
	Log *zap.Logger
}

func NewStdout(log *zap.Logger) *Stdout { return &Stdout{Log: log} }

func (s *Stdout) Send(msg string)                  { s.Log.Info(msg) }
func (s *Stdout) Sendf(format string, args ...any) { s.Log.Info(fmt.Sprintf(format, args...)) }
