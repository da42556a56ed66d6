package service

import (
	"context"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"dash_gateway/internal/models"
	health "dash_gateway/internal/modules/health/service"
)

const (
	pingInterval     = 15 * time.Second
	maxDialAttempts  = 8
	redialBaseDelay  = 300 * time.Millisecond
	reconnectBackoff = time.Second
)

// Client keeps one websocket to the engine's /ws/prices feed and mirrors
// every tick into the price book and health state.
type Client struct {
	url     string
	symbols []string
	dialer  *websocket.Dialer
	book    *PriceBook
	state   *health.State
	log     *zap.Logger
}

func NewClient(engineURL string, symbols []string, book *PriceBook, state *health.State, log *zap.Logger) *Client {
	return &Client{
		url:     wsURL(engineURL),
		symbols: symbols,
		dialer:  &websocket.Dialer{},
		book:    book,
		state:   state,
		log:     log,
	}
}

func wsURL(base string) string {
	u := strings.TrimRight(base, "/")
	u = strings.Replace(u, "https://", "wss://", 1)
	u = strings.Replace(u, "http://", "ws://", 1)
	return u + "/ws/prices"
}

// Start blocks until ctx is cancelled, redialing with linear backoff. After
// maxDialAttempts consecutive dial failures it gives up; the REST prices
// endpoint still works without the stream.
func (c *Client) Start(ctx context.Context) {
	defer c.state.SetStreamConnected(false)

	retry := 0
	for {
		conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
		if err != nil {
			retry++
			if retry > maxDialAttempts {
				c.log.Error("price stream gave up", zap.String("url", c.url), zap.Error(err))
				return
			}
			c.log.Warn("price stream dial failed",
				zap.String("url", c.url), zap.Int("attempt", retry), zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Duration(retry) * redialBaseDelay):
			}
			continue
		}
		retry = 0

		if err := conn.WriteJSON(map[string]any{"op": "subscribe", "symbols": c.symbols}); err != nil {
			_ = conn.Close()
			continue
		}
		c.state.SetStreamConnected(true)
		c.log.Info("price stream connected", zap.Strings("symbols", c.symbols))

		c.readLoop(ctx, conn)
		c.state.SetStreamConnected(false)

		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectBackoff):
		}
	}
}

func (c *Client) readLoop(ctx context.Context, conn *websocket.Conn) {
	stopPing := make(chan struct{})
	defer close(stopPing)
	go func() {
		t := time.NewTicker(pingInterval)
		defer t.Stop()
		for {
			select {
			case <-stopPing:
				return
			case <-ctx.Done():
				_ = conn.Close()
				return
			case <-t.C:
				_ = conn.WriteJSON(map[string]string{"op": "ping"})
			}
		}
	}()

	for {
		var tick models.PriceTick
		if err := conn.ReadJSON(&tick); err != nil {
			_ = conn.Close()
			return
		}
		if tick.Symbol == "" || tick.Price == 0 {
			continue
		}
		at := tick.Timestamp
		if at.IsZero() {
			at = time.Now()
		}
		c.book.Set(tick.Symbol, tick.Price, at)
		c.state.TouchTick(at)
	}
}
