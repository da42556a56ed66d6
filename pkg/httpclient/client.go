package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
)

// clientID is sent with every request so the backends can tell the
// gateway apart from other consumers.
const clientID = "dashboard-gateway"

// TokenProvider supplies the bearer token for authenticated endpoints.
// Token returns false when no usable token is available (absent or expired);
// the request is then sent without an Authorization header.
type TokenProvider interface {
	Token() (string, bool)
}

// StaticToken is a TokenProvider backed by a fixed string.
type StaticToken string

func (s StaticToken) Token() (string, bool) { return string(s), s != "" }

type Option func(*Client)

func WithTokenProvider(tp TokenProvider) Option {
	return func(c *Client) { c.tokens = tp }
}

// WithHTTPClient replaces the underlying http.Client. Used by tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// Client is a thin JSON transport over one backend service: one base URL,
// one timeout, shared headers. It does no retries itself; see Retry.
type Client struct {
	base   string
	name   string
	http   *http.Client
	log    *zap.Logger
	tokens TokenProvider
}

// New builds a client for one backend. No I/O happens here; the first
// connection is made on the first request.
func New(baseURL, serviceName string, timeout time.Duration, log *zap.Logger, opts ...Option) *Client {
	c := &Client{
		base: strings.TrimRight(baseURL, "/"),
		name: serviceName,
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Name() string { return c.name }

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		payload, err := sonic.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		rd = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Client", clientID)
	if c.tokens != nil {
		if tok, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	c.log.Debug("http request",
		zap.String("backend", c.name),
		zap.String("method", method),
		zap.String("url", u),
	)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("http request failed",
			zap.String("backend", c.name),
			zap.String("method", method),
			zap.String("url", u),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.log.Debug("http response",
		zap.String("backend", c.name),
		zap.String("method", method),
		zap.String("url", u),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode/100 != 2 {
		return &StatusError{Code: resp.StatusCode, Status: resp.Status, Body: string(raw)}
	}
	if out == nil {
		return nil
	}
	if err := sonic.Unmarshal(unwrap(raw), out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// unwrap applies the backend envelope convention: when the body is a JSON
// object carrying a "data" key, the data payload is returned; any other
// body is returned as is. The envelope's success/error fields are business
// data and stay with the caller (see CommandResult consumers).
func unwrap(raw []byte) []byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return raw
	}
	var obj map[string]json.RawMessage
	if err := sonic.Unmarshal(trimmed, &obj); err != nil {
		return raw
	}
	if data, ok := obj["data"]; ok {
		return data
	}
	return raw
}
