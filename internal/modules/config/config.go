package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

const (
	configFilePathENV = "CONFIG_FILE"
	defaultConfigFile = "values_local.yaml"
)

// Config is the effective process configuration: yaml file under configs/
// (CONFIG_FILE overrides the name) with environment variables on top.
type Config struct {
	// Backend base URLs. The engine is the source of truth for positions,
	// trades and market data; the AI service for models and signals.
	EngineURL string `yaml:"engine_url"`
	AIURL     string `yaml:"ai_url"`

	RequestTimeout      time.Duration `yaml:"request_timeout"`
	RetryMaxAttempts    int           `yaml:"retry_max_attempts"`
	RetryInitialBackoff time.Duration `yaml:"retry_initial_backoff"`

	// AuthToken is forwarded as a bearer token when set. Not dumped.
	AuthToken string `yaml:"-"`

	LogLevel string `yaml:"log_level"`
	HTTPAddr string `yaml:"http_addr"`

	HealthInterval time.Duration `yaml:"health_interval"`

	PriceStreamEnabled bool     `yaml:"price_stream_enabled"`
	PriceStreamSymbols []string `yaml:"price_stream_symbols"`

	TelegramToken  string `yaml:"-"`
	TelegramChatID int64  `yaml:"telegram_chat_id"`

	DatabaseDSN string `yaml:"-"`

	JaegerHost string `yaml:"jaeger_host"`
	JaegerPort int    `yaml:"jaeger_port"`
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("engine_url", "http://localhost:8000")
	v.SetDefault("ai_url", "http://localhost:5000")
	v.SetDefault("request_timeout", "10s")
	v.SetDefault("retry_max_attempts", 3)
	v.SetDefault("retry_initial_backoff", "1s")
	v.SetDefault("log_level", "info")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("health_interval", "30s")
	v.SetDefault("price_stream_enabled", false)
	v.SetDefault("jaeger_port", 6831)

	for key, env := range map[string]string{
		"engine_url":            "ENGINE_URL",
		"ai_url":                "AI_URL",
		"request_timeout":       "REQUEST_TIMEOUT",
		"retry_max_attempts":    "RETRY_MAX_ATTEMPTS",
		"retry_initial_backoff": "RETRY_INITIAL_BACKOFF",
		"auth_token":            "AUTH_TOKEN",
		"log_level":             "LOG_LEVEL",
		"http_addr":             "HTTP_ADDR",
		"health_interval":       "HEALTH_INTERVAL",
		"price_stream_enabled":  "PRICE_STREAM_ENABLED",
		"price_stream_symbols":  "PRICE_STREAM_SYMBOLS",
		"telegram_token":        "TELEGRAM_TOKEN",
		"telegram_chat_id":      "TELEGRAM_CHAT_ID",
		"database_dsn":          "DATABASE_DSN",
		"jaeger_host":           "JAEGER_HOST",
		"jaeger_port":           "JAEGER_PORT",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, errors.Wrap(err, "bind env")
		}
	}

	configFileName := os.Getenv(configFilePathENV)
	if configFileName == "" {
		configFileName = defaultConfigFile
	}
	path := "configs/" + configFileName
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "read config file")
		}
	}

	cfg := &Config{
		EngineURL:           v.GetString("engine_url"),
		AIURL:               v.GetString("ai_url"),
		RequestTimeout:      v.GetDuration("request_timeout"),
		RetryMaxAttempts:    v.GetInt("retry_max_attempts"),
		RetryInitialBackoff: v.GetDuration("retry_initial_backoff"),
		AuthToken:           v.GetString("auth_token"),
		LogLevel:            v.GetString("log_level"),
		HTTPAddr:            v.GetString("http_addr"),
		HealthInterval:      v.GetDuration("health_interval"),
		PriceStreamEnabled:  v.GetBool("price_stream_enabled"),
		PriceStreamSymbols:  v.GetStringSlice("price_stream_symbols"),
		TelegramToken:       v.GetString("telegram_token"),
		TelegramChatID:      v.GetInt64("telegram_chat_id"),
		DatabaseDSN:         v.GetString("database_dsn"),
		JaegerHost:          v.GetString("jaeger_host"),
		JaegerPort:          v.GetInt("jaeger_port"),
	}

	if cfg.EngineURL == "" || cfg.AIURL == "" {
		return nil, errors.New("engine_url and ai_url must be set")
	}
	if cfg.RequestTimeout <= 0 {
		return nil, errors.New("request_timeout must be positive")
	}
	return cfg, nil
}

// Dump renders the effective config as yaml, secrets excluded. Used by the
// -print-config flag.
func (c *Config) Dump() (string, error) {
	bs, err := yaml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, "marshal config to yaml")
	}
	return string(bs), nil
}
