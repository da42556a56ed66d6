package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"

	aiclient "dash_gateway/internal/modules/ai_client"
	"dash_gateway/internal/modules/config"
	engineclient "dash_gateway/internal/modules/engine_client"
	"dash_gateway/internal/modules/gateway"
	"dash_gateway/internal/modules/health"
	"dash_gateway/internal/modules/journal"
	"dash_gateway/internal/modules/monitor"
	"dash_gateway/internal/modules/postgres"
	pricestream "dash_gateway/internal/modules/price_stream"
	"dash_gateway/pkg/logger"
	"dash_gateway/pkg/tracing"
)

const serviceName = "dash-gateway"

func main() {
	_ = godotenv.Load()

	printConfig := flag.Bool("print-config", false, "print the effective config as yaml and exit")
	flag.Parse()

	if *printConfig {
		cfg, err := config.NewConfig()
		if err != nil {
			log.Fatal(err)
		}
		dump, err := cfg.Dump()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(dump)
		return
	}

	logger.SetServiceName(serviceName)

	app := fx.New(
		fx.Provide(
			func() context.Context {
				return context.Background()
			},
			func(cfg *config.Config) (*zap.Logger, error) {
				return logger.New(cfg.LogLevel)
			},
		),
		config.Module(),
		engineclient.Module(),
		aiclient.Module(),
		gateway.Module(),
		postgres.Module(),
		journal.Module(),
		pricestream.Module(),
		health.Module(),
		monitor.Module(),
		fx.Invoke(initTracing),
	)
	app.Run()
}

func initTracing(lc fx.Lifecycle, cfg *config.Config, zlog *zap.Logger) error {
	if cfg.JaegerHost == "" {
		zlog.Info("tracing disabled: no JAEGER_HOST")
		return nil
	}
	_, closeTracer, err := tracing.InitTracer(serviceName, tracing.Config{
		Host: cfg.JaegerHost,
		Port: cfg.JaegerPort,
	})
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return closeTracer()
		},
	})
	return nil
}
