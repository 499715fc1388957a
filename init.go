package main

import (
	"context"

	"github.com/tournevent/marketplace/internal/config"
	"github.com/tournevent/marketplace/internal/telemetry"
	"github.com/tournevent/marketplace/pkg/marketplace/yahoojp"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// app bundles what every command needs.
type app struct {
	cfg     *config.Config
	logger  *otelzap.Logger
	metrics *telemetry.Metrics
	client  *yahoojp.Client

	tracerShutdown func(context.Context) error
}

func newApp(ctx context.Context) (*app, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	// Initialize telemetry
	logger, err := telemetry.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	tracer, shutdown, err := initTracer(ctx, cfg)
	if err != nil {
		logger.Warn("Failed to initialize tracer", zap.Error(err))
		shutdown = func(context.Context) error { return nil }
	}

	metrics := telemetry.NewMetrics()

	client := yahoojp.New(yahoojp.Config{
		BaseURL:           cfg.BaseURL,
		AccessToken:       cfg.AccessToken,
		Timeout:           cfg.Timeout,
		UseMock:           cfg.UseMock,
		CheckSearchStatus: cfg.CheckSearchStatus,
	}, logger, tracer, metrics)

	return &app{
		cfg:            cfg,
		logger:         logger,
		metrics:        metrics,
		client:         client,
		tracerShutdown: shutdown,
	}, nil
}

func initTracer(ctx context.Context, cfg *config.Config) (trace.Tracer, func(context.Context) error, error) {
	if !cfg.OTELEnabled {
		return nil, func(context.Context) error { return nil }, nil
	}
	return telemetry.InitTracer(ctx, cfg.OTELEndpoint, cfg.ServiceName, cfg.Attributes()...)
}

// close flushes traces and metrics. Failures are logged, not returned.
func (a *app) close(ctx context.Context, job string) {
	if err := a.tracerShutdown(ctx); err != nil {
		a.logger.Warn("Failed to shut down tracer", zap.Error(err))
	}

	if a.cfg.PushgatewayURL != "" {
		if err := a.metrics.Push(a.cfg.PushgatewayURL, job); err != nil {
			a.logger.Warn("Failed to push metrics", zap.Error(err))
		}
	}

	_ = a.logger.Sync()
}
