// Package yahoojp provides the order search and shipping status update
// operations of the Yahoo! Shopping store API.
package yahoojp

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tournevent/marketplace/pkg/marketplace"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "github.com/tournevent/marketplace/pkg/marketplace/yahoojp"

// Config holds store API configuration.
type Config struct {
	BaseURL           string
	AccessToken       string
	Timeout           time.Duration
	UseMock           bool // When true, uses the mock transport
	CheckSearchStatus bool // See SearchOrders.CheckStatus
}

// Recorder receives per-call metrics.
type Recorder interface {
	RecordRequest(operation, status string, duration float64)
	RecordError(operation, errorType string)
}

type nopRecorder struct{}

func (nopRecorder) RecordRequest(string, string, float64) {}
func (nopRecorder) RecordError(string, string)            {}

// Client is the store API client. It finalizes requests, delegates the
// call to the underlying transport (mock or HTTP) and distills responses.
type Client struct {
	config    Config
	transport marketplace.Transport
	logger    *otelzap.Logger
	tracer    trace.Tracer
	recorder  Recorder
}

// New creates a new client.
// If cfg.UseMock is true, it uses a mock transport.
// Otherwise, it uses the real HTTP transport.
func New(cfg Config, logger *otelzap.Logger, tracer trace.Tracer, recorder Recorder) *Client {
	var transport marketplace.Transport

	if cfg.UseMock {
		transport = NewMockTransport()
	} else {
		transport = NewHTTPTransport(HTTPTransportConfig{
			BaseURL:     cfg.BaseURL,
			AccessToken: cfg.AccessToken,
			Timeout:     cfg.Timeout,
		})
	}

	return NewWithTransport(cfg, transport, logger, tracer, recorder)
}

// NewWithTransport creates a new client with a custom transport.
// This is useful for injecting mock transports in tests.
func NewWithTransport(cfg Config, transport marketplace.Transport, logger *otelzap.Logger, tracer trace.Tracer, recorder Recorder) *Client {
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}

	return &Client{
		config:    cfg,
		transport: transport,
		logger:    logger,
		tracer:    tracer,
		recorder:  recorder,
	}
}

// SearchOrders runs an order search and returns the matching orders.
func (c *Client) SearchOrders(ctx context.Context, req *SearchOrdersRequest) ([]Order, error) {
	c.logger.Ctx(ctx).Info("Searching orders")

	orders, err := call(ctx, c, SearchOrders{CheckStatus: c.config.CheckSearchStatus}, req)
	if err != nil {
		return nil, err
	}

	c.logger.Ctx(ctx).Info("Orders found", zap.Int("order_count", len(orders)))
	return orders, nil
}

// UpdateOrderShippingStatus changes the shipping status of one order.
func (c *Client) UpdateOrderShippingStatus(ctx context.Context, req *UpdateOrderShippingStatusRequest) (*UpdateResult, error) {
	c.logger.Ctx(ctx).Info("Updating order shipping status")

	return call(ctx, c, UpdateOrderShippingStatus{}, req)
}

func call[T any](ctx context.Context, c *Client, api marketplace.API[T], req marketplace.Request) (T, error) {
	ctx, span := c.tracer.Start(ctx, api.Name(),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", api.HTTPMethod()),
			attribute.String("marketplace.path", api.Path()),
		),
	)
	defer span.End()

	start := time.Now()
	result, err := marketplace.Call(ctx, c.transport, api, req)
	duration := time.Since(start).Seconds()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.recorder.RecordRequest(api.Name(), "error", duration)
		c.recorder.RecordError(api.Name(), errorType(err))
		c.logger.Ctx(ctx).Error("Store API error",
			zap.String("operation", api.Name()),
			zap.Error(err),
		)
		return result, err
	}

	c.recorder.RecordRequest(api.Name(), "success", duration)
	return result, nil
}

func errorType(err error) string {
	var apiErr *marketplace.APIError
	switch {
	case errors.Is(err, marketplace.ErrFieldAlreadySet):
		return "field_already_set"
	case errors.Is(err, marketplace.ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, marketplace.ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, marketplace.ErrUnexpectedResponse):
		return "unexpected_response"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	case errors.As(err, &apiErr):
		if apiErr.StatusCode >= http.StatusInternalServerError {
			return "server"
		}
		return "api"
	default:
		return "unknown"
	}
}
