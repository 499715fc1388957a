package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"go.opentelemetry.io/otel/attribute"
)

// Config holds all configuration for the CLI.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`

	// Store API
	SellerID          string        `envconfig:"YSHOP_SELLER_ID" validate:"required"`
	BaseURL           string        `envconfig:"YSHOP_BASE_URL" default:"https://circus.shopping.yahooapis.jp/ShoppingWebService/V1/" validate:"required,url"`
	AccessToken       string        `envconfig:"YSHOP_ACCESS_TOKEN" validate:"required_if=UseMock false"`
	Timeout           time.Duration `envconfig:"YSHOP_TIMEOUT" default:"30s" validate:"gt=0"`
	UseMock           bool          `envconfig:"YSHOP_USE_MOCK" default:"false"`
	CheckSearchStatus bool          `envconfig:"YSHOP_CHECK_SEARCH_STATUS" default:"false"`
	BatchConcurrency  int           `envconfig:"BATCH_CONCURRENCY" default:"4" validate:"min=1,max=32"`

	// Telemetry
	OTELEnabled    bool   `envconfig:"OTEL_ENABLED" default:"false"`
	OTELEndpoint   string `envconfig:"OTEL_ENDPOINT" default:"http://localhost:4318" validate:"omitempty,url"`
	ServiceName    string `envconfig:"SERVICE_NAME" default:"marketplace"`
	Version        string `envconfig:"SERVICE_VERSION" default:"0.0.1"`
	PushgatewayURL string `envconfig:"PUSHGATEWAY_URL" validate:"omitempty,url"`
}

var validate = validator.New()

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Attributes returns OpenTelemetry attributes for this configuration.
func (c *Config) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("service.name", c.ServiceName),
		attribute.String("service.version", c.Version),
		attribute.String("marketplace.seller_id", c.SellerID),
		attribute.Bool("marketplace.mock", c.UseMock),
	}
}
