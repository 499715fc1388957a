package yahoojp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tournevent/marketplace/pkg/marketplace"
)

// maxResponseSize is the maximum accepted response body size (10MB).
const maxResponseSize = 10 * 1024 * 1024

// DefaultBaseURL is the production endpoint of the store API.
const DefaultBaseURL = "https://circus.shopping.yahooapis.jp/ShoppingWebService/V1/"

// HTTPTransport is the production implementation of marketplace.Transport.
// Requests and responses are XML documents.
type HTTPTransport struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// HTTPTransportConfig holds configuration for the HTTP transport.
type HTTPTransportConfig struct {
	BaseURL     string
	AccessToken string
	Timeout     time.Duration
}

// NewHTTPTransport creates a new HTTP transport for production use.
func NewHTTPTransport(cfg HTTPTransportConfig) *HTTPTransport {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &HTTPTransport{
		baseURL:     baseURL,
		accessToken: cfg.AccessToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Do sends params as an XML document and decodes the XML response.
func (t *HTTPTransport) Do(ctx context.Context, method, path string, params marketplace.Params) (map[string]any, error) {
	body, err := EncodeXML(requestRoot, params)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/xml; charset=UTF-8")
	req.Header.Set("Accept", "application/xml")
	req.Header.Set("Authorization", "Bearer "+t.accessToken)
	req.Header.Set("X-Request-Id", uuid.New().String())
	req.Header.Set("User-Agent", "tournevent-marketplace/1.0")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, marketplace.NewAPIError(path, "TRANSPORT", "request failed").
			WithCause(err).
			WithRetryable(true)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if len(data) > maxResponseSize {
		return nil, marketplace.NewAPIError(path, "RESPONSE_TOO_LARGE",
			fmt.Sprintf("response exceeds %d bytes", maxResponseSize)).
			WithStatusCode(resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, parseError(path, resp.StatusCode, data)
	}

	raw, err := DecodeXML(data)
	if err != nil {
		return nil, marketplace.NewAPIError(path, "INVALID_RESPONSE", "response is not valid xml").
			WithCause(err).
			WithStatusCode(resp.StatusCode)
	}
	return raw, nil
}

// parseError extracts error information from a non-2xx response.
func parseError(path string, statusCode int, body []byte) error {
	retryable := statusCode == http.StatusTooManyRequests || statusCode >= 500

	if raw, err := DecodeXML(body); err == nil {
		if section, ok := marketplace.Section(raw, "Error"); ok {
			code, _ := section["Code"].(string)
			message, _ := section["Message"].(string)
			if code != "" || message != "" {
				return marketplace.NewAPIError(path, code, message).
					WithStatusCode(statusCode).
					WithRetryable(retryable)
			}
		}
	}

	return marketplace.NewAPIError(path, fmt.Sprintf("HTTP_%d", statusCode), string(body)).
		WithStatusCode(statusCode).
		WithRetryable(retryable)
}

// Ensure HTTPTransport implements marketplace.Transport.
var _ marketplace.Transport = (*HTTPTransport)(nil)
