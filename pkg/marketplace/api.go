// Package marketplace provides the request/response plumbing shared by
// marketplace API operations: a write-once parameter builder, the
// operation contract and the transport abstraction.
package marketplace

import (
	"context"
	"fmt"
	"strings"
)

// StatusOK is the status value the marketplace reports on success.
const StatusOK = "OK"

// Request is a finalized-on-demand request parameter builder.
type Request interface {
	// Params validates required fields and returns the parameter tree.
	Params() (Params, error)
}

// API describes one remote operation and how to narrow its response.
// Implementations must be stateless so they can be shared freely.
type API[T any] interface {
	// Name identifies the operation in logs, traces and metrics.
	Name() string

	// HTTPMethod returns the fixed HTTP method of the operation.
	HTTPMethod() string

	// Path returns the endpoint path relative to the API base URL.
	Path() string

	// DistillResponse narrows a decoded response body into the result.
	DistillResponse(raw map[string]any) (T, error)
}

// Transport sends a request and returns the decoded response body.
type Transport interface {
	Do(ctx context.Context, method, path string, params Params) (map[string]any, error)
}

// Call finalizes req, sends it through t as described by api and
// distills the response.
func Call[T any](ctx context.Context, t Transport, api API[T], req Request) (T, error) {
	var zero T

	params, err := req.Params()
	if err != nil {
		return zero, err
	}

	raw, err := t.Do(ctx, api.HTTPMethod(), api.Path(), params)
	if err != nil {
		return zero, err
	}

	return api.DistillResponse(raw)
}

// CheckStatus fails unless the response reports StatusOK, either at the
// top level or under a Result section. The remote error section is
// surfaced as an APIError when present.
func CheckStatus(operation string, raw map[string]any) error {
	if status(raw) == StatusOK {
		return nil
	}

	section, ok := lookupSection(raw, "Error")
	if !ok {
		section, ok = lookupSection(raw, "Result.Error")
	}
	if ok {
		return NewAPIError(operation, stringValue(section["Code"]), stringValue(section["Message"]))
	}

	return fmt.Errorf("%s: %w", operation, ErrUnexpectedResponse)
}

func status(raw map[string]any) string {
	if s, ok := raw["Status"]; ok {
		return stringValue(s)
	}
	if result, ok := lookupSection(raw, "Result"); ok {
		return stringValue(result["Status"])
	}
	return ""
}

// Section returns the mapping at a dotted path of a decoded response.
func Section(raw map[string]any, path string) (map[string]any, bool) {
	return lookupSection(raw, path)
}

func lookupSection(raw map[string]any, path string) (map[string]any, bool) {
	v, ok := lookupPlain(raw, path)
	if !ok {
		return nil, false
	}
	return asMap(v)
}

func lookupPlain(raw map[string]any, path string) (any, bool) {
	var cur any = raw
	for _, k := range strings.Split(path, ".") {
		m, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		if cur, ok = m[k]; !ok {
			return nil, false
		}
	}
	return cur, true
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Params:
		return m, true
	default:
		return nil, false
	}
}

func stringValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}
