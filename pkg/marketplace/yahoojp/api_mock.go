package yahoojp

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tournevent/marketplace/pkg/marketplace"
)

// MockCall records one request received by MockTransport.
type MockCall struct {
	Method string
	Path   string
	Params marketplace.Params
}

// MockTransport is a mock implementation of marketplace.Transport for
// testing and offline use.
type MockTransport struct {
	SimulateErrors  bool
	SimulateLatency time.Duration

	OnDo func(ctx context.Context, method, path string, params marketplace.Params) (map[string]any, error)

	mu    sync.Mutex
	calls []MockCall
}

// NewMockTransport creates a new mock transport with default behavior.
func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

// Do records the call and returns a canned response for the path.
func (m *MockTransport) Do(ctx context.Context, method, path string, params marketplace.Params) (map[string]any, error) {
	m.mu.Lock()
	m.calls = append(m.calls, MockCall{Method: method, Path: path, Params: params})
	m.mu.Unlock()

	if m.SimulateLatency > 0 {
		select {
		case <-time.After(m.SimulateLatency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if m.SimulateErrors {
		return nil, marketplace.NewAPIError(path, "MOCK_ERROR", "Simulated API error")
	}

	if m.OnDo != nil {
		return m.OnDo(ctx, method, path, params)
	}

	switch path {
	case SearchOrders{}.Path():
		return mockSearchResponse(params), nil
	case UpdateOrderShippingStatus{}.Path():
		return map[string]any{"Status": marketplace.StatusOK}, nil
	default:
		return nil, marketplace.NewAPIError(path, "NOT_FOUND", fmt.Sprintf("unknown path %q", path)).
			WithStatusCode(404)
	}
}

// Calls returns the calls received so far.
func (m *MockTransport) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockCall, len(m.calls))
	copy(out, m.calls)
	return out
}

func mockSearchResponse(params marketplace.Params) map[string]any {
	sellerID, _ := params["SellerId"].(string)
	now := time.Now().In(Tokyo)

	return map[string]any{
		"Status": marketplace.StatusOK,
		"Search": map[string]any{
			"TotalCount": "2",
			"OrderInfo": []any{
				map[string]any{
					"OrderId":    sellerID + "-10000001",
					"OrderTime":  now.Add(-48 * time.Hour).Format(dateTimeLayout),
					"ShipStatus": ShipStatusShippable.Value(),
					"TotalPrice": "3980",
					"SellerId":   sellerID,
				},
				map[string]any{
					"OrderId":    sellerID + "-10000002",
					"OrderTime":  now.Add(-24 * time.Hour).Format(dateTimeLayout),
					"ShipStatus": ShipStatusProcessing.Value(),
					"TotalPrice": "12800",
					"SellerId":   sellerID,
				},
			},
		},
	}
}

// Ensure MockTransport implements marketplace.Transport.
var _ marketplace.Transport = (*MockTransport)(nil)
