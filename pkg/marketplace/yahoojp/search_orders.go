package yahoojp

import (
	"net/http"

	"github.com/tournevent/marketplace/pkg/marketplace"
)

// SearchOrders is the order search operation.
type SearchOrders struct {
	// CheckStatus turns a response without an OK status into an error.
	CheckStatus bool
}

// Name returns the operation name.
func (SearchOrders) Name() string {
	return "search_orders"
}

// HTTPMethod returns the HTTP method of the operation.
func (SearchOrders) HTTPMethod() string {
	return http.MethodPost
}

// Path returns the endpoint path of the operation.
func (SearchOrders) Path() string {
	return "orderList"
}

// DistillResponse returns the orders in Search.OrderInfo. The API omits
// the section when nothing matches, which yields an empty slice.
func (a SearchOrders) DistillResponse(raw map[string]any) ([]Order, error) {
	if a.CheckStatus {
		if err := marketplace.CheckStatus(a.Name(), raw); err != nil {
			return nil, err
		}
	}

	search, ok := marketplace.Section(raw, "Search")
	if !ok {
		return []Order{}, nil
	}

	switch info := search["OrderInfo"].(type) {
	case []any:
		orders := make([]Order, 0, len(info))
		for _, item := range info {
			if o, ok := toOrder(item); ok {
				orders = append(orders, o)
			}
		}
		return orders, nil
	case []map[string]any:
		orders := make([]Order, len(info))
		for i, item := range info {
			orders[i] = Order(item)
		}
		return orders, nil
	case []Order:
		return info, nil
	default:
		// A single order decodes to a mapping rather than a sequence.
		if o, ok := toOrder(info); ok {
			return []Order{o}, nil
		}
		return []Order{}, nil
	}
}

func toOrder(v any) (Order, bool) {
	switch m := v.(type) {
	case Order:
		return m, true
	case map[string]any:
		return Order(m), true
	case marketplace.Params:
		return Order(m), true
	default:
		return nil, false
	}
}

var _ marketplace.API[[]Order] = SearchOrders{}
