package yahoojp_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/marketplace/pkg/marketplace"
	"github.com/tournevent/marketplace/pkg/marketplace/yahoojp"
)

func TestSearchOrders_Contract(t *testing.T) {
	api := yahoojp.SearchOrders{}

	assert.Equal(t, "search_orders", api.Name())
	assert.Equal(t, http.MethodPost, api.HTTPMethod())
	assert.Equal(t, "orderList", api.Path())
}

func TestSearchOrders_DistillResponse(t *testing.T) {
	first := map[string]any{"OrderId": "o-1"}
	second := map[string]any{"OrderId": "o-2"}

	tests := []struct {
		name string
		raw  map[string]any
		want []yahoojp.Order
	}{
		{
			name: "no search section",
			raw:  map[string]any{"Status": "OK"},
			want: []yahoojp.Order{},
		},
		{
			name: "empty body",
			raw:  map[string]any{},
			want: []yahoojp.Order{},
		},
		{
			name: "search without orders",
			raw:  map[string]any{"Search": map[string]any{"TotalCount": "0"}},
			want: []yahoojp.Order{},
		},
		{
			name: "order list",
			raw: map[string]any{"Search": map[string]any{
				"OrderInfo": []any{first, second},
			}},
			want: []yahoojp.Order{first, second},
		},
		{
			name: "single order",
			raw: map[string]any{"Search": map[string]any{
				"OrderInfo": first,
			}},
			want: []yahoojp.Order{first},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := yahoojp.SearchOrders{}.DistillResponse(tt.raw)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearchOrders_DistillResponse_KeepsRecords(t *testing.T) {
	order := map[string]any{
		"OrderId":    "o-1",
		"TotalPrice": "3980",
		"Extra":      map[string]any{"Nested": "kept"},
	}

	got, err := yahoojp.SearchOrders{}.DistillResponse(map[string]any{
		"Search": map[string]any{"OrderInfo": []any{order}},
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, yahoojp.Order(order), got[0])
}

func TestSearchOrders_CheckStatus(t *testing.T) {
	failed := map[string]any{
		"Status": "NG",
		"Search": map[string]any{"OrderInfo": []any{map[string]any{"OrderId": "o-1"}}},
	}

	t.Run("disabled", func(t *testing.T) {
		got, err := yahoojp.SearchOrders{}.DistillResponse(failed)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("enabled", func(t *testing.T) {
		_, err := yahoojp.SearchOrders{CheckStatus: true}.DistillResponse(failed)
		assert.True(t, errors.Is(err, marketplace.ErrUnexpectedResponse))
	})

	t.Run("enabled with ok status", func(t *testing.T) {
		got, err := yahoojp.SearchOrders{CheckStatus: true}.DistillResponse(map[string]any{
			"Status": "OK",
		})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
