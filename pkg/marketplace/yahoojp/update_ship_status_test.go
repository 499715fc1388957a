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

func TestUpdateOrderShippingStatus_Contract(t *testing.T) {
	api := yahoojp.UpdateOrderShippingStatus{}

	assert.Equal(t, "update_order_shipping_status", api.Name())
	assert.Equal(t, http.MethodPost, api.HTTPMethod())
	assert.Equal(t, "orderShipStatusChange", api.Path())
}

func TestUpdateOrderShippingStatus_DistillResponse(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		got, err := yahoojp.UpdateOrderShippingStatus{}.DistillResponse(map[string]any{"Status": "OK"})

		require.NoError(t, err)
		assert.Equal(t, "OK", got.Status)
	})

	t.Run("ok under result", func(t *testing.T) {
		got, err := yahoojp.UpdateOrderShippingStatus{}.DistillResponse(map[string]any{
			"Result": map[string]any{"Status": "OK"},
		})

		require.NoError(t, err)
		assert.Equal(t, "OK", got.Status)
	})

	t.Run("remote error", func(t *testing.T) {
		_, err := yahoojp.UpdateOrderShippingStatus{}.DistillResponse(map[string]any{
			"Error": map[string]any{"Code": "od00003", "Message": "order not found"},
		})

		var apiErr *marketplace.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "update_order_shipping_status", apiErr.Operation)
		assert.Equal(t, "od00003", apiErr.Code)
		assert.Equal(t, "order not found", apiErr.Message)
	})

	t.Run("no status", func(t *testing.T) {
		_, err := yahoojp.UpdateOrderShippingStatus{}.DistillResponse(map[string]any{})

		assert.True(t, errors.Is(err, marketplace.ErrUnexpectedResponse))
	})
}
