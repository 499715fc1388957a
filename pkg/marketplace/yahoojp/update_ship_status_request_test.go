package yahoojp_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/marketplace/pkg/marketplace"
	"github.com/tournevent/marketplace/pkg/marketplace/yahoojp"
)

func validUpdateRequest() *yahoojp.UpdateOrderShippingStatusRequest {
	return yahoojp.NewUpdateOrderShippingStatusRequest().
		SetSellerID("store-1").
		SetOrderID("store-1-10000001").
		SetIsPointFix(true).
		SetShipStatus(yahoojp.ShipStatusShipped)
}

func TestUpdateRequest_Body(t *testing.T) {
	params, err := validUpdateRequest().
		SetOperationUser("ops").
		SetShipMethod("postage7").
		SetShipNotes("leave at door").
		SetShipInvoiceNumber1("1234-5678").
		SetShipInvoiceNumber2("8765-4321").
		SetShipURL("https://track.example.com/?n=1&c=2").
		SetShipDate(time.Date(2026, 10, 18, 10, 0, 0, 0, yahoojp.Tokyo)).
		SetArrivalDate(time.Date(2026, 10, 20, 10, 0, 0, 0, yahoojp.Tokyo)).
		Params()
	require.NoError(t, err)

	want := marketplace.Params{
		"SellerId": "store-1",
		"Target": marketplace.Params{
			"OrderId":       "store-1-10000001",
			"IsPointFix":    "true",
			"OperationUser": "ops",
		},
		"Ship": marketplace.Params{
			"ShipStatus":         "3",
			"ShipMethod":         "postage7",
			"ShipNotes":          "leave at door",
			"ShipInvoiceNumber1": "1234-5678",
			"ShipInvoiceNumber2": "8765-4321",
			"ShipUrl":            "![CDATA[https://track.example.com/?n=1&c=2]]",
			"ShipDate":           "20261018",
			"ArrivalDate":        "20261020",
		},
	}
	assert.Equal(t, want, params)
}

func TestUpdateRequest_PointFixFalse(t *testing.T) {
	params, err := yahoojp.NewUpdateOrderShippingStatusRequest().
		SetSellerID("store-1").
		SetOrderID("o-1").
		SetIsPointFix(false).
		SetShipStatus(yahoojp.ShipStatusUnshippable).
		Params()
	require.NoError(t, err)

	assert.Equal(t, "false", lookup(t, params, "Target.IsPointFix"))
	assert.Equal(t, "0", lookup(t, params, "Ship.ShipStatus"))
}

func TestUpdateRequest_RequiredInOrder(t *testing.T) {
	tests := []struct {
		name    string
		build   func() *yahoojp.UpdateOrderShippingStatusRequest
		missing string
	}{
		{"nothing set", yahoojp.NewUpdateOrderShippingStatusRequest, "SellerId"},
		{"only ship status", func() *yahoojp.UpdateOrderShippingStatusRequest {
			return yahoojp.NewUpdateOrderShippingStatusRequest().SetShipStatus(yahoojp.ShipStatusShipped)
		}, "SellerId"},
		{"seller only", func() *yahoojp.UpdateOrderShippingStatusRequest {
			return yahoojp.NewUpdateOrderShippingStatusRequest().SetSellerID("s").SetIsPointFix(true)
		}, "OrderId"},
		{"missing point fix", func() *yahoojp.UpdateOrderShippingStatusRequest {
			return yahoojp.NewUpdateOrderShippingStatusRequest().SetSellerID("s").SetOrderID("o").
				SetShipStatus(yahoojp.ShipStatusShipped)
		}, "IsPointFix"},
		{"missing ship status", func() *yahoojp.UpdateOrderShippingStatusRequest {
			return yahoojp.NewUpdateOrderShippingStatusRequest().SetSellerID("s").SetOrderID("o").
				SetIsPointFix(false).SetShipMethod("postage1")
		}, "ShipStatus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build().Params()
			require.Error(t, err)
			assert.True(t, errors.Is(err, marketplace.ErrInvalidRequest))

			var fieldErr *marketplace.FieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, tt.missing, fieldErr.Field)
		})
	}
}

func TestUpdateRequest_AlreadySet(t *testing.T) {
	day := time.Date(2026, 10, 18, 0, 0, 0, 0, yahoojp.Tokyo)

	tests := []struct {
		field string
		set   func(r *yahoojp.UpdateOrderShippingStatusRequest)
	}{
		{"SellerId", func(r *yahoojp.UpdateOrderShippingStatusRequest) { r.SetSellerID("other") }},
		{"OrderId", func(r *yahoojp.UpdateOrderShippingStatusRequest) { r.SetOrderID("other") }},
		{"IsPointFix", func(r *yahoojp.UpdateOrderShippingStatusRequest) { r.SetIsPointFix(false) }},
		{"ShipStatus", func(r *yahoojp.UpdateOrderShippingStatusRequest) { r.SetShipStatus(yahoojp.ShipStatusReceived) }},
		{"OperationUser", func(r *yahoojp.UpdateOrderShippingStatusRequest) {
			r.SetOperationUser("a").SetOperationUser("a")
		}},
		{"ShipMethod", func(r *yahoojp.UpdateOrderShippingStatusRequest) {
			r.SetShipMethod("postage1").SetShipMethod("postage99")
		}},
		{"ShipNotes", func(r *yahoojp.UpdateOrderShippingStatusRequest) {
			r.SetShipNotes("a").SetShipNotes(strings.Repeat("x", 501))
		}},
		{"ShipInvoiceNumber1", func(r *yahoojp.UpdateOrderShippingStatusRequest) {
			r.SetShipInvoiceNumber1("a").SetShipInvoiceNumber1("b")
		}},
		{"ShipInvoiceNumber2", func(r *yahoojp.UpdateOrderShippingStatusRequest) {
			r.SetShipInvoiceNumber2("a").SetShipInvoiceNumber2("b")
		}},
		{"ShipUrl", func(r *yahoojp.UpdateOrderShippingStatusRequest) {
			r.SetShipURL("https://a").SetShipURL("https://b")
		}},
		{"ShipDate", func(r *yahoojp.UpdateOrderShippingStatusRequest) {
			r.SetShipDate(day).SetShipDate(day)
		}},
		{"ArrivalDate", func(r *yahoojp.UpdateOrderShippingStatusRequest) {
			r.SetArrivalDate(day).SetArrivalDate(day)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			r := validUpdateRequest()
			tt.set(r)

			require.Error(t, r.Err())
			assert.True(t, errors.Is(r.Err(), marketplace.ErrFieldAlreadySet))
			assert.Equal(t, tt.field+" is already set", r.Err().Error())

			_, err := r.Params()
			assert.True(t, errors.Is(err, marketplace.ErrFieldAlreadySet))
		})
	}
}

func TestUpdateRequest_ShipMethod(t *testing.T) {
	tests := []struct {
		method string
		valid  bool
	}{
		{"postage1", true},
		{"postage7", true},
		{"postage14", true},
		{"postage16", true},
		{"postage15", false},
		{"postage17", false},
		{"postage99", false},
		{"postage0", false},
		{"postageX", false},
		{"postage", false},
		{"Postage1", false},
		{"postage1 ", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			r := validUpdateRequest().SetShipMethod(tt.method)
			if tt.valid {
				assert.NoError(t, r.Err())
				return
			}
			assert.True(t, errors.Is(r.Err(), marketplace.ErrInvalidArgument))
			assert.Equal(t, "ShipMethod is invalid", r.Err().Error())
		})
	}
}

func TestUpdateRequest_ShipNotesLength(t *testing.T) {
	r := validUpdateRequest().SetShipNotes(strings.Repeat("a", 500))
	assert.NoError(t, r.Err())

	r = validUpdateRequest().SetShipNotes(strings.Repeat("a", 501))
	assert.True(t, errors.Is(r.Err(), marketplace.ErrInvalidArgument))

	// Length is measured in bytes: 167 three-byte characters exceed 500.
	r = validUpdateRequest().SetShipNotes(strings.Repeat("配", 167))
	assert.True(t, errors.Is(r.Err(), marketplace.ErrInvalidArgument))
}

func TestUpdateRequest_InvalidShipStatus(t *testing.T) {
	r := yahoojp.NewUpdateOrderShippingStatusRequest().SetShipStatus(yahoojp.ShipStatus(9))

	assert.True(t, errors.Is(r.Err(), marketplace.ErrInvalidArgument))
}

func TestUpdateRequest_DatesInTokyo(t *testing.T) {
	// 2026-10-18 20:00 in New York is 2026-10-19 09:00 in Tokyo.
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	shipped := time.Date(2026, 10, 18, 20, 0, 0, 0, ny)

	params, err := validUpdateRequest().
		SetShipDate(shipped).
		SetArrivalDate(shipped.UTC()).
		Params()
	require.NoError(t, err)

	assert.Equal(t, "20261019", lookup(t, params, "Ship.ShipDate"))
	assert.Equal(t, "20261019", lookup(t, params, "Ship.ArrivalDate"))
}
