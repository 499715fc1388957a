package yahoojp_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/marketplace/pkg/marketplace/yahoojp"
)

func TestOrder_Accessors(t *testing.T) {
	o := yahoojp.Order{
		"OrderId":    "store-1-10000001",
		"ShipStatus": "2",
		"TotalPrice": "12800",
		"UsePoint":   150,
		"OrderTime":  "20261017093015",
		"ShipDate":   "20261018",
		"LastUpdate": "2026-10-18T10:00:00+09:00",
	}

	assert.Equal(t, "store-1-10000001", o.OrderID())
	assert.Equal(t, "150", o.Text("UsePoint"))
	assert.Equal(t, "", o.Text("Missing"))

	n, err := o.Int("ShipStatus")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	price, err := o.Decimal("TotalPrice")
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.NewFromInt(12800)))

	points, err := o.Decimal("UsePoint")
	require.NoError(t, err)
	assert.True(t, points.Equal(decimal.NewFromInt(150)))

	orderTime, err := o.Time("OrderTime")
	require.NoError(t, err)
	assert.True(t, orderTime.Equal(time.Date(2026, 10, 17, 9, 30, 15, 0, yahoojp.Tokyo)))

	shipDate, err := o.Time("ShipDate")
	require.NoError(t, err)
	assert.True(t, shipDate.Equal(time.Date(2026, 10, 18, 0, 0, 0, 0, yahoojp.Tokyo)))

	updated, err := o.Time("LastUpdate")
	require.NoError(t, err)
	assert.True(t, updated.Equal(time.Date(2026, 10, 18, 1, 0, 0, 0, time.UTC)))
}

func TestOrder_AccessorErrors(t *testing.T) {
	o := yahoojp.Order{"TotalPrice": "n/a", "OrderTime": "yesterday"}

	_, err := o.Int("TotalPrice")
	assert.Error(t, err)

	_, err = o.Int("Missing")
	assert.Error(t, err)

	_, err = o.Decimal("TotalPrice")
	assert.Error(t, err)

	_, err = o.Time("OrderTime")
	assert.Error(t, err)

	_, err = o.Time("Missing")
	assert.Error(t, err)
}
