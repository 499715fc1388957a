package yahoojp

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Order is one order record as returned by the search operation. Keys
// are the field names listed in SearchFields.
type Order map[string]any

// OrderID returns the order identifier.
func (o Order) OrderID() string {
	return o.Text("OrderId")
}

// Text returns the field as a string, or "" when absent.
func (o Order) Text(field string) string {
	switch v := o[field].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Int returns the field as an integer.
func (o Order) Int(field string) (int, error) {
	switch v := o[field].(type) {
	case int:
		return v, nil
	case float64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("order field %s: %w", field, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("order field %s: unexpected type %T", field, v)
	}
}

// Decimal returns a monetary field such as TotalPrice.
func (o Order) Decimal(field string) (decimal.Decimal, error) {
	switch v := o[field].(type) {
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, fmt.Errorf("order field %s: %w", field, err)
		}
		return d, nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case float64:
		return decimal.NewFromFloat(v), nil
	default:
		return decimal.Zero, fmt.Errorf("order field %s: unexpected type %T", field, v)
	}
}

// Time parses a date or date-time field. The API sends both compact
// (20060102150405) and ISO 8601 forms, in Tokyo time when no offset is given.
func (o Order) Time(field string) (time.Time, error) {
	v := o.Text(field)
	if v == "" {
		return time.Time{}, fmt.Errorf("order field %s: empty", field)
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	for _, layout := range []string{dateTimeLayout, "2006-01-02T15:04:05", dateLayout} {
		if t, err := time.ParseInLocation(layout, v, Tokyo); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("order field %s: unrecognized time %q", field, v)
}
