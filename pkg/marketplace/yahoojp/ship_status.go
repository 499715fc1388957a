package yahoojp

import (
	"fmt"
	"strconv"
	"strings"
)

// ShipStatus is the shipping status of an order.
type ShipStatus int

const (
	ShipStatusUnshippable ShipStatus = iota
	ShipStatusShippable
	ShipStatusProcessing
	ShipStatusShipped
	ShipStatusReceived
)

var shipStatusNames = [...]string{
	ShipStatusUnshippable: "unshippable",
	ShipStatusShippable:   "shippable",
	ShipStatusProcessing:  "processing",
	ShipStatusShipped:     "shipped",
	ShipStatusReceived:    "received",
}

// Valid reports whether s is one of the defined statuses.
func (s ShipStatus) Valid() bool {
	return s >= ShipStatusUnshippable && s <= ShipStatusReceived
}

// Value returns the wire value of the status.
func (s ShipStatus) Value() string {
	return strconv.Itoa(int(s))
}

// String returns the status name.
func (s ShipStatus) String() string {
	if !s.Valid() {
		return fmt.Sprintf("ShipStatus(%d)", int(s))
	}
	return shipStatusNames[s]
}

// ParseShipStatus accepts either a wire value ("3") or a name ("shipped").
func ParseShipStatus(v string) (ShipStatus, error) {
	v = strings.TrimSpace(strings.ToLower(v))
	for i, name := range shipStatusNames {
		s := ShipStatus(i)
		if v == name || v == s.Value() {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown ship status %q", v)
}
