package yahoojp

import (
	"net/http"

	"github.com/tournevent/marketplace/pkg/marketplace"
)

// UpdateResult is the outcome of a shipping status update.
type UpdateResult struct {
	Status string
}

// UpdateOrderShippingStatus is the shipping status update operation.
type UpdateOrderShippingStatus struct{}

// Name returns the operation name.
func (UpdateOrderShippingStatus) Name() string {
	return "update_order_shipping_status"
}

// HTTPMethod returns the HTTP method of the operation.
func (UpdateOrderShippingStatus) HTTPMethod() string {
	return http.MethodPost
}

// Path returns the endpoint path of the operation.
func (UpdateOrderShippingStatus) Path() string {
	return "orderShipStatusChange"
}

// DistillResponse fails unless the response reports an OK status.
func (a UpdateOrderShippingStatus) DistillResponse(raw map[string]any) (*UpdateResult, error) {
	if err := marketplace.CheckStatus(a.Name(), raw); err != nil {
		return nil, err
	}
	return &UpdateResult{Status: marketplace.StatusOK}, nil
}

var _ marketplace.API[*UpdateResult] = UpdateOrderShippingStatus{}
