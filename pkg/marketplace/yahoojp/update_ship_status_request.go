package yahoojp

import (
	"regexp"
	"strconv"
	"time"

	"github.com/tournevent/marketplace/pkg/marketplace"
)

// MaxShipNotesLength is the maximum byte length of shipping notes.
const MaxShipNotesLength = 500

var shipMethodPattern = regexp.MustCompile(`^postage(\d+)$`)

// postage15 is not an assignable shipping method.
var allowedShipMethods = map[int]bool{
	1: true, 2: true, 3: true, 4: true, 5: true, 6: true, 7: true, 8: true,
	9: true, 10: true, 11: true, 12: true, 13: true, 14: true, 16: true,
}

// The ship URL is sent inside this literal wrapper. It is not a valid
// CDATA section but the API has always received it in this form.
const (
	shipURLPrefix = "![CDATA["
	shipURLSuffix = "]]"
)

var (
	updateSellerID           = marketplace.Field{ID: 0, Path: "SellerId"}
	updateOrderID            = marketplace.Field{ID: 1, Path: "Target.OrderId"}
	updateIsPointFix         = marketplace.Field{ID: 2, Path: "Target.IsPointFix"}
	updateOperationUser      = marketplace.Field{ID: 3, Path: "Target.OperationUser"}
	updateShipStatus         = marketplace.Field{ID: 4, Path: "Ship.ShipStatus"}
	updateShipMethod         = marketplace.Field{ID: 5, Path: "Ship.ShipMethod"}
	updateShipNotes          = marketplace.Field{ID: 6, Path: "Ship.ShipNotes"}
	updateShipInvoiceNumber1 = marketplace.Field{ID: 7, Path: "Ship.ShipInvoiceNumber1"}
	updateShipInvoiceNumber2 = marketplace.Field{ID: 8, Path: "Ship.ShipInvoiceNumber2"}
	updateShipURL            = marketplace.Field{ID: 9, Path: "Ship.ShipUrl"}
	updateShipDate           = marketplace.Field{ID: 10, Path: "Ship.ShipDate"}
	updateArrivalDate        = marketplace.Field{ID: 11, Path: "Ship.ArrivalDate"}
)

var updateRequired = []marketplace.Requirement{
	{Name: "SellerId"},
	{Name: "OrderId", Section: "Target"},
	{Name: "IsPointFix", Section: "Target"},
	{Name: "ShipStatus", Section: "Ship"},
}

// UpdateOrderShippingStatusRequest builds the parameters of a shipping
// status update for one order.
type UpdateOrderShippingStatusRequest struct {
	b marketplace.Builder
}

// NewUpdateOrderShippingStatusRequest creates an empty update request.
func NewUpdateOrderShippingStatusRequest() *UpdateOrderShippingStatusRequest {
	return &UpdateOrderShippingStatusRequest{b: marketplace.NewBuilder()}
}

func (r *UpdateOrderShippingStatusRequest) SetSellerID(sellerID string) *UpdateOrderShippingStatusRequest {
	r.b.Put(updateSellerID, sellerID)
	return r
}

func (r *UpdateOrderShippingStatusRequest) SetOrderID(orderID string) *UpdateOrderShippingStatusRequest {
	r.b.Put(updateOrderID, orderID)
	return r
}

// SetIsPointFix sets whether reward points for the order are settled.
func (r *UpdateOrderShippingStatusRequest) SetIsPointFix(isPointFix bool) *UpdateOrderShippingStatusRequest {
	r.b.Put(updateIsPointFix, strconv.FormatBool(isPointFix))
	return r
}

// SetOperationUser records who performed the update in the store console.
func (r *UpdateOrderShippingStatusRequest) SetOperationUser(user string) *UpdateOrderShippingStatusRequest {
	r.b.Put(updateOperationUser, user)
	return r
}

func (r *UpdateOrderShippingStatusRequest) SetShipStatus(status ShipStatus) *UpdateOrderShippingStatusRequest {
	r.b.PutValid(updateShipStatus, status.Value(), status.Valid())
	return r
}

// SetShipMethod sets the delivery method, "postage1" through "postage16"
// excluding "postage15".
func (r *UpdateOrderShippingStatusRequest) SetShipMethod(method string) *UpdateOrderShippingStatusRequest {
	r.b.PutValid(updateShipMethod, method, validShipMethod(method))
	return r
}

// SetShipNotes sets free-form shipping notes of at most
// MaxShipNotesLength bytes.
func (r *UpdateOrderShippingStatusRequest) SetShipNotes(notes string) *UpdateOrderShippingStatusRequest {
	r.b.PutValid(updateShipNotes, notes, len(notes) <= MaxShipNotesLength)
	return r
}

func (r *UpdateOrderShippingStatusRequest) SetShipInvoiceNumber1(number string) *UpdateOrderShippingStatusRequest {
	r.b.Put(updateShipInvoiceNumber1, number)
	return r
}

func (r *UpdateOrderShippingStatusRequest) SetShipInvoiceNumber2(number string) *UpdateOrderShippingStatusRequest {
	r.b.Put(updateShipInvoiceNumber2, number)
	return r
}

// SetShipURL sets the tracking URL for the shipment.
func (r *UpdateOrderShippingStatusRequest) SetShipURL(url string) *UpdateOrderShippingStatusRequest {
	r.b.Put(updateShipURL, shipURLPrefix+url+shipURLSuffix)
	return r
}

// SetShipDate sets the day the order left the store, as a Tokyo calendar date.
func (r *UpdateOrderShippingStatusRequest) SetShipDate(date time.Time) *UpdateOrderShippingStatusRequest {
	r.b.Put(updateShipDate, formatDate(date))
	return r
}

// SetArrivalDate sets the expected arrival day, as a Tokyo calendar date.
func (r *UpdateOrderShippingStatusRequest) SetArrivalDate(date time.Time) *UpdateOrderShippingStatusRequest {
	r.b.Put(updateArrivalDate, formatDate(date))
	return r
}

// Err returns the first setter failure, if any.
func (r *UpdateOrderShippingStatusRequest) Err() error {
	return r.b.Err()
}

// Params validates the request and returns its parameter tree.
func (r *UpdateOrderShippingStatusRequest) Params() (marketplace.Params, error) {
	return r.b.Finalize(updateRequired)
}

func validShipMethod(method string) bool {
	m := shipMethodPattern.FindStringSubmatch(method)
	if m == nil {
		return false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	return allowedShipMethods[n]
}

var _ marketplace.Request = (*UpdateOrderShippingStatusRequest)(nil)
