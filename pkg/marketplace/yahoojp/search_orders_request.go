package yahoojp

import (
	"strings"
	"time"

	"github.com/tournevent/marketplace/pkg/marketplace"
)

// SearchFields is the projection requested by every order search.
var SearchFields = []string{
	"OrderId", "Version", "OriginalOrderId", "ParentOrderId", "DeviceType", "IsSeen", "IsSplit", "IsRoyalty",
	"IsSeller", "IsAffiliate", "IsRatingB2s", "OrderTime", "ExistMultiReleaseDate", "ReleaseDate",
	"LastUpdateTime", "Suspect", "OrderStatus", "StoreStatus", "RoyaltyFixTime", "PrintSlipFlag",
	"PrintDeliveryFlag", "PrintBillFlag", "BuyerCommentsFlag", "PayStatus", "SettleStatus", "PayType",
	"PayMethod", "PayMethodName", "PayDate", "SettleId", "UseWallet", "NeedBillSlip", "NeedDetailedSlip",
	"NeedReceipt", "BillFirstName", "BillFirstNameKana", "BillLastName", "BillLastNameKana", "BillPrefecture",
	"ShipStatus", "ShipMethod", "ShipRequestDate", "ShipRequestTime", "ShipNotes", "ShipInvoiceNumber1",
	"ShipInvoiceNumber2", "ArriveType", "ShipDate", "NeedGiftWrap", "NeedGiftWrapMessage", "NeedGiftWrapPaper",
	"ShipFirstName", "ShipFirstNameKana", "ShipLastName", "ShipLastNameKana", "ShipPrefecture", "PayCharge",
	"ShipCharge", "GiftWrapCharge", "Discount", "UsePoint", "TotalPrice", "RefundTotalPrice", "UsePointType",
	"IsGetPointFixAll", "SellerId", "IsLogin", "PayNo", "PayNoIssueDate", "SellerType", "IsPayManagement",
	"ShipUrl", "ShipMethodName", "ArrivalDate", "TotalMallCouponDiscount",
}

var searchFieldList = strings.Join(SearchFields, ",")

var (
	searchSellerID      = marketplace.Field{ID: 0, Path: "SellerId"}
	searchOrderTimeFrom = marketplace.Field{ID: 1, Path: "Search.Condition.OrderTimeFrom"}
	searchOrderTimeTo   = marketplace.Field{ID: 2, Path: "Search.Condition.OrderTimeTo"}
	searchStart         = marketplace.Field{ID: 3, Path: "Search.Start"}
	searchResult        = marketplace.Field{ID: 4, Path: "Search.Result"}
)

var searchRequired = []marketplace.Requirement{
	{Name: "SellerId"},
}

// SearchOrdersRequest builds the parameters of an order search.
type SearchOrdersRequest struct {
	b marketplace.Builder
}

// NewSearchOrdersRequest creates a search request with the fixed field projection.
func NewSearchOrdersRequest() *SearchOrdersRequest {
	r := &SearchOrdersRequest{b: marketplace.NewBuilder()}
	r.b.Preset("Search.Field", searchFieldList)
	return r
}

// SetSellerID sets the store account.
func (r *SearchOrdersRequest) SetSellerID(sellerID string) *SearchOrdersRequest {
	r.b.Put(searchSellerID, sellerID)
	return r
}

// SetOrderedDateTimeRange restricts the search to orders placed within
// [from, to]. A nil bound leaves that side open.
func (r *SearchOrdersRequest) SetOrderedDateTimeRange(from, to *time.Time) *SearchOrdersRequest {
	if from != nil {
		r.b.Put(searchOrderTimeFrom, formatDateTime(*from))
	}
	if to != nil {
		r.b.Put(searchOrderTimeTo, formatDateTime(*to))
	}
	return r
}

// SetOffset sets the 1-based start position of the result page.
func (r *SearchOrdersRequest) SetOffset(offset int) *SearchOrdersRequest {
	r.b.Put(searchStart, offset)
	return r
}

// SetLimit sets the maximum number of orders returned.
func (r *SearchOrdersRequest) SetLimit(limit int) *SearchOrdersRequest {
	r.b.Put(searchResult, limit)
	return r
}

// Err returns the first setter failure, if any.
func (r *SearchOrdersRequest) Err() error {
	return r.b.Err()
}

// Params validates the request and returns its parameter tree.
func (r *SearchOrdersRequest) Params() (marketplace.Params, error) {
	return r.b.Finalize(searchRequired)
}

var _ marketplace.Request = (*SearchOrdersRequest)(nil)
