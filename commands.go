package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/tournevent/marketplace/pkg/marketplace/yahoojp"
	"go.uber.org/zap"
)

type searchOrdersOptions struct {
	from   string
	to     string
	offset int
	limit  int
}

func newSearchOrdersCmd() *cobra.Command {
	var opts searchOrdersOptions

	cmd := &cobra.Command{
		Use:   "search-orders",
		Short: "Search store orders and print them as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearchOrders(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.from, "from", "", "earliest order time (RFC 3339 or YYYY-MM-DD, Tokyo time)")
	flags.StringVar(&opts.to, "to", "", "latest order time (RFC 3339 or YYYY-MM-DD, Tokyo time)")
	flags.IntVar(&opts.offset, "offset", 0, "1-based start position")
	flags.IntVar(&opts.limit, "limit", 0, "maximum number of orders")

	return cmd
}

func runSearchOrders(cmd *cobra.Command, opts searchOrdersOptions) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close(ctx, "search_orders")

	req, err := buildSearchOrdersRequest(a.cfg.SellerID, opts, cmd.Flags().Changed)
	if err != nil {
		return err
	}

	orders, err := a.client.SearchOrders(ctx, req)
	if err != nil {
		return fmt.Errorf("search orders: %w", err)
	}

	return writeJSON(cmd.OutOrStdout(), orders)
}

func buildSearchOrdersRequest(sellerID string, opts searchOrdersOptions, changed func(string) bool) (*yahoojp.SearchOrdersRequest, error) {
	from, err := parseTimeFlag("from", opts.from)
	if err != nil {
		return nil, err
	}
	to, err := parseTimeFlag("to", opts.to)
	if err != nil {
		return nil, err
	}

	req := yahoojp.NewSearchOrdersRequest().
		SetSellerID(sellerID).
		SetOrderedDateTimeRange(from, to)
	if changed("offset") {
		req.SetOffset(opts.offset)
	}
	if changed("limit") {
		req.SetLimit(opts.limit)
	}
	return req, req.Err()
}

type updateShipStatusOptions struct {
	orderIDs      []string
	status        string
	pointFix      bool
	operationUser string
	method        string
	notes         string
	invoice1      string
	invoice2      string
	url           string
	shipDate      string
	arrivalDate   string
}

func newUpdateShipStatusCmd() *cobra.Command {
	var opts updateShipStatusOptions

	cmd := &cobra.Command{
		Use:   "update-ship-status",
		Short: "Update the shipping status of one or more orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdateShipStatus(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&opts.orderIDs, "order-id", nil, "order to update (repeatable)")
	flags.StringVar(&opts.status, "status", "", "ship status: name (shipped) or wire value (3)")
	flags.BoolVar(&opts.pointFix, "point-fix", false, "mark reward points as settled")
	flags.StringVar(&opts.operationUser, "operation-user", "", "operator recorded with the change")
	flags.StringVar(&opts.method, "method", "", "ship method, postage1..postage16")
	flags.StringVar(&opts.notes, "notes", "", "shipping notes")
	flags.StringVar(&opts.invoice1, "invoice1", "", "first invoice number")
	flags.StringVar(&opts.invoice2, "invoice2", "", "second invoice number")
	flags.StringVar(&opts.url, "url", "", "tracking URL")
	flags.StringVar(&opts.shipDate, "ship-date", "", "ship date (YYYY-MM-DD or RFC 3339)")
	flags.StringVar(&opts.arrivalDate, "arrival-date", "", "arrival date (YYYY-MM-DD or RFC 3339)")
	_ = cmd.MarkFlagRequired("order-id")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}

type updateOutcome struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}

func runUpdateShipStatus(cmd *cobra.Command, opts updateShipStatusOptions) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close(ctx, "update_ship_status")

	reqs := make([]*yahoojp.UpdateOrderShippingStatusRequest, len(opts.orderIDs))
	for i, orderID := range opts.orderIDs {
		req, err := buildUpdateShipStatusRequest(a.cfg.SellerID, orderID, opts)
		if err != nil {
			return fmt.Errorf("order %s: %w", orderID, err)
		}
		reqs[i] = req
	}

	errs := a.client.UpdateOrderShippingStatuses(ctx, reqs, a.cfg.BatchConcurrency)

	outcomes := make([]updateOutcome, len(reqs))
	for i, err := range errs {
		outcomes[i] = updateOutcome{OrderID: opts.orderIDs[i], Status: "ok"}
		if err != nil {
			outcomes[i].Status = "failed"
			outcomes[i].Error = err.Error()
			a.logger.Error("Shipping status update failed",
				zap.String("order_id", opts.orderIDs[i]),
				zap.Error(err),
			)
		}
	}

	if err := writeJSON(cmd.OutOrStdout(), outcomes); err != nil {
		return err
	}
	return errors.Join(errs...)
}

func buildUpdateShipStatusRequest(sellerID, orderID string, opts updateShipStatusOptions) (*yahoojp.UpdateOrderShippingStatusRequest, error) {
	status, err := yahoojp.ParseShipStatus(opts.status)
	if err != nil {
		return nil, err
	}

	req := yahoojp.NewUpdateOrderShippingStatusRequest().
		SetSellerID(sellerID).
		SetOrderID(orderID).
		SetIsPointFix(opts.pointFix).
		SetShipStatus(status)

	if opts.operationUser != "" {
		req.SetOperationUser(opts.operationUser)
	}
	if opts.method != "" {
		req.SetShipMethod(opts.method)
	}
	if opts.notes != "" {
		req.SetShipNotes(opts.notes)
	}
	if opts.invoice1 != "" {
		req.SetShipInvoiceNumber1(opts.invoice1)
	}
	if opts.invoice2 != "" {
		req.SetShipInvoiceNumber2(opts.invoice2)
	}
	if opts.url != "" {
		req.SetShipURL(opts.url)
	}
	for _, d := range []struct {
		flag  string
		value string
		set   func(time.Time) *yahoojp.UpdateOrderShippingStatusRequest
	}{
		{"ship-date", opts.shipDate, req.SetShipDate},
		{"arrival-date", opts.arrivalDate, req.SetArrivalDate},
	} {
		t, err := parseTimeFlag(d.flag, d.value)
		if err != nil {
			return nil, err
		}
		if t != nil {
			d.set(*t)
		}
	}

	return req, req.Err()
}

// parseTimeFlag returns nil for an empty value. Dates without an offset
// are read as Tokyo time.
func parseTimeFlag(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, yahoojp.Tokyo)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: want RFC 3339 or YYYY-MM-DD", name, value)
	}
	return &t, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
