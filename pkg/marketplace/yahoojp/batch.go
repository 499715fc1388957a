package yahoojp

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// UpdateOrderShippingStatuses sends several shipping status updates,
// at most concurrency at a time. errs[i] is the outcome of reqs[i]; a
// failed update does not stop the others.
func (c *Client) UpdateOrderShippingStatuses(ctx context.Context, reqs []*UpdateOrderShippingStatusRequest, concurrency int) []error {
	errs := make([]error, len(reqs))
	if concurrency <= 0 {
		concurrency = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, req := range reqs {
		g.Go(func() error {
			_, errs[i] = c.UpdateOrderShippingStatus(ctx, req)
			return nil // Don't fail the group, continue with other orders
		})
	}

	g.Wait()
	return errs
}
