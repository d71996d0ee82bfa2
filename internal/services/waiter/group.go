package waitsrv

import (
	"context"

	waitdomain "github.com/oracle/oci-go-sdk-sub024/internal/domains/waiter"
	"golang.org/x/sync/errgroup"
)

// WaitAll runs independent waits concurrently. Results keep the order of args.
// The first failure cancels the context shared by the remaining waits.
func WaitAll(ctx context.Context, waiter waitdomain.StateWaiter, args ...*waitdomain.WaitForStateArgs) ([]*waitdomain.WaitForStateResult, error) {
	results := make([]*waitdomain.WaitForStateResult, len(args))

	errGroup, ctx := errgroup.WithContext(ctx)
	for i, a := range args {
		errGroup.Go(func() error {
			result, err := waiter.WaitForState(ctx, a)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := errGroup.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
