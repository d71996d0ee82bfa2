package waitsrv_test

import (
	"context"
	"errors"
	"testing"
	"time"

	waitdomain "github.com/oracle/oci-go-sdk-sub024/internal/domains/waiter"
	waitsrv "github.com/oracle/oci-go-sdk-sub024/internal/services/waiter"
	"github.com/stretchr/testify/require"
)

func TestWaitAll(t *testing.T) {
	ctx := context.Background()
	cfg := waitdomain.WaitConfig{MaxInterval: time.Millisecond, MaxWait: time.Second}

	statusOf := map[waitdomain.OperationHandle]string{
		"wr-1": "SUCCEEDED",
		"wr-2": "FAILED",
	}
	fetcher := waitdomain.StatusFetcherFunc(func(_ context.Context, h waitdomain.OperationHandle) (*waitdomain.StatusSnapshot, error) {
		status, ok := statusOf[h]
		if !ok {
			return nil, errors.New("unknown work request")
		}
		return snapshot(status), nil
	})

	t.Run("ok: results keep argument order", func(t *testing.T) {
		svc := waitsrv.NewService()

		results, err := waitsrv.WaitAll(ctx, svc,
			&waitdomain.WaitForStateArgs{Handle: "wr-2", AcceptableStates: waitdomain.NewAcceptanceSet("FAILED"), Fetcher: fetcher, Config: cfg},
			&waitdomain.WaitForStateArgs{Handle: "wr-1", AcceptableStates: waitdomain.NewAcceptanceSet("SUCCEEDED"), Fetcher: fetcher, Config: cfg},
		)
		require.NoError(t, err)
		require.Len(t, results, 2)
		require.Equal(t, "FAILED", results[0].Snapshot.Status)
		require.Equal(t, "SUCCEEDED", results[1].Snapshot.Status)
	})

	t.Run("error: first failure is returned", func(t *testing.T) {
		svc := waitsrv.NewService()

		results, err := waitsrv.WaitAll(ctx, svc,
			&waitdomain.WaitForStateArgs{Handle: "wr-1", AcceptableStates: waitdomain.NewAcceptanceSet("SUCCEEDED"), Fetcher: fetcher, Config: cfg},
			&waitdomain.WaitForStateArgs{Handle: "wr-3", AcceptableStates: waitdomain.NewAcceptanceSet("SUCCEEDED"), Fetcher: fetcher, Config: cfg},
		)
		require.Nil(t, results)
		require.ErrorIs(t, err, waitdomain.ErrFetchFailed)
	})

	t.Run("ok: no args", func(t *testing.T) {
		results, err := waitsrv.WaitAll(ctx, waitsrv.NewService())
		require.NoError(t, err)
		require.Empty(t, results)
	})
}
