package waitsrv_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/containerd/errdefs"
	waitdomain "github.com/oracle/oci-go-sdk-sub024/internal/domains/waiter"
	"github.com/oracle/oci-go-sdk-sub024/internal/domains/waiter/mocks"
	waitsrv "github.com/oracle/oci-go-sdk-sub024/internal/services/waiter"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeClock advances only when slept on.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Sleep(_ context.Context, d time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	return nil
}

type triggering struct {
	ID string
}

func snapshot(status string) *waitdomain.StatusSnapshot {
	return &waitdomain.StatusSnapshot{Status: status, Payload: status}
}

func TestService_WaitForState_NoWait(t *testing.T) {
	fetcher := mocks.NewStatusFetcher(t)
	svc := waitsrv.NewService(waitsrv.WithClock(newFakeClock()))

	trigger := &triggering{ID: "ocid1.stack.oc1..aaaa"}
	res, err := svc.WaitForState(context.Background(), &waitdomain.WaitForStateArgs{
		Handle:           "",
		Fetcher:          fetcher,
		TriggeringResult: trigger,
	})
	require.NoError(t, err)
	require.Equal(t, waitdomain.OutcomeSkipped, res.Outcome)
	require.Same(t, trigger, res.TriggeringResult)
	require.Nil(t, res.Snapshot)
	require.Zero(t, res.Polls)

	fetcher.AssertNotCalled(t, "FetchStatus", mock.Anything, mock.Anything)
}

func TestService_WaitForState_ImmediateMatch(t *testing.T) {
	ctx := context.Background()
	fetcher := mocks.NewStatusFetcher(t)
	clock := newFakeClock()
	svc := waitsrv.NewService(waitsrv.WithClock(clock))

	fetcher.EXPECT().
		FetchStatus(ctx, waitdomain.OperationHandle("wr-1")).
		Return(snapshot("Succeeded"), nil).
		Once()

	res, err := svc.WaitForState(ctx, &waitdomain.WaitForStateArgs{
		Handle:           "wr-1",
		AcceptableStates: waitdomain.NewAcceptanceSet("SUCCEEDED"),
		Fetcher:          fetcher,
	})
	require.NoError(t, err)
	require.Equal(t, waitdomain.OutcomeMatched, res.Outcome)
	require.Equal(t, "Succeeded", res.Snapshot.Status)
	require.Equal(t, 1, res.Polls)
	require.Empty(t, clock.sleeps)
}

func TestService_WaitForState_EventualMatch(t *testing.T) {
	ctx := context.Background()

	for _, n := range []int{1, 3, 7} {
		t.Run(fmt.Sprintf("in progress %d times", n), func(t *testing.T) {
			fetcher := mocks.NewStatusFetcher(t)
			svc := waitsrv.NewService()

			fetcher.EXPECT().FetchStatus(ctx, waitdomain.OperationHandle("wr-1")).Return(snapshot("IN_PROGRESS"), nil).Times(n)
			fetcher.EXPECT().FetchStatus(ctx, waitdomain.OperationHandle("wr-1")).Return(snapshot("SUCCEEDED"), nil).Once()

			res, err := svc.WaitForState(ctx, &waitdomain.WaitForStateArgs{
				Handle:           "wr-1",
				AcceptableStates: waitdomain.NewAcceptanceSet("SUCCEEDED"),
				Fetcher:          fetcher,
				Config: waitdomain.WaitConfig{
					MaxInterval: time.Millisecond,
					MaxWait:     time.Minute,
				},
			})
			require.NoError(t, err)
			require.Equal(t, n+1, res.Polls)
			require.Equal(t, "SUCCEEDED", res.Snapshot.Status)
		})
	}
}

func TestService_WaitForState_Timeout(t *testing.T) {
	ctx := context.Background()
	trigger := &triggering{ID: "ocid1.job.oc1..aaaa"}

	t.Run("fake clock", func(t *testing.T) {
		clock := newFakeClock()
		svc := waitsrv.NewService(waitsrv.WithClock(clock))

		calls := 0
		fetcher := waitdomain.StatusFetcherFunc(func(context.Context, waitdomain.OperationHandle) (*waitdomain.StatusSnapshot, error) {
			calls++
			return snapshot("IN_PROGRESS"), nil
		})

		res, err := svc.WaitForState(ctx, &waitdomain.WaitForStateArgs{
			Handle:           "wr-1",
			AcceptableStates: waitdomain.NewAcceptanceSet("SUCCEEDED"),
			Fetcher:          fetcher,
			Config:           waitdomain.WaitConfig{MaxInterval: 10 * time.Millisecond, MaxWait: 50 * time.Millisecond},
			TriggeringResult: trigger,
		})
		require.Nil(t, res)
		require.ErrorIs(t, err, waitdomain.ErrTimeout)
		require.True(t, waitsrv.IsTimeout(err))

		partial, ok := waitdomain.PartialResult(err)
		require.True(t, ok)
		require.Same(t, trigger, partial)

		require.Equal(t, 6, calls)
		for _, d := range clock.sleeps {
			require.LessOrEqual(t, d, 10*time.Millisecond)
		}
	})

	t.Run("sleep never exceeds remaining budget", func(t *testing.T) {
		clock := newFakeClock()
		svc := waitsrv.NewService(waitsrv.WithClock(clock))

		fetcher := waitdomain.StatusFetcherFunc(func(context.Context, waitdomain.OperationHandle) (*waitdomain.StatusSnapshot, error) {
			return snapshot("IN_PROGRESS"), nil
		})

		_, err := svc.WaitForState(ctx, &waitdomain.WaitForStateArgs{
			Handle:           "wr-1",
			AcceptableStates: waitdomain.NewAcceptanceSet("SUCCEEDED"),
			Fetcher:          fetcher,
			Config:           waitdomain.WaitConfig{MaxInterval: 30 * time.Millisecond, MaxWait: 50 * time.Millisecond},
		})
		require.ErrorIs(t, err, waitdomain.ErrTimeout)
		require.Equal(t, []time.Duration{30 * time.Millisecond, 20 * time.Millisecond}, clock.sleeps)
	})

	t.Run("real clock", func(t *testing.T) {
		svc := waitsrv.NewService()

		calls := 0
		fetcher := waitdomain.StatusFetcherFunc(func(context.Context, waitdomain.OperationHandle) (*waitdomain.StatusSnapshot, error) {
			calls++
			return snapshot("IN_PROGRESS"), nil
		})

		_, err := svc.WaitForState(ctx, &waitdomain.WaitForStateArgs{
			Handle:           "wr-1",
			AcceptableStates: waitdomain.NewAcceptanceSet("SUCCEEDED"),
			Fetcher:          fetcher,
			Config:           waitdomain.WaitConfig{MaxInterval: 10 * time.Millisecond, MaxWait: 50 * time.Millisecond},
			TriggeringResult: trigger,
		})
		require.ErrorIs(t, err, waitdomain.ErrTimeout)
		require.GreaterOrEqual(t, calls, 1)
		require.LessOrEqual(t, calls, 50/10+1)
	})
}

func TestService_WaitForState_FetchFailure(t *testing.T) {
	ctx := context.Background()
	fetcher := mocks.NewStatusFetcher(t)
	svc := waitsrv.NewService(waitsrv.WithClock(newFakeClock()))
	trigger := &triggering{ID: "ocid1.onpremconnector.oc1..aaaa"}
	cause := errors.New("connection reset by peer")

	fetcher.EXPECT().FetchStatus(ctx, waitdomain.OperationHandle("wr-1")).Return(snapshot("IN_PROGRESS"), nil).Once()
	fetcher.EXPECT().FetchStatus(ctx, waitdomain.OperationHandle("wr-1")).Return(nil, cause).Once()

	res, err := svc.WaitForState(ctx, &waitdomain.WaitForStateArgs{
		Handle:           "wr-1",
		AcceptableStates: waitdomain.NewAcceptanceSet("SUCCEEDED"),
		Fetcher:          fetcher,
		Config:           waitdomain.WaitConfig{MaxInterval: time.Second, MaxWait: time.Hour},
		TriggeringResult: trigger,
	})
	require.Nil(t, res)
	require.ErrorIs(t, err, waitdomain.ErrFetchFailed)
	require.ErrorIs(t, err, cause)
	require.True(t, waitsrv.IsFetchFailed(err))

	partial, ok := waitdomain.PartialResult(err)
	require.True(t, ok)
	require.Same(t, trigger, partial)
}

func TestService_WaitForState_NotFound(t *testing.T) {
	ctx := context.Background()
	notFound := fmt.Errorf("stack gone: %w", errdefs.ErrNotFound)

	t.Run("ok: treated as success", func(t *testing.T) {
		fetcher := mocks.NewStatusFetcher(t)
		svc := waitsrv.NewService(waitsrv.WithClock(newFakeClock()))

		fetcher.EXPECT().FetchStatus(ctx, waitdomain.OperationHandle("stack-1")).Return(snapshot("DELETING"), nil).Once()
		fetcher.EXPECT().FetchStatus(ctx, waitdomain.OperationHandle("stack-1")).Return(nil, notFound).Once()

		res, err := svc.WaitForState(ctx, &waitdomain.WaitForStateArgs{
			Handle:           "stack-1",
			AcceptableStates: waitdomain.NewAcceptanceSet("DELETED"),
			Fetcher:          fetcher,
			Config:           waitdomain.WaitConfig{SucceedOnNotFound: true},
		})
		require.NoError(t, err)
		require.Equal(t, waitdomain.OutcomeNotFound, res.Outcome)
		require.Nil(t, res.Snapshot)
		require.Equal(t, 2, res.Polls)
	})

	t.Run("error: not found without opt-in", func(t *testing.T) {
		fetcher := mocks.NewStatusFetcher(t)
		svc := waitsrv.NewService(waitsrv.WithClock(newFakeClock()))

		fetcher.EXPECT().FetchStatus(ctx, waitdomain.OperationHandle("stack-1")).Return(nil, notFound).Once()

		_, err := svc.WaitForState(ctx, &waitdomain.WaitForStateArgs{
			Handle:           "stack-1",
			AcceptableStates: waitdomain.NewAcceptanceSet("DELETED"),
			Fetcher:          fetcher,
		})
		require.ErrorIs(t, err, waitdomain.ErrFetchFailed)
		require.True(t, errdefs.IsNotFound(err))
	})
}

func TestService_WaitForState_CaseInsensitive(t *testing.T) {
	ctx := context.Background()

	for _, status := range []string{"SUCCEEDED", "succeeded", "Succeeded"} {
		t.Run(status, func(t *testing.T) {
			fetcher := mocks.NewStatusFetcher(t)
			svc := waitsrv.NewService(waitsrv.WithClock(newFakeClock()))

			fetcher.EXPECT().FetchStatus(ctx, waitdomain.OperationHandle("wr-1")).Return(snapshot(status), nil).Once()

			res, err := svc.WaitForState(ctx, &waitdomain.WaitForStateArgs{
				Handle:           "wr-1",
				AcceptableStates: waitdomain.NewAcceptanceSet("Succeeded"),
				Fetcher:          fetcher,
			})
			require.NoError(t, err)
			require.Equal(t, waitdomain.OutcomeMatched, res.Outcome)
			require.Equal(t, 1, res.Polls)
		})
	}
}

func TestService_WaitForState_Errors(t *testing.T) {
	ctx := context.Background()
	trigger := &triggering{ID: "ocid1.securityassessment.oc1..aaaa"}

	t.Run("error: nil args", func(t *testing.T) {
		svc := waitsrv.NewService()

		_, err := svc.WaitForState(ctx, nil)
		require.ErrorIs(t, err, waitdomain.ErrInvalidHandle)
	})

	t.Run("error: empty handle", func(t *testing.T) {
		fetcher := mocks.NewStatusFetcher(t)
		svc := waitsrv.NewService()

		_, err := svc.WaitForState(ctx, &waitdomain.WaitForStateArgs{
			AcceptableStates: waitdomain.NewAcceptanceSet("SUCCEEDED"),
			Fetcher:          fetcher,
			TriggeringResult: trigger,
		})
		require.ErrorIs(t, err, waitdomain.ErrInvalidHandle)

		partial, ok := waitdomain.PartialResult(err)
		require.True(t, ok)
		require.Same(t, trigger, partial)
	})

	t.Run("error: nil snapshot", func(t *testing.T) {
		fetcher := mocks.NewStatusFetcher(t)
		svc := waitsrv.NewService()

		fetcher.EXPECT().FetchStatus(ctx, waitdomain.OperationHandle("wr-1")).Return(nil, nil).Once()

		_, err := svc.WaitForState(ctx, &waitdomain.WaitForStateArgs{
			Handle:           "wr-1",
			AcceptableStates: waitdomain.NewAcceptanceSet("SUCCEEDED"),
			Fetcher:          fetcher,
		})
		require.ErrorIs(t, err, waitdomain.ErrFetchFailed)
	})

	t.Run("error: failure state", func(t *testing.T) {
		fetcher := mocks.NewStatusFetcher(t)
		svc := waitsrv.NewService(waitsrv.WithClock(newFakeClock()))

		fetcher.EXPECT().FetchStatus(ctx, waitdomain.OperationHandle("wr-1")).Return(snapshot("IN_PROGRESS"), nil).Once()
		fetcher.EXPECT().FetchStatus(ctx, waitdomain.OperationHandle("wr-1")).Return(snapshot("FAILED"), nil).Once()

		_, err := svc.WaitForState(ctx, &waitdomain.WaitForStateArgs{
			Handle:           "wr-1",
			AcceptableStates: waitdomain.NewAcceptanceSet("SUCCEEDED"),
			FailureStates:    waitdomain.NewAcceptanceSet("FAILED", "CANCELED"),
			Fetcher:          fetcher,
			TriggeringResult: trigger,
		})
		require.ErrorIs(t, err, waitdomain.ErrFailureState)
		require.Contains(t, err.Error(), "FAILED")
	})

	t.Run("ok: accepted state wins over failure state", func(t *testing.T) {
		fetcher := mocks.NewStatusFetcher(t)
		svc := waitsrv.NewService(waitsrv.WithClock(newFakeClock()))

		fetcher.EXPECT().FetchStatus(ctx, waitdomain.OperationHandle("wr-1")).Return(snapshot("FAILED"), nil).Once()

		res, err := svc.WaitForState(ctx, &waitdomain.WaitForStateArgs{
			Handle:           "wr-1",
			AcceptableStates: waitdomain.NewAcceptanceSet("SUCCEEDED", "FAILED"),
			FailureStates:    waitdomain.NewAcceptanceSet("FAILED"),
			Fetcher:          fetcher,
		})
		require.NoError(t, err)
		require.Equal(t, "FAILED", res.Snapshot.Status)
	})

	t.Run("error: canceled while sleeping", func(t *testing.T) {
		fetcher := mocks.NewStatusFetcher(t)
		clock := mocks.NewClock(t)
		svc := waitsrv.NewService(waitsrv.WithClock(clock))

		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		clock.EXPECT().Now().Return(start)
		fetcher.EXPECT().FetchStatus(ctx, waitdomain.OperationHandle("wr-1")).Return(snapshot("IN_PROGRESS"), nil).Once()
		clock.EXPECT().Sleep(ctx, 30*time.Second).Return(context.Canceled).Once()

		_, err := svc.WaitForState(ctx, &waitdomain.WaitForStateArgs{
			Handle:           "wr-1",
			AcceptableStates: waitdomain.NewAcceptanceSet("SUCCEEDED"),
			Fetcher:          fetcher,
			TriggeringResult: trigger,
		})
		require.ErrorIs(t, err, waitdomain.ErrWaitCanceled)
		require.ErrorIs(t, err, context.Canceled)
	})
}
