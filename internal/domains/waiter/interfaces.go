package waitdomain

import (
	"context"
	"time"
)

//go:generate mockery --name StatusFetcher --output ./mocks --outpkg mocks --with-expecter --filename status_fetcher.go
type StatusFetcher interface {
	FetchStatus(ctx context.Context, handle OperationHandle) (*StatusSnapshot, error)
}

type StatusFetcherFunc func(ctx context.Context, handle OperationHandle) (*StatusSnapshot, error)

func (f StatusFetcherFunc) FetchStatus(ctx context.Context, handle OperationHandle) (*StatusSnapshot, error) {
	return f(ctx, handle)
}

//go:generate mockery --name Clock --output ./mocks --outpkg mocks --with-expecter --filename clock.go
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

type StateWaiter interface {
	WaitForState(ctx context.Context, args *WaitForStateArgs) (*WaitForStateResult, error)
}

type WaitForStateArgs struct {
	Handle           string
	AcceptableStates AcceptanceSet
	FailureStates    AcceptanceSet
	Fetcher          StatusFetcher
	Config           WaitConfig
	TriggeringResult any
}

type WaitForStateResult struct {
	Outcome          Outcome
	Snapshot         *StatusSnapshot
	TriggeringResult any
	Polls            int
	Elapsed          time.Duration
}
