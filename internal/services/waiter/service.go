package waitsrv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/containerd/errdefs"
	waitdomain "github.com/oracle/oci-go-sdk-sub024/internal/domains/waiter"
	"go.uber.org/zap"
)

var _ waitdomain.StateWaiter = (*Service)(nil)

// Service polls long-running operations until they reach an acceptable state.
// It keeps no per-wait state and may be shared between goroutines.
type Service struct {
	clock waitdomain.Clock
	log   *zap.Logger
}

func NewService(opts ...ServiceOption) *Service {
	options := defaultServiceOptions()
	for _, opt := range opts {
		opt(options)
	}

	return &Service{
		clock: options.clock,
		log:   options.log,
	}
}

func (s *Service) WaitForState(ctx context.Context, args *waitdomain.WaitForStateArgs) (*waitdomain.WaitForStateResult, error) {
	if args == nil {
		return nil, waitdomain.NewCompositeOperationError(nil, fmt.Errorf("%w: wait arguments are required", waitdomain.ErrInvalidHandle))
	}

	if args.AcceptableStates.Empty() {
		return &waitdomain.WaitForStateResult{
			Outcome:          waitdomain.OutcomeSkipped,
			TriggeringResult: args.TriggeringResult,
		}, nil
	}

	handle, err := waitdomain.ParseOperationHandle(args.Handle)
	if err != nil {
		s.record(outcomeInvalid, 0)
		return nil, waitdomain.NewCompositeOperationError(args.TriggeringResult, err)
	}
	if args.Fetcher == nil {
		s.record(outcomeInvalid, 0)
		return nil, waitdomain.NewCompositeOperationError(args.TriggeringResult,
			fmt.Errorf("%w: no status fetcher for %q", waitdomain.ErrFetchFailed, handle))
	}

	cfg := args.Config.WithDefaults()
	log := s.log.With(
		zap.String("handle", handle.String()),
		zap.Strings("acceptable_states", args.AcceptableStates.States()),
	)

	start := s.clock.Now()
	fail := func(outcome string, polls int, err error) (*waitdomain.WaitForStateResult, error) {
		elapsed := s.clock.Now().Sub(start)
		s.record(outcome, elapsed)
		log.Warn("wait for state failed",
			zap.Int("polls", polls),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return nil, waitdomain.NewCompositeOperationError(args.TriggeringResult, err)
	}

	for polls := 1; ; polls++ {
		waiterPollsTotal.Inc()

		snapshot, err := args.Fetcher.FetchStatus(ctx, handle)
		if err != nil {
			if cfg.SucceedOnNotFound && errdefs.IsNotFound(err) {
				return s.succeed(log, start, &waitdomain.WaitForStateResult{
					Outcome:          waitdomain.OutcomeNotFound,
					TriggeringResult: args.TriggeringResult,
					Polls:            polls,
				}), nil
			}
			return fail(outcomeFetchFailed, polls, fmt.Errorf("%w: %w", waitdomain.ErrFetchFailed, err))
		}
		if snapshot == nil {
			return fail(outcomeFetchFailed, polls, fmt.Errorf("%w: empty status snapshot", waitdomain.ErrFetchFailed))
		}

		log.Debug("fetched status", zap.Int("poll", polls), zap.String("status", snapshot.Status))

		if args.AcceptableStates.Contains(snapshot.Status) {
			return s.succeed(log, start, &waitdomain.WaitForStateResult{
				Outcome:          waitdomain.OutcomeMatched,
				Snapshot:         snapshot,
				TriggeringResult: args.TriggeringResult,
				Polls:            polls,
			}), nil
		}

		if args.FailureStates.Contains(snapshot.Status) {
			return fail(outcomeFailureState, polls, fmt.Errorf("%w: %s", waitdomain.ErrFailureState, snapshot.Status))
		}

		remaining := cfg.MaxWait - s.clock.Now().Sub(start)
		if remaining <= 0 {
			return fail(outcomeTimeout, polls, fmt.Errorf("%w: last status %q after %s", waitdomain.ErrTimeout, snapshot.Status, cfg.MaxWait))
		}

		if err := s.clock.Sleep(ctx, min(cfg.MaxInterval, remaining)); err != nil {
			return fail(outcomeCanceled, polls, fmt.Errorf("%w: %w", waitdomain.ErrWaitCanceled, err))
		}
	}
}

func (s *Service) succeed(log *zap.Logger, start time.Time, result *waitdomain.WaitForStateResult) *waitdomain.WaitForStateResult {
	result.Elapsed = s.clock.Now().Sub(start)
	s.record(result.Outcome.String(), result.Elapsed)

	status := ""
	if result.Snapshot != nil {
		status = result.Snapshot.Status
	}
	log.Info("wait for state finished",
		zap.Stringer("outcome", result.Outcome),
		zap.String("status", status),
		zap.Int("polls", result.Polls),
		zap.Duration("elapsed", result.Elapsed),
	)
	return result
}

func (s *Service) record(outcome string, elapsed time.Duration) {
	waiterWaitsTotal.WithLabelValues(outcome).Inc()
	waiterWaitDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// IsTimeout reports whether err is a waiter timeout.
func IsTimeout(err error) bool {
	return errors.Is(err, waitdomain.ErrTimeout)
}

// IsFetchFailed reports whether err is a waiter fetch failure.
func IsFetchFailed(err error) bool {
	return errors.Is(err, waitdomain.ErrFetchFailed)
}
