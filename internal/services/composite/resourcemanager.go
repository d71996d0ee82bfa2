package compositesrv

import (
	"context"

	waitdomain "github.com/oracle/oci-go-sdk-sub024/internal/domains/waiter"
	rmapi "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest/resourcemanager"
)

// ResourceManagerService issues Resource Manager mutations and waits for the
// affected stack, job or work request to reach one of the requested states.
type ResourceManagerService struct {
	client ResourceManagerClient
	waiter waitdomain.StateWaiter

	workRequests waitdomain.StatusFetcher
	stacks       waitdomain.StatusFetcher
	jobs         waitdomain.StatusFetcher
}

func NewResourceManagerService(client ResourceManagerClient, waiter waitdomain.StateWaiter) *ResourceManagerService {
	return &ResourceManagerService{
		client:       client,
		waiter:       waiter,
		workRequests: rmapi.NewWorkRequestFetcher(client),
		stacks:       rmapi.NewStackFetcher(client),
		jobs:         rmapi.NewJobFetcher(client),
	}
}

func (s *ResourceManagerService) CreateStackAndWaitForState(
	ctx context.Context,
	args *rmapi.CreateStackArgs,
	waitFor []string,
	cfg waitdomain.WaitConfig,
) (*Result[*rmapi.CreateStackResult], error) {
	res, err := s.client.CreateStack(ctx, args)
	if err != nil {
		return nil, err
	}

	return waitAfter(ctx, s.waiter, res, waitRequest{
		handle:  res.Stack.ID,
		waitFor: waitFor,
		fetcher: s.stacks,
		cfg:     cfg,
	})
}

func (s *ResourceManagerService) UpdateStackAndWaitForState(
	ctx context.Context,
	args *rmapi.UpdateStackArgs,
	waitFor []string,
	cfg waitdomain.WaitConfig,
) (*Result[*rmapi.UpdateStackResult], error) {
	res, err := s.client.UpdateStack(ctx, args)
	if err != nil {
		return nil, err
	}

	return waitAfter(ctx, s.waiter, res, waitRequest{
		handle:  args.StackID,
		waitFor: waitFor,
		fetcher: s.stacks,
		cfg:     cfg,
	})
}

// DeleteStackAndWaitForState treats a stack that can no longer be read as
// deleted.
func (s *ResourceManagerService) DeleteStackAndWaitForState(
	ctx context.Context,
	args *rmapi.DeleteStackArgs,
	waitFor []string,
	cfg waitdomain.WaitConfig,
) (*Result[*rmapi.DeleteStackResult], error) {
	res, err := s.client.DeleteStack(ctx, args)
	if err != nil {
		return nil, err
	}

	cfg.SucceedOnNotFound = true
	return waitAfter(ctx, s.waiter, res, waitRequest{
		handle:  res.StackID,
		waitFor: waitFor,
		fetcher: s.stacks,
		cfg:     cfg,
	})
}

func (s *ResourceManagerService) ChangeStackCompartmentAndWaitForState(
	ctx context.Context,
	args *rmapi.ChangeStackCompartmentArgs,
	waitFor []string,
	cfg waitdomain.WaitConfig,
) (*Result[*rmapi.ChangeStackCompartmentResult], error) {
	res, err := s.client.ChangeStackCompartment(ctx, args)
	if err != nil {
		return nil, err
	}

	return waitAfter(ctx, s.waiter, res, waitRequest{
		handle:  res.OpcWorkRequestID,
		waitFor: waitFor,
		fetcher: s.workRequests,
		cfg:     cfg,
	})
}

func (s *ResourceManagerService) CreateJobAndWaitForState(
	ctx context.Context,
	args *rmapi.CreateJobArgs,
	waitFor []string,
	cfg waitdomain.WaitConfig,
) (*Result[*rmapi.CreateJobResult], error) {
	res, err := s.client.CreateJob(ctx, args)
	if err != nil {
		return nil, err
	}

	return waitAfter(ctx, s.waiter, res, waitRequest{
		handle:  res.Job.ID,
		waitFor: waitFor,
		fetcher: s.jobs,
		cfg:     cfg,
	})
}

func (s *ResourceManagerService) UpdateJobAndWaitForState(
	ctx context.Context,
	args *rmapi.UpdateJobArgs,
	waitFor []string,
	cfg waitdomain.WaitConfig,
) (*Result[*rmapi.UpdateJobResult], error) {
	res, err := s.client.UpdateJob(ctx, args)
	if err != nil {
		return nil, err
	}

	return waitAfter(ctx, s.waiter, res, waitRequest{
		handle:  args.JobID,
		waitFor: waitFor,
		fetcher: s.jobs,
		cfg:     cfg,
	})
}

func (s *ResourceManagerService) CancelJobAndWaitForState(
	ctx context.Context,
	args *rmapi.CancelJobArgs,
	waitFor []string,
	cfg waitdomain.WaitConfig,
) (*Result[*rmapi.CancelJobResult], error) {
	res, err := s.client.CancelJob(ctx, args)
	if err != nil {
		return nil, err
	}

	return waitAfter(ctx, s.waiter, res, waitRequest{
		handle:  res.JobID,
		waitFor: waitFor,
		fetcher: s.jobs,
		cfg:     cfg,
	})
}
