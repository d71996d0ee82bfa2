package rmapi

import (
	"context"

	waitdomain "github.com/oracle/oci-go-sdk-sub024/internal/domains/waiter"
)

var (
	_ waitdomain.StatusFetcher = (*WorkRequestFetcher)(nil)
	_ waitdomain.StatusFetcher = (*StackFetcher)(nil)
	_ waitdomain.StatusFetcher = (*JobFetcher)(nil)
)

type WorkRequestGetter interface {
	GetWorkRequest(ctx context.Context, args *GetWorkRequestArgs) (*GetWorkRequestResult, error)
}

type StackGetter interface {
	GetStack(ctx context.Context, args *GetStackArgs) (*GetStackResult, error)
}

type JobGetter interface {
	GetJob(ctx context.Context, args *GetJobArgs) (*GetJobResult, error)
}

// WorkRequestFetcher polls the status of a work request.
type WorkRequestFetcher struct {
	client WorkRequestGetter
}

func NewWorkRequestFetcher(client WorkRequestGetter) *WorkRequestFetcher {
	return &WorkRequestFetcher{client: client}
}

func (f *WorkRequestFetcher) FetchStatus(ctx context.Context, handle waitdomain.OperationHandle) (*waitdomain.StatusSnapshot, error) {
	res, err := f.client.GetWorkRequest(ctx, &GetWorkRequestArgs{WorkRequestID: handle.String()})
	if err != nil {
		return nil, err
	}
	return &waitdomain.StatusSnapshot{Status: res.WorkRequest.Status, Payload: res}, nil
}

// StackFetcher polls the lifecycle state of a stack.
type StackFetcher struct {
	client StackGetter
}

func NewStackFetcher(client StackGetter) *StackFetcher {
	return &StackFetcher{client: client}
}

func (f *StackFetcher) FetchStatus(ctx context.Context, handle waitdomain.OperationHandle) (*waitdomain.StatusSnapshot, error) {
	res, err := f.client.GetStack(ctx, &GetStackArgs{StackID: handle.String()})
	if err != nil {
		return nil, err
	}
	return &waitdomain.StatusSnapshot{Status: res.Stack.LifecycleState, Payload: res}, nil
}

// JobFetcher polls the lifecycle state of a job.
type JobFetcher struct {
	client JobGetter
}

func NewJobFetcher(client JobGetter) *JobFetcher {
	return &JobFetcher{client: client}
}

func (f *JobFetcher) FetchStatus(ctx context.Context, handle waitdomain.OperationHandle) (*waitdomain.StatusSnapshot, error) {
	res, err := f.client.GetJob(ctx, &GetJobArgs{JobID: handle.String()})
	if err != nil {
		return nil, err
	}
	return &waitdomain.StatusSnapshot{Status: res.Job.LifecycleState, Payload: res}, nil
}
