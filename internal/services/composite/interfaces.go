package compositesrv

import (
	"context"

	waitdomain "github.com/oracle/oci-go-sdk-sub024/internal/domains/waiter"
	dsapi "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest/datasafe"
	rmapi "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest/resourcemanager"
)

type ResourceManagerClient interface {
	rmapi.WorkRequestGetter
	rmapi.StackGetter
	rmapi.JobGetter

	CreateStack(ctx context.Context, args *rmapi.CreateStackArgs) (*rmapi.CreateStackResult, error)
	UpdateStack(ctx context.Context, args *rmapi.UpdateStackArgs) (*rmapi.UpdateStackResult, error)
	DeleteStack(ctx context.Context, args *rmapi.DeleteStackArgs) (*rmapi.DeleteStackResult, error)
	ChangeStackCompartment(ctx context.Context, args *rmapi.ChangeStackCompartmentArgs) (*rmapi.ChangeStackCompartmentResult, error)
	CreateJob(ctx context.Context, args *rmapi.CreateJobArgs) (*rmapi.CreateJobResult, error)
	UpdateJob(ctx context.Context, args *rmapi.UpdateJobArgs) (*rmapi.UpdateJobResult, error)
	CancelJob(ctx context.Context, args *rmapi.CancelJobArgs) (*rmapi.CancelJobResult, error)
}

type DataSafeClient interface {
	dsapi.WorkRequestGetter
	dsapi.OnPremConnectorGetter
	dsapi.SecurityAssessmentGetter

	CreateOnPremConnector(ctx context.Context, args *dsapi.CreateOnPremConnectorArgs) (*dsapi.CreateOnPremConnectorResult, error)
	UpdateOnPremConnector(ctx context.Context, args *dsapi.UpdateOnPremConnectorArgs) (*dsapi.WorkRequestResult, error)
	DeleteOnPremConnector(ctx context.Context, args *dsapi.DeleteOnPremConnectorArgs) (*dsapi.WorkRequestResult, error)
	ChangeOnPremConnectorCompartment(ctx context.Context, args *dsapi.ChangeOnPremConnectorCompartmentArgs) (*dsapi.WorkRequestResult, error)
	CreateSecurityAssessment(ctx context.Context, args *dsapi.CreateSecurityAssessmentArgs) (*dsapi.CreateSecurityAssessmentResult, error)
	UpdateSecurityAssessment(ctx context.Context, args *dsapi.UpdateSecurityAssessmentArgs) (*dsapi.WorkRequestResult, error)
	DeleteSecurityAssessment(ctx context.Context, args *dsapi.DeleteSecurityAssessmentArgs) (*dsapi.WorkRequestResult, error)
	RefreshSecurityAssessment(ctx context.Context, args *dsapi.RefreshSecurityAssessmentArgs) (*dsapi.WorkRequestResult, error)
}

// Result pairs the response of a mutation with the wait that followed it.
// Wait.Outcome is skipped when no target states were requested.
type Result[T any] struct {
	Mutation T
	Wait     *waitdomain.WaitForStateResult
}

// Latest returns the payload of the last status fetch, if the wait matched.
func (r *Result[T]) Latest() any {
	if r == nil || r.Wait == nil || r.Wait.Snapshot == nil {
		return nil
	}
	return r.Wait.Snapshot.Payload
}

type waitRequest struct {
	handle  string
	waitFor []string
	failOn  []string
	fetcher waitdomain.StatusFetcher
	cfg     waitdomain.WaitConfig
}

func waitAfter[T any](ctx context.Context, waiter waitdomain.StateWaiter, mutation T, req waitRequest) (*Result[T], error) {
	res, err := waiter.WaitForState(ctx, &waitdomain.WaitForStateArgs{
		Handle:           req.handle,
		AcceptableStates: waitdomain.NewAcceptanceSet(req.waitFor...),
		FailureStates:    waitdomain.NewAcceptanceSet(req.failOn...),
		Fetcher:          req.fetcher,
		Config:           req.cfg,
		TriggeringResult: mutation,
	})
	if err != nil {
		return nil, err
	}
	return &Result[T]{Mutation: mutation, Wait: res}, nil
}
