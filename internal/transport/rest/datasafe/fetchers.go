package dsapi

import (
	"context"

	waitdomain "github.com/oracle/oci-go-sdk-sub024/internal/domains/waiter"
)

var (
	_ waitdomain.StatusFetcher = (*WorkRequestFetcher)(nil)
	_ waitdomain.StatusFetcher = (*OnPremConnectorFetcher)(nil)
	_ waitdomain.StatusFetcher = (*SecurityAssessmentFetcher)(nil)
)

type WorkRequestGetter interface {
	GetWorkRequest(ctx context.Context, args *GetWorkRequestArgs) (*GetWorkRequestResult, error)
}

type OnPremConnectorGetter interface {
	GetOnPremConnector(ctx context.Context, args *GetOnPremConnectorArgs) (*GetOnPremConnectorResult, error)
}

type SecurityAssessmentGetter interface {
	GetSecurityAssessment(ctx context.Context, args *GetSecurityAssessmentArgs) (*GetSecurityAssessmentResult, error)
}

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

type OnPremConnectorFetcher struct {
	client OnPremConnectorGetter
}

func NewOnPremConnectorFetcher(client OnPremConnectorGetter) *OnPremConnectorFetcher {
	return &OnPremConnectorFetcher{client: client}
}

func (f *OnPremConnectorFetcher) FetchStatus(ctx context.Context, handle waitdomain.OperationHandle) (*waitdomain.StatusSnapshot, error) {
	res, err := f.client.GetOnPremConnector(ctx, &GetOnPremConnectorArgs{OnPremConnectorID: handle.String()})
	if err != nil {
		return nil, err
	}
	return &waitdomain.StatusSnapshot{Status: res.OnPremConnector.LifecycleState, Payload: res}, nil
}

type SecurityAssessmentFetcher struct {
	client SecurityAssessmentGetter
}

func NewSecurityAssessmentFetcher(client SecurityAssessmentGetter) *SecurityAssessmentFetcher {
	return &SecurityAssessmentFetcher{client: client}
}

func (f *SecurityAssessmentFetcher) FetchStatus(ctx context.Context, handle waitdomain.OperationHandle) (*waitdomain.StatusSnapshot, error) {
	res, err := f.client.GetSecurityAssessment(ctx, &GetSecurityAssessmentArgs{SecurityAssessmentID: handle.String()})
	if err != nil {
		return nil, err
	}
	return &waitdomain.StatusSnapshot{Status: res.SecurityAssessment.LifecycleState, Payload: res}, nil
}
