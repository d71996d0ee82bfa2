package compositesrv

import (
	"context"

	waitdomain "github.com/oracle/oci-go-sdk-sub024/internal/domains/waiter"
	dsapi "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest/datasafe"
)

// Work requests that end in one of these states never reach another one.
var dataSafeFailureStates = []string{dsapi.WorkRequestStatusFailed, dsapi.WorkRequestStatusCanceled}

// Resource lifecycle states a connector or assessment does not leave on its own.
var (
	onPremConnectorFailureStates    = []string{dsapi.OnPremConnectorLifecycleStateFailed}
	securityAssessmentFailureStates = []string{dsapi.SecurityAssessmentLifecycleStateFailed}
)

// DataSafeService issues Data Safe mutations and waits on the work request
// each of them reports. It can also poll a connector or an assessment directly.
type DataSafeService struct {
	client       DataSafeClient
	waiter       waitdomain.StateWaiter
	workRequests waitdomain.StatusFetcher
	connectors   waitdomain.StatusFetcher
	assessments  waitdomain.StatusFetcher
}

func NewDataSafeService(client DataSafeClient, waiter waitdomain.StateWaiter) *DataSafeService {
	return &DataSafeService{
		client:       client,
		waiter:       waiter,
		workRequests: dsapi.NewWorkRequestFetcher(client),
		connectors:   dsapi.NewOnPremConnectorFetcher(client),
		assessments:  dsapi.NewSecurityAssessmentFetcher(client),
	}
}

// WaitForOnPremConnectorState polls the connector itself until its lifecycle
// state is one of waitFor. A FAILED connector ends the wait with an error.
func (s *DataSafeService) WaitForOnPremConnectorState(
	ctx context.Context,
	connectorID string,
	waitFor []string,
	cfg waitdomain.WaitConfig,
) (*waitdomain.WaitForStateResult, error) {
	return s.waiter.WaitForState(ctx, &waitdomain.WaitForStateArgs{
		Handle:           connectorID,
		AcceptableStates: waitdomain.NewAcceptanceSet(waitFor...),
		FailureStates:    waitdomain.NewAcceptanceSet(onPremConnectorFailureStates...),
		Fetcher:          s.connectors,
		Config:           cfg,
	})
}

// WaitForSecurityAssessmentState polls the assessment itself until its
// lifecycle state is one of waitFor.
func (s *DataSafeService) WaitForSecurityAssessmentState(
	ctx context.Context,
	assessmentID string,
	waitFor []string,
	cfg waitdomain.WaitConfig,
) (*waitdomain.WaitForStateResult, error) {
	return s.waiter.WaitForState(ctx, &waitdomain.WaitForStateArgs{
		Handle:           assessmentID,
		AcceptableStates: waitdomain.NewAcceptanceSet(waitFor...),
		FailureStates:    waitdomain.NewAcceptanceSet(securityAssessmentFailureStates...),
		Fetcher:          s.assessments,
		Config:           cfg,
	})
}

func (s *DataSafeService) wait(workRequestID string, waitFor []string, cfg waitdomain.WaitConfig) waitRequest {
	return waitRequest{
		handle:  workRequestID,
		waitFor: waitFor,
		failOn:  dataSafeFailureStates,
		fetcher: s.workRequests,
		cfg:     cfg,
	}
}

func (s *DataSafeService) CreateOnPremConnectorAndWaitForState(
	ctx context.Context,
	args *dsapi.CreateOnPremConnectorArgs,
	waitFor []string,
	cfg waitdomain.WaitConfig,
) (*Result[*dsapi.CreateOnPremConnectorResult], error) {
	res, err := s.client.CreateOnPremConnector(ctx, args)
	if err != nil {
		return nil, err
	}
	return waitAfter(ctx, s.waiter, res, s.wait(res.OpcWorkRequestID, waitFor, cfg))
}

func (s *DataSafeService) UpdateOnPremConnectorAndWaitForState(
	ctx context.Context,
	args *dsapi.UpdateOnPremConnectorArgs,
	waitFor []string,
	cfg waitdomain.WaitConfig,
) (*Result[*dsapi.WorkRequestResult], error) {
	res, err := s.client.UpdateOnPremConnector(ctx, args)
	if err != nil {
		return nil, err
	}
	return waitAfter(ctx, s.waiter, res, s.wait(res.OpcWorkRequestID, waitFor, cfg))
}

func (s *DataSafeService) DeleteOnPremConnectorAndWaitForState(
	ctx context.Context,
	args *dsapi.DeleteOnPremConnectorArgs,
	waitFor []string,
	cfg waitdomain.WaitConfig,
) (*Result[*dsapi.WorkRequestResult], error) {
	res, err := s.client.DeleteOnPremConnector(ctx, args)
	if err != nil {
		return nil, err
	}
	return waitAfter(ctx, s.waiter, res, s.wait(res.OpcWorkRequestID, waitFor, cfg))
}

func (s *DataSafeService) ChangeOnPremConnectorCompartmentAndWaitForState(
	ctx context.Context,
	args *dsapi.ChangeOnPremConnectorCompartmentArgs,
	waitFor []string,
	cfg waitdomain.WaitConfig,
) (*Result[*dsapi.WorkRequestResult], error) {
	res, err := s.client.ChangeOnPremConnectorCompartment(ctx, args)
	if err != nil {
		return nil, err
	}
	return waitAfter(ctx, s.waiter, res, s.wait(res.OpcWorkRequestID, waitFor, cfg))
}

func (s *DataSafeService) CreateSecurityAssessmentAndWaitForState(
	ctx context.Context,
	args *dsapi.CreateSecurityAssessmentArgs,
	waitFor []string,
	cfg waitdomain.WaitConfig,
) (*Result[*dsapi.CreateSecurityAssessmentResult], error) {
	res, err := s.client.CreateSecurityAssessment(ctx, args)
	if err != nil {
		return nil, err
	}
	return waitAfter(ctx, s.waiter, res, s.wait(res.OpcWorkRequestID, waitFor, cfg))
}

func (s *DataSafeService) UpdateSecurityAssessmentAndWaitForState(
	ctx context.Context,
	args *dsapi.UpdateSecurityAssessmentArgs,
	waitFor []string,
	cfg waitdomain.WaitConfig,
) (*Result[*dsapi.WorkRequestResult], error) {
	res, err := s.client.UpdateSecurityAssessment(ctx, args)
	if err != nil {
		return nil, err
	}
	return waitAfter(ctx, s.waiter, res, s.wait(res.OpcWorkRequestID, waitFor, cfg))
}

func (s *DataSafeService) DeleteSecurityAssessmentAndWaitForState(
	ctx context.Context,
	args *dsapi.DeleteSecurityAssessmentArgs,
	waitFor []string,
	cfg waitdomain.WaitConfig,
) (*Result[*dsapi.WorkRequestResult], error) {
	res, err := s.client.DeleteSecurityAssessment(ctx, args)
	if err != nil {
		return nil, err
	}
	return waitAfter(ctx, s.waiter, res, s.wait(res.OpcWorkRequestID, waitFor, cfg))
}

func (s *DataSafeService) RefreshSecurityAssessmentAndWaitForState(
	ctx context.Context,
	args *dsapi.RefreshSecurityAssessmentArgs,
	waitFor []string,
	cfg waitdomain.WaitConfig,
) (*Result[*dsapi.WorkRequestResult], error) {
	res, err := s.client.RefreshSecurityAssessment(ctx, args)
	if err != nil {
		return nil, err
	}
	return waitAfter(ctx, s.waiter, res, s.wait(res.OpcWorkRequestID, waitFor, cfg))
}
