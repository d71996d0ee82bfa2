package dsapi

import (
	"context"
	"net/http"
	"net/url"

	resttr "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest"
)

type CreateSecurityAssessmentArgs struct {
	Details       *CreateSecurityAssessmentDetails
	OpcRetryToken string
	OpcRequestID  string
}

type CreateSecurityAssessmentResult struct {
	SecurityAssessment *SecurityAssessment
	ETag               string
	OpcWorkRequestID   string
	OpcRequestID       string
}

func (c *Client) CreateSecurityAssessment(ctx context.Context, args *CreateSecurityAssessmentArgs) (*CreateSecurityAssessmentResult, error) {
	if args == nil {
		return nil, resttr.MissingParam("createSecurityAssessmentDetails")
	}
	if err := resttr.RequireBody("createSecurityAssessmentDetails", args.Details); err != nil {
		return nil, err
	}
	if err := resttr.RequireParam("compartmentId", args.Details.CompartmentID); err != nil {
		return nil, err
	}
	if err := resttr.RequireParam("targetId", args.Details.TargetID); err != nil {
		return nil, err
	}

	header := http.Header{}
	resttr.SetHeader(header, resttr.HeaderOpcRequestID, args.OpcRequestID)
	resttr.SetHeader(header, resttr.HeaderOpcRetryToken, resttr.RetryToken(args.OpcRetryToken))

	var assessment SecurityAssessment
	res, err := c.rest.Call(ctx, &resttr.Request{
		Method: http.MethodPost,
		Path:   apiVersion + "/securityAssessments",
		Header: header,
		Body:   args.Details,
	}, &assessment)
	if err != nil {
		return nil, err
	}

	return &CreateSecurityAssessmentResult{
		SecurityAssessment: &assessment,
		ETag:               res.ETag(),
		OpcWorkRequestID:   res.OpcWorkRequestID(),
		OpcRequestID:       res.OpcRequestID(),
	}, nil
}

type GetSecurityAssessmentArgs struct {
	SecurityAssessmentID string
	OpcRequestID         string
}

type GetSecurityAssessmentResult struct {
	SecurityAssessment *SecurityAssessment
	ETag               string
	OpcRequestID       string
}

func (c *Client) GetSecurityAssessment(ctx context.Context, args *GetSecurityAssessmentArgs) (*GetSecurityAssessmentResult, error) {
	if args == nil {
		return nil, resttr.RequireParam("securityAssessmentId", "")
	}
	if err := resttr.RequireParam("securityAssessmentId", args.SecurityAssessmentID); err != nil {
		return nil, err
	}

	header := http.Header{}
	resttr.SetHeader(header, resttr.HeaderOpcRequestID, args.OpcRequestID)

	var assessment SecurityAssessment
	res, err := c.rest.Call(ctx, &resttr.Request{
		Method:     http.MethodGet,
		Path:       apiVersion + "/securityAssessments/{securityAssessmentId}",
		PathParams: map[string]string{"securityAssessmentId": args.SecurityAssessmentID},
		Header:     header,
	}, &assessment)
	if err != nil {
		return nil, err
	}

	return &GetSecurityAssessmentResult{SecurityAssessment: &assessment, ETag: res.ETag(), OpcRequestID: res.OpcRequestID()}, nil
}

type ListSecurityAssessmentsArgs struct {
	CompartmentID  string
	TargetID       string
	Type           string
	DisplayName    string
	LifecycleState string
	SortBy         string
	SortOrder      string
	Limit          int
	Page           string
}

type ListSecurityAssessmentsResult struct {
	SecurityAssessments []SecurityAssessmentSummary
	NextPage            string
	OpcRequestID        string
}

func (c *Client) ListSecurityAssessments(ctx context.Context, args *ListSecurityAssessmentsArgs) (*ListSecurityAssessmentsResult, error) {
	if args == nil {
		return nil, resttr.RequireParam("compartmentId", "")
	}
	if err := resttr.RequireParam("compartmentId", args.CompartmentID); err != nil {
		return nil, err
	}
	if err := resttr.ValidateEnum("lifecycleState", args.LifecycleState, securityAssessmentLifecycleStates...); err != nil {
		return nil, err
	}
	if err := resttr.ValidateEnum("sortBy", args.SortBy, sortBys...); err != nil {
		return nil, err
	}
	if err := resttr.ValidateEnum("sortOrder", args.SortOrder, sortOrders...); err != nil {
		return nil, err
	}

	query := url.Values{}
	resttr.AddQuery(query, "compartmentId", args.CompartmentID)
	resttr.AddQuery(query, "targetId", args.TargetID)
	resttr.AddQuery(query, "type", args.Type)
	resttr.AddQuery(query, "displayName", args.DisplayName)
	resttr.AddQuery(query, "lifecycleState", args.LifecycleState)
	resttr.AddQuery(query, "sortBy", args.SortBy)
	resttr.AddQuery(query, "sortOrder", args.SortOrder)
	resttr.AddQuery(query, "limit", args.Limit)
	resttr.AddQuery(query, "page", args.Page)

	var assessments []SecurityAssessmentSummary
	res, err := c.rest.Call(ctx, &resttr.Request{
		Method: http.MethodGet,
		Path:   apiVersion + "/securityAssessments",
		Query:  query,
	}, &assessments)
	if err != nil {
		return nil, err
	}

	return &ListSecurityAssessmentsResult{SecurityAssessments: assessments, NextPage: res.OpcNextPage(), OpcRequestID: res.OpcRequestID()}, nil
}

type UpdateSecurityAssessmentArgs struct {
	SecurityAssessmentID string
	Details              *UpdateSecurityAssessmentDetails
	IfMatch              string
	OpcRequestID         string
}

func (c *Client) UpdateSecurityAssessment(ctx context.Context, args *UpdateSecurityAssessmentArgs) (*WorkRequestResult, error) {
	if args == nil {
		return nil, resttr.RequireParam("securityAssessmentId", "")
	}
	if err := resttr.RequireParam("securityAssessmentId", args.SecurityAssessmentID); err != nil {
		return nil, err
	}
	if err := resttr.RequireBody("updateSecurityAssessmentDetails", args.Details); err != nil {
		return nil, err
	}

	header := http.Header{}
	resttr.SetHeader(header, resttr.HeaderOpcRequestID, args.OpcRequestID)
	resttr.SetHeader(header, resttr.HeaderIfMatch, args.IfMatch)

	return c.workRequestCall(ctx, args.SecurityAssessmentID, &resttr.Request{
		Method:     http.MethodPut,
		Path:       apiVersion + "/securityAssessments/{securityAssessmentId}",
		PathParams: map[string]string{"securityAssessmentId": args.SecurityAssessmentID},
		Header:     header,
		Body:       args.Details,
	})
}

type DeleteSecurityAssessmentArgs struct {
	SecurityAssessmentID string
	IfMatch              string
	OpcRequestID         string
}

func (c *Client) DeleteSecurityAssessment(ctx context.Context, args *DeleteSecurityAssessmentArgs) (*WorkRequestResult, error) {
	if args == nil {
		return nil, resttr.RequireParam("securityAssessmentId", "")
	}
	if err := resttr.RequireParam("securityAssessmentId", args.SecurityAssessmentID); err != nil {
		return nil, err
	}

	header := http.Header{}
	resttr.SetHeader(header, resttr.HeaderOpcRequestID, args.OpcRequestID)
	resttr.SetHeader(header, resttr.HeaderIfMatch, args.IfMatch)

	return c.workRequestCall(ctx, args.SecurityAssessmentID, &resttr.Request{
		Method:     http.MethodDelete,
		Path:       apiVersion + "/securityAssessments/{securityAssessmentId}",
		PathParams: map[string]string{"securityAssessmentId": args.SecurityAssessmentID},
		Header:     header,
	})
}

type RefreshSecurityAssessmentArgs struct {
	SecurityAssessmentID string
	Details              *RunSecurityAssessmentDetails
	IfMatch              string
	OpcRetryToken        string
	OpcRequestID         string
}

func (c *Client) RefreshSecurityAssessment(ctx context.Context, args *RefreshSecurityAssessmentArgs) (*WorkRequestResult, error) {
	if args == nil {
		return nil, resttr.RequireParam("securityAssessmentId", "")
	}
	if err := resttr.RequireParam("securityAssessmentId", args.SecurityAssessmentID); err != nil {
		return nil, err
	}

	details := args.Details
	if details == nil {
		details = &RunSecurityAssessmentDetails{}
	}

	header := http.Header{}
	resttr.SetHeader(header, resttr.HeaderOpcRequestID, args.OpcRequestID)
	resttr.SetHeader(header, resttr.HeaderIfMatch, args.IfMatch)
	resttr.SetHeader(header, resttr.HeaderOpcRetryToken, resttr.RetryToken(args.OpcRetryToken))

	return c.workRequestCall(ctx, args.SecurityAssessmentID, &resttr.Request{
		Method:     http.MethodPost,
		Path:       apiVersion + "/securityAssessments/{securityAssessmentId}/actions/refresh",
		PathParams: map[string]string{"securityAssessmentId": args.SecurityAssessmentID},
		Header:     header,
		Body:       details,
	})
}

type ListFindingsArgs struct {
	SecurityAssessmentID string
	Severity             string
	FindingKey           string
	Limit                int
	Page                 string
}

type ListFindingsResult struct {
	Findings     []FindingSummary
	NextPage     string
	OpcRequestID string
}

func (c *Client) ListFindings(ctx context.Context, args *ListFindingsArgs) (*ListFindingsResult, error) {
	if args == nil {
		return nil, resttr.RequireParam("securityAssessmentId", "")
	}
	if err := resttr.RequireParam("securityAssessmentId", args.SecurityAssessmentID); err != nil {
		return nil, err
	}
	if err := resttr.ValidateEnum("severity", args.Severity, findingSeverities...); err != nil {
		return nil, err
	}

	query := url.Values{}
	resttr.AddQuery(query, "severity", args.Severity)
	resttr.AddQuery(query, "findingKey", args.FindingKey)
	resttr.AddQuery(query, "limit", args.Limit)
	resttr.AddQuery(query, "page", args.Page)

	var findings []FindingSummary
	res, err := c.rest.Call(ctx, &resttr.Request{
		Method:     http.MethodGet,
		Path:       apiVersion + "/securityAssessments/{securityAssessmentId}/findings",
		PathParams: map[string]string{"securityAssessmentId": args.SecurityAssessmentID},
		Query:      query,
	}, &findings)
	if err != nil {
		return nil, err
	}

	return &ListFindingsResult{Findings: findings, NextPage: res.OpcNextPage(), OpcRequestID: res.OpcRequestID()}, nil
}
