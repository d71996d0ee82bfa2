package dsapi

import (
	"context"
	"net/http"
	"net/url"

	resttr "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest"
)

type GetWorkRequestArgs struct {
	WorkRequestID string
	OpcRequestID  string
}

type GetWorkRequestResult struct {
	WorkRequest  *WorkRequest
	OpcRequestID string
}

func (c *Client) GetWorkRequest(ctx context.Context, args *GetWorkRequestArgs) (*GetWorkRequestResult, error) {
	if args == nil {
		return nil, resttr.RequireParam("workRequestId", "")
	}
	if err := resttr.RequireParam("workRequestId", args.WorkRequestID); err != nil {
		return nil, err
	}

	header := http.Header{}
	resttr.SetHeader(header, resttr.HeaderOpcRequestID, args.OpcRequestID)

	var workRequest WorkRequest
	res, err := c.rest.Call(ctx, &resttr.Request{
		Method:     http.MethodGet,
		Path:       apiVersion + "/workRequests/{workRequestId}",
		PathParams: map[string]string{"workRequestId": args.WorkRequestID},
		Header:     header,
	}, &workRequest)
	if err != nil {
		return nil, err
	}

	return &GetWorkRequestResult{WorkRequest: &workRequest, OpcRequestID: res.OpcRequestID()}, nil
}

type ListWorkRequestsArgs struct {
	CompartmentID string
	ResourceID    string
	OperationType string
	Limit         int
	Page          string
}

type ListWorkRequestsResult struct {
	WorkRequests []WorkRequestSummary
	NextPage     string
	OpcRequestID string
}

type workRequestCollection struct {
	Items []WorkRequestSummary `json:"items"`
}

func (c *Client) ListWorkRequests(ctx context.Context, args *ListWorkRequestsArgs) (*ListWorkRequestsResult, error) {
	if args == nil {
		return nil, resttr.RequireParam("compartmentId", "")
	}
	if err := resttr.RequireParam("compartmentId", args.CompartmentID); err != nil {
		return nil, err
	}

	query := url.Values{}
	resttr.AddQuery(query, "compartmentId", args.CompartmentID)
	resttr.AddQuery(query, "resourceId", args.ResourceID)
	resttr.AddQuery(query, "operationType", args.OperationType)
	resttr.AddQuery(query, "limit", args.Limit)
	resttr.AddQuery(query, "page", args.Page)

	var collection workRequestCollection
	res, err := c.rest.Call(ctx, &resttr.Request{
		Method: http.MethodGet,
		Path:   apiVersion + "/workRequests",
		Query:  query,
	}, &collection)
	if err != nil {
		return nil, err
	}

	return &ListWorkRequestsResult{WorkRequests: collection.Items, NextPage: res.OpcNextPage(), OpcRequestID: res.OpcRequestID()}, nil
}
