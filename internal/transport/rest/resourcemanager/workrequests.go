package rmapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

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
	Limit         int
	Page          string
}

type ListWorkRequestsResult struct {
	WorkRequests []WorkRequest
	NextPage     string
	OpcRequestID string
}

type workRequestCollection struct {
	Items []WorkRequest `json:"items"`
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

type ListWorkRequestErrorsArgs struct {
	WorkRequestID string
	SortOrder     string
	Limit         int
	Page          string
}

type ListWorkRequestErrorsResult struct {
	Errors       []WorkRequestError
	NextPage     string
	OpcRequestID string
}

type workRequestErrorCollection struct {
	Items []WorkRequestError `json:"items"`
}

func (c *Client) ListWorkRequestErrors(ctx context.Context, args *ListWorkRequestErrorsArgs) (*ListWorkRequestErrorsResult, error) {
	if args == nil {
		return nil, resttr.RequireParam("workRequestId", "")
	}
	if err := resttr.RequireParam("workRequestId", args.WorkRequestID); err != nil {
		return nil, err
	}
	if err := resttr.ValidateEnum("sortOrder", args.SortOrder, sortOrders...); err != nil {
		return nil, err
	}

	query := url.Values{}
	resttr.AddQuery(query, "sortOrder", args.SortOrder)
	resttr.AddQuery(query, "limit", args.Limit)
	resttr.AddQuery(query, "page", args.Page)

	var collection workRequestErrorCollection
	res, err := c.rest.Call(ctx, &resttr.Request{
		Method:     http.MethodGet,
		Path:       apiVersion + "/workRequests/{workRequestId}/errors",
		PathParams: map[string]string{"workRequestId": args.WorkRequestID},
		Query:      query,
	}, &collection)
	if err != nil {
		return nil, err
	}

	return &ListWorkRequestErrorsResult{Errors: collection.Items, NextPage: res.OpcNextPage(), OpcRequestID: res.OpcRequestID()}, nil
}

type ListWorkRequestLogsArgs struct {
	WorkRequestID string
	SortOrder     string
	Limit         int
	Page          string
}

type ListWorkRequestLogsResult struct {
	Entries      []WorkRequestLogEntry
	NextPage     string
	OpcRequestID string
}

type workRequestLogCollection struct {
	Items []WorkRequestLogEntry `json:"items"`
}

func (c *Client) ListWorkRequestLogs(ctx context.Context, args *ListWorkRequestLogsArgs) (*ListWorkRequestLogsResult, error) {
	if args == nil {
		return nil, resttr.RequireParam("workRequestId", "")
	}
	if err := resttr.RequireParam("workRequestId", args.WorkRequestID); err != nil {
		return nil, err
	}
	if err := resttr.ValidateEnum("sortOrder", args.SortOrder, sortOrders...); err != nil {
		return nil, err
	}

	query := url.Values{}
	resttr.AddQuery(query, "sortOrder", args.SortOrder)
	resttr.AddQuery(query, "limit", args.Limit)
	resttr.AddQuery(query, "page", args.Page)

	var collection workRequestLogCollection
	res, err := c.rest.Call(ctx, &resttr.Request{
		Method:     http.MethodGet,
		Path:       apiVersion + "/workRequests/{workRequestId}/logs",
		PathParams: map[string]string{"workRequestId": args.WorkRequestID},
		Query:      query,
	}, &collection)
	if err != nil {
		return nil, err
	}

	return &ListWorkRequestLogsResult{Entries: collection.Items, NextPage: res.OpcNextPage(), OpcRequestID: res.OpcRequestID()}, nil
}

func contentLength(header http.Header) int64 {
	n, err := strconv.ParseInt(header.Get("Content-Length"), 10, 64)
	if err != nil {
		return -1
	}
	return n
}
