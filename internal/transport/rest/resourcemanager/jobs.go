package rmapi

import (
	"context"
	"io"
	"net/http"
	"net/url"

	resttr "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest"
)

type CreateJobArgs struct {
	Details       *CreateJobDetails
	OpcRetryToken string
	OpcRequestID  string
}

type CreateJobResult struct {
	Job          *Job
	ETag         string
	OpcRequestID string
}

func (c *Client) CreateJob(ctx context.Context, args *CreateJobArgs) (*CreateJobResult, error) {
	if args == nil {
		return nil, resttr.MissingParam("createJobDetails")
	}
	if err := resttr.RequireBody("createJobDetails", args.Details); err != nil {
		return nil, err
	}
	if err := resttr.RequireParam("stackId", args.Details.StackID); err != nil {
		return nil, err
	}
	if err := resttr.ValidateEnum("operation", args.Details.Operation, jobOperations...); err != nil {
		return nil, err
	}

	header := http.Header{}
	resttr.SetHeader(header, resttr.HeaderOpcRequestID, args.OpcRequestID)
	resttr.SetHeader(header, resttr.HeaderOpcRetryToken, resttr.RetryToken(args.OpcRetryToken))

	var job Job
	res, err := c.rest.Call(ctx, &resttr.Request{
		Method: http.MethodPost,
		Path:   apiVersion + "/jobs",
		Header: header,
		Body:   args.Details,
	}, &job)
	if err != nil {
		return nil, err
	}

	return &CreateJobResult{Job: &job, ETag: res.ETag(), OpcRequestID: res.OpcRequestID()}, nil
}

type GetJobArgs struct {
	JobID        string
	OpcRequestID string
}

type GetJobResult struct {
	Job          *Job
	ETag         string
	OpcRequestID string
}

func (c *Client) GetJob(ctx context.Context, args *GetJobArgs) (*GetJobResult, error) {
	if args == nil {
		return nil, resttr.RequireParam("jobId", "")
	}
	if err := resttr.RequireParam("jobId", args.JobID); err != nil {
		return nil, err
	}

	header := http.Header{}
	resttr.SetHeader(header, resttr.HeaderOpcRequestID, args.OpcRequestID)

	var job Job
	res, err := c.rest.Call(ctx, &resttr.Request{
		Method:     http.MethodGet,
		Path:       apiVersion + "/jobs/{jobId}",
		PathParams: map[string]string{"jobId": args.JobID},
		Header:     header,
	}, &job)
	if err != nil {
		return nil, err
	}

	return &GetJobResult{Job: &job, ETag: res.ETag(), OpcRequestID: res.OpcRequestID()}, nil
}

type ListJobsArgs struct {
	CompartmentID  string
	StackID        string
	ID             string
	LifecycleState string
	DisplayName    string
	SortBy         string
	SortOrder      string
	Limit          int
	Page           string
}

type ListJobsResult struct {
	Jobs         []JobSummary
	NextPage     string
	OpcRequestID string
}

func (c *Client) ListJobs(ctx context.Context, args *ListJobsArgs) (*ListJobsResult, error) {
	if args == nil {
		args = &ListJobsArgs{}
	}
	if err := resttr.ValidateEnum("lifecycleState", args.LifecycleState, jobLifecycleStates...); err != nil {
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
	resttr.AddQuery(query, "stackId", args.StackID)
	resttr.AddQuery(query, "id", args.ID)
	resttr.AddQuery(query, "lifecycleState", args.LifecycleState)
	resttr.AddQuery(query, "displayName", args.DisplayName)
	resttr.AddQuery(query, "sortBy", args.SortBy)
	resttr.AddQuery(query, "sortOrder", args.SortOrder)
	resttr.AddQuery(query, "limit", args.Limit)
	resttr.AddQuery(query, "page", args.Page)

	var jobs []JobSummary
	res, err := c.rest.Call(ctx, &resttr.Request{
		Method: http.MethodGet,
		Path:   apiVersion + "/jobs",
		Query:  query,
	}, &jobs)
	if err != nil {
		return nil, err
	}

	return &ListJobsResult{Jobs: jobs, NextPage: res.OpcNextPage(), OpcRequestID: res.OpcRequestID()}, nil
}

type UpdateJobArgs struct {
	JobID        string
	Details      *UpdateJobDetails
	IfMatch      string
	OpcRequestID string
}

type UpdateJobResult struct {
	Job          *Job
	ETag         string
	OpcRequestID string
}

func (c *Client) UpdateJob(ctx context.Context, args *UpdateJobArgs) (*UpdateJobResult, error) {
	if args == nil {
		return nil, resttr.RequireParam("jobId", "")
	}
	if err := resttr.RequireParam("jobId", args.JobID); err != nil {
		return nil, err
	}
	if err := resttr.RequireBody("updateJobDetails", args.Details); err != nil {
		return nil, err
	}

	header := http.Header{}
	resttr.SetHeader(header, resttr.HeaderOpcRequestID, args.OpcRequestID)
	resttr.SetHeader(header, resttr.HeaderIfMatch, args.IfMatch)

	var job Job
	res, err := c.rest.Call(ctx, &resttr.Request{
		Method:     http.MethodPut,
		Path:       apiVersion + "/jobs/{jobId}",
		PathParams: map[string]string{"jobId": args.JobID},
		Header:     header,
		Body:       args.Details,
	}, &job)
	if err != nil {
		return nil, err
	}

	return &UpdateJobResult{Job: &job, ETag: res.ETag(), OpcRequestID: res.OpcRequestID()}, nil
}

type CancelJobArgs struct {
	JobID        string
	IsForced     bool
	IfMatch      string
	OpcRequestID string
}

type CancelJobResult struct {
	JobID        string
	OpcRequestID string
}

func (c *Client) CancelJob(ctx context.Context, args *CancelJobArgs) (*CancelJobResult, error) {
	if args == nil {
		return nil, resttr.RequireParam("jobId", "")
	}
	if err := resttr.RequireParam("jobId", args.JobID); err != nil {
		return nil, err
	}

	header := http.Header{}
	resttr.SetHeader(header, resttr.HeaderOpcRequestID, args.OpcRequestID)
	resttr.SetHeader(header, resttr.HeaderIfMatch, args.IfMatch)

	query := url.Values{}
	resttr.AddQuery(query, "isForced", args.IsForced)

	res, err := c.rest.Call(ctx, &resttr.Request{
		Method:     http.MethodDelete,
		Path:       apiVersion + "/jobs/{jobId}",
		PathParams: map[string]string{"jobId": args.JobID},
		Query:      query,
		Header:     header,
	}, nil)
	if err != nil {
		return nil, err
	}

	return &CancelJobResult{JobID: args.JobID, OpcRequestID: res.OpcRequestID()}, nil
}

type GetJobLogsArgs struct {
	JobID     string
	Type      []string
	LevelGTE  string
	SortOrder string
	Limit     int
	Page      string
}

type GetJobLogsResult struct {
	Entries      []LogEntry
	NextPage     string
	OpcRequestID string
}

func (c *Client) GetJobLogs(ctx context.Context, args *GetJobLogsArgs) (*GetJobLogsResult, error) {
	if args == nil {
		return nil, resttr.RequireParam("jobId", "")
	}
	if err := resttr.RequireParam("jobId", args.JobID); err != nil {
		return nil, err
	}
	if err := resttr.ValidateEnum("levelGreaterThanOrEqualTo", args.LevelGTE, "TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"); err != nil {
		return nil, err
	}
	if err := resttr.ValidateEnum("sortOrder", args.SortOrder, sortOrders...); err != nil {
		return nil, err
	}

	query := url.Values{}
	resttr.AddQuery(query, "type", args.Type)
	resttr.AddQuery(query, "levelGreaterThanOrEqualTo", args.LevelGTE)
	resttr.AddQuery(query, "sortOrder", args.SortOrder)
	resttr.AddQuery(query, "limit", args.Limit)
	resttr.AddQuery(query, "page", args.Page)

	var entries []LogEntry
	res, err := c.rest.Call(ctx, &resttr.Request{
		Method:     http.MethodGet,
		Path:       apiVersion + "/jobs/{jobId}/logs",
		PathParams: map[string]string{"jobId": args.JobID},
		Query:      query,
	}, &entries)
	if err != nil {
		return nil, err
	}

	return &GetJobLogsResult{Entries: entries, NextPage: res.OpcNextPage(), OpcRequestID: res.OpcRequestID()}, nil
}

type GetJobTfStateArgs struct {
	JobID        string
	OpcRequestID string
}

type GetJobTfStateResult struct {
	// Content is the Terraform state file; the caller closes it.
	Content       io.ReadCloser
	ContentLength int64
	OpcRequestID  string
}

func (c *Client) GetJobTfState(ctx context.Context, args *GetJobTfStateArgs) (*GetJobTfStateResult, error) {
	if args == nil {
		return nil, resttr.RequireParam("jobId", "")
	}
	if err := resttr.RequireParam("jobId", args.JobID); err != nil {
		return nil, err
	}

	header := http.Header{}
	resttr.SetHeader(header, resttr.HeaderOpcRequestID, args.OpcRequestID)
	header.Set("Accept", "application/octet-stream")

	res, err := c.rest.Stream(ctx, &resttr.Request{
		Method:     http.MethodGet,
		Path:       apiVersion + "/jobs/{jobId}/tfState",
		PathParams: map[string]string{"jobId": args.JobID},
		Header:     header,
	})
	if err != nil {
		return nil, err
	}

	return &GetJobTfStateResult{
		Content:       res.Body,
		ContentLength: contentLength(res.Header),
		OpcRequestID:  res.OpcRequestID(),
	}, nil
}
