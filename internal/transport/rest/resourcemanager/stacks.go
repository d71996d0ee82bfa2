package rmapi

import (
	"context"
	"io"
	"net/http"
	"net/url"

	resttr "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest"
)

type CreateStackArgs struct {
	Details       *CreateStackDetails
	OpcRetryToken string
	OpcRequestID  string
}

type CreateStackResult struct {
	Stack        *Stack
	ETag         string
	OpcRequestID string
}

func (c *Client) CreateStack(ctx context.Context, args *CreateStackArgs) (*CreateStackResult, error) {
	if args == nil {
		return nil, resttr.MissingParam("createStackDetails")
	}
	if err := resttr.RequireBody("createStackDetails", args.Details); err != nil {
		return nil, err
	}
	if err := resttr.RequireParam("compartmentId", args.Details.CompartmentID); err != nil {
		return nil, err
	}
	if err := resttr.RequireBody("configSource", args.Details.ConfigSource); err != nil {
		return nil, err
	}

	header := http.Header{}
	resttr.SetHeader(header, resttr.HeaderOpcRequestID, args.OpcRequestID)
	resttr.SetHeader(header, resttr.HeaderOpcRetryToken, resttr.RetryToken(args.OpcRetryToken))

	var stack Stack
	res, err := c.rest.Call(ctx, &resttr.Request{
		Method: http.MethodPost,
		Path:   apiVersion + "/stacks",
		Header: header,
		Body:   args.Details,
	}, &stack)
	if err != nil {
		return nil, err
	}

	return &CreateStackResult{Stack: &stack, ETag: res.ETag(), OpcRequestID: res.OpcRequestID()}, nil
}

type GetStackArgs struct {
	StackID      string
	OpcRequestID string
}

type GetStackResult struct {
	Stack        *Stack
	ETag         string
	OpcRequestID string
}

func (c *Client) GetStack(ctx context.Context, args *GetStackArgs) (*GetStackResult, error) {
	if args == nil {
		return nil, resttr.RequireParam("stackId", "")
	}
	if err := resttr.RequireParam("stackId", args.StackID); err != nil {
		return nil, err
	}

	header := http.Header{}
	resttr.SetHeader(header, resttr.HeaderOpcRequestID, args.OpcRequestID)

	var stack Stack
	res, err := c.rest.Call(ctx, &resttr.Request{
		Method:     http.MethodGet,
		Path:       apiVersion + "/stacks/{stackId}",
		PathParams: map[string]string{"stackId": args.StackID},
		Header:     header,
	}, &stack)
	if err != nil {
		return nil, err
	}

	return &GetStackResult{Stack: &stack, ETag: res.ETag(), OpcRequestID: res.OpcRequestID()}, nil
}

type ListStacksArgs struct {
	CompartmentID  string
	ID             string
	LifecycleState string
	DisplayName    string
	SortBy         string
	SortOrder      string
	Limit          int
	Page           string
}

type ListStacksResult struct {
	Stacks       []StackSummary
	NextPage     string
	OpcRequestID string
}

func (c *Client) ListStacks(ctx context.Context, args *ListStacksArgs) (*ListStacksResult, error) {
	if args == nil {
		args = &ListStacksArgs{}
	}
	if err := resttr.ValidateEnum("lifecycleState", args.LifecycleState, stackLifecycleStates...); err != nil {
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
	resttr.AddQuery(query, "id", args.ID)
	resttr.AddQuery(query, "lifecycleState", args.LifecycleState)
	resttr.AddQuery(query, "displayName", args.DisplayName)
	resttr.AddQuery(query, "sortBy", args.SortBy)
	resttr.AddQuery(query, "sortOrder", args.SortOrder)
	resttr.AddQuery(query, "limit", args.Limit)
	resttr.AddQuery(query, "page", args.Page)

	var stacks []StackSummary
	res, err := c.rest.Call(ctx, &resttr.Request{
		Method: http.MethodGet,
		Path:   apiVersion + "/stacks",
		Query:  query,
	}, &stacks)
	if err != nil {
		return nil, err
	}

	return &ListStacksResult{Stacks: stacks, NextPage: res.OpcNextPage(), OpcRequestID: res.OpcRequestID()}, nil
}

type UpdateStackArgs struct {
	StackID      string
	Details      *UpdateStackDetails
	IfMatch      string
	OpcRequestID string
}

type UpdateStackResult struct {
	Stack        *Stack
	ETag         string
	OpcRequestID string
}

func (c *Client) UpdateStack(ctx context.Context, args *UpdateStackArgs) (*UpdateStackResult, error) {
	if args == nil {
		return nil, resttr.RequireParam("stackId", "")
	}
	if err := resttr.RequireParam("stackId", args.StackID); err != nil {
		return nil, err
	}
	if err := resttr.RequireBody("updateStackDetails", args.Details); err != nil {
		return nil, err
	}

	header := http.Header{}
	resttr.SetHeader(header, resttr.HeaderOpcRequestID, args.OpcRequestID)
	resttr.SetHeader(header, resttr.HeaderIfMatch, args.IfMatch)

	var stack Stack
	res, err := c.rest.Call(ctx, &resttr.Request{
		Method:     http.MethodPut,
		Path:       apiVersion + "/stacks/{stackId}",
		PathParams: map[string]string{"stackId": args.StackID},
		Header:     header,
		Body:       args.Details,
	}, &stack)
	if err != nil {
		return nil, err
	}

	return &UpdateStackResult{Stack: &stack, ETag: res.ETag(), OpcRequestID: res.OpcRequestID()}, nil
}

type DeleteStackArgs struct {
	StackID      string
	IfMatch      string
	OpcRequestID string
}

type DeleteStackResult struct {
	StackID      string
	OpcRequestID string
}

func (c *Client) DeleteStack(ctx context.Context, args *DeleteStackArgs) (*DeleteStackResult, error) {
	if args == nil {
		return nil, resttr.RequireParam("stackId", "")
	}
	if err := resttr.RequireParam("stackId", args.StackID); err != nil {
		return nil, err
	}

	header := http.Header{}
	resttr.SetHeader(header, resttr.HeaderOpcRequestID, args.OpcRequestID)
	resttr.SetHeader(header, resttr.HeaderIfMatch, args.IfMatch)

	res, err := c.rest.Call(ctx, &resttr.Request{
		Method:     http.MethodDelete,
		Path:       apiVersion + "/stacks/{stackId}",
		PathParams: map[string]string{"stackId": args.StackID},
		Header:     header,
	}, nil)
	if err != nil {
		return nil, err
	}

	return &DeleteStackResult{StackID: args.StackID, OpcRequestID: res.OpcRequestID()}, nil
}

type ChangeStackCompartmentArgs struct {
	StackID       string
	Details       *ChangeStackCompartmentDetails
	IfMatch       string
	OpcRetryToken string
	OpcRequestID  string
}

type ChangeStackCompartmentResult struct {
	OpcWorkRequestID string
	OpcRequestID     string
}

func (c *Client) ChangeStackCompartment(ctx context.Context, args *ChangeStackCompartmentArgs) (*ChangeStackCompartmentResult, error) {
	if args == nil {
		return nil, resttr.RequireParam("stackId", "")
	}
	if err := resttr.RequireParam("stackId", args.StackID); err != nil {
		return nil, err
	}
	if err := resttr.RequireBody("changeStackCompartmentDetails", args.Details); err != nil {
		return nil, err
	}
	if err := resttr.RequireParam("compartmentId", args.Details.CompartmentID); err != nil {
		return nil, err
	}

	header := http.Header{}
	resttr.SetHeader(header, resttr.HeaderOpcRequestID, args.OpcRequestID)
	resttr.SetHeader(header, resttr.HeaderIfMatch, args.IfMatch)
	resttr.SetHeader(header, resttr.HeaderOpcRetryToken, resttr.RetryToken(args.OpcRetryToken))

	res, err := c.rest.Call(ctx, &resttr.Request{
		Method:     http.MethodPost,
		Path:       apiVersion + "/stacks/{stackId}/actions/changeCompartment",
		PathParams: map[string]string{"stackId": args.StackID},
		Header:     header,
		Body:       args.Details,
	}, nil)
	if err != nil {
		return nil, err
	}

	return &ChangeStackCompartmentResult{OpcWorkRequestID: res.OpcWorkRequestID(), OpcRequestID: res.OpcRequestID()}, nil
}

type GetStackTfConfigArgs struct {
	StackID      string
	OpcRequestID string
}

type GetStackTfConfigResult struct {
	// Content is the zipped Terraform configuration; the caller closes it.
	Content      io.ReadCloser
	OpcRequestID string
}

func (c *Client) GetStackTfConfig(ctx context.Context, args *GetStackTfConfigArgs) (*GetStackTfConfigResult, error) {
	if args == nil {
		return nil, resttr.RequireParam("stackId", "")
	}
	if err := resttr.RequireParam("stackId", args.StackID); err != nil {
		return nil, err
	}

	header := http.Header{}
	resttr.SetHeader(header, resttr.HeaderOpcRequestID, args.OpcRequestID)
	header.Set("Accept", "application/zip")

	res, err := c.rest.Stream(ctx, &resttr.Request{
		Method:     http.MethodGet,
		Path:       apiVersion + "/stacks/{stackId}/tfConfig",
		PathParams: map[string]string{"stackId": args.StackID},
		Header:     header,
	})
	if err != nil {
		return nil, err
	}

	return &GetStackTfConfigResult{Content: res.Body, OpcRequestID: res.OpcRequestID()}, nil
}
