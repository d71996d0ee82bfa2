package dsapi

import (
	"context"
	"io"
	"net/http"
	"net/url"

	resttr "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest"
)

type CreateOnPremConnectorArgs struct {
	Details       *CreateOnPremConnectorDetails
	OpcRetryToken string
	OpcRequestID  string
}

type CreateOnPremConnectorResult struct {
	OnPremConnector  *OnPremConnector
	ETag             string
	OpcWorkRequestID string
	OpcRequestID     string
}

func (c *Client) CreateOnPremConnector(ctx context.Context, args *CreateOnPremConnectorArgs) (*CreateOnPremConnectorResult, error) {
	if args == nil {
		return nil, resttr.MissingParam("createOnPremConnectorDetails")
	}
	if err := resttr.RequireBody("createOnPremConnectorDetails", args.Details); err != nil {
		return nil, err
	}
	if err := resttr.RequireParam("compartmentId", args.Details.CompartmentID); err != nil {
		return nil, err
	}

	header := http.Header{}
	resttr.SetHeader(header, resttr.HeaderOpcRequestID, args.OpcRequestID)
	resttr.SetHeader(header, resttr.HeaderOpcRetryToken, resttr.RetryToken(args.OpcRetryToken))

	var connector OnPremConnector
	res, err := c.rest.Call(ctx, &resttr.Request{
		Method: http.MethodPost,
		Path:   apiVersion + "/onPremConnectors",
		Header: header,
		Body:   args.Details,
	}, &connector)
	if err != nil {
		return nil, err
	}

	return &CreateOnPremConnectorResult{
		OnPremConnector:  &connector,
		ETag:             res.ETag(),
		OpcWorkRequestID: res.OpcWorkRequestID(),
		OpcRequestID:     res.OpcRequestID(),
	}, nil
}

type GetOnPremConnectorArgs struct {
	OnPremConnectorID string
	OpcRequestID      string
}

type GetOnPremConnectorResult struct {
	OnPremConnector *OnPremConnector
	ETag            string
	OpcRequestID    string
}

func (c *Client) GetOnPremConnector(ctx context.Context, args *GetOnPremConnectorArgs) (*GetOnPremConnectorResult, error) {
	if args == nil {
		return nil, resttr.RequireParam("onPremConnectorId", "")
	}
	if err := resttr.RequireParam("onPremConnectorId", args.OnPremConnectorID); err != nil {
		return nil, err
	}

	header := http.Header{}
	resttr.SetHeader(header, resttr.HeaderOpcRequestID, args.OpcRequestID)

	var connector OnPremConnector
	res, err := c.rest.Call(ctx, &resttr.Request{
		Method:     http.MethodGet,
		Path:       apiVersion + "/onPremConnectors/{onPremConnectorId}",
		PathParams: map[string]string{"onPremConnectorId": args.OnPremConnectorID},
		Header:     header,
	}, &connector)
	if err != nil {
		return nil, err
	}

	return &GetOnPremConnectorResult{OnPremConnector: &connector, ETag: res.ETag(), OpcRequestID: res.OpcRequestID()}, nil
}

type ListOnPremConnectorsArgs struct {
	CompartmentID  string
	ID             string
	DisplayName    string
	LifecycleState string
	SortBy         string
	SortOrder      string
	Limit          int
	Page           string
}

type ListOnPremConnectorsResult struct {
	OnPremConnectors []OnPremConnectorSummary
	NextPage         string
	OpcRequestID     string
}

func (c *Client) ListOnPremConnectors(ctx context.Context, args *ListOnPremConnectorsArgs) (*ListOnPremConnectorsResult, error) {
	if args == nil {
		return nil, resttr.RequireParam("compartmentId", "")
	}
	if err := resttr.RequireParam("compartmentId", args.CompartmentID); err != nil {
		return nil, err
	}
	if err := resttr.ValidateEnum("onPremConnectorLifecycleState", args.LifecycleState, onPremConnectorLifecycleStates...); err != nil {
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
	resttr.AddQuery(query, "onPremConnectorId", args.ID)
	resttr.AddQuery(query, "displayName", args.DisplayName)
	resttr.AddQuery(query, "onPremConnectorLifecycleState", args.LifecycleState)
	resttr.AddQuery(query, "sortBy", args.SortBy)
	resttr.AddQuery(query, "sortOrder", args.SortOrder)
	resttr.AddQuery(query, "limit", args.Limit)
	resttr.AddQuery(query, "page", args.Page)

	var connectors []OnPremConnectorSummary
	res, err := c.rest.Call(ctx, &resttr.Request{
		Method: http.MethodGet,
		Path:   apiVersion + "/onPremConnectors",
		Query:  query,
	}, &connectors)
	if err != nil {
		return nil, err
	}

	return &ListOnPremConnectorsResult{OnPremConnectors: connectors, NextPage: res.OpcNextPage(), OpcRequestID: res.OpcRequestID()}, nil
}

type UpdateOnPremConnectorArgs struct {
	OnPremConnectorID string
	Details           *UpdateOnPremConnectorDetails
	IfMatch           string
	OpcRequestID      string
}

// WorkRequestResult is returned by every mutation that only reports the work
// request tracking it.
type WorkRequestResult struct {
	ResourceID       string
	OpcWorkRequestID string
	OpcRequestID     string
}

func (c *Client) UpdateOnPremConnector(ctx context.Context, args *UpdateOnPremConnectorArgs) (*WorkRequestResult, error) {
	if args == nil {
		return nil, resttr.RequireParam("onPremConnectorId", "")
	}
	if err := resttr.RequireParam("onPremConnectorId", args.OnPremConnectorID); err != nil {
		return nil, err
	}
	if err := resttr.RequireBody("updateOnPremConnectorDetails", args.Details); err != nil {
		return nil, err
	}

	header := http.Header{}
	resttr.SetHeader(header, resttr.HeaderOpcRequestID, args.OpcRequestID)
	resttr.SetHeader(header, resttr.HeaderIfMatch, args.IfMatch)

	return c.workRequestCall(ctx, args.OnPremConnectorID, &resttr.Request{
		Method:     http.MethodPut,
		Path:       apiVersion + "/onPremConnectors/{onPremConnectorId}",
		PathParams: map[string]string{"onPremConnectorId": args.OnPremConnectorID},
		Header:     header,
		Body:       args.Details,
	})
}

type DeleteOnPremConnectorArgs struct {
	OnPremConnectorID string
	IfMatch           string
	OpcRequestID      string
}

func (c *Client) DeleteOnPremConnector(ctx context.Context, args *DeleteOnPremConnectorArgs) (*WorkRequestResult, error) {
	if args == nil {
		return nil, resttr.RequireParam("onPremConnectorId", "")
	}
	if err := resttr.RequireParam("onPremConnectorId", args.OnPremConnectorID); err != nil {
		return nil, err
	}

	header := http.Header{}
	resttr.SetHeader(header, resttr.HeaderOpcRequestID, args.OpcRequestID)
	resttr.SetHeader(header, resttr.HeaderIfMatch, args.IfMatch)

	return c.workRequestCall(ctx, args.OnPremConnectorID, &resttr.Request{
		Method:     http.MethodDelete,
		Path:       apiVersion + "/onPremConnectors/{onPremConnectorId}",
		PathParams: map[string]string{"onPremConnectorId": args.OnPremConnectorID},
		Header:     header,
	})
}

type ChangeOnPremConnectorCompartmentArgs struct {
	OnPremConnectorID string
	Details           *ChangeOnPremConnectorCompartmentDetails
	IfMatch           string
	OpcRetryToken     string
	OpcRequestID      string
}

func (c *Client) ChangeOnPremConnectorCompartment(ctx context.Context, args *ChangeOnPremConnectorCompartmentArgs) (*WorkRequestResult, error) {
	if args == nil {
		return nil, resttr.RequireParam("onPremConnectorId", "")
	}
	if err := resttr.RequireParam("onPremConnectorId", args.OnPremConnectorID); err != nil {
		return nil, err
	}
	if err := resttr.RequireBody("changeOnPremConnectorCompartmentDetails", args.Details); err != nil {
		return nil, err
	}

	header := http.Header{}
	resttr.SetHeader(header, resttr.HeaderOpcRequestID, args.OpcRequestID)
	resttr.SetHeader(header, resttr.HeaderIfMatch, args.IfMatch)
	resttr.SetHeader(header, resttr.HeaderOpcRetryToken, resttr.RetryToken(args.OpcRetryToken))

	return c.workRequestCall(ctx, args.OnPremConnectorID, &resttr.Request{
		Method:     http.MethodPost,
		Path:       apiVersion + "/onPremConnectors/{onPremConnectorId}/actions/changeCompartment",
		PathParams: map[string]string{"onPremConnectorId": args.OnPremConnectorID},
		Header:     header,
		Body:       args.Details,
	})
}

type GenerateOnPremConnectorConfigurationArgs struct {
	OnPremConnectorID string
	Details           *GenerateOnPremConnectorConfigurationDetails
	IfMatch           string
	OpcRetryToken     string
	OpcRequestID      string
}

type GenerateOnPremConnectorConfigurationResult struct {
	// Content is the zipped connector bundle; the caller closes it.
	Content       io.ReadCloser
	ContentLength int64
	ETag          string
	OpcRequestID  string
}

func (c *Client) GenerateOnPremConnectorConfiguration(ctx context.Context, args *GenerateOnPremConnectorConfigurationArgs) (*GenerateOnPremConnectorConfigurationResult, error) {
	if args == nil {
		return nil, resttr.RequireParam("onPremConnectorId", "")
	}
	if err := resttr.RequireParam("onPremConnectorId", args.OnPremConnectorID); err != nil {
		return nil, err
	}
	if err := resttr.RequireBody("generateOnPremConnectorConfigurationDetails", args.Details); err != nil {
		return nil, err
	}
	if err := resttr.RequireParam("password", args.Details.Password); err != nil {
		return nil, err
	}

	header := http.Header{}
	resttr.SetHeader(header, resttr.HeaderOpcRequestID, args.OpcRequestID)
	resttr.SetHeader(header, resttr.HeaderIfMatch, args.IfMatch)
	resttr.SetHeader(header, resttr.HeaderOpcRetryToken, resttr.RetryToken(args.OpcRetryToken))
	header.Set("Accept", "application/octet-stream")

	res, err := c.rest.Stream(ctx, &resttr.Request{
		Method:     http.MethodPost,
		Path:       apiVersion + "/onPremConnectors/{onPremConnectorId}/actions/generateConfiguration",
		PathParams: map[string]string{"onPremConnectorId": args.OnPremConnectorID},
		Header:     header,
		Body:       args.Details,
	})
	if err != nil {
		return nil, err
	}

	return &GenerateOnPremConnectorConfigurationResult{
		Content:       res.Body,
		ContentLength: contentLength(res.Header),
		ETag:          res.ETag(),
		OpcRequestID:  res.OpcRequestID(),
	}, nil
}

func (c *Client) workRequestCall(ctx context.Context, resourceID string, req *resttr.Request) (*WorkRequestResult, error) {
	res, err := c.rest.Call(ctx, req, nil)
	if err != nil {
		return nil, err
	}

	return &WorkRequestResult{
		ResourceID:       resourceID,
		OpcWorkRequestID: res.OpcWorkRequestID(),
		OpcRequestID:     res.OpcRequestID(),
	}, nil
}
