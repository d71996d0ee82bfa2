package rmapi

import (
	"fmt"

	resttr "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest"
)

const (
	ServiceName = "resourcemanager"
	apiVersion  = "/20180917"
)

// Client is the client of the Resource Manager API: stacks, jobs and the
// work requests of asynchronous stack operations.
type Client struct {
	rest *resttr.Client
}

func NewClient(endpoint string, opts ...resttr.ClientOption) (*Client, error) {
	rest, err := resttr.NewClient(endpoint, opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create resource manager client: %w", err)
	}
	return &Client{rest: rest}, nil
}

func NewClientForRegion(region string, opts ...resttr.ClientOption) (*Client, error) {
	return NewClient(resttr.RegionalEndpoint(ServiceName, region), opts...)
}

func (c *Client) Endpoint() string {
	return c.rest.Endpoint()
}
