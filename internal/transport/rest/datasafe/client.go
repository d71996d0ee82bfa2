package dsapi

import (
	"fmt"
	"net/http"
	"strconv"

	resttr "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest"
)

const (
	ServiceName = "datasafe"
	apiVersion  = "/20181201"
)

// Client is the client of the Data Safe API. Every mutation is asynchronous
// and reports a work request id.
type Client struct {
	rest *resttr.Client
}

func NewClient(endpoint string, opts ...resttr.ClientOption) (*Client, error) {
	rest, err := resttr.NewClient(endpoint, opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create data safe client: %w", err)
	}
	return &Client{rest: rest}, nil
}

func NewClientForRegion(region string, opts ...resttr.ClientOption) (*Client, error) {
	return NewClient(resttr.RegionalEndpoint(ServiceName, region), opts...)
}

func (c *Client) Endpoint() string {
	return c.rest.Endpoint()
}

func contentLength(header http.Header) int64 {
	n, err := strconv.ParseInt(header.Get("Content-Length"), 10, 64)
	if err != nil {
		return -1
	}
	return n
}
