package resttr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client performs calls against one management API endpoint.
type Client struct {
	endpoint   *url.URL
	httpClient *http.Client
	userAgent  string
	log        *zap.Logger
}

func NewClient(endpoint string, opts ...ClientOption) (*Client, error) {
	base, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("cannot parse endpoint %q: %w", endpoint, err)
	}
	if !base.IsAbs() || base.Host == "" {
		return nil, fmt.Errorf("endpoint %q must be an absolute url", endpoint)
	}

	options := defaultClientOptions()
	for _, opt := range opts {
		opt(options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: options.transport,
			Timeout:   options.timeout,
		}
	}

	return &Client{
		endpoint:   base,
		httpClient: httpClient,
		userAgent:  options.userAgent,
		log:        options.log,
	}, nil
}

func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// Call sends req and decodes a JSON response body into out when out is not nil.
func (c *Client) Call(ctx context.Context, req *Request, out any) (*Response, error) {
	res, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = res.Body.Close()
	}()

	response := &Response{StatusCode: res.StatusCode, Header: res.Header}
	if out == nil || res.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, res.Body)
		return response, nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("cannot decode %s %s response: %w", req.Method, req.Path, err)
	}
	return response, nil
}

// Stream sends req and hands the raw response body to the caller.
func (c *Client) Stream(ctx context.Context, req *Request) (*Response, error) {
	res, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: res.StatusCode,
		Header:     res.Header,
		Body:       res.Body,
	}, nil
}

func (c *Client) do(ctx context.Context, req *Request) (*http.Response, error) {
	if req == nil {
		return nil, errors.New("request is nil")
	}

	path, err := expandPath(req.Path, req.PathParams)
	if err != nil {
		return nil, err
	}

	target := c.endpoint.JoinPath(path)
	if len(req.Query) > 0 {
		target.RawQuery = req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		if r, ok := req.Body.(io.Reader); ok {
			body = r
		} else {
			payload, err := json.Marshal(req.Body)
			if err != nil {
				return nil, fmt.Errorf("cannot marshal %s %s request body: %w", req.Method, req.Path, err)
			}
			body = bytes.NewReader(payload)
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("cannot create %s %s request: %w", req.Method, req.Path, err)
	}

	for name, values := range req.Header {
		for _, value := range values {
			httpReq.Header.Add(name, value)
		}
	}
	if httpReq.Header.Get("Accept") == "" {
		httpReq.Header.Set("Accept", "application/json")
	}
	if body != nil && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if httpReq.Header.Get(HeaderOpcRequestID) == "" {
		httpReq.Header.Set(HeaderOpcRequestID, strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")))
	}
	httpReq.Header.Set("User-Agent", c.userAgent)

	log := c.log.With(
		zap.String("method", req.Method),
		zap.String("url", target.String()),
		zap.String("opc_request_id", httpReq.Header.Get(HeaderOpcRequestID)),
	)
	log.Debug("sending request")

	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("cannot send %s %s request: %w", req.Method, req.Path, err)
	}

	log.Debug("received response", zap.Int("status", res.StatusCode))

	if res.StatusCode < 200 || res.StatusCode > 299 {
		defer func() {
			_ = res.Body.Close()
		}()
		return nil, decodeServiceError(res)
	}

	return res, nil
}

func decodeServiceError(res *http.Response) error {
	serviceErr := &ServiceError{
		StatusCode:   res.StatusCode,
		OpcRequestID: res.Header.Get(HeaderOpcRequestID),
	}

	payload, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err == nil && len(payload) > 0 {
		if json.Unmarshal(payload, serviceErr) != nil {
			serviceErr.Message = strings.TrimSpace(string(payload))
		}
	}
	if serviceErr.Code == "" {
		serviceErr.Code = http.StatusText(res.StatusCode)
	}

	return serviceErr
}
