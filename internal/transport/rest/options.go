package resttr

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultUserAgent = "oci-go-sdk-sub024"

type clientOptions struct {
	httpClient *http.Client
	transport  http.RoundTripper
	timeout    time.Duration
	userAgent  string
	log        *zap.Logger
}

type ClientOption func(co *clientOptions)

func defaultClientOptions() *clientOptions {
	return &clientOptions{
		userAgent: defaultUserAgent,
		timeout:   60 * time.Second,
		log:       zap.NewNop(),
	}
}

func WithHTTPClient(client *http.Client) ClientOption {
	return func(co *clientOptions) {
		co.httpClient = client
	}
}

func WithTransport(transport http.RoundTripper) ClientOption {
	return func(co *clientOptions) {
		co.transport = transport
	}
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(co *clientOptions) {
		co.timeout = timeout
	}
}

func WithUserAgent(userAgent string) ClientOption {
	return func(co *clientOptions) {
		if userAgent != "" {
			co.userAgent = userAgent
		}
	}
}

func WithLogger(log *zap.Logger) ClientOption {
	return func(co *clientOptions) {
		if log != nil {
			co.log = log
		}
	}
}
