package resttr

import (
	"io"
	"net/http"
	"net/url"
)

type Request struct {
	Method     string
	Path       string
	PathParams map[string]string
	Query      url.Values
	Header     http.Header
	Body       any
}

type Response struct {
	StatusCode int
	Header     http.Header
	// Body is only set by Stream; the caller must close it.
	Body io.ReadCloser
}

func (r *Response) OpcRequestID() string {
	if r == nil {
		return ""
	}
	return r.Header.Get(HeaderOpcRequestID)
}

func (r *Response) OpcWorkRequestID() string {
	if r == nil {
		return ""
	}
	return r.Header.Get(HeaderOpcWorkRequestID)
}

func (r *Response) OpcNextPage() string {
	if r == nil {
		return ""
	}
	return r.Header.Get(HeaderOpcNextPage)
}

func (r *Response) ETag() string {
	if r == nil {
		return ""
	}
	return r.Header.Get(HeaderETag)
}
