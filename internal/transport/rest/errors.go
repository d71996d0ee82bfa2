package resttr

import (
	"fmt"
	"net/http"

	"github.com/containerd/errdefs"
)

// ServiceError is a non-2xx answer of a management API.
type ServiceError struct {
	StatusCode   int    `json:"-"`
	Code         string `json:"code"`
	Message      string `json:"message"`
	OpcRequestID string `json:"-"`
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("service error: status=%d code=%s message=%q opc-request-id=%s",
		e.StatusCode, e.Code, e.Message, e.OpcRequestID)
}

// Unwrap classifies the error so callers can use errdefs.IsNotFound and friends.
func (e *ServiceError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return errdefs.ErrInvalidArgument
	case http.StatusUnauthorized:
		return errdefs.ErrUnauthenticated
	case http.StatusForbidden:
		return errdefs.ErrPermissionDenied
	case http.StatusNotFound:
		return errdefs.ErrNotFound
	case http.StatusConflict:
		return errdefs.ErrConflict
	case http.StatusPreconditionFailed:
		return errdefs.ErrFailedPrecondition
	case http.StatusTooManyRequests:
		return errdefs.ErrResourceExhausted
	case http.StatusNotImplemented:
		return errdefs.ErrNotImplemented
	case http.StatusServiceUnavailable:
		return errdefs.ErrUnavailable
	}
	if e.StatusCode >= 500 {
		return errdefs.ErrInternal
	}
	return errdefs.ErrUnknown
}
