package waitdomain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidHandle = errors.New("invalid operation handle")
	ErrFetchFailed   = errors.New("status fetch failed")
	ErrTimeout       = errors.New("timed out waiting for state")
	ErrFailureState  = errors.New("operation reached a failure state")
	ErrWaitCanceled  = errors.New("wait canceled")
)

// CompositeOperationError is returned when a mutation succeeded but waiting
// for its effect did not. PartialResult is the result of the mutation.
type CompositeOperationError struct {
	PartialResult any
	Err           error
}

func NewCompositeOperationError(partial any, err error) *CompositeOperationError {
	return &CompositeOperationError{PartialResult: partial, Err: err}
}

func (e *CompositeOperationError) Error() string {
	if e.Err == nil {
		return "composite operation failed"
	}
	return fmt.Sprintf("composite operation failed: %v", e.Err)
}

func (e *CompositeOperationError) Unwrap() error {
	return e.Err
}

// PartialResult extracts the partial result of a failed composite operation.
func PartialResult(err error) (any, bool) {
	var compositeErr *CompositeOperationError
	if !errors.As(err, &compositeErr) {
		return nil, false
	}
	return compositeErr.PartialResult, true
}
