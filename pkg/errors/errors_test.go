package errorutils_test

import (
	"errors"
	"fmt"
	"testing"

	errorutils "github.com/oracle/oci-go-sdk-sub024/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTry(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() { errorutils.Try(nil) })
	require.PanicsWithError(t, "boom", func() { errorutils.Try(errors.New("boom")) })
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	errTimeout := errors.New("timeout")
	errFailed := errors.New("failed")
	codes := map[error]int{errTimeout: 2, errFailed: 3}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "unknown", err: errors.New("other"), want: 1},
		{name: "wrapped timeout", err: fmt.Errorf("wait: %w", errTimeout), want: 2},
		{name: "failure", err: errFailed, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, errorutils.ExitCode(tt.err, codes))
		})
	}
}
