package waitdomain_test

import (
	"errors"
	"testing"
	"time"

	waitdomain "github.com/oracle/oci-go-sdk-sub024/internal/domains/waiter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperationHandle(t *testing.T) {
	t.Run("error: empty", func(t *testing.T) {
		_, err := waitdomain.ParseOperationHandle("")
		require.ErrorIs(t, err, waitdomain.ErrInvalidHandle)
	})

	t.Run("error: whitespace", func(t *testing.T) {
		_, err := waitdomain.ParseOperationHandle("  \t")
		require.ErrorIs(t, err, waitdomain.ErrInvalidHandle)
	})

	t.Run("ok", func(t *testing.T) {
		h, err := waitdomain.ParseOperationHandle("ocid1.workrequest.oc1..aaaa")
		require.NoError(t, err)
		require.Equal(t, "ocid1.workrequest.oc1..aaaa", h.String())
	})
}

func TestAcceptanceSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		states []string
		status string
		want   bool
	}{
		{name: "upper matches mixed", states: []string{"Succeeded"}, status: "SUCCEEDED", want: true},
		{name: "lower matches mixed", states: []string{"Succeeded"}, status: "succeeded", want: true},
		{name: "same case", states: []string{"Succeeded"}, status: "Succeeded", want: true},
		{name: "other state", states: []string{"SUCCEEDED"}, status: "IN_PROGRESS", want: false},
		{name: "empty set never matches", states: nil, status: "SUCCEEDED", want: false},
		{name: "blank states ignored", states: []string{"", " "}, status: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			set := waitdomain.NewAcceptanceSet(tt.states...)
			assert.Equal(t, tt.want, set.Contains(tt.status))
		})
	}
}

func TestAcceptanceSet_States(t *testing.T) {
	set := waitdomain.NewAcceptanceSet("SUCCEEDED", "Failed", "succeeded")
	require.Equal(t, []string{"failed", "succeeded"}, set.States())
	require.False(t, set.Empty())
	require.True(t, waitdomain.AcceptanceSet{}.Empty())
}

func TestWaitConfig_WithDefaults(t *testing.T) {
	cfg := waitdomain.WaitConfig{}.WithDefaults()
	require.Equal(t, 30*time.Second, cfg.MaxInterval)
	require.Equal(t, 1200*time.Second, cfg.MaxWait)

	cfg = waitdomain.WaitConfig{MaxInterval: time.Second, MaxWait: -time.Second}.WithDefaults()
	require.Equal(t, time.Second, cfg.MaxInterval)
	require.Equal(t, waitdomain.DefaultMaxWait, cfg.MaxWait)
}

func TestWaitConfigFromSeconds(t *testing.T) {
	cfg := waitdomain.WaitConfigFromSeconds(5, 60, true)
	require.Equal(t, 5*time.Second, cfg.MaxInterval)
	require.Equal(t, time.Minute, cfg.MaxWait)
	require.True(t, cfg.SucceedOnNotFound)

	require.Equal(t, waitdomain.DefaultWaitConfig(), waitdomain.WaitConfigFromSeconds(0, 0, false))
}

func TestCompositeOperationError(t *testing.T) {
	partial := struct{ ID string }{ID: "ocid1.stack.oc1..aaaa"}
	err := waitdomain.NewCompositeOperationError(partial, waitdomain.ErrTimeout)

	require.ErrorIs(t, err, waitdomain.ErrTimeout)
	require.Contains(t, err.Error(), "timed out waiting for state")

	got, ok := waitdomain.PartialResult(err)
	require.True(t, ok)
	require.Equal(t, partial, got)

	_, ok = waitdomain.PartialResult(errors.New("plain"))
	require.False(t, ok)
}
