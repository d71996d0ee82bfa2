package cliutil_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/oracle/oci-go-sdk-sub024/cmd/oci-cli/cliutil"
	waitdomain "github.com/oracle/oci-go-sdk-sub024/internal/domains/waiter"
	compositesrv "github.com/oracle/oci-go-sdk-sub024/internal/services/composite"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

type mutation struct {
	ID string `json:"id"`
}

func newCommand() (*cobra.Command, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	return cmd, out
}

func TestPrintComposite(t *testing.T) {
	t.Run("ok: latest snapshot", func(t *testing.T) {
		cmd, out := newCommand()
		res := &compositesrv.Result[*mutation]{
			Mutation: &mutation{ID: "stack-1"},
			Wait: &waitdomain.WaitForStateResult{
				Outcome:  waitdomain.OutcomeMatched,
				Snapshot: &waitdomain.StatusSnapshot{Status: "ACTIVE", Payload: map[string]string{"state": "ACTIVE"}},
			},
		}

		require.NoError(t, cliutil.PrintComposite(cmd, res, nil))
		require.JSONEq(t, `{"state":"ACTIVE"}`, out.String())
	})

	t.Run("ok: mutation when nothing was polled", func(t *testing.T) {
		cmd, out := newCommand()
		res := &compositesrv.Result[*mutation]{
			Mutation: &mutation{ID: "stack-1"},
			Wait:     &waitdomain.WaitForStateResult{Outcome: waitdomain.OutcomeSkipped},
		}

		require.NoError(t, cliutil.PrintComposite(cmd, res, nil))
		require.JSONEq(t, `{"id":"stack-1"}`, out.String())
	})

	t.Run("error: partial result is printed", func(t *testing.T) {
		cmd, out := newCommand()
		err := waitdomain.NewCompositeOperationError(&mutation{ID: "stack-1"}, waitdomain.ErrTimeout)

		got := cliutil.PrintComposite[*mutation](cmd, nil, err)
		require.ErrorIs(t, got, waitdomain.ErrTimeout)
		require.JSONEq(t, `{"id":"stack-1"}`, out.String())
	})

	t.Run("error: mutation failure", func(t *testing.T) {
		cmd, out := newCommand()
		wantErr := errors.New("conflict")

		require.ErrorIs(t, cliutil.PrintComposite[*mutation](cmd, nil, wantErr), wantErr)
		require.Empty(t, out.String())
	})
}

func TestWaitFlags(t *testing.T) {
	cmd := &cobra.Command{}
	var wait cliutil.WaitFlags
	wait.Register(cmd)

	require.NoError(t, cmd.ParseFlags([]string{
		"--wait-for-state", "ACTIVE",
		"--wait-for-state", "",
		"--wait-for-state", "FAILED",
		"--max-wait-seconds", "60",
	}))
	require.Equal(t, []string{"ACTIVE", "FAILED"}, wait.TargetStates())
	require.Equal(t, 60, wait.MaxWaitSeconds)
	require.Zero(t, wait.IntervalSeconds)
}
