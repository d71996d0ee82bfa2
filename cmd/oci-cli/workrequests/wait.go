package workrequestcmd

import (
	"fmt"

	"github.com/oracle/oci-go-sdk-sub024/cmd/oci-cli/cliutil"
	waitdomain "github.com/oracle/oci-go-sdk-sub024/internal/domains/waiter"
	waitsrv "github.com/oracle/oci-go-sdk-sub024/internal/services/waiter"
	sliceutils "github.com/oracle/oci-go-sdk-sub024/pkg/slices"
	"github.com/spf13/cobra"
)

type waitOutput struct {
	WorkRequestID string `json:"workRequestId"`
	Outcome       string `json:"outcome"`
	Status        string `json:"status,omitempty"`
	Polls         int    `json:"polls"`
	Elapsed       string `json:"elapsed"`
}

func NewWaitWorkRequestsCmd() *cobra.Command {
	var (
		service string
		failOn  []string
		wait    cliutil.WaitFlags
	)

	cmd := &cobra.Command{
		Use:   "wait WORK_REQUEST_ID...",
		Short: "Wait for several work requests at once",
		Long:  "Wait for several work requests at once. The first work request that fails or times out stops the others.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			fetcher, err := fetcherFor(app, service)
			if err != nil {
				return err
			}

			states := wait.TargetStates()
			if len(states) == 0 {
				states = []string{"SUCCEEDED"}
			}
			acceptable := waitdomain.NewAcceptanceSet(states...)
			failure := waitdomain.NewAcceptanceSet(failOn...)
			cfg := wait.Config(app)

			waits := sliceutils.Map(args, func(id string) *waitdomain.WaitForStateArgs {
				return &waitdomain.WaitForStateArgs{
					Handle:           id,
					AcceptableStates: acceptable,
					FailureStates:    failure,
					Fetcher:          fetcher,
					Config:           cfg,
				}
			})

			results, err := waitsrv.WaitAll(cmd.Context(), app.Waiter(), waits...)
			if err != nil {
				return fmt.Errorf("cannot wait for work requests: %w", err)
			}

			out := make([]waitOutput, len(results))
			for i, res := range results {
				out[i] = waitOutput{
					WorkRequestID: args[i],
					Outcome:       res.Outcome.String(),
					Polls:         res.Polls,
					Elapsed:       res.Elapsed.String(),
				}
				if res.Snapshot != nil {
					out[i].Status = res.Snapshot.Status
				}
			}
			return cliutil.PrintJSON(cmd, out)
		},
	}

	registerService(cmd, &service)
	cmd.Flags().StringArrayVar(&failOn, "fail-on-state", []string{"FAILED", "CANCELED"}, "Stop waiting with an error on this state; repeatable")
	wait.Register(cmd)

	return cmd
}
