package cliutil

import (
	sdkapp "github.com/oracle/oci-go-sdk-sub024/internal/app/sdk"
	waitdomain "github.com/oracle/oci-go-sdk-sub024/internal/domains/waiter"
	sliceutils "github.com/oracle/oci-go-sdk-sub024/pkg/slices"
	"github.com/spf13/cobra"
)

type WaitFlags struct {
	States          []string
	MaxWaitSeconds  int
	IntervalSeconds int
}

func (f *WaitFlags) Register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.States, "wait-for-state", nil, "Wait until the resource reaches this state; repeatable")
	cmd.Flags().IntVar(&f.MaxWaitSeconds, "max-wait-seconds", 0, "Maximum time to wait, 0 uses the configured value")
	cmd.Flags().IntVar(&f.IntervalSeconds, "wait-interval-seconds", 0, "Maximum time between polls, 0 uses the configured value")
}

func (f *WaitFlags) TargetStates() []string {
	return sliceutils.Compact(f.States)
}

func (f *WaitFlags) Config(app *sdkapp.App) waitdomain.WaitConfig {
	return app.Config().WaitConfig(f.IntervalSeconds, f.MaxWaitSeconds)
}
