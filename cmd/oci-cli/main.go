package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	assessmentcmd "github.com/oracle/oci-go-sdk-sub024/cmd/oci-cli/assessments"
	"github.com/oracle/oci-go-sdk-sub024/cmd/oci-cli/cliutil"
	connectorcmd "github.com/oracle/oci-go-sdk-sub024/cmd/oci-cli/connectors"
	jobcmd "github.com/oracle/oci-go-sdk-sub024/cmd/oci-cli/jobs"
	stackcmd "github.com/oracle/oci-go-sdk-sub024/cmd/oci-cli/stacks"
	workrequestcmd "github.com/oracle/oci-go-sdk-sub024/cmd/oci-cli/workrequests"
	waitdomain "github.com/oracle/oci-go-sdk-sub024/internal/domains/waiter"
	errorutils "github.com/oracle/oci-go-sdk-sub024/pkg/errors"
	"github.com/spf13/cobra"
)

var exitCodes = map[error]int{
	waitdomain.ErrTimeout:      2,
	waitdomain.ErrFailureState: 3,
	waitdomain.ErrWaitCanceled: 130,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var configPath, env string

	rootCmd := &cobra.Command{
		Use:               "oci",
		Short:             "Tool for OCI Resource Manager and Data Safe",
		Long:              "Tool for managing Resource Manager stacks and jobs and Data Safe connectors and assessments, optionally waiting for every change to settle.",
		SilenceUsage:      true,
		PersistentPreRunE: cliutil.Bootstrap(&configPath, &env),
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&env, "env", "", "Launch environment: prod, dev or quiet")
	errorutils.Try(rootCmd.MarkPersistentFlagFilename("config", "yaml", "yml"))

	rootCmd.AddCommand(
		stackcmd.NewStacksGroup(),
		jobcmd.NewJobsGroup(),
		connectorcmd.NewConnectorsGroup(),
		assessmentcmd.NewAssessmentsGroup(),
		workrequestcmd.NewWorkRequestsGroup(),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(errorutils.ExitCode(err, exitCodes))
	}
}
