package jobcmd

import (
	"fmt"
	"strings"

	"github.com/oracle/oci-go-sdk-sub024/cmd/oci-cli/cliutil"
	rmapi "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest/resourcemanager"
	"github.com/spf13/cobra"
)

func NewCreateJobCmd() *cobra.Command {
	var (
		stackID        string
		operation      string
		displayName    string
		planJobID      string
		autoApproved   bool
		useLatestJobID bool
		wait           cliutil.WaitFlags
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Run a plan, apply, destroy or import job on a stack",
		RunE: func(cmd *cobra.Command, args []string) error {
			if stackID == "" {
				return fmt.Errorf("--stack-id is required")
			}

			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			details := &rmapi.CreateJobDetails{
				StackID:     stackID,
				DisplayName: displayName,
				Operation:   strings.ToUpper(operation),
			}
			if details.Operation == rmapi.JobOperationApply {
				details.ApplyJobPlanResolution = &rmapi.ApplyJobPlanResolution{
					PlanJobID:        planJobID,
					IsUseLatestJobID: useLatestJobID,
					IsAutoApproved:   autoApproved,
				}
			}

			res, err := app.ResourceManagerComposite().CreateJobAndWaitForState(cmd.Context(), &rmapi.CreateJobArgs{
				Details: details,
			}, wait.TargetStates(), wait.Config(app))
			return cliutil.PrintComposite(cmd, res, err)
		},
	}

	cmd.Flags().StringVar(&stackID, "stack-id", "", "Stack OCID")
	cmd.Flags().StringVar(&operation, "operation", rmapi.JobOperationPlan, "PLAN, APPLY, DESTROY or IMPORT_TF_STATE")
	cmd.Flags().StringVar(&displayName, "display-name", "", "Display name")
	cmd.Flags().StringVar(&planJobID, "plan-job-id", "", "Plan job to apply")
	cmd.Flags().BoolVar(&autoApproved, "auto-approved", false, "Apply without a plan job")
	cmd.Flags().BoolVar(&useLatestJobID, "use-latest-plan", false, "Apply the latest plan job of the stack")
	wait.Register(cmd)

	return cmd
}

func NewUpdateJobCmd() *cobra.Command {
	var (
		jobID       string
		displayName string
		ifMatch     string
		wait        cliutil.WaitFlags
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a job",
		RunE: func(cmd *cobra.Command, args []string) error {
			if jobID == "" {
				return fmt.Errorf("--job-id is required")
			}

			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			res, err := app.ResourceManagerComposite().UpdateJobAndWaitForState(cmd.Context(), &rmapi.UpdateJobArgs{
				JobID:   jobID,
				IfMatch: ifMatch,
				Details: &rmapi.UpdateJobDetails{DisplayName: displayName},
			}, wait.TargetStates(), wait.Config(app))
			return cliutil.PrintComposite(cmd, res, err)
		},
	}

	cmd.Flags().StringVar(&jobID, "job-id", "", "Job OCID")
	cmd.Flags().StringVar(&displayName, "display-name", "", "New display name")
	cmd.Flags().StringVar(&ifMatch, "if-match", "", "Only update if the etag matches")
	wait.Register(cmd)

	return cmd
}

func NewCancelJobCmd() *cobra.Command {
	var (
		jobID   string
		force   bool
		ifMatch string
		wait    cliutil.WaitFlags
	)

	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel a running job",
		RunE: func(cmd *cobra.Command, args []string) error {
			if jobID == "" {
				return fmt.Errorf("--job-id is required")
			}

			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			res, err := app.ResourceManagerComposite().CancelJobAndWaitForState(cmd.Context(), &rmapi.CancelJobArgs{
				JobID:    jobID,
				IsForced: force,
				IfMatch:  ifMatch,
			}, wait.TargetStates(), wait.Config(app))
			return cliutil.PrintComposite(cmd, res, err)
		},
	}

	cmd.Flags().StringVar(&jobID, "job-id", "", "Job OCID")
	cmd.Flags().BoolVar(&force, "force", false, "Terminate the job without waiting for Terraform")
	cmd.Flags().StringVar(&ifMatch, "if-match", "", "Only cancel if the etag matches")
	wait.Register(cmd)

	return cmd
}
