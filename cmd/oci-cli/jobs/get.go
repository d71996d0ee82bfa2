package jobcmd

import (
	"context"
	"fmt"

	"github.com/oracle/oci-go-sdk-sub024/cmd/oci-cli/cliutil"
	artifactrepo "github.com/oracle/oci-go-sdk-sub024/internal/repositories/artifacts"
	resttr "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest"
	rmapi "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest/resourcemanager"
	"github.com/spf13/cobra"
)

func NewGetJobCmd() *cobra.Command {
	var jobID string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a job",
		RunE: func(cmd *cobra.Command, args []string) error {
			if jobID == "" {
				return fmt.Errorf("--job-id is required")
			}

			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			res, err := app.ResourceManager().GetJob(cmd.Context(), &rmapi.GetJobArgs{JobID: jobID})
			if err != nil {
				return err
			}
			return cliutil.PrintJSON(cmd, res.Job)
		},
	}

	cmd.Flags().StringVar(&jobID, "job-id", "", "Job OCID")

	return cmd
}

func NewListJobsCmd() *cobra.Command {
	var (
		compartmentID  string
		stackID        string
		lifecycleState string
		limit          int
		all            bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if compartmentID == "" && stackID == "" {
				return fmt.Errorf("--compartment-id or --stack-id is required")
			}

			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			jobs, err := resttr.Paginate(cmd.Context(), func(ctx context.Context, page string) ([]rmapi.JobSummary, string, error) {
				res, err := app.ResourceManager().ListJobs(ctx, &rmapi.ListJobsArgs{
					CompartmentID:  compartmentID,
					StackID:        stackID,
					LifecycleState: lifecycleState,
					SortBy:         rmapi.SortByTimeCreated,
					SortOrder:      rmapi.SortOrderDesc,
					Limit:          limit,
					Page:           page,
				})
				if err != nil {
					return nil, "", err
				}
				if !all {
					return res.Jobs, "", nil
				}
				return res.Jobs, res.NextPage, nil
			})
			if err != nil {
				return err
			}
			return cliutil.PrintJSON(cmd, jobs)
		},
	}

	cmd.Flags().StringVar(&compartmentID, "compartment-id", "", "Compartment OCID")
	cmd.Flags().StringVar(&stackID, "stack-id", "", "Stack OCID")
	cmd.Flags().StringVar(&lifecycleState, "lifecycle-state", "", "Only jobs in this lifecycle state")
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results per page (0 lets the service decide)")
	cmd.Flags().BoolVar(&all, "all", false, "Fetch all pages")

	return cmd
}

func NewGetJobLogsCmd() *cobra.Command {
	var (
		jobID    string
		types    []string
		levelGTE string
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the log of a job",
		RunE: func(cmd *cobra.Command, args []string) error {
			if jobID == "" {
				return fmt.Errorf("--job-id is required")
			}

			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			entries, err := resttr.Paginate(cmd.Context(), func(ctx context.Context, page string) ([]rmapi.LogEntry, string, error) {
				res, err := app.ResourceManager().GetJobLogs(ctx, &rmapi.GetJobLogsArgs{
					JobID:     jobID,
					Type:      types,
					LevelGTE:  levelGTE,
					SortOrder: rmapi.SortOrderAsc,
					Page:      page,
				})
				if err != nil {
					return nil, "", err
				}
				return res.Entries, res.NextPage, nil
			})
			if err != nil {
				return err
			}

			for _, entry := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-5s %s\n", entry.Timestamp.Format("2006-01-02T15:04:05.000Z07:00"), entry.Level, entry.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&jobID, "job-id", "", "Job OCID")
	cmd.Flags().StringSliceVar(&types, "type", nil, "Log entry types, e.g. TERRAFORM_CONSOLE")
	cmd.Flags().StringVar(&levelGTE, "level", "", "Minimum level: TRACE, DEBUG, INFO, WARN, ERROR or FATAL")

	return cmd
}

func NewGetJobTfStateCmd() *cobra.Command {
	var (
		jobID  string
		stream cliutil.StreamFlags
	)

	cmd := &cobra.Command{
		Use:   "tf-state",
		Short: "Download the Terraform state produced by a job",
		RunE: func(cmd *cobra.Command, args []string) error {
			if jobID == "" {
				return fmt.Errorf("--job-id is required")
			}

			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			res, err := app.ResourceManager().GetJobTfState(cmd.Context(), &rmapi.GetJobTfStateArgs{JobID: jobID})
			if err != nil {
				return err
			}
			return stream.Write(cmd, app, artifactrepo.ArtifactKindJobState, jobID, res.ContentLength, res.Content)
		},
	}

	cmd.Flags().StringVar(&jobID, "job-id", "", "Job OCID")
	stream.Register(cmd)

	return cmd
}
