package jobcmd

import "github.com/spf13/cobra"

func NewJobsGroup() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Commands for Resource Manager jobs",
	}

	cmd.AddCommand(
		NewCreateJobCmd(),
		NewGetJobCmd(),
		NewListJobsCmd(),
		NewUpdateJobCmd(),
		NewCancelJobCmd(),
		NewGetJobLogsCmd(),
		NewGetJobTfStateCmd(),
	)

	return cmd
}
