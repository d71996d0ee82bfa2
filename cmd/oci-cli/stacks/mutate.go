package stackcmd

import (
	"fmt"

	"github.com/oracle/oci-go-sdk-sub024/cmd/oci-cli/cliutil"
	rmapi "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest/resourcemanager"
	"github.com/spf13/cobra"
)

func NewUpdateStackCmd() *cobra.Command {
	var (
		stackID          string
		displayName      string
		description      string
		configZip        string
		workingDirectory string
		terraformVersion string
		variables        map[string]string
		ifMatch          string
		wait             cliutil.WaitFlags
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a stack",
		RunE: func(cmd *cobra.Command, args []string) error {
			if stackID == "" {
				return fmt.Errorf("--stack-id is required")
			}

			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			source, err := zipConfigSource(configZip, workingDirectory)
			if err != nil {
				return err
			}

			res, err := app.ResourceManagerComposite().UpdateStackAndWaitForState(cmd.Context(), &rmapi.UpdateStackArgs{
				StackID: stackID,
				IfMatch: ifMatch,
				Details: &rmapi.UpdateStackDetails{
					DisplayName:      displayName,
					Description:      description,
					ConfigSource:     source,
					Variables:        variables,
					TerraformVersion: terraformVersion,
				},
			}, wait.TargetStates(), wait.Config(app))
			return cliutil.PrintComposite(cmd, res, err)
		},
	}

	cmd.Flags().StringVar(&stackID, "stack-id", "", "Stack OCID")
	cmd.Flags().StringVar(&displayName, "display-name", "", "New display name")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&configZip, "config-zip", "", "Path to a new zipped Terraform configuration")
	cmd.Flags().StringVar(&workingDirectory, "working-directory", "", "Directory inside the archive to run Terraform in")
	cmd.Flags().StringVar(&terraformVersion, "terraform-version", "", "Terraform version")
	cmd.Flags().StringToStringVar(&variables, "variables", nil, "Terraform variables, key=value")
	cmd.Flags().StringVar(&ifMatch, "if-match", "", "Only update if the etag matches")
	wait.Register(cmd)

	return cmd
}

func NewDeleteStackCmd() *cobra.Command {
	var (
		stackID string
		ifMatch string
		wait    cliutil.WaitFlags
	)

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a stack",
		RunE: func(cmd *cobra.Command, args []string) error {
			if stackID == "" {
				return fmt.Errorf("--stack-id is required")
			}

			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			res, err := app.ResourceManagerComposite().DeleteStackAndWaitForState(cmd.Context(), &rmapi.DeleteStackArgs{
				StackID: stackID,
				IfMatch: ifMatch,
			}, wait.TargetStates(), wait.Config(app))
			return cliutil.PrintComposite(cmd, res, err)
		},
	}

	cmd.Flags().StringVar(&stackID, "stack-id", "", "Stack OCID")
	cmd.Flags().StringVar(&ifMatch, "if-match", "", "Only delete if the etag matches")
	wait.Register(cmd)

	return cmd
}

func NewChangeStackCompartmentCmd() *cobra.Command {
	var (
		stackID       string
		compartmentID string
		wait          cliutil.WaitFlags
	)

	cmd := &cobra.Command{
		Use:   "change-compartment",
		Short: "Move a stack to another compartment",
		Long:  "Move a stack to another compartment. --wait-for-state applies to the work request of the move.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if stackID == "" || compartmentID == "" {
				return fmt.Errorf("--stack-id and --compartment-id are required")
			}

			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			res, err := app.ResourceManagerComposite().ChangeStackCompartmentAndWaitForState(cmd.Context(), &rmapi.ChangeStackCompartmentArgs{
				StackID: stackID,
				Details: &rmapi.ChangeStackCompartmentDetails{CompartmentID: compartmentID},
			}, wait.TargetStates(), wait.Config(app))
			return cliutil.PrintComposite(cmd, res, err)
		},
	}

	cmd.Flags().StringVar(&stackID, "stack-id", "", "Stack OCID")
	cmd.Flags().StringVar(&compartmentID, "compartment-id", "", "Target compartment OCID")
	wait.Register(cmd)

	return cmd
}
