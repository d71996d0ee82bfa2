package stackcmd

import (
	"fmt"

	"github.com/oracle/oci-go-sdk-sub024/cmd/oci-cli/cliutil"
	rmapi "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest/resourcemanager"
	"github.com/spf13/cobra"
)

func NewCreateStackCmd() *cobra.Command {
	var (
		compartmentID    string
		displayName      string
		description      string
		configZip        string
		workingDirectory string
		terraformVersion string
		variables        map[string]string
		wait             cliutil.WaitFlags
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a stack from a Terraform configuration archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			if compartmentID == "" {
				return fmt.Errorf("--compartment-id is required")
			}
			if configZip == "" {
				return fmt.Errorf("--config-zip is required")
			}

			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			source, err := zipConfigSource(configZip, workingDirectory)
			if err != nil {
				return err
			}

			res, err := app.ResourceManagerComposite().CreateStackAndWaitForState(cmd.Context(), &rmapi.CreateStackArgs{
				Details: &rmapi.CreateStackDetails{
					CompartmentID:    compartmentID,
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

	cmd.Flags().StringVar(&compartmentID, "compartment-id", "", "Compartment OCID")
	cmd.Flags().StringVar(&displayName, "display-name", "", "Display name")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&configZip, "config-zip", "", "Path to the zipped Terraform configuration")
	cmd.Flags().StringVar(&workingDirectory, "working-directory", "", "Directory inside the archive to run Terraform in")
	cmd.Flags().StringVar(&terraformVersion, "terraform-version", "", "Terraform version, e.g. 1.5.x")
	cmd.Flags().StringToStringVar(&variables, "variables", nil, "Terraform variables, key=value")
	wait.Register(cmd)

	return cmd
}
