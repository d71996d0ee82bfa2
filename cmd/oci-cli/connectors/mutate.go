package connectorcmd

import (
	"fmt"

	"github.com/oracle/oci-go-sdk-sub024/cmd/oci-cli/cliutil"
	dsapi "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest/datasafe"
	"github.com/spf13/cobra"
)

func NewCreateConnectorCmd() *cobra.Command {
	var (
		compartmentID string
		displayName   string
		description   string
		wait          cliutil.WaitFlags
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an on-premises connector",
		Long:  "Create an on-premises connector. --wait-for-state applies to the work request of the creation.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if compartmentID == "" {
				return fmt.Errorf("--compartment-id is required")
			}

			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			res, err := app.DataSafeComposite().CreateOnPremConnectorAndWaitForState(cmd.Context(), &dsapi.CreateOnPremConnectorArgs{
				Details: &dsapi.CreateOnPremConnectorDetails{
					CompartmentID: compartmentID,
					DisplayName:   displayName,
					Description:   description,
				},
			}, wait.TargetStates(), wait.Config(app))
			return cliutil.PrintComposite(cmd, res, err)
		},
	}

	cmd.Flags().StringVar(&compartmentID, "compartment-id", "", "Compartment OCID")
	cmd.Flags().StringVar(&displayName, "display-name", "", "Display name")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	wait.Register(cmd)

	return cmd
}

func NewUpdateConnectorCmd() *cobra.Command {
	var (
		connectorID string
		displayName string
		description string
		ifMatch     string
		wait        cliutil.WaitFlags
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update an on-premises connector",
		RunE: func(cmd *cobra.Command, args []string) error {
			if connectorID == "" {
				return fmt.Errorf("--connector-id is required")
			}

			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			res, err := app.DataSafeComposite().UpdateOnPremConnectorAndWaitForState(cmd.Context(), &dsapi.UpdateOnPremConnectorArgs{
				OnPremConnectorID: connectorID,
				IfMatch:           ifMatch,
				Details: &dsapi.UpdateOnPremConnectorDetails{
					DisplayName: displayName,
					Description: description,
				},
			}, wait.TargetStates(), wait.Config(app))
			return cliutil.PrintComposite(cmd, res, err)
		},
	}

	cmd.Flags().StringVar(&connectorID, "connector-id", "", "On-premises connector OCID")
	cmd.Flags().StringVar(&displayName, "display-name", "", "New display name")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&ifMatch, "if-match", "", "Only update if the etag matches")
	wait.Register(cmd)

	return cmd
}

func NewDeleteConnectorCmd() *cobra.Command {
	var (
		connectorID string
		ifMatch     string
		wait        cliutil.WaitFlags
	)

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an on-premises connector",
		RunE: func(cmd *cobra.Command, args []string) error {
			if connectorID == "" {
				return fmt.Errorf("--connector-id is required")
			}

			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			res, err := app.DataSafeComposite().DeleteOnPremConnectorAndWaitForState(cmd.Context(), &dsapi.DeleteOnPremConnectorArgs{
				OnPremConnectorID: connectorID,
				IfMatch:           ifMatch,
			}, wait.TargetStates(), wait.Config(app))
			return cliutil.PrintComposite(cmd, res, err)
		},
	}

	cmd.Flags().StringVar(&connectorID, "connector-id", "", "On-premises connector OCID")
	cmd.Flags().StringVar(&ifMatch, "if-match", "", "Only delete if the etag matches")
	wait.Register(cmd)

	return cmd
}

func NewChangeConnectorCompartmentCmd() *cobra.Command {
	var (
		connectorID   string
		compartmentID string
		wait          cliutil.WaitFlags
	)

	cmd := &cobra.Command{
		Use:   "change-compartment",
		Short: "Move an on-premises connector to another compartment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if connectorID == "" || compartmentID == "" {
				return fmt.Errorf("--connector-id and --compartment-id are required")
			}

			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			res, err := app.DataSafeComposite().ChangeOnPremConnectorCompartmentAndWaitForState(cmd.Context(), &dsapi.ChangeOnPremConnectorCompartmentArgs{
				OnPremConnectorID: connectorID,
				Details:           &dsapi.ChangeOnPremConnectorCompartmentDetails{CompartmentID: compartmentID},
			}, wait.TargetStates(), wait.Config(app))
			return cliutil.PrintComposite(cmd, res, err)
		},
	}

	cmd.Flags().StringVar(&connectorID, "connector-id", "", "On-premises connector OCID")
	cmd.Flags().StringVar(&compartmentID, "compartment-id", "", "Target compartment OCID")
	wait.Register(cmd)

	return cmd
}
