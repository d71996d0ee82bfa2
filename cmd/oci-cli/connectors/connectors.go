package connectorcmd

import (
	"context"
	"fmt"

	"github.com/oracle/oci-go-sdk-sub024/cmd/oci-cli/cliutil"
	artifactrepo "github.com/oracle/oci-go-sdk-sub024/internal/repositories/artifacts"
	resttr "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest"
	dsapi "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest/datasafe"
	"github.com/spf13/cobra"
)

func NewConnectorsGroup() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connectors",
		Short: "Commands for Data Safe on-premises connectors",
	}

	cmd.AddCommand(
		NewCreateConnectorCmd(),
		NewGetConnectorCmd(),
		NewListConnectorsCmd(),
		NewUpdateConnectorCmd(),
		NewDeleteConnectorCmd(),
		NewChangeConnectorCompartmentCmd(),
		NewGenerateConnectorConfigCmd(),
	)

	return cmd
}

func NewGetConnectorCmd() *cobra.Command {
	var (
		connectorID string
		wait        cliutil.WaitFlags
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get an on-premises connector",
		RunE: func(cmd *cobra.Command, args []string) error {
			if connectorID == "" {
				return fmt.Errorf("--connector-id is required")
			}

			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			if states := wait.TargetStates(); len(states) > 0 {
				res, err := app.DataSafeComposite().WaitForOnPremConnectorState(cmd.Context(), connectorID, states, wait.Config(app))
				if err != nil {
					return err
				}
				return cliutil.PrintJSON(cmd, res.Snapshot.Payload.(*dsapi.GetOnPremConnectorResult).OnPremConnector)
			}

			res, err := app.DataSafe().GetOnPremConnector(cmd.Context(), &dsapi.GetOnPremConnectorArgs{OnPremConnectorID: connectorID})
			if err != nil {
				return err
			}
			return cliutil.PrintJSON(cmd, res.OnPremConnector)
		},
	}

	cmd.Flags().StringVar(&connectorID, "connector-id", "", "On-premises connector OCID")
	wait.Register(cmd)

	return cmd
}

func NewListConnectorsCmd() *cobra.Command {
	var (
		compartmentID  string
		lifecycleState string
		displayName    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List on-premises connectors",
		RunE: func(cmd *cobra.Command, args []string) error {
			if compartmentID == "" {
				return fmt.Errorf("--compartment-id is required")
			}

			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			connectors, err := resttr.Paginate(cmd.Context(), func(ctx context.Context, page string) ([]dsapi.OnPremConnectorSummary, string, error) {
				res, err := app.DataSafe().ListOnPremConnectors(ctx, &dsapi.ListOnPremConnectorsArgs{
					CompartmentID:  compartmentID,
					LifecycleState: lifecycleState,
					DisplayName:    displayName,
					Page:           page,
				})
				if err != nil {
					return nil, "", err
				}
				return res.OnPremConnectors, res.NextPage, nil
			})
			if err != nil {
				return err
			}
			return cliutil.PrintJSON(cmd, connectors)
		},
	}

	cmd.Flags().StringVar(&compartmentID, "compartment-id", "", "Compartment OCID")
	cmd.Flags().StringVar(&lifecycleState, "lifecycle-state", "", "Only connectors in this lifecycle state")
	cmd.Flags().StringVar(&displayName, "display-name", "", "Only connectors with this display name")

	return cmd
}

func NewGenerateConnectorConfigCmd() *cobra.Command {
	var (
		connectorID string
		password    string
		stream      cliutil.StreamFlags
	)

	cmd := &cobra.Command{
		Use:   "generate-config",
		Short: "Download the configuration bundle of an on-premises connector",
		RunE: func(cmd *cobra.Command, args []string) error {
			if connectorID == "" || password == "" {
				return fmt.Errorf("--connector-id and --password are required")
			}

			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			res, err := app.DataSafe().GenerateOnPremConnectorConfiguration(cmd.Context(), &dsapi.GenerateOnPremConnectorConfigurationArgs{
				OnPremConnectorID: connectorID,
				Details:           &dsapi.GenerateOnPremConnectorConfigurationDetails{Password: password},
			})
			if err != nil {
				return err
			}
			return stream.Write(cmd, app, artifactrepo.ArtifactKindConnectorBundle, connectorID, res.ContentLength, res.Content)
		},
	}

	cmd.Flags().StringVar(&connectorID, "connector-id", "", "On-premises connector OCID")
	cmd.Flags().StringVar(&password, "password", "", "Password protecting the connector wallet")
	stream.Register(cmd)

	return cmd
}
