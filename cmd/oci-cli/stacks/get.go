package stackcmd

import (
	"context"
	"fmt"

	"github.com/oracle/oci-go-sdk-sub024/cmd/oci-cli/cliutil"
	artifactrepo "github.com/oracle/oci-go-sdk-sub024/internal/repositories/artifacts"
	resttr "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest"
	rmapi "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest/resourcemanager"
	"github.com/spf13/cobra"
)

func NewGetStackCmd() *cobra.Command {
	var stackID string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a stack",
		RunE: func(cmd *cobra.Command, args []string) error {
			if stackID == "" {
				return fmt.Errorf("--stack-id is required")
			}

			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			res, err := app.ResourceManager().GetStack(cmd.Context(), &rmapi.GetStackArgs{StackID: stackID})
			if err != nil {
				return err
			}
			return cliutil.PrintJSON(cmd, res.Stack)
		},
	}

	cmd.Flags().StringVar(&stackID, "stack-id", "", "Stack OCID")

	return cmd
}

func NewListStacksCmd() *cobra.Command {
	var (
		compartmentID  string
		lifecycleState string
		displayName    string
		sortBy         string
		sortOrder      string
		limit          int
		page           string
		all            bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stacks",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			list := func(pageToken string) (*rmapi.ListStacksResult, error) {
				return app.ResourceManager().ListStacks(cmd.Context(), &rmapi.ListStacksArgs{
					CompartmentID:  compartmentID,
					LifecycleState: lifecycleState,
					DisplayName:    displayName,
					SortBy:         sortBy,
					SortOrder:      sortOrder,
					Limit:          limit,
					Page:           pageToken,
				})
			}

			if !all {
				res, err := list(page)
				if err != nil {
					return err
				}
				if res.NextPage != "" {
					fmt.Fprintf(cmd.ErrOrStderr(), "next_page=%s\n", res.NextPage)
				}
				return cliutil.PrintJSON(cmd, res.Stacks)
			}

			stacks, err := resttr.Paginate(cmd.Context(), func(_ context.Context, next string) ([]rmapi.StackSummary, string, error) {
				res, err := list(next)
				if err != nil {
					return nil, "", err
				}
				return res.Stacks, res.NextPage, nil
			})
			if err != nil {
				return err
			}
			return cliutil.PrintJSON(cmd, stacks)
		},
	}

	cmd.Flags().StringVar(&compartmentID, "compartment-id", "", "Compartment OCID")
	cmd.Flags().StringVar(&lifecycleState, "lifecycle-state", "", "Only stacks in this lifecycle state")
	cmd.Flags().StringVar(&displayName, "display-name", "", "Only stacks with this display name")
	cmd.Flags().StringVar(&sortBy, "sort-by", "", "TIMECREATED or DISPLAYNAME")
	cmd.Flags().StringVar(&sortOrder, "sort-order", "", "ASC or DESC")
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results per page (0 lets the service decide)")
	cmd.Flags().StringVar(&page, "page", "", "Page token from next_page")
	cmd.Flags().BoolVar(&all, "all", false, "Fetch all pages")

	return cmd
}

func NewGetStackTfConfigCmd() *cobra.Command {
	var (
		stackID string
		stream  cliutil.StreamFlags
	)

	cmd := &cobra.Command{
		Use:   "tf-config",
		Short: "Download the Terraform configuration of a stack",
		RunE: func(cmd *cobra.Command, args []string) error {
			if stackID == "" {
				return fmt.Errorf("--stack-id is required")
			}

			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			res, err := app.ResourceManager().GetStackTfConfig(cmd.Context(), &rmapi.GetStackTfConfigArgs{StackID: stackID})
			if err != nil {
				return err
			}
			return stream.Write(cmd, app, artifactrepo.ArtifactKindStackConfig, stackID, -1, res.Content)
		},
	}

	cmd.Flags().StringVar(&stackID, "stack-id", "", "Stack OCID")
	stream.Register(cmd)

	return cmd
}
