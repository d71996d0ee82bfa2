package workrequestcmd

import (
	"fmt"

	"github.com/oracle/oci-go-sdk-sub024/cmd/oci-cli/cliutil"
	waitdomain "github.com/oracle/oci-go-sdk-sub024/internal/domains/waiter"
	dsapi "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest/datasafe"
	rmapi "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest/resourcemanager"
	"github.com/spf13/cobra"
)

func NewGetWorkRequestCmd() *cobra.Command {
	var (
		workRequestID string
		service       string
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a work request",
		RunE: func(cmd *cobra.Command, args []string) error {
			if workRequestID == "" {
				return fmt.Errorf("--work-request-id is required")
			}

			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			fetcher, err := fetcherFor(app, service)
			if err != nil {
				return err
			}

			snapshot, err := fetcher.FetchStatus(cmd.Context(), waitdomain.OperationHandle(workRequestID))
			if err != nil {
				return err
			}
			return cliutil.PrintJSON(cmd, snapshot.Payload)
		},
	}

	cmd.Flags().StringVar(&workRequestID, "work-request-id", "", "Work request OCID")
	registerService(cmd, &service)

	return cmd
}

func NewListWorkRequestsCmd() *cobra.Command {
	var (
		compartmentID string
		resourceID    string
		service       string
		limit         int
		page          string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List work requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			if compartmentID == "" {
				return fmt.Errorf("--compartment-id is required")
			}

			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			var (
				items    any
				nextPage string
			)
			switch service {
			case serviceResourceManager:
				res, err := app.ResourceManager().ListWorkRequests(cmd.Context(), &rmapi.ListWorkRequestsArgs{
					CompartmentID: compartmentID,
					ResourceID:    resourceID,
					Limit:         limit,
					Page:          page,
				})
				if err != nil {
					return err
				}
				items, nextPage = res.WorkRequests, res.NextPage
			case serviceDataSafe:
				res, err := app.DataSafe().ListWorkRequests(cmd.Context(), &dsapi.ListWorkRequestsArgs{
					CompartmentID: compartmentID,
					ResourceID:    resourceID,
					Limit:         limit,
					Page:          page,
				})
				if err != nil {
					return err
				}
				items, nextPage = res.WorkRequests, res.NextPage
			default:
				return fmt.Errorf("unknown service %q", service)
			}

			if nextPage != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "next_page=%s\n", nextPage)
			}
			return cliutil.PrintJSON(cmd, items)
		},
	}

	cmd.Flags().StringVar(&compartmentID, "compartment-id", "", "Compartment OCID")
	cmd.Flags().StringVar(&resourceID, "resource-id", "", "Only work requests affecting this resource")
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results per page (0 lets the service decide)")
	cmd.Flags().StringVar(&page, "page", "", "Page token from next_page")
	registerService(cmd, &service)

	return cmd
}

func NewListWorkRequestErrorsCmd() *cobra.Command {
	var workRequestID string

	cmd := &cobra.Command{
		Use:   "errors",
		Short: "List the errors of a Resource Manager work request",
		RunE: func(cmd *cobra.Command, args []string) error {
			if workRequestID == "" {
				return fmt.Errorf("--work-request-id is required")
			}

			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			res, err := app.ResourceManager().ListWorkRequestErrors(cmd.Context(), &rmapi.ListWorkRequestErrorsArgs{WorkRequestID: workRequestID})
			if err != nil {
				return err
			}
			return cliutil.PrintJSON(cmd, res.Errors)
		},
	}

	cmd.Flags().StringVar(&workRequestID, "work-request-id", "", "Work request OCID")

	return cmd
}

func NewListWorkRequestLogsCmd() *cobra.Command {
	var workRequestID string

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the log of a Resource Manager work request",
		RunE: func(cmd *cobra.Command, args []string) error {
			if workRequestID == "" {
				return fmt.Errorf("--work-request-id is required")
			}

			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			res, err := app.ResourceManager().ListWorkRequestLogs(cmd.Context(), &rmapi.ListWorkRequestLogsArgs{
				WorkRequestID: workRequestID,
				SortOrder:     rmapi.SortOrderAsc,
			})
			if err != nil {
				return err
			}

			for _, entry := range res.Entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", entry.Timestamp.Format("2006-01-02T15:04:05Z07:00"), entry.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&workRequestID, "work-request-id", "", "Work request OCID")

	return cmd
}
