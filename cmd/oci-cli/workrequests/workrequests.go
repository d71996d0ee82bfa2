package workrequestcmd

import (
	"fmt"

	sdkapp "github.com/oracle/oci-go-sdk-sub024/internal/app/sdk"
	waitdomain "github.com/oracle/oci-go-sdk-sub024/internal/domains/waiter"
	dsapi "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest/datasafe"
	rmapi "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest/resourcemanager"
	"github.com/spf13/cobra"
)

const (
	serviceResourceManager = "resourcemanager"
	serviceDataSafe        = "datasafe"
)

func NewWorkRequestsGroup() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "work-requests",
		Short: "Commands for work requests of asynchronous operations",
	}

	cmd.AddCommand(
		NewGetWorkRequestCmd(),
		NewListWorkRequestsCmd(),
		NewListWorkRequestErrorsCmd(),
		NewListWorkRequestLogsCmd(),
		NewWaitWorkRequestsCmd(),
	)

	return cmd
}

func registerService(cmd *cobra.Command, service *string) {
	cmd.Flags().StringVar(service, "service", serviceResourceManager, "Service owning the work request: resourcemanager or datasafe")
}

func fetcherFor(app *sdkapp.App, service string) (waitdomain.StatusFetcher, error) {
	switch service {
	case serviceResourceManager:
		return rmapi.NewWorkRequestFetcher(app.ResourceManager()), nil
	case serviceDataSafe:
		return dsapi.NewWorkRequestFetcher(app.DataSafe()), nil
	default:
		return nil, fmt.Errorf("unknown service %q", service)
	}
}
