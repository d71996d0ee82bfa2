package stackcmd

import (
	"encoding/base64"
	"fmt"
	"os"

	rmapi "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest/resourcemanager"
	"github.com/spf13/cobra"
)

func NewStacksGroup() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stacks",
		Short: "Commands for Resource Manager stacks",
	}

	cmd.AddCommand(
		NewCreateStackCmd(),
		NewGetStackCmd(),
		NewListStacksCmd(),
		NewUpdateStackCmd(),
		NewDeleteStackCmd(),
		NewChangeStackCompartmentCmd(),
		NewGetStackTfConfigCmd(),
	)

	return cmd
}

func zipConfigSource(path, workingDirectory string) (*rmapi.ConfigSource, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read configuration archive: %w", err)
	}

	return &rmapi.ConfigSource{
		ConfigSourceType:     rmapi.ConfigSourceTypeZipUpload,
		ZipFileBase64Encoded: base64.StdEncoding.EncodeToString(data),
		WorkingDirectory:     workingDirectory,
	}, nil
}
