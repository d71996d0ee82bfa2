package cliutil

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	sdkapp "github.com/oracle/oci-go-sdk-sub024/internal/app/sdk"
	waitdomain "github.com/oracle/oci-go-sdk-sub024/internal/domains/waiter"
	artifactrepo "github.com/oracle/oci-go-sdk-sub024/internal/repositories/artifacts"
	compositesrv "github.com/oracle/oci-go-sdk-sub024/internal/services/composite"
	"github.com/spf13/cobra"
)

func PrintJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintComposite prints the latest polled state of a composite operation, or
// the mutation response when nothing was polled. When waiting failed after a
// successful mutation, the mutation response is printed before the error is
// returned.
func PrintComposite[T any](cmd *cobra.Command, res *compositesrv.Result[T], err error) error {
	if err != nil {
		if partial, ok := waitdomain.PartialResult(err); ok && partial != nil {
			_ = PrintJSON(cmd, partial)
		}
		return err
	}

	if latest := res.Latest(); latest != nil {
		return PrintJSON(cmd, latest)
	}
	return PrintJSON(cmd, res.Mutation)
}

type StreamFlags struct {
	Output   string
	ToBucket bool
}

func (f *StreamFlags) Register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Output, "output", "", "File to write the content to, - for stdout")
	cmd.Flags().BoolVar(&f.ToBucket, "to-bucket", false, "Store the content in the artifact bucket")
}

// Write drains content into the configured destination and closes it.
func (f *StreamFlags) Write(cmd *cobra.Command, app *sdkapp.App, kind artifactrepo.ArtifactKind, resourceID string, size int64, content io.ReadCloser) error {
	defer content.Close()

	if f.ToBucket {
		artifacts := app.Artifacts()
		if artifacts == nil {
			return fmt.Errorf("--to-bucket needs artifact storage to be enabled")
		}

		artifact, err := artifacts.SaveArtifact(cmd.Context(), &artifactrepo.SaveArtifactArgs{
			Kind:       kind,
			ResourceID: resourceID,
			Content:    content,
			Size:       size,
		})
		if err != nil {
			return err
		}
		return PrintJSON(cmd, artifact)
	}

	if f.Output == "" || f.Output == "-" {
		_, err := io.Copy(cmd.OutOrStdout(), content)
		return err
	}

	file, err := os.Create(f.Output)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", f.Output, err)
	}
	defer file.Close()

	n, err := io.Copy(file, content)
	if err != nil {
		return fmt.Errorf("cannot write %q: %w", f.Output, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d bytes to %s\n", n, f.Output)
	return nil
}
