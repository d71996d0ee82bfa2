package assessmentcmd

import (
	"fmt"

	"github.com/oracle/oci-go-sdk-sub024/cmd/oci-cli/cliutil"
	dsapi "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest/datasafe"
	"github.com/spf13/cobra"
)

func NewCreateAssessmentCmd() *cobra.Command {
	var (
		compartmentID string
		targetID      string
		displayName   string
		schedule      string
		wait          cliutil.WaitFlags
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a saved security assessment of a target database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if compartmentID == "" || targetID == "" {
				return fmt.Errorf("--compartment-id and --target-id are required")
			}

			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			res, err := app.DataSafeComposite().CreateSecurityAssessmentAndWaitForState(cmd.Context(), &dsapi.CreateSecurityAssessmentArgs{
				Details: &dsapi.CreateSecurityAssessmentDetails{
					CompartmentID: compartmentID,
					TargetID:      targetID,
					DisplayName:   displayName,
					Schedule:      schedule,
				},
			}, wait.TargetStates(), wait.Config(app))
			return cliutil.PrintComposite(cmd, res, err)
		},
	}

	cmd.Flags().StringVar(&compartmentID, "compartment-id", "", "Compartment OCID")
	cmd.Flags().StringVar(&targetID, "target-id", "", "Target database OCID")
	cmd.Flags().StringVar(&displayName, "display-name", "", "Display name")
	cmd.Flags().StringVar(&schedule, "schedule", "", "Assessment schedule, e.g. v1;1;*;*;*")
	wait.Register(cmd)

	return cmd
}

func NewUpdateAssessmentCmd() *cobra.Command {
	var (
		assessmentID string
		displayName  string
		schedule     string
		ifMatch      string
		wait         cliutil.WaitFlags
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a security assessment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if assessmentID == "" {
				return fmt.Errorf("--assessment-id is required")
			}

			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			res, err := app.DataSafeComposite().UpdateSecurityAssessmentAndWaitForState(cmd.Context(), &dsapi.UpdateSecurityAssessmentArgs{
				SecurityAssessmentID: assessmentID,
				IfMatch:              ifMatch,
				Details: &dsapi.UpdateSecurityAssessmentDetails{
					DisplayName: displayName,
					Schedule:    schedule,
				},
			}, wait.TargetStates(), wait.Config(app))
			return cliutil.PrintComposite(cmd, res, err)
		},
	}

	cmd.Flags().StringVar(&assessmentID, "assessment-id", "", "Security assessment OCID")
	cmd.Flags().StringVar(&displayName, "display-name", "", "New display name")
	cmd.Flags().StringVar(&schedule, "schedule", "", "New schedule")
	cmd.Flags().StringVar(&ifMatch, "if-match", "", "Only update if the etag matches")
	wait.Register(cmd)

	return cmd
}

func NewDeleteAssessmentCmd() *cobra.Command {
	var (
		assessmentID string
		ifMatch      string
		wait         cliutil.WaitFlags
	)

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a security assessment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if assessmentID == "" {
				return fmt.Errorf("--assessment-id is required")
			}

			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			res, err := app.DataSafeComposite().DeleteSecurityAssessmentAndWaitForState(cmd.Context(), &dsapi.DeleteSecurityAssessmentArgs{
				SecurityAssessmentID: assessmentID,
				IfMatch:              ifMatch,
			}, wait.TargetStates(), wait.Config(app))
			return cliutil.PrintComposite(cmd, res, err)
		},
	}

	cmd.Flags().StringVar(&assessmentID, "assessment-id", "", "Security assessment OCID")
	cmd.Flags().StringVar(&ifMatch, "if-match", "", "Only delete if the etag matches")
	wait.Register(cmd)

	return cmd
}

func NewRefreshAssessmentCmd() *cobra.Command {
	var (
		assessmentID string
		displayName  string
		wait         cliutil.WaitFlags
	)

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Run a security assessment again",
		RunE: func(cmd *cobra.Command, args []string) error {
			if assessmentID == "" {
				return fmt.Errorf("--assessment-id is required")
			}

			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			res, err := app.DataSafeComposite().RefreshSecurityAssessmentAndWaitForState(cmd.Context(), &dsapi.RefreshSecurityAssessmentArgs{
				SecurityAssessmentID: assessmentID,
				Details:              &dsapi.RunSecurityAssessmentDetails{DisplayName: displayName},
			}, wait.TargetStates(), wait.Config(app))
			return cliutil.PrintComposite(cmd, res, err)
		},
	}

	cmd.Flags().StringVar(&assessmentID, "assessment-id", "", "Security assessment OCID")
	cmd.Flags().StringVar(&displayName, "display-name", "", "Display name of the refreshed assessment")
	wait.Register(cmd)

	return cmd
}
