package assessmentcmd

import (
	"context"
	"fmt"

	"github.com/oracle/oci-go-sdk-sub024/cmd/oci-cli/cliutil"
	resttr "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest"
	dsapi "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest/datasafe"
	"github.com/spf13/cobra"
)

func NewAssessmentsGroup() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assessments",
		Short: "Commands for Data Safe security assessments",
	}

	cmd.AddCommand(
		NewCreateAssessmentCmd(),
		NewGetAssessmentCmd(),
		NewListAssessmentsCmd(),
		NewUpdateAssessmentCmd(),
		NewDeleteAssessmentCmd(),
		NewRefreshAssessmentCmd(),
		NewListFindingsCmd(),
	)

	return cmd
}

func NewGetAssessmentCmd() *cobra.Command {
	var (
		assessmentID string
		wait         cliutil.WaitFlags
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a security assessment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if assessmentID == "" {
				return fmt.Errorf("--assessment-id is required")
			}

			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			if states := wait.TargetStates(); len(states) > 0 {
				res, err := app.DataSafeComposite().WaitForSecurityAssessmentState(cmd.Context(), assessmentID, states, wait.Config(app))
				if err != nil {
					return err
				}
				return cliutil.PrintJSON(cmd, res.Snapshot.Payload.(*dsapi.GetSecurityAssessmentResult).SecurityAssessment)
			}

			res, err := app.DataSafe().GetSecurityAssessment(cmd.Context(), &dsapi.GetSecurityAssessmentArgs{SecurityAssessmentID: assessmentID})
			if err != nil {
				return err
			}
			return cliutil.PrintJSON(cmd, res.SecurityAssessment)
		},
	}

	cmd.Flags().StringVar(&assessmentID, "assessment-id", "", "Security assessment OCID")
	wait.Register(cmd)

	return cmd
}

func NewListAssessmentsCmd() *cobra.Command {
	var (
		compartmentID  string
		targetID       string
		lifecycleState string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List security assessments",
		RunE: func(cmd *cobra.Command, args []string) error {
			if compartmentID == "" {
				return fmt.Errorf("--compartment-id is required")
			}

			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			assessments, err := resttr.Paginate(cmd.Context(), func(ctx context.Context, page string) ([]dsapi.SecurityAssessmentSummary, string, error) {
				res, err := app.DataSafe().ListSecurityAssessments(ctx, &dsapi.ListSecurityAssessmentsArgs{
					CompartmentID:  compartmentID,
					TargetID:       targetID,
					LifecycleState: lifecycleState,
					Page:           page,
				})
				if err != nil {
					return nil, "", err
				}
				return res.SecurityAssessments, res.NextPage, nil
			})
			if err != nil {
				return err
			}
			return cliutil.PrintJSON(cmd, assessments)
		},
	}

	cmd.Flags().StringVar(&compartmentID, "compartment-id", "", "Compartment OCID")
	cmd.Flags().StringVar(&targetID, "target-id", "", "Only assessments of this target database")
	cmd.Flags().StringVar(&lifecycleState, "lifecycle-state", "", "Only assessments in this lifecycle state")

	return cmd
}

func NewListFindingsCmd() *cobra.Command {
	var (
		assessmentID string
		severity     string
	)

	cmd := &cobra.Command{
		Use:   "findings",
		Short: "List the findings of a security assessment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if assessmentID == "" {
				return fmt.Errorf("--assessment-id is required")
			}

			app, err := cliutil.App(cmd)
			if err != nil {
				return err
			}

			findings, err := resttr.Paginate(cmd.Context(), func(ctx context.Context, page string) ([]dsapi.FindingSummary, string, error) {
				res, err := app.DataSafe().ListFindings(ctx, &dsapi.ListFindingsArgs{
					SecurityAssessmentID: assessmentID,
					Severity:             severity,
					Page:                 page,
				})
				if err != nil {
					return nil, "", err
				}
				return res.Findings, res.NextPage, nil
			})
			if err != nil {
				return err
			}

			for _, finding := range findings {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s %s\n", finding.Severity, finding.Key, finding.Title)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&assessmentID, "assessment-id", "", "Security assessment OCID")
	cmd.Flags().StringVar(&severity, "severity", "", "HIGH, MEDIUM, LOW, EVALUATE, ADVISORY or PASS")

	return cmd
}
