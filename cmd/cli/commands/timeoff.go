package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mgoodall/innkeeper/pkg/core/services"
)

// TimeOffCmd creates the timeoff command group
func TimeOffCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeoff",
		Short: "Manage leave requests",
	}
	cmd.AddCommand(addTimeOffCmd(app))
	cmd.AddCommand(approveTimeOffCmd(app))
	return cmd
}

func addTimeOffCmd(app *AppContext) *cobra.Command {
	var (
		role     string
		approved bool
		vacation bool
	)
	cmd := &cobra.Command{
		Use:   "add <name> <from> <to>",
		Short: "Record a leave request (dates inclusive, yyyy-mm-dd)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := time.Parse("2006-01-02", args[1])
			if err != nil {
				return fmt.Errorf("from must be yyyy-mm-dd: %w", err)
			}
			to, err := time.Parse("2006-01-02", args[2])
			if err != nil {
				return fmt.Errorf("to must be yyyy-mm-dd: %w", err)
			}

			request, err := services.AddTimeOff(app.Ctx, app.Database, app.Logger,
				args[0], role, from, to, approved, vacation)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Time off recorded: %s %s..%s (id %s)\n\n",
				request.Name, args[1], args[2], request.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "role", "", "Department label at time of request")
	cmd.Flags().BoolVar(&approved, "approved", false, "Record as already approved")
	cmd.Flags().BoolVar(&vacation, "vacation", false, "Display as vacation")
	return cmd
}

func approveTimeOffCmd(app *AppContext) *cobra.Command {
	var revoke bool
	cmd := &cobra.Command{
		Use:   "approve <id>",
		Short: "Approve (or revoke approval of) a leave request and re-sync affected weeks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.SetTimeOffApproval(app.Ctx, app.Database, app.Logger, args[0], !revoke); err != nil {
				return err
			}

			if revoke {
				fmt.Printf("\n✓ Approval revoked for %s\n\n", args[0])
			} else {
				fmt.Printf("\n✓ Approved %s\n\n", args[0])
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&revoke, "revoke", false, "Revoke approval instead of granting it")
	return cmd
}
