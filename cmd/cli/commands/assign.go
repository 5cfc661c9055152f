package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgoodall/innkeeper/pkg/core/services"
)

// AssignCmd creates the assign command
func AssignCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <section> <employee> <date> <value>",
		Short: "Manually set one employee's shift value for a date",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := services.AssignShift(app.Ctx, app.Database, app.Logger, services.AssignRequest{
				Section:  args[0],
				Employee: args[1],
				Date:     args[2],
				Value:    args[3],
			})
			if errors.Is(err, services.ErrLeaveOverride) {
				fmt.Printf("\n✗ %s (value forced to TIME OFF)\n\n", err)
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ %s on %s: %s\n\n", args[1], args[2], args[3])
			return nil
		},
	}
}
