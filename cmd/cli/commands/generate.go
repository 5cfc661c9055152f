package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mgoodall/innkeeper/pkg/core/schedule"
	"github.com/mgoodall/innkeeper/pkg/core/services"
)

// GenerateCmd creates the generate command
func GenerateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <base_week>",
		Short: "Regenerate the 4-week schedule starting at the given week anchor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			baseWeek, err := time.Parse("2006-01-02", args[0])
			if err != nil {
				return fmt.Errorf("base_week must be yyyy-mm-dd: %w", err)
			}

			result, err := services.GenerateSchedule(app.Ctx, app.Database, app.Logger, app.Cfg, baseWeek)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Schedule generated!\n\n")
			fmt.Printf("Base Week:       %s\n", result.BaseWeek.Format("2006-01-02"))
			fmt.Printf("Assigned Shifts: %d\n\n", result.Assigned)

			for i, anchor := range result.WeekAnchors {
				coverage := result.Coverage[i]
				gaps := 0
				for _, dept := range schedule.Departments {
					for _, day := range coverage.ByDept[dept].Days {
						if day.Missing {
							gaps++
						}
					}
				}
				fmt.Printf("Week %d (%s): %d coverage gap day-sections\n",
					i+1, anchor.Format("2006-01-02"), gaps)
			}
			fmt.Println()

			return nil
		},
	}
}
