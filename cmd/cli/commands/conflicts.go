package commands

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mgoodall/innkeeper/pkg/core/services"
)

// ConflictsCmd creates the conflicts command
func ConflictsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "conflicts <week>",
		Short: "List double-booked employees for a week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			anchor, err := time.Parse("2006-01-02", args[0])
			if err != nil {
				return fmt.Errorf("week must be yyyy-mm-dd: %w", err)
			}

			result, err := services.CoverageReport(app.Ctx, app.Database, app.Logger, anchor)
			if err != nil {
				return err
			}

			if len(result.Conflicts.ByDate) == 0 {
				fmt.Printf("\n✓ No double-booked employees for week %s\n\n", args[0])
				return nil
			}

			dates := make([]string, 0, len(result.Conflicts.ByDate))
			for date := range result.Conflicts.ByDate {
				dates = append(dates, date)
			}
			sort.Strings(dates)

			fmt.Println()
			for _, date := range dates {
				fmt.Printf("  %s  %s\n", date, strings.Join(result.Conflicts.ByDate[date], ", "))
			}
			fmt.Println()

			return nil
		},
	}
}
