package commands

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mgoodall/innkeeper/pkg/core/schedule"
	"github.com/mgoodall/innkeeper/pkg/core/services"
)

// CoverageCmd creates the coverage command
func CoverageCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "coverage <week>",
		Short: "Show per-day coverage, gaps and duplicate staggers for a week",
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

			for _, dept := range schedule.Departments {
				dc := result.Coverage.ByDept[dept]
				fmt.Printf("\n%s (requires %d/day):\n", dept, dc.Required)
				for _, date := range result.Coverage.Dates {
					day := dc.Days[date]
					var parts []string
					buckets := make([]string, 0, len(day.Counts))
					for bucket := range day.Counts {
						buckets = append(buckets, bucket)
					}
					sort.Strings(buckets)
					for _, bucket := range buckets {
						parts = append(parts, fmt.Sprintf("%s=%d", bucket, day.Counts[bucket]))
					}
					status := ""
					if day.Missing {
						status = "  MISSING"
					}
					if day.DuplicateStagger {
						status += "  DUPLICATE STAGGER"
					}
					fmt.Printf("  %s  %s%s\n", date, strings.Join(parts, " "), status)
				}
			}

			if len(result.Conflicts.ByDate) > 0 {
				fmt.Printf("\nDouble-booked:\n")
				dates := make([]string, 0, len(result.Conflicts.ByDate))
				for date := range result.Conflicts.ByDate {
					dates = append(dates, date)
				}
				sort.Strings(dates)
				for _, date := range dates {
					fmt.Printf("  %s  %s\n", date, strings.Join(result.Conflicts.ByDate[date], ", "))
				}
			}
			fmt.Println()

			return nil
		},
	}
}
