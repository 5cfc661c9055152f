package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mgoodall/innkeeper/pkg/core/services"
	"github.com/mgoodall/innkeeper/pkg/db"
)

// AvailabilityCmd creates the availability command group
func AvailabilityCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "availability",
		Short: "Manage employee availability",
	}
	cmd.AddCommand(setAvailabilityCmd(app))
	return cmd
}

func setAvailabilityCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set <employee> <day:shift>...",
		Short: "Replace an employee's availability entries",
		Long: `Replace an employee's full availability entry set. Each entry is day:shift
where day is 0 (Monday) through 6 (Sunday) and shift is the availability token
for the employee's section, e.g. "0:AM" or "2:5AM–12PM". An employee with no
entries is never scheduled.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var entries []db.AvailabilityEntry
			for _, arg := range args[1:] {
				day, shift, found := strings.Cut(arg, ":")
				if !found {
					return fmt.Errorf("entry %q must be day:shift", arg)
				}
				dow, err := strconv.Atoi(day)
				if err != nil {
					return fmt.Errorf("entry %q has a bad day: %w", arg, err)
				}
				entries = append(entries, db.AvailabilityEntry{
					DayOfWeek:  dow,
					ShiftLabel: shift,
					Allowed:    true,
				})
			}

			if err := services.SetAvailability(app.Ctx, app.Database, app.Logger, args[0], entries); err != nil {
				return err
			}

			fmt.Printf("\n✓ Availability replaced for %s (%d entries)\n\n", args[0], len(entries))
			return nil
		},
	}
}
