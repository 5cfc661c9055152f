package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mgoodall/innkeeper/pkg/core/services"
)

// EmployeesCmd creates the employees command group
func EmployeesCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employees",
		Short: "Manage employee records",
	}
	cmd.AddCommand(listEmployeesCmd(app))
	cmd.AddCommand(addEmployeeCmd(app))
	return cmd
}

func listEmployeesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listings, err := services.ListEmployees(app.Ctx, app.Database)
			if err != nil {
				return err
			}

			fmt.Printf("\n%-20s %-15s %-10s %s\n", "NAME", "SECTION", "SENIORITY", "SECONDARY")
			for _, l := range listings {
				seniority := "-"
				if l.Employee.Seniority > 0 {
					seniority = fmt.Sprintf("%d", l.Employee.Seniority)
				}
				fmt.Printf("%-20s %-15s %-10s %s\n",
					l.Employee.Name, l.Employee.SectionName, seniority,
					strings.Join(l.Secondary, ", "))
			}
			fmt.Println()

			return nil
		},
	}
}

func addEmployeeCmd(app *AppContext) *cobra.Command {
	var (
		seniority      int
		preferredShift string
		preferredWeek  int
		maxWeek        int
		lateStagger    bool
	)
	cmd := &cobra.Command{
		Use:   "add <name> <section>",
		Short: "Add a new employee",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := services.NewEmployee{
				Name:           args[0],
				Section:        args[1],
				Seniority:      seniority,
				PreferredShift: preferredShift,
				LateStagger:    lateStagger,
			}
			if cmd.Flags().Changed("preferred-per-week") {
				input.PreferredPerWeek = &preferredWeek
			}
			if cmd.Flags().Changed("max-per-week") {
				input.MaxPerWeek = &maxWeek
			}

			employee, err := services.AddEmployee(app.Ctx, app.Database, app.Logger, input)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Employee added: %s (%s)\n\n", employee.Name, employee.ID)
			return nil
		},
	}
	cmd.Flags().IntVar(&seniority, "seniority", 0, "Seniority rank, lower is more senior (0 = unranked)")
	cmd.Flags().StringVar(&preferredShift, "preferred-shift", "", "Preferred shift token")
	cmd.Flags().IntVar(&preferredWeek, "preferred-per-week", 0, "Preferred shifts per week")
	cmd.Flags().IntVar(&maxWeek, "max-per-week", 0, "Maximum shifts per week")
	cmd.Flags().BoolVar(&lateStagger, "late-stagger", false, "Always place on the later Front Desk stagger")
	return cmd
}
