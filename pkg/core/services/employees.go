package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mgoodall/innkeeper/pkg/core/schedule"
	"github.com/mgoodall/innkeeper/pkg/db"
)

// NewEmployee is the boundary input for creating an employee record.
type NewEmployee struct {
	Name             string
	Section          string
	Seniority        int
	PreferredShift   string
	PreferredPerWeek *int
	MaxPerWeek       *int
	LateStagger      bool
}

// AddEmployee validates and inserts a new employee record.
func AddEmployee(ctx context.Context, database db.Database, logger *zap.Logger, input NewEmployee) (*db.Employee, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: employee name is required", ErrInvariantViolation)
	}
	if !validSection(input.Section) {
		return nil, fmt.Errorf("%w: unknown section %q", ErrInvariantViolation, input.Section)
	}

	employee := &db.Employee{
		ID:               uuid.New().String(),
		Name:             input.Name,
		SectionName:      input.Section,
		Seniority:        input.Seniority,
		PreferredShift:   input.PreferredShift,
		PreferredPerWeek: input.PreferredPerWeek,
		MaxPerWeek:       input.MaxPerWeek,
		LateStagger:      input.LateStagger,
	}
	if err := database.InsertEmployee(ctx, employee); err != nil {
		return nil, err
	}

	logger.Info("Employee added",
		zap.String("name", employee.Name),
		zap.String("section", employee.SectionName))

	return employee, nil
}

// ListEmployees returns all employees with their secondary capabilities.
type EmployeeListing struct {
	Employee  db.Employee
	Secondary []string
}

func ListEmployees(ctx context.Context, database db.Database) ([]EmployeeListing, error) {
	employees, err := database.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	roles, err := database.GetEmployeeRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employee roles: %w", err)
	}
	secondary := make(map[string][]string)
	for _, r := range roles {
		secondary[r.EmployeeID] = append(secondary[r.EmployeeID], r.SectionName)
	}

	listings := make([]EmployeeListing, 0, len(employees))
	for _, e := range employees {
		listings = append(listings, EmployeeListing{Employee: e, Secondary: secondary[e.ID]})
	}
	return listings, nil
}

// SetAvailability replaces an employee's availability entry set. Shift tokens
// must belong to the section's availability vocabulary: collapsed variants
// for Front Desk, literal labels elsewhere.
func SetAvailability(ctx context.Context, database db.Database, logger *zap.Logger, employeeName string, entries []db.AvailabilityEntry) error {
	employees, err := database.GetEmployees(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch employees: %w", err)
	}
	var emp *db.Employee
	for i := range employees {
		if employees[i].Name == employeeName {
			emp = &employees[i]
			break
		}
	}
	if emp == nil {
		return fmt.Errorf("%w: unknown employee %q", ErrInvariantViolation, employeeName)
	}

	for _, e := range entries {
		if e.DayOfWeek < 0 || e.DayOfWeek > 6 {
			return fmt.Errorf("%w: day of week %d out of range", ErrInvariantViolation, e.DayOfWeek)
		}
	}
	for i := range entries {
		entries[i].EmployeeID = emp.ID
	}

	if err := database.ReplaceAvailability(ctx, emp.ID, entries); err != nil {
		return err
	}

	logger.Info("Availability replaced",
		zap.String("employee", employeeName),
		zap.Int("entries", len(entries)))

	return nil
}

func validSection(name string) bool {
	for _, dept := range schedule.Departments {
		if string(dept) == name {
			return true
		}
	}
	return false
}
