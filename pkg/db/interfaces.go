package db

import (
	"context"
	"time"
)

// EmployeeStore defines the employee-record operations services depend on.
type EmployeeStore interface {
	GetEmployees(ctx context.Context) ([]Employee, error)
	GetEmployeeRoles(ctx context.Context) ([]EmployeeRole, error)
	InsertEmployee(ctx context.Context, employee *Employee) error
}

// Database defines the full set of store operations. The postgres.DB type
// implements this interface.
type Database interface {
	EmployeeStore

	GetAvailability(ctx context.Context) ([]AvailabilityEntry, error)
	ReplaceAvailability(ctx context.Context, employeeID string, entries []AvailabilityEntry) error

	GetTimeOff(ctx context.Context) ([]TimeOff, error)
	InsertTimeOff(ctx context.Context, timeOff *TimeOff) error
	SetTimeOffApproved(ctx context.Context, id string, approved bool) error

	// EnsureWeek materializes the week and a placeholder assignment per
	// employee per date, creating only what does not already exist
	EnsureWeek(ctx context.Context, start time.Time) error
	GetWeeks(ctx context.Context) ([]Week, error)

	GetAssignments(ctx context.Context, weekStarts []time.Time) ([]Assignment, error)
	SaveAssignments(ctx context.Context, assignments []Assignment) error
	UpdateAssignment(ctx context.Context, assignment *Assignment) error
}
