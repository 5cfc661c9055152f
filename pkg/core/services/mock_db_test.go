package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mgoodall/innkeeper/pkg/core/schedule"
	"github.com/mgoodall/innkeeper/pkg/db"
)

// mockDatabase is an in-memory db.Database for service tests.
type mockDatabase struct {
	employees    []db.Employee
	roles        []db.EmployeeRole
	availability []db.AvailabilityEntry
	timeOff      []db.TimeOff
	weeks        []db.Week
	assignments  []db.Assignment

	getEmployeesErr error
	saveErr         error

	ensuredWeeks []time.Time
	updated      []db.Assignment
}

func (m *mockDatabase) GetEmployees(ctx context.Context) ([]db.Employee, error) {
	if m.getEmployeesErr != nil {
		return nil, m.getEmployeesErr
	}
	return m.employees, nil
}

func (m *mockDatabase) GetEmployeeRoles(ctx context.Context) ([]db.EmployeeRole, error) {
	return m.roles, nil
}

func (m *mockDatabase) InsertEmployee(ctx context.Context, employee *db.Employee) error {
	m.employees = append(m.employees, *employee)
	return nil
}

func (m *mockDatabase) GetAvailability(ctx context.Context) ([]db.AvailabilityEntry, error) {
	return m.availability, nil
}

func (m *mockDatabase) ReplaceAvailability(ctx context.Context, employeeID string, entries []db.AvailabilityEntry) error {
	var kept []db.AvailabilityEntry
	for _, e := range m.availability {
		if e.EmployeeID != employeeID {
			kept = append(kept, e)
		}
	}
	m.availability = append(kept, entries...)
	return nil
}

func (m *mockDatabase) GetTimeOff(ctx context.Context) ([]db.TimeOff, error) {
	return m.timeOff, nil
}

func (m *mockDatabase) InsertTimeOff(ctx context.Context, timeOff *db.TimeOff) error {
	m.timeOff = append(m.timeOff, *timeOff)
	return nil
}

func (m *mockDatabase) SetTimeOffApproved(ctx context.Context, id string, approved bool) error {
	for i := range m.timeOff {
		if m.timeOff[i].ID == id {
			m.timeOff[i].Approved = approved
			return nil
		}
	}
	return fmt.Errorf("no time off with id %s", id)
}

func (m *mockDatabase) EnsureWeek(ctx context.Context, start time.Time) error {
	m.ensuredWeeks = append(m.ensuredWeeks, start)
	for _, w := range m.weeks {
		if schedule.DateKey(w.StartDate) == schedule.DateKey(start) {
			return nil
		}
	}
	m.weeks = append(m.weeks, db.Week{StartDate: start})
	for _, d := range schedule.WeekDates(start) {
		for _, emp := range m.employees {
			m.assignments = append(m.assignments, db.Assignment{
				WeekStart:  start,
				EmployeeID: emp.ID,
				Date:       d,
				Value:      schedule.Unassigned,
			})
		}
	}
	return nil
}

func (m *mockDatabase) GetWeeks(ctx context.Context) ([]db.Week, error) {
	return m.weeks, nil
}

func (m *mockDatabase) GetAssignments(ctx context.Context, weekStarts []time.Time) ([]db.Assignment, error) {
	wanted := make(map[string]bool, len(weekStarts))
	for _, s := range weekStarts {
		wanted[schedule.DateKey(s)] = true
	}
	var out []db.Assignment
	for _, a := range m.assignments {
		if wanted[schedule.DateKey(a.WeekStart)] {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockDatabase) SaveAssignments(ctx context.Context, assignments []db.Assignment) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	for _, a := range assignments {
		for i := range m.assignments {
			if m.assignments[i].EmployeeID == a.EmployeeID &&
				schedule.DateKey(m.assignments[i].Date) == schedule.DateKey(a.Date) {
				m.assignments[i].Value = a.Value
				m.assignments[i].DismissedTimeOff = a.DismissedTimeOff
			}
		}
	}
	return nil
}

func (m *mockDatabase) UpdateAssignment(ctx context.Context, assignment *db.Assignment) error {
	m.updated = append(m.updated, *assignment)
	for i := range m.assignments {
		if m.assignments[i].EmployeeID == assignment.EmployeeID &&
			schedule.DateKey(m.assignments[i].Date) == schedule.DateKey(assignment.Date) {
			m.assignments[i].Value = assignment.Value
			m.assignments[i].DismissedTimeOff = assignment.DismissedTimeOff
		}
	}
	return nil
}

// valueOn looks up the stored assignment value for an employee and date.
func (m *mockDatabase) valueOn(employeeID string, d time.Time) string {
	for _, a := range m.assignments {
		if a.EmployeeID == employeeID && schedule.DateKey(a.Date) == schedule.DateKey(d) {
			return a.Value
		}
	}
	return ""
}

func date(y int, mo time.Month, d int) time.Time {
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(n int) *int {
	return &n
}
