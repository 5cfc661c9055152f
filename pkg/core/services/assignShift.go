package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mgoodall/innkeeper/pkg/core/schedule"
	"github.com/mgoodall/innkeeper/pkg/db"
)

// AssignRequest is a manual shift assignment for one employee and date.
type AssignRequest struct {
	Section  string
	Employee string
	Date     string // yyyy-mm-dd
	Value    string
}

// AssignShift applies a manual assignment, enforcing the boundary rules the
// generator never needs internally:
//
//   - the employee must hold capability in the section, primary or secondary
//     (ErrCapabilityMismatch);
//   - the date must parse and fall inside a materialized week
//     (ErrInvariantViolation);
//   - approved leave always wins: the value is forced to the leave label and
//     the request rejected with ErrLeaveOverride.
//
// Nothing is mutated on a rejection, except the leave override itself, which
// is the resolution the error reports.
func AssignShift(ctx context.Context, database db.Database, logger *zap.Logger, req AssignRequest) error {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return fmt.Errorf("%w: bad date %q", ErrInvariantViolation, req.Date)
	}

	employees, err := database.GetEmployees(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch employees: %w", err)
	}
	var emp *db.Employee
	for i := range employees {
		if employees[i].Name == req.Employee {
			emp = &employees[i]
			break
		}
	}
	if emp == nil {
		return fmt.Errorf("%w: unknown employee %q", ErrInvariantViolation, req.Employee)
	}

	capable := emp.SectionName == req.Section
	if !capable {
		roles, err := database.GetEmployeeRoles(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch employee roles: %w", err)
		}
		for _, r := range roles {
			if r.EmployeeID == emp.ID && r.SectionName == req.Section {
				capable = true
				break
			}
		}
	}
	if !capable {
		return fmt.Errorf("%w: %s has no %s capability", ErrCapabilityMismatch, emp.Name, req.Section)
	}

	weekStart, err := weekContaining(ctx, database, date)
	if err != nil {
		return err
	}
	assignments, err := database.GetAssignments(ctx, []time.Time{weekStart})
	if err != nil {
		return fmt.Errorf("failed to fetch assignments: %w", err)
	}
	var target *db.Assignment
	for i := range assignments {
		a := &assignments[i]
		if a.EmployeeID == emp.ID && schedule.DateKey(a.Date) == schedule.DateKey(date) {
			target = a
			break
		}
	}
	if target == nil {
		return fmt.Errorf("%w: no assignment row for %s on %s", ErrInvariantViolation, emp.Name, req.Date)
	}

	timeOff, err := database.GetTimeOff(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch time off: %w", err)
	}
	for _, t := range timeOff {
		if t.Name != emp.Name || !t.Approved {
			continue
		}
		covers := (schedule.TimeOff{From: t.FromDate, To: t.ToDate}).Covers(date)
		if !covers {
			continue
		}
		if target.Value != schedule.TimeOffLabel {
			target.Value = schedule.TimeOffLabel
			if err := database.UpdateAssignment(ctx, target); err != nil {
				return err
			}
		}
		logger.Info("Manual assignment overridden by approved leave",
			zap.String("employee", emp.Name),
			zap.String("date", req.Date))
		return fmt.Errorf("%w: %s on %s", ErrLeaveOverride, emp.Name, req.Date)
	}

	target.Value = req.Value
	if err := database.UpdateAssignment(ctx, target); err != nil {
		return err
	}

	logger.Info("Manual assignment applied",
		zap.String("employee", emp.Name),
		zap.String("section", req.Section),
		zap.String("date", req.Date),
		zap.String("value", req.Value))

	return nil
}

// weekContaining resolves the materialized week holding the date.
func weekContaining(ctx context.Context, database db.Database, date time.Time) (time.Time, error) {
	weeks, err := database.GetWeeks(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to fetch weeks: %w", err)
	}
	d := schedule.Midnight(date)
	for _, w := range weeks {
		start := schedule.Midnight(w.StartDate)
		if !d.Before(start) && d.Before(start.AddDate(0, 0, 7)) {
			return start, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: date %s is outside every materialized week",
		ErrInvariantViolation, schedule.DateKey(date))
}
