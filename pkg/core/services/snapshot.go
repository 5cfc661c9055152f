package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mgoodall/innkeeper/internal/config"
	"github.com/mgoodall/innkeeper/pkg/core/schedule"
	"github.com/mgoodall/innkeeper/pkg/db"
)

// Snapshot is the in-memory view of the store a run operates on. Assignments
// are pointers shared with the engine roster, so generated values can be
// written back verbatim.
type Snapshot struct {
	Employees    []schedule.Employee
	Availability []schedule.AvailabilityEntry
	TimeOff      []schedule.TimeOff
	Assignments  []*schedule.Assignment
}

// loadSnapshot reads the full record set for the given week anchors and maps
// it onto the engine's types, folding secondary roles into capabilities and
// applying config overrides (late-stagger employees, recurring time off).
func loadSnapshot(ctx context.Context, database db.Database, cfg *config.Config, weekStarts []time.Time) (*Snapshot, error) {
	employees, err := database.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	roles, err := database.GetEmployeeRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employee roles: %w", err)
	}
	availability, err := database.GetAvailability(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability: %w", err)
	}
	timeOff, err := database.GetTimeOff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch time off: %w", err)
	}
	assignments, err := database.GetAssignments(ctx, weekStarts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	secondary := make(map[string][]schedule.Department)
	for _, r := range roles {
		secondary[r.EmployeeID] = append(secondary[r.EmployeeID], schedule.Department(r.SectionName))
	}
	lateStagger := make(map[string]bool)
	if cfg != nil {
		for _, name := range cfg.LateStaggerOverrides {
			lateStagger[name] = true
		}
	}

	snap := &Snapshot{}
	for _, e := range employees {
		snap.Employees = append(snap.Employees, schedule.Employee{
			ID:               e.ID,
			Name:             e.Name,
			Department:       schedule.Department(e.SectionName),
			Secondary:        secondary[e.ID],
			Seniority:        e.Seniority,
			PreferredShift:   e.PreferredShift,
			PreferredPerWeek: e.PreferredPerWeek,
			MaxPerWeek:       e.MaxPerWeek,
			LateStagger:      e.LateStagger || lateStagger[e.Name],
		})
	}
	for _, a := range availability {
		snap.Availability = append(snap.Availability, schedule.AvailabilityEntry{
			EmployeeID: a.EmployeeID,
			Weekday:    a.DayOfWeek,
			Shift:      a.ShiftLabel,
			Allowed:    a.Allowed,
		})
	}
	for _, t := range timeOff {
		snap.TimeOff = append(snap.TimeOff, schedule.TimeOff{
			ID:         t.ID,
			Name:       t.Name,
			Department: t.Role,
			From:       t.FromDate,
			To:         t.ToDate,
			Approved:   t.Approved,
			Vacation:   t.Vacation,
		})
	}
	if cfg != nil && len(weekStarts) > 0 {
		horizonStart := schedule.Midnight(weekStarts[0])
		horizonEnd := schedule.Midnight(weekStarts[len(weekStarts)-1]).AddDate(0, 0, 6)
		recurring, err := cfg.ExpandRecurringTimeOff(horizonStart, horizonEnd)
		if err != nil {
			return nil, fmt.Errorf("failed to expand recurring time off: %w", err)
		}
		for _, t := range recurring {
			snap.TimeOff = append(snap.TimeOff, schedule.TimeOff{
				Name:     t.Name,
				From:     t.Date,
				To:       t.Date,
				Approved: t.Approved,
				Vacation: t.Vacation,
			})
		}
	}
	for _, a := range assignments {
		snap.Assignments = append(snap.Assignments, &schedule.Assignment{
			EmployeeID:       a.EmployeeID,
			WeekStart:        a.WeekStart,
			Date:             a.Date,
			Value:            a.Value,
			DismissedTimeOff: a.DismissedTimeOff,
		})
	}
	return snap, nil
}

// persistAssignments writes the (mutated) snapshot assignments back.
func persistAssignments(ctx context.Context, database db.Database, assignments []*schedule.Assignment) error {
	records := make([]db.Assignment, 0, len(assignments))
	for _, a := range assignments {
		records = append(records, db.Assignment{
			WeekStart:        a.WeekStart,
			EmployeeID:       a.EmployeeID,
			Date:             a.Date,
			Value:            a.Value,
			DismissedTimeOff: a.DismissedTimeOff,
		})
	}
	if err := database.SaveAssignments(ctx, records); err != nil {
		return fmt.Errorf("failed to save assignments: %w", err)
	}
	return nil
}
