package schedule

import "time"

type rosterKey struct {
	employeeID string
	date       string
}

// Roster is an in-memory index over the horizon's assignments, keyed by
// (employee, date). It replaces repeated store lookups inside the generation
// loops and makes the rest-rule lookback a single map probe.
type Roster struct {
	byKey map[rosterKey]*Assignment
	all   []*Assignment
}

// NewRoster indexes the given assignments. The slices' *Assignment values are
// shared: mutations through the roster are visible to the caller.
func NewRoster(assignments []*Assignment) *Roster {
	r := &Roster{
		byKey: make(map[rosterKey]*Assignment, len(assignments)),
		all:   assignments,
	}
	for _, a := range assignments {
		r.byKey[rosterKey{employeeID: a.EmployeeID, date: DateKey(a.Date)}] = a
	}
	return r
}

// Get returns the assignment for the employee on the date, or nil if the date
// is outside the materialized horizon.
func (r *Roster) Get(employeeID string, date time.Time) *Assignment {
	return r.byKey[rosterKey{employeeID: employeeID, date: DateKey(date)}]
}

// All returns every indexed assignment.
func (r *Roster) All() []*Assignment {
	return r.all
}

// ResetWeek sets every assignment in the week back to the placeholder and
// clears dismissed flags, preparing the week for full regeneration.
func (r *Roster) ResetWeek(anchor time.Time) {
	start := Midnight(anchor)
	end := start.AddDate(0, 0, 7)
	for _, a := range r.all {
		d := Midnight(a.Date)
		if d.Before(start) || !d.Before(end) {
			continue
		}
		a.Value = Unassigned
		a.DismissedTimeOff = false
	}
}
