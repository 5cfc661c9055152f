package schedule

import "time"

// Department identifies one of the three staffed areas of the hotel.
type Department string

const (
	FrontDesk    Department = "Front Desk"
	BreakfastBar Department = "Breakfast Bar"
	Shuttle      Department = "Shuttle"
)

// Departments lists all departments in scheduling priority order.
// Front Desk is staffed first and may reserve shared staff from the others.
var Departments = []Department{FrontDesk, BreakfastBar, Shuttle}

// Default weekly shift caps applied when an employee has no explicit maximum.
// Breakfast Bar carries no default cap.
const (
	DefaultFrontDeskCap = 5
	DefaultShuttleCap   = 4
)

// Employee is a scheduling-relevant view of a staff member.
type Employee struct {
	ID   string
	Name string

	// Department is the employee's home department
	Department Department

	// Secondary lists departments the employee is cross-trained for
	Secondary []Department

	// Seniority is the employee's rank; lower is more senior.
	// Zero means unranked, which sorts after every ranked employee.
	Seniority int

	// PreferredShift is the employee's self-declared preferred shift token
	// (e.g. "AM" for Front Desk, a literal label elsewhere). Empty if none.
	PreferredShift string

	// PreferredPerWeek is the desired number of shifts per week, if declared
	PreferredPerWeek *int

	// MaxPerWeek overrides the department default weekly cap, if set
	MaxPerWeek *int

	// LateStagger marks an employee who is always placed on the later
	// stagger of a Front Desk variant regardless of seniority
	LateStagger bool
}

// CanWork reports whether the employee may be scheduled into the department,
// either as their home department or through a secondary capability.
func (e Employee) CanWork(dept Department) bool {
	if e.Department == dept {
		return true
	}
	for _, d := range e.Secondary {
		if d == dept {
			return true
		}
	}
	return false
}

// Capabilities returns the employee's departments, home department first.
func (e Employee) Capabilities() []Department {
	caps := []Department{e.Department}
	for _, d := range e.Secondary {
		if d != e.Department {
			caps = append(caps, d)
		}
	}
	return caps
}

// AvailabilityEntry is an explicit opt-in for one weekday and shift token.
// An employee with no entries at all is unavailable for everything.
type AvailabilityEntry struct {
	EmployeeID string

	// Weekday is 0=Monday .. 6=Sunday
	Weekday int

	// Shift is the shift token: a collapsed variant token for Front Desk
	// ("AM", "PM", "Audit"), the literal label for other departments
	Shift string

	Allowed bool
}

// TimeOff is a leave request over an inclusive date range.
type TimeOff struct {
	ID         string
	Name       string
	Department string
	From       time.Time
	To         time.Time

	// Approved leave always overrides generated assignments.
	// Unapproved leave still suppresses the employee from being chosen.
	Approved bool

	// Vacation only affects display wording, never scheduling
	Vacation bool
}

// Covers reports whether the request's range includes the given date.
func (t TimeOff) Covers(date time.Time) bool {
	d := Midnight(date)
	return !d.Before(Midnight(t.From)) && !d.After(Midnight(t.To))
}

// Assignment is one employee's value for one calendar date. Every employee
// has exactly one per date in a materialized week; generation mutates the
// value in place and never deletes the row.
type Assignment struct {
	EmployeeID string
	WeekStart  time.Time
	Date       time.Time

	// Value is Unassigned, TimeOffLabel, or one concrete shift label
	Value string

	// DismissedTimeOff records that generation would have picked this
	// employee but skipped them solely due to an unapproved leave request
	DismissedTimeOff bool
}

// Active reports whether the assignment holds a concrete shift, i.e. is
// neither the placeholder nor the leave label.
func (a *Assignment) Active() bool {
	return a.Value != "" && a.Value != Unassigned && a.Value != TimeOffLabel
}

// Midnight truncates a time to its calendar date in UTC.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateKey formats a date as its canonical yyyy-mm-dd key.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// WeekDates returns the 7 consecutive dates of the week starting at anchor.
func WeekDates(anchor time.Time) []time.Time {
	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = Midnight(anchor).AddDate(0, 0, i)
	}
	return dates
}

// Weekday maps a date to the 0=Monday .. 6=Sunday convention used by
// availability entries.
func Weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
