package db

import "time"

// Employee is a staff member record. SectionName is the home department;
// cross-training grants live in EmployeeRole rows.
type Employee struct {
	ID          string
	Name        string
	SectionName string

	// Seniority rank, lower is more senior; zero means unranked
	Seniority int

	// PreferredShift is the self-declared preferred shift token, if any
	PreferredShift string

	// PreferredPerWeek and MaxPerWeek are optional weekly shift counts
	PreferredPerWeek *int
	MaxPerWeek       *int

	// LateStagger pins the employee to the later Front Desk stagger
	LateStagger bool
}

// EmployeeRole grants an employee a secondary department capability.
type EmployeeRole struct {
	EmployeeID  string
	SectionName string
}

// AvailabilityEntry is an explicit opt-in for one weekday and shift token.
type AvailabilityEntry struct {
	EmployeeID string
	DayOfWeek  int // 0=Mon .. 6=Sun
	ShiftLabel string
	Allowed    bool
}

// TimeOff is a leave request record.
type TimeOff struct {
	ID       string
	Name     string
	Role     string
	FromDate time.Time
	ToDate   time.Time
	Approved bool
	Vacation bool
}

// Week identifies a 7-day scheduling window by its anchor date.
type Week struct {
	StartDate time.Time
}

// Assignment is one employee's value for one calendar date within a week.
type Assignment struct {
	WeekStart        time.Time
	EmployeeID       string
	Date             time.Time
	Value            string
	DismissedTimeOff bool
}
