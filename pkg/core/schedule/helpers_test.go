package schedule

import (
	"time"
)

// date builds a UTC midnight date for test fixtures.
func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// materialize builds the placeholder assignment rows for every employee and
// date in the horizon, the same shape the store hands to generation.
func materialize(employees []Employee, anchor time.Time, weeks int) []*Assignment {
	var out []*Assignment
	for w := 0; w < weeks; w++ {
		weekStart := Midnight(anchor).AddDate(0, 0, 7*w)
		for _, d := range WeekDates(weekStart) {
			for _, emp := range employees {
				out = append(out, &Assignment{
					EmployeeID: emp.ID,
					WeekStart:  weekStart,
					Date:       d,
					Value:      Unassigned,
				})
			}
		}
	}
	return out
}

// available is a shorthand for one opted-in availability entry.
func available(employeeID string, weekday int, shift string) AvailabilityEntry {
	return AvailabilityEntry{EmployeeID: employeeID, Weekday: weekday, Shift: shift, Allowed: true}
}

// availableAllWeek opts the employee into the shift on all seven weekdays.
func availableAllWeek(employeeID, shift string) []AvailabilityEntry {
	entries := make([]AvailabilityEntry, 7)
	for day := 0; day < 7; day++ {
		entries[day] = available(employeeID, day, shift)
	}
	return entries
}

func intPtr(n int) *int {
	return &n
}
