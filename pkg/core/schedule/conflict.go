package schedule

import "time"

// WeekConflicts maps date keys to the names of employees double-booked that
// date: holders of multi-department capability whose assigned value belongs
// to two or more of their departments' label sets. Purely informational; the
// generator never blocks on it.
type WeekConflicts struct {
	WeekStart time.Time
	ByDate    map[string][]string
}

// DetectConflicts scans one week of assignments for double-booked employees.
// Only employees with capability in more than one department can conflict.
func DetectConflicts(roster *Roster, employees []Employee, anchor time.Time) WeekConflicts {
	report := WeekConflicts{
		WeekStart: Midnight(anchor),
		ByDate:    make(map[string][]string),
	}
	var multi []Employee
	for _, emp := range employees {
		if len(emp.Capabilities()) > 1 {
			multi = append(multi, emp)
		}
	}
	if len(multi) == 0 {
		return report
	}
	for _, date := range WeekDates(anchor) {
		for _, emp := range multi {
			a := roster.Get(emp.ID, date)
			if a == nil || !a.Active() {
				continue
			}
			active := 0
			for _, dept := range emp.Capabilities() {
				if HoldsDepartmentShift(dept, a.Value) {
					active++
				}
			}
			if active > 1 {
				key := DateKey(date)
				report.ByDate[key] = append(report.ByDate[key], emp.Name)
			}
		}
	}
	return report
}
