package schedule

import "time"

type availabilityKey struct {
	weekday int
	shift   string
}

// AvailabilityIndex is a precomputed lookup from employee to the set of
// (weekday, shift token) pairs the employee has opted into. Built once per
// generation run and read-only afterward.
type AvailabilityIndex struct {
	allowed map[string]map[availabilityKey]bool
}

// BuildAvailabilityIndex indexes the full availability entry set.
// Entries with Allowed false are ignored rather than recorded as denials;
// absence of a matching entry already means unavailable.
func BuildAvailabilityIndex(entries []AvailabilityEntry) *AvailabilityIndex {
	idx := &AvailabilityIndex{allowed: make(map[string]map[availabilityKey]bool)}
	for _, e := range entries {
		if !e.Allowed {
			continue
		}
		set, ok := idx.allowed[e.EmployeeID]
		if !ok {
			set = make(map[availabilityKey]bool)
			idx.allowed[e.EmployeeID] = set
		}
		set[availabilityKey{weekday: e.Weekday, shift: e.Shift}] = true
	}
	return idx
}

// Allows reports whether the employee has opted into the shift on the date's
// weekday. Front Desk labels are collapsed to their variant token before the
// lookup. Employees with no entries at all are unavailable for everything.
func (idx *AvailabilityIndex) Allows(employeeID string, dept Department, label string, date time.Time) bool {
	set := idx.allowed[employeeID]
	if len(set) == 0 {
		return false
	}
	key := availabilityKey{
		weekday: Weekday(date),
		shift:   NormalizeToken(dept, label),
	}
	return set[key]
}
