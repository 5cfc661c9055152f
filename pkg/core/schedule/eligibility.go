package schedule

import "time"

// IneligibleReason says why a candidate was dropped for a slot.
type IneligibleReason string

const (
	ReasonAlreadyAssigned IneligibleReason = "already assigned"
	ReasonNotAvailable    IneligibleReason = "not available"
	ReasonRestRule        IneligibleReason = "rest rule"
	ReasonTimeOffRequest  IneligibleReason = "time off request"
	ReasonWeeklyCap       IneligibleReason = "max per week reached"
)

// eligibility holds the read-only context the filter needs for one week.
type eligibility struct {
	roster  *Roster
	avail   *AvailabilityIndex
	timeOff map[string][]TimeOff // keyed by employee name
	counts  map[string]int       // running weekly assigned counts
	caps    map[Department]int   // department default weekly caps
}

// effectiveMax returns the weekly cap for the employee in the department:
// the explicit per-employee maximum if set, otherwise the department default.
// Zero means uncapped.
func (el *eligibility) effectiveMax(emp Employee, dept Department) int {
	if emp.MaxPerWeek != nil {
		return *emp.MaxPerWeek
	}
	return el.caps[dept]
}

// hasTimeOff reports whether the employee has any leave request, approved or
// not, overlapping the date.
func (el *eligibility) hasTimeOff(name string, date time.Time) bool {
	for _, t := range el.timeOff[name] {
		if t.Covers(date) {
			return true
		}
	}
	return false
}

// hasApprovedTimeOff reports whether approved leave covers the date.
func (el *eligibility) hasApprovedTimeOff(name string, date time.Time) bool {
	for _, t := range el.timeOff[name] {
		if t.Approved && t.Covers(date) {
			return true
		}
	}
	return false
}

// restOK applies the inter-day rest rules against the previous date's
// assignment, including across week boundaries. Front Desk: no AM the day
// after a PM, no PM the day after an Audit. Shuttle: no AM the day after a
// PM or Crew, no Midday the day after a Crew.
func (el *eligibility) restOK(employeeID string, date time.Time, dept Department, label string) bool {
	prev := el.roster.Get(employeeID, date.AddDate(0, 0, -1))
	if prev == nil || !prev.Active() {
		return true
	}
	switch dept {
	case FrontDesk:
		cur, ok := FrontDeskVariantOf(label)
		if !ok {
			return true
		}
		prevVar, ok := FrontDeskVariantOf(prev.Value)
		if !ok {
			return true
		}
		if cur == FrontDeskAM && prevVar == FrontDeskPM {
			return false
		}
		if cur == FrontDeskPM && prevVar == FrontDeskAudit {
			return false
		}
	case Shuttle:
		cur, ok := ShuttleVariantOf(label)
		if !ok {
			if v, tokenOK := shuttleVariantFromToken(label); tokenOK {
				cur = v
			} else {
				return true
			}
		}
		prevVar, ok := ShuttleVariantOf(prev.Value)
		if !ok {
			return true
		}
		if cur == ShuttleAM && (prevVar == ShuttlePM || prevVar == ShuttleCrew) {
			return false
		}
		if cur == ShuttleMidday && prevVar == ShuttleCrew {
			return false
		}
	}
	return true
}

func shuttleVariantFromToken(token string) (ShuttleVariant, bool) {
	switch ShuttleVariant(token) {
	case ShuttleAM, ShuttleMidday, ShuttlePM, ShuttleCrew:
		return ShuttleVariant(token), true
	}
	return "", false
}

// check runs the full eligibility filter for one (employee, department,
// shift, date) slot. The returned reason is meaningful only when ok is false.
// markDismissed is true when the employee was rejected solely due to an
// unapproved leave request, i.e. would otherwise have passed availability and
// rest; the caller records that on the day's assignment.
func (el *eligibility) check(emp Employee, dept Department, label string, date time.Time) (ok bool, reason IneligibleReason, markDismissed bool) {
	a := el.roster.Get(emp.ID, date)
	if a == nil || a.Value != Unassigned {
		return false, ReasonAlreadyAssigned, false
	}
	if !el.avail.Allows(emp.ID, dept, label, date) {
		return false, ReasonNotAvailable, false
	}
	if !el.restOK(emp.ID, date, dept, label) {
		return false, ReasonRestRule, false
	}
	if el.hasTimeOff(emp.Name, date) {
		return false, ReasonTimeOffRequest, true
	}
	if maxw := el.effectiveMax(emp, dept); maxw > 0 && el.counts[emp.ID] >= maxw {
		return false, ReasonWeeklyCap, false
	}
	return true, "", false
}
