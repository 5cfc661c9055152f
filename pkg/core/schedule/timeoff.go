package schedule

import "time"

// SyncTimeOff re-synchronizes approved leave into one week of assignments:
// every date covered by an approved request is forced to the leave label,
// overwriting any generated or manual value. Idempotent; safe to run any
// number of times and in any order relative to generation.
func SyncTimeOff(roster *Roster, employees []Employee, timeOffByName map[string][]TimeOff, anchor time.Time) {
	for _, date := range WeekDates(anchor) {
		for _, emp := range employees {
			if !approvedCovers(timeOffByName[emp.Name], date) {
				continue
			}
			if a := roster.Get(emp.ID, date); a != nil && a.Value != TimeOffLabel {
				a.Value = TimeOffLabel
			}
		}
	}
}

// ClearTimeOff reverts leave-label assignments covered by the given request
// back to the placeholder, for the week at anchor. Used when a request is
// un-approved; dates still covered by another approved request are kept.
func ClearTimeOff(roster *Roster, employees []Employee, timeOffByName map[string][]TimeOff, req TimeOff, anchor time.Time) {
	for _, date := range WeekDates(anchor) {
		if !req.Covers(date) {
			continue
		}
		for _, emp := range employees {
			if emp.Name != req.Name {
				continue
			}
			if approvedCovers(timeOffByName[emp.Name], date) {
				continue
			}
			if a := roster.Get(emp.ID, date); a != nil && a.Value == TimeOffLabel {
				a.Value = Unassigned
			}
		}
	}
}

func approvedCovers(requests []TimeOff, date time.Time) bool {
	for _, t := range requests {
		if t.Approved && t.Covers(date) {
			return true
		}
	}
	return false
}
