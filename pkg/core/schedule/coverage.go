package schedule

import "time"

// Required headcount per shift category.
const (
	RequiredPerFrontDeskVariant = 2
	RequiredPerShuttleVariant   = 1
	RequiredPerBreakfastShift   = 1
)

// DayCoverage summarizes one department's coverage for one date.
type DayCoverage struct {
	// Counts is keyed by variant token (Front Desk, Shuttle) or literal
	// shift label (Breakfast Bar)
	Counts map[string]int

	// Missing is true when any required variant is below its threshold
	Missing bool

	// DuplicateStagger is set only for Front Desk: both employees on a
	// variant hold the identical concrete stagger label instead of the two
	// distinct ones. Headcount is satisfied but the schedule needs review.
	DuplicateStagger bool
}

// DepartmentCoverage maps date keys to per-day coverage for one department.
type DepartmentCoverage struct {
	Department Department
	Required   int
	Days       map[string]*DayCoverage
}

// WeekCoverage is the full coverage report for one week: a pure, deterministic
// function of the assignment set.
type WeekCoverage struct {
	WeekStart time.Time
	Dates     []string
	ByDept    map[Department]*DepartmentCoverage
}

// AnalyzeCoverage computes per-day, per-department coverage for the week
// starting at anchor. Assignments are bucketed by the department owning their
// label, so secondary-capability coverage counts toward the department it
// actually staffs.
func AnalyzeCoverage(roster *Roster, anchor time.Time) *WeekCoverage {
	report := &WeekCoverage{
		WeekStart: Midnight(anchor),
		ByDept:    make(map[Department]*DepartmentCoverage),
	}
	for _, date := range WeekDates(anchor) {
		report.Dates = append(report.Dates, DateKey(date))
	}
	dateSet := make(map[string]bool, len(report.Dates))
	for _, k := range report.Dates {
		dateSet[k] = true
	}

	fd := newDeptCoverage(FrontDesk, RequiredPerFrontDeskVariant*len(FrontDeskVariants), report.Dates, tokenStrings(FrontDeskVariants))
	sh := newDeptCoverage(Shuttle, RequiredPerShuttleVariant*len(ShuttleVariants), report.Dates, tokenStrings(ShuttleVariants))
	bb := newDeptCoverage(BreakfastBar, RequiredPerBreakfastShift*len(BreakfastBarLabels), report.Dates, BreakfastBarLabels)
	report.ByDept[FrontDesk] = fd
	report.ByDept[Shuttle] = sh
	report.ByDept[BreakfastBar] = bb

	// Exact stagger label tallies per date and variant, for duplicate detection
	staggerCounts := make(map[string]map[FrontDeskVariant]map[string]int)

	for _, a := range roster.All() {
		key := DateKey(a.Date)
		if !dateSet[key] || !a.Active() {
			continue
		}
		if v, ok := FrontDeskVariantOf(a.Value); ok {
			fd.Days[key].Counts[v.Token()]++
			byVar, ok := staggerCounts[key]
			if !ok {
				byVar = make(map[FrontDeskVariant]map[string]int)
				staggerCounts[key] = byVar
			}
			if byVar[v] == nil {
				byVar[v] = make(map[string]int)
			}
			byVar[v][a.Value]++
		}
		if v, ok := ShuttleVariantOf(a.Value); ok {
			sh.Days[key].Counts[string(v)]++
		}
		if IsBreakfastBarLabel(a.Value) {
			bb.Days[key].Counts[a.Value]++
		}
	}

	for _, key := range report.Dates {
		day := fd.Days[key]
		for _, v := range FrontDeskVariants {
			if day.Counts[v.Token()] < RequiredPerFrontDeskVariant {
				day.Missing = true
			}
			exact := staggerCounts[key][v]
			total, distinct := 0, 0
			for _, n := range exact {
				total += n
				if n > 0 {
					distinct++
				}
			}
			if total >= 2 && distinct == 1 {
				day.DuplicateStagger = true
			}
		}
		for _, v := range ShuttleVariants {
			if sh.Days[key].Counts[string(v)] < RequiredPerShuttleVariant {
				sh.Days[key].Missing = true
			}
		}
		for _, label := range BreakfastBarLabels {
			if bb.Days[key].Counts[label] < RequiredPerBreakfastShift {
				bb.Days[key].Missing = true
			}
		}
	}
	return report
}

func newDeptCoverage(dept Department, required int, dates []string, buckets []string) *DepartmentCoverage {
	dc := &DepartmentCoverage{
		Department: dept,
		Required:   required,
		Days:       make(map[string]*DayCoverage, len(dates)),
	}
	for _, key := range dates {
		counts := make(map[string]int, len(buckets))
		for _, b := range buckets {
			counts[b] = 0
		}
		dc.Days[key] = &DayCoverage{Counts: counts}
	}
	return dc
}

func tokenStrings[T ~string](variants []T) []string {
	out := make([]string, len(variants))
	for i, v := range variants {
		out[i] = string(v)
	}
	return out
}
