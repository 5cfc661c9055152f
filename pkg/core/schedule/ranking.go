package schedule

import (
	"math"
	"sort"
)

// rankKey is the lexicographic sort key for a slot's candidates. Lower is
// better on every component.
type rankKey struct {
	overQuota    int // 0 while still under the preferred weekly count
	prefMismatch int // 0 when the employee's preferred shift matches the slot
	inconsistent int // 0 when the slot matches the last token this week in this department
	seniority    int // rank, unranked sorts last
	assigned     int // running weekly assigned count, load-balances ties
}

func (k rankKey) less(o rankKey) bool {
	if k.overQuota != o.overQuota {
		return k.overQuota < o.overQuota
	}
	if k.prefMismatch != o.prefMismatch {
		return k.prefMismatch < o.prefMismatch
	}
	if k.inconsistent != o.inconsistent {
		return k.inconsistent < o.inconsistent
	}
	if k.seniority != o.seniority {
		return k.seniority < o.seniority
	}
	return k.assigned < o.assigned
}

// seniorityKey orders employees most-senior first with unranked employees
// last. Unranked employees are never excluded, only deprioritized.
func seniorityKey(emp Employee) int {
	if emp.Seniority == 0 {
		return math.MaxInt
	}
	return emp.Seniority
}

type lastTokenKey struct {
	employeeID string
	dept       Department
}

// rankCandidates orders an eligible candidate set for one slot by the fixed
// lexicographic key. The sort is stable, so criteria left tied fall back to
// the input order deterministically. The slice is sorted in place; the best
// candidate is the first element.
func rankCandidates(candidates []Employee, dept Department, label string, counts map[string]int, lastTokens map[lastTokenKey]string) {
	token := NormalizeToken(dept, label)
	key := func(emp Employee) rankKey {
		k := rankKey{
			overQuota:    1,
			prefMismatch: 1,
			inconsistent: 1,
			seniority:    seniorityKey(emp),
			assigned:     counts[emp.ID],
		}
		if emp.PreferredPerWeek != nil && counts[emp.ID] < *emp.PreferredPerWeek {
			k.overQuota = 0
		}
		if emp.PreferredShift != "" && emp.PreferredShift == token {
			k.prefMismatch = 0
		}
		if last, ok := lastTokens[lastTokenKey{employeeID: emp.ID, dept: dept}]; ok && last == token {
			k.inconsistent = 0
		}
		return k
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return key(candidates[i]).less(key(candidates[j]))
	})
}

// staggerRank orders a selected Front Desk pair for stagger placement: most
// senior first, unranked after every ranked employee, late-stagger overrides
// always last so they take the later start time.
func staggerRank(emp Employee) int {
	if emp.LateStagger {
		return math.MaxInt
	}
	if emp.Seniority == 0 {
		return math.MaxInt - 1
	}
	return emp.Seniority
}

// sortByStagger re-sorts a selected pair purely for stagger placement; the
// original selection order is the tie-break.
func sortByStagger(picks []Employee) {
	sort.SliceStable(picks, func(i, j int) bool {
		return staggerRank(picks[i]) < staggerRank(picks[j])
	})
}
