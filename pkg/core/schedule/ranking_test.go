package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func namesOf(employees []Employee) []string {
	names := make([]string, len(employees))
	for i, e := range employees {
		names[i] = e.Name
	}
	return names
}

func TestRankCandidates_UnderQuotaBeatsSeniority(t *testing.T) {
	// Bella is far more senior, but Alice is still under her preferred
	// weekly count and Bella is not
	candidates := []Employee{
		{ID: "b", Name: "Bella", Department: FrontDesk, Seniority: 1, PreferredPerWeek: intPtr(2)},
		{ID: "a", Name: "Alice", Department: FrontDesk, Seniority: 9, PreferredPerWeek: intPtr(4)},
	}
	counts := map[string]int{"a": 2, "b": 2}

	rankCandidates(candidates, FrontDesk, "AM", counts, nil)

	assert.Equal(t, []string{"Alice", "Bella"}, namesOf(candidates))
}

func TestRankCandidates_PreferredShiftMatch(t *testing.T) {
	candidates := []Employee{
		{ID: "b", Name: "Bella", Department: FrontDesk, Seniority: 1},
		{ID: "a", Name: "Alice", Department: FrontDesk, Seniority: 9, PreferredShift: "PM"},
	}

	// Preference is matched against the collapsed token, not the label
	rankCandidates(candidates, FrontDesk, "PM (2:00PM–10:00PM)", map[string]int{}, nil)

	assert.Equal(t, []string{"Alice", "Bella"}, namesOf(candidates))
}

func TestRankCandidates_WithinWeekContinuity(t *testing.T) {
	candidates := []Employee{
		{ID: "b", Name: "Bella", Department: FrontDesk, Seniority: 1},
		{ID: "a", Name: "Alice", Department: FrontDesk, Seniority: 9},
	}
	lastTokens := map[lastTokenKey]string{
		{employeeID: "a", dept: FrontDesk}: "Audit",
	}

	rankCandidates(candidates, FrontDesk, "Audit", map[string]int{}, lastTokens)

	assert.Equal(t, []string{"Alice", "Bella"}, namesOf(candidates))
}

func TestRankCandidates_SeniorityThenLoad(t *testing.T) {
	candidates := []Employee{
		{ID: "c", Name: "Cara", Department: Shuttle},               // unranked
		{ID: "b", Name: "Ben", Department: Shuttle, Seniority: 4},
		{ID: "a", Name: "Ana", Department: Shuttle, Seniority: 2},
	}

	rankCandidates(candidates, Shuttle, "AM (3:30AM–11:30AM)", map[string]int{}, nil)

	// Lower rank is more senior; unranked sorts after every ranked employee
	assert.Equal(t, []string{"Ana", "Ben", "Cara"}, namesOf(candidates))
}

func TestRankCandidates_RunningCountBreaksTies(t *testing.T) {
	candidates := []Employee{
		{ID: "a", Name: "Ana", Department: Shuttle, Seniority: 2},
		{ID: "b", Name: "Ben", Department: Shuttle, Seniority: 2},
	}
	counts := map[string]int{"a": 3, "b": 1}

	rankCandidates(candidates, Shuttle, "PM (5:30PM–1:30AM)", counts, nil)

	assert.Equal(t, []string{"Ben", "Ana"}, namesOf(candidates))
}

func TestRankCandidates_StableOnFullTie(t *testing.T) {
	candidates := []Employee{
		{ID: "a", Name: "Ana", Department: BreakfastBar},
		{ID: "b", Name: "Ben", Department: BreakfastBar},
	}

	rankCandidates(candidates, BreakfastBar, "5AM–12PM", map[string]int{}, nil)

	assert.Equal(t, []string{"Ana", "Ben"}, namesOf(candidates))
}

func TestSortByStagger_SeniorTakesEarlierStart(t *testing.T) {
	picks := []Employee{
		{ID: "b", Name: "Ben", Seniority: 5},
		{ID: "a", Name: "Ana", Seniority: 1},
	}

	sortByStagger(picks)

	assert.Equal(t, []string{"Ana", "Ben"}, namesOf(picks))
}

func TestSortByStagger_LateStaggerAlwaysLast(t *testing.T) {
	picks := []Employee{
		{ID: "r", Name: "Rory", Seniority: 1, LateStagger: true},
		{ID: "u", Name: "Uma"}, // unranked
	}

	sortByStagger(picks)

	// The override loses the earlier start even to an unranked employee
	assert.Equal(t, []string{"Uma", "Rory"}, namesOf(picks))
}
