package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_RequiresBaseWeek(t *testing.T) {
	_, err := Generate(GenerationConfig{})
	assert.Error(t, err)
}

func TestGenerate_RejectsNegativeWeeks(t *testing.T) {
	_, err := Generate(GenerationConfig{BaseWeek: date(2026, time.January, 1), Weeks: -1})
	assert.Error(t, err)
}

func TestGenerate_SingleWorkerSingleDay(t *testing.T) {
	// One reception employee, opted in for Monday mornings only
	emps := []Employee{{ID: "a", Name: "Ana", Department: FrontDesk}}
	anchor := date(2026, time.January, 5) // Monday

	outcome, err := Generate(GenerationConfig{
		Employees:    emps,
		Availability: []AvailabilityEntry{available("a", 0, "AM")},
		Assignments:  materialize(emps, anchor, 1),
		BaseWeek:     anchor,
		Weeks:        1,
	})
	require.NoError(t, err)

	// A lone pick takes the earlier start
	assert.Equal(t, FrontDeskAM.EarlyLabel(), outcome.Roster.Get("a", anchor).Value)
	for i := 1; i < 7; i++ {
		assert.Equal(t, Unassigned, outcome.Roster.Get("a", anchor.AddDate(0, 0, i)).Value)
	}
}

func TestGenerate_SeniorWorkerTakesEarlierStagger(t *testing.T) {
	emps := []Employee{
		{ID: "b", Name: "Ben", Department: FrontDesk, Seniority: 7},
		{ID: "a", Name: "Ana", Department: FrontDesk, Seniority: 2},
	}
	anchor := date(2026, time.January, 5) // Monday

	outcome, err := Generate(GenerationConfig{
		Employees: emps,
		Availability: []AvailabilityEntry{
			available("a", 0, "PM"),
			available("b", 0, "PM"),
		},
		Assignments: materialize(emps, anchor, 1),
		BaseWeek:    anchor,
		Weeks:       1,
	})
	require.NoError(t, err)

	assert.Equal(t, FrontDeskPM.EarlyLabel(), outcome.Roster.Get("a", anchor).Value)
	assert.Equal(t, FrontDeskPM.LateLabel(), outcome.Roster.Get("b", anchor).Value)
}

func TestGenerate_LateStaggerOverride(t *testing.T) {
	emps := []Employee{
		{ID: "r", Name: "Rory", Department: FrontDesk, Seniority: 1, LateStagger: true},
		{ID: "u", Name: "Uma", Department: FrontDesk},
	}
	anchor := date(2026, time.January, 5)

	outcome, err := Generate(GenerationConfig{
		Employees: emps,
		Availability: []AvailabilityEntry{
			available("r", 0, "AM"),
			available("u", 0, "AM"),
			available("r", 1, "AM"),
		},
		Assignments: materialize(emps, anchor, 1),
		BaseWeek:    anchor,
		Weeks:       1,
	})
	require.NoError(t, err)

	// Despite outranking Uma, the override keeps Rory on the later start
	assert.Equal(t, FrontDeskAM.LateLabel(), outcome.Roster.Get("r", anchor).Value)
	assert.Equal(t, FrontDeskAM.EarlyLabel(), outcome.Roster.Get("u", anchor).Value)

	// A lone override pick still lands on the later start
	tuesday := anchor.AddDate(0, 0, 1)
	assert.Equal(t, FrontDeskAM.LateLabel(), outcome.Roster.Get("r", tuesday).Value)
}

func TestGenerate_ApprovedLeaveWinsOverAvailability(t *testing.T) {
	emps := []Employee{{ID: "a", Name: "Ana", Department: FrontDesk}}
	anchor := date(2026, time.January, 1) // Thursday
	wednesday := date(2026, time.January, 7)

	outcome, err := Generate(GenerationConfig{
		Employees:    emps,
		Availability: availableAllWeek("a", "AM"),
		TimeOff: []TimeOff{
			{Name: "Ana", From: wednesday, To: wednesday, Approved: true},
		},
		Assignments: materialize(emps, anchor, 1),
		BaseWeek:    anchor,
		Weeks:       1,
	})
	require.NoError(t, err)

	assert.Equal(t, TimeOffLabel, outcome.Roster.Get("a", wednesday).Value)
	assert.Equal(t, FrontDeskAM.EarlyLabel(), outcome.Roster.Get("a", anchor).Value)
}

func TestGenerate_UnapprovedLeaveMarksDismissed(t *testing.T) {
	emps := []Employee{{ID: "a", Name: "Ana", Department: FrontDesk}}
	anchor := date(2026, time.January, 1)
	wednesday := date(2026, time.January, 7)

	outcome, err := Generate(GenerationConfig{
		Employees:    emps,
		Availability: availableAllWeek("a", "AM"),
		TimeOff: []TimeOff{
			{Name: "Ana", From: wednesday, To: wednesday, Approved: false},
		},
		Assignments: materialize(emps, anchor, 1),
		BaseWeek:    anchor,
		Weeks:       1,
	})
	require.NoError(t, err)

	a := outcome.Roster.Get("a", wednesday)
	assert.Equal(t, Unassigned, a.Value)
	assert.True(t, a.DismissedTimeOff)

	// Other days are assigned normally and carry no flag
	other := outcome.Roster.Get("a", anchor)
	assert.Equal(t, FrontDeskAM.EarlyLabel(), other.Value)
	assert.False(t, other.DismissedTimeOff)
}

func TestGenerate_ReservationWithholdsReceptionCapableWorker(t *testing.T) {
	// Frank is the only reception-capable employee but has no reception
	// availability on Thursday. Reception stays short, so Frank must be
	// withheld from the breakfast pass even though he is eligible there.
	emps := []Employee{
		{ID: "f", Name: "Frank", Department: FrontDesk, Secondary: []Department{BreakfastBar}},
		{ID: "b", Name: "Bella", Department: BreakfastBar},
	}
	anchor := date(2026, time.January, 1) // Thursday

	outcome, err := Generate(GenerationConfig{
		Employees: emps,
		Availability: []AvailabilityEntry{
			available("f", 3, "7AM–12PM"),
			available("b", 3, "7AM–12PM"),
		},
		Assignments: materialize(emps, anchor, 1),
		BaseWeek:    anchor,
		Weeks:       1,
	})
	require.NoError(t, err)

	assert.Equal(t, Unassigned, outcome.Roster.Get("f", anchor).Value)
	assert.Equal(t, "7AM–12PM", outcome.Roster.Get("b", anchor).Value)
}

func TestGenerate_WeeklyCapLimitsAssignments(t *testing.T) {
	emps := []Employee{{ID: "a", Name: "Ana", Department: FrontDesk}}
	anchor := date(2026, time.January, 1)

	outcome, err := Generate(GenerationConfig{
		Employees:    emps,
		Availability: availableAllWeek("a", "AM"),
		Assignments:  materialize(emps, anchor, 1),
		BaseWeek:     anchor,
		Weeks:        1,
	})
	require.NoError(t, err)

	active := 0
	for _, a := range outcome.Roster.All() {
		if a.Active() {
			active++
		}
	}
	assert.Equal(t, DefaultFrontDeskCap, active)

	// The first five days fill, the cap stops the rest
	for i := 0; i < 7; i++ {
		a := outcome.Roster.Get("a", anchor.AddDate(0, 0, i))
		if i < DefaultFrontDeskCap {
			assert.Equal(t, FrontDeskAM.EarlyLabel(), a.Value)
		} else {
			assert.Equal(t, Unassigned, a.Value)
		}
	}
}

func TestGenerate_OneShiftPerDay(t *testing.T) {
	// Available for every reception variant; the day's first assignment
	// blocks the rest
	emps := []Employee{{ID: "a", Name: "Ana", Department: FrontDesk, MaxPerWeek: intPtr(0)}}
	anchor := date(2026, time.January, 1)
	entries := availableAllWeek("a", "AM")
	entries = append(entries, availableAllWeek("a", "PM")...)
	entries = append(entries, availableAllWeek("a", "Audit")...)

	outcome, err := Generate(GenerationConfig{
		Employees:    emps,
		Availability: entries,
		Assignments:  materialize(emps, anchor, 1),
		BaseWeek:     anchor,
		Weeks:        1,
	})
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		a := outcome.Roster.Get("a", anchor.AddDate(0, 0, i))
		assert.Equal(t, FrontDeskAM.EarlyLabel(), a.Value, "day %d", i)
	}
}

func TestGenerate_WeeklyCountsResetAcrossWeeks(t *testing.T) {
	emps := []Employee{{ID: "a", Name: "Ana", Department: Shuttle, MaxPerWeek: intPtr(2)}}
	anchor := date(2026, time.January, 1)

	outcome, err := Generate(GenerationConfig{
		Employees:    emps,
		Availability: availableAllWeek("a", ShuttleMidday.Label()),
		Assignments:  materialize(emps, anchor, 2),
		BaseWeek:     anchor,
		Weeks:        2,
	})
	require.NoError(t, err)

	for w := 0; w < 2; w++ {
		weekStart := anchor.AddDate(0, 0, 7*w)
		active := 0
		for i := 0; i < 7; i++ {
			if outcome.Roster.Get("a", weekStart.AddDate(0, 0, i)).Active() {
				active++
			}
		}
		assert.Equal(t, 2, active, "week %d", w)
	}
}

func TestGenerate_OutcomeReportsPerWeek(t *testing.T) {
	emps := []Employee{{ID: "a", Name: "Ana", Department: FrontDesk}}
	anchor := date(2026, time.January, 1)

	outcome, err := Generate(GenerationConfig{
		Employees:   emps,
		Assignments: materialize(emps, anchor, HorizonWeeks),
		BaseWeek:    anchor,
	})
	require.NoError(t, err)

	require.Len(t, outcome.WeekAnchors, HorizonWeeks)
	require.Len(t, outcome.Coverage, HorizonWeeks)
	require.Len(t, outcome.Conflicts, HorizonWeeks)
	for w, wa := range outcome.WeekAnchors {
		assert.Equal(t, anchor.AddDate(0, 0, 7*w), wa)
		assert.Equal(t, wa, outcome.Coverage[w].WeekStart)
	}
}

func TestGenerate_RegenerationResetsManualValues(t *testing.T) {
	emps := []Employee{{ID: "a", Name: "Ana", Department: FrontDesk}}
	anchor := date(2026, time.January, 1)
	assignments := materialize(emps, anchor, 1)
	assignments[0].Value = FrontDeskAudit.LateLabel()
	assignments[1].DismissedTimeOff = true

	outcome, err := Generate(GenerationConfig{
		Employees:   emps,
		Assignments: assignments,
		BaseWeek:    anchor,
		Weeks:       1,
	})
	require.NoError(t, err)

	// No availability declared, so everything lands back on the placeholder
	for _, a := range outcome.Roster.All() {
		assert.Equal(t, Unassigned, a.Value)
		assert.False(t, a.DismissedTimeOff)
	}
}
