package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSyncTimeOff_ForcesLeaveLabel(t *testing.T) {
	emp := Employee{ID: "a", Name: "Ana", Department: FrontDesk}
	anchor := date(2026, time.January, 1)
	roster := NewRoster(materialize([]Employee{emp}, anchor, 1))

	wednesday := date(2026, time.January, 7)
	roster.Get("a", wednesday).Value = FrontDeskAM.EarlyLabel()
	byName := map[string][]TimeOff{
		"Ana": {{Name: "Ana", From: wednesday, To: wednesday, Approved: true}},
	}

	SyncTimeOff(roster, []Employee{emp}, byName, anchor)

	// Approved leave overrides even generated values
	assert.Equal(t, TimeOffLabel, roster.Get("a", wednesday).Value)
	assert.Equal(t, Unassigned, roster.Get("a", anchor).Value)
}

func TestSyncTimeOff_IgnoresUnapprovedRequests(t *testing.T) {
	emp := Employee{ID: "a", Name: "Ana", Department: FrontDesk}
	anchor := date(2026, time.January, 1)
	roster := NewRoster(materialize([]Employee{emp}, anchor, 1))
	byName := map[string][]TimeOff{
		"Ana": {{Name: "Ana", From: anchor, To: anchor, Approved: false}},
	}

	SyncTimeOff(roster, []Employee{emp}, byName, anchor)

	assert.Equal(t, Unassigned, roster.Get("a", anchor).Value)
}

func TestSyncTimeOff_Idempotent(t *testing.T) {
	emp := Employee{ID: "a", Name: "Ana", Department: FrontDesk}
	anchor := date(2026, time.January, 1)
	roster := NewRoster(materialize([]Employee{emp}, anchor, 1))
	byName := map[string][]TimeOff{
		"Ana": {{Name: "Ana", From: anchor, To: anchor.AddDate(0, 0, 2), Approved: true}},
	}

	SyncTimeOff(roster, []Employee{emp}, byName, anchor)
	SyncTimeOff(roster, []Employee{emp}, byName, anchor)

	for i := 0; i < 3; i++ {
		assert.Equal(t, TimeOffLabel, roster.Get("a", anchor.AddDate(0, 0, i)).Value)
	}
	for i := 3; i < 7; i++ {
		assert.Equal(t, Unassigned, roster.Get("a", anchor.AddDate(0, 0, i)).Value)
	}
}

func TestClearTimeOff_RevertsToPlaceholder(t *testing.T) {
	emp := Employee{ID: "a", Name: "Ana", Department: FrontDesk}
	anchor := date(2026, time.January, 1)
	roster := NewRoster(materialize([]Employee{emp}, anchor, 1))

	req := TimeOff{ID: "r1", Name: "Ana", From: anchor, To: anchor.AddDate(0, 0, 1)}
	roster.Get("a", anchor).Value = TimeOffLabel
	roster.Get("a", anchor.AddDate(0, 0, 1)).Value = TimeOffLabel

	// The request has just been un-approved, so the remaining set is empty
	ClearTimeOff(roster, []Employee{emp}, map[string][]TimeOff{}, req, anchor)

	assert.Equal(t, Unassigned, roster.Get("a", anchor).Value)
	assert.Equal(t, Unassigned, roster.Get("a", anchor.AddDate(0, 0, 1)).Value)
}

func TestClearTimeOff_KeepsDatesCoveredByAnotherRequest(t *testing.T) {
	emp := Employee{ID: "a", Name: "Ana", Department: FrontDesk}
	anchor := date(2026, time.January, 1)
	roster := NewRoster(materialize([]Employee{emp}, anchor, 1))

	revoked := TimeOff{ID: "r1", Name: "Ana", From: anchor, To: anchor.AddDate(0, 0, 2)}
	still := TimeOff{ID: "r2", Name: "Ana", From: anchor.AddDate(0, 0, 2), To: anchor.AddDate(0, 0, 2), Approved: true}
	for i := 0; i < 3; i++ {
		roster.Get("a", anchor.AddDate(0, 0, i)).Value = TimeOffLabel
	}

	ClearTimeOff(roster, []Employee{emp}, map[string][]TimeOff{"Ana": {still}}, revoked, anchor)

	assert.Equal(t, Unassigned, roster.Get("a", anchor).Value)
	assert.Equal(t, Unassigned, roster.Get("a", anchor.AddDate(0, 0, 1)).Value)
	assert.Equal(t, TimeOffLabel, roster.Get("a", anchor.AddDate(0, 0, 2)).Value)
}
