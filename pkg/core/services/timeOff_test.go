package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mgoodall/innkeeper/pkg/core/schedule"
	"github.com/mgoodall/innkeeper/pkg/db"
)

func TestAddTimeOff_RejectsInvertedRange(t *testing.T) {
	store := &mockDatabase{}

	_, err := AddTimeOff(context.Background(), store, zap.NewNop(),
		"Ana", "Front Desk",
		date(2026, time.January, 5), date(2026, time.January, 3),
		false, false)

	assert.ErrorIs(t, err, ErrInvariantViolation)
	assert.Empty(t, store.timeOff)
}

func TestAddTimeOff_StoresRequest(t *testing.T) {
	store := &mockDatabase{}

	request, err := AddTimeOff(context.Background(), store, zap.NewNop(),
		"Ana", "Front Desk",
		date(2026, time.January, 3), date(2026, time.January, 5),
		false, true)
	require.NoError(t, err)

	assert.NotEmpty(t, request.ID)
	assert.True(t, request.Vacation)
	assert.False(t, request.Approved)
	require.Len(t, store.timeOff, 1)
}

func TestAddTimeOff_ApprovedSyncsMaterializedWeeks(t *testing.T) {
	weekStart := date(2026, time.January, 1)
	store := newAssignStore(t, weekStart,
		db.Employee{ID: "a", Name: "Ana", SectionName: "Front Desk"})

	// A generated shift already sits on the covered date
	covered := date(2026, time.January, 3)
	require.NoError(t, store.UpdateAssignment(context.Background(), &db.Assignment{
		EmployeeID: "a", Date: covered, Value: schedule.FrontDeskAM.EarlyLabel(),
	}))

	_, err := AddTimeOff(context.Background(), store, zap.NewNop(),
		"Ana", "Front Desk", covered, covered, true, false)
	require.NoError(t, err)

	assert.Equal(t, schedule.TimeOffLabel, store.valueOn("a", covered))
	// Other dates are untouched
	assert.Equal(t, schedule.Unassigned, store.valueOn("a", weekStart))
}

func TestSetTimeOffApproval_UnknownRequest(t *testing.T) {
	store := &mockDatabase{}
	err := SetTimeOffApproval(context.Background(), store, zap.NewNop(), "missing", true)
	assert.ErrorIs(t, err, ErrInvariantViolation)
}

func TestSetTimeOffApproval_ApproveForcesLeaveLabel(t *testing.T) {
	weekStart := date(2026, time.January, 1)
	store := newAssignStore(t, weekStart,
		db.Employee{ID: "a", Name: "Ana", SectionName: "Front Desk"})
	covered := date(2026, time.January, 4)
	store.timeOff = []db.TimeOff{{
		ID: "t1", Name: "Ana", FromDate: covered, ToDate: covered,
	}}

	err := SetTimeOffApproval(context.Background(), store, zap.NewNop(), "t1", true)
	require.NoError(t, err)

	assert.True(t, store.timeOff[0].Approved)
	assert.Equal(t, schedule.TimeOffLabel, store.valueOn("a", covered))
}

func TestSetTimeOffApproval_RevokeRevertsToPlaceholder(t *testing.T) {
	weekStart := date(2026, time.January, 1)
	store := newAssignStore(t, weekStart,
		db.Employee{ID: "a", Name: "Ana", SectionName: "Front Desk"})
	covered := date(2026, time.January, 4)
	store.timeOff = []db.TimeOff{{
		ID: "t1", Name: "Ana", FromDate: covered, ToDate: covered, Approved: true,
	}}
	require.NoError(t, store.UpdateAssignment(context.Background(), &db.Assignment{
		EmployeeID: "a", Date: covered, Value: schedule.TimeOffLabel,
	}))

	err := SetTimeOffApproval(context.Background(), store, zap.NewNop(), "t1", false)
	require.NoError(t, err)

	assert.False(t, store.timeOff[0].Approved)
	assert.Equal(t, schedule.Unassigned, store.valueOn("a", covered))
}

func TestSetTimeOffApproval_RevokeKeepsOtherwiseCoveredDates(t *testing.T) {
	weekStart := date(2026, time.January, 1)
	store := newAssignStore(t, weekStart,
		db.Employee{ID: "a", Name: "Ana", SectionName: "Front Desk"})
	covered := date(2026, time.January, 4)
	store.timeOff = []db.TimeOff{
		{ID: "t1", Name: "Ana", FromDate: covered, ToDate: covered, Approved: true},
		{ID: "t2", Name: "Ana", FromDate: covered, ToDate: covered, Approved: true},
	}
	require.NoError(t, store.UpdateAssignment(context.Background(), &db.Assignment{
		EmployeeID: "a", Date: covered, Value: schedule.TimeOffLabel,
	}))

	err := SetTimeOffApproval(context.Background(), store, zap.NewNop(), "t1", false)
	require.NoError(t, err)

	// The second approved request still covers the date
	assert.Equal(t, schedule.TimeOffLabel, store.valueOn("a", covered))
}
