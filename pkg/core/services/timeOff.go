package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mgoodall/innkeeper/pkg/core/schedule"
	"github.com/mgoodall/innkeeper/pkg/db"
)

// AddTimeOff records a new leave request. The range is inclusive; From must
// not be after To.
func AddTimeOff(ctx context.Context, database db.Database, logger *zap.Logger, name, role string, from, to time.Time, approved, vacation bool) (*db.TimeOff, error) {
	if from.After(to) {
		return nil, fmt.Errorf("%w: time off range %s..%s is inverted",
			ErrInvariantViolation, from.Format("2006-01-02"), to.Format("2006-01-02"))
	}

	request := &db.TimeOff{
		ID:       uuid.New().String(),
		Name:     name,
		Role:     role,
		FromDate: schedule.Midnight(from),
		ToDate:   schedule.Midnight(to),
		Approved: approved,
		Vacation: vacation,
	}
	if err := database.InsertTimeOff(ctx, request); err != nil {
		return nil, err
	}

	logger.Info("Time off recorded",
		zap.String("employee", name),
		zap.String("from", request.FromDate.Format("2006-01-02")),
		zap.String("to", request.ToDate.Format("2006-01-02")),
		zap.Bool("approved", approved))

	if approved {
		if err := resyncWeeksOverlapping(ctx, database, logger, *request); err != nil {
			return nil, err
		}
	}
	return request, nil
}

// SetTimeOffApproval flips a request's approval flag and re-synchronizes
// every materialized week the request overlaps: approving forces the leave
// label onto covered dates, un-approving reverts those dates to the
// placeholder unless another approved request still covers them.
func SetTimeOffApproval(ctx context.Context, database db.Database, logger *zap.Logger, id string, approved bool) error {
	requests, err := database.GetTimeOff(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch time off: %w", err)
	}
	var target *db.TimeOff
	for i := range requests {
		if requests[i].ID == id {
			target = &requests[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("%w: unknown time off request %q", ErrInvariantViolation, id)
	}

	if err := database.SetTimeOffApproved(ctx, id, approved); err != nil {
		return err
	}
	target.Approved = approved

	logger.Info("Time off approval changed",
		zap.String("employee", target.Name),
		zap.Bool("approved", approved))

	return resyncWeeksOverlapping(ctx, database, logger, *target)
}

// resyncWeeksOverlapping reapplies leave sync for each materialized week the
// request's range touches.
func resyncWeeksOverlapping(ctx context.Context, database db.Database, logger *zap.Logger, request db.TimeOff) error {
	weeks, err := database.GetWeeks(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch weeks: %w", err)
	}
	var starts []time.Time
	for _, w := range weeks {
		start := schedule.Midnight(w.StartDate)
		end := start.AddDate(0, 0, 6)
		if request.ToDate.Before(start) || request.FromDate.After(end) {
			continue
		}
		starts = append(starts, start)
	}
	if len(starts) == 0 {
		return nil
	}

	snap, err := loadSnapshot(ctx, database, nil, starts)
	if err != nil {
		return err
	}
	roster := schedule.NewRoster(snap.Assignments)
	byName := make(map[string][]schedule.TimeOff)
	for _, t := range snap.TimeOff {
		byName[t.Name] = append(byName[t.Name], t)
	}
	req := schedule.TimeOff{
		Name:     request.Name,
		From:     request.FromDate,
		To:       request.ToDate,
		Approved: request.Approved,
	}
	for _, start := range starts {
		schedule.SyncTimeOff(roster, snap.Employees, byName, start)
		if !request.Approved {
			schedule.ClearTimeOff(roster, snap.Employees, byName, req, start)
		}
	}

	logger.Debug("Re-synced leave for weeks", zap.Int("weeks", len(starts)))
	return persistAssignments(ctx, database, snap.Assignments)
}
