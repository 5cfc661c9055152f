package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mgoodall/innkeeper/pkg/core/schedule"
	"github.com/mgoodall/innkeeper/pkg/db"
)

// CoverageResult bundles the read-only weekly reports for one week.
type CoverageResult struct {
	Coverage  *schedule.WeekCoverage
	Conflicts schedule.WeekConflicts
}

// CoverageReport computes the coverage and double-booking reports for the
// week starting at anchor, from the stored assignments as they are.
func CoverageReport(ctx context.Context, database db.Database, logger *zap.Logger, anchor time.Time) (*CoverageResult, error) {
	start := schedule.Midnight(anchor)

	snap, err := loadSnapshot(ctx, database, nil, []time.Time{start})
	if err != nil {
		return nil, err
	}
	if len(snap.Assignments) == 0 {
		return nil, fmt.Errorf("%w: no assignments for week %s", ErrInvariantViolation, schedule.DateKey(start))
	}

	roster := schedule.NewRoster(snap.Assignments)
	result := &CoverageResult{
		Coverage:  schedule.AnalyzeCoverage(roster, start),
		Conflicts: schedule.DetectConflicts(roster, snap.Employees, start),
	}

	logger.Debug("Coverage computed",
		zap.String("week", schedule.DateKey(start)),
		zap.Int("double_booked_dates", len(result.Conflicts.ByDate)))

	return result, nil
}
