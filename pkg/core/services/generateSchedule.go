package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mgoodall/innkeeper/internal/config"
	"github.com/mgoodall/innkeeper/pkg/core/schedule"
	"github.com/mgoodall/innkeeper/pkg/db"
)

// GenerateResult contains the outcome of a schedule generation run
type GenerateResult struct {
	BaseWeek    time.Time
	WeekAnchors []time.Time
	Coverage    []*schedule.WeekCoverage
	Conflicts   []schedule.WeekConflicts

	// Assigned counts concrete shift values written by the run
	Assigned int
}

// GenerateSchedule regenerates the 4-week horizon starting at baseWeek: it
// materializes any missing weeks and placeholder assignments, loads the full
// snapshot, runs the engine in memory, and persists every assignment value
// and dismissed flag in one transaction.
//
// The anchor must fall on the configured week anchor weekday; anything else
// is rejected before any mutation.
func GenerateSchedule(ctx context.Context, database db.Database, logger *zap.Logger, cfg *config.Config, baseWeek time.Time) (*GenerateResult, error) {
	anchorDay := cfg.AnchorDay()
	if baseWeek.IsZero() || baseWeek.Weekday() != anchorDay {
		return nil, fmt.Errorf("%w: base week %s must fall on a %s",
			ErrInvariantViolation, baseWeek.Format("2006-01-02"), anchorDay)
	}
	base := schedule.Midnight(baseWeek)

	logger.Info("Generating schedule",
		zap.String("base_week", schedule.DateKey(base)),
		zap.Int("weeks", schedule.HorizonWeeks))

	weekStarts := make([]time.Time, schedule.HorizonWeeks)
	for i := range weekStarts {
		weekStarts[i] = base.AddDate(0, 0, 7*i)
	}
	for _, start := range weekStarts {
		if err := database.EnsureWeek(ctx, start); err != nil {
			return nil, fmt.Errorf("failed to materialize week %s: %w", schedule.DateKey(start), err)
		}
	}

	snap, err := loadSnapshot(ctx, database, cfg, weekStarts)
	if err != nil {
		return nil, err
	}
	logger.Debug("Snapshot loaded",
		zap.Int("employees", len(snap.Employees)),
		zap.Int("availability_entries", len(snap.Availability)),
		zap.Int("time_off_requests", len(snap.TimeOff)),
		zap.Int("assignments", len(snap.Assignments)))

	caps := make(map[schedule.Department]int)
	for section, limit := range cfg.EffectiveWeeklyCaps() {
		caps[schedule.Department(section)] = limit
	}

	outcome, err := schedule.Generate(schedule.GenerationConfig{
		Employees:    snap.Employees,
		Availability: snap.Availability,
		TimeOff:      snap.TimeOff,
		Assignments:  snap.Assignments,
		BaseWeek:     base,
		WeeklyCaps:   caps,
		Logger:       logger,
	})
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	if err := persistAssignments(ctx, database, snap.Assignments); err != nil {
		return nil, err
	}

	result := &GenerateResult{
		BaseWeek:    base,
		WeekAnchors: outcome.WeekAnchors,
		Coverage:    outcome.Coverage,
		Conflicts:   outcome.Conflicts,
	}
	for _, a := range snap.Assignments {
		if a.Active() {
			result.Assigned++
		}
	}

	logger.Info("Schedule generated",
		zap.String("base_week", schedule.DateKey(base)),
		zap.Int("assigned_shifts", result.Assigned))

	return result, nil
}
