package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/mgoodall/innkeeper/pkg/db"
)

// EnsureWeek materializes a week row plus a placeholder assignment for every
// employee and date, creating only what does not already exist.
func (d *DB) EnsureWeek(ctx context.Context, start time.Time) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		INSERT INTO week (start_date) VALUES ($1) ON CONFLICT DO NOTHING
	`, start); err != nil {
		return fmt.Errorf("failed to insert week: %w", err)
	}

	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i)
		_, err := tx.Exec(ctx, `
			INSERT INTO assignment (week_start, employee_id, date, value)
			SELECT $1, id, $2, 'Set' FROM employee
			ON CONFLICT (employee_id, date) DO NOTHING
		`, start, date)
		if err != nil {
			return fmt.Errorf("failed to materialize assignments: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetWeeks retrieves all week records
func (d *DB) GetWeeks(ctx context.Context) ([]db.Week, error) {
	rows, err := d.pool.Query(ctx, `SELECT start_date FROM week ORDER BY start_date`)
	if err != nil {
		return nil, fmt.Errorf("failed to query weeks: %w", err)
	}
	defer rows.Close()

	var weeks []db.Week
	for rows.Next() {
		var w db.Week
		if err := rows.Scan(&w.StartDate); err != nil {
			return nil, fmt.Errorf("failed to scan week: %w", err)
		}
		weeks = append(weeks, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating weeks: %w", err)
	}

	return weeks, nil
}

// GetAssignments retrieves all assignment rows for the given week anchors
func (d *DB) GetAssignments(ctx context.Context, weekStarts []time.Time) ([]db.Assignment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT week_start, employee_id, date, value, dismissed_time_off
		FROM assignment
		WHERE week_start = ANY($1)
		ORDER BY date, employee_id
	`, weekStarts)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []db.Assignment
	for rows.Next() {
		var a db.Assignment
		if err := rows.Scan(&a.WeekStart, &a.EmployeeID, &a.Date, &a.Value, &a.DismissedTimeOff); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	return assignments, nil
}

// SaveAssignments writes generated values and dismissed flags back in one
// transaction, so a run lands atomically or not at all.
func (d *DB) SaveAssignments(ctx context.Context, assignments []db.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, a := range assignments {
		_, err := tx.Exec(ctx, `
			UPDATE assignment
			SET value = $3, dismissed_time_off = $4
			WHERE employee_id = $1 AND date = $2
		`, a.EmployeeID, a.Date, a.Value, a.DismissedTimeOff)
		if err != nil {
			return fmt.Errorf("failed to update assignment: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// UpdateAssignment writes a single assignment value
func (d *DB) UpdateAssignment(ctx context.Context, assignment *db.Assignment) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE assignment
		SET value = $3, dismissed_time_off = $4
		WHERE employee_id = $1 AND date = $2
	`, assignment.EmployeeID, assignment.Date, assignment.Value, assignment.DismissedTimeOff)
	if err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("assignment for employee %s on %s not found",
			assignment.EmployeeID, assignment.Date.Format("2006-01-02"))
	}

	return nil
}
