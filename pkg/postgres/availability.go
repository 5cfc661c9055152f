package postgres

import (
	"context"
	"fmt"

	"github.com/mgoodall/innkeeper/pkg/db"
)

// GetAvailability retrieves every availability entry
func (d *DB) GetAvailability(ctx context.Context) ([]db.AvailabilityEntry, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT employee_id, day_of_week, shift_label, allowed
		FROM availability
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query availability: %w", err)
	}
	defer rows.Close()

	var entries []db.AvailabilityEntry
	for rows.Next() {
		var e db.AvailabilityEntry
		if err := rows.Scan(&e.EmployeeID, &e.DayOfWeek, &e.ShiftLabel, &e.Allowed); err != nil {
			return nil, fmt.Errorf("failed to scan availability entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating availability: %w", err)
	}

	return entries, nil
}

// ReplaceAvailability swaps out an employee's full availability entry set
func (d *DB) ReplaceAvailability(ctx context.Context, employeeID string, entries []db.AvailabilityEntry) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM availability WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to clear availability: %w", err)
	}

	for _, e := range entries {
		_, err := tx.Exec(ctx, `
			INSERT INTO availability (employee_id, day_of_week, shift_label, allowed)
			VALUES ($1, $2, $3, $4)
		`, employeeID, e.DayOfWeek, e.ShiftLabel, e.Allowed)
		if err != nil {
			return fmt.Errorf("failed to insert availability entry: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
