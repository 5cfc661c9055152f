package postgres

import (
	"context"
	"fmt"

	"github.com/mgoodall/innkeeper/pkg/db"
)

// GetTimeOff retrieves all leave request records
func (d *DB) GetTimeOff(ctx context.Context) ([]db.TimeOff, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, role, from_date, to_date, approved, vacation
		FROM time_off
		ORDER BY from_date
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query time off: %w", err)
	}
	defer rows.Close()

	var requests []db.TimeOff
	for rows.Next() {
		var t db.TimeOff
		if err := rows.Scan(&t.ID, &t.Name, &t.Role, &t.FromDate, &t.ToDate, &t.Approved, &t.Vacation); err != nil {
			return nil, fmt.Errorf("failed to scan time off: %w", err)
		}
		requests = append(requests, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating time off: %w", err)
	}

	return requests, nil
}

// InsertTimeOff inserts a new leave request record
func (d *DB) InsertTimeOff(ctx context.Context, timeOff *db.TimeOff) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO time_off (id, name, role, from_date, to_date, approved, vacation)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, timeOff.ID, timeOff.Name, timeOff.Role, timeOff.FromDate, timeOff.ToDate,
		timeOff.Approved, timeOff.Vacation)
	if err != nil {
		return fmt.Errorf("failed to insert time off: %w", err)
	}

	return nil
}

// SetTimeOffApproved flips the approval flag on a leave request
func (d *DB) SetTimeOffApproved(ctx context.Context, id string, approved bool) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE time_off SET approved = $2 WHERE id = $1
	`, id, approved)
	if err != nil {
		return fmt.Errorf("failed to update time off approval: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("time off request %s not found", id)
	}

	return nil
}
