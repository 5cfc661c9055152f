package postgres

import (
	"context"
	"fmt"

	"github.com/mgoodall/innkeeper/pkg/db"
)

// GetEmployees retrieves all employee records
func (d *DB) GetEmployees(ctx context.Context) ([]db.Employee, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, section_name, seniority, preferred_shift,
		       preferred_per_week, max_per_week, late_stagger
		FROM employee
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []db.Employee
	for rows.Next() {
		var e db.Employee
		var preferredShift *string
		if err := rows.Scan(&e.ID, &e.Name, &e.SectionName, &e.Seniority,
			&preferredShift, &e.PreferredPerWeek, &e.MaxPerWeek, &e.LateStagger); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		if preferredShift != nil {
			e.PreferredShift = *preferredShift
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}

	return employees, nil
}

// GetEmployeeRoles retrieves all secondary capability grants
func (d *DB) GetEmployeeRoles(ctx context.Context) ([]db.EmployeeRole, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT employee_id, section_name FROM employee_role
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee roles: %w", err)
	}
	defer rows.Close()

	var roles []db.EmployeeRole
	for rows.Next() {
		var r db.EmployeeRole
		if err := rows.Scan(&r.EmployeeID, &r.SectionName); err != nil {
			return nil, fmt.Errorf("failed to scan employee role: %w", err)
		}
		roles = append(roles, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employee roles: %w", err)
	}

	return roles, nil
}

// InsertEmployee inserts a new employee record
func (d *DB) InsertEmployee(ctx context.Context, employee *db.Employee) error {
	var preferredShift *string
	if employee.PreferredShift != "" {
		preferredShift = &employee.PreferredShift
	}

	_, err := d.pool.Exec(ctx, `
		INSERT INTO employee (id, name, section_name, seniority, preferred_shift,
		                      preferred_per_week, max_per_week, late_stagger)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, employee.ID, employee.Name, employee.SectionName, employee.Seniority,
		preferredShift, employee.PreferredPerWeek, employee.MaxPerWeek, employee.LateStagger)
	if err != nil {
		return fmt.Errorf("failed to insert employee: %w", err)
	}

	return nil
}
