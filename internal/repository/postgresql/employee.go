package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// The allowed-site array keeps insertion order; the first element acts as the
// employee's default site.
const employeeSelect = `
	SELECT e.id, e.user_id, e.full_name, e.phone_number, e.is_active, e.shift_id,
		   ARRAY(
			   SELECT ews.work_site_id
			   FROM employee_work_sites ews
			   WHERE ews.employee_id = e.id
			   ORDER BY ews.position ASC
		   ) AS allowed_site_ids,
		   e.created_at, e.updated_at,
		   s.name, s.start_time, s.end_time, s.break_minutes, s.late_grace_min, s.early_grace_min
	FROM employees e
	LEFT JOIN shifts s ON s.id = e.shift_id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	var shiftName *string
	var shiftStart, shiftEnd *time.Time
	var breakMin, lateGrace, earlyGrace *int

	err := row.Scan(
		&emp.ID, &emp.UserID, &emp.FullName, &emp.PhoneNumber, &emp.IsActive, &emp.ShiftID,
		&emp.AllowedSiteIDs,
		&emp.CreatedAt, &emp.UpdatedAt,
		&shiftName, &shiftStart, &shiftEnd, &breakMin, &lateGrace, &earlyGrace,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	if emp.ShiftID != nil && shiftName != nil {
		emp.Shift = &shift.Shift{
			ID:            *emp.ShiftID,
			Name:          *shiftName,
			StartTime:     *shiftStart,
			EndTime:       *shiftEnd,
			BreakMinutes:  *breakMin,
			LateGraceMin:  *lateGrace,
			EarlyGraceMin: *earlyGrace,
		}
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := employeeSelect + ` WHERE e.id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository. Deactivated employees are
// included so the admin listing can surface them for reactivation.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	return r.list(ctx, employeeSelect+` ORDER BY e.full_name ASC`)
}

// ListActive implements employee.EmployeeRepository.
func (r *employeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return r.list(ctx, employeeSelect+` WHERE e.is_active = TRUE ORDER BY e.full_name ASC`)
}

func (r *employeeRepository) list(ctx context.Context, query string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

// CountActive implements employee.EmployeeRepository.
func (r *employeeRepository) CountActive(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE is_active = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}

// Update implements employee.EmployeeRepository. The allowed-site set is
// replaced wholesale inside the same transaction as the row update.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			UPDATE employees
			SET full_name = $2, phone_number = $3, is_active = $4, shift_id = $5, updated_at = NOW()
			WHERE id = $1
		`

		tag, err := tx.Exec(ctx, query, emp.ID, emp.FullName, emp.PhoneNumber, emp.IsActive, emp.ShiftID)
		if err != nil {
			return fmt.Errorf("failed to update employee: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return employee.ErrEmployeeNotFound
		}

		if _, err := tx.Exec(ctx, `DELETE FROM employee_work_sites WHERE employee_id = $1`, emp.ID); err != nil {
			return fmt.Errorf("failed to clear allowed sites: %w", err)
		}

		for i, siteID := range emp.AllowedSiteIDs {
			_, err := tx.Exec(ctx,
				`INSERT INTO employee_work_sites (employee_id, work_site_id, position) VALUES ($1, $2, $3)`,
				emp.ID, siteID, i,
			)
			if err != nil {
				return fmt.Errorf("failed to insert allowed site: %w", err)
			}
		}

		return nil
	})
}
