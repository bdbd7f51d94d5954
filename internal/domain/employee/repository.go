package employee

import "context"

type EmployeeRepository interface {
	// GetByID retrieves an employee with their shift and allowed sites joined
	GetByID(ctx context.Context, id string) (Employee, error)

	// List retrieves every employee, active or not, with shifts and allowed
	// sites joined, ordered by full name. Deactivated employees must stay
	// visible here so they can be found and reactivated.
	List(ctx context.Context) ([]Employee, error)

	// ListActive retrieves all active employees with shifts and allowed
	// sites joined, ordered by full name
	ListActive(ctx context.Context) ([]Employee, error)

	// CountActive counts active employees
	CountActive(ctx context.Context) (int64, error)

	// Update persists mutable employee fields and replaces the allowed-site
	// set when it is provided
	Update(ctx context.Context, emp Employee) error
}
