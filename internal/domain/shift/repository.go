package shift

import "context"

type ShiftRepository interface {
	// Create creates a new shift
	Create(ctx context.Context, shift Shift) (Shift, error)

	// Update updates an existing shift
	Update(ctx context.Context, shift Shift) error

	// GetByID retrieves a shift by ID
	GetByID(ctx context.Context, id string) (Shift, error)

	// List retrieves all shifts ordered by name
	List(ctx context.Context) ([]Shift, error)
}
