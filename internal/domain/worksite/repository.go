package worksite

import "context"

type WorkSiteRepository interface {
	// Create creates a new work site
	Create(ctx context.Context, site WorkSite) (WorkSite, error)

	// Update updates an existing work site
	Update(ctx context.Context, site WorkSite) error

	// GetByID retrieves a work site by ID
	GetByID(ctx context.Context, id string) (WorkSite, error)

	// List retrieves all work sites ordered by name
	List(ctx context.Context) ([]WorkSite, error)
}
