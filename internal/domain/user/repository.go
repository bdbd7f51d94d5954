package user

import "context"

type UserRepository interface {
	// GetByEmail retrieves a user by email for login
	GetByEmail(ctx context.Context, email string) (User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (User, error)
}
