package auth

import "context"

// AuthService defines the first-party credential flow: password login and
// refresh-token rotation. There is no self-registration; accounts are
// provisioned by HR alongside the employee record.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
