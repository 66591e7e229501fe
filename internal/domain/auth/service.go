package auth

import "context"

// Service authenticates against the EMS backend and persists the
// resulting session.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Logout(ctx context.Context) error
}
