package auth

import "context"

// SystemUserRepository defines data access for dashboard login accounts.
type SystemUserRepository interface {
	// GetByUsername retrieves a system user, ErrUserNotFound when missing
	GetByUsername(ctx context.Context, username string) (SystemUser, error)

	// GetByID retrieves a system user, ErrUserNotFound when missing
	GetByID(ctx context.Context, id int64) (SystemUser, error)
}
