package repositories

import (
	"context"

	"github.com/arprinters/pos_backend/internal/core/domain"
)

// UserReader defines read operations for operator accounts
type UserReader interface {
	// FindUserByID retrieves an operator by id.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves an operator by login name.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriter defines write operations for operator accounts
type UserWriter interface {
	// SaveUser inserts a new operator account.
	SaveUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
