package services

import (
	"context"

	"github.com/arprinters/pos_backend/internal/core/domain"
	"github.com/arprinters/pos_backend/internal/dto"
)

// UserSvcFacade manages operator accounts.
type UserSvcFacade interface {
	// GetUserByID retrieves an operator by id.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// AuthenticateUser verifies a username/password pair and returns the
	// operator on success.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)

	// CreateUser registers a new operator account with a hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
}
