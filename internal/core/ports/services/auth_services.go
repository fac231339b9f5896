package services

import (
	"context"
	"time"

	"github.com/arprinters/pos_backend/internal/core/domain"
)

// TokenSvcFacade issues access tokens for authenticated operators.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a new JWT access token for the given
	// operator, returning the token and its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
