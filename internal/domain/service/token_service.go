package service

import (
	"time"

	"pushcart/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims are the validated contents of an access token.
type Claims struct {
	AccountID uuid.UUID
	Roles     entity.Roles
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for an account.
	GenerateAccessToken(accountID uuid.UUID, roles entity.Roles) (string, error)

	// ValidateAccessToken checks a token string and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured access-token lifetime.
	AccessTokenDuration() time.Duration
}
