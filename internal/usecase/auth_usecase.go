package usecase

import (
	"context"

	"pushcart/internal/domain/entity"
)

// RegisterCustomerInput represents a customer registration request.
type RegisterCustomerInput struct {
	FullName  string `json:"full_name" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,min=8,max=20"`
	Password  string `json:"password" validate:"required,min=8"`
	Apartment string `json:"apartment"`
}

// LoginInput represents a login request for any account type.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput carries the issued access token and the account's roles.
type LoginOutput struct {
	AccessToken string       `json:"access_token"`
	ExpiresIn   int64        `json:"expires_in"` // Seconds until expiry.
	AccountID   string       `json:"account_id"`
	Roles       entity.Roles `json:"roles"`
}

// AuthUsecase defines the interface for account registration and login.
type AuthUsecase interface {
	// RegisterCustomer creates a customer account.
	RegisterCustomer(ctx context.Context, input *RegisterCustomerInput) (*entity.Customer, error)

	// LoginVendor authenticates a vendor. Unapproved vendors can log in to
	// check their status but carry no vendor role until approved.
	LoginVendor(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// LoginCustomer authenticates a customer.
	LoginCustomer(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// LoginAdmin authenticates against the config-seeded admin account.
	LoginAdmin(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
