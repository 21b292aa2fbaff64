package impl

import (
	"context"
	"fmt"

	"pushcart/config"
	"pushcart/internal/domain/entity"
	domainerrors "pushcart/internal/domain/errors"
	"pushcart/internal/domain/repository"
	"pushcart/internal/domain/service"
	"pushcart/internal/errors"
	"pushcart/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// AuthServiceParams holds dependencies for the auth service, injected by Fx.
type AuthServiceParams struct {
	fx.In

	VendorRepo   repository.VendorRepository
	CustomerRepo repository.CustomerRepository
	Hasher       service.PasswordHasher
	Tokens       service.TokenService
	Config       *config.Config
}

type authService struct {
	vendorRepo   repository.VendorRepository
	customerRepo repository.CustomerRepository
	hasher       service.PasswordHasher
	tokens       service.TokenService

	adminEmail    string
	adminPassword string
	adminID       uuid.UUID
}

// NewAuthService creates a new auth service instance. The admin account is
// seeded from config rather than stored; its ID is stable per process.
func NewAuthService(params AuthServiceParams) (usecase.AuthUsecase, error) {
	s := &authService{
		vendorRepo:   params.VendorRepo,
		customerRepo: params.CustomerRepo,
		hasher:       params.Hasher,
		tokens:       params.Tokens,
		adminID:      uuid.New(),
	}

	if params.Config.Auth != nil {
		s.adminEmail = params.Config.Auth.AdminEmail
		s.adminPassword = params.Config.Auth.AdminPassword
	}

	return s, nil
}

// RegisterCustomer creates a customer account.
func (s *authService) RegisterCustomer(ctx context.Context, input *usecase.RegisterCustomerInput) (*entity.Customer, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash customer password")
	}

	customer := &entity.Customer{
		FullName:     input.FullName,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: hash,
		Apartment:    input.Apartment,
	}

	if err := s.customerRepo.CreateCustomer(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return customer, nil
}

// LoginVendor authenticates a vendor. Unapproved vendors receive a token
// without the vendor role, enough to poll their approval status.
func (s *authService) LoginVendor(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	vendor, err := s.vendorRepo.FindVendorByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, fmt.Errorf("failed to find vendor: %w", err)
	}

	if !s.hasher.Check(input.Password, vendor.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	roles := entity.Roles{}
	if vendor.IsApproved {
		roles = append(roles, entity.RoleVendor)
	}

	return s.issueToken(vendor.ID, roles)
}

// LoginCustomer authenticates a customer.
func (s *authService) LoginCustomer(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	customer, err := s.customerRepo.FindCustomerByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	if !s.hasher.Check(input.Password, customer.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return s.issueToken(customer.ID, entity.Roles{entity.RoleCustomer})
}

// LoginAdmin authenticates against the config-seeded admin account.
func (s *authService) LoginAdmin(_ context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if s.adminEmail == "" || input.Email != s.adminEmail || input.Password != s.adminPassword {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return s.issueToken(s.adminID, entity.Roles{entity.RoleAdmin})
}

func (s *authService) issueToken(accountID uuid.UUID, roles entity.Roles) (*usecase.LoginOutput, error) {
	token, err := s.tokens.GenerateAccessToken(accountID, roles)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &usecase.LoginOutput{
		AccessToken: token,
		ExpiresIn:   int64(s.tokens.AccessTokenDuration().Seconds()),
		AccountID:   accountID.String(),
		Roles:       roles,
	}, nil
}
