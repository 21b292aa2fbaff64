package repository

import (
	"context"

	"pushcart/internal/domain/entity"
	"pushcart/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for customer persistence.
var (
	// ErrCustomerNotFound is returned when a customer is not found.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrDuplicateCustomer is returned when a customer with the same email already exists.
	ErrDuplicateCustomer = errors.New("customer already exists")
)

// CustomerRepository defines the interface for customer account operations.
type CustomerRepository interface {
	// CreateCustomer persists a newly registered customer.
	CreateCustomer(ctx context.Context, customer *entity.Customer) error

	// FindCustomerByID retrieves a customer by its unique ID.
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindCustomerByEmail retrieves a customer by login email.
	FindCustomerByEmail(ctx context.Context, email string) (*entity.Customer, error)
}
