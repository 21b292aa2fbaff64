package repository

import (
	"context"

	"pushcart/internal/domain/entity"
	"pushcart/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for vendor catalogue operations.
type ProductRepository interface {
	// CreateProduct persists a new catalogue item.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductsByVendor retrieves the catalogue for one vendor.
	FindProductsByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Product, error)

	// UpdateProduct updates an existing catalogue item.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// DeleteProduct removes a catalogue item.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
