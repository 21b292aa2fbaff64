package usecase

import (
	"context"

	"pushcart/internal/domain/entity"

	"github.com/google/uuid"
)

// AddProductInput represents a new catalogue item.
type AddProductInput struct {
	Name     string  `json:"name" validate:"required,min=1,max=100"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Unit     string  `json:"unit" validate:"required"`
	Category string  `json:"category"`
	InStock  bool    `json:"in_stock"`
}

// UpdateProductInput carries optional catalogue item updates.
type UpdateProductInput struct {
	Name     *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Price    *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Unit     *string  `json:"unit,omitempty"`
	Category *string  `json:"category,omitempty"`
	InStock  *bool    `json:"in_stock,omitempty"`
}

// ProductUsecase defines the interface for vendor catalogue management.
type ProductUsecase interface {
	// AddProduct creates a catalogue item for the vendor.
	AddProduct(ctx context.Context, vendorID uuid.UUID, input *AddProductInput) (*entity.Product, error)

	// ListVendorProducts returns one vendor's catalogue.
	ListVendorProducts(ctx context.Context, vendorID uuid.UUID) ([]*entity.Product, error)

	// UpdateProduct applies partial updates to an item the vendor owns.
	UpdateProduct(ctx context.Context, vendorID, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes an item the vendor owns.
	DeleteProduct(ctx context.Context, vendorID, productID uuid.UUID) error
}
