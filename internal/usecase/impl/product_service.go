package impl

import (
	"context"
	"fmt"

	"pushcart/internal/domain/entity"
	"pushcart/internal/domain/repository"
	"pushcart/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// ProductServiceParams holds dependencies for the product service, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
}

type productService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service instance.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{productRepo: params.ProductRepo}
}

// AddProduct creates a catalogue item for the vendor.
func (s *productService) AddProduct(ctx context.Context, vendorID uuid.UUID, input *usecase.AddProductInput) (*entity.Product, error) {
	product := &entity.Product{
		VendorID: vendorID,
		Name:     input.Name,
		Price:    input.Price,
		Unit:     input.Unit,
		Category: input.Category,
		InStock:  input.InStock,
	}

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

// ListVendorProducts returns one vendor's catalogue.
func (s *productService) ListVendorProducts(ctx context.Context, vendorID uuid.UUID) ([]*entity.Product, error) {
	products, err := s.productRepo.FindProductsByVendor(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendor products: %w", err)
	}

	return products, nil
}

// UpdateProduct applies partial updates to an item the vendor owns.
func (s *productService) UpdateProduct(ctx context.Context, vendorID, productID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := s.findOwned(ctx, vendorID, productID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Unit != nil {
		product.Unit = *input.Unit
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.InStock != nil {
		product.InStock = *input.InStock
	}

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

// DeleteProduct removes an item the vendor owns.
func (s *productService) DeleteProduct(ctx context.Context, vendorID, productID uuid.UUID) error {
	if _, err := s.findOwned(ctx, vendorID, productID); err != nil {
		return err
	}

	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

// findOwned loads the product and verifies vendor ownership.
func (s *productService) findOwned(ctx context.Context, vendorID, productID uuid.UUID) (*entity.Product, error) {
	products, err := s.productRepo.FindProductsByVendor(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendor products: %w", err)
	}

	for _, product := range products {
		if product.ID == productID {
			return product, nil
		}
	}

	// Not in this vendor's catalogue: either missing or owned by someone
	// else. Report not-found in both cases to avoid leaking existence.
	return nil, repository.ErrProductNotFound
}
