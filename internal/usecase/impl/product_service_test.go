package impl

import (
	"context"
	"testing"

	"pushcart/internal/domain/entity"
	"pushcart/internal/domain/repository"
	"pushcart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *fakeProductRepo
}

func createTestProductService() productServiceFixtures {
	productRepo := &fakeProductRepo{}
	svc := NewProductService(ProductServiceParams{ProductRepo: productRepo})

	return productServiceFixtures{service: svc, productRepo: productRepo}
}

func TestProductService_AddProduct_Success(t *testing.T) {
	fx := createTestProductService()

	vendorID := uuid.New()
	product, err := fx.service.AddProduct(context.Background(), vendorID, &usecase.AddProductInput{
		Name:     "Tomatoes",
		Price:    40,
		Unit:     "kg",
		Category: "vegetables",
		InStock:  true,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, vendorID, product.VendorID)
	assert.Equal(t, "Tomatoes", product.Name)
	assert.True(t, product.InStock)
	require.Len(t, fx.productRepo.created, 1)
}

func TestProductService_ListVendorProducts_Success(t *testing.T) {
	fx := createTestProductService()

	vendorID := uuid.New()
	mine := &entity.Product{ID: uuid.New(), VendorID: vendorID, Name: "Tomatoes"}
	other := &entity.Product{ID: uuid.New(), VendorID: uuid.New(), Name: "Roses"}
	fx.productRepo.products = []*entity.Product{mine, other}

	products, err := fx.service.ListVendorProducts(context.Background(), vendorID)

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, mine, products[0])
}

func TestProductService_UpdateProduct_Success(t *testing.T) {
	fx := createTestProductService()

	vendorID := uuid.New()
	product := &entity.Product{
		ID:       uuid.New(),
		VendorID: vendorID,
		Name:     "Tomatoes",
		Price:    40,
		InStock:  true,
	}
	fx.productRepo.products = []*entity.Product{product}

	newPrice := 35.0
	outOfStock := false
	updated, err := fx.service.UpdateProduct(context.Background(), vendorID, product.ID, &usecase.UpdateProductInput{
		Price:   &newPrice,
		InStock: &outOfStock,
	})

	require.NoError(t, err)
	assert.InDelta(t, 35.0, updated.Price, 1e-9)
	assert.False(t, updated.InStock)
	assert.Equal(t, "Tomatoes", updated.Name, "untouched fields survive")
	require.Len(t, fx.productRepo.updated, 1)
}

func TestProductService_UpdateProduct_NotOwned(t *testing.T) {
	fx := createTestProductService()

	product := &entity.Product{ID: uuid.New(), VendorID: uuid.New(), Name: "Tomatoes"}
	fx.productRepo.products = []*entity.Product{product}

	newPrice := 35.0
	_, err := fx.service.UpdateProduct(context.Background(), uuid.New(), product.ID, &usecase.UpdateProductInput{
		Price: &newPrice,
	})

	// Another vendor's product reads as not-found, never as forbidden.
	require.ErrorIs(t, err, repository.ErrProductNotFound)
	assert.Empty(t, fx.productRepo.updated)
}

func TestProductService_DeleteProduct_Success(t *testing.T) {
	fx := createTestProductService()

	vendorID := uuid.New()
	product := &entity.Product{ID: uuid.New(), VendorID: vendorID, Name: "Tomatoes"}
	fx.productRepo.products = []*entity.Product{product}

	err := fx.service.DeleteProduct(context.Background(), vendorID, product.ID)

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{product.ID}, fx.productRepo.deleted)
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestProductService()

	err := fx.service.DeleteProduct(context.Background(), uuid.New(), uuid.New())

	require.ErrorIs(t, err, repository.ErrProductNotFound)
	assert.Empty(t, fx.productRepo.deleted)
}
