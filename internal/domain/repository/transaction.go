package repository

import "context"

// RepositoryFactory creates repository instances bound to one transaction.
type RepositoryFactory interface {
	// NewVendorRepository creates a transaction-bound vendor repository.
	NewVendorRepository() VendorRepository

	// NewVendorLocationRepository creates a transaction-bound location repository.
	NewVendorLocationRepository() VendorLocationRepository

	// NewProductRepository creates a transaction-bound product repository.
	NewProductRepository() ProductRepository
}

// TransactionManager runs multi-step persistence work atomically.
type TransactionManager interface {
	// Execute runs fn inside a single transaction, committing on nil and
	// rolling back on error or panic.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
