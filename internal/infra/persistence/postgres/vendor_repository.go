// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"pushcart/internal/domain/entity"
	domainerrors "pushcart/internal/domain/errors"
	"pushcart/internal/domain/repository"
	"pushcart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// vendorRepository implements the repository.VendorRepository interface using GORM.
type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository is the constructor for vendorRepository.
// It returns the repository as a repository.VendorRepository interface, adhering to dependency inversion.
func NewVendorRepository(db *gorm.DB) repository.VendorRepository {
	return &vendorRepository{db: db}
}

// CreateVendor persists a new vendor. Registration always starts unapproved;
// the admin flips the flag later.
func (repo *vendorRepository) CreateVendor(ctx context.Context, vendor *entity.Vendor) error {
	vendorM := fromVendorDomain(vendor)
	vendorM.IsApproved = false

	if err := repo.db.WithContext(ctx).Create(vendorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountAlreadyExists.WrapMessage("email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrVendorCreationFailed.WrapMessage("missing required vendor information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vendor")
	}

	vendor.ID = vendorM.ID
	vendor.IsApproved = vendorM.IsApproved
	vendor.CreatedAt = vendorM.CreatedAt
	vendor.UpdatedAt = vendorM.UpdatedAt

	return nil
}

// FindVendorByID retrieves a single vendor by its unique ID.
func (repo *vendorRepository) FindVendorByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	var vendorM model.VendorModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&vendorM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor by id")
	}

	return toVendorDomain(&vendorM), nil
}

// FindVendorByEmail retrieves a single vendor by login email.
func (repo *vendorRepository) FindVendorByEmail(ctx context.Context, email string) (*entity.Vendor, error) {
	var vendorM model.VendorModel
	err := repo.db.WithContext(ctx).
		Where("email = ? AND deleted_at IS NULL", email).
		First(&vendorM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor by email")
	}

	return toVendorDomain(&vendorM), nil
}

// FindApprovedVendors retrieves the customer-facing directory: approved,
// active, not deleted, name-ordered for stable paging.
func (repo *vendorRepository) FindApprovedVendors(ctx context.Context) ([]*entity.Vendor, error) {
	var vendorMs []model.VendorModel
	err := repo.db.WithContext(ctx).
		Where("is_approved = TRUE AND is_active = TRUE AND deleted_at IS NULL").
		Order("vendor_name ASC").
		Find(&vendorMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list approved vendors")
	}

	return toVendorDomainList(vendorMs), nil
}

// FindPendingVendors retrieves vendors awaiting admin approval, oldest first.
func (repo *vendorRepository) FindPendingVendors(ctx context.Context) ([]*entity.Vendor, error) {
	var vendorMs []model.VendorModel
	err := repo.db.WithContext(ctx).
		Where("is_approved = FALSE AND deleted_at IS NULL").
		Order("created_at ASC").
		Find(&vendorMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending vendors")
	}

	return toVendorDomainList(vendorMs), nil
}

// UpdateVendor updates an existing vendor record.
func (repo *vendorRepository) UpdateVendor(ctx context.Context, vendor *entity.Vendor) error {
	vendorM := fromVendorDomain(vendor)

	if err := repo.db.WithContext(ctx).Save(vendorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountAlreadyExists.WrapMessage("email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update vendor")
	}

	vendor.UpdatedAt = vendorM.UpdatedAt

	return nil
}

// SetApproval flips the admin approval flag for a vendor.
func (repo *vendorRepository) SetApproval(ctx context.Context, id uuid.UUID, approved bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VendorModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("is_approved", approved)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set vendor approval")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

// DeleteVendor soft-deletes a vendor by stamping deleted_at.
func (repo *vendorRepository) DeleteVendor(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VendorModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", gorm.Expr("NOW()"))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete vendor")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toVendorDomain converts a GORM VendorModel to a domain Vendor entity.
func toVendorDomain(data *model.VendorModel) *entity.Vendor {
	if data == nil {
		return nil
	}

	return &entity.Vendor{
		ID:           data.ID,
		VendorName:   data.VendorName,
		Email:        data.Email,
		Phone:        data.Phone,
		PasswordHash: data.PasswordHash,
		Category:     data.Category,
		Description:  data.Description,
		PrimaryArea:  data.PrimaryArea,
		PhotoURL:     data.PhotoURL,
		Rating:       data.Rating,
		IsApproved:   data.IsApproved,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toVendorDomainList(data []model.VendorModel) []*entity.Vendor {
	vendors := make([]*entity.Vendor, 0, len(data))
	for i := range data {
		vendors = append(vendors, toVendorDomain(&data[i]))
	}

	return vendors
}

// fromVendorDomain converts a domain Vendor entity to a GORM VendorModel for persistence.
func fromVendorDomain(data *entity.Vendor) *model.VendorModel {
	if data == nil {
		return nil
	}

	return &model.VendorModel{
		ID:           data.ID,
		VendorName:   data.VendorName,
		Email:        data.Email,
		Phone:        data.Phone,
		PasswordHash: data.PasswordHash,
		Category:     data.Category,
		Description:  data.Description,
		PrimaryArea:  data.PrimaryArea,
		PhotoURL:     data.PhotoURL,
		Rating:       data.Rating,
		IsApproved:   data.IsApproved,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
