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
	"gorm.io/gorm/clause"
)

// vendorLocationRepository implements repository.VendorLocationRepository using GORM.
type vendorLocationRepository struct {
	db *gorm.DB
}

// NewVendorLocationRepository is the constructor for vendorLocationRepository.
func NewVendorLocationRepository(db *gorm.DB) repository.VendorLocationRepository {
	return &vendorLocationRepository{db: db}
}

// UpsertLocation inserts or replaces the vendor's single location row.
// ON CONFLICT (vendor_id) DO UPDATE makes the write idempotent, so a retried
// or duplicated publish converges to the same row. Concurrent writers for the
// same vendor resolve to last-write-wins.
func (repo *vendorLocationRepository) UpsertLocation(ctx context.Context, location *entity.VendorLocation) error {
	locationM := fromVendorLocationDomain(location)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "vendor_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"vendor_name", "latitude", "longitude", "is_active", "last_updated",
			}),
		}).
		Create(locationM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert vendor location")
	}

	return nil
}

// MarkInactive clears the is_active flag. A vendor that never published has
// no row, which is fine: there is nothing to deactivate.
func (repo *vendorLocationRepository) MarkInactive(ctx context.Context, vendorID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.VendorLocationModel{}).
		Where("vendor_id = ?", vendorID).
		Updates(map[string]any{
			"is_active":    false,
			"last_updated": gorm.Expr("NOW()"),
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark vendor location inactive")
	}

	return nil
}

// FindLocationByVendor retrieves the location row for one vendor.
func (repo *vendorLocationRepository) FindLocationByVendor(ctx context.Context, vendorID uuid.UUID) (*entity.VendorLocation, error) {
	var locationM model.VendorLocationModel
	err := repo.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		First(&locationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor location")
	}

	return toVendorLocationDomain(&locationM), nil
}

// FindActiveLocations retrieves all currently-broadcasting vendor rows.
func (repo *vendorLocationRepository) FindActiveLocations(ctx context.Context) ([]*entity.VendorLocation, error) {
	var locationMs []model.VendorLocationModel
	err := repo.db.WithContext(ctx).
		Where("is_active = TRUE").
		Find(&locationMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active vendor locations")
	}

	locations := make([]*entity.VendorLocation, 0, len(locationMs))
	for i := range locationMs {
		locations = append(locations, toVendorLocationDomain(&locationMs[i]))
	}

	return locations, nil
}

// --- Mapper Functions ---

// toVendorLocationDomain converts a GORM VendorLocationModel to a domain entity.
func toVendorLocationDomain(data *model.VendorLocationModel) *entity.VendorLocation {
	if data == nil {
		return nil
	}

	return &entity.VendorLocation{
		VendorID:   data.VendorID,
		VendorName: data.VendorName,
		Position: entity.GeoPoint{
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
		},
		IsActive:    data.IsActive,
		LastUpdated: data.LastUpdated,
	}
}

// fromVendorLocationDomain converts a domain entity to a GORM VendorLocationModel.
func fromVendorLocationDomain(data *entity.VendorLocation) *model.VendorLocationModel {
	if data == nil {
		return nil
	}

	return &model.VendorLocationModel{
		VendorID:    data.VendorID,
		VendorName:  data.VendorName,
		Latitude:    data.Position.Latitude,
		Longitude:   data.Position.Longitude,
		IsActive:    data.IsActive,
		LastUpdated: data.LastUpdated,
	}
}
