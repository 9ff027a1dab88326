package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/soultrip/backend/internal/domain/shared"
	"github.com/soultrip/backend/internal/domain/trip"
	"github.com/soultrip/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormLocationRepository implements trip.LocationRepository using GORM
type GormLocationRepository struct {
	db *gorm.DB
}

// NewGormLocationRepository creates a new GormLocationRepository
func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// Create creates a new location
func (r *GormLocationRepository) Create(ctx context.Context, location *trip.Location) error {
	model := models.LocationModelFromDomain(location)
	return r.db.WithContext(ctx).Create(model).Error
}

// CreateBatch creates multiple locations in one transaction
func (r *GormLocationRepository) CreateBatch(ctx context.Context, locations []*trip.Location) error {
	if len(locations) == 0 {
		return nil
	}
	locationModels := make([]*models.LocationModel, len(locations))
	for i, l := range locations {
		locationModels[i] = models.LocationModelFromDomain(l)
	}
	return r.db.WithContext(ctx).Create(locationModels).Error
}

// Update updates an existing location with optimistic locking
func (r *GormLocationRepository) Update(ctx context.Context, location *trip.Location) error {
	model := models.LocationModelFromDomain(location)
	result := r.db.WithContext(ctx).
		Model(model).
		Where("id = ? AND version = ?", location.ID, location.Version-1).
		Updates(model)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Delete deletes a location
func (r *GormLocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.LocationModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByIDForOwner finds a location whose trip belongs to the given user
func (r *GormLocationRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*trip.Location, error) {
	var model models.LocationModel
	if err := r.db.WithContext(ctx).
		Joins("JOIN trips ON trips.id = locations.trip_id").
		Where("locations.id = ? AND trips.user_id = ?", id, ownerID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByTripID returns all locations for a trip
func (r *GormLocationRepository) FindByTripID(ctx context.Context, tripID uuid.UUID) ([]*trip.Location, error) {
	var locationModels []models.LocationModel
	if err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("created_at").
		Find(&locationModels).Error; err != nil {
		return nil, err
	}

	locations := make([]*trip.Location, len(locationModels))
	for i := range locationModels {
		locations[i] = locationModels[i].ToDomain()
	}
	return locations, nil
}

// FindAllForOwner returns every location across the user's trips
func (r *GormLocationRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID) ([]*trip.Location, error) {
	var locationModels []models.LocationModel
	if err := r.db.WithContext(ctx).
		Joins("JOIN trips ON trips.id = locations.trip_id").
		Where("trips.user_id = ?", ownerID).
		Order("locations.created_at").
		Find(&locationModels).Error; err != nil {
		return nil, err
	}

	locations := make([]*trip.Location, len(locationModels))
	for i := range locationModels {
		locations[i] = locationModels[i].ToDomain()
	}
	return locations, nil
}

var _ trip.LocationRepository = (*GormLocationRepository)(nil)
