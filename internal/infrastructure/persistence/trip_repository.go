package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/soultrip/backend/internal/domain/shared"
	"github.com/soultrip/backend/internal/domain/trip"
	"github.com/soultrip/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTripRepository implements trip.TripRepository using GORM
type GormTripRepository struct {
	db *gorm.DB
}

// NewGormTripRepository creates a new GormTripRepository
func NewGormTripRepository(db *gorm.DB) *GormTripRepository {
	return &GormTripRepository{db: db}
}

// Create creates a new trip
func (r *GormTripRepository) Create(ctx context.Context, t *trip.Trip) error {
	model := models.TripModelFromDomain(t)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing trip with optimistic locking
func (r *GormTripRepository) Update(ctx context.Context, t *trip.Trip) error {
	model := models.TripModelFromDomain(t)
	result := r.db.WithContext(ctx).
		Model(model).
		Where("id = ? AND version = ?", t.ID, t.Version-1).
		Updates(model)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Delete deletes a trip and all of its locations in one transaction
func (r *GormTripRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.TripModel{}, "user_id = ? AND id = ?", ownerID, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return tx.Delete(&models.LocationModel{}, "trip_id = ?", id).Error
	})
}

// FindByID finds a trip owned by the given user
func (r *GormTripRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*trip.Trip, error) {
	var model models.TripModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", ownerID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns one page of the user's trips ordered by start date,
// along with the total trip count
func (r *GormTripRepository) FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]*trip.Trip, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.TripModel{}).
		Where("user_id = ?", ownerID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tripModels []models.TripModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("start_date").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&tripModels).Error; err != nil {
		return nil, 0, err
	}

	trips := make([]*trip.Trip, len(tripModels))
	for i := range tripModels {
		trips[i] = tripModels[i].ToDomain()
	}
	return trips, total, nil
}

// FindUpcoming returns trips starting on or after the given day, earliest first
func (r *GormTripRepository) FindUpcoming(ctx context.Context, ownerID uuid.UUID, from time.Time) ([]*trip.Trip, error) {
	var tripModels []models.TripModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND start_date >= ?", ownerID, from).
		Order("start_date").
		Find(&tripModels).Error; err != nil {
		return nil, err
	}

	trips := make([]*trip.Trip, len(tripModels))
	for i := range tripModels {
		trips[i] = tripModels[i].ToDomain()
	}
	return trips, nil
}

// CountLocationsByTrip returns location counts grouped by trip for
// every trip of the given user
func (r *GormTripRepository) CountLocationsByTrip(ctx context.Context, ownerID uuid.UUID) (map[uuid.UUID]int64, error) {
	var rows []struct {
		TripID uuid.UUID
		Count  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.LocationModel{}).
		Select("locations.trip_id AS trip_id, COUNT(*) AS count").
		Joins("JOIN trips ON trips.id = locations.trip_id").
		Where("trips.user_id = ?", ownerID).
		Group("locations.trip_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.TripID] = row.Count
	}
	return counts, nil
}

// Stats computes aggregate trip statistics for the given user.
// Total days counts both endpoints of every trip.
func (r *GormTripRepository) Stats(ctx context.Context, ownerID uuid.UUID) (*trip.Stats, error) {
	stats := &trip.Stats{}

	if err := r.db.WithContext(ctx).
		Model(&models.TripModel{}).
		Where("user_id = ?", ownerID).
		Count(&stats.TotalTrips).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Model(&models.TripModel{}).
		Where("user_id = ?", ownerID).
		Distinct("destination").
		Count(&stats.UniqueDestinations).Error; err != nil {
		return nil, err
	}

	var tripModels []models.TripModel
	if err := r.db.WithContext(ctx).
		Select("start_date", "end_date").
		Where("user_id = ?", ownerID).
		Find(&tripModels).Error; err != nil {
		return nil, err
	}
	for i := range tripModels {
		stats.TotalDaysTraveled += int64(tripModels[i].ToDomain().DurationDays())
	}

	if err := r.db.WithContext(ctx).
		Model(&models.LocationModel{}).
		Joins("JOIN trips ON trips.id = locations.trip_id").
		Where("trips.user_id = ?", ownerID).
		Count(&stats.TotalLocations).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

var _ trip.TripRepository = (*GormTripRepository)(nil)
