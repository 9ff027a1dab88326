package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/soultrip/backend/internal/domain/journal"
	"github.com/soultrip/backend/internal/domain/shared"
	"github.com/soultrip/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormJournalRepository implements journal.EntryRepository using GORM
type GormJournalRepository struct {
	db *gorm.DB
}

// NewGormJournalRepository creates a new GormJournalRepository
func NewGormJournalRepository(db *gorm.DB) *GormJournalRepository {
	return &GormJournalRepository{db: db}
}

// Create creates a new entry
func (r *GormJournalRepository) Create(ctx context.Context, entry *journal.Entry) error {
	model := models.JournalEntryModelFromDomain(entry)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing entry with optimistic locking
func (r *GormJournalRepository) Update(ctx context.Context, entry *journal.Entry) error {
	model := models.JournalEntryModelFromDomain(entry)
	result := r.db.WithContext(ctx).
		Model(model).
		Where("id = ? AND version = ?", entry.ID, entry.Version-1).
		Updates(model)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Delete deletes an entry owned by the given user
func (r *GormJournalRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.JournalEntryModel{}, "user_id = ? AND id = ?", ownerID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds an entry owned by the given user
func (r *GormJournalRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*journal.Entry, error) {
	var model models.JournalEntryModel
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

// FindAll returns one page of the user's entries newest first, along
// with the total entry count
func (r *GormJournalRepository) FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]*journal.Entry, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.JournalEntryModel{}).
		Where("user_id = ?", ownerID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entryModels []models.JournalEntryModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&entryModels).Error; err != nil {
		return nil, 0, err
	}

	entries := make([]*journal.Entry, len(entryModels))
	for i := range entryModels {
		entries[i] = entryModels[i].ToDomain()
	}
	return entries, total, nil
}

// Search returns entries whose title or content matches the query, newest first.
// LOWER-based matching keeps the query portable between Postgres and SQLite.
func (r *GormJournalRepository) Search(ctx context.Context, ownerID uuid.UUID, query string) ([]*journal.Entry, error) {
	pattern := "%" + query + "%"

	var entryModels []models.JournalEntryModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND (LOWER(title) LIKE LOWER(?) OR LOWER(content) LIKE LOWER(?))", ownerID, pattern, pattern).
		Order("created_at DESC").
		Find(&entryModels).Error; err != nil {
		return nil, err
	}

	entries := make([]*journal.Entry, len(entryModels))
	for i := range entryModels {
		entries[i] = entryModels[i].ToDomain()
	}
	return entries, nil
}

// Stats computes aggregate journal statistics for the given user
func (r *GormJournalRepository) Stats(ctx context.Context, ownerID uuid.UUID) (*journal.Stats, error) {
	stats := &journal.Stats{}

	if err := r.db.WithContext(ctx).
		Model(&models.JournalEntryModel{}).
		Where("user_id = ?", ownerID).
		Count(&stats.TotalEntries).Error; err != nil {
		return nil, err
	}

	if stats.TotalEntries == 0 {
		return stats, nil
	}

	var first models.JournalEntryModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at").
		First(&first).Error; err != nil {
		return nil, err
	}
	firstDate := first.CreatedAt
	stats.FirstEntryDate = &firstDate

	var latest models.JournalEntryModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		First(&latest).Error; err != nil {
		return nil, err
	}
	latestDate := latest.CreatedAt
	stats.LatestEntryDate = &latestDate

	var avgLength float64
	if err := r.db.WithContext(ctx).
		Model(&models.JournalEntryModel{}).
		Where("user_id = ?", ownerID).
		Select("COALESCE(AVG(LENGTH(content)), 0)").
		Scan(&avgLength).Error; err != nil {
		return nil, err
	}
	stats.AvgContentLength = int(avgLength)

	return stats, nil
}

var _ journal.EntryRepository = (*GormJournalRepository)(nil)
