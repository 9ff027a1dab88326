package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/soultrip/backend/internal/domain/contact"
	"github.com/soultrip/backend/internal/domain/shared"
	"github.com/soultrip/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormContactRepository implements contact.ContactRepository using GORM
type GormContactRepository struct {
	db *gorm.DB
}

// NewGormContactRepository creates a new GormContactRepository
func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// Create creates a new contact
func (r *GormContactRepository) Create(ctx context.Context, c *contact.Contact) error {
	model := models.TrustedContactModelFromDomain(c)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing contact with optimistic locking
func (r *GormContactRepository) Update(ctx context.Context, c *contact.Contact) error {
	model := models.TrustedContactModelFromDomain(c)
	result := r.db.WithContext(ctx).
		Model(model).
		Where("id = ? AND version = ?", c.ID, c.Version-1).
		Updates(model)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Delete deletes a contact owned by the given user
func (r *GormContactRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TrustedContactModel{}, "user_id = ? AND id = ?", ownerID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a contact owned by the given user
func (r *GormContactRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*contact.Contact, error) {
	var model models.TrustedContactModel
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

// FindAll returns all contacts for the given user
func (r *GormContactRepository) FindAll(ctx context.Context, ownerID uuid.UUID) ([]*contact.Contact, error) {
	var contactModels []models.TrustedContactModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at").
		Find(&contactModels).Error; err != nil {
		return nil, err
	}

	contacts := make([]*contact.Contact, len(contactModels))
	for i := range contactModels {
		contacts[i] = contactModels[i].ToDomain()
	}
	return contacts, nil
}

// Search returns contacts whose name or email matches the query.
// LOWER-based matching keeps the query portable between Postgres and SQLite.
func (r *GormContactRepository) Search(ctx context.Context, ownerID uuid.UUID, query string) ([]*contact.Contact, error) {
	pattern := "%" + query + "%"

	var contactModels []models.TrustedContactModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND (LOWER(name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?))", ownerID, pattern, pattern).
		Order("created_at").
		Find(&contactModels).Error; err != nil {
		return nil, err
	}

	contacts := make([]*contact.Contact, len(contactModels))
	for i := range contactModels {
		contacts[i] = contactModels[i].ToDomain()
	}
	return contacts, nil
}

var _ contact.ContactRepository = (*GormContactRepository)(nil)
