package contact

import (
	"context"

	"github.com/google/uuid"
)

// ContactRepository defines the interface for trusted contact persistence.
// All lookups are scoped to the owning user.
type ContactRepository interface {
	// Create creates a new contact
	Create(ctx context.Context, contact *Contact) error

	// Update updates an existing contact
	Update(ctx context.Context, contact *Contact) error

	// Delete deletes a contact owned by the given user
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// FindByID finds a contact owned by the given user
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Contact, error)

	// FindAll returns all contacts for the given user
	FindAll(ctx context.Context, ownerID uuid.UUID) ([]*Contact, error)

	// Search returns contacts whose name or email matches the query,
	// case-insensitively
	Search(ctx context.Context, ownerID uuid.UUID, query string) ([]*Contact, error)
}
