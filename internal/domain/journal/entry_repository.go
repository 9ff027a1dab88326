package journal

import (
	"context"

	"github.com/google/uuid"
	"github.com/soultrip/backend/internal/domain/shared"
)

// EntryRepository defines the interface for journal entry persistence.
// All lookups are scoped to the owning user.
type EntryRepository interface {
	// Create creates a new entry
	Create(ctx context.Context, entry *Entry) error

	// Update updates an existing entry
	Update(ctx context.Context, entry *Entry) error

	// Delete deletes an entry owned by the given user
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// FindByID finds an entry owned by the given user
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Entry, error)

	// FindAll returns one page of the user's entries ordered by
	// creation time descending, along with the total entry count
	FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]*Entry, int64, error)

	// Search returns entries whose title or content matches the query,
	// case-insensitively, ordered by creation time descending
	Search(ctx context.Context, ownerID uuid.UUID, query string) ([]*Entry, error)

	// Stats computes aggregate journal statistics for the given user
	Stats(ctx context.Context, ownerID uuid.UUID) (*Stats, error)
}
