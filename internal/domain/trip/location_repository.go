package trip

import (
	"context"

	"github.com/google/uuid"
)

// LocationRepository defines the interface for location persistence.
// Ownership checks go through the owning trip.
type LocationRepository interface {
	// Create creates a new location
	Create(ctx context.Context, location *Location) error

	// CreateBatch creates multiple locations in one transaction
	CreateBatch(ctx context.Context, locations []*Location) error

	// Update updates an existing location
	Update(ctx context.Context, location *Location) error

	// Delete deletes a location
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByIDForOwner finds a location whose trip belongs to the given user
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Location, error)

	// FindByTripID returns all locations for a trip
	FindByTripID(ctx context.Context, tripID uuid.UUID) ([]*Location, error)

	// FindAllForOwner returns every location across the user's trips
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID) ([]*Location, error)
}
