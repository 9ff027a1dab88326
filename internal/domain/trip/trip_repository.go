package trip

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/soultrip/backend/internal/domain/shared"
)

// TripRepository defines the interface for trip persistence.
// All lookups are scoped to the owning user.
type TripRepository interface {
	// Create creates a new trip
	Create(ctx context.Context, trip *Trip) error

	// Update updates an existing trip
	Update(ctx context.Context, trip *Trip) error

	// Delete deletes a trip and all of its locations
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// FindByID finds a trip owned by the given user
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Trip, error)

	// FindAll returns one page of the user's trips ordered by start
	// date, along with the total trip count
	FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]*Trip, int64, error)

	// FindUpcoming returns trips starting on or after the given day,
	// ordered by start date ascending
	FindUpcoming(ctx context.Context, ownerID uuid.UUID, from time.Time) ([]*Trip, error)

	// CountLocationsByTrip returns the number of locations attached to
	// each of the user's trips, keyed by trip ID. Trips without
	// locations are absent from the map.
	CountLocationsByTrip(ctx context.Context, ownerID uuid.UUID) (map[uuid.UUID]int64, error)

	// Stats computes aggregate trip statistics for the given user
	Stats(ctx context.Context, ownerID uuid.UUID) (*Stats, error)
}
