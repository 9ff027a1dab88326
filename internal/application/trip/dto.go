package trip

import (
	"time"

	"github.com/google/uuid"
)

// CreateTripInput contains the input for creating a trip
type CreateTripInput struct {
	OwnerID     uuid.UUID
	Destination string
	StartDate   time.Time
	EndDate     time.Time
}

// GetTripInput identifies a trip to fetch
type GetTripInput struct {
	OwnerID uuid.UUID
	TripID  uuid.UUID
}

// ListTripsInput identifies whose trips to list and which page.
// Zero page values fall back to the defaults.
type ListTripsInput struct {
	OwnerID  uuid.UUID
	Page     int
	PageSize int
}

// DeleteTripInput identifies a trip to delete
type DeleteTripInput struct {
	OwnerID uuid.UUID
	TripID  uuid.UUID
}

// StatsInput identifies whose travel stats to compute
type StatsInput struct {
	OwnerID uuid.UUID
}

// UpcomingInput identifies whose upcoming trips to list
type UpcomingInput struct {
	OwnerID uuid.UUID
}

// UpdateTripInput contains the input for updating a trip.
// Nil fields are left unchanged.
type UpdateTripInput struct {
	OwnerID     uuid.UUID
	TripID      uuid.UUID
	Destination *string
	StartDate   *time.Time
	EndDate     *time.Time
}

// TripView is the trip representation returned to clients
type TripView struct {
	ID           uuid.UUID
	Destination  string
	StartDate    time.Time
	EndDate      time.Time
	DurationDays int
	CreatedAt    time.Time
}

// TripListItemView is a trip annotated with its location count
type TripListItemView struct {
	TripView
	LocationCount int64
}

// TripDetailView is a trip together with its locations
type TripDetailView struct {
	TripView
	Locations []LocationView
}

// UpcomingTripView is a trip that has not started yet
type UpcomingTripView struct {
	TripView
	DaysUntil int
}

// StatsResult contains aggregate travel figures for a user
type StatsResult struct {
	TotalTrips         int64
	UniqueDestinations int64
	TotalDaysTraveled  int64
	TotalLocations     int64
}

// AddLocationInput contains the input for adding a location to a trip
type AddLocationInput struct {
	OwnerID   uuid.UUID
	TripID    uuid.UUID
	Name      string
	Latitude  float64
	Longitude float64
}

// UpdateLocationInput contains the input for updating a location.
// Nil fields are left unchanged.
type UpdateLocationInput struct {
	OwnerID    uuid.UUID
	LocationID uuid.UUID
	Name       *string
	Latitude   *float64
	Longitude  *float64
}

// LocationView is the location representation returned to clients
type LocationView struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	Name      string
	Latitude  float64
	Longitude float64
	CreatedAt time.Time
}

// NearbyInput contains the input for a proximity search across the
// user's locations
type NearbyInput struct {
	OwnerID   uuid.UUID
	Latitude  float64
	Longitude float64
	RadiusKm  float64 // 0 means the default radius
}

// NearbyLocationView is a location annotated with its distance from
// the search point
type NearbyLocationView struct {
	LocationView
	DistanceKm float64
}

// BulkLocationItem is a single candidate location in a bulk add
type BulkLocationItem struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// BulkAddInput contains the input for adding several locations at once
type BulkAddInput struct {
	OwnerID   uuid.UUID
	TripID    uuid.UUID
	Locations []BulkLocationItem
}

// BulkAddResult reports which locations were created and how many
// candidates were skipped as invalid
type BulkAddResult struct {
	Created []LocationView
	Skipped int
}
