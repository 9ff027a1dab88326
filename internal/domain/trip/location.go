package trip

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/soultrip/backend/internal/domain/shared"
)

// Location represents a point of interest visited on a trip.
// Ownership is derived from the owning trip, locations carry no
// owner of their own.
type Location struct {
	shared.BaseAggregateRoot
	TripID    uuid.UUID
	Name      string
	Latitude  float64
	Longitude float64
}

// NewLocation creates a new location attached to a trip
func NewLocation(tripID uuid.UUID, name string, latitude, longitude float64) (*Location, error) {
	if tripID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TRIP_ID", "Trip ID cannot be empty")
	}
	if err := validateLocationName(name); err != nil {
		return nil, err
	}
	if err := ValidateCoordinates(latitude, longitude); err != nil {
		return nil, err
	}

	return &Location{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		TripID:            tripID,
		Name:              strings.TrimSpace(name),
		Latitude:          latitude,
		Longitude:         longitude,
	}, nil
}

// SetName updates the location name
func (l *Location) SetName(name string) error {
	if err := validateLocationName(name); err != nil {
		return err
	}

	l.Name = strings.TrimSpace(name)
	l.UpdatedAt = time.Now()
	l.IncrementVersion()

	return nil
}

// SetLatitude updates the latitude
func (l *Location) SetLatitude(latitude float64) error {
	if latitude < -90 || latitude > 90 {
		return shared.NewDomainError("INVALID_LATITUDE", "Latitude must be between -90 and 90")
	}

	l.Latitude = latitude
	l.UpdatedAt = time.Now()
	l.IncrementVersion()

	return nil
}

// SetLongitude updates the longitude
func (l *Location) SetLongitude(longitude float64) error {
	if longitude < -180 || longitude > 180 {
		return shared.NewDomainError("INVALID_LONGITUDE", "Longitude must be between -180 and 180")
	}

	l.Longitude = longitude
	l.UpdatedAt = time.Now()
	l.IncrementVersion()

	return nil
}

// ValidateCoordinates checks a latitude/longitude pair
func ValidateCoordinates(latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return shared.NewDomainError("INVALID_COORDINATES", "Coordinates out of range")
	}
	return nil
}

func validateLocationName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_LOCATION_NAME", "Location name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_LOCATION_NAME", "Location name cannot exceed 100 characters")
	}
	return nil
}
