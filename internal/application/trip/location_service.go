package trip

import (
	"context"
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/soultrip/backend/internal/domain/shared"
	"github.com/soultrip/backend/internal/domain/trip"
	"go.uber.org/zap"
)

// LocationService handles location management across a user's trips
type LocationService struct {
	tripRepo     trip.TripRepository
	locationRepo trip.LocationRepository
	logger       *zap.Logger
}

// NewLocationService creates a new location service
func NewLocationService(
	tripRepo trip.TripRepository,
	locationRepo trip.LocationRepository,
	logger *zap.Logger,
) *LocationService {
	return &LocationService{
		tripRepo:     tripRepo,
		locationRepo: locationRepo,
		logger:       logger,
	}
}

// AddLocation attaches a new location to one of the user's trips
func (s *LocationService) AddLocation(ctx context.Context, input AddLocationInput) (*LocationView, error) {
	// Confirm the trip exists and belongs to the caller
	if _, err := s.tripRepo.FindByID(ctx, input.OwnerID, input.TripID); err != nil {
		return nil, err
	}

	location, err := trip.NewLocation(input.TripID, input.Name, input.Latitude, input.Longitude)
	if err != nil {
		return nil, err
	}

	if err := s.locationRepo.Create(ctx, location); err != nil {
		s.logger.Error("Failed to create location", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Location added",
		zap.String("location_id", location.ID.String()),
		zap.String("trip_id", input.TripID.String()))

	view := toLocationView(location)
	return &view, nil
}

// GetLocation returns a single location reachable by the given user
func (s *LocationService) GetLocation(ctx context.Context, ownerID, locationID uuid.UUID) (*LocationView, error) {
	location, err := s.locationRepo.FindByIDForOwner(ctx, ownerID, locationID)
	if err != nil {
		return nil, err
	}

	view := toLocationView(location)
	return &view, nil
}

// ListTripLocations returns all locations for one of the user's trips
func (s *LocationService) ListTripLocations(ctx context.Context, ownerID, tripID uuid.UUID) ([]LocationView, error) {
	if _, err := s.tripRepo.FindByID(ctx, ownerID, tripID); err != nil {
		return nil, err
	}

	locations, err := s.locationRepo.FindByTripID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return toLocationViews(locations), nil
}

// ListAllLocations returns every location across the user's trips
func (s *LocationService) ListAllLocations(ctx context.Context, ownerID uuid.UUID) ([]LocationView, error) {
	locations, err := s.locationRepo.FindAllForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return toLocationViews(locations), nil
}

// UpdateLocation updates a location's name or coordinates
func (s *LocationService) UpdateLocation(ctx context.Context, input UpdateLocationInput) (*LocationView, error) {
	location, err := s.locationRepo.FindByIDForOwner(ctx, input.OwnerID, input.LocationID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := location.SetName(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Latitude != nil {
		if err := location.SetLatitude(*input.Latitude); err != nil {
			return nil, err
		}
	}
	if input.Longitude != nil {
		if err := location.SetLongitude(*input.Longitude); err != nil {
			return nil, err
		}
	}

	if err := s.locationRepo.Update(ctx, location); err != nil {
		s.logger.Error("Failed to update location",
			zap.String("location_id", location.ID.String()),
			zap.Error(err))
		return nil, err
	}

	view := toLocationView(location)
	return &view, nil
}

// DeleteLocation deletes a location reachable by the given user
func (s *LocationService) DeleteLocation(ctx context.Context, ownerID, locationID uuid.UUID) error {
	// Ownership check runs through the owning trip
	if _, err := s.locationRepo.FindByIDForOwner(ctx, ownerID, locationID); err != nil {
		return err
	}

	if err := s.locationRepo.Delete(ctx, locationID); err != nil {
		return err
	}

	s.logger.Info("Location deleted", zap.String("location_id", locationID.String()))
	return nil
}

// Nearby returns the user's locations within the given radius of a
// point, closest first. Distances are rounded to two decimals.
func (s *LocationService) Nearby(ctx context.Context, input NearbyInput) ([]NearbyLocationView, error) {
	if err := trip.ValidateCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	radius := input.RadiusKm
	if radius <= 0 {
		radius = trip.DefaultNearbyRadiusKm
	}

	locations, err := s.locationRepo.FindAllForOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	nearby := make([]NearbyLocationView, 0)
	for _, location := range locations {
		distance := trip.HaversineDistance(input.Latitude, input.Longitude, location.Latitude, location.Longitude)
		if distance > radius {
			continue
		}
		nearby = append(nearby, NearbyLocationView{
			LocationView: toLocationView(location),
			DistanceKm:   math.Round(distance*100) / 100,
		})
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})
	return nearby, nil
}

// BulkAdd attaches several locations to a trip in one call, skipping
// invalid candidates. It fails only when no candidate is valid.
func (s *LocationService) BulkAdd(ctx context.Context, input BulkAddInput) (*BulkAddResult, error) {
	if _, err := s.tripRepo.FindByID(ctx, input.OwnerID, input.TripID); err != nil {
		return nil, err
	}
	if len(input.Locations) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "No locations provided")
	}

	valid := make([]*trip.Location, 0, len(input.Locations))
	skipped := 0
	for _, item := range input.Locations {
		location, err := trip.NewLocation(input.TripID, item.Name, item.Latitude, item.Longitude)
		if err != nil {
			skipped++
			continue
		}
		valid = append(valid, location)
	}

	if len(valid) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "No valid locations provided")
	}

	if err := s.locationRepo.CreateBatch(ctx, valid); err != nil {
		s.logger.Error("Failed to bulk add locations", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Locations bulk added",
		zap.String("trip_id", input.TripID.String()),
		zap.Int("created", len(valid)),
		zap.Int("skipped", skipped))

	return &BulkAddResult{
		Created: toLocationViews(valid),
		Skipped: skipped,
	}, nil
}

func toLocationView(l *trip.Location) LocationView {
	return LocationView{
		ID:        l.ID,
		TripID:    l.TripID,
		Name:      l.Name,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		CreatedAt: l.CreatedAt,
	}
}

func toLocationViews(locations []*trip.Location) []LocationView {
	views := make([]LocationView, len(locations))
	for i, l := range locations {
		views[i] = toLocationView(l)
	}
	return views
}
