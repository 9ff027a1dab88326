package trip

import (
	"context"
	"time"

	"github.com/soultrip/backend/internal/domain/shared"
	"github.com/soultrip/backend/internal/domain/trip"
	"go.uber.org/zap"
)

// TripService handles trip management operations
type TripService struct {
	tripRepo     trip.TripRepository
	locationRepo trip.LocationRepository
	logger       *zap.Logger
}

// NewTripService creates a new trip service
func NewTripService(tripRepo trip.TripRepository, locationRepo trip.LocationRepository, logger *zap.Logger) *TripService {
	return &TripService{
		tripRepo:     tripRepo,
		locationRepo: locationRepo,
		logger:       logger,
	}
}

// CreateTrip creates a new trip for the given user
func (s *TripService) CreateTrip(ctx context.Context, input CreateTripInput) (*TripView, error) {
	t, err := trip.NewTrip(input.OwnerID, input.Destination, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	if err := s.tripRepo.Create(ctx, t); err != nil {
		s.logger.Error("Failed to create trip", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Trip created",
		zap.String("trip_id", t.ID.String()),
		zap.String("destination", t.Destination),
		zap.String("user_id", input.OwnerID.String()))

	view := toTripView(t)
	return &view, nil
}

// GetTrip returns a single trip owned by the given user together with
// its locations
func (s *TripService) GetTrip(ctx context.Context, input GetTripInput) (*TripDetailView, error) {
	t, err := s.tripRepo.FindByID(ctx, input.OwnerID, input.TripID)
	if err != nil {
		return nil, err
	}

	locations, err := s.locationRepo.FindByTripID(ctx, t.ID)
	if err != nil {
		return nil, err
	}

	return &TripDetailView{
		TripView:  toTripView(t),
		Locations: toLocationViews(locations),
	}, nil
}

// ListTrips returns one page of the user's trips, each annotated with
// its location count
func (s *TripService) ListTrips(ctx context.Context, input ListTripsInput) (*shared.Paginated[TripListItemView], error) {
	filter := shared.DefaultFilter()
	if input.Page > 0 {
		filter.Page = input.Page
	}
	if input.PageSize > 0 {
		filter.PageSize = input.PageSize
	}

	trips, total, err := s.tripRepo.FindAll(ctx, input.OwnerID, filter)
	if err != nil {
		return nil, err
	}

	counts, err := s.tripRepo.CountLocationsByTrip(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	items := make([]TripListItemView, len(trips))
	for i, t := range trips {
		items[i] = TripListItemView{
			TripView:      toTripView(t),
			LocationCount: counts[t.ID],
		}
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.Limit())
	return &result, nil
}

// UpdateTrip updates a trip's destination or dates
func (s *TripService) UpdateTrip(ctx context.Context, input UpdateTripInput) (*TripView, error) {
	t, err := s.tripRepo.FindByID(ctx, input.OwnerID, input.TripID)
	if err != nil {
		return nil, err
	}

	if input.Destination != nil {
		if err := t.SetDestination(*input.Destination); err != nil {
			return nil, err
		}
	}
	if input.StartDate != nil || input.EndDate != nil {
		start := t.StartDate
		end := t.EndDate
		if input.StartDate != nil {
			start = *input.StartDate
		}
		if input.EndDate != nil {
			end = *input.EndDate
		}
		if err := t.Reschedule(start, end); err != nil {
			return nil, err
		}
	}

	if err := s.tripRepo.Update(ctx, t); err != nil {
		s.logger.Error("Failed to update trip",
			zap.String("trip_id", t.ID.String()),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Trip updated", zap.String("trip_id", t.ID.String()))

	view := toTripView(t)
	return &view, nil
}

// DeleteTrip deletes a trip and all of its locations
func (s *TripService) DeleteTrip(ctx context.Context, input DeleteTripInput) error {
	if err := s.tripRepo.Delete(ctx, input.OwnerID, input.TripID); err != nil {
		return err
	}

	s.logger.Info("Trip deleted",
		zap.String("trip_id", input.TripID.String()),
		zap.String("user_id", input.OwnerID.String()))
	return nil
}

// Stats returns aggregate travel figures for the given user
func (s *TripService) Stats(ctx context.Context, input StatsInput) (*StatsResult, error) {
	stats, err := s.tripRepo.Stats(ctx, input.OwnerID)
	if err != nil {
		s.logger.Error("Failed to compute trip stats", zap.Error(err))
		return nil, err
	}

	return &StatsResult{
		TotalTrips:         stats.TotalTrips,
		UniqueDestinations: stats.UniqueDestinations,
		TotalDaysTraveled:  stats.TotalDaysTraveled,
		TotalLocations:     stats.TotalLocations,
	}, nil
}

// Upcoming returns trips starting today or later, soonest first
func (s *TripService) Upcoming(ctx context.Context, input UpcomingInput) ([]UpcomingTripView, error) {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	trips, err := s.tripRepo.FindUpcoming(ctx, input.OwnerID, today)
	if err != nil {
		return nil, err
	}

	views := make([]UpcomingTripView, len(trips))
	for i, t := range trips {
		views[i] = UpcomingTripView{
			TripView:  toTripView(t),
			DaysUntil: t.DaysUntil(today),
		}
	}
	return views, nil
}

func toTripView(t *trip.Trip) TripView {
	return TripView{
		ID:           t.ID,
		Destination:  t.Destination,
		StartDate:    t.StartDate,
		EndDate:      t.EndDate,
		DurationDays: t.DurationDays(),
		CreatedAt:    t.CreatedAt,
	}
}
