package trip

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/soultrip/backend/internal/domain/shared"
	"github.com/soultrip/backend/internal/domain/trip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockTripRepository is a mock implementation of trip.TripRepository
type MockTripRepository struct {
	mock.Mock
}

func (m *MockTripRepository) Create(ctx context.Context, t *trip.Trip) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTripRepository) Update(ctx context.Context, t *trip.Trip) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTripRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *MockTripRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*trip.Trip, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trip.Trip), args.Error(1)
}

func (m *MockTripRepository) FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]*trip.Trip, int64, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*trip.Trip), args.Get(1).(int64), args.Error(2)
}

func (m *MockTripRepository) FindUpcoming(ctx context.Context, ownerID uuid.UUID, from time.Time) ([]*trip.Trip, error) {
	args := m.Called(ctx, ownerID, from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*trip.Trip), args.Error(1)
}

func (m *MockTripRepository) CountLocationsByTrip(ctx context.Context, ownerID uuid.UUID) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]int64), args.Error(1)
}

func (m *MockTripRepository) Stats(ctx context.Context, ownerID uuid.UUID) (*trip.Stats, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trip.Stats), args.Error(1)
}

func mustNewTrip(t *testing.T, ownerID uuid.UUID, destination, start, end string) *trip.Trip {
	t.Helper()
	startDate, err := time.Parse(trip.DateLayout, start)
	require.NoError(t, err)
	endDate, err := time.Parse(trip.DateLayout, end)
	require.NoError(t, err)
	tr, err := trip.NewTrip(ownerID, destination, startDate, endDate)
	require.NoError(t, err)
	return tr
}

func TestTripService_CreateTrip(t *testing.T) {
	t.Run("creates trip with inclusive duration", func(t *testing.T) {
		repo := new(MockTripRepository)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*trip.Trip")).Return(nil)

		svc := NewTripService(repo, new(MockLocationRepository), zap.NewNop())
		ownerID := uuid.New()
		start, _ := time.Parse(trip.DateLayout, "2026-09-10")
		end, _ := time.Parse(trip.DateLayout, "2026-09-14")

		view, err := svc.CreateTrip(context.Background(), CreateTripInput{
			OwnerID:     ownerID,
			Destination: "Kyoto",
			StartDate:   start,
			EndDate:     end,
		})

		require.NoError(t, err)
		assert.Equal(t, "Kyoto", view.Destination)
		assert.Equal(t, 5, view.DurationDays)
		repo.AssertExpectations(t)
	})

	t.Run("rejects end date before start date", func(t *testing.T) {
		repo := new(MockTripRepository)
		svc := NewTripService(repo, new(MockLocationRepository), zap.NewNop())
		start, _ := time.Parse(trip.DateLayout, "2026-09-10")
		end, _ := time.Parse(trip.DateLayout, "2026-09-01")

		_, err := svc.CreateTrip(context.Background(), CreateTripInput{
			OwnerID:     uuid.New(),
			Destination: "Kyoto",
			StartDate:   start,
			EndDate:     end,
		})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Create")
	})
}

func TestTripService_GetTrip(t *testing.T) {
	t.Run("includes the trip's locations", func(t *testing.T) {
		ownerID := uuid.New()
		tr := mustNewTrip(t, ownerID, "Paris", "2026-09-01", "2026-09-05")
		louvre, err := trip.NewLocation(tr.ID, "Louvre", 48.8606, 2.3376)
		require.NoError(t, err)

		tripRepo := new(MockTripRepository)
		locationRepo := new(MockLocationRepository)
		tripRepo.On("FindByID", mock.Anything, ownerID, tr.ID).Return(tr, nil)
		locationRepo.On("FindByTripID", mock.Anything, tr.ID).Return([]*trip.Location{louvre}, nil)

		svc := NewTripService(tripRepo, locationRepo, zap.NewNop())
		view, err := svc.GetTrip(context.Background(), GetTripInput{OwnerID: ownerID, TripID: tr.ID})

		require.NoError(t, err)
		assert.Equal(t, "Paris", view.Destination)
		require.Len(t, view.Locations, 1)
		assert.Equal(t, "Louvre", view.Locations[0].Name)
	})
}

func TestTripService_ListTrips(t *testing.T) {
	t.Run("annotates trips with location counts", func(t *testing.T) {
		ownerID := uuid.New()
		first := mustNewTrip(t, ownerID, "Kyoto", "2026-09-10", "2026-09-14")
		second := mustNewTrip(t, ownerID, "Lisbon", "2026-10-01", "2026-10-05")

		repo := new(MockTripRepository)
		repo.On("FindAll", mock.Anything, ownerID, mock.AnythingOfType("shared.Filter")).
			Return([]*trip.Trip{first, second}, int64(2), nil)
		repo.On("CountLocationsByTrip", mock.Anything, ownerID).
			Return(map[uuid.UUID]int64{first.ID: 3}, nil)

		svc := NewTripService(repo, new(MockLocationRepository), zap.NewNop())
		result, err := svc.ListTrips(context.Background(), ListTripsInput{OwnerID: ownerID})

		require.NoError(t, err)
		require.Len(t, result.Items, 2)
		assert.Equal(t, int64(3), result.Items[0].LocationCount)
		assert.Equal(t, int64(0), result.Items[1].LocationCount)
		assert.Equal(t, int64(2), result.Total)
		assert.Equal(t, 1, result.Page)
	})

	t.Run("passes the requested page to the repository", func(t *testing.T) {
		ownerID := uuid.New()
		repo := new(MockTripRepository)
		repo.On("FindAll", mock.Anything, ownerID, mock.MatchedBy(func(f shared.Filter) bool {
			return f.Page == 2 && f.Limit() == 5
		})).Return([]*trip.Trip{}, int64(7), nil)
		repo.On("CountLocationsByTrip", mock.Anything, ownerID).
			Return(map[uuid.UUID]int64{}, nil)

		svc := NewTripService(repo, new(MockLocationRepository), zap.NewNop())
		result, err := svc.ListTrips(context.Background(), ListTripsInput{OwnerID: ownerID, Page: 2, PageSize: 5})

		require.NoError(t, err)
		assert.Equal(t, int64(7), result.Total)
		assert.Equal(t, 2, result.TotalPages)
		repo.AssertExpectations(t)
	})
}

func TestTripService_UpdateTrip(t *testing.T) {
	t.Run("updates destination only", func(t *testing.T) {
		ownerID := uuid.New()
		tr := mustNewTrip(t, ownerID, "Kyoto", "2026-09-10", "2026-09-14")

		repo := new(MockTripRepository)
		repo.On("FindByID", mock.Anything, ownerID, tr.ID).Return(tr, nil)
		repo.On("Update", mock.Anything, tr).Return(nil)

		svc := NewTripService(repo, new(MockLocationRepository), zap.NewNop())
		destination := "Osaka"
		view, err := svc.UpdateTrip(context.Background(), UpdateTripInput{
			OwnerID:     ownerID,
			TripID:      tr.ID,
			Destination: &destination,
		})

		require.NoError(t, err)
		assert.Equal(t, "Osaka", view.Destination)
		assert.Equal(t, 5, view.DurationDays)
	})

	t.Run("rejects reschedule that inverts the range", func(t *testing.T) {
		ownerID := uuid.New()
		tr := mustNewTrip(t, ownerID, "Kyoto", "2026-09-10", "2026-09-14")

		repo := new(MockTripRepository)
		repo.On("FindByID", mock.Anything, ownerID, tr.ID).Return(tr, nil)

		svc := NewTripService(repo, new(MockLocationRepository), zap.NewNop())
		badEnd, _ := time.Parse(trip.DateLayout, "2026-09-01")
		_, err := svc.UpdateTrip(context.Background(), UpdateTripInput{
			OwnerID: ownerID,
			TripID:  tr.ID,
			EndDate: &badEnd,
		})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("propagates not found for foreign trip", func(t *testing.T) {
		repo := new(MockTripRepository)
		ownerID := uuid.New()
		tripID := uuid.New()
		repo.On("FindByID", mock.Anything, ownerID, tripID).Return(nil, shared.ErrNotFound)

		svc := NewTripService(repo, new(MockLocationRepository), zap.NewNop())
		_, err := svc.UpdateTrip(context.Background(), UpdateTripInput{OwnerID: ownerID, TripID: tripID})

		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestTripService_Stats(t *testing.T) {
	t.Run("maps repository figures", func(t *testing.T) {
		ownerID := uuid.New()
		repo := new(MockTripRepository)
		repo.On("Stats", mock.Anything, ownerID).Return(&trip.Stats{
			TotalTrips:         3,
			UniqueDestinations: 2,
			TotalDaysTraveled:  12,
			TotalLocations:     7,
		}, nil)

		svc := NewTripService(repo, new(MockLocationRepository), zap.NewNop())
		result, err := svc.Stats(context.Background(), StatsInput{OwnerID: ownerID})

		require.NoError(t, err)
		assert.Equal(t, int64(3), result.TotalTrips)
		assert.Equal(t, int64(2), result.UniqueDestinations)
		assert.Equal(t, int64(12), result.TotalDaysTraveled)
		assert.Equal(t, int64(7), result.TotalLocations)
	})
}

func TestTripService_Upcoming(t *testing.T) {
	t.Run("annotates trips with days until departure", func(t *testing.T) {
		ownerID := uuid.New()
		now := time.Now().UTC()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

		soon := today.AddDate(0, 0, 3)
		later := today.AddDate(0, 0, 10)
		first, err := trip.NewTrip(ownerID, "Lisbon", soon, soon.AddDate(0, 0, 2))
		require.NoError(t, err)
		second, err := trip.NewTrip(ownerID, "Porto", later, later.AddDate(0, 0, 1))
		require.NoError(t, err)

		repo := new(MockTripRepository)
		repo.On("FindUpcoming", mock.Anything, ownerID, today).Return([]*trip.Trip{first, second}, nil)

		svc := NewTripService(repo, new(MockLocationRepository), zap.NewNop())
		views, err := svc.Upcoming(context.Background(), UpcomingInput{OwnerID: ownerID})

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, 3, views[0].DaysUntil)
		assert.Equal(t, 10, views[1].DaysUntil)
	})
}
