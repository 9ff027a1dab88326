package trip

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/soultrip/backend/internal/domain/shared"
	"github.com/soultrip/backend/internal/domain/trip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockLocationRepository is a mock implementation of trip.LocationRepository
type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) Create(ctx context.Context, l *trip.Location) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLocationRepository) CreateBatch(ctx context.Context, locations []*trip.Location) error {
	args := m.Called(ctx, locations)
	return args.Error(0)
}

func (m *MockLocationRepository) Update(ctx context.Context, l *trip.Location) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLocationRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*trip.Location, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trip.Location), args.Error(1)
}

func (m *MockLocationRepository) FindByTripID(ctx context.Context, tripID uuid.UUID) ([]*trip.Location, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*trip.Location), args.Error(1)
}

func (m *MockLocationRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID) ([]*trip.Location, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*trip.Location), args.Error(1)
}

func mustNewLocation(t *testing.T, tripID uuid.UUID, name string, lat, lng float64) *trip.Location {
	t.Helper()
	l, err := trip.NewLocation(tripID, name, lat, lng)
	require.NoError(t, err)
	return l
}

func TestLocationService_AddLocation(t *testing.T) {
	t.Run("rejects location on a foreign trip", func(t *testing.T) {
		ownerID := uuid.New()
		tripID := uuid.New()

		tripRepo := new(MockTripRepository)
		tripRepo.On("FindByID", mock.Anything, ownerID, tripID).Return(nil, shared.ErrNotFound)
		locationRepo := new(MockLocationRepository)

		svc := NewLocationService(tripRepo, locationRepo, zap.NewNop())
		_, err := svc.AddLocation(context.Background(), AddLocationInput{
			OwnerID: ownerID,
			TripID:  tripID,
			Name:    "Fushimi Inari",
		})

		assert.Equal(t, shared.ErrNotFound, err)
		locationRepo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects out-of-range coordinates", func(t *testing.T) {
		ownerID := uuid.New()
		tr := mustNewTrip(t, ownerID, "Kyoto", "2026-09-10", "2026-09-14")

		tripRepo := new(MockTripRepository)
		tripRepo.On("FindByID", mock.Anything, ownerID, tr.ID).Return(tr, nil)
		locationRepo := new(MockLocationRepository)

		svc := NewLocationService(tripRepo, locationRepo, zap.NewNop())
		_, err := svc.AddLocation(context.Background(), AddLocationInput{
			OwnerID:  ownerID,
			TripID:   tr.ID,
			Name:     "Nowhere",
			Latitude: 91,
		})

		assert.Error(t, err)
		locationRepo.AssertNotCalled(t, "Create")
	})
}

func TestLocationService_Nearby(t *testing.T) {
	t.Run("filters by radius and sorts by distance", func(t *testing.T) {
		ownerID := uuid.New()
		tripID := uuid.New()

		// Around central Paris; the third point is far outside the radius
		near := mustNewLocation(t, tripID, "Louvre", 48.8606, 2.3376)
		nearer := mustNewLocation(t, tripID, "Notre-Dame", 48.8530, 2.3499)
		faraway := mustNewLocation(t, tripID, "Versailles", 48.8049, 2.1204)

		locationRepo := new(MockLocationRepository)
		locationRepo.On("FindAllForOwner", mock.Anything, ownerID).
			Return([]*trip.Location{near, nearer, faraway}, nil)

		svc := NewLocationService(new(MockTripRepository), locationRepo, zap.NewNop())
		views, err := svc.Nearby(context.Background(), NearbyInput{
			OwnerID:   ownerID,
			Latitude:  48.8530,
			Longitude: 2.3499,
			RadiusKm:  5,
		})

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "Notre-Dame", views[0].Name)
		assert.Equal(t, "Louvre", views[1].Name)
		assert.Equal(t, 0.0, views[0].DistanceKm)
		assert.LessOrEqual(t, views[0].DistanceKm, views[1].DistanceKm)
	})

	t.Run("rejects invalid search point", func(t *testing.T) {
		svc := NewLocationService(new(MockTripRepository), new(MockLocationRepository), zap.NewNop())
		_, err := svc.Nearby(context.Background(), NearbyInput{
			OwnerID:  uuid.New(),
			Latitude: 120,
		})
		assert.Error(t, err)
	})
}

func TestLocationService_BulkAdd(t *testing.T) {
	ownerID := uuid.New()

	t.Run("skips invalid candidates and creates the rest", func(t *testing.T) {
		tr := mustNewTrip(t, ownerID, "Kyoto", "2026-09-10", "2026-09-14")

		tripRepo := new(MockTripRepository)
		tripRepo.On("FindByID", mock.Anything, ownerID, tr.ID).Return(tr, nil)
		locationRepo := new(MockLocationRepository)
		locationRepo.On("CreateBatch", mock.Anything, mock.AnythingOfType("[]*trip.Location")).Return(nil)

		svc := NewLocationService(tripRepo, locationRepo, zap.NewNop())
		result, err := svc.BulkAdd(context.Background(), BulkAddInput{
			OwnerID: ownerID,
			TripID:  tr.ID,
			Locations: []BulkLocationItem{
				{Name: "Kinkaku-ji", Latitude: 35.0394, Longitude: 135.7292},
				{Name: "", Latitude: 35.0, Longitude: 135.0},
				{Name: "Bad", Latitude: 200, Longitude: 0},
			},
		})

		require.NoError(t, err)
		assert.Len(t, result.Created, 1)
		assert.Equal(t, 2, result.Skipped)
	})

	t.Run("fails when nothing is valid", func(t *testing.T) {
		tr := mustNewTrip(t, ownerID, "Kyoto", "2026-09-10", "2026-09-14")

		tripRepo := new(MockTripRepository)
		tripRepo.On("FindByID", mock.Anything, ownerID, tr.ID).Return(tr, nil)
		locationRepo := new(MockLocationRepository)

		svc := NewLocationService(tripRepo, locationRepo, zap.NewNop())
		_, err := svc.BulkAdd(context.Background(), BulkAddInput{
			OwnerID: ownerID,
			TripID:  tr.ID,
			Locations: []BulkLocationItem{
				{Name: "", Latitude: 0, Longitude: 0},
			},
		})

		assert.Error(t, err)
		locationRepo.AssertNotCalled(t, "CreateBatch")
	})
}

func TestLocationService_DeleteLocation(t *testing.T) {
	t.Run("refuses to delete a foreign location", func(t *testing.T) {
		ownerID := uuid.New()
		locationID := uuid.New()

		locationRepo := new(MockLocationRepository)
		locationRepo.On("FindByIDForOwner", mock.Anything, ownerID, locationID).Return(nil, shared.ErrNotFound)

		svc := NewLocationService(new(MockTripRepository), locationRepo, zap.NewNop())
		err := svc.DeleteLocation(context.Background(), ownerID, locationID)

		assert.Equal(t, shared.ErrNotFound, err)
		locationRepo.AssertNotCalled(t, "Delete")
	})
}
