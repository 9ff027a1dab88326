package trip

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewTrip(t *testing.T) {
	ownerID := uuid.New()

	t.Run("creates trip with valid input", func(t *testing.T) {
		tr, err := NewTrip(ownerID, "Kyoto", date(2026, 10, 1), date(2026, 10, 7))
		require.NoError(t, err)
		assert.Equal(t, "Kyoto", tr.Destination)
		assert.Equal(t, ownerID, tr.GetOwnerID())
		assert.Equal(t, 1, tr.GetVersion())
	})

	t.Run("allows single-day trip", func(t *testing.T) {
		tr, err := NewTrip(ownerID, "Day trip", date(2026, 10, 1), date(2026, 10, 1))
		require.NoError(t, err)
		assert.Equal(t, 1, tr.DurationDays())
	})

	t.Run("rejects end date before start date", func(t *testing.T) {
		_, err := NewTrip(ownerID, "Kyoto", date(2026, 10, 7), date(2026, 10, 1))
		assert.Error(t, err)
	})

	t.Run("rejects empty destination", func(t *testing.T) {
		_, err := NewTrip(ownerID, "  ", date(2026, 10, 1), date(2026, 10, 7))
		assert.Error(t, err)
	})

	t.Run("rejects zero dates", func(t *testing.T) {
		_, err := NewTrip(ownerID, "Kyoto", time.Time{}, date(2026, 10, 7))
		assert.Error(t, err)
	})
}

func TestTripReschedule(t *testing.T) {
	tr, err := NewTrip(uuid.New(), "Kyoto", date(2026, 10, 1), date(2026, 10, 7))
	require.NoError(t, err)

	t.Run("updates dates", func(t *testing.T) {
		require.NoError(t, tr.Reschedule(date(2026, 11, 1), date(2026, 11, 5)))
		assert.Equal(t, date(2026, 11, 1), tr.StartDate)
		assert.Equal(t, date(2026, 11, 5), tr.EndDate)
		assert.Equal(t, 2, tr.GetVersion())
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		assert.Error(t, tr.Reschedule(date(2026, 11, 5), date(2026, 11, 1)))
	})
}

func TestTripDuration(t *testing.T) {
	tr, err := NewTrip(uuid.New(), "Kyoto", date(2026, 10, 1), date(2026, 10, 7))
	require.NoError(t, err)

	// Both endpoints count as travel days
	assert.Equal(t, 7, tr.DurationDays())
}

func TestTripUpcoming(t *testing.T) {
	tr, err := NewTrip(uuid.New(), "Kyoto", date(2026, 10, 10), date(2026, 10, 17))
	require.NoError(t, err)

	assert.True(t, tr.IsUpcoming(date(2026, 10, 1)))
	assert.True(t, tr.IsUpcoming(date(2026, 10, 10)))
	assert.False(t, tr.IsUpcoming(date(2026, 10, 11)))
	assert.Equal(t, 9, tr.DaysUntil(date(2026, 10, 1)))
	assert.Equal(t, 0, tr.DaysUntil(date(2026, 10, 10)))
}

func TestNewLocation(t *testing.T) {
	tripID := uuid.New()

	t.Run("creates location with valid input", func(t *testing.T) {
		loc, err := NewLocation(tripID, "Fushimi Inari", 34.9671, 135.7727)
		require.NoError(t, err)
		assert.Equal(t, tripID, loc.TripID)
		assert.Equal(t, "Fushimi Inari", loc.Name)
	})

	t.Run("accepts boundary coordinates", func(t *testing.T) {
		_, err := NewLocation(tripID, "North Pole", 90, 180)
		assert.NoError(t, err)
		_, err = NewLocation(tripID, "South Pole", -90, -180)
		assert.NoError(t, err)
	})

	t.Run("rejects latitude out of range", func(t *testing.T) {
		_, err := NewLocation(tripID, "Nowhere", 90.1, 0)
		assert.Error(t, err)
	})

	t.Run("rejects longitude out of range", func(t *testing.T) {
		_, err := NewLocation(tripID, "Nowhere", 0, -180.1)
		assert.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewLocation(tripID, "", 0, 0)
		assert.Error(t, err)
	})

	t.Run("rejects nil trip id", func(t *testing.T) {
		_, err := NewLocation(uuid.Nil, "Somewhere", 0, 0)
		assert.Error(t, err)
	})
}

func TestLocationSetters(t *testing.T) {
	loc, err := NewLocation(uuid.New(), "Fushimi Inari", 34.9671, 135.7727)
	require.NoError(t, err)

	require.NoError(t, loc.SetLatitude(35.0))
	require.NoError(t, loc.SetLongitude(135.0))
	assert.Error(t, loc.SetLatitude(-91))
	assert.Error(t, loc.SetLongitude(181))
	assert.Error(t, loc.SetName(""))
}

func TestHaversineDistance(t *testing.T) {
	t.Run("zero distance for identical points", func(t *testing.T) {
		assert.InDelta(t, 0, HaversineDistance(35.0, 135.0, 35.0, 135.0), 0.001)
	})

	t.Run("known distance Paris to London", func(t *testing.T) {
		// Paris (48.8566, 2.3522) to London (51.5074, -0.1278) is ~344 km
		d := HaversineDistance(48.8566, 2.3522, 51.5074, -0.1278)
		assert.InDelta(t, 344, d, 5)
	})

	t.Run("symmetric", func(t *testing.T) {
		d1 := HaversineDistance(10, 20, 30, 40)
		d2 := HaversineDistance(30, 40, 10, 20)
		assert.InDelta(t, d1, d2, 0.0001)
	})
}
