package trip

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/soultrip/backend/internal/domain/shared"
)

// DateLayout is the wire format for trip dates
const DateLayout = "2006-01-02"

// Trip represents a planned or past journey.
// It is the aggregate root owning its locations.
type Trip struct {
	shared.OwnedAggregateRoot
	Destination string
	StartDate   time.Time
	EndDate     time.Time
}

// NewTrip creates a new trip for the given user
func NewTrip(ownerID uuid.UUID, destination string, startDate, endDate time.Time) (*Trip, error) {
	if err := validateDestination(destination); err != nil {
		return nil, err
	}
	if err := validateDateRange(startDate, endDate); err != nil {
		return nil, err
	}

	return &Trip{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		Destination:        strings.TrimSpace(destination),
		StartDate:          truncateToDay(startDate),
		EndDate:            truncateToDay(endDate),
	}, nil
}

// SetDestination updates the trip destination
func (t *Trip) SetDestination(destination string) error {
	if err := validateDestination(destination); err != nil {
		return err
	}

	t.Destination = strings.TrimSpace(destination)
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// Reschedule updates the trip dates. The end date may never precede
// the start date.
func (t *Trip) Reschedule(startDate, endDate time.Time) error {
	if err := validateDateRange(startDate, endDate); err != nil {
		return err
	}

	t.StartDate = truncateToDay(startDate)
	t.EndDate = truncateToDay(endDate)
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// DurationDays returns the trip length in days, inclusive of both ends
func (t *Trip) DurationDays() int {
	return int(t.EndDate.Sub(t.StartDate).Hours()/24) + 1
}

// DaysUntil returns the number of days from the given day to the trip start
func (t *Trip) DaysUntil(from time.Time) int {
	return int(t.StartDate.Sub(truncateToDay(from)).Hours() / 24)
}

// IsUpcoming returns true if the trip starts on or after the given day
func (t *Trip) IsUpcoming(from time.Time) bool {
	return !t.StartDate.Before(truncateToDay(from))
}

// Stats aggregates trip figures for a single user
type Stats struct {
	TotalTrips         int64
	UniqueDestinations int64
	TotalDaysTraveled  int64
	TotalLocations     int64
}

func validateDestination(destination string) error {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return shared.NewDomainError("INVALID_DESTINATION", "Destination cannot be empty")
	}
	if len(destination) > 100 {
		return shared.NewDomainError("INVALID_DESTINATION", "Destination cannot exceed 100 characters")
	}
	return nil
}

func validateDateRange(startDate, endDate time.Time) error {
	if startDate.IsZero() || endDate.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Start and end dates are required")
	}
	if truncateToDay(endDate).Before(truncateToDay(startDate)) {
		return shared.NewDomainError("INVALID_DATE_RANGE", "End date cannot be before start date")
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
