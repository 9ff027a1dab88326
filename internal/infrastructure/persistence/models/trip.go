package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/soultrip/backend/internal/domain/trip"
)

// TripModel is the persistence model for trip.Trip
type TripModel struct {
	OwnedAggregateModel
	Destination string    `gorm:"size:100;not null"`
	StartDate   time.Time `gorm:"type:date;not null;index"`
	EndDate     time.Time `gorm:"type:date;not null"`
}

// TableName returns the table name for TripModel
func (TripModel) TableName() string {
	return "trips"
}

// ToDomain converts TripModel to domain Trip
func (m *TripModel) ToDomain() *trip.Trip {
	return &trip.Trip{
		OwnedAggregateRoot: m.ToDomainOwnedAggregateRoot(),
		Destination:        m.Destination,
		StartDate:          m.StartDate.UTC(),
		EndDate:            m.EndDate.UTC(),
	}
}

// TripModelFromDomain creates a TripModel from domain Trip
func TripModelFromDomain(t *trip.Trip) *TripModel {
	m := &TripModel{
		Destination: t.Destination,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
	}
	m.FromDomainOwnedAggregateRoot(t.OwnedAggregateRoot)
	return m
}

// LocationModel is the persistence model for trip.Location
type LocationModel struct {
	AggregateModel
	TripID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"size:100;not null"`
	Latitude  float64   `gorm:"not null"`
	Longitude float64   `gorm:"not null"`
}

// TableName returns the table name for LocationModel
func (LocationModel) TableName() string {
	return "locations"
}

// ToDomain converts LocationModel to domain Location
func (m *LocationModel) ToDomain() *trip.Location {
	return &trip.Location{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		TripID:            m.TripID,
		Name:              m.Name,
		Latitude:          m.Latitude,
		Longitude:         m.Longitude,
	}
}

// LocationModelFromDomain creates a LocationModel from domain Location
func LocationModelFromDomain(l *trip.Location) *LocationModel {
	m := &LocationModel{
		TripID:    l.TripID,
		Name:      l.Name,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
	}
	m.FromDomainAggregateRoot(l.BaseAggregateRoot)
	return m
}
