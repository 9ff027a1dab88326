package models

import (
	"github.com/soultrip/backend/internal/domain/contact"
)

// TrustedContactModel is the persistence model for contact.Contact
type TrustedContactModel struct {
	OwnedAggregateModel
	Name  string `gorm:"size:100;not null"`
	Email string `gorm:"size:120;not null"`
	Phone string `gorm:"size:20;not null"`
}

// TableName returns the table name for TrustedContactModel
func (TrustedContactModel) TableName() string {
	return "trusted_contacts"
}

// ToDomain converts TrustedContactModel to domain Contact
func (m *TrustedContactModel) ToDomain() *contact.Contact {
	return &contact.Contact{
		OwnedAggregateRoot: m.ToDomainOwnedAggregateRoot(),
		Name:               m.Name,
		Email:              m.Email,
		Phone:              m.Phone,
	}
}

// TrustedContactModelFromDomain creates a TrustedContactModel from domain Contact
func TrustedContactModelFromDomain(c *contact.Contact) *TrustedContactModel {
	m := &TrustedContactModel{
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
	}
	m.FromDomainOwnedAggregateRoot(c.OwnedAggregateRoot)
	return m
}
