package contact

import (
	"time"

	"github.com/google/uuid"
)

// CreateContactInput contains the input for adding a trusted contact
type CreateContactInput struct {
	OwnerID uuid.UUID
	Name    string
	Email   string
	Phone   string
}

// UpdateContactInput contains the input for editing a trusted contact.
// Nil fields are left unchanged.
type UpdateContactInput struct {
	OwnerID   uuid.UUID
	ContactID uuid.UUID
	Name      *string
	Email     *string
	Phone     *string
}

// SearchInput contains the input for a contact search
type SearchInput struct {
	OwnerID uuid.UUID
	Query   string
}

// ContactView is the contact representation returned to clients
type ContactView struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}

// EmergencyNotifyInput contains the input for an emergency alert
type EmergencyNotifyInput struct {
	OwnerID  uuid.UUID
	Username string
	Location string
	Message  string
}

// EmergencyNotifyResult describes the alert that would be dispatched
// to the user's trusted contacts
type EmergencyNotifyResult struct {
	Contacts []ContactView
	Alert    EmergencyAlert
}

// EmergencyAlert is the payload delivered to each trusted contact
type EmergencyAlert struct {
	Username  string
	Location  string
	Message   string
	Timestamp time.Time
}
