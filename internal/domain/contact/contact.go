package contact

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/soultrip/backend/internal/domain/shared"
)

// MinSearchQueryLength is the minimum length for a contact search query
const MinSearchQueryLength = 2

// Contact represents a trusted contact reachable during an emergency.
type Contact struct {
	shared.OwnedAggregateRoot
	Name  string
	Email string
	Phone string
}

// NewContact creates a new trusted contact for the given user
func NewContact(ownerID uuid.UUID, name, email, phone string) (*Contact, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePhone(phone); err != nil {
		return nil, err
	}

	return &Contact{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		Name:               strings.TrimSpace(name),
		Email:              strings.TrimSpace(email),
		Phone:              strings.TrimSpace(phone),
	}, nil
}

// SetName updates the contact name
func (c *Contact) SetName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(name)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetEmail updates the contact email
func (c *Contact) SetEmail(email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}

	c.Email = strings.TrimSpace(email)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetPhone updates the contact phone number
func (c *Contact) SetPhone(phone string) error {
	if err := validatePhone(phone); err != nil {
		return err
	}

	c.Phone = strings.TrimSpace(phone)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// ValidateSearchQuery checks a search query for the minimum length
func ValidateSearchQuery(query string) error {
	if len(strings.TrimSpace(query)) < MinSearchQueryLength {
		return shared.NewDomainError("INVALID_SEARCH_QUERY", "Search query must be at least 2 characters")
	}
	return nil
}

var (
	emailRegex = regexp.MustCompile(`^[\w.\-]+@[\w.\-]+\.\w+$`)
	phoneRegex = regexp.MustCompile(`^[0-9\s\-()+]+$`)
	digitRegex = regexp.MustCompile(`[0-9]`)
)

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 100 characters")
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" || len(email) > 120 || !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

// Phones accept digits, spaces, dashes, parentheses and a plus sign,
// and must contain at least 7 digits.
func validatePhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" || len(phone) > 20 || !phoneRegex.MatchString(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Invalid phone number format")
	}
	if len(digitRegex.FindAllString(phone, -1)) < 7 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number must contain at least 7 digits")
	}
	return nil
}
