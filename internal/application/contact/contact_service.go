package contact

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/soultrip/backend/internal/domain/contact"
	"github.com/soultrip/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ContactService handles trusted contact operations
type ContactService struct {
	contactRepo contact.ContactRepository
	logger      *zap.Logger
}

// NewContactService creates a new contact service
func NewContactService(contactRepo contact.ContactRepository, logger *zap.Logger) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// CreateContact adds a trusted contact for the given user
func (s *ContactService) CreateContact(ctx context.Context, input CreateContactInput) (*ContactView, error) {
	c, err := contact.NewContact(input.OwnerID, input.Name, input.Email, input.Phone)
	if err != nil {
		return nil, err
	}

	if err := s.contactRepo.Create(ctx, c); err != nil {
		s.logger.Error("Failed to create contact", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Trusted contact added",
		zap.String("contact_id", c.ID.String()),
		zap.String("user_id", input.OwnerID.String()))

	view := toContactView(c)
	return &view, nil
}

// GetContact returns a single contact owned by the given user
func (s *ContactService) GetContact(ctx context.Context, ownerID, contactID uuid.UUID) (*ContactView, error) {
	c, err := s.contactRepo.FindByID(ctx, ownerID, contactID)
	if err != nil {
		return nil, err
	}

	view := toContactView(c)
	return &view, nil
}

// ListContacts returns all trusted contacts for the given user
func (s *ContactService) ListContacts(ctx context.Context, ownerID uuid.UUID) ([]ContactView, error) {
	contacts, err := s.contactRepo.FindAll(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return toContactViews(contacts), nil
}

// UpdateContact edits a trusted contact
func (s *ContactService) UpdateContact(ctx context.Context, input UpdateContactInput) (*ContactView, error) {
	c, err := s.contactRepo.FindByID(ctx, input.OwnerID, input.ContactID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := c.SetName(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Email != nil {
		if err := c.SetEmail(*input.Email); err != nil {
			return nil, err
		}
	}
	if input.Phone != nil {
		if err := c.SetPhone(*input.Phone); err != nil {
			return nil, err
		}
	}

	if err := s.contactRepo.Update(ctx, c); err != nil {
		s.logger.Error("Failed to update contact",
			zap.String("contact_id", c.ID.String()),
			zap.Error(err))
		return nil, err
	}

	view := toContactView(c)
	return &view, nil
}

// DeleteContact deletes a trusted contact owned by the given user
func (s *ContactService) DeleteContact(ctx context.Context, ownerID, contactID uuid.UUID) error {
	if err := s.contactRepo.Delete(ctx, ownerID, contactID); err != nil {
		return err
	}

	s.logger.Info("Trusted contact deleted",
		zap.String("contact_id", contactID.String()),
		zap.String("user_id", ownerID.String()))
	return nil
}

// Search returns contacts matching the query by name or email.
// Queries shorter than the minimum are rejected.
func (s *ContactService) Search(ctx context.Context, input SearchInput) ([]ContactView, error) {
	if err := contact.ValidateSearchQuery(input.Query); err != nil {
		return nil, err
	}

	contacts, err := s.contactRepo.Search(ctx, input.OwnerID, strings.TrimSpace(input.Query))
	if err != nil {
		return nil, err
	}
	return toContactViews(contacts), nil
}

// EmergencyNotify builds an emergency alert addressed to every trusted
// contact of the user. It fails when the user has no contacts to notify.
func (s *ContactService) EmergencyNotify(ctx context.Context, input EmergencyNotifyInput) (*EmergencyNotifyResult, error) {
	contacts, err := s.contactRepo.FindAll(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	if len(contacts) == 0 {
		return nil, shared.NewDomainError("NO_CONTACTS", "No trusted contacts to notify")
	}

	location := strings.TrimSpace(input.Location)
	if location == "" {
		location = "Unknown location"
	}
	message := strings.TrimSpace(input.Message)
	if message == "" {
		message = "Emergency alert"
	}

	s.logger.Warn("Emergency alert triggered",
		zap.String("user_id", input.OwnerID.String()),
		zap.String("location", location),
		zap.Int("contacts", len(contacts)))

	return &EmergencyNotifyResult{
		Contacts: toContactViews(contacts),
		Alert: EmergencyAlert{
			Username:  input.Username,
			Location:  location,
			Message:   message,
			Timestamp: time.Now().UTC(),
		},
	}, nil
}

func toContactView(c *contact.Contact) ContactView {
	return ContactView{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}

func toContactViews(contacts []*contact.Contact) []ContactView {
	views := make([]ContactView, len(contacts))
	for i, c := range contacts {
		views[i] = toContactView(c)
	}
	return views
}
