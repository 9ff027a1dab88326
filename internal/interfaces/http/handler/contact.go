package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	contactapp "github.com/soultrip/backend/internal/application/contact"
	"github.com/soultrip/backend/internal/interfaces/http/dto"
	"github.com/soultrip/backend/internal/interfaces/http/middleware"
	"github.com/soultrip/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

// ContactHandler exposes trusted contact and emergency endpoints
type ContactHandler struct {
	BaseHandler
	contactService *contactapp.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *contactapp.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    NewBaseHandler(logger),
		contactService: contactService,
	}
}

// RegisterRoutes registers contact routes on the given group
func (h *ContactHandler) RegisterRoutes(g *router.DomainGroup) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/search", h.Search)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// RegisterEmergencyRoutes registers the emergency alert routes
func (h *ContactHandler) RegisterEmergencyRoutes(g *router.DomainGroup) {
	g.POST("/notify", h.EmergencyNotify)
}

// CreateContactRequest is the contact creation request body
type CreateContactRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone" binding:"omitempty,max=30"`
}

// UpdateContactRequest is the contact update request body. Omitted
// fields are left unchanged.
type UpdateContactRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=100"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone" binding:"omitempty,max=30"`
}

// EmergencyNotifyRequest is the emergency alert request body
type EmergencyNotifyRequest struct {
	Location string `json:"location" binding:"omitempty,max=300"`
	Message  string `json:"message" binding:"omitempty,max=1000"`
}

// ContactResponse is the contact representation in responses
type ContactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// EmergencyAlertResponse is the alert payload sent to each contact
type EmergencyAlertResponse struct {
	Username  string    `json:"username"`
	Location  string    `json:"location"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// EmergencyNotifyResponse reports who was notified and with what
type EmergencyNotifyResponse struct {
	NotifiedContacts []ContactResponse      `json:"notified_contacts"`
	Alert            EmergencyAlertResponse `json:"alert"`
}

func toContactResponse(v contactapp.ContactView) ContactResponse {
	return ContactResponse{
		ID:        v.ID.String(),
		Name:      v.Name,
		Email:     v.Email,
		Phone:     v.Phone,
		CreatedAt: v.CreatedAt,
	}
}

func toContactResponses(views []contactapp.ContactView) []ContactResponse {
	out := make([]ContactResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toContactResponse(v))
	}
	return out
}

// Create adds a trusted contact
func (h *ContactHandler) Create(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	view, err := h.contactService.CreateContact(c.Request.Context(), contactapp.CreateContactInput{
		OwnerID: userID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toContactResponse(*view))
}

// List returns all trusted contacts of the authenticated user
func (h *ContactHandler) List(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	views, err := h.contactService.ListContacts(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, toContactResponses(views), &dto.Meta{Total: int64(len(views))})
}

// Get returns a single trusted contact by ID
func (h *ContactHandler) Get(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.ValidationError(c, err)
		return
	}

	view, err := h.contactService.GetContact(c.Request.Context(), userID, uri.UUID())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toContactResponse(*view))
}

// Update modifies a trusted contact
func (h *ContactHandler) Update(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.ValidationError(c, err)
		return
	}

	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	view, err := h.contactService.UpdateContact(c.Request.Context(), contactapp.UpdateContactInput{
		OwnerID:   userID,
		ContactID: uri.UUID(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toContactResponse(*view))
}

// Delete removes a trusted contact
func (h *ContactHandler) Delete(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.ValidationError(c, err)
		return
	}

	if err := h.contactService.DeleteContact(c.Request.Context(), userID, uri.UUID()); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Search returns contacts whose name, email or phone matches the q
// query parameter. Queries shorter than two characters are rejected.
func (h *ContactHandler) Search(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	views, err := h.contactService.Search(c.Request.Context(), contactapp.SearchInput{
		OwnerID: userID,
		Query:   c.Query("q"),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, toContactResponses(views), &dto.Meta{Total: int64(len(views))})
}

// EmergencyNotify builds an emergency alert for every trusted
// contact. Fails when the user has no contacts.
func (h *ContactHandler) EmergencyNotify(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	// The alert body is optional; an empty request still notifies.
	var req EmergencyNotifyRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.ValidationError(c, err)
			return
		}
	}

	result, err := h.contactService.EmergencyNotify(c.Request.Context(), contactapp.EmergencyNotifyInput{
		OwnerID:  userID,
		Username: middleware.GetJWTUsername(c),
		Location: req.Location,
		Message:  req.Message,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, EmergencyNotifyResponse{
		NotifiedContacts: toContactResponses(result.Contacts),
		Alert: EmergencyAlertResponse{
			Username:  result.Alert.Username,
			Location:  result.Alert.Location,
			Message:   result.Alert.Message,
			Timestamp: result.Alert.Timestamp,
		},
	})
}
