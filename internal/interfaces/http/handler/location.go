package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	tripapp "github.com/soultrip/backend/internal/application/trip"
	"github.com/soultrip/backend/internal/interfaces/http/dto"
	"github.com/soultrip/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

// LocationHandler exposes location endpoints that span all trips
type LocationHandler struct {
	BaseHandler
	locationService *tripapp.LocationService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationService *tripapp.LocationService, logger *zap.Logger) *LocationHandler {
	return &LocationHandler{
		BaseHandler:     NewBaseHandler(logger),
		locationService: locationService,
	}
}

// RegisterRoutes registers location routes on the given group
func (h *LocationHandler) RegisterRoutes(g *router.DomainGroup) {
	g.GET("", h.List)
	g.GET("/nearby", h.Nearby)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// AddLocationRequest is the location creation request body
type AddLocationRequest struct {
	Name      string  `json:"name" binding:"required,max=200"`
	Latitude  float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
}

// UpdateLocationRequest is the location update request body. Omitted
// fields are left unchanged.
type UpdateLocationRequest struct {
	Name      *string  `json:"name" binding:"omitempty,max=200"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
}

// BulkLocationItemRequest is a single candidate in a bulk add.
// Items are not validated at the binding layer so that invalid
// candidates can be skipped instead of failing the batch.
type BulkLocationItemRequest struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// BulkAddLocationsRequest is the bulk location creation request body
type BulkAddLocationsRequest struct {
	Locations []BulkLocationItemRequest `json:"locations"`
}

// LocationResponse is the location representation in responses
type LocationResponse struct {
	ID        string    `json:"id"`
	TripID    string    `json:"trip_id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}

// NearbyLocationResponse is a location annotated with its distance
// from the search point
type NearbyLocationResponse struct {
	LocationResponse
	DistanceKm float64 `json:"distance_km"`
}

// BulkAddLocationsResponse reports the outcome of a bulk add
type BulkAddLocationsResponse struct {
	Created []LocationResponse `json:"created"`
	Skipped int                `json:"skipped"`
}

func toLocationResponse(v tripapp.LocationView) LocationResponse {
	return LocationResponse{
		ID:        v.ID.String(),
		TripID:    v.TripID.String(),
		Name:      v.Name,
		Latitude:  v.Latitude,
		Longitude: v.Longitude,
		CreatedAt: v.CreatedAt,
	}
}

func toLocationResponses(views []tripapp.LocationView) []LocationResponse {
	out := make([]LocationResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toLocationResponse(v))
	}
	return out
}

// List returns every location across the user's trips
func (h *LocationHandler) List(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	views, err := h.locationService.ListAllLocations(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, toLocationResponses(views), &dto.Meta{Total: int64(len(views))})
}

// Get returns a single location by ID
func (h *LocationHandler) Get(c *gin.Context) {
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

	view, err := h.locationService.GetLocation(c.Request.Context(), userID, uri.UUID())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toLocationResponse(*view))
}

// Update modifies a location's name or coordinates
func (h *LocationHandler) Update(c *gin.Context) {
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

	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	view, err := h.locationService.UpdateLocation(c.Request.Context(), tripapp.UpdateLocationInput{
		OwnerID:    userID,
		LocationID: uri.UUID(),
		Name:       req.Name,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toLocationResponse(*view))
}

// Delete removes a location
func (h *LocationHandler) Delete(c *gin.Context) {
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

	if err := h.locationService.DeleteLocation(c.Request.Context(), userID, uri.UUID()); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Nearby returns the user's locations within a radius of a point,
// nearest first. Query parameters: latitude, longitude, radius_km.
func (h *LocationHandler) Nearby(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	lat, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		h.ErrorWithCode(c, 400, dto.ErrCodeValidationFormat, "latitude must be a number")
		return
	}
	lng, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		h.ErrorWithCode(c, 400, dto.ErrCodeValidationFormat, "longitude must be a number")
		return
	}

	// Absent radius falls back to the default; a supplied radius must
	// be positive.
	var radius float64
	if raw := c.Query("radius_km"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			h.ErrorWithCode(c, 400, dto.ErrCodeValidationFormat, "radius_km must be a number")
			return
		}
		if radius <= 0 {
			h.ErrorWithCode(c, 400, dto.ErrCodeValidationRange, "radius_km must be positive")
			return
		}
	}

	views, err := h.locationService.Nearby(c.Request.Context(), tripapp.NearbyInput{
		OwnerID:   userID,
		Latitude:  lat,
		Longitude: lng,
		RadiusKm:  radius,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]NearbyLocationResponse, 0, len(views))
	for _, v := range views {
		out = append(out, NearbyLocationResponse{
			LocationResponse: toLocationResponse(v.LocationView),
			DistanceKm:       v.DistanceKm,
		})
	}

	h.SuccessWithMeta(c, out, &dto.Meta{Total: int64(len(out))})
}

// AddLocation adds a location to one of the user's trips
func (h *TripHandler) AddLocation(c *gin.Context) {
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

	var req AddLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	view, err := h.locationService.AddLocation(c.Request.Context(), tripapp.AddLocationInput{
		OwnerID:   userID,
		TripID:    uri.UUID(),
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toLocationResponse(*view))
}

// ListLocations returns the locations of one trip
func (h *TripHandler) ListLocations(c *gin.Context) {
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

	views, err := h.locationService.ListTripLocations(c.Request.Context(), userID, uri.UUID())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, toLocationResponses(views), &dto.Meta{Total: int64(len(views))})
}

// BulkAddLocations adds several locations to a trip in one request.
// Invalid candidates are skipped rather than failing the batch.
func (h *TripHandler) BulkAddLocations(c *gin.Context) {
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

	var req BulkAddLocationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	items := make([]tripapp.BulkLocationItem, 0, len(req.Locations))
	for _, l := range req.Locations {
		items = append(items, tripapp.BulkLocationItem{
			Name:      l.Name,
			Latitude:  l.Latitude,
			Longitude: l.Longitude,
		})
	}

	result, err := h.locationService.BulkAdd(c.Request.Context(), tripapp.BulkAddInput{
		OwnerID:   userID,
		TripID:    uri.UUID(),
		Locations: items,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, BulkAddLocationsResponse{
		Created: toLocationResponses(result.Created),
		Skipped: result.Skipped,
	})
}
