package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	tripapp "github.com/soultrip/backend/internal/application/trip"
	"github.com/soultrip/backend/internal/domain/trip"
	"github.com/soultrip/backend/internal/interfaces/http/dto"
	"github.com/soultrip/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

// TripHandler exposes trip CRUD, stats and upcoming endpoints
type TripHandler struct {
	BaseHandler
	tripService     *tripapp.TripService
	locationService *tripapp.LocationService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(tripService *tripapp.TripService, locationService *tripapp.LocationService, logger *zap.Logger) *TripHandler {
	return &TripHandler{
		BaseHandler:     NewBaseHandler(logger),
		tripService:     tripService,
		locationService: locationService,
	}
}

// RegisterRoutes registers trip routes on the given group
func (h *TripHandler) RegisterRoutes(g *router.DomainGroup) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/stats", h.Stats)
	g.GET("/upcoming", h.Upcoming)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.POST("/:id/locations", h.AddLocation)
	g.GET("/:id/locations", h.ListLocations)
	g.POST("/:id/locations/bulk", h.BulkAddLocations)
}

// CreateTripRequest is the trip creation request body
type CreateTripRequest struct {
	Destination string `json:"destination" binding:"required,max=200"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
}

// UpdateTripRequest is the trip update request body. Omitted fields
// are left unchanged.
type UpdateTripRequest struct {
	Destination *string `json:"destination" binding:"omitempty,max=200"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
}

// TripResponse is the trip representation in responses
type TripResponse struct {
	ID           string    `json:"id"`
	Destination  string    `json:"destination"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	DurationDays int       `json:"duration_days"`
	CreatedAt    time.Time `json:"created_at"`
}

// TripListItemResponse is a trip annotated with its location count
type TripListItemResponse struct {
	TripResponse
	LocationCount int64 `json:"location_count"`
}

// TripDetailResponse is a trip together with its locations
type TripDetailResponse struct {
	TripResponse
	Locations []LocationResponse `json:"locations"`
}

// UpcomingTripResponse is a trip annotated with days until departure
type UpcomingTripResponse struct {
	TripResponse
	DaysUntil int `json:"days_until"`
}

// TripStatsResponse carries aggregate travel figures
type TripStatsResponse struct {
	TotalTrips         int64 `json:"total_trips"`
	UniqueDestinations int64 `json:"unique_destinations"`
	TotalDaysTraveled  int64 `json:"total_days_traveled"`
	TotalLocations     int64 `json:"total_locations"`
}

func toTripResponse(v tripapp.TripView) TripResponse {
	return TripResponse{
		ID:           v.ID.String(),
		Destination:  v.Destination,
		StartDate:    v.StartDate.Format(trip.DateLayout),
		EndDate:      v.EndDate.Format(trip.DateLayout),
		DurationDays: v.DurationDays,
		CreatedAt:    v.CreatedAt,
	}
}

// parseTripDate parses a date in YYYY-MM-DD form
func parseTripDate(value string) (time.Time, bool) {
	t, err := time.Parse(trip.DateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Create creates a new trip for the authenticated user
func (h *TripHandler) Create(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	startDate, ok := parseTripDate(req.StartDate)
	if !ok {
		h.ErrorWithCode(c, 400, dto.ErrCodeValidationFormat, "start_date must be in YYYY-MM-DD format")
		return
	}
	endDate, ok := parseTripDate(req.EndDate)
	if !ok {
		h.ErrorWithCode(c, 400, dto.ErrCodeValidationFormat, "end_date must be in YYYY-MM-DD format")
		return
	}

	view, err := h.tripService.CreateTrip(c.Request.Context(), tripapp.CreateTripInput{
		OwnerID:     userID,
		Destination: req.Destination,
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toTripResponse(*view))
}

// List returns one page of the authenticated user's trips, each with
// its location count
func (h *TripHandler) List(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var page dto.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.tripService.ListTrips(c.Request.Context(), tripapp.ListTripsInput{
		OwnerID:  userID,
		Page:     page.Page,
		PageSize: page.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]TripListItemResponse, 0, len(result.Items))
	for _, item := range result.Items {
		out = append(out, TripListItemResponse{
			TripResponse:  toTripResponse(item.TripView),
			LocationCount: item.LocationCount,
		})
	}

	h.SuccessWithMeta(c, out, dto.NewMeta(result.Total, result.Page, result.PageSize))
}

// Get returns a single trip by ID with its locations embedded
func (h *TripHandler) Get(c *gin.Context) {
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

	view, err := h.tripService.GetTrip(c.Request.Context(), tripapp.GetTripInput{
		OwnerID: userID,
		TripID:  uri.UUID(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, TripDetailResponse{
		TripResponse: toTripResponse(view.TripView),
		Locations:    toLocationResponses(view.Locations),
	})
}

// Update modifies a trip's destination or dates
func (h *TripHandler) Update(c *gin.Context) {
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

	var req UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	input := tripapp.UpdateTripInput{
		OwnerID:     userID,
		TripID:      uri.UUID(),
		Destination: req.Destination,
	}
	if req.StartDate != nil {
		parsed, ok := parseTripDate(*req.StartDate)
		if !ok {
			h.ErrorWithCode(c, 400, dto.ErrCodeValidationFormat, "start_date must be in YYYY-MM-DD format")
			return
		}
		input.StartDate = &parsed
	}
	if req.EndDate != nil {
		parsed, ok := parseTripDate(*req.EndDate)
		if !ok {
			h.ErrorWithCode(c, 400, dto.ErrCodeValidationFormat, "end_date must be in YYYY-MM-DD format")
			return
		}
		input.EndDate = &parsed
	}

	view, err := h.tripService.UpdateTrip(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toTripResponse(*view))
}

// Delete removes a trip and its locations
func (h *TripHandler) Delete(c *gin.Context) {
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

	err := h.tripService.DeleteTrip(c.Request.Context(), tripapp.DeleteTripInput{
		OwnerID: userID,
		TripID:  uri.UUID(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Stats returns aggregate travel figures for the authenticated user
func (h *TripHandler) Stats(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.tripService.Stats(c.Request.Context(), tripapp.StatsInput{OwnerID: userID})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, TripStatsResponse{
		TotalTrips:         result.TotalTrips,
		UniqueDestinations: result.UniqueDestinations,
		TotalDaysTraveled:  result.TotalDaysTraveled,
		TotalLocations:     result.TotalLocations,
	})
}

// Upcoming returns trips that have not started yet, soonest first
func (h *TripHandler) Upcoming(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	views, err := h.tripService.Upcoming(c.Request.Context(), tripapp.UpcomingInput{OwnerID: userID})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]UpcomingTripResponse, 0, len(views))
	for _, v := range views {
		out = append(out, UpcomingTripResponse{
			TripResponse: toTripResponse(v.TripView),
			DaysUntil:    v.DaysUntil,
		})
	}

	h.SuccessWithMeta(c, out, &dto.Meta{Total: int64(len(out))})
}
