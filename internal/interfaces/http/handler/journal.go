package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	journalapp "github.com/soultrip/backend/internal/application/journal"
	"github.com/soultrip/backend/internal/interfaces/http/dto"
	"github.com/soultrip/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

// JournalHandler exposes journal entry endpoints
type JournalHandler struct {
	BaseHandler
	journalService *journalapp.JournalService
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(journalService *journalapp.JournalService, logger *zap.Logger) *JournalHandler {
	return &JournalHandler{
		BaseHandler:    NewBaseHandler(logger),
		journalService: journalService,
	}
}

// RegisterRoutes registers journal routes on the given group
func (h *JournalHandler) RegisterRoutes(g *router.DomainGroup) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/search", h.Search)
	g.GET("/stats", h.Stats)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// CreateEntryRequest is the journal entry creation request body
type CreateEntryRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
}

// UpdateEntryRequest is the journal entry update request body.
// Omitted fields are left unchanged.
type UpdateEntryRequest struct {
	Title   *string `json:"title" binding:"omitempty,max=200"`
	Content *string `json:"content"`
}

// EntryResponse is the journal entry representation in responses
type EntryResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// JournalStatsResponse carries aggregate journal figures
type JournalStatsResponse struct {
	TotalEntries     int64      `json:"total_entries"`
	FirstEntryDate   *time.Time `json:"first_entry_date"`
	LatestEntryDate  *time.Time `json:"latest_entry_date"`
	AvgContentLength int        `json:"avg_content_length"`
}

func toEntryResponse(v journalapp.EntryView) EntryResponse {
	return EntryResponse{
		ID:        v.ID.String(),
		Title:     v.Title,
		Content:   v.Content,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func toEntryResponses(views []journalapp.EntryView) []EntryResponse {
	out := make([]EntryResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toEntryResponse(v))
	}
	return out
}

// Create writes a new journal entry
func (h *JournalHandler) Create(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	view, err := h.journalService.CreateEntry(c.Request.Context(), journalapp.CreateEntryInput{
		OwnerID: userID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toEntryResponse(*view))
}

// List returns one page of the user's journal entries, newest first.
// An optional limit query parameter caps the page size.
func (h *JournalHandler) List(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var limit int
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.ErrorWithCode(c, 400, dto.ErrCodeValidationFormat, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	var page dto.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.journalService.ListEntries(c.Request.Context(), journalapp.ListEntriesInput{
		OwnerID:  userID,
		Limit:    limit,
		Page:     page.Page,
		PageSize: page.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, toEntryResponses(result.Items), dto.NewMeta(result.Total, result.Page, result.PageSize))
}

// Get returns a single journal entry by ID
func (h *JournalHandler) Get(c *gin.Context) {
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

	view, err := h.journalService.GetEntry(c.Request.Context(), userID, uri.UUID())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toEntryResponse(*view))
}

// Update edits a journal entry's title or content
func (h *JournalHandler) Update(c *gin.Context) {
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

	var req UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	view, err := h.journalService.UpdateEntry(c.Request.Context(), journalapp.UpdateEntryInput{
		OwnerID: userID,
		EntryID: uri.UUID(),
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toEntryResponse(*view))
}

// Delete removes a journal entry
func (h *JournalHandler) Delete(c *gin.Context) {
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

	if err := h.journalService.DeleteEntry(c.Request.Context(), userID, uri.UUID()); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Search returns entries whose title or content matches the q query
// parameter. Queries shorter than three characters are rejected.
func (h *JournalHandler) Search(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	views, err := h.journalService.Search(c.Request.Context(), journalapp.SearchInput{
		OwnerID: userID,
		Query:   c.Query("q"),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, toEntryResponses(views), &dto.Meta{Total: int64(len(views))})
}

// Stats returns aggregate journal figures for the authenticated user
func (h *JournalHandler) Stats(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.journalService.Stats(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, JournalStatsResponse{
		TotalEntries:     result.TotalEntries,
		FirstEntryDate:   result.FirstEntryDate,
		LatestEntryDate:  result.LatestEntryDate,
		AvgContentLength: result.AvgContentLength,
	})
}
