package journal

import (
	"time"

	"github.com/google/uuid"
)

// CreateEntryInput contains the input for writing a journal entry
type CreateEntryInput struct {
	OwnerID uuid.UUID
	Title   string
	Content string
}

// UpdateEntryInput contains the input for editing a journal entry.
// Nil fields are left unchanged.
type UpdateEntryInput struct {
	OwnerID uuid.UUID
	EntryID uuid.UUID
	Title   *string
	Content *string
}

// ListEntriesInput contains the input for listing journal entries.
// Limit caps the page size when set; zero page values fall back to
// the defaults.
type ListEntriesInput struct {
	OwnerID  uuid.UUID
	Limit    int
	Page     int
	PageSize int
}

// SearchInput contains the input for a journal text search
type SearchInput struct {
	OwnerID uuid.UUID
	Query   string
}

// EntryView is the journal entry representation returned to clients
type EntryView struct {
	ID        uuid.UUID
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StatsResult contains aggregate journal figures for a user
type StatsResult struct {
	TotalEntries     int64
	FirstEntryDate   *time.Time
	LatestEntryDate  *time.Time
	AvgContentLength int
}
