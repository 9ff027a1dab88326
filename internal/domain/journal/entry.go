package journal

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/soultrip/backend/internal/domain/shared"
)

// MinSearchQueryLength is the minimum length for a journal search query
const MinSearchQueryLength = 3

// Entry represents a journal entry written by a traveler.
type Entry struct {
	shared.OwnedAggregateRoot
	Title   string
	Content string
}

// NewEntry creates a new journal entry for the given user
func NewEntry(ownerID uuid.UUID, title, content string) (*Entry, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateContent(content); err != nil {
		return nil, err
	}

	return &Entry{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		Title:              strings.TrimSpace(title),
		Content:            content,
	}, nil
}

// SetTitle updates the entry title
func (e *Entry) SetTitle(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}

	e.Title = strings.TrimSpace(title)
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	return nil
}

// SetContent updates the entry content
func (e *Entry) SetContent(content string) error {
	if err := validateContent(content); err != nil {
		return err
	}

	e.Content = content
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	return nil
}

// ValidateSearchQuery checks a search query for the minimum length
func ValidateSearchQuery(query string) error {
	if len(strings.TrimSpace(query)) < MinSearchQueryLength {
		return shared.NewDomainError("INVALID_SEARCH_QUERY", "Search query must be at least 3 characters")
	}
	return nil
}

// Stats aggregates journal figures for a single user
type Stats struct {
	TotalEntries     int64
	FirstEntryDate   *time.Time
	LatestEntryDate  *time.Time
	AvgContentLength int
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if len(title) > 100 {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot exceed 100 characters")
	}
	return nil
}

func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return shared.NewDomainError("INVALID_CONTENT", "Content cannot be empty")
	}
	return nil
}
