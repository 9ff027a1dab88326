package journal

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/soultrip/backend/internal/domain/journal"
	"github.com/soultrip/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// JournalService handles travel journal operations
type JournalService struct {
	entryRepo journal.EntryRepository
	logger    *zap.Logger
}

// NewJournalService creates a new journal service
func NewJournalService(entryRepo journal.EntryRepository, logger *zap.Logger) *JournalService {
	return &JournalService{
		entryRepo: entryRepo,
		logger:    logger,
	}
}

// CreateEntry writes a new journal entry for the given user
func (s *JournalService) CreateEntry(ctx context.Context, input CreateEntryInput) (*EntryView, error) {
	entry, err := journal.NewEntry(input.OwnerID, input.Title, input.Content)
	if err != nil {
		return nil, err
	}

	if err := s.entryRepo.Create(ctx, entry); err != nil {
		s.logger.Error("Failed to create journal entry", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Journal entry created",
		zap.String("entry_id", entry.ID.String()),
		zap.String("user_id", input.OwnerID.String()))

	view := toEntryView(entry)
	return &view, nil
}

// GetEntry returns a single entry owned by the given user
func (s *JournalService) GetEntry(ctx context.Context, ownerID, entryID uuid.UUID) (*EntryView, error) {
	entry, err := s.entryRepo.FindByID(ctx, ownerID, entryID)
	if err != nil {
		return nil, err
	}

	view := toEntryView(entry)
	return &view, nil
}

// ListEntries returns one page of the user's entries, newest first
func (s *JournalService) ListEntries(ctx context.Context, input ListEntriesInput) (*shared.Paginated[EntryView], error) {
	filter := shared.DefaultFilter()
	if input.Page > 0 {
		filter.Page = input.Page
	}
	if input.PageSize > 0 {
		filter.PageSize = input.PageSize
	}
	if input.Limit > 0 && input.Limit < filter.Limit() {
		filter.PageSize = input.Limit
	}

	entries, total, err := s.entryRepo.FindAll(ctx, input.OwnerID, filter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(toEntryViews(entries), total, filter.Page, filter.Limit())
	return &result, nil
}

// UpdateEntry edits an entry's title or content
func (s *JournalService) UpdateEntry(ctx context.Context, input UpdateEntryInput) (*EntryView, error) {
	entry, err := s.entryRepo.FindByID(ctx, input.OwnerID, input.EntryID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if err := entry.SetTitle(*input.Title); err != nil {
			return nil, err
		}
	}
	if input.Content != nil {
		if err := entry.SetContent(*input.Content); err != nil {
			return nil, err
		}
	}

	if err := s.entryRepo.Update(ctx, entry); err != nil {
		s.logger.Error("Failed to update journal entry",
			zap.String("entry_id", entry.ID.String()),
			zap.Error(err))
		return nil, err
	}

	view := toEntryView(entry)
	return &view, nil
}

// DeleteEntry deletes an entry owned by the given user
func (s *JournalService) DeleteEntry(ctx context.Context, ownerID, entryID uuid.UUID) error {
	if err := s.entryRepo.Delete(ctx, ownerID, entryID); err != nil {
		return err
	}

	s.logger.Info("Journal entry deleted",
		zap.String("entry_id", entryID.String()),
		zap.String("user_id", ownerID.String()))
	return nil
}

// Search returns entries matching the query in title or content,
// newest first. Queries shorter than the minimum are rejected.
func (s *JournalService) Search(ctx context.Context, input SearchInput) ([]EntryView, error) {
	if err := journal.ValidateSearchQuery(input.Query); err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.Search(ctx, input.OwnerID, strings.TrimSpace(input.Query))
	if err != nil {
		return nil, err
	}
	return toEntryViews(entries), nil
}

// Stats returns aggregate journal figures for the given user
func (s *JournalService) Stats(ctx context.Context, ownerID uuid.UUID) (*StatsResult, error) {
	stats, err := s.entryRepo.Stats(ctx, ownerID)
	if err != nil {
		s.logger.Error("Failed to compute journal stats", zap.Error(err))
		return nil, err
	}

	return &StatsResult{
		TotalEntries:     stats.TotalEntries,
		FirstEntryDate:   stats.FirstEntryDate,
		LatestEntryDate:  stats.LatestEntryDate,
		AvgContentLength: stats.AvgContentLength,
	}, nil
}

func toEntryView(entry *journal.Entry) EntryView {
	return EntryView{
		ID:        entry.ID,
		Title:     entry.Title,
		Content:   entry.Content,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}

func toEntryViews(entries []*journal.Entry) []EntryView {
	views := make([]EntryView, len(entries))
	for i, entry := range entries {
		views[i] = toEntryView(entry)
	}
	return views
}
