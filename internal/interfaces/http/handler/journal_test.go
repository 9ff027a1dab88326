package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	journalapp "github.com/soultrip/backend/internal/application/journal"
	"github.com/soultrip/backend/internal/domain/journal"
	"github.com/soultrip/backend/internal/domain/shared"
	"github.com/soultrip/backend/internal/interfaces/http/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) Create(ctx context.Context, e *journal.Entry) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockEntryRepository) Update(ctx context.Context, e *journal.Entry) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockEntryRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

func (m *MockEntryRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*journal.Entry, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*journal.Entry), args.Error(1)
}

func (m *MockEntryRepository) FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]*journal.Entry, int64, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*journal.Entry), args.Get(1).(int64), args.Error(2)
}

func (m *MockEntryRepository) Search(ctx context.Context, ownerID uuid.UUID, query string) ([]*journal.Entry, error) {
	args := m.Called(ctx, ownerID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*journal.Entry), args.Error(1)
}

func (m *MockEntryRepository) Stats(ctx context.Context, ownerID uuid.UUID) (*journal.Stats, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*journal.Stats), args.Error(1)
}

func newJournalTestRouter(t *testing.T, userID uuid.UUID) (*gin.Engine, *MockEntryRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := new(MockEntryRepository)
	logger := zap.NewNop()
	service := journalapp.NewJournalService(repo, logger)
	h := NewJournalHandler(service, logger)

	engine := gin.New()
	engine.Use(authAs(userID, "wanderer"))

	group := router.NewDomainGroup("journal", "/journal")
	h.RegisterRoutes(group)
	r := router.NewRouter(engine)
	r.Register(group)
	r.Setup()

	return engine, repo
}

func mustNewEntry(t *testing.T, ownerID uuid.UUID, title, content string) *journal.Entry {
	t.Helper()
	e, err := journal.NewEntry(ownerID, title, content)
	require.NoError(t, err)
	return e
}

func TestJournalHandler_Create(t *testing.T) {
	userID := uuid.New()
	engine, repo := newJournalTestRouter(t, userID)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*journal.Entry")).Return(nil)

	payload, _ := json.Marshal(gin.H{
		"title":   "First night in Hanoi",
		"content": "The old quarter hums long after midnight.",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/journal", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeResponse(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "First night in Hanoi", data["title"])
	repo.AssertExpectations(t)
}

func TestJournalHandler_List(t *testing.T) {
	userID := uuid.New()

	t.Run("caps the page size with the limit parameter", func(t *testing.T) {
		engine, repo := newJournalTestRouter(t, userID)
		repo.On("FindAll", mock.Anything, userID, mock.MatchedBy(func(f shared.Filter) bool {
			return f.Limit() == 5
		})).Return([]*journal.Entry{}, int64(0), nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/journal?limit=5", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("pages through entries", func(t *testing.T) {
		engine, repo := newJournalTestRouter(t, userID)
		e := mustNewEntry(t, userID, "Hanoi", "The old quarter hums long after midnight.")
		repo.On("FindAll", mock.Anything, userID, mock.MatchedBy(func(f shared.Filter) bool {
			return f.Page == 2 && f.Limit() == 10
		})).Return([]*journal.Entry{e}, int64(11), nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/journal?page=2&page_size=10", nil)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeResponse(t, w)
		meta := body["meta"].(map[string]interface{})
		assert.Equal(t, float64(11), meta["total"])
		assert.Equal(t, float64(2), meta["page"])
		assert.Equal(t, float64(2), meta["total_pages"])
	})

	t.Run("rejects a negative limit", func(t *testing.T) {
		engine, _ := newJournalTestRouter(t, userID)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/journal?limit=-1", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestJournalHandler_Search(t *testing.T) {
	userID := uuid.New()

	t.Run("rejects short queries", func(t *testing.T) {
		engine, _ := newJournalTestRouter(t, userID)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/journal/search?q=ab", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns matches", func(t *testing.T) {
		engine, repo := newJournalTestRouter(t, userID)
		e := mustNewEntry(t, userID, "Hanoi", "The old quarter hums long after midnight.")
		repo.On("Search", mock.Anything, userID, "quarter").Return([]*journal.Entry{e}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/journal/search?q=quarter", nil)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeResponse(t, w)
		items := body["data"].([]interface{})
		require.Len(t, items, 1)
	})
}

func TestJournalHandler_Stats(t *testing.T) {
	userID := uuid.New()
	engine, repo := newJournalTestRouter(t, userID)

	e := mustNewEntry(t, userID, "Hanoi", "Some content")
	first := e.CreatedAt
	repo.On("Stats", mock.Anything, userID).Return(&journal.Stats{
		TotalEntries:     4,
		FirstEntryDate:   &first,
		LatestEntryDate:  &first,
		AvgContentLength: 120,
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/journal/stats", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeResponse(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(4), data["total_entries"])
	assert.Equal(t, float64(120), data["avg_content_length"])
	assert.NotNil(t, data["first_entry_date"])
}
